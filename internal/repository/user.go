package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"learnhub/internal/auth"
	"learnhub/internal/lmserrors"
	"learnhub/internal/models"
)

// userLookup finds a user by email.
type userLookup func(ctx context.Context, email string) (*models.User, error)

// CreateUser creates a user after checking email uniqueness. The uniqueness
// check is read-then-write, not atomic.
func (r *Repository) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	user, data, err := newUser(ctx, r.GetUserByEmail, req)
	if err != nil {
		return nil, err
	}

	if _, err := r.users().Doc(user.ID).Set(ctx, data); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// newUser runs the email lookup and builds the user document. Specialization
// is mandatory for students and instructors; instructors additionally carry a
// courseIds list, never nil.
func newUser(ctx context.Context, find userLookup, req *models.CreateUserRequest) (*models.User, map[string]interface{}, error) {
	if _, err := find(ctx, req.Email); err == nil {
		return nil, nil, lmserrors.EmailExistsError
	}

	if (req.Role == models.RoleStudent || req.Role == models.RoleInstructor) && req.SpecializationID == "" {
		return nil, nil, fmt.Errorf("specialization ID is required for %ss", req.Role)
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		ID:              uuid.New().String(),
		Email:           req.Email,
		Role:            req.Role,
		Name:            req.Name,
		PasswordChanged: false,
		CreatedAt:       nowTimestamp(),
	}

	data := map[string]interface{}{
		"userId":          user.ID,
		"email":           user.Email,
		"password":        digest,
		"role":            user.Role,
		"name":            user.Name,
		"passwordChanged": false,
		"createdAt":       user.CreatedAt,
	}

	if req.Role == models.RoleStudent || req.Role == models.RoleInstructor {
		user.SpecializationID = req.SpecializationID
		data["specializationId"] = req.SpecializationID
	}
	if req.Role == models.RoleInstructor {
		user.CourseIDs = req.CourseIDs
		if user.CourseIDs == nil {
			user.CourseIDs = []string{}
		}
		data["courseIds"] = user.CourseIDs
	}

	return user, data, nil
}

// GetUserByID retrieves the User associated with the given ID.
func (r *Repository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := r.users().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, lmserrors.UserNotFoundError
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return docToUser(doc)
}

// GetUserByEmail retrieves the user with the given email. Email matching is
// case-sensitive, as the store query is.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	iter := r.users().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, lmserrors.UserNotFoundError
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return docToUser(doc)
}

// Authenticate verifies the credentials and returns the matching user. The
// same error is returned for an unknown email and a wrong password.
func (r *Repository) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, lmserrors.InvalidCredentialsError
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, lmserrors.InvalidCredentialsError
	}
	return user, nil
}

// UpdateUser applies the supplied fields and refreshes updatedAt. A supplied
// password is hashed before it reaches the store.
func (r *Repository) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	var updates []firestore.Update
	if req.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *req.Name})
	}
	if req.Email != nil {
		updates = append(updates, firestore.Update{Path: "email", Value: *req.Email})
	}
	if req.Password != nil {
		digest, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates = append(updates, firestore.Update{Path: "password", Value: digest})
	}
	if req.CourseIDs != nil {
		updates = append(updates, firestore.Update{Path: "courseIds", Value: req.CourseIDs})
	}
	if len(updates) == 0 {
		return nil, lmserrors.NoFieldsToUpdateError
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: nowTimestamp()})

	if _, err := r.users().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return nil, lmserrors.UserNotFoundError
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return r.GetUserByID(ctx, id)
}

func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	if _, err := r.users().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}

// ListUsers returns all users, optionally filtered by role.
func (r *Repository) ListUsers(ctx context.Context, role string) ([]*models.User, error) {
	query := r.users().Query
	if role != "" {
		query = query.Where("role", "==", role)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	users := []*models.User{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing users: %w", err)
		}
		user, err := docToUser(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// ChangePassword sets a new password after verifying the old one, and flags
// the account as having changed its bootstrap password.
func (r *Repository) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	user, err := r.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(oldPassword, user.PasswordHash) {
		return lmserrors.WrongPasswordError
	}

	digest, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	_, err = r.users().Doc(id).Update(ctx, []firestore.Update{
		{Path: "password", Value: digest},
		{Path: "passwordChanged", Value: true},
		{Path: "updatedAt", Value: nowTimestamp()},
	})
	if err != nil {
		return fmt.Errorf("error changing password: %w", err)
	}
	return nil
}

// AdminChangePassword sets a new password without old-password verification.
// Reserved for the admin path.
func (r *Repository) AdminChangePassword(ctx context.Context, id, newPassword string) error {
	if _, err := r.GetUserByID(ctx, id); err != nil {
		return err
	}

	digest, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	_, err = r.users().Doc(id).Update(ctx, []firestore.Update{
		{Path: "password", Value: digest},
		{Path: "updatedAt", Value: nowTimestamp()},
	})
	if err != nil {
		return fmt.Errorf("error changing password: %w", err)
	}
	return nil
}

func docToUser(doc *firestore.DocumentSnapshot) (*models.User, error) {
	var u models.User
	if err := decodeDoc(doc, &u); err != nil {
		return nil, err
	}
	u.ID = doc.Ref.ID
	return &u, nil
}
