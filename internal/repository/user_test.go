package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/auth"
	"learnhub/internal/lmserrors"
	"learnhub/internal/models"
)

// userTable is an in-memory email index standing in for the Firestore query
// behind GetUserByEmail.
type userTable map[string]*models.User

func (t userTable) find(_ context.Context, email string) (*models.User, error) {
	if u, ok := t[email]; ok {
		return u, nil
	}
	return nil, lmserrors.UserNotFoundError
}

func TestNewUserRejectsDuplicateEmail(t *testing.T) {
	table := userTable{}
	ctx := context.Background()

	first, _, err := newUser(ctx, table.find, &models.CreateUserRequest{
		Email:            "ada@ncirl.ie",
		Password:         "Secret123!",
		Role:             models.RoleStudent,
		Name:             "Ada",
		SpecializationID: "spec-1",
	})
	require.NoError(t, err)
	table[first.Email] = first

	_, _, err = newUser(ctx, table.find, &models.CreateUserRequest{
		Email:            "ada@ncirl.ie",
		Password:         "Other456!",
		Role:             models.RoleInstructor,
		Name:             "Ada Again",
		SpecializationID: "spec-2",
	})
	assert.ErrorIs(t, err, lmserrors.EmailExistsError)
}

func TestNewUserRequiresSpecializationForStudentsAndInstructors(t *testing.T) {
	table := userTable{}
	ctx := context.Background()

	for _, role := range []string{models.RoleStudent, models.RoleInstructor} {
		_, _, err := newUser(ctx, table.find, &models.CreateUserRequest{
			Email:    role + "@ncirl.ie",
			Password: "Secret123!",
			Role:     role,
			Name:     "No Spec",
		})
		assert.Error(t, err, role)
	}

	_, _, err := newUser(ctx, table.find, &models.CreateUserRequest{
		Email:    "admin@ncirl.ie",
		Password: "Secret123!",
		Role:     models.RoleAdmin,
		Name:     "Admin",
	})
	assert.NoError(t, err)
}

func TestNewUserHashesPassword(t *testing.T) {
	table := userTable{}

	user, data, err := newUser(context.Background(), table.find, &models.CreateUserRequest{
		Email:            "ada@ncirl.ie",
		Password:         "Secret123!",
		Role:             models.RoleStudent,
		Name:             "Ada",
		SpecializationID: "spec-1",
	})
	require.NoError(t, err)

	digest, ok := data["password"].(string)
	require.True(t, ok)
	assert.NotEqual(t, "Secret123!", digest)
	assert.True(t, auth.CheckPassword("Secret123!", digest))
	assert.False(t, user.PasswordChanged)
}

func TestNewUserInstructorCourseIDsNeverNil(t *testing.T) {
	table := userTable{}

	user, data, err := newUser(context.Background(), table.find, &models.CreateUserRequest{
		Email:            "lee@ncirl.ie",
		Password:         "Secret123!",
		Role:             models.RoleInstructor,
		Name:             "Lee",
		SpecializationID: "spec-1",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{}, user.CourseIDs)
	assert.Equal(t, []string{}, data["courseIds"])
}

// Email uniqueness is read-then-write, not atomic: two registrations racing
// past the same lookup state both pass. Accepted; the check guards
// sequential callers only.
func TestNewUserRaceWindowAdmitsDuplicateEmail(t *testing.T) {
	table := userTable{}
	ctx := context.Background()
	req := func() *models.CreateUserRequest {
		return &models.CreateUserRequest{
			Email:            "ada@ncirl.ie",
			Password:         "Secret123!",
			Role:             models.RoleStudent,
			Name:             "Ada",
			SpecializationID: "spec-1",
		}
	}

	first, _, err := newUser(ctx, table.find, req())
	require.NoError(t, err)
	second, _, err := newUser(ctx, table.find, req())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
