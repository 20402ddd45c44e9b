package models

const FirestoreUsersCollection = "lms-users"

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

// User represents a registered account. PasswordHash stays inside the store
// layer: it is decoded from the document but never serialized in responses.
type User struct {
	ID               string   `json:"userId" mapstructure:"userId"`
	Email            string   `json:"email" mapstructure:"email"`
	PasswordHash     string   `json:"-" mapstructure:"password"`
	Role             string   `json:"role" mapstructure:"role"`
	Name             string   `json:"name" mapstructure:"name"`
	SpecializationID string   `json:"specializationId,omitempty" mapstructure:"specializationId"`
	CourseIDs        []string `json:"courseIds,omitempty" mapstructure:"courseIds"`
	PasswordChanged  bool     `json:"passwordChanged" mapstructure:"passwordChanged"`
	CreatedAt        string   `json:"createdAt" mapstructure:"createdAt"`
	UpdatedAt        string   `json:"updatedAt,omitempty" mapstructure:"updatedAt"`

	// Enrichment fields populated by the admin user listing, never stored.
	SpecializationName string   `json:"specializationName,omitempty" mapstructure:"-"`
	CourseTitles       []string `json:"courseTitles,omitempty" mapstructure:"-"`
}

// HasCourse reports whether the user (an instructor) is linked to the course.
func (u *User) HasCourse(courseID string) bool {
	for _, id := range u.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

// CreateUserRequest is the parameter struct for CreateUser.
type CreateUserRequest struct {
	Email            string   `json:"email"`
	Password         string   `json:"password"`
	Role             string   `json:"role"`
	Name             string   `json:"name"`
	SpecializationID string   `json:"specializationId"`
	CourseIDs        []string `json:"courseIds"`
}

// UpdateUserRequest is the parameter struct for UpdateUser. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Name      *string  `json:"name"`
	Email     *string  `json:"email"`
	Password  *string  `json:"password"`
	CourseIDs []string `json:"courseIds"`
}

// LoginRequest is the parameter struct for Authenticate.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the parameter struct for ChangePassword.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
