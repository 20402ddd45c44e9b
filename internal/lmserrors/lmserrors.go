package lmserrors

import "errors"

var (
	// User errors
	UserNotFoundError       = errors.New("user not found")
	EmailExistsError        = errors.New("user with this email already exists")
	InvalidCredentialsError = errors.New("invalid email or password")
	WrongPasswordError      = errors.New("current password is incorrect")
	RoleConflictError       = errors.New("user with this email already exists with a different role")

	// Specialization errors
	SpecializationNotFoundError = errors.New("specialization not found")
	SpecializationCodeError     = errors.New("specialization with this code already exists")

	// Course errors
	CourseNotFoundError = errors.New("course not found")
	NotCourseOwnerError = errors.New("unauthorized to modify this course")

	// Module errors
	ModuleNotFoundError = errors.New("module not found")

	// Enrollment errors
	EnrollmentNotFoundError = errors.New("enrollment not found")
	AlreadyEnrolledError    = errors.New("already enrolled in this course")

	// Progress errors
	ProgressNotFoundError = errors.New("progress record not found")

	// Update errors
	NoFieldsToUpdateError = errors.New("no fields to update")
)
