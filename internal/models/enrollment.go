package models

const FirestoreEnrollmentsCollection = "lms-enrollments"

// EnrollmentStatusActive is the default status for new enrollments. Other
// values are caller-supplied and stored as-is.
const EnrollmentStatusActive = "active"

// Enrollment links a student to a course they have joined. At most one
// enrollment exists per (studentId, courseId) pair.
type Enrollment struct {
	ID         string `json:"enrollmentId" mapstructure:"enrollmentId"`
	StudentID  string `json:"studentId" mapstructure:"studentId"`
	CourseID   string `json:"courseId" mapstructure:"courseId"`
	Status     string `json:"status" mapstructure:"status"`
	EnrolledAt string `json:"enrolledAt" mapstructure:"enrolledAt"`
}

// CreateEnrollmentRequest is the parameter struct for CreateEnrollment.
type CreateEnrollmentRequest struct {
	CourseID string `json:"courseId"`
	Status   string `json:"status"`
}
