package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"learnhub/internal/lmserrors"
	"learnhub/internal/models"
)

// enrollmentLookup finds an enrollment by its (studentId, courseId) natural
// key.
type enrollmentLookup func(ctx context.Context, studentID, courseID string) (*models.Enrollment, error)

// CreateEnrollment enrolls the student in the course. The at-most-one
// invariant per (student, course) pair is enforced by a pre-write existence
// check, not a store constraint.
func (r *Repository) CreateEnrollment(ctx context.Context, studentID, courseID, enrollmentStatus string) (*models.Enrollment, error) {
	enrollment, data, err := newEnrollment(ctx, r.GetEnrollmentByStudentAndCourse, studentID, courseID, enrollmentStatus)
	if err != nil {
		return nil, err
	}

	if _, err := r.enrollments().Doc(enrollment.ID).Set(ctx, data); err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}
	return enrollment, nil
}

// newEnrollment runs the natural-key lookup and builds the document for a
// new enrollment. A lookup that has not observed a concurrent insert admits
// a duplicate; the check guards sequential callers only.
func newEnrollment(ctx context.Context, find enrollmentLookup, studentID, courseID, enrollmentStatus string) (*models.Enrollment, map[string]interface{}, error) {
	if _, err := find(ctx, studentID, courseID); err == nil {
		return nil, nil, lmserrors.AlreadyEnrolledError
	}

	if enrollmentStatus == "" {
		enrollmentStatus = models.EnrollmentStatusActive
	}

	enrollment := &models.Enrollment{
		ID:         uuid.New().String(),
		StudentID:  studentID,
		CourseID:   courseID,
		Status:     enrollmentStatus,
		EnrolledAt: nowTimestamp(),
	}

	data := map[string]interface{}{
		"enrollmentId": enrollment.ID,
		"studentId":    enrollment.StudentID,
		"courseId":     enrollment.CourseID,
		"status":       enrollment.Status,
		"enrolledAt":   enrollment.EnrolledAt,
	}
	return enrollment, data, nil
}

// GetEnrollment fetches an enrollment by its composite (enrollmentId,
// studentId) key.
func (r *Repository) GetEnrollment(ctx context.Context, enrollmentID, studentID string) (*models.Enrollment, error) {
	doc, err := r.enrollments().Doc(enrollmentID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, lmserrors.EnrollmentNotFoundError
		}
		return nil, fmt.Errorf("error getting enrollment: %w", err)
	}
	enrollment, err := docToEnrollment(doc)
	if err != nil {
		return nil, err
	}
	if enrollment.StudentID != studentID {
		return nil, lmserrors.EnrollmentNotFoundError
	}
	return enrollment, nil
}

func (r *Repository) GetEnrollmentByStudentAndCourse(ctx context.Context, studentID, courseID string) (*models.Enrollment, error) {
	iter := r.enrollments().
		Where("studentId", "==", studentID).
		Where("courseId", "==", courseID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, lmserrors.EnrollmentNotFoundError
	}
	if err != nil {
		return nil, fmt.Errorf("error querying enrollment: %w", err)
	}
	return docToEnrollment(doc)
}

func (r *Repository) ListEnrollmentsByStudent(ctx context.Context, studentID string) ([]*models.Enrollment, error) {
	return r.listEnrollments(ctx, r.enrollments().Where("studentId", "==", studentID).Documents(ctx))
}

func (r *Repository) ListEnrollmentsByCourse(ctx context.Context, courseID string) ([]*models.Enrollment, error) {
	return r.listEnrollments(ctx, r.enrollments().Where("courseId", "==", courseID).Documents(ctx))
}

func (r *Repository) listEnrollments(ctx context.Context, iter *firestore.DocumentIterator) ([]*models.Enrollment, error) {
	defer iter.Stop()

	enrollments := []*models.Enrollment{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing enrollments: %w", err)
		}
		enrollment, err := docToEnrollment(doc)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, nil
}

// UpdateEnrollmentStatus sets the enrollment's status on behalf of the
// owning student.
func (r *Repository) UpdateEnrollmentStatus(ctx context.Context, enrollmentID, studentID, enrollmentStatus string) (*models.Enrollment, error) {
	if _, err := r.GetEnrollment(ctx, enrollmentID, studentID); err != nil {
		return nil, err
	}

	_, err := r.enrollments().Doc(enrollmentID).Update(ctx, []firestore.Update{
		{Path: "status", Value: enrollmentStatus},
	})
	if err != nil {
		return nil, fmt.Errorf("error updating enrollment: %w", err)
	}
	return r.GetEnrollment(ctx, enrollmentID, studentID)
}

// DeleteEnrollment removes the enrollment. Only the owning student's key
// matches; an admin path may pass the stored studentId directly.
func (r *Repository) DeleteEnrollment(ctx context.Context, enrollmentID, studentID string) error {
	if _, err := r.GetEnrollment(ctx, enrollmentID, studentID); err != nil {
		return err
	}
	if _, err := r.enrollments().Doc(enrollmentID).Delete(ctx); err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	return nil
}

func docToEnrollment(doc *firestore.DocumentSnapshot) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := decodeDoc(doc, &e); err != nil {
		return nil, err
	}
	e.ID = doc.Ref.ID
	return &e, nil
}
