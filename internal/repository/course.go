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

// CreateCourse creates a course owned by the instructors in
// req.InstructorIDs. Only the plural set is stored; the legacy singular
// instructorId surfaces as a read-time projection.
func (r *Repository) CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	category := req.Category
	if category == "" {
		category = models.DefaultCourseCategory
	}

	now := nowTimestamp()
	course := &models.Course{
		ID:               uuid.New().String(),
		Title:            req.Title,
		Description:      req.Description,
		Category:         category,
		SpecializationID: req.SpecializationID,
		InstructorIDs:    req.InstructorIDs,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if course.InstructorIDs == nil {
		course.InstructorIDs = []string{}
	}
	course.Normalize()

	data := map[string]interface{}{
		"courseId":      course.ID,
		"title":         course.Title,
		"description":   course.Description,
		"category":      course.Category,
		"instructorIds": course.InstructorIDs,
		"createdAt":     course.CreatedAt,
		"updatedAt":     course.UpdatedAt,
	}
	if course.SpecializationID != "" {
		data["specializationId"] = course.SpecializationID
	}

	if _, err := r.courses().Doc(course.ID).Set(ctx, data); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return course, nil
}

func (r *Repository) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	doc, err := r.courses().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, lmserrors.CourseNotFoundError
		}
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	return docToCourse(doc)
}

// UpdateCourse applies the supplied fields on behalf of an instructor. The
// caller must be in the course's ownership set.
func (r *Repository) UpdateCourse(ctx context.Context, id, instructorID string, req *models.UpdateCourseRequest) (*models.Course, error) {
	course, err := r.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if !course.HasInstructor(instructorID) {
		return nil, lmserrors.NotCourseOwnerError
	}
	return r.applyCourseUpdate(ctx, id, req)
}

// AdminUpdateCourse applies the supplied fields with no ownership check.
// Reserved for the admin path.
func (r *Repository) AdminUpdateCourse(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error) {
	if _, err := r.GetCourse(ctx, id); err != nil {
		return nil, err
	}
	return r.applyCourseUpdate(ctx, id, req)
}

func (r *Repository) applyCourseUpdate(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error) {
	var updates []firestore.Update
	if req.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *req.Title})
	}
	if req.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *req.Description})
	}
	if req.Category != nil {
		updates = append(updates, firestore.Update{Path: "category", Value: *req.Category})
	}
	if req.SpecializationID != nil {
		updates = append(updates, firestore.Update{Path: "specializationId", Value: *req.SpecializationID})
	}
	if req.InstructorIDs != nil {
		updates = append(updates, firestore.Update{Path: "instructorIds", Value: req.InstructorIDs})
	}
	if len(updates) == 0 {
		return nil, lmserrors.NoFieldsToUpdateError
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: nowTimestamp()})

	if _, err := r.courses().Doc(id).Update(ctx, updates); err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return r.GetCourse(ctx, id)
}

// DeleteCourse removes the course on behalf of an owning instructor. Modules,
// enrollments and progress referencing the course are left in place.
func (r *Repository) DeleteCourse(ctx context.Context, id, instructorID string) error {
	course, err := r.GetCourse(ctx, id)
	if err != nil {
		return err
	}
	if !course.HasInstructor(instructorID) {
		return lmserrors.NotCourseOwnerError
	}
	if _, err := r.courses().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}

// AdminDeleteCourse removes the course with no ownership check.
func (r *Repository) AdminDeleteCourse(ctx context.Context, id string) error {
	if _, err := r.GetCourse(ctx, id); err != nil {
		return err
	}
	if _, err := r.courses().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}

// ListCourses returns courses matching the filter. The instructor filter
// must match either ownership representation, which Firestore cannot express
// in one query, so it scans the collection and filters locally. The other
// filters use native queries.
func (r *Repository) ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	query := r.courses().Query
	switch {
	case filter.InstructorID != "":
		// instructor match happens locally below; a category filter can
		// still narrow the scan natively
		if filter.Category != "" {
			query = query.Where("category", "==", filter.Category)
		}
	case filter.SpecializationID != "":
		query = query.Where("specializationId", "==", filter.SpecializationID)
	case filter.Category != "":
		query = query.Where("category", "==", filter.Category)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	courses := []*models.Course{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing courses: %w", err)
		}
		course, err := docToCourse(doc)
		if err != nil {
			return nil, err
		}
		if filter.InstructorID != "" && !course.HasInstructor(filter.InstructorID) {
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// LinkInstructor adds the instructor to the course's ownership set and the
// course to the instructor's courseIds. The two writes are separate; a crash
// between them leaves one-sided state that the seeder repairs on next start.
func (r *Repository) LinkInstructor(ctx context.Context, courseID, instructorID string) (*models.Course, error) {
	course, err := r.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !course.HasInstructor(instructorID) {
		course.AddInstructor(instructorID)
		course, err = r.AdminUpdateCourse(ctx, courseID, &models.UpdateCourseRequest{InstructorIDs: course.InstructorIDs})
		if err != nil {
			return nil, err
		}
	}

	instructor, err := r.GetUserByID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	if !instructor.HasCourse(courseID) {
		courseIDs := append(instructor.CourseIDs, courseID)
		if _, err := r.UpdateUser(ctx, instructorID, &models.UpdateUserRequest{CourseIDs: courseIDs}); err != nil {
			return nil, err
		}
	}
	return course, nil
}

func docToCourse(doc *firestore.DocumentSnapshot) (*models.Course, error) {
	var c models.Course
	if err := decodeDoc(doc, &c); err != nil {
		return nil, err
	}
	c.ID = doc.Ref.ID
	c.Normalize()
	return &c, nil
}
