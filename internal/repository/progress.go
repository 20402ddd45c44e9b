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

// progressLookup finds a record by its (studentId, moduleId, courseId)
// natural key.
type progressLookup func(ctx context.Context, studentID, moduleID, courseID string) (*models.Progress, error)

// RecordProgress writes the student's progress for a module. A record
// already matching the (student, module, course) triple is overwritten under
// its existing ID rather than duplicated. There is deliberately no check
// that the student is enrolled in the course; progress tracking is
// decoupled from enrollment.
func (r *Repository) RecordProgress(ctx context.Context, studentID, moduleID, courseID, progressStatus string) (*models.Progress, error) {
	progress, data := newProgressRecord(ctx, r.GetProgressByTriple, studentID, moduleID, courseID, progressStatus)

	if _, err := r.progress().Doc(progress.ID).Set(ctx, data); err != nil {
		return nil, fmt.Errorf("error recording progress: %w", err)
	}
	return progress, nil
}

// newProgressRecord runs the triple lookup and builds the record, reusing
// the existing document ID when the lookup hits so a re-submission stays a
// single record per triple.
func newProgressRecord(ctx context.Context, find progressLookup, studentID, moduleID, courseID, progressStatus string) (*models.Progress, map[string]interface{}) {
	if progressStatus == "" {
		progressStatus = models.ProgressStatusInProgress
	}

	progressID := uuid.New().String()
	if existing, err := find(ctx, studentID, moduleID, courseID); err == nil {
		progressID = existing.ID
	}

	progress := &models.Progress{
		ID:        progressID,
		StudentID: studentID,
		ModuleID:  moduleID,
		CourseID:  courseID,
		Status:    progressStatus,
	}
	if progressStatus == models.ProgressStatusCompleted {
		progress.CompletedAt = nowTimestamp()
	}

	data := map[string]interface{}{
		"progressId": progress.ID,
		"studentId":  progress.StudentID,
		"moduleId":   progress.ModuleID,
		"courseId":   progress.CourseID,
		"status":     progress.Status,
	}
	if progress.CompletedAt != "" {
		data["completedAt"] = progress.CompletedAt
	}
	return progress, data
}

// MarkComplete records the module as completed, stamping completedAt.
func (r *Repository) MarkComplete(ctx context.Context, studentID, moduleID, courseID string) (*models.Progress, error) {
	return r.RecordProgress(ctx, studentID, moduleID, courseID, models.ProgressStatusCompleted)
}

// GetProgressByTriple finds the record matching the (student, module,
// course) natural key.
func (r *Repository) GetProgressByTriple(ctx context.Context, studentID, moduleID, courseID string) (*models.Progress, error) {
	iter := r.progress().
		Where("studentId", "==", studentID).
		Where("moduleId", "==", moduleID).
		Where("courseId", "==", courseID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, lmserrors.ProgressNotFoundError
	}
	if err != nil {
		return nil, fmt.Errorf("error querying progress: %w", err)
	}
	return docToProgress(doc)
}

func (r *Repository) ListProgressByStudent(ctx context.Context, studentID string) ([]*models.Progress, error) {
	return r.listProgress(ctx, r.progress().Where("studentId", "==", studentID).Documents(ctx))
}

func (r *Repository) ListProgressByCourse(ctx context.Context, studentID, courseID string) ([]*models.Progress, error) {
	iter := r.progress().
		Where("studentId", "==", studentID).
		Where("courseId", "==", courseID).
		Documents(ctx)
	return r.listProgress(ctx, iter)
}

func (r *Repository) listProgress(ctx context.Context, iter *firestore.DocumentIterator) ([]*models.Progress, error) {
	defer iter.Stop()

	records := []*models.Progress{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing progress: %w", err)
		}
		progress, err := docToProgress(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, progress)
	}
	return records, nil
}

// CompletionStats summarizes the student's completion within one course.
func (r *Repository) CompletionStats(ctx context.Context, studentID, courseID string) (models.CompletionStats, error) {
	records, err := r.ListProgressByCourse(ctx, studentID, courseID)
	if err != nil {
		return models.CompletionStats{}, err
	}
	return models.ComputeCompletionStats(records), nil
}

func docToProgress(doc *firestore.DocumentSnapshot) (*models.Progress, error) {
	var p models.Progress
	if err := decodeDoc(doc, &p); err != nil {
		return nil, err
	}
	p.ID = doc.Ref.ID
	return &p, nil
}
