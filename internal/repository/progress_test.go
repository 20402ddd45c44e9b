package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/lmserrors"
	"learnhub/internal/models"
)

// progressTable is an in-memory natural-key index standing in for the
// Firestore query behind GetProgressByTriple.
type progressTable map[[3]string]*models.Progress

func (t progressTable) find(_ context.Context, studentID, moduleID, courseID string) (*models.Progress, error) {
	if p, ok := t[[3]string{studentID, moduleID, courseID}]; ok {
		return p, nil
	}
	return nil, lmserrors.ProgressNotFoundError
}

func (t progressTable) put(p *models.Progress) {
	t[[3]string{p.StudentID, p.ModuleID, p.CourseID}] = p
}

func TestNewProgressRecordDefaultsToInProgress(t *testing.T) {
	table := progressTable{}

	progress, data := newProgressRecord(context.Background(), table.find, "stu-1", "mod-1", "course-1", "")

	assert.Equal(t, models.ProgressStatusInProgress, progress.Status)
	assert.Empty(t, progress.CompletedAt)
	assert.Equal(t, progress.ID, data["progressId"])
	assert.NotContains(t, data, "completedAt")
}

func TestNewProgressRecordReusesExistingID(t *testing.T) {
	table := progressTable{}
	ctx := context.Background()

	first, _ := newProgressRecord(ctx, table.find, "stu-1", "mod-1", "course-1", "")
	table.put(first)

	second, data := newProgressRecord(ctx, table.find, "stu-1", "mod-1", "course-1", models.ProgressStatusCompleted)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.ProgressStatusCompleted, second.Status)
	assert.NotEmpty(t, second.CompletedAt)
	assert.Equal(t, second.CompletedAt, data["completedAt"])
}

func TestNewProgressRecordDistinctTriplesGetDistinctIDs(t *testing.T) {
	table := progressTable{}
	ctx := context.Background()

	first, _ := newProgressRecord(ctx, table.find, "stu-1", "mod-1", "course-1", "")
	table.put(first)

	sameStudentOtherModule, _ := newProgressRecord(ctx, table.find, "stu-1", "mod-2", "course-1", "")
	otherStudent, _ := newProgressRecord(ctx, table.find, "stu-2", "mod-1", "course-1", "")

	assert.NotEqual(t, first.ID, sameStudentOtherModule.ID)
	assert.NotEqual(t, first.ID, otherStudent.ID)
}

// Like the other natural-key checks, the triple lookup is read-then-write:
// two simultaneous submissions that both miss the lookup each get a fresh
// ID, so the triple can briefly hold two records. Accepted.
func TestNewProgressRecordRaceWindowForksIDs(t *testing.T) {
	table := progressTable{}
	ctx := context.Background()

	first, _ := newProgressRecord(ctx, table.find, "stu-1", "mod-1", "course-1", "")
	second, _ := newProgressRecord(ctx, table.find, "stu-1", "mod-1", "course-1", "")

	require.NotEqual(t, first.ID, second.ID)
}
