package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFoldsLegacySingularField(t *testing.T) {
	course := &Course{InstructorID: "inst-1"}
	course.Normalize()

	assert.Equal(t, []string{"inst-1"}, course.InstructorIDs)
	assert.Equal(t, "inst-1", course.InstructorID)
}

func TestNormalizeProjectsFirstInstructor(t *testing.T) {
	course := &Course{
		InstructorIDs: []string{"inst-2", "inst-1"},
		InstructorID:  "stale-value",
	}
	course.Normalize()

	assert.Equal(t, "inst-2", course.InstructorID)
	assert.Equal(t, []string{"inst-2", "inst-1"}, course.InstructorIDs)
}

func TestNormalizeClearsProjectionWhenUnowned(t *testing.T) {
	course := &Course{}
	course.Normalize()

	assert.Empty(t, course.InstructorIDs)
	assert.Equal(t, "", course.InstructorID)
}

func TestHasInstructorMatchesBothRepresentations(t *testing.T) {
	plural := &Course{InstructorIDs: []string{"inst-1", "inst-2"}}
	assert.True(t, plural.HasInstructor("inst-2"))
	assert.False(t, plural.HasInstructor("inst-3"))

	legacy := &Course{InstructorID: "inst-1"}
	assert.True(t, legacy.HasInstructor("inst-1"))

	assert.False(t, plural.HasInstructor(""))
}

func TestAddInstructorIsIdempotent(t *testing.T) {
	course := &Course{InstructorIDs: []string{"inst-1"}}

	course.AddInstructor("inst-2")
	course.AddInstructor("inst-2")

	assert.Equal(t, []string{"inst-1", "inst-2"}, course.InstructorIDs)
	assert.Equal(t, "inst-1", course.InstructorID)
}
