package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCompletionStats(t *testing.T) {
	records := []*Progress{
		{Status: ProgressStatusCompleted},
		{Status: ProgressStatusCompleted},
		{Status: ProgressStatusInProgress},
		{Status: ProgressStatusInProgress},
	}

	stats := ComputeCompletionStats(records)

	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 4, stats.Total)
	assert.InDelta(t, 50.0, stats.Percentage, 0.001)
}

func TestComputeCompletionStatsEmpty(t *testing.T) {
	stats := ComputeCompletionStats(nil)

	assert.Equal(t, 0, stats.Completed)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.Percentage)
}

func TestComputeCompletionStatsAllCompleted(t *testing.T) {
	records := []*Progress{
		{Status: ProgressStatusCompleted},
		{Status: ProgressStatusCompleted},
	}

	stats := ComputeCompletionStats(records)

	assert.Equal(t, 2, stats.Completed)
	assert.InDelta(t, 100.0, stats.Percentage, 0.001)
}
