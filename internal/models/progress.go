package models

const FirestoreProgressCollection = "lms-progress"

const (
	ProgressStatusInProgress = "in_progress"
	ProgressStatusCompleted  = "completed"
)

// Progress records a student's completion state for one module within one
// course. At most one record exists per (studentId, moduleId, courseId)
// triple; re-submissions overwrite the existing record under its original ID.
type Progress struct {
	ID          string `json:"progressId" mapstructure:"progressId"`
	StudentID   string `json:"studentId" mapstructure:"studentId"`
	ModuleID    string `json:"moduleId" mapstructure:"moduleId"`
	CourseID    string `json:"courseId" mapstructure:"courseId"`
	Status      string `json:"status" mapstructure:"status"`
	CompletedAt string `json:"completedAt,omitempty" mapstructure:"completedAt"`
}

// RecordProgressRequest is the parameter struct for RecordProgress and
// MarkComplete.
type RecordProgressRequest struct {
	ModuleID string `json:"moduleId"`
	CourseID string `json:"courseId"`
	Status   string `json:"status"`
}

// CompletionStats summarizes a student's progress within one course.
type CompletionStats struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ComputeCompletionStats derives completion counts from the progress records
// of a single (student, course) pair.
func ComputeCompletionStats(records []*Progress) CompletionStats {
	stats := CompletionStats{Total: len(records)}
	for _, p := range records {
		if p.Status == ProgressStatusCompleted {
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.Percentage = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}
