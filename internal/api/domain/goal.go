package domain

import "time"

// Goal priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Goal statuses.
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusPaused     = "paused"
)

var (
	GoalPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
	GoalStatuses   = []string{StatusNotStarted, StatusInProgress, StatusCompleted, StatusPaused}
)

// ValidPriority reports whether p is a known goal priority.
func ValidPriority(p string) bool {
	for _, v := range GoalPriorities {
		if v == p {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known goal status.
func ValidStatus(s string) bool {
	for _, v := range GoalStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Goal struct {
	ID          string
	UserID      string
	Title       string
	Description string // optional, <= 1000 chars
	TargetSkill string
	Priority    string
	Status      string
	TargetDate  *time.Time
	Progress    int // 0..100
	Resources   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Overdue reports whether the goal has a target date in the past and is not
// yet completed.
func (g Goal) Overdue(now time.Time) bool {
	return g.TargetDate != nil && g.TargetDate.Before(now) && g.Status != StatusCompleted
}

// ReconcileProgress derives the status implied by a progress value. It is
// applied on every write so the two fields can never drift apart:
//
//	progress 0   -> not-started
//	progress 100 -> completed
//	intermediate progress -> in-progress, unless the goal is paused
//
// Intermediate progress reopens a completed goal. Explicitly marking a goal
// completed while progress is below 100 is settled by the caller forcing
// progress to 100 before the write.
func ReconcileProgress(status string, progress int) (string, int) {
	switch {
	case progress == 100:
		return StatusCompleted, 100
	case progress == 0:
		return StatusNotStarted, 0
	default:
		if status == StatusPaused {
			return StatusPaused, progress
		}
		return StatusInProgress, progress
	}
}
