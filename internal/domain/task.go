package domain

import "time"

type Task struct {
	ID          string
	ProjectID   string
	EpicID      string
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	OrderIndex  int

	EstimatedHours *int
	ActualHours    *float64
	AssigneeID     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DaysSinceUpdate returns the number of whole days between UpdatedAt and now.
func (t *Task) DaysSinceUpdate(now time.Time) int {
	d := now.Sub(t.UpdatedAt)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

// TaskUpdate is an append-only history entry for a task: either a status
// change or a comment.
type TaskUpdate struct {
	ID        string
	TaskID    string
	UserID    *string
	OldStatus *TaskStatus
	NewStatus TaskStatus
	Comment   string
	CreatedAt time.Time
}
