package domain

import "time"

type Epic struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Status      EpicStatus
	OrderIndex  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EpicWithTasks is an epic together with its tasks in creation order.
type EpicWithTasks struct {
	Epic  *Epic
	Tasks []*Task
}
