package plan

import "github.com/alexanderramin/epicboard/internal/domain"

const (
	DefaultEpicTitle = "Untitled Epic"
	DefaultTaskTitle = "Untitled Task"
)

// PlanDraft is a normalized plan, not yet persisted. Epics keep the order
// the model emitted them in.
type PlanDraft struct {
	Epics []EpicDraft `json:"epics"`
}

// EpicDraft is one normalized epic. Title is never empty and Tasks is never
// nil.
type EpicDraft struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Tasks       []TaskDraft `json:"tasks"`
}

// TaskDraft is one normalized task. EstimatedHours is nil when the model
// gave nothing usable; Priority is always LOW, MEDIUM or HIGH.
type TaskDraft struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	EstimatedHours *float64        `json:"estimatedHours"`
	Priority       domain.Priority `json:"priority"`
}

// TaskCount returns the number of tasks across all epics.
func (d *PlanDraft) TaskCount() int {
	n := 0
	for _, e := range d.Epics {
		n += len(e.Tasks)
	}
	return n
}
