package domain

// ProjectBoard is a project with its epics and their tasks, in board order.
type ProjectBoard struct {
	Project *Project
	Epics   []*EpicWithTasks
}

// TasksByStatus groups every task on the board into kanban columns. Each
// column keeps epic order, then task order within the epic.
func (b *ProjectBoard) TasksByStatus() map[TaskStatus][]*Task {
	cols := make(map[TaskStatus][]*Task, len(TaskStatuses))
	for _, e := range b.Epics {
		for _, t := range e.Tasks {
			cols[t.Status] = append(cols[t.Status], t)
		}
	}
	return cols
}

// Progress returns the number of DONE tasks and the total task count.
func (b *ProjectBoard) Progress() (done, total int) {
	for _, e := range b.Epics {
		for _, t := range e.Tasks {
			total++
			if t.Status == TaskDone {
				done++
			}
		}
	}
	return done, total
}

// TaskDetails is a task with its assignee, history (newest first) and risks.
type TaskDetails struct {
	Task     *Task
	Epic     *Epic
	Assignee *User
	Updates  []*TaskUpdate
	Risks    []*Risk
}
