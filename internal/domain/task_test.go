package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskStatus(t *testing.T) {
	cases := []struct {
		in   string
		want TaskStatus
		ok   bool
	}{
		{"TODO", TaskTodo, true},
		{"todo", TaskTodo, true},
		{"in-progress", TaskInProgress, true},
		{"In Review", TaskInReview, true},
		{" done ", TaskDone, true},
		{"blocked", TaskBlocked, true},
		{"finished", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseTaskStatus(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestTask_DaysSinceUpdate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	task := &Task{UpdatedAt: now.Add(-50 * time.Hour)}
	assert.Equal(t, 2, task.DaysSinceUpdate(now))

	task.UpdatedAt = now.Add(time.Hour)
	assert.Equal(t, 0, task.DaysSinceUpdate(now), "future timestamps clamp to zero")
}

func TestProject_DisplayID(t *testing.T) {
	p := &Project{ID: "0123456789abcdef"}
	assert.Equal(t, "01234567", p.DisplayID())

	p.ID = "abc"
	assert.Equal(t, "abc", p.DisplayID())
}

func TestProjectBoard_Columns(t *testing.T) {
	todo := &Task{ID: "a", Status: TaskTodo}
	done := &Task{ID: "b", Status: TaskDone}
	blocked := &Task{ID: "c", Status: TaskBlocked}
	later := &Task{ID: "d", Status: TaskTodo}

	board := &ProjectBoard{Epics: []*EpicWithTasks{
		{Epic: &Epic{ID: "e1"}, Tasks: []*Task{todo, done}},
		{Epic: &Epic{ID: "e2"}, Tasks: []*Task{blocked, later}},
	}}

	cols := board.TasksByStatus()
	assert.Equal(t, []*Task{todo, later}, cols[TaskTodo])
	assert.Equal(t, []*Task{done}, cols[TaskDone])
	assert.Equal(t, []*Task{blocked}, cols[TaskBlocked])
	assert.Empty(t, cols[TaskInReview])

	d, total := board.Progress()
	assert.Equal(t, 1, d)
	assert.Equal(t, 4, total)
}

func TestParseProjectStatus(t *testing.T) {
	st, ok := ParseProjectStatus("on hold")
	assert.True(t, ok)
	assert.Equal(t, ProjectOnHold, st)

	_, ok = ParseProjectStatus("paused")
	assert.False(t, ok)
}
