package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/repository"
	"github.com/google/uuid"
)

var testEmailCounter atomic.Int64

func NewTestUser(name string) *domain.User {
	n := testEmailCounter.Add(1)
	return &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     fmt.Sprintf("user%d@example.test", n),
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestWorkspace(name string) *domain.Workspace {
	now := time.Now().UTC()
	return &domain.Workspace{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Project options
type ProjectOption func(*domain.Project)

func WithGoal(goal string) ProjectOption {
	return func(p *domain.Project) {
		p.Goal = goal
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func NewTestProject(workspaceID, name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		Name:        name,
		Status:      domain.ProjectActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestEpic(projectID, title string, order int) *domain.Epic {
	now := time.Now().UTC()
	return &domain.Epic{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		Title:      title,
		Status:     domain.EpicBacklog,
		OrderIndex: order,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithEstimatedHours(h int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = &h
	}
}

func WithAssignee(userID string) TaskOption {
	return func(t *domain.Task) {
		t.AssigneeID = &userID
	}
}

func WithUpdatedAt(ts time.Time) TaskOption {
	return func(t *domain.Task) {
		t.UpdatedAt = ts
	}
}

func WithOrderIndex(i int) TaskOption {
	return func(t *domain.Task) {
		t.OrderIndex = i
	}
}

func NewTestTask(epic *domain.Epic, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: epic.ProjectID,
		EpicID:    epic.ID,
		Title:     title,
		Status:    domain.TaskTodo,
		Priority:  domain.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SeedProject persists a workspace and a project inside it.
func SeedProject(t *testing.T, repos repository.Set, name string, opts ...ProjectOption) *domain.Project {
	t.Helper()
	ctx := context.Background()

	ws := NewTestWorkspace(name + " workspace")
	if err := repos.Workspaces.Create(ctx, ws); err != nil {
		t.Fatalf("seeding workspace: %v", err)
	}
	p := NewTestProject(ws.ID, name, opts...)
	if err := repos.Projects.Create(ctx, p); err != nil {
		t.Fatalf("seeding project: %v", err)
	}
	return p
}

// SeedEpicWithTasks persists an epic under projectID plus one task per title.
func SeedEpicWithTasks(t *testing.T, repos repository.Set, projectID, epicTitle string, taskTitles ...string) (*domain.Epic, []*domain.Task) {
	t.Helper()
	ctx := context.Background()

	n, err := repos.Epics.CountByProject(ctx, projectID)
	if err != nil {
		t.Fatalf("counting epics: %v", err)
	}
	epic := NewTestEpic(projectID, epicTitle, n)
	if err := repos.Epics.Create(ctx, epic); err != nil {
		t.Fatalf("seeding epic: %v", err)
	}

	tasks := make([]*domain.Task, 0, len(taskTitles))
	for i, title := range taskTitles {
		task := NewTestTask(epic, title, WithOrderIndex(i))
		if err := repos.Tasks.Create(ctx, task); err != nil {
			t.Fatalf("seeding task: %v", err)
		}
		tasks = append(tasks, task)
	}
	return epic, tasks
}
