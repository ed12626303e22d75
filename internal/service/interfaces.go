package service

import (
	"context"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/plan"
)

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// Resolve accepts a user id or an email address.
	Resolve(ctx context.Context, ref string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type WorkspaceService interface {
	Create(ctx context.Context, in CreateWorkspaceInput) (*domain.Workspace, error)
	GetByID(ctx context.Context, id string) (*domain.Workspace, error)
	List(ctx context.Context) ([]*domain.Workspace, error)
}

// CreateProjectResult reports the created project and how planning went.
// A planning failure leaves Plan nil and sets PlanErr; the project itself
// is still created.
type CreateProjectResult struct {
	Project *domain.Project
	Plan    *plan.Result
	PlanErr error
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*CreateProjectResult, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Project, error)
	Update(ctx context.Context, id string, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	Board(ctx context.Context, id string) (*domain.ProjectBoard, error)
	// GeneratePlan re-runs plan generation for an existing project's goal.
	GeneratePlan(ctx context.Context, id string) (*plan.Result, error)
}

type TaskService interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	UpdateStatus(ctx context.Context, taskID, userID string, status domain.TaskStatus) (*domain.Task, error)
	AddComment(ctx context.Context, taskID, userID, comment string) (*domain.TaskUpdate, error)
	// Assign sets the assignee; an empty assigneeID unassigns.
	Assign(ctx context.Context, taskID, assigneeID string) (*domain.Task, error)
	LogHours(ctx context.Context, taskID string, hours float64) (*domain.Task, error)
	Details(ctx context.Context, taskID string) (*domain.TaskDetails, error)
}

// Planner generates and persists a plan for a project goal.
type Planner interface {
	GeneratePlan(ctx context.Context, projectID, goal string) (*plan.Result, error)
}
