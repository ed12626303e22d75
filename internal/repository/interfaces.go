package repository

import (
	"context"

	"github.com/alexanderramin/epicboard/internal/db"
	"github.com/alexanderramin/epicboard/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type WorkspaceRepo interface {
	Create(ctx context.Context, w *domain.Workspace) error
	GetByID(ctx context.Context, id string) (*domain.Workspace, error)
	List(ctx context.Context) ([]*domain.Workspace, error)
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type EpicRepo interface {
	Create(ctx context.Context, e *domain.Epic) error
	GetByID(ctx context.Context, id string) (*domain.Epic, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Epic, error)
	CountByProject(ctx context.Context, projectID string) (int, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByEpic(ctx context.Context, epicID string) ([]*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
}

type TaskUpdateRepo interface {
	Create(ctx context.Context, u *domain.TaskUpdate) error
	ListByTask(ctx context.Context, taskID string, limit int) ([]*domain.TaskUpdate, error)
}

type RiskRepo interface {
	Create(ctx context.Context, r *domain.Risk) error
	ListByTask(ctx context.Context, taskID string) ([]*domain.Risk, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Risk, error)
}

// Set bundles every repository bound to the same connection, so callers
// inside a unit of work can build the whole set from one tx.
type Set struct {
	Users       UserRepo
	Workspaces  WorkspaceRepo
	Projects    ProjectRepo
	Epics       EpicRepo
	Tasks       TaskRepo
	TaskUpdates TaskUpdateRepo
	Risks       RiskRepo
}

// NewSQLiteSet creates SQLite-backed repositories over conn, which may be a
// *sql.DB or a *sql.Tx.
func NewSQLiteSet(conn db.DBTX) Set {
	return Set{
		Users:       NewSQLiteUserRepo(conn),
		Workspaces:  NewSQLiteWorkspaceRepo(conn),
		Projects:    NewSQLiteProjectRepo(conn),
		Epics:       NewSQLiteEpicRepo(conn),
		Tasks:       NewSQLiteTaskRepo(conn),
		TaskUpdates: NewSQLiteTaskUpdateRepo(conn),
		Risks:       NewSQLiteRiskRepo(conn),
	}
}
