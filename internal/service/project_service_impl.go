package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/plan"
	"github.com/alexanderramin/epicboard/internal/repository"
)

type projectService struct {
	projects   repository.ProjectRepo
	workspaces repository.WorkspaceRepo
	epics      repository.EpicRepo
	tasks      repository.TaskRepo
	planner    Planner
	observer   UseCaseObserver
}

// NewProjectService creates a ProjectService. planner may be nil, in which
// case projects are created without a generated plan.
func NewProjectService(
	projects repository.ProjectRepo,
	workspaces repository.WorkspaceRepo,
	epics repository.EpicRepo,
	tasks repository.TaskRepo,
	planner Planner,
	observers ...UseCaseObserver,
) ProjectService {
	return &projectService{
		projects:   projects,
		workspaces: workspaces,
		epics:      epics,
		tasks:      tasks,
		planner:    planner,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (result *CreateProjectResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"workspace": in.WorkspaceID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create-project",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	in.WorkspaceID = strings.TrimSpace(in.WorkspaceID)
	in.Name = strings.TrimSpace(in.Name)
	in.Goal = strings.TrimSpace(in.Goal)

	if in.WorkspaceID == "" || in.WorkspaceID == "undefined" {
		return nil, ErrInvalidWorkspace
	}
	if err = validateStruct(in); err != nil {
		return nil, err
	}
	if _, err = s.workspaces.GetByID(ctx, in.WorkspaceID); err != nil {
		return nil, fmt.Errorf("resolving workspace: %w", err)
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:          uuid.New().String(),
		WorkspaceID: in.WorkspaceID,
		Name:        in.Name,
		Goal:        in.Goal,
		Status:      domain.ProjectActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	fields["project"] = p.ID

	result = &CreateProjectResult{Project: p}
	if s.planner == nil {
		fields["planned"] = false
		return result, nil
	}

	result.Plan, result.PlanErr = s.runPlanner(ctx, p)
	fields["planned"] = result.PlanErr == nil
	return result, nil
}

func (s *projectService) GeneratePlan(ctx context.Context, id string) (*plan.Result, error) {
	if s.planner == nil {
		return nil, ErrPlanningDisabled
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.runPlanner(ctx, p)
}

// runPlanner reports its own use-case event so that a failed plan is
// logged even when the caller swallows the error.
func (s *projectService) runPlanner(ctx context.Context, p *domain.Project) (res *plan.Result, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": p.ID}
	defer func() {
		if res != nil {
			fields["epic_count"] = res.EpicCount
			fields["task_count"] = res.TaskCount
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	return s.planner.GeneratePlan(ctx, p.ID, p.Goal)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Project, error) {
	return s.projects.ListByWorkspace(ctx, workspaceID)
}

func (s *projectService) Update(ctx context.Context, id string, in UpdateProjectInput) (*domain.Project, error) {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a project; epics, tasks, history and risks cascade.
func (s *projectService) Delete(ctx context.Context, id string) error {
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}

func (s *projectService) Board(ctx context.Context, id string) (*domain.ProjectBoard, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	epics, err := s.epics.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}

	board := &domain.ProjectBoard{Project: p, Epics: make([]*domain.EpicWithTasks, 0, len(epics))}
	for _, e := range epics {
		tasks, err := s.tasks.ListByEpic(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("loading tasks for epic %q: %w", e.Title, err)
		}
		board.Epics = append(board.Epics, &domain.EpicWithTasks{Epic: e, Tasks: tasks})
	}
	return board, nil
}
