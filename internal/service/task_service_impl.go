package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/epicboard/internal/db"
	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/repository"
)

type taskService struct {
	repos    repository.Set
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

// NewTaskService creates a TaskService. repos serve reads and single-row
// writes; status changes and comments go through uow so that the task and
// its history entry land together.
func NewTaskService(repos repository.Set, uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	return &taskService{
		repos:    repos,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.repos.Tasks.GetByID(ctx, id)
}

func (s *taskService) UpdateStatus(ctx context.Context, taskID, userID string, status domain.TaskStatus) (task *domain.Task, err error) {
	startedAt := s.now()
	fields := map[string]any{"task": taskID, "status": string(status)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "update-task-status",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if !slices.Contains(domain.TaskStatuses, status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := repository.NewSQLiteSet(tx)

		t, err := repos.Tasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		author, err := resolveAuthor(ctx, repos.Users, userID)
		if err != nil {
			return err
		}

		old := t.Status
		now := s.now()
		t.Status = status
		t.UpdatedAt = now
		if err := repos.Tasks.Update(ctx, t); err != nil {
			return err
		}

		update := &domain.TaskUpdate{
			ID:        uuid.New().String(),
			TaskID:    t.ID,
			UserID:    author,
			OldStatus: &old,
			NewStatus: status,
			Comment:   fmt.Sprintf("Status changed to %s", status),
			CreatedAt: now,
		}
		if err := repos.TaskUpdates.Create(ctx, update); err != nil {
			return err
		}
		fields["old_status"] = string(old)
		task = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) AddComment(ctx context.Context, taskID, userID, comment string) (*domain.TaskUpdate, error) {
	comment = strings.TrimSpace(comment)
	if err := validateVar("comment", comment, "required,max=2000"); err != nil {
		return nil, err
	}

	var update *domain.TaskUpdate
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := repository.NewSQLiteSet(tx)

		t, err := repos.Tasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		author, err := resolveAuthor(ctx, repos.Users, userID)
		if err != nil {
			return err
		}

		update = &domain.TaskUpdate{
			ID:        uuid.New().String(),
			TaskID:    t.ID,
			UserID:    author,
			NewStatus: t.Status,
			Comment:   comment,
			CreatedAt: s.now(),
		}
		return repos.TaskUpdates.Create(ctx, update)
	})
	if err != nil {
		return nil, err
	}
	return update, nil
}

func (s *taskService) Assign(ctx context.Context, taskID, assigneeID string) (*domain.Task, error) {
	t, err := s.repos.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	assigneeID = strings.TrimSpace(assigneeID)
	if assigneeID == "" {
		t.AssigneeID = nil
	} else {
		if _, err := s.repos.Users.GetByID(ctx, assigneeID); err != nil {
			return nil, fmt.Errorf("resolving assignee: %w", err)
		}
		t.AssigneeID = &assigneeID
	}

	t.UpdatedAt = s.now()
	if err := s.repos.Tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// LogHours records the total hours spent so far. It replaces, not adds to,
// the previous value.
func (s *taskService) LogHours(ctx context.Context, taskID string, hours float64) (*domain.Task, error) {
	if err := validateVar("hours", hours, "gte=0,lte=100000"); err != nil {
		return nil, err
	}

	t, err := s.repos.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	t.ActualHours = &hours
	t.UpdatedAt = s.now()
	if err := s.repos.Tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Details(ctx context.Context, taskID string) (*domain.TaskDetails, error) {
	t, err := s.repos.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	d := &domain.TaskDetails{Task: t}

	if d.Epic, err = s.repos.Epics.GetByID(ctx, t.EpicID); err != nil {
		return nil, err
	}
	if t.AssigneeID != nil {
		d.Assignee, err = s.repos.Users.GetByID(ctx, *t.AssigneeID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	if d.Updates, err = s.repos.TaskUpdates.ListByTask(ctx, t.ID, 0); err != nil {
		return nil, err
	}
	if d.Risks, err = s.repos.Risks.ListByTask(ctx, t.ID); err != nil {
		return nil, err
	}
	return d, nil
}

// resolveAuthor returns nil for an anonymous change and fails for an
// unknown user id.
func resolveAuthor(ctx context.Context, users repository.UserRepo, userID string) (*string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}
	if _, err := users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("resolving author: %w", err)
	}
	return &userID, nil
}
