package plan

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/epicboard/internal/db"
	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/repository"
)

// Result is what a persisted plan produced.
type Result struct {
	Epics     []*domain.EpicWithTasks
	EpicCount int
	TaskCount int
}

// Persister writes a PlanDraft to the store. Every epic and task of one
// draft is written inside a single transaction; any failure rolls the whole
// plan back.
type Persister struct {
	uow    db.UnitOfWork
	stores func(tx db.DBTX) repository.Set
	now    func() time.Time
	newID  func() string
}

// NewPersister creates a Persister writing SQLite repositories through uow.
func NewPersister(uow db.UnitOfWork) *Persister {
	return &Persister{
		uow:    uow,
		stores: repository.NewSQLiteSet,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
	}
}

// Persist creates each epic (BACKLOG) followed by its tasks (TODO) for the
// given project. New epics are numbered after any the project already has,
// so regenerating a plan appends rather than interleaves.
func (p *Persister) Persist(ctx context.Context, projectID string, draft *PlanDraft) (*Result, error) {
	res := &Result{}
	err := p.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := p.stores(tx)

		base, err := repos.Epics.CountByProject(ctx, projectID)
		if err != nil {
			return err
		}

		out := make([]*domain.EpicWithTasks, 0, len(draft.Epics))
		taskCount := 0
		for i, ed := range draft.Epics {
			now := p.now()
			epic := &domain.Epic{
				ID:          p.newID(),
				ProjectID:   projectID,
				Title:       ed.Title,
				Description: ed.Description,
				Status:      domain.EpicBacklog,
				OrderIndex:  base + i,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := repos.Epics.Create(ctx, epic); err != nil {
				return fmt.Errorf("creating epic %q: %w", ed.Title, err)
			}

			ewt := &domain.EpicWithTasks{Epic: epic, Tasks: make([]*domain.Task, 0, len(ed.Tasks))}
			for j, td := range ed.Tasks {
				task := &domain.Task{
					ID:             p.newID(),
					ProjectID:      projectID,
					EpicID:         epic.ID,
					Title:          td.Title,
					Description:    td.Description,
					Status:         domain.TaskTodo,
					Priority:       td.Priority,
					OrderIndex:     j,
					EstimatedHours: wholeHours(td.EstimatedHours),
					CreatedAt:      now,
					UpdatedAt:      now,
				}
				if err := repos.Tasks.Create(ctx, task); err != nil {
					return fmt.Errorf("creating task %q: %w", td.Title, err)
				}
				ewt.Tasks = append(ewt.Tasks, task)
			}
			taskCount += len(ewt.Tasks)
			out = append(out, ewt)
		}

		res.Epics = out
		res.EpicCount = len(out)
		res.TaskCount = taskCount
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// wholeHours truncates toward zero. Values outside the int32 range are
// dropped rather than wrapped.
func wholeHours(h *float64) *int {
	if h == nil {
		return nil
	}
	t := math.Trunc(*h)
	if t > math.MaxInt32 || t < math.MinInt32 {
		return nil
	}
	n := int(t)
	return &n
}
