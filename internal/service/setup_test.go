package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/plan"
	"github.com/alexanderramin/epicboard/internal/repository"
	"github.com/alexanderramin/epicboard/internal/testutil"
)

func setupRepos(t *testing.T) (repository.Set, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteSet(database), database
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) find(name string) (UseCaseEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Name == name {
			return e, true
		}
	}
	return UseCaseEvent{}, false
}

// stubPlanner records calls and optionally persists a fixed draft.
type stubPlanner struct {
	persister *plan.Persister
	draft     *plan.PlanDraft
	err       error
	calls     []string
}

func (p *stubPlanner) GeneratePlan(ctx context.Context, projectID, goal string) (*plan.Result, error) {
	p.calls = append(p.calls, goal)
	if p.err != nil {
		return nil, p.err
	}
	return p.persister.Persist(ctx, projectID, p.draft)
}

func oneEpicDraft() *plan.PlanDraft {
	return &plan.PlanDraft{Epics: []plan.EpicDraft{{
		Title: "Auth",
		Tasks: []plan.TaskDraft{
			{Title: "Login", Priority: domain.PriorityHigh},
			{Title: "Logout", Priority: domain.PriorityLow},
		},
	}}}
}
