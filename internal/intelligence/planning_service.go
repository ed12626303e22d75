package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/epicboard/internal/llm"
	"github.com/alexanderramin/epicboard/internal/plan"
)

// ErrEmptyGoal is returned when plan generation is asked for without a goal.
var ErrEmptyGoal = errors.New("project goal is empty")

// PlanningService turns a project goal into persisted epics and tasks.
type PlanningService interface {
	GeneratePlan(ctx context.Context, projectID, goal string) (*plan.Result, error)
}

// PlanPersister writes a normalized draft for a project.
type PlanPersister interface {
	Persist(ctx context.Context, projectID string, draft *plan.PlanDraft) (*plan.Result, error)
}

type planningService struct {
	client    llm.LLMClient
	persister PlanPersister
}

// NewPlanningService creates a PlanningService backed by an LLM client.
func NewPlanningService(client llm.LLMClient, persister PlanPersister) PlanningService {
	return &planningService{client: client, persister: persister}
}

// GeneratePlan makes one model call, normalizes the answer and persists it.
// A malformed or epic-less answer writes nothing; the returned error still
// matches plan.ErrMalformedResponse or plan.ErrNoEpicsProduced.
func (s *planningService) GeneratePlan(ctx context.Context, projectID, goal string) (*plan.Result, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, ErrEmptyGoal
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   buildPlanPrompt(goal),
	})
	if err != nil {
		return nil, fmt.Errorf("llm plan generation failed: %w", err)
	}

	draft, err := plan.Decode(orEmptyObject(resp.Text))
	if err != nil {
		return nil, fmt.Errorf("normalizing plan: %w", err)
	}

	res, err := s.persister.Persist(ctx, projectID, draft)
	if err != nil {
		return nil, fmt.Errorf("persisting plan: %w", err)
	}
	return res, nil
}

// orEmptyObject maps an empty completion to "{}" so that it reads as a
// response without epics rather than as malformed JSON.
func orEmptyObject(text string) string {
	if strings.TrimSpace(text) == "" {
		return "{}"
	}
	return text
}
