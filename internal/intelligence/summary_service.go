package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/epicboard/internal/llm"
	"github.com/alexanderramin/epicboard/internal/repository"
)

// summaryUpdatesPerTask caps how much history each task contributes.
const summaryUpdatesPerTask = 5

// SummaryService writes a daily status report for a project.
type SummaryService interface {
	DailySummary(ctx context.Context, projectID string) (string, error)
}

type summaryService struct {
	client  llm.LLMClient
	tasks   repository.TaskRepo
	updates repository.TaskUpdateRepo
	users   repository.UserRepo
}

// NewSummaryService creates a SummaryService backed by an LLM client.
func NewSummaryService(client llm.LLMClient, tasks repository.TaskRepo, updates repository.TaskUpdateRepo, users repository.UserRepo) SummaryService {
	return &summaryService{client: client, tasks: tasks, updates: updates, users: users}
}

// DailySummary returns the model's report as trimmed text. The answer is
// free-form, so no structural checks apply.
func (s *summaryService) DailySummary(ctx context.Context, projectID string) (string, error) {
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("loading tasks: %w", err)
	}

	names := make(map[string]string)
	input := make([]summaryTask, 0, len(tasks))
	for _, t := range tasks {
		st := summaryTask{Task: t}

		if t.AssigneeID != nil {
			name, ok := names[*t.AssigneeID]
			if !ok {
				u, err := s.users.GetByID(ctx, *t.AssigneeID)
				switch {
				case err == nil:
					name = u.Name
				case errors.Is(err, repository.ErrNotFound):
				default:
					return "", fmt.Errorf("loading assignee: %w", err)
				}
				names[*t.AssigneeID] = name
			}
			st.Assignee = name
		}

		st.Updates, err = s.updates.ListByTask(ctx, t.ID, summaryUpdatesPerTask)
		if err != nil {
			return "", fmt.Errorf("loading updates for %q: %w", t.Title, err)
		}
		input = append(input, st)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummary,
		SystemPrompt: summarySystemPrompt,
		UserPrompt:   buildSummaryPrompt(input),
	})
	if err != nil {
		return "", fmt.Errorf("llm summary failed: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
