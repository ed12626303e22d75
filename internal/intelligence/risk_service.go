package intelligence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/epicboard/internal/db"
	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/llm"
	"github.com/alexanderramin/epicboard/internal/plan"
	"github.com/alexanderramin/epicboard/internal/repository"
)

// ErrNoRisksProduced is returned when the model answer has no "risks" array.
var ErrNoRisksProduced = errors.New("no risks produced")

// RiskDraft is one normalized risk entry, not yet matched to a task.
type RiskDraft struct {
	TaskTitle   string
	Type        domain.RiskType
	Severity    domain.RiskSeverity
	Description string
}

// RiskReport is the outcome of one detection run.
type RiskReport struct {
	Risks   []*domain.Risk
	Skipped int // entries whose taskTitle matched no task
}

// RiskService detects and lists delivery risks for a project.
type RiskService interface {
	Detect(ctx context.Context, projectID string) (*RiskReport, error)
	List(ctx context.Context, projectID string) ([]*domain.Risk, error)
}

type riskService struct {
	client llm.LLMClient
	tasks  repository.TaskRepo
	risks  repository.RiskRepo
	uow    db.UnitOfWork
	now    func() time.Time
}

// NewRiskService creates a RiskService. Reads go through the given repos;
// detected risks are written inside uow.
func NewRiskService(client llm.LLMClient, tasks repository.TaskRepo, risks repository.RiskRepo, uow db.UnitOfWork) RiskService {
	return &riskService{
		client: client,
		tasks:  tasks,
		risks:  risks,
		uow:    uow,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *riskService) List(ctx context.Context, projectID string) ([]*domain.Risk, error) {
	return s.risks.ListByProject(ctx, projectID)
}

// Detect asks the model about the project's tasks and stores every risk
// that names an existing task. A project without tasks yields an empty
// report without calling the model.
func (s *riskService) Detect(ctx context.Context, projectID string) (*RiskReport, error) {
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	if len(tasks) == 0 {
		return &RiskReport{}, nil
	}

	now := s.now()
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRisk,
		SystemPrompt: riskSystemPrompt,
		UserPrompt:   buildRiskPrompt(tasks, now),
	})
	if err != nil {
		return nil, fmt.Errorf("llm risk detection failed: %w", err)
	}

	v, err := plan.Parse(plan.Unwrap(orEmptyObject(resp.Text)))
	if err != nil {
		return nil, fmt.Errorf("normalizing risks: %w", err)
	}
	drafts, err := NormalizeRisks(v)
	if err != nil {
		return nil, fmt.Errorf("normalizing risks: %w", err)
	}

	// First task wins when titles repeat.
	byTitle := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		if _, ok := byTitle[t.Title]; !ok {
			byTitle[t.Title] = t
		}
	}

	report := &RiskReport{Risks: make([]*domain.Risk, 0, len(drafts))}
	for _, d := range drafts {
		task, ok := byTitle[d.TaskTitle]
		if !ok {
			report.Skipped++
			continue
		}
		report.Risks = append(report.Risks, &domain.Risk{
			ID:          uuid.New().String(),
			TaskID:      task.ID,
			Type:        d.Type,
			Severity:    d.Severity,
			Description: d.Description,
			CreatedAt:   now,
		})
	}

	if len(report.Risks) == 0 {
		return report, nil
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		risks := repository.NewSQLiteRiskRepo(tx)
		for _, r := range report.Risks {
			if err := risks.Create(ctx, r); err != nil {
				return fmt.Errorf("creating risk for task %s: %w", r.TaskID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// NormalizeRisks coerces a parsed model answer into risk drafts. Unknown
// types become TIMELINE_RISK, unknown severities MEDIUM, and a missing
// description is empty. Only a missing "risks" array is an error.
func NormalizeRisks(root plan.Value) ([]RiskDraft, error) {
	items, ok := root.Get("risks").Array()
	if !ok {
		return nil, fmt.Errorf("%w: root %s has no risks array", ErrNoRisksProduced, root.Kind())
	}

	out := make([]RiskDraft, 0, len(items))
	for _, it := range items {
		title, _ := it.Get("taskTitle").Text()
		typ, _ := it.Get("type").Text()
		sev, _ := it.Get("severity").Text()
		desc, _ := it.Get("description").Text()

		d := RiskDraft{
			TaskTitle:   title,
			Type:        domain.RiskType(typ),
			Severity:    domain.RiskSeverity(sev),
			Description: desc,
		}
		if !domain.ValidRiskTypes[d.Type] {
			d.Type = domain.RiskTimeline
		}
		if !domain.ValidRiskSeverities[d.Severity] {
			d.Severity = domain.SeverityMedium
		}
		out = append(out, d)
	}
	return out, nil
}
