package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/epicboard/internal/plan"
)

// Persister stores a plan draft under a project.
type Persister interface {
	Persist(ctx context.Context, projectID string, draft *plan.PlanDraft) (*plan.Result, error)
}

// Importer loads hand-written plan files into existing projects.
type Importer struct {
	persister Persister
}

func New(persister Persister) *Importer {
	return &Importer{persister: persister}
}

// ImportFile validates the file at path and appends its epics and tasks to
// the project. Nothing is written when validation fails.
func (i *Importer) ImportFile(ctx context.Context, projectID, path string) (*plan.Result, error) {
	f, err := LoadPlanFile(path)
	if err != nil {
		return nil, err
	}
	if errs := ValidatePlanFile(f); len(errs) > 0 {
		return nil, fmt.Errorf("invalid plan file: %w", errors.Join(errs...))
	}
	return i.persister.Persist(ctx, projectID, Convert(f))
}
