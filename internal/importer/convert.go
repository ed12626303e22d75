package importer

import (
	"strings"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/plan"
)

// Convert transforms a validated PlanFile into a plan draft ready for
// persistence. Call ValidatePlanFile first; Convert assumes the file is
// valid. Missing priorities default to MEDIUM.
func Convert(f *PlanFile) *plan.PlanDraft {
	draft := &plan.PlanDraft{Epics: make([]plan.EpicDraft, 0, len(f.Epics))}
	for _, e := range f.Epics {
		ed := plan.EpicDraft{
			Title:       strings.TrimSpace(e.Title),
			Description: e.Description,
			Tasks:       make([]plan.TaskDraft, 0, len(e.Tasks)),
		}
		for _, t := range e.Tasks {
			priority := domain.Priority(strings.ToUpper(t.Priority))
			if priority == "" {
				priority = domain.PriorityMedium
			}
			ed.Tasks = append(ed.Tasks, plan.TaskDraft{
				Title:          strings.TrimSpace(t.Title),
				Description:    t.Description,
				EstimatedHours: t.EstimatedHours,
				Priority:       priority,
			})
		}
		draft.Epics = append(draft.Epics, ed)
	}
	return draft
}
