package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/epicboard/internal/domain"
)

var validPriorities = map[domain.Priority]bool{
	domain.PriorityLow: true, domain.PriorityMedium: true,
	domain.PriorityHigh: true, domain.PriorityCritical: true,
}

// ValidatePlanFile checks the import file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePlanFile(f *PlanFile) []error {
	var errs []error

	if len(f.Epics) == 0 {
		errs = append(errs, fmt.Errorf("epics: at least one epic is required"))
	}

	epicTitles := make(map[string]bool)
	for i, e := range f.Epics {
		prefix := fmt.Sprintf("epics[%d]", i)

		title := strings.TrimSpace(e.Title)
		switch {
		case title == "":
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		case epicTitles[title]:
			errs = append(errs, fmt.Errorf("%s.title: duplicate epic %q", prefix, title))
		default:
			epicTitles[title] = true
		}

		for j, t := range e.Tasks {
			errs = append(errs, validateTask(fmt.Sprintf("%s.tasks[%d]", prefix, j), t)...)
		}
	}

	return errs
}

func validateTask(prefix string, t TaskImport) []error {
	var errs []error

	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if t.Priority != "" && !validPriorities[domain.Priority(strings.ToUpper(t.Priority))] {
		errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
	}
	if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
		errs = append(errs, fmt.Errorf("%s.estimated_hours must not be negative", prefix))
	}

	return errs
}
