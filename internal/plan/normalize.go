package plan

import (
	"fmt"
	"math"

	"github.com/alexanderramin/epicboard/internal/domain"
)

// suggestedPriorities is the set a model may pick from. CRITICAL is only
// ever set by a person.
var suggestedPriorities = map[string]domain.Priority{
	"LOW":    domain.PriorityLow,
	"MEDIUM": domain.PriorityMedium,
	"HIGH":   domain.PriorityHigh,
}

// Normalize coerces a parsed model response into a PlanDraft.
//
// The only failure is ErrNoEpicsProduced, returned when root is not an
// object or has no array under "epics". Everything below that level is
// coerced to defaults; a malformed task never affects its siblings.
// Normalize has no side effects and is safe for concurrent use.
func Normalize(root Value) (*PlanDraft, error) {
	epics, ok := root.Get("epics").Array()
	if !ok {
		return nil, fmt.Errorf("%w: root %s has no epics array", ErrNoEpicsProduced, root.Kind())
	}

	draft := &PlanDraft{Epics: make([]EpicDraft, 0, len(epics))}
	for _, e := range epics {
		draft.Epics = append(draft.Epics, normalizeEpic(e))
	}
	return draft, nil
}

// Decode runs the full text pipeline: Unwrap, Parse, Normalize.
func Decode(raw string) (*PlanDraft, error) {
	v, err := Parse(Unwrap(raw))
	if err != nil {
		return nil, err
	}
	return Normalize(v)
}

func normalizeEpic(v Value) EpicDraft {
	epic := EpicDraft{
		Title:       nonEmptyText(v.Get("title"), DefaultEpicTitle),
		Description: textOr(v.Get("description"), ""),
		Tasks:       []TaskDraft{},
	}

	tasks, ok := v.Get("tasks").Array()
	if !ok {
		return epic
	}
	epic.Tasks = make([]TaskDraft, 0, len(tasks))
	for _, t := range tasks {
		epic.Tasks = append(epic.Tasks, normalizeTask(t))
	}
	return epic
}

func normalizeTask(v Value) TaskDraft {
	return TaskDraft{
		Title:          nonEmptyText(v.Get("title"), DefaultTaskTitle),
		Description:    textOr(v.Get("description"), ""),
		EstimatedHours: coerceHours(v.Get("estimatedHours")),
		Priority:       clampPriority(v.Get("priority")),
	}
}

func textOr(v Value, fallback string) string {
	if s, ok := v.Text(); ok {
		return s
	}
	return fallback
}

func nonEmptyText(v Value, fallback string) string {
	if s, ok := v.Text(); ok && s != "" {
		return s
	}
	return fallback
}

func clampPriority(v Value) domain.Priority {
	s, _ := v.Text()
	if p, ok := suggestedPriorities[s]; ok {
		return p
	}
	return domain.PriorityMedium
}

// coerceHours passes numbers through unchanged and reads text as a leading
// base-10 integer ("8", " 12 hours", "-3"). Anything else is nil.
func coerceHours(v Value) *float64 {
	if n, ok := v.Number(); ok {
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return nil
		}
		return &n
	}
	if s, ok := v.Text(); ok {
		if n, ok := leadingInt(s); ok {
			return &n
		}
	}
	return nil
}

// leadingInt parses optional leading whitespace, an optional sign and at
// least one decimal digit. Characters after the digits are ignored.
func leadingInt(s string) (float64, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	var n float64
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + float64(s[i]-'0')
		i++
	}
	if i == start || math.IsInf(n, 0) {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
