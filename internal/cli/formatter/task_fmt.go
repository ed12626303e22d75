package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/epicboard/internal/domain"
)

// FormatTaskDetails renders a task card: fields, history (newest first) and
// any detected risks.
func FormatTaskDetails(d *domain.TaskDetails, now time.Time) string {
	t := d.Task
	var b strings.Builder

	b.WriteString(StyleBold.Render(t.Title) + "\n")
	if t.Description != "" {
		b.WriteString(StyleFg.Render(t.Description) + "\n")
	}
	b.WriteString("\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-8s", label)), value))
	}
	field("ID", Dim(t.ID))
	if d.Epic != nil {
		field("EPIC", StylePurple.Render(d.Epic.Title))
	}
	field("STATUS", TaskStatusPill(t.Status))
	field("PRIORITY", PriorityBadge(t.Priority))
	field("HOURS", FormatHours(t.EstimatedHours, t.ActualHours))
	assignee := Dim("unassigned")
	if d.Assignee != nil {
		assignee = StyleFg.Render(d.Assignee.Name) + " " + Dim("<"+d.Assignee.Email+">")
	}
	field("ASSIGNED", assignee)
	field("UPDATED", HumanTimestampFrom(t.UpdatedAt, now))

	if len(d.Updates) > 0 {
		b.WriteString("\n" + Header("History") + "\n")
		for _, u := range d.Updates {
			b.WriteString(formatUpdateLine(u, now) + "\n")
		}
	}

	if len(d.Risks) > 0 {
		b.WriteString("\n" + Header("Risks") + "\n")
		for _, r := range d.Risks {
			b.WriteString(fmt.Sprintf("%s  %s  %s\n", SeverityBadge(r.Severity), StylePurple.Render(string(r.Type)), r.Description))
		}
	}

	return RenderBox("Task", strings.TrimRight(b.String(), "\n"))
}

func formatUpdateLine(u *domain.TaskUpdate, now time.Time) string {
	when := Dim(fmt.Sprintf("%-10s", HumanTimestampFrom(u.CreatedAt, now)))
	if u.OldStatus != nil && *u.OldStatus != u.NewStatus {
		return fmt.Sprintf("%s %s → %s", when, TaskStatusPill(*u.OldStatus), TaskStatusPill(u.NewStatus))
	}
	return fmt.Sprintf("%s %s", when, StyleFg.Render(u.Comment))
}
