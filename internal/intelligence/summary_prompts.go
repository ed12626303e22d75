package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/epicboard/internal/domain"
)

const summarySystemPrompt = `You are a project assistant for epicboard. You write short, factual
status reports for the team. Plain text only, no Markdown headings.`

const summaryUserTemplate = `Based on these task updates, write a brief daily project status report.

%s

Include:
- What got completed today
- What's in progress
- Any blockers or issues
- Tomorrow's focus areas

Keep it to 2-3 paragraphs, concise and actionable.`

// summaryTask is the per-task context fed into the summary prompt.
type summaryTask struct {
	Task     *domain.Task
	Assignee string
	Updates  []*domain.TaskUpdate
}

func buildSummaryPrompt(tasks []summaryTask) string {
	blocks := make([]string, 0, len(tasks))
	for _, st := range tasks {
		updates := make([]string, 0, len(st.Updates))
		for _, u := range st.Updates {
			updates = append(updates, fmt.Sprintf("%q (%s)", u.Comment, u.NewStatus))
		}
		recent := strings.Join(updates, "; ")
		if recent == "" {
			recent = "No updates"
		}
		assignee := st.Assignee
		if assignee == "" {
			assignee = "Unassigned"
		}
		blocks = append(blocks, fmt.Sprintf("Task: %s\nStatus: %s\nAssigned: %s\nRecent updates: %s",
			st.Task.Title, st.Task.Status, assignee, recent))
	}
	return fmt.Sprintf(summaryUserTemplate, strings.Join(blocks, "\n\n"))
}
