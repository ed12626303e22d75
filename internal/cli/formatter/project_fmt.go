package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/plan"
)

// kanbanColumnWidth is the inner width of one board column.
const kanbanColumnWidth = 26

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project, now time.Time) string {
	headers := []string{"ID", "NAME", "STATUS", "GOAL", "UPDATED"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			ProjectStatusPill(p.Status),
			Truncate(p.Goal, 40),
			HumanTimestampFrom(p.UpdatedAt, now),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectShow renders the project card: metadata on the left, the
// epic/task tree on the right.
func FormatProjectShow(board *domain.ProjectBoard, now time.Time) string {
	left := buildMetadataPanel(board.Project, now)
	right := buildTreePanel(board)
	return RenderBox("", lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
}

func buildMetadataPanel(p *domain.Project, now time.Time) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Name) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS "), ProjectStatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID     "), Dim(p.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CREATED"), StyleFg.Render(p.CreatedAt.Format("Jan 2, 2006"))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UPDATED"), HumanTimestampFrom(p.UpdatedAt, now)))
	if p.Goal != "" {
		b.WriteString("\n" + StyleDim.Render("GOAL") + "\n")
		b.WriteString(StyleFg.Render(p.Goal) + "\n")
	}

	return lipgloss.NewStyle().Width(45).Render(b.String())
}

func buildTreePanel(board *domain.ProjectBoard) string {
	if len(board.Epics) == 0 {
		return StyleDim.Render("No epics yet")
	}

	var b strings.Builder

	headerText := StyleHeader.Render("PLAN")
	if done, total := board.Progress(); total > 0 {
		headerText += "  " + RenderProgress(done, total, 12)
	}
	b.WriteString(headerText + "\n" + StyleDim.Render(strings.Repeat("─", 4)) + "\n")
	b.WriteString(RenderTree(BoardTreeItems(board)))

	return b.String()
}

// BoardTreeItems flattens epics and their tasks into tree rows. Epics sit at
// level 0 with a done/total badge; tasks sit beneath with priority and hours.
func BoardTreeItems(board *domain.ProjectBoard) []TreeItem {
	var items []TreeItem
	for _, e := range board.Epics {
		done := 0
		for _, t := range e.Tasks {
			if t.Status == domain.TaskDone {
				done++
			}
		}
		items = append(items, TreeItem{
			Title:  e.Epic.Title,
			Status: string(e.Epic.Status),
			Detail: fmt.Sprintf("%d/%d", done, len(e.Tasks)),
		})
		for i, t := range e.Tasks {
			items = append(items, TreeItem{
				Title:  t.Title,
				ID:     t.ID,
				Level:  1,
				IsLast: i == len(e.Tasks)-1,
				Status: string(t.Status),
				Detail: string(t.Priority) + " · " + FormatHours(t.EstimatedHours, t.ActualHours),
			})
		}
	}
	return items
}

// FormatBoard renders the project's tasks as kanban columns, one per task
// status in board order.
func FormatBoard(board *domain.ProjectBoard) string {
	cols := board.TasksByStatus()
	epicTitles := make(map[string]string, len(board.Epics))
	for _, e := range board.Epics {
		epicTitles[e.Epic.ID] = e.Epic.Title
	}

	colStyle := lipgloss.NewStyle().
		Width(kanbanColumnWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1)

	rendered := make([]string, 0, len(domain.TaskStatuses))
	for _, status := range domain.TaskStatuses {
		tasks := cols[status]
		var b strings.Builder
		b.WriteString(StyleHeader.Render(fmt.Sprintf("%s (%d)", ColumnTitle(status), len(tasks))) + "\n")
		if len(tasks) == 0 {
			b.WriteString(Dim("empty") + "\n")
		}
		for _, t := range tasks {
			b.WriteString("\n" + kanbanCard(t, epicTitles[t.EpicID]))
		}
		rendered = append(rendered, colStyle.Render(strings.TrimRight(b.String(), "\n")))
	}

	var out strings.Builder
	out.WriteString(StyleBold.Render(board.Project.Name))
	if done, total := board.Progress(); total > 0 {
		out.WriteString("  " + RenderProgress(done, total, 12))
	}
	out.WriteString("\n\n")
	out.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	return out.String()
}

func kanbanCard(t *domain.Task, epicTitle string) string {
	title := Truncate(t.Title, kanbanColumnWidth-2)
	lines := []string{
		StyleBold.Render(title),
		TruncID(t.ID) + " " + PriorityBadge(t.Priority),
	}
	if epicTitle != "" {
		lines = append(lines, Dim(Truncate(epicTitle, kanbanColumnWidth-2)))
	}
	return strings.Join(lines, "\n") + "\n"
}

// FormatPlanResult summarises a persisted plan: counts followed by the tree
// of what was created.
func FormatPlanResult(res *plan.Result) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Generated %d epics with %d tasks", res.EpicCount, res.TaskCount)) + "\n")
	if len(res.Epics) > 0 {
		b.WriteString(RenderTree(BoardTreeItems(&domain.ProjectBoard{Epics: res.Epics})))
	}
	return b.String()
}
