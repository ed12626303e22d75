package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/epicboard/internal/domain"
)

// FormatRiskList renders risks as a table. taskTitles maps task IDs to
// titles; unknown IDs fall back to the short ID.
func FormatRiskList(risks []*domain.Risk, taskTitles map[string]string) string {
	headers := []string{"SEVERITY", "TYPE", "TASK", "DESCRIPTION"}
	rows := make([][]string, 0, len(risks))
	for _, r := range risks {
		task := taskTitles[r.TaskID]
		if task == "" {
			task = ShortID(r.TaskID)
		}
		rows = append(rows, []string{
			SeverityBadge(r.Severity),
			StylePurple.Render(string(r.Type)),
			Truncate(task, 30),
			r.Description,
		})
	}
	return RenderBox("Risks", RenderTable(headers, rows))
}

// FormatRiskReport renders a detection run: the stored risks plus a note on
// entries that matched no task.
func FormatRiskReport(risks []*domain.Risk, skipped int, taskTitles map[string]string) string {
	var b strings.Builder
	if len(risks) == 0 {
		b.WriteString(StyleGreen.Render("No risks detected.") + "\n")
	} else {
		b.WriteString(FormatRiskList(risks, taskTitles) + "\n")
	}
	if skipped > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d risk(s) skipped: no matching task", skipped)) + "\n")
	}
	return b.String()
}
