package intelligence

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/epicboard/internal/domain"
)

const riskSystemPrompt = `You are a delivery risk analyst for epicboard, a project tracking tool.
You read task status data and report concrete risks. You MUST output ONLY valid JSON.`

const riskUserTemplate = `Analyze these tasks for potential risks and blockers:

%s

Identify:
1. Blocked tasks (in progress for too long)
2. Resource issues (no one available to pick them up)
3. Timeline risks (high priority but slow)
4. Dependency problems

Use the exact task title in "taskTitle".

Return ONLY JSON:
{
  "risks": [
    {
      "taskTitle": "string",
      "type": "BLOCKER|RESOURCE_CONSTRAINT|TIMELINE_RISK|DEPENDENCY_ISSUE|TECHNICAL_DEBT",
      "severity": "LOW|MEDIUM|HIGH|CRITICAL",
      "description": "string"
    }
  ]
}`

func buildRiskPrompt(tasks []*domain.Task, now time.Time) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("%q - Status: %s, Priority: %s, Not updated for %d days",
			t.Title, t.Status, t.Priority, t.DaysSinceUpdate(now)))
	}
	return fmt.Sprintf(riskUserTemplate, strings.Join(lines, "\n"))
}
