package intelligence

import "fmt"

// planSystemPrompt frames the model as an agile planner that answers in JSON.
const planSystemPrompt = `You are an expert project manager for epicboard, a project tracking tool.
You use the Agile methodology to break project goals into epics (major feature groups)
and tasks (individual work items).

You MUST output ONLY valid JSON, with no commentary and no Markdown.`

const planUserTemplate = `Break down this goal into:
1. Epics (major feature groups)
2. Tasks (individual work items)

For each task include: title, description, estimated hours, and priority.
Priority is one of LOW, MEDIUM or HIGH.

Goal: %q

Return ONLY valid JSON (no extra text):
{
  "epics": [
    {
      "title": "Epic Name",
      "description": "What this epic covers",
      "tasks": [
        {
          "title": "Task name",
          "description": "Task details",
          "estimatedHours": 8,
          "priority": "HIGH"
        }
      ]
    }
  ]
}`

func buildPlanPrompt(goal string) string {
	return fmt.Sprintf(planUserTemplate, goal)
}
