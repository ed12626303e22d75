package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/plan"
)

var fixedNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int                               { return &v }
func floatPtr(v float64) *float64                     { return &v }
func statusPtr(s domain.TaskStatus) *domain.TaskStatus { return &s }

func sampleBoard() *domain.ProjectBoard {
	epic := &domain.Epic{ID: "epic-0001-aaaa", Title: "Checkout", Status: domain.EpicBacklog}
	return &domain.ProjectBoard{
		Project: &domain.Project{
			ID: "11111111-2222-3333-4444-555555555555", Name: "Webshop",
			Goal: "Sell socks online", Status: domain.ProjectActive,
			CreatedAt: fixedNow.Add(-48 * time.Hour), UpdatedAt: fixedNow.Add(-2 * time.Hour),
		},
		Epics: []*domain.EpicWithTasks{{
			Epic: epic,
			Tasks: []*domain.Task{
				{ID: "aaaaaaaa-0000", EpicID: epic.ID, Title: "Cart page", Status: domain.TaskDone, Priority: domain.PriorityHigh, EstimatedHours: intPtr(8)},
				{ID: "bbbbbbbb-0000", EpicID: epic.ID, Title: "Payment provider", Status: domain.TaskBlocked, Priority: domain.PriorityMedium},
			},
		}},
	}
}

func TestRelativeDateFrom(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", fixedNow, "Today"},
		{"tomorrow", fixedNow.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", fixedNow.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", fixedNow.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", fixedNow.Add(-3 * 24 * time.Hour), "3d ago"},
		{"3 weeks future", fixedNow.Add(21 * 24 * time.Hour), "In 3w"},
		{"2 weeks past", fixedNow.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", fixedNow.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, fixedNow))
		})
	}
}

func TestHumanTimestampFrom(t *testing.T) {
	assert.Equal(t, "Just now", HumanTimestampFrom(fixedNow, fixedNow))
	assert.Equal(t, "5m ago", HumanTimestampFrom(fixedNow.Add(-5*time.Minute), fixedNow))
	assert.Equal(t, "2h ago", HumanTimestampFrom(fixedNow.Add(-2*time.Hour), fixedNow))
	assert.Equal(t, "3d ago", HumanTimestampFrom(fixedNow.Add(-72*time.Hour), fixedNow))
}

func TestTaskStatusPill(t *testing.T) {
	tests := []struct {
		status   domain.TaskStatus
		contains string
	}{
		{domain.TaskTodo, "Todo"},
		{domain.TaskInProgress, "In Progress"},
		{domain.TaskInReview, "In Review"},
		{domain.TaskDone, "Done"},
		{domain.TaskBlocked, "Blocked"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Contains(t, TaskStatusPill(tt.status), tt.contains)
		})
	}
}

func TestProjectStatusPill(t *testing.T) {
	assert.Contains(t, ProjectStatusPill(domain.ProjectOnHold), "On Hold")
	assert.Contains(t, ProjectStatusPill(domain.ProjectCompleted), "Completed")
	assert.Contains(t, ProjectStatusPill("WEIRD"), "WEIRD")
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "--", FormatHours(nil, nil))
	assert.Equal(t, "8h", FormatHours(intPtr(8), nil))
	assert.Equal(t, "2.5h logged", FormatHours(nil, floatPtr(2.5)))
	assert.Equal(t, "3h / 8h", FormatHours(intPtr(8), floatPtr(3)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "ünïc…", Truncate("ünïcödé", 5))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "11111111", ShortID("11111111-2222"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestRenderProgress(t *testing.T) {
	out := RenderProgress(1, 2, 4)
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, filledBlock)
	assert.Contains(t, out, emptyBlock)

	assert.Contains(t, RenderProgress(0, 0, 1), "0/0")
}

func TestRenderTree_StatusPrefixesAndBadges(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "Epic", Detail: "1/2"},
		{Title: "Done task", ID: "aaaaaaaa-0000", Level: 1, Status: "DONE"},
		{Title: "Blocked task", Level: 1, IsLast: true, Status: "BLOCKED"},
	})

	assert.Contains(t, out, "[ 1/2 ]")
	assert.Contains(t, out, "├─ ✔ aaaaaaaa Done task")
	assert.Contains(t, out, "└─ ✖ Blocked task")
	assert.Empty(t, RenderTree(nil))
}

func TestFormatProjectShow(t *testing.T) {
	out := FormatProjectShow(sampleBoard(), fixedNow)

	assert.Contains(t, out, "Webshop")
	assert.Contains(t, out, "Sell socks online")
	assert.Contains(t, out, "Checkout")
	assert.Contains(t, out, "Cart page")
	assert.Contains(t, out, "HIGH · 8h")
	assert.Contains(t, out, "1/2")
}

func TestFormatProjectShow_NoEpics(t *testing.T) {
	board := sampleBoard()
	board.Epics = nil

	assert.Contains(t, FormatProjectShow(board, fixedNow), "No epics yet")
}

func TestFormatBoard_OneColumnPerStatus(t *testing.T) {
	out := FormatBoard(sampleBoard())

	for _, st := range domain.TaskStatuses {
		assert.Contains(t, out, ColumnTitle(st))
	}
	assert.Contains(t, out, "DONE (1)")
	assert.Contains(t, out, "BLOCKED (1)")
	assert.Contains(t, out, "TODO (0)")
	assert.Contains(t, out, "Payment provider")
}

func TestFormatPlanResult(t *testing.T) {
	board := sampleBoard()
	out := FormatPlanResult(&plan.Result{Epics: board.Epics, EpicCount: 1, TaskCount: 2})

	assert.Contains(t, out, "Generated 1 epics with 2 tasks")
	assert.Contains(t, out, "Checkout")
}

func TestFormatTaskDetails(t *testing.T) {
	board := sampleBoard()
	task := board.Epics[0].Tasks[1]
	d := &domain.TaskDetails{
		Task:     task,
		Epic:     board.Epics[0].Epic,
		Assignee: &domain.User{Name: "Ada", Email: "ada@example.com"},
		Updates: []*domain.TaskUpdate{
			{OldStatus: statusPtr(domain.TaskTodo), NewStatus: domain.TaskBlocked, Comment: "Status changed to BLOCKED", CreatedAt: fixedNow.Add(-time.Hour)},
			{NewStatus: domain.TaskTodo, Comment: "waiting on vendor", CreatedAt: fixedNow.Add(-2 * time.Hour)},
		},
		Risks: []*domain.Risk{{Type: domain.RiskBlocker, Severity: domain.SeverityHigh, Description: "vendor contract unsigned"}},
	}

	out := FormatTaskDetails(d, fixedNow)

	assert.Contains(t, out, "Payment provider")
	assert.Contains(t, out, "Checkout")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "waiting on vendor")
	assert.Contains(t, out, "Blocked")
	assert.Contains(t, out, "BLOCKER")
	assert.Contains(t, out, "vendor contract unsigned")
}

func TestFormatTaskDetails_Unassigned(t *testing.T) {
	board := sampleBoard()
	out := FormatTaskDetails(&domain.TaskDetails{Task: board.Epics[0].Tasks[0]}, fixedNow)

	assert.Contains(t, out, "unassigned")
	assert.NotContains(t, out, "HISTORY")
}

func TestFormatRiskReport(t *testing.T) {
	risks := []*domain.Risk{{TaskID: "aaaaaaaa-0000", Type: domain.RiskTimeline, Severity: domain.SeverityCritical, Description: "late"}}

	out := FormatRiskReport(risks, 2, map[string]string{"aaaaaaaa-0000": "Cart page"})
	assert.Contains(t, out, "Cart page")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "2 risk(s) skipped")

	assert.Contains(t, FormatRiskReport(nil, 0, nil), "No risks detected.")
}

func TestFormatRiskList_UnknownTaskFallsBackToShortID(t *testing.T) {
	risks := []*domain.Risk{{TaskID: "cccccccc-1111", Type: domain.RiskBlocker, Severity: domain.SeverityLow}}

	assert.Contains(t, FormatRiskList(risks, nil), "cccccccc")
}

func TestFormatWorkspaceList_OwnerName(t *testing.T) {
	owner := "user-1"
	out := FormatWorkspaceList([]*domain.Workspace{
		{ID: "ws-1", Name: "Acme", OwnerID: &owner, UpdatedAt: fixedNow},
		{ID: "ws-2", Name: "Solo", UpdatedAt: fixedNow},
	}, map[string]string{"user-1": "Ada"}, fixedNow)

	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "Solo")
}
