package intelligence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/llm"
	"github.com/alexanderramin/epicboard/internal/plan"
	"github.com/alexanderramin/epicboard/internal/repository"
	"github.com/alexanderramin/epicboard/internal/testutil"
)

func TestNormalizeRisks(t *testing.T) {
	v, err := plan.Parse(`{"risks":[
		{"taskTitle":"Login","type":"BLOCKER","severity":"CRITICAL","description":"stuck"},
		{"taskTitle":"Signup","type":"blocker","severity":"urgent"},
		{"type":42,"severity":null,"description":["x"]},
		"garbage"
	]}`)
	require.NoError(t, err)

	drafts, err := NormalizeRisks(v)
	require.NoError(t, err)
	require.Len(t, drafts, 4)

	assert.Equal(t, RiskDraft{TaskTitle: "Login", Type: domain.RiskBlocker, Severity: domain.SeverityCritical, Description: "stuck"}, drafts[0])
	assert.Equal(t, RiskDraft{TaskTitle: "Signup", Type: domain.RiskTimeline, Severity: domain.SeverityMedium}, drafts[1])
	assert.Equal(t, RiskDraft{Type: domain.RiskTimeline, Severity: domain.SeverityMedium}, drafts[2])
	assert.Equal(t, RiskDraft{Type: domain.RiskTimeline, Severity: domain.SeverityMedium}, drafts[3])
}

func TestNormalizeRisks_MissingArray(t *testing.T) {
	for _, raw := range []string{`{}`, `{"risks":null}`, `{"risks":{"a":1}}`, `[]`} {
		v, err := plan.Parse(raw)
		require.NoError(t, err)

		_, err = NormalizeRisks(v)
		assert.ErrorIs(t, err, ErrNoRisksProduced, raw)
	}
}

type riskFixture struct {
	repos  repository.Set
	client *mockClient
	svc    *riskService
	login  *domain.Task
	signup *domain.Task
	projID string
}

func newRiskFixture(t *testing.T, response string) *riskFixture {
	t.Helper()
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repos := repository.NewSQLiteSet(database)
	project := testutil.SeedProject(t, repos, "Shop")

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	epic := testutil.NewTestEpic(project.ID, "Auth", 0)
	require.NoError(t, repos.Epics.Create(ctx, epic))
	login := testutil.NewTestTask(epic, "Login",
		testutil.WithTaskStatus(domain.TaskInProgress),
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithUpdatedAt(now.Add(-72*time.Hour)))
	require.NoError(t, repos.Tasks.Create(ctx, login))
	signup := testutil.NewTestTask(epic, "Signup", testutil.WithOrderIndex(1), testutil.WithUpdatedAt(now))
	require.NoError(t, repos.Tasks.Create(ctx, signup))

	client := &mockClient{response: response}
	svc := NewRiskService(client, repos.Tasks, repos.Risks, testutil.NewTestUoW(database)).(*riskService)
	svc.now = func() time.Time { return now }

	return &riskFixture{repos: repos, client: client, svc: svc, login: login, signup: signup, projID: project.ID}
}

func TestRiskService_Detect_PersistsMatchingRisks(t *testing.T) {
	f := newRiskFixture(t, "```json\n"+`{"risks":[
		{"taskTitle":"Login","type":"BLOCKER","severity":"HIGH","description":"No progress in 3 days"},
		{"taskTitle":"Payments","type":"TIMELINE_RISK","severity":"LOW","description":"not a task"},
		{"taskTitle":"Signup","type":"SCOPE_CREEP","severity":"9"}
	]}`+"\n```")
	ctx := context.Background()

	report, err := f.svc.Detect(ctx, f.projID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Risks, 2)

	assert.Equal(t, llm.TaskRisk, f.client.lastReq.Task)
	assert.Contains(t, f.client.lastReq.UserPrompt, `"Login" - Status: IN_PROGRESS, Priority: HIGH, Not updated for 3 days`)
	assert.Contains(t, f.client.lastReq.UserPrompt, `"Signup" - Status: TODO, Priority: MEDIUM, Not updated for 0 days`)

	loginRisks, err := f.repos.Risks.ListByTask(ctx, f.login.ID)
	require.NoError(t, err)
	require.Len(t, loginRisks, 1)
	assert.Equal(t, domain.RiskBlocker, loginRisks[0].Type)
	assert.Equal(t, domain.SeverityHigh, loginRisks[0].Severity)
	assert.Equal(t, "No progress in 3 days", loginRisks[0].Description)

	signupRisks, err := f.repos.Risks.ListByTask(ctx, f.signup.ID)
	require.NoError(t, err)
	require.Len(t, signupRisks, 1)
	assert.Equal(t, domain.RiskTimeline, signupRisks[0].Type)
	assert.Equal(t, domain.SeverityMedium, signupRisks[0].Severity)
	assert.Equal(t, "", signupRisks[0].Description)

	listed, err := f.svc.List(ctx, f.projID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestRiskService_Detect_MissingRisksArray(t *testing.T) {
	f := newRiskFixture(t, `{"summary":"all good"}`)

	_, err := f.svc.Detect(context.Background(), f.projID)
	assert.ErrorIs(t, err, ErrNoRisksProduced)
}

func TestRiskService_Detect_MalformedResponse(t *testing.T) {
	for _, raw := range []string{
		"I could not analyze these tasks.",
		`Here you go: {"risks":[{"taskTitle":"Login","type":"BLOCKER"}]}`,
	} {
		t.Run(raw, func(t *testing.T) {
			f := newRiskFixture(t, raw)

			_, err := f.svc.Detect(context.Background(), f.projID)
			assert.ErrorIs(t, err, plan.ErrMalformedResponse)
			assert.NotErrorIs(t, err, ErrNoRisksProduced)
		})
	}
}

func TestRiskService_Detect_NoMatchesWritesNothing(t *testing.T) {
	f := newRiskFixture(t, `{"risks":[{"taskTitle":"Ghost","type":"BLOCKER"}]}`)
	ctx := context.Background()

	report, err := f.svc.Detect(ctx, f.projID)
	require.NoError(t, err)
	assert.Empty(t, report.Risks)
	assert.Equal(t, 1, report.Skipped)

	listed, err := f.svc.List(ctx, f.projID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestRiskService_Detect_ProjectWithoutTasks(t *testing.T) {
	database := testutil.NewTestDB(t)
	repos := repository.NewSQLiteSet(database)
	project := testutil.SeedProject(t, repos, "Empty")
	client := &mockClient{response: `{"risks":[]}`}

	svc := NewRiskService(client, repos.Tasks, repos.Risks, testutil.NewTestUoW(database))
	report, err := svc.Detect(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Empty(t, report.Risks)
	assert.Zero(t, client.calls)
}

func TestRiskService_Detect_LLMError(t *testing.T) {
	f := newRiskFixture(t, "")
	f.client.err = llm.ErrProviderUnavailable

	_, err := f.svc.Detect(context.Background(), f.projID)
	assert.ErrorIs(t, err, llm.ErrProviderUnavailable)
}
