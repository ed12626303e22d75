package intelligence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/llm"
	"github.com/alexanderramin/epicboard/internal/repository"
	"github.com/alexanderramin/epicboard/internal/testutil"
)

func TestSummaryService_DailySummary(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repos := repository.NewSQLiteSet(database)
	project := testutil.SeedProject(t, repos, "Shop")

	alice := testutil.NewTestUser("Alice")
	require.NoError(t, repos.Users.Create(ctx, alice))

	epic := testutil.NewTestEpic(project.ID, "Auth", 0)
	require.NoError(t, repos.Epics.Create(ctx, epic))
	login := testutil.NewTestTask(epic, "Login", testutil.WithAssignee(alice.ID), testutil.WithTaskStatus(domain.TaskInProgress))
	require.NoError(t, repos.Tasks.Create(ctx, login))
	signup := testutil.NewTestTask(epic, "Signup", testutil.WithOrderIndex(1))
	require.NoError(t, repos.Tasks.Create(ctx, signup))

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		require.NoError(t, repos.TaskUpdates.Create(ctx, &domain.TaskUpdate{
			ID:        uuid.New().String(),
			TaskID:    login.ID,
			NewStatus: domain.TaskInProgress,
			Comment:   "note " + string(rune('A'+i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	client := &mockClient{response: "\n  Login is moving along.  \n"}
	svc := NewSummaryService(client, repos.Tasks, repos.TaskUpdates, repos.Users)

	text, err := svc.DailySummary(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Login is moving along.", text)

	prompt := client.lastReq.UserPrompt
	assert.Equal(t, llm.TaskSummary, client.lastReq.Task)
	assert.Contains(t, prompt, "Task: Login\nStatus: IN_PROGRESS\nAssigned: Alice\nRecent updates: \"note G\" (IN_PROGRESS)")
	assert.Contains(t, prompt, "\"note C\" (IN_PROGRESS)")
	assert.NotContains(t, prompt, "note B", "only the last five updates are included")
	assert.Contains(t, prompt, "Task: Signup\nStatus: TODO\nAssigned: Unassigned\nRecent updates: No updates")
}

func TestSummaryService_DailySummary_LLMError(t *testing.T) {
	database := testutil.NewTestDB(t)
	repos := repository.NewSQLiteSet(database)
	project := testutil.SeedProject(t, repos, "Shop")

	client := &mockClient{err: errors.New("boom")}
	svc := NewSummaryService(client, repos.Tasks, repos.TaskUpdates, repos.Users)

	_, err := svc.DailySummary(context.Background(), project.ID)
	assert.ErrorContains(t, err, "llm summary failed")
}
