package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpicRepo_ListByProject_Ordered(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	proj := testutil.SeedProject(t, repos, "Ordering")
	second := testutil.NewTestEpic(proj.ID, "Second", 1)
	first := testutil.NewTestEpic(proj.ID, "First", 0)
	require.NoError(t, repos.Epics.Create(ctx, second))
	require.NoError(t, repos.Epics.Create(ctx, first))

	epics, err := repos.Epics.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, epics, 2)
	assert.Equal(t, "First", epics[0].Title)
	assert.Equal(t, "Second", epics[1].Title)
	assert.Equal(t, domain.EpicBacklog, epics[0].Status)

	n, err := repos.Epics.CountByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestTaskRepo_CreateAndGet_NullableFields(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	proj := testutil.SeedProject(t, repos, "Nullable")
	epic, _ := testutil.SeedEpicWithTasks(t, repos, proj.ID, "Epic")

	bare := testutil.NewTestTask(epic, "No estimate")
	require.NoError(t, repos.Tasks.Create(ctx, bare))

	got, err := repos.Tasks.GetByID(ctx, bare.ID)
	require.NoError(t, err)
	assert.Nil(t, got.EstimatedHours)
	assert.Nil(t, got.ActualHours)
	assert.Nil(t, got.AssigneeID)
	assert.Equal(t, domain.TaskTodo, got.Status)
	assert.Equal(t, domain.PriorityMedium, got.Priority)

	user := testutil.NewTestUser("Linus")
	require.NoError(t, repos.Users.Create(ctx, user))
	full := testutil.NewTestTask(epic, "Estimated",
		testutil.WithEstimatedHours(6),
		testutil.WithPriority(domain.PriorityCritical),
		testutil.WithAssignee(user.ID),
	)
	require.NoError(t, repos.Tasks.Create(ctx, full))

	got, err = repos.Tasks.GetByID(ctx, full.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EstimatedHours)
	assert.Equal(t, 6, *got.EstimatedHours)
	require.NotNil(t, got.AssigneeID)
	assert.Equal(t, user.ID, *got.AssigneeID)
	assert.Equal(t, domain.PriorityCritical, got.Priority)
}

func TestTaskRepo_CreateRejectsUnknownEpic(t *testing.T) {
	repos := setupRepos(t)
	proj := testutil.SeedProject(t, repos, "FK")

	orphan := testutil.NewTestTask(&domain.Epic{ID: uuid.New().String(), ProjectID: proj.ID}, "orphan")
	err := repos.Tasks.Create(context.Background(), orphan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting task")
}

func TestTaskRepo_Update(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	proj := testutil.SeedProject(t, repos, "Updates")
	_, tasks := testutil.SeedEpicWithTasks(t, repos, proj.ID, "Epic", "Write docs")

	task := tasks[0]
	hours := 2.5
	task.Status = domain.TaskInProgress
	task.ActualHours = &hours
	task.UpdatedAt = time.Now().UTC()
	require.NoError(t, repos.Tasks.Update(ctx, task))

	got, err := repos.Tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, got.Status)
	require.NotNil(t, got.ActualHours)
	assert.InDelta(t, 2.5, *got.ActualHours, 1e-9)
}

func TestTaskRepo_ListByEpic_Order(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	proj := testutil.SeedProject(t, repos, "List")
	epic, _ := testutil.SeedEpicWithTasks(t, repos, proj.ID, "Epic", "one", "two", "three")

	tasks, err := repos.Tasks.ListByEpic(ctx, epic.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{"one", "two", "three"}, []string{tasks[0].Title, tasks[1].Title, tasks[2].Title})

	byProject, err := repos.Tasks.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, byProject, 3)
}

func TestTaskUpdateRepo_NewestFirstWithLimit(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	proj := testutil.SeedProject(t, repos, "History")
	_, tasks := testutil.SeedEpicWithTasks(t, repos, proj.ID, "Epic", "task")
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	old := domain.TaskTodo
	for i := 0; i < 7; i++ {
		u := &domain.TaskUpdate{
			ID:        uuid.New().String(),
			TaskID:    tasks[0].ID,
			NewStatus: domain.TaskInProgress,
			Comment:   string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if i == 0 {
			u.OldStatus = &old
		}
		require.NoError(t, repos.TaskUpdates.Create(ctx, u))
	}

	latest, err := repos.TaskUpdates.ListByTask(ctx, tasks[0].ID, 5)
	require.NoError(t, err)
	require.Len(t, latest, 5)
	assert.Equal(t, "g", latest[0].Comment)
	assert.Equal(t, "c", latest[4].Comment)

	all, err := repos.TaskUpdates.ListByTask(ctx, tasks[0].ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 7)
	require.NotNil(t, all[6].OldStatus)
	assert.Equal(t, domain.TaskTodo, *all[6].OldStatus)
	assert.Nil(t, all[0].OldStatus)
}

func TestRiskRepo_ListByProjectAndTask(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	proj := testutil.SeedProject(t, repos, "Risky")
	_, tasks := testutil.SeedEpicWithTasks(t, repos, proj.ID, "Epic", "a", "b")
	other := testutil.SeedProject(t, repos, "Calm")
	_, otherTasks := testutil.SeedEpicWithTasks(t, repos, other.ID, "Epic", "c")

	for _, taskID := range []string{tasks[0].ID, tasks[1].ID, otherTasks[0].ID} {
		require.NoError(t, repos.Risks.Create(ctx, &domain.Risk{
			ID:        uuid.New().String(),
			TaskID:    taskID,
			Type:      domain.RiskBlocker,
			Severity:  domain.SeverityHigh,
			CreatedAt: time.Now().UTC(),
		}))
	}

	byProject, err := repos.Risks.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	byTask, err := repos.Risks.ListByTask(ctx, tasks[1].ID)
	require.NoError(t, err)
	require.Len(t, byTask, 1)
	assert.Equal(t, domain.RiskBlocker, byTask[0].Type)
	assert.Equal(t, domain.SeverityHigh, byTask[0].Severity)
}

func TestRiskRepo_RejectsUnknownSeverity(t *testing.T) {
	repos := setupRepos(t)
	proj := testutil.SeedProject(t, repos, "Check")
	_, tasks := testutil.SeedEpicWithTasks(t, repos, proj.ID, "Epic", "a")

	err := repos.Risks.Create(context.Background(), &domain.Risk{
		ID:        uuid.New().String(),
		TaskID:    tasks[0].ID,
		Type:      domain.RiskBlocker,
		Severity:  "APOCALYPTIC",
		CreatedAt: time.Now().UTC(),
	})
	assert.Error(t, err)
}
