package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/epicboard/internal/domain"
	"github.com/alexanderramin/epicboard/internal/repository"
	"github.com/alexanderramin/epicboard/internal/testutil"
)

type taskFixture struct {
	repos repository.Set
	svc   TaskService
	user  *domain.User
	task  *domain.Task
	other *domain.Task
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	repos, database := setupRepos(t)
	ctx := context.Background()

	user := testutil.NewTestUser("Ada")
	require.NoError(t, repos.Users.Create(ctx, user))
	project := testutil.SeedProject(t, repos, "Shop")
	_, tasks := testutil.SeedEpicWithTasks(t, repos, project.ID, "Auth", "Login", "Logout")

	return &taskFixture{
		repos: repos,
		svc:   NewTaskService(repos, testutil.NewTestUoW(database)),
		user:  user,
		task:  tasks[0],
		other: tasks[1],
	}
}

func TestTaskService_UpdateStatus_RecordsHistory(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task, err := f.svc.UpdateStatus(ctx, f.task.ID, f.user.ID, domain.TaskInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, task.Status)

	stored, err := f.svc.GetByID(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, stored.Status)

	updates, err := f.repos.TaskUpdates.ListByTask(ctx, f.task.ID, 0)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	u := updates[0]
	require.NotNil(t, u.OldStatus)
	assert.Equal(t, domain.TaskTodo, *u.OldStatus)
	assert.Equal(t, domain.TaskInProgress, u.NewStatus)
	assert.Equal(t, "Status changed to IN_PROGRESS", u.Comment)
	require.NotNil(t, u.UserID)
	assert.Equal(t, f.user.ID, *u.UserID)
}

func TestTaskService_UpdateStatus_Anonymous(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpdateStatus(ctx, f.task.ID, "", domain.TaskDone)
	require.NoError(t, err)

	updates, err := f.repos.TaskUpdates.ListByTask(ctx, f.task.ID, 0)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Nil(t, updates[0].UserID)
}

func TestTaskService_UpdateStatus_Rejections(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpdateStatus(ctx, f.task.ID, "", domain.TaskStatus("SHIPPED"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.svc.UpdateStatus(ctx, "missing", "", domain.TaskDone)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = f.svc.UpdateStatus(ctx, f.task.ID, uuid.New().String(), domain.TaskDone)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	stored, err := f.svc.GetByID(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskTodo, stored.Status, "rejected changes leave the task untouched")
}

func TestTaskService_UpdateStatus_RollsBackWhenHistoryFails(t *testing.T) {
	repos, database := setupRepos(t)
	ctx := context.Background()
	project := testutil.SeedProject(t, repos, "Shop")
	_, tasks := testutil.SeedEpicWithTasks(t, repos, project.ID, "Auth", "Login")

	injected := errors.New("disk full")
	// Exec 1 updates the task, exec 2 appends the history entry.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}
	svc := NewTaskService(repos, uow)

	_, err := svc.UpdateStatus(ctx, tasks[0].ID, "", domain.TaskBlocked)
	assert.ErrorIs(t, err, injected)

	stored, err := repos.Tasks.GetByID(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskTodo, stored.Status)
}

func TestTaskService_AddComment(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpdateStatus(ctx, f.task.ID, "", domain.TaskInReview)
	require.NoError(t, err)

	u, err := f.svc.AddComment(ctx, f.task.ID, f.user.ID, "  Looks good to me  ")
	require.NoError(t, err)
	assert.Equal(t, "Looks good to me", u.Comment)
	assert.Equal(t, domain.TaskInReview, u.NewStatus)
	assert.Nil(t, u.OldStatus)

	_, err = f.svc.AddComment(ctx, f.task.ID, f.user.ID, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "comment is required")
}

func TestTaskService_Assign(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task, err := f.svc.Assign(ctx, f.task.ID, f.user.ID)
	require.NoError(t, err)
	require.NotNil(t, task.AssigneeID)
	assert.Equal(t, f.user.ID, *task.AssigneeID)

	_, err = f.svc.Assign(ctx, f.task.ID, uuid.New().String())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	task, err = f.svc.Assign(ctx, f.task.ID, "")
	require.NoError(t, err)
	assert.Nil(t, task.AssigneeID)

	stored, err := f.svc.GetByID(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.AssigneeID)
}

func TestTaskService_LogHours(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task, err := f.svc.LogHours(ctx, f.task.ID, 3.5)
	require.NoError(t, err)
	require.NotNil(t, task.ActualHours)
	assert.Equal(t, 3.5, *task.ActualHours)

	_, err = f.svc.LogHours(ctx, f.task.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "hours must be >= 0")

	stored, err := f.svc.GetByID(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.5, *stored.ActualHours)
}

func TestTaskService_Details(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	_, err := f.svc.Assign(ctx, f.task.ID, f.user.ID)
	require.NoError(t, err)
	_, err = f.svc.UpdateStatus(ctx, f.task.ID, f.user.ID, domain.TaskInProgress)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = f.svc.AddComment(ctx, f.task.ID, f.user.ID, "halfway")
	require.NoError(t, err)

	require.NoError(t, f.repos.Risks.Create(ctx, &domain.Risk{
		ID:        uuid.New().String(),
		TaskID:    f.task.ID,
		Type:      domain.RiskBlocker,
		Severity:  domain.SeverityHigh,
		CreatedAt: time.Now().UTC(),
	}))

	d, err := f.svc.Details(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Login", d.Task.Title)
	assert.Equal(t, "Auth", d.Epic.Title)
	require.NotNil(t, d.Assignee)
	assert.Equal(t, "Ada", d.Assignee.Name)
	require.Len(t, d.Updates, 2)
	assert.Equal(t, "halfway", d.Updates[0].Comment, "newest first")
	assert.Equal(t, "Status changed to IN_PROGRESS", d.Updates[1].Comment)
	require.Len(t, d.Risks, 1)
	assert.Equal(t, domain.RiskBlocker, d.Risks[0].Type)

	other, err := f.svc.Details(ctx, f.other.ID)
	require.NoError(t, err)
	assert.Nil(t, other.Assignee)
	assert.Empty(t, other.Updates)
}
