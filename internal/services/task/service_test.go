package task

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/uptask/internal/api"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/query"
	"github.com/thenoetrevino/uptask/internal/testutil"
	"github.com/thenoetrevino/uptask/internal/testutil/fakeapi"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type fixture struct {
	srv     *fakeapi.Server
	session *testutil.Session
	cache   *query.Cache
	svc     Service
	project models.Project
	task    models.Task
}

func setup(t *testing.T) *fixture {
	t.Helper()
	srv := fakeapi.New(t)
	session := testutil.NewSession(t, srv, "manager")
	cache := query.New()

	project := session.CreateTestProject(t, "Website")
	task := session.CreateTestTask(t, project.ID, "Write docs")

	return &fixture{
		srv:     srv,
		session: session,
		cache:   cache,
		svc:     NewService(session.Client, cache, nil),
		project: project,
		task:    task,
	}
}

func (f *fixture) statusPath() string {
	return "/projects/" + f.project.ID + "/tasks/" + f.task.ID + "/status"
}

// ============================================================================
// SET STATUS
// ============================================================================

func TestSetStatus_ReturnsServerCopy(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	updated, err := f.svc.SetStatus(ctx, f.task, models.StatusInProgress)
	require.NoError(t, err)

	assert.Equal(t, models.StatusInProgress, updated.Status)
	require.Len(t, updated.CompletedBy, 1)
	assert.Equal(t, f.session.User.ID, updated.CompletedBy[0].User.ID)
	assert.Equal(t, models.StatusInProgress, updated.CompletedBy[0].Status)
	assert.Empty(t, f.task.CompletedBy, "the caller's copy is never edited")
}

func TestSetStatus_SameStatusIsStillSent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.svc.SetStatus(ctx, f.task, models.StatusOnHold)
	require.NoError(t, err)
	second, err := f.svc.SetStatus(ctx, first, models.StatusOnHold)
	require.NoError(t, err)

	assert.Equal(t, 2, f.srv.Requests(http.MethodPost, f.statusPath()))
	assert.Len(t, second.CompletedBy, 2)
}

func TestSetStatus_InvalidStatusMakesNoRequest(t *testing.T) {
	f := setup(t)

	_, err := f.svc.SetStatus(context.Background(), f.task, models.TaskStatus("archived"))

	assert.True(t, errors.Is(err, models.ErrInvalidStatus))
	assert.Equal(t, 0, f.srv.Requests(http.MethodPost, f.statusPath()))
}

func TestSetStatus_InvalidatesTaskAndProject(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// warm the project view the board reads from
	_, err := query.Fetch(ctx, f.cache, query.ProjectKey(f.project.ID), func(ctx context.Context) (models.Project, error) {
		return f.session.Client.GetProject(ctx, f.project.ID)
	})
	require.NoError(t, err)

	_, err = f.svc.SetStatus(ctx, f.task, models.StatusUnderReview)
	require.NoError(t, err)

	project, ok := f.cache.Peek(query.ProjectKey(f.project.ID))
	require.True(t, ok)
	assert.True(t, project.Stale)

	task, ok := f.cache.Peek(query.TaskKey(f.task.ID))
	require.True(t, ok)
	assert.False(t, task.Stale, "the task was reloaded after the transition")
	assert.Equal(t, models.StatusUnderReview, task.Value.(models.Task).Status)
}

func TestSetStatus_FailureLeavesCacheUntouched(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	outsider := testutil.NewSession(t, f.srv, "outsider")
	svc := NewService(outsider.Client, f.cache, nil)

	_, err := f.svc.GetTask(ctx, f.project.ID, f.task.ID)
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, f.task, models.StatusCompleted)

	assert.Equal(t, http.StatusForbidden, api.StatusCode(err))
	entry, _ := f.cache.Peek(query.TaskKey(f.task.ID))
	assert.False(t, entry.Stale)

	stored, _ := f.srv.Task(f.task.ID)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestSetStatus_TeamMemberCanMoveTasks(t *testing.T) {
	f := setup(t)
	member := testutil.NewSession(t, f.srv, "member")
	f.session.AddMember(t, f.project.ID, member.User)
	svc := NewService(member.Client, query.New(), nil)

	updated, err := svc.SetStatus(context.Background(), f.task, models.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, member.User.ID, updated.CompletedBy[0].User.ID)
}

// ============================================================================
// CRUD
// ============================================================================

func TestGetTask_IsCached(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	path := "/projects/" + f.project.ID + "/tasks/" + f.task.ID
	before := f.srv.Requests(http.MethodGet, path)

	for i := 0; i < 3; i++ {
		task, err := f.svc.GetTask(ctx, f.project.ID, f.task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Write docs", task.Name)
	}

	assert.Equal(t, before+1, f.srv.Requests(http.MethodGet, path))
}

func TestCreateTask_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.CreateTask(ctx, CreateTaskRequest{ProjectID: f.project.ID, Form: models.TaskForm{Name: "x"}})
	assert.ErrorIs(t, err, models.ErrInvalidForm)

	_, err = f.svc.CreateTask(ctx, CreateTaskRequest{Form: models.TaskForm{Name: "x", Description: "y"}})
	assert.ErrorIs(t, err, ErrInvalidProjectID)
}

func TestCreateUpdateDelete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	projectKey := query.ProjectKey(f.project.ID)

	warm := func() {
		_, err := query.Fetch(ctx, f.cache, projectKey, func(ctx context.Context) (models.Project, error) {
			return f.session.Client.GetProject(ctx, f.project.ID)
		})
		require.NoError(t, err)
	}

	warm()
	_, err := f.svc.CreateTask(ctx, CreateTaskRequest{
		ProjectID: f.project.ID,
		Form:      models.TaskForm{Name: "Review", Description: "Check the docs"},
	})
	require.NoError(t, err)
	entry, _ := f.cache.Peek(projectKey)
	assert.True(t, entry.Stale)

	warm()
	_, err = f.svc.UpdateTask(ctx, UpdateTaskRequest{
		ProjectID: f.project.ID,
		TaskID:    f.task.ID,
		Form:      models.TaskForm{Name: "Write all docs", Description: "Every page"},
	})
	require.NoError(t, err)

	task, err := f.svc.GetTask(ctx, f.project.ID, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write all docs", task.Name)

	_, err = f.svc.DeleteTask(ctx, f.project.ID, f.task.ID)
	require.NoError(t, err)

	_, ok := f.cache.Peek(query.TaskKey(f.task.ID))
	assert.False(t, ok, "deleted tasks leave the cache")

	_, err = f.svc.GetTask(ctx, f.project.ID, f.task.ID)
	assert.True(t, api.IsNotFound(err))
}
