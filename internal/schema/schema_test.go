package schema

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/uptask/internal/models"
)

func userPayload(id string) map[string]any {
	return map[string]any{"_id": id, "name": "User " + id, "email": id + "@example.com"}
}

func taskPayload() map[string]any {
	return map[string]any{
		"_id":         "t1",
		"name":        "Write docs",
		"description": "All of them",
		"project":     "p1",
		"status":      "inProgress",
		"completedBy": []any{
			map[string]any{"_id": "a1", "user": userPayload("u1"), "status": "pending"},
			map[string]any{"_id": "a2", "user": userPayload("u2"), "status": "inProgress"},
		},
		"notes": []any{
			map[string]any{
				"_id":       "n1",
				"content":   "started",
				"createdBy": userPayload("u1"),
				"task":      "t1",
				"createdAt": "2024-05-01T10:00:00.000Z",
			},
		},
		"createdAt": "2024-05-01T09:00:00.000Z",
		"updatedAt": "2024-05-02T09:00:00.000Z",
		"__v":       3,
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func requireValidationError(t *testing.T, err error, path string) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	assert.Equal(t, path, verr.Path)
	return verr
}

// ============================================================================
// User
// ============================================================================

func TestParseUser_Valid(t *testing.T) {
	u, err := ParseUser(mustJSON(t, userPayload("u1")))

	require.NoError(t, err)
	assert.Equal(t, models.User{ID: "u1", Name: "User u1", Email: "u1@example.com"}, u)
}

func TestParseUser_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		path    string
	}{
		{"missing id", map[string]any{"name": "x", "email": "x@example.com"}, "_id"},
		{"missing name", map[string]any{"_id": "1", "email": "x@example.com"}, "name"},
		{"number name", map[string]any{"_id": "1", "name": 5, "email": "x@example.com"}, "name"},
		{"null email", map[string]any{"_id": "1", "name": "x", "email": nil}, "email"},
		{"bad email", map[string]any{"_id": "1", "name": "x", "email": "not-an-email"}, "email"},
		{"not an object", []any{"u1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUser(mustJSON(t, tt.payload))
			requireValidationError(t, err, tt.path)
		})
	}
}

func TestParseUser_MalformedJSON(t *testing.T) {
	_, err := ParseUser([]byte(`{"_id":`))

	verr := requireValidationError(t, err, "")
	assert.Contains(t, verr.Reason, "malformed JSON")
	assert.Equal(t, "user", verr.Schema)
}

func TestParseTeamMembers(t *testing.T) {
	members, err := ParseTeamMembers(mustJSON(t, []any{userPayload("u1"), userPayload("u2")}))
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "u2", members[1].ID)

	bad := []any{userPayload("u1"), map[string]any{"_id": "u2", "name": "x"}}
	_, err = ParseTeamMembers(mustJSON(t, bad))
	requireValidationError(t, err, "[1].email")

	members, err = ParseTeamMembers([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, members)
}

// ============================================================================
// Task
// ============================================================================

func TestParseTask_Valid(t *testing.T) {
	task, err := ParseTask(mustJSON(t, taskPayload()))
	require.NoError(t, err)

	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "p1", task.ProjectID)
	assert.Equal(t, models.StatusInProgress, task.Status)
	require.Len(t, task.CompletedBy, 2)
	assert.Equal(t, models.ActivityLogEntry{
		ID:     "a2",
		User:   models.User{ID: "u2", Name: "User u2", Email: "u2@example.com"},
		Status: models.StatusInProgress,
	}, task.CompletedBy[1])
	require.Len(t, task.Notes, 1)
	assert.Equal(t, "u1", task.Notes[0].CreatedBy.ID)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), task.Notes[0].CreatedAt)
	assert.Equal(t, time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC), task.UpdatedAt)
}

func TestParseTask_EmptyCollections(t *testing.T) {
	p := taskPayload()
	p["completedBy"] = []any{}
	p["notes"] = []any{}

	task, err := ParseTask(mustJSON(t, p))
	require.NoError(t, err)
	assert.NotNil(t, task.CompletedBy)
	assert.Empty(t, task.CompletedBy)
	assert.NotNil(t, task.Notes)
}

func TestParseTask_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p map[string]any)
		path   string
	}{
		{"unknown status", func(p map[string]any) { p["status"] = "done" }, "status"},
		{"missing status", func(p map[string]any) { delete(p, "status") }, "status"},
		{"missing project", func(p map[string]any) { delete(p, "project") }, "project"},
		{"completedBy not array", func(p map[string]any) { p["completedBy"] = "x" }, "completedBy"},
		{"bad log status", func(p map[string]any) {
			p["completedBy"].([]any)[1].(map[string]any)["status"] = "archived"
		}, "completedBy[1].status"},
		{"bad log user", func(p map[string]any) {
			delete(p["completedBy"].([]any)[0].(map[string]any)["user"].(map[string]any), "name")
		}, "completedBy[0].user.name"},
		{"bad note author email", func(p map[string]any) {
			p["notes"].([]any)[0].(map[string]any)["createdBy"] = map[string]any{"_id": "u1", "name": "x", "email": "nope"}
		}, "notes[0].createdBy.email"},
		{"bad timestamp", func(p map[string]any) { p["updatedAt"] = "yesterday" }, "updatedAt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := taskPayload()
			tt.mutate(p)

			task, err := ParseTask(mustJSON(t, p))
			requireValidationError(t, err, tt.path)
			assert.Equal(t, models.Task{}, task)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Schema: "task", Path: "status", Reason: `unknown status "done"`}
	assert.Equal(t, `invalid task response: status: unknown status "done"`, err.Error())

	err = &ValidationError{Schema: "team", Reason: "expected array, got object"}
	assert.Equal(t, "invalid team response: expected array, got object", err.Error())
}

// ============================================================================
// Project
// ============================================================================

func projectPayload() map[string]any {
	return map[string]any{
		"_id":         "p1",
		"projectName": "Website",
		"clientName":  "ACME",
		"description": "Relaunch",
		"manager":     "u1",
		"tasks": []any{
			map[string]any{"_id": "t1", "name": "a", "description": "b", "status": "pending"},
			map[string]any{"_id": "t2", "name": "c", "description": "d", "status": "completed"},
		},
		"team": []any{"u2", "u3"},
	}
}

func TestParseProject_Valid(t *testing.T) {
	p, err := ParseProject(mustJSON(t, projectPayload()))
	require.NoError(t, err)

	assert.Equal(t, models.Project{
		ID:          "p1",
		ProjectName: "Website",
		ClientName:  "ACME",
		Description: "Relaunch",
		Manager:     "u1",
		Tasks: []models.TaskSummary{
			{ID: "t1", Name: "a", Description: "b", Status: models.StatusPending},
			{ID: "t2", Name: "c", Description: "d", Status: models.StatusCompleted},
		},
		Team: []string{"u2", "u3"},
	}, p)
}

func TestParseProject_Invalid(t *testing.T) {
	p := projectPayload()
	p["tasks"].([]any)[1].(map[string]any)["status"] = "blocked"
	_, err := ParseProject(mustJSON(t, p))
	requireValidationError(t, err, "tasks[1].status")

	p = projectPayload()
	p["team"] = []any{"u2", 7}
	_, err = ParseProject(mustJSON(t, p))
	requireValidationError(t, err, "team[1]")

	p = projectPayload()
	delete(p, "manager")
	_, err = ParseProject(mustJSON(t, p))
	requireValidationError(t, err, "manager")
}

func TestParseProjectForm(t *testing.T) {
	form, err := ParseProjectForm(mustJSON(t, projectPayload()))
	require.NoError(t, err)
	assert.Equal(t, models.ProjectForm{ProjectName: "Website", ClientName: "ACME", Description: "Relaunch"}, form)

	_, err = ParseProjectForm([]byte(`{"projectName":"x","clientName":"y"}`))
	requireValidationError(t, err, "description")
}

func TestParseProjectSummaries(t *testing.T) {
	list, err := ParseProjectSummaries(mustJSON(t, []any{projectPayload()}))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "u1", list[0].Manager)

	_, err = ParseProjectSummaries([]byte(`{"projects":[]}`))
	requireValidationError(t, err, "")

	_, err = ParseProjectSummaries([]byte(`[{"_id":"p1"}]`))
	requireValidationError(t, err, "[0].projectName")
}
