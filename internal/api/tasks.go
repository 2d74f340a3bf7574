package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/schema"
)

type statusRequest struct {
	Status models.TaskStatus `json:"status"`
}

func (c *Client) CreateTask(ctx context.Context, projectID string, form models.TaskForm) (string, error) {
	return c.send(ctx, http.MethodPost, endpoint("projects", projectID, "tasks"), form)
}

// GetTask fetches a task with its notes and activity log
func (c *Client) GetTask(ctx context.Context, projectID, taskID string) (models.Task, error) {
	raw, err := c.do(ctx, http.MethodGet, endpoint("projects", projectID, "tasks", taskID), nil)
	if err != nil {
		return models.Task{}, err
	}
	return schema.ParseTask(raw)
}

func (c *Client) UpdateTask(ctx context.Context, projectID, taskID string, form models.TaskForm) (string, error) {
	return c.send(ctx, http.MethodPut, endpoint("projects", projectID, "tasks", taskID), form)
}

func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) (string, error) {
	return c.send(ctx, http.MethodDelete, endpoint("projects", projectID, "tasks", taskID), nil)
}

// TransitionTaskStatus asks the server to move a task to status. Unknown
// statuses fail with models.ErrInvalidStatus without a request being made.
func (c *Client) TransitionTaskStatus(ctx context.Context, projectID, taskID string, status models.TaskStatus) (string, error) {
	if _, err := models.ParseTaskStatus(string(status)); err != nil {
		return "", err
	}
	return c.send(ctx, http.MethodPost,
		endpoint("projects", projectID, "tasks", taskID, "status"),
		statusRequest{Status: status})
}
