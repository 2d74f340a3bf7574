package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/uptask/internal/models"
)

func (c *Client) CreateNote(ctx context.Context, projectID, taskID string, form models.NoteForm) (string, error) {
	return c.send(ctx, http.MethodPost, endpoint("projects", projectID, "tasks", taskID, "notes"), form)
}

func (c *Client) DeleteNote(ctx context.Context, projectID, taskID, noteID string) (string, error) {
	return c.send(ctx, http.MethodDelete, endpoint("projects", projectID, "tasks", taskID, "notes", noteID), nil)
}
