package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/schema"
)

// ListProjects returns the projects the user manages or belongs to
func (c *Client) ListProjects(ctx context.Context) ([]models.ProjectSummary, error) {
	raw, err := c.do(ctx, http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, err
	}
	return schema.ParseProjectSummaries(raw)
}

func (c *Client) CreateProject(ctx context.Context, form models.ProjectFormData) (string, error) {
	return c.send(ctx, http.MethodPost, "/projects", form)
}

// GetProjectForm fetches a project in its editable shape
func (c *Client) GetProjectForm(ctx context.Context, id string) (models.ProjectForm, error) {
	raw, err := c.do(ctx, http.MethodGet, endpoint("projects", id), nil)
	if err != nil {
		return models.ProjectForm{}, err
	}
	return schema.ParseProjectForm(raw)
}

// GetProject fetches a project with its task summaries and team ids
func (c *Client) GetProject(ctx context.Context, id string) (models.Project, error) {
	raw, err := c.do(ctx, http.MethodGet, endpoint("projects", id), nil)
	if err != nil {
		return models.Project{}, err
	}
	return schema.ParseProject(raw)
}

func (c *Client) UpdateProject(ctx context.Context, id string, form models.ProjectFormData) (string, error) {
	return c.send(ctx, http.MethodPut, endpoint("projects", id), form)
}

func (c *Client) DeleteProject(ctx context.Context, id string) (string, error) {
	return c.send(ctx, http.MethodDelete, endpoint("projects", id), nil)
}
