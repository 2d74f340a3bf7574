package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/schema"
)

type memberRequest struct {
	ID string `json:"id"`
}

// FindUserByEmail looks up a user that could be added to the project
func (c *Client) FindUserByEmail(ctx context.Context, projectID string, form models.EmailForm) (models.TeamMember, error) {
	raw, err := c.do(ctx, http.MethodPost, endpoint("projects", projectID, "team", "find"), form)
	if err != nil {
		return models.TeamMember{}, err
	}
	return schema.ParseTeamMember(raw)
}

func (c *Client) AddTeamMember(ctx context.Context, projectID, userID string) (string, error) {
	return c.send(ctx, http.MethodPost, endpoint("projects", projectID, "team"), memberRequest{ID: userID})
}

func (c *Client) RemoveTeamMember(ctx context.Context, projectID, userID string) (string, error) {
	return c.send(ctx, http.MethodDelete, endpoint("projects", projectID, "team", userID), nil)
}

// GetProjectTeam lists the members of a project, excluding the manager
func (c *Client) GetProjectTeam(ctx context.Context, projectID string) ([]models.TeamMember, error) {
	raw, err := c.do(ctx, http.MethodGet, endpoint("projects", projectID, "team"), nil)
	if err != nil {
		return nil, err
	}
	return schema.ParseTeamMembers(raw)
}
