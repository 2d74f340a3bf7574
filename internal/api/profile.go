package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/uptask/internal/models"
)

func (c *Client) UpdateProfile(ctx context.Context, form models.ProfileForm) (string, error) {
	return c.send(ctx, http.MethodPut, "/auth/profile", form)
}

// ChangePassword changes the password of the logged in user
func (c *Client) ChangePassword(ctx context.Context, form models.UpdatePasswordForm) (string, error) {
	return c.send(ctx, http.MethodPost, "/auth/update-password", form)
}
