package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/schema"
)

func (c *Client) CreateAccount(ctx context.Context, form models.RegistrationForm) (string, error) {
	return c.send(ctx, http.MethodPost, "/auth/create-account", form)
}

func (c *Client) ConfirmAccount(ctx context.Context, form models.ConfirmToken) (string, error) {
	return c.send(ctx, http.MethodPost, "/auth/confirm-account", form)
}

func (c *Client) RequestConfirmationCode(ctx context.Context, form models.EmailForm) (string, error) {
	return c.send(ctx, http.MethodPost, "/auth/request-code", form)
}

// Login authenticates and stores the returned token
func (c *Client) Login(ctx context.Context, form models.LoginForm) (string, error) {
	token, err := c.send(ctx, http.MethodPost, "/auth/login", form)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrEmptyToken
	}
	if c.store != nil {
		if err := c.store.Set(token); err != nil {
			return "", fmt.Errorf("failed to store session token: %w", err)
		}
	}
	return token, nil
}

func (c *Client) ForgotPassword(ctx context.Context, form models.EmailForm) (string, error) {
	return c.send(ctx, http.MethodPost, "/auth/forgot-password", form)
}

func (c *Client) ValidateToken(ctx context.Context, form models.ConfirmToken) (string, error) {
	return c.send(ctx, http.MethodPost, "/auth/validate-token", form)
}

// UpdatePasswordWithToken resets a password using a validated reset token
func (c *Client) UpdatePasswordWithToken(ctx context.Context, token string, form models.NewPasswordForm) (string, error) {
	return c.send(ctx, http.MethodPost, endpoint("auth", "update-password", token), form)
}

// GetUser returns the account behind the current token
func (c *Client) GetUser(ctx context.Context) (models.User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/auth/user", nil)
	if err != nil {
		return models.User{}, err
	}
	return schema.ParseUser(raw)
}

func (c *Client) CheckPassword(ctx context.Context, form models.CheckPasswordForm) (string, error) {
	return c.send(ctx, http.MethodPost, "/auth/check-password", form)
}
