// Package auth covers account registration, session login and logout, and
// profile management.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/uptask/internal/credentials"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/query"
)

// Service defines account and session operations
type Service interface {
	// Registration
	Register(ctx context.Context, form models.RegistrationForm) (string, error)
	Confirm(ctx context.Context, token string) (string, error)
	RequestCode(ctx context.Context, email string) (string, error)

	// Session
	Login(ctx context.Context, form models.LoginForm) error
	Logout() error
	LoggedIn() bool
	CurrentUser(ctx context.Context) (models.User, error)

	// Password reset
	ForgotPassword(ctx context.Context, email string) (string, error)
	ValidateToken(ctx context.Context, token string) (string, error)
	ResetPassword(ctx context.Context, token string, form models.NewPasswordForm) (string, error)

	// Profile
	CheckPassword(ctx context.Context, password string) (string, error)
	UpdateProfile(ctx context.Context, form models.ProfileForm) (string, error)
	ChangePassword(ctx context.Context, form models.UpdatePasswordForm) (string, error)
}

type client interface {
	CreateAccount(ctx context.Context, form models.RegistrationForm) (string, error)
	ConfirmAccount(ctx context.Context, form models.ConfirmToken) (string, error)
	RequestConfirmationCode(ctx context.Context, form models.EmailForm) (string, error)
	Login(ctx context.Context, form models.LoginForm) (string, error)
	ForgotPassword(ctx context.Context, form models.EmailForm) (string, error)
	ValidateToken(ctx context.Context, form models.ConfirmToken) (string, error)
	UpdatePasswordWithToken(ctx context.Context, token string, form models.NewPasswordForm) (string, error)
	GetUser(ctx context.Context) (models.User, error)
	CheckPassword(ctx context.Context, form models.CheckPasswordForm) (string, error)
	UpdateProfile(ctx context.Context, form models.ProfileForm) (string, error)
	ChangePassword(ctx context.Context, form models.UpdatePasswordForm) (string, error)
}

type service struct {
	client client
	store  credentials.Store
	cache  *query.Cache
	logger *slog.Logger
}

// NewService creates a new auth service
func NewService(c client, store credentials.Store, cache *query.Cache, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		client: c,
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

func (s *service) Register(ctx context.Context, form models.RegistrationForm) (string, error) {
	if err := models.ValidateForm(form); err != nil {
		return "", err
	}
	return s.client.CreateAccount(ctx, form)
}

func (s *service) Confirm(ctx context.Context, token string) (string, error) {
	form := models.ConfirmToken{Token: token}
	if err := models.ValidateForm(form); err != nil {
		return "", err
	}
	return s.client.ConfirmAccount(ctx, form)
}

func (s *service) RequestCode(ctx context.Context, email string) (string, error) {
	form := models.EmailForm{Email: email}
	if err := models.ValidateForm(form); err != nil {
		return "", err
	}
	return s.client.RequestConfirmationCode(ctx, form)
}

// Login authenticates and starts a new session. Everything cached for the
// previous identity is dropped.
func (s *service) Login(ctx context.Context, form models.LoginForm) error {
	if err := models.ValidateForm(form); err != nil {
		return err
	}
	if _, err := s.client.Login(ctx, form); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	s.cache.Apply(query.Login, query.Target{})
	s.logger.Info("logged in", "email", form.Email)
	return nil
}

// Logout forgets the token and everything cached for it
func (s *service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	s.cache.Apply(query.Logout, query.Target{})
	s.logger.Info("logged out")
	return nil
}

// LoggedIn reports whether an unexpired token is stored
func (s *service) LoggedIn() bool {
	token, ok := s.store.Token()
	return ok && !credentials.Expired(token, time.Now())
}

// CurrentUser returns the logged in user, cached under the user key
func (s *service) CurrentUser(ctx context.Context) (models.User, error) {
	if !s.LoggedIn() {
		return models.User{}, ErrNotLoggedIn
	}
	return query.Fetch(ctx, s.cache, query.UserKey(), s.client.GetUser)
}

func (s *service) ForgotPassword(ctx context.Context, email string) (string, error) {
	form := models.EmailForm{Email: email}
	if err := models.ValidateForm(form); err != nil {
		return "", err
	}
	return s.client.ForgotPassword(ctx, form)
}

func (s *service) ValidateToken(ctx context.Context, token string) (string, error) {
	form := models.ConfirmToken{Token: token}
	if err := models.ValidateForm(form); err != nil {
		return "", err
	}
	return s.client.ValidateToken(ctx, form)
}

// ResetPassword sets a new password with a token from ForgotPassword
func (s *service) ResetPassword(ctx context.Context, token string, form models.NewPasswordForm) (string, error) {
	if err := models.ValidateForm(models.ConfirmToken{Token: token}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidResetToken, err)
	}
	if err := models.ValidateForm(form); err != nil {
		return "", err
	}
	return s.client.UpdatePasswordWithToken(ctx, token, form)
}

func (s *service) CheckPassword(ctx context.Context, password string) (string, error) {
	form := models.CheckPasswordForm{Password: password}
	if err := models.ValidateForm(form); err != nil {
		return "", err
	}
	return s.client.CheckPassword(ctx, form)
}

func (s *service) UpdateProfile(ctx context.Context, form models.ProfileForm) (string, error) {
	if err := models.ValidateForm(form); err != nil {
		return "", err
	}

	msg, err := s.client.UpdateProfile(ctx, form)
	if err != nil {
		return "", fmt.Errorf("failed to update profile: %w", err)
	}

	s.cache.Apply(query.UpdateProfile, query.Target{})
	return msg, nil
}

func (s *service) ChangePassword(ctx context.Context, form models.UpdatePasswordForm) (string, error) {
	if err := models.ValidateForm(form); err != nil {
		return "", err
	}
	return s.client.ChangePassword(ctx, form)
}
