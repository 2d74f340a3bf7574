package team

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/query"
)

// Service manages project membership
type Service interface {
	FindByEmail(ctx context.Context, projectID, email string) (models.TeamMember, error)
	AddMember(ctx context.Context, projectID, userID string) (string, error)
	RemoveMember(ctx context.Context, projectID, userID string) (string, error)
	ListMembers(ctx context.Context, projectID string) ([]models.TeamMember, error)
}

type client interface {
	FindUserByEmail(ctx context.Context, projectID string, form models.EmailForm) (models.TeamMember, error)
	AddTeamMember(ctx context.Context, projectID, userID string) (string, error)
	RemoveTeamMember(ctx context.Context, projectID, userID string) (string, error)
	GetProjectTeam(ctx context.Context, projectID string) ([]models.TeamMember, error)
}

type service struct {
	client client
	cache  *query.Cache
}

// NewService creates a new team service
func NewService(c client, cache *query.Cache) Service {
	return &service{client: c, cache: cache}
}

// FindByEmail looks up a user to add; lookups are not cached
func (s *service) FindByEmail(ctx context.Context, projectID, email string) (models.TeamMember, error) {
	if projectID == "" {
		return models.TeamMember{}, ErrInvalidProjectID
	}
	form := models.EmailForm{Email: email}
	if err := models.ValidateForm(form); err != nil {
		return models.TeamMember{}, err
	}
	return s.client.FindUserByEmail(ctx, projectID, form)
}

func (s *service) AddMember(ctx context.Context, projectID, userID string) (string, error) {
	if err := validateIDs(projectID, userID); err != nil {
		return "", err
	}

	msg, err := s.client.AddTeamMember(ctx, projectID, userID)
	if err != nil {
		return "", fmt.Errorf("failed to add team member: %w", err)
	}

	s.cache.Apply(query.AddMember, query.Target{ProjectID: projectID})
	return msg, nil
}

func (s *service) RemoveMember(ctx context.Context, projectID, userID string) (string, error) {
	if err := validateIDs(projectID, userID); err != nil {
		return "", err
	}

	msg, err := s.client.RemoveTeamMember(ctx, projectID, userID)
	if err != nil {
		return "", fmt.Errorf("failed to remove team member: %w", err)
	}

	s.cache.Apply(query.RemoveMember, query.Target{ProjectID: projectID})
	return msg, nil
}

func (s *service) ListMembers(ctx context.Context, projectID string) ([]models.TeamMember, error) {
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return query.Fetch(ctx, s.cache, query.ProjectTeamKey(projectID), func(ctx context.Context) ([]models.TeamMember, error) {
		return s.client.GetProjectTeam(ctx, projectID)
	})
}

func validateIDs(projectID, userID string) error {
	if projectID == "" {
		return ErrInvalidProjectID
	}
	if userID == "" {
		return ErrInvalidUserID
	}
	return nil
}
