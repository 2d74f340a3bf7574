package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/query"
)

// Service defines all project-related operations
type Service interface {
	// Read operations
	ListProjects(ctx context.Context) ([]models.ProjectSummary, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	GetProjectForm(ctx context.Context, id string) (models.ProjectForm, error)

	// Write operations
	CreateProject(ctx context.Context, form models.ProjectFormData) (string, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (string, error)
	DeleteProject(ctx context.Context, id string) (string, error)
	DeleteWithPassword(ctx context.Context, id, password string) (string, error)
}

// UpdateProjectRequest encapsulates data for updating a project
type UpdateProjectRequest struct {
	ID   string
	Form models.ProjectFormData
}

// client defines the endpoints needed by the project service
type client interface {
	ListProjects(ctx context.Context) ([]models.ProjectSummary, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	GetProjectForm(ctx context.Context, id string) (models.ProjectForm, error)
	CreateProject(ctx context.Context, form models.ProjectFormData) (string, error)
	UpdateProject(ctx context.Context, id string, form models.ProjectFormData) (string, error)
	DeleteProject(ctx context.Context, id string) (string, error)
	CheckPassword(ctx context.Context, form models.CheckPasswordForm) (string, error)
}

type service struct {
	client client
	cache  *query.Cache
	logger *slog.Logger
}

// NewService creates a new project service
func NewService(c client, cache *query.Cache, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		client: c,
		cache:  cache,
		logger: logger,
	}
}

func (s *service) ListProjects(ctx context.Context) ([]models.ProjectSummary, error) {
	return query.Fetch(ctx, s.cache, query.ProjectsKey(), s.client.ListProjects)
}

// GetProject returns the full project view with task summaries
func (s *service) GetProject(ctx context.Context, id string) (models.Project, error) {
	if id == "" {
		return models.Project{}, ErrInvalidProjectID
	}
	return query.Fetch(ctx, s.cache, query.ProjectKey(id), func(ctx context.Context) (models.Project, error) {
		return s.client.GetProject(ctx, id)
	})
}

// GetProjectForm returns only the editable fields, cached separately from
// the full view
func (s *service) GetProjectForm(ctx context.Context, id string) (models.ProjectForm, error) {
	if id == "" {
		return models.ProjectForm{}, ErrInvalidProjectID
	}
	return query.Fetch(ctx, s.cache, query.EditProjectKey(id), func(ctx context.Context) (models.ProjectForm, error) {
		return s.client.GetProjectForm(ctx, id)
	})
}

func (s *service) CreateProject(ctx context.Context, form models.ProjectFormData) (string, error) {
	if err := models.ValidateForm(form); err != nil {
		return "", err
	}

	msg, err := s.client.CreateProject(ctx, form)
	if err != nil {
		return "", fmt.Errorf("failed to create project: %w", err)
	}

	s.cache.Apply(query.CreateProject, query.Target{})
	return msg, nil
}

func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (string, error) {
	if req.ID == "" {
		return "", ErrInvalidProjectID
	}
	if err := models.ValidateForm(req.Form); err != nil {
		return "", err
	}

	msg, err := s.client.UpdateProject(ctx, req.ID, req.Form)
	if err != nil {
		return "", fmt.Errorf("failed to update project: %w", err)
	}

	s.cache.Apply(query.UpdateProject, query.Target{ProjectID: req.ID})
	return msg, nil
}

func (s *service) DeleteProject(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrInvalidProjectID
	}

	msg, err := s.client.DeleteProject(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to delete project: %w", err)
	}

	s.cache.Apply(query.DeleteProject, query.Target{ProjectID: id})
	return msg, nil
}

// DeleteWithPassword re-checks the user's password before deleting. The two
// requests are independent; a failed delete leaves the project in place.
func (s *service) DeleteWithPassword(ctx context.Context, id, password string) (string, error) {
	if id == "" {
		return "", ErrInvalidProjectID
	}
	if password == "" {
		return "", ErrEmptyPassword
	}

	if _, err := s.client.CheckPassword(ctx, models.CheckPasswordForm{Password: password}); err != nil {
		return "", fmt.Errorf("password check failed: %w", err)
	}

	s.logger.Info("password confirmed, deleting project", "project_id", id)
	return s.DeleteProject(ctx, id)
}
