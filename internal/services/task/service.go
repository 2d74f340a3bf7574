package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/query"
)

// Service defines all task-related operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, projectID, taskID string) (models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (string, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (string, error)
	DeleteTask(ctx context.Context, projectID, taskID string) (string, error)

	// Workflow
	SetStatus(ctx context.Context, task models.Task, status models.TaskStatus) (models.Task, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	ProjectID string
	Form      models.TaskForm
}

// UpdateTaskRequest encapsulates all data needed to update a task
type UpdateTaskRequest struct {
	ProjectID string
	TaskID    string
	Form      models.TaskForm
}

// client defines the endpoints needed by the task service
type client interface {
	GetTask(ctx context.Context, projectID, taskID string) (models.Task, error)
	CreateTask(ctx context.Context, projectID string, form models.TaskForm) (string, error)
	UpdateTask(ctx context.Context, projectID, taskID string, form models.TaskForm) (string, error)
	DeleteTask(ctx context.Context, projectID, taskID string) (string, error)
	TransitionTaskStatus(ctx context.Context, projectID, taskID string, status models.TaskStatus) (string, error)
}

type service struct {
	client client
	cache  *query.Cache
	logger *slog.Logger
}

// NewService creates a new task service
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

// GetTask returns the task, cached under its id
func (s *service) GetTask(ctx context.Context, projectID, taskID string) (models.Task, error) {
	if projectID == "" {
		return models.Task{}, ErrInvalidProjectID
	}
	if taskID == "" {
		return models.Task{}, ErrInvalidTaskID
	}

	return query.Fetch(ctx, s.cache, query.TaskKey(taskID), func(ctx context.Context) (models.Task, error) {
		return s.client.GetTask(ctx, projectID, taskID)
	})
}

// CreateTask validates and creates a task in the project
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (string, error) {
	if req.ProjectID == "" {
		return "", ErrInvalidProjectID
	}
	if err := models.ValidateForm(req.Form); err != nil {
		return "", err
	}

	msg, err := s.client.CreateTask(ctx, req.ProjectID, req.Form)
	if err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}

	s.cache.Apply(query.CreateTask, query.Target{ProjectID: req.ProjectID})
	return msg, nil
}

// UpdateTask validates and replaces a task's name and description
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (string, error) {
	if req.ProjectID == "" {
		return "", ErrInvalidProjectID
	}
	if req.TaskID == "" {
		return "", ErrInvalidTaskID
	}
	if err := models.ValidateForm(req.Form); err != nil {
		return "", err
	}

	msg, err := s.client.UpdateTask(ctx, req.ProjectID, req.TaskID, req.Form)
	if err != nil {
		return "", fmt.Errorf("failed to update task: %w", err)
	}

	s.cache.Apply(query.UpdateTask, query.Target{ProjectID: req.ProjectID, TaskID: req.TaskID})
	return msg, nil
}

// DeleteTask deletes a task and drops it from the cache
func (s *service) DeleteTask(ctx context.Context, projectID, taskID string) (string, error) {
	if projectID == "" {
		return "", ErrInvalidProjectID
	}
	if taskID == "" {
		return "", ErrInvalidTaskID
	}

	msg, err := s.client.DeleteTask(ctx, projectID, taskID)
	if err != nil {
		return "", fmt.Errorf("failed to delete task: %w", err)
	}

	s.cache.Apply(query.DeleteTask, query.Target{ProjectID: projectID, TaskID: taskID})
	return msg, nil
}

// SetStatus moves task to status and returns the server's copy of the task
// afterwards. Moving a task to the status it already has is still sent, so
// the server records the activity. The activity log is never edited locally.
func (s *service) SetStatus(ctx context.Context, task models.Task, status models.TaskStatus) (models.Task, error) {
	if _, err := models.ParseTaskStatus(string(status)); err != nil {
		return models.Task{}, err
	}
	if task.ProjectID == "" {
		return models.Task{}, ErrInvalidProjectID
	}
	if task.ID == "" {
		return models.Task{}, ErrInvalidTaskID
	}

	if _, err := s.client.TransitionTaskStatus(ctx, task.ProjectID, task.ID, status); err != nil {
		return models.Task{}, fmt.Errorf("failed to change task status: %w", err)
	}

	s.logger.Info("task status changed",
		"task_id", task.ID,
		"project_id", task.ProjectID,
		"from", task.Status,
		"to", status)

	s.cache.Apply(query.TransitionStatus, query.Target{ProjectID: task.ProjectID, TaskID: task.ID})

	updated, err := s.GetTask(ctx, task.ProjectID, task.ID)
	if err != nil {
		return models.Task{}, fmt.Errorf("status changed but the task could not be reloaded: %w", err)
	}
	return updated, nil
}
