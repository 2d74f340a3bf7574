package note

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/policy"
	"github.com/thenoetrevino/uptask/internal/query"
)

// Service defines note operations on a task
type Service interface {
	AddNote(ctx context.Context, task models.Task, form models.NoteForm) (string, error)
	DeleteNote(ctx context.Context, task models.Task, noteID string, user models.User) (string, error)
}

type client interface {
	CreateNote(ctx context.Context, projectID, taskID string, form models.NoteForm) (string, error)
	DeleteNote(ctx context.Context, projectID, taskID, noteID string) (string, error)
}

type service struct {
	client client
	cache  *query.Cache
}

// NewService creates a new note service
func NewService(c client, cache *query.Cache) Service {
	return &service{client: c, cache: cache}
}

func (s *service) AddNote(ctx context.Context, task models.Task, form models.NoteForm) (string, error) {
	if task.ID == "" || task.ProjectID == "" {
		return "", ErrInvalidTaskID
	}
	if err := models.ValidateForm(form); err != nil {
		return "", err
	}

	msg, err := s.client.CreateNote(ctx, task.ProjectID, task.ID, form)
	if err != nil {
		return "", fmt.Errorf("failed to add note: %w", err)
	}

	s.cache.Apply(query.CreateNote, query.Target{ProjectID: task.ProjectID, TaskID: task.ID})
	return msg, nil
}

// DeleteNote removes a note written by user. Notes by anyone else are
// refused without contacting the server.
func (s *service) DeleteNote(ctx context.Context, task models.Task, noteID string, user models.User) (string, error) {
	if task.ID == "" || task.ProjectID == "" {
		return "", ErrInvalidTaskID
	}

	var target *models.Note
	for i := range task.Notes {
		if task.Notes[i].ID == noteID {
			target = &task.Notes[i]
			break
		}
	}
	if target == nil {
		return "", ErrNoteNotFound
	}
	if !policy.CanDeleteNote(*target, user) {
		return "", ErrNotNoteCreator
	}

	msg, err := s.client.DeleteNote(ctx, task.ProjectID, task.ID, noteID)
	if err != nil {
		return "", fmt.Errorf("failed to delete note: %w", err)
	}

	s.cache.Apply(query.DeleteNote, query.Target{ProjectID: task.ProjectID, TaskID: task.ID})
	return msg, nil
}
