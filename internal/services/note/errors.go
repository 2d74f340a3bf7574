package note

import "errors"

// Note-related errors
var (
	ErrInvalidTaskID  = errors.New("invalid task ID")
	ErrNoteNotFound   = errors.New("note not found on task")
	ErrNotNoteCreator = errors.New("only the author of a note can delete it")
)
