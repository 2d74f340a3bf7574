package task

import "errors"

// Task-related errors
var (
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrInvalidTaskID    = errors.New("invalid task ID")
)
