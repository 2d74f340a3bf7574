package project

import "errors"

// Project-related errors
var (
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrEmptyPassword    = errors.New("password is required to delete a project")
)
