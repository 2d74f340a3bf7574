package team

import "errors"

var (
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrInvalidUserID    = errors.New("invalid user ID")
)
