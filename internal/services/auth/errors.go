package auth

import "errors"

var (
	ErrInvalidResetToken = errors.New("invalid reset token")
	ErrNotLoggedIn       = errors.New("not logged in")
)
