package credentials

import "errors"

var (
	ErrEmptyToken = errors.New("token cannot be empty")
	ErrNoExpiry   = errors.New("token carries no expiry")
)
