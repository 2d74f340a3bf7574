package models

import "errors"

// ErrInvalidStatus is returned for any status outside the workflow set
var ErrInvalidStatus = errors.New("invalid task status")

// ErrInvalidForm is wrapped by every *FormError
var ErrInvalidForm = errors.New("invalid form")
