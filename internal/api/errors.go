package api

import (
	"errors"
	"fmt"
	"net/http"
)

// FallbackMessage is shown when no response was received
const FallbackMessage = "could not reach the server"

// ErrEmptyToken is returned by Login when the server answers 2xx without a token
var ErrEmptyToken = errors.New("login response did not contain a token")

// RemoteError is a non-2xx response. Message is the server's error text and
// may be empty.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote error %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("remote error %d: %s", e.StatusCode, e.Message)
}

// TransportError means the request never produced a response
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message is the text to show a user
func (e *TransportError) Message() string {
	return FallbackMessage
}

// StatusCode returns the HTTP status of a RemoteError anywhere in err's
// chain, or 0.
func StatusCode(err error) int {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the server
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from the server
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}
