package api

import (
	"errors"
	"fmt"
)

// fallbackMessage surfaces when the backend reports failure without a message.
const fallbackMessage = "request failed"

// Error is an API-level failure: the backend answered with success=false.
// It carries only the human-readable server message; the backend exposes no
// structured error codes.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(message string) *Error {
	if message == "" {
		message = fallbackMessage
	}
	return &Error{Message: message}
}

// DecodeError marks a response body that was not the JSON shape the
// endpoint promised.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to decode response: %v", e.Err)
	}
	return fmt.Sprintf("failed to decode response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrNotImplemented marks operations the dashboard exposes but the backend
// ships only as placeholders. Callers match it with errors.Is.
var ErrNotImplemented = errors.New("not implemented")
