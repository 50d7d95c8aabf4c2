package leadapi

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus matches every *StatusError with errors.Is.
var ErrUnexpectedStatus = errors.New("unexpected status from lead service")

// maxErrorBody bounds the response body kept in a StatusError.
const maxErrorBody = 512

// StatusError is a non-2xx response from the lead service.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error implements error.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Is reports whether target is ErrUnexpectedStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
