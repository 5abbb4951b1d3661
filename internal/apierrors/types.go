// Package apierrors defines the error taxonomy for the client SDK.
// Every failed HTTP call maps to exactly one of two kinds: an
// authentication failure (401) or a generic API failure carrying the
// status code and response body.
package apierrors

import (
	"errors"
	"fmt"
)

// AuthError is returned when the server responds with 401 Unauthorized,
// regardless of the response body. The caller must login again.
type AuthError struct {
	Op   string // operation that failed, e.g. "list customers"
	Body string // raw response body, kept for debugging
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: authentication failed, please login again", e.Op)
}

// Error is returned for any non-2xx, non-401 response.
type Error struct {
	Op         string // operation that failed
	StatusCode int    // HTTP status code
	Body       string // raw response body
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// IsAuth reports whether err (or any error it wraps) is an AuthError.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
