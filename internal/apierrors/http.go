package apierrors

import "net/http"

// FromResponse maps a non-2xx HTTP response to the matching error kind.
// 401 is classified as AuthError; everything else is a generic Error.
func FromResponse(op string, statusCode int, body string) error {
	if statusCode == http.StatusUnauthorized {
		return &AuthError{Op: op, Body: body}
	}
	return &Error{Op: op, StatusCode: statusCode, Body: body}
}
