package ledgerline

import (
	"errors"

	"github.com/ledgerline/ledgerline-go/internal/apierrors"
)

// ErrNoRefreshToken is returned by RefreshAccessToken when no refresh
// token is held. It is a local precondition failure: no request is made.
var ErrNoRefreshToken = errors.New("no refresh token available")

// AuthError is returned when any call gets a 401 response.
type AuthError = apierrors.AuthError

// APIError is returned for any other non-2xx response. It carries the
// status code and the raw response body.
type APIError = apierrors.Error

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool { return apierrors.IsAuth(err) }
