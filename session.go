package ledgerline

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// tokenStore holds the current access/refresh token pair. A mutex guards
// it because the bearer transport reads the access token on every request
// while Login and RefreshAccessToken replace the pair.
type tokenStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

func (s *tokenStore) set(access, refresh string) {
	s.mu.Lock()
	s.access = access
	s.refresh = refresh
	s.mu.Unlock()
}

func (s *tokenStore) accessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *tokenStore) refreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// bearerTransport wraps an http.RoundTripper to set the default headers
// and, once a token is held, the Authorization header. Unauthenticated
// requests go out without the header; the server decides whether the
// endpoint requires one.
type bearerTransport struct {
	base   http.RoundTripper
	tokens *tokenStore
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Accept", "application/json")
	if token := t.tokens.accessToken(); token != "" {
		cloned.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base.RoundTrip(cloned)
}

// requestIDTransport stamps each outgoing request with a fresh
// X-Request-Id so calls can be correlated in server logs.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}
	return t.base.RoundTrip(req)
}
