package ledgerline

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockAPI is an httptest server covering the endpoints the flow tests hit.
// It issues token pair (a1, r1) on login and (a2, r2) on refresh, and
// requires a valid bearer token on the customer and invoice routes.
func mockAPI(t *testing.T) *httptest.Server {
	t.Helper()
	validTokens := map[string]bool{"a1": true, "a2": true}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"accessToken":  "a1",
				"refreshToken": "r1",
				"user":         map[string]string{"email": "admin@example.com", "organizationId": "org-1"},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/auth/refresh":
			var req map[string]string
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req["refreshToken"] != "r1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "a2", "refreshToken": "r2"})
		case r.Method == http.MethodGet && r.URL.Path == "/customers":
			auth := r.Header.Get("Authorization")
			if len(auth) < 8 || auth[:7] != "Bearer " || !validTokens[auth[7:]] {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(CustomerPage{
				Data: []Customer{{ID: "c1", Type: "PERSON"}},
				Meta: Meta{Total: 1, Limit: 20},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestLogin_StoresTokensAndSetsBearerHeader(t *testing.T) {
	t.Parallel()
	srv := mockAPI(t)
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	// Unauthenticated call goes out without the header and surfaces 401.
	if _, err := c.ListCustomers(ctx, nil); !IsAuthError(err) {
		t.Fatalf("expected auth error before login, got %v", err)
	}
	if c.Authenticated() {
		t.Fatal("client claims authenticated before login")
	}

	result, err := c.Login(ctx, "admin@example.com", "pw", "org-1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if result.AccessToken != "a1" || result.RefreshToken != "r1" || result.User.Email != "admin@example.com" {
		t.Fatalf("unexpected login result %+v", result)
	}
	if !c.Authenticated() {
		t.Fatal("client not authenticated after login")
	}

	// Subsequent calls carry Authorization: Bearer a1 and succeed.
	page, err := c.ListCustomers(ctx, map[string]string{"limit": "20", "offset": "0"})
	if err != nil {
		t.Fatalf("ListCustomers after login: %v", err)
	}
	if page.Meta.Total != 1 || page.Data[0].ID != "c1" {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestRefreshAccessToken_ReplacesStoredPair(t *testing.T) {
	t.Parallel()
	srv := mockAPI(t)
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	if _, err := c.Login(ctx, "admin@example.com", "pw", "org-1"); err != nil {
		t.Fatalf("Login error: %v", err)
	}

	pair, err := c.RefreshAccessToken(ctx)
	if err != nil {
		t.Fatalf("RefreshAccessToken error: %v", err)
	}
	if pair.AccessToken != "a2" || pair.RefreshToken != "r2" {
		t.Fatalf("unexpected pair %+v", pair)
	}

	// The new access token is used from now on.
	if _, err := c.ListCustomers(ctx, nil); err != nil {
		t.Fatalf("ListCustomers with refreshed token: %v", err)
	}

	// The old refresh token was replaced, so refreshing again fails with
	// the server's 401 mapped to an AuthError.
	if _, err := c.RefreshAccessToken(ctx); !IsAuthError(err) {
		t.Fatalf("expected auth error for stale refresh token, got %v", err)
	}
}

func TestRefreshAccessToken_WithoutLoginIsLocal(t *testing.T) {
	t.Parallel()
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}))

	_, err := c.RefreshAccessToken(context.Background())
	if !errors.Is(err, ErrNoRefreshToken) {
		t.Fatalf("expected ErrNoRefreshToken, got %v", err)
	}
	if called {
		t.Fatal("refresh without a token performed a network call")
	}
}

func TestAPIError_CarriesStatusAndBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetCustomer(context.Background(), "c1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Body != "upstream down" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestRequestHeaders_Defaults(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("accept header %q", accept)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id header")
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header before login")
		}
		_ = json.NewEncoder(w).Encode(InvoicePage{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.ListInvoices(context.Background(), nil); err != nil {
		t.Fatalf("ListInvoices error: %v", err)
	}
}
