// Package ledgerline is a Go client for the Ledgerline accounting API.
// It wraps the HTTP endpoints for authentication, customer management and
// invoicing behind typed methods, attaching bearer-token authorization
// automatically once a token pair has been obtained via Login.
package ledgerline

import (
	"context"
	"net/http"
	"time"

	"github.com/ledgerline/ledgerline-go/internal/api"
	"github.com/ledgerline/ledgerline-go/internal/types"
)

// DefaultBaseURL points at a locally running API server.
const DefaultBaseURL = "http://localhost:3000/api/v1"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client holds the base URL, the current token pair and a reusable HTTP
// client. Methods are safe for concurrent use; the token store is the
// only mutable state and is guarded internally.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *tokenStore
}

// New constructs a Client for the given base URL.
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		tokens:  &tokenStore{},
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap the transport so every request carries the default headers,
	// a request ID, and the Authorization header once a token is held.
	c.wrapTransport()

	return c
}

// wrapTransport installs the bearer-token wrapper on top of whatever
// transport the options left in place (e.g. the debug transport).
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{
		base:   &requestIDTransport{base: base},
		tokens: c.tokens,
	}
}

// --------------------------------------------------------------------
// Auth operations - delegated to internal/api
// --------------------------------------------------------------------

// Login authenticates with email, password and organization ID, stores
// the returned token pair for subsequent calls, and returns the full
// login response including the user profile.
func (c *Client) Login(ctx context.Context, email, password, organizationID string) (*LoginResult, error) {
	result, err := api.Login(ctx, c.http, c.baseURL, types.LoginRequest{
		Email:          email,
		Password:       password,
		OrganizationID: organizationID,
	})
	observe("auth", err)
	if err != nil {
		return nil, err
	}
	c.tokens.set(result.AccessToken, result.RefreshToken)
	return result, nil
}

// RefreshAccessToken obtains a new token pair using the stored refresh
// token and replaces the stored pair. It returns ErrNoRefreshToken
// without any network call when no refresh token is held.
func (c *Client) RefreshAccessToken(ctx context.Context) (*TokenPair, error) {
	refresh := c.tokens.refreshToken()
	if refresh == "" {
		return nil, ErrNoRefreshToken
	}
	pair, err := api.Refresh(ctx, c.http, c.baseURL, refresh)
	observe("auth", err)
	if err != nil {
		return nil, err
	}
	c.tokens.set(pair.AccessToken, pair.RefreshToken)
	return pair, nil
}

// Authenticated reports whether the client currently holds an access
// token. The server remains the authority: an expired or revoked token
// still surfaces as an AuthError on the next call.
func (c *Client) Authenticated() bool {
	return c.tokens.accessToken() != ""
}

// --------------------------------------------------------------------
// Customer operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCustomers retrieves customers. Filter and pagination parameters
// (limit, offset, sort_by, sort_order, ...) are passed through as the
// query string; the server interprets them.
func (c *Client) ListCustomers(ctx context.Context, params map[string]string) (*CustomerPage, error) {
	page, err := api.ListCustomers(ctx, c.http, c.baseURL, params)
	observe("customers", err)
	return page, err
}

// CreateCustomer creates a new customer.
func (c *Client) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	customer, err := api.CreateCustomer(ctx, c.http, c.baseURL, req)
	observe("customers", err)
	return customer, err
}

// GetCustomer retrieves a specific customer by ID.
func (c *Client) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	customer, err := api.GetCustomer(ctx, c.http, c.baseURL, customerID)
	observe("customers", err)
	return customer, err
}

// --------------------------------------------------------------------
// Invoice operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateInvoice creates a new invoice.
func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error) {
	invoice, err := api.CreateInvoice(ctx, c.http, c.baseURL, req)
	observe("invoices", err)
	return invoice, err
}

// ListInvoices retrieves invoices with optional filter and pagination
// parameters passed through as the query string.
func (c *Client) ListInvoices(ctx context.Context, params map[string]string) (*InvoicePage, error) {
	page, err := api.ListInvoices(ctx, c.http, c.baseURL, params)
	observe("invoices", err)
	return page, err
}
