package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ledgerline/ledgerline-go/internal/types"
)

// ListCustomers retrieves customers with optional filter and pagination
// parameters passed through as the query string.
func ListCustomers(ctx context.Context, httpClient *http.Client, baseURL string, params map[string]string) (*types.CustomerPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/customers%s", baseURL, encodeParams(params))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	var page types.CustomerPage
	if err := handleResponse("list customers", resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateCustomer creates a new customer.
func CreateCustomer(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateCustomerRequest) (*types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/customers", baseURL)
	httpReq, err := newJSONRequest(ctx, http.MethodPost, url, req)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	var customer types.Customer
	if err := handleResponse("create customer", resp, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetCustomer retrieves a specific customer by ID.
func GetCustomer(ctx context.Context, httpClient *http.Client, baseURL, customerID string) (*types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/customers/%s", baseURL, customerID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	var customer types.Customer
	if err := handleResponse("get customer", resp, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}
