package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ledgerline/ledgerline-go/internal/types"
)

// CreateInvoice creates a new invoice.
func CreateInvoice(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateInvoiceRequest) (*types.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/invoices", baseURL)
	httpReq, err := newJSONRequest(ctx, http.MethodPost, url, req)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	var invoice types.Invoice
	if err := handleResponse("create invoice", resp, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ListInvoices retrieves invoices with optional filter and pagination
// parameters passed through as the query string.
func ListInvoices(ctx context.Context, httpClient *http.Client, baseURL string, params map[string]string) (*types.InvoicePage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/invoices%s", baseURL, encodeParams(params))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	var page types.InvoicePage
	if err := handleResponse("list invoices", resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
