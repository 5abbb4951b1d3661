package ledgerline

import "github.com/ledgerline/ledgerline-go/internal/types"

// Public type aliases so SDK consumers can import only the root package.
type (
	// Requests
	CreateCustomerRequest = types.CreateCustomerRequest
	CreateInvoiceRequest  = types.CreateInvoiceRequest

	// Domain entities
	User        = types.User
	Address     = types.Address
	Customer    = types.Customer
	Invoice     = types.Invoice
	InvoiceItem = types.InvoiceItem
	Meta        = types.Meta

	// Responses
	LoginResult  = types.LoginResult
	TokenPair    = types.TokenPair
	CustomerPage = types.CustomerPage
	InvoicePage  = types.InvoicePage
)

// Errors re-exported in errors.go
