package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds credentials for the login endpoint.
type LoginRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	OrganizationID string `json:"organizationId"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// CreateCustomerRequest holds parameters for a new customer. The server
// validates the payload; the client sends it as-is.
type CreateCustomerRequest struct {
	Type      string   `json:"type"`
	Tier      string   `json:"tier,omitempty"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Name      string   `json:"name,omitempty"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// CreateInvoiceRequest holds parameters for a new invoice.
type CreateInvoiceRequest struct {
	CustomerID string        `json:"customerId"`
	Items      []InvoiceItem `json:"items"`
	Subtotal   string        `json:"subtotal"`
	TaxRate    string        `json:"taxRate,omitempty"`
	TaxAmount  string        `json:"taxAmount,omitempty"`
	Total      string        `json:"total"`
	DueDate    string        `json:"dueDate,omitempty"`
}
