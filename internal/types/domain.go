package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// User represents the authenticated account returned by the login endpoint.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Role           string `json:"role,omitempty"`
	OrganizationID string `json:"organizationId"`
}

// Address is a customer's postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Customer represents a customer record. Type is PERSON or COMPANY;
// Name is set for companies, FirstName/LastName for persons.
type Customer struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Tier      string     `json:"tier,omitempty"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   *Address   `json:"address,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// InvoiceItem is a single line on an invoice. Monetary fields are decimal
// strings; the client passes them through verbatim without arithmetic.
type InvoiceItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Total       string `json:"total"`
}

// Invoice represents an invoice record.
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customerId"`
	Number     string        `json:"number,omitempty"`
	Status     string        `json:"status,omitempty"`
	Items      []InvoiceItem `json:"items"`
	Subtotal   string        `json:"subtotal"`
	TaxRate    string        `json:"taxRate,omitempty"`
	TaxAmount  string        `json:"taxAmount,omitempty"`
	Total      string        `json:"total"`
	DueDate    string        `json:"dueDate,omitempty"`
	CreatedAt  *time.Time    `json:"createdAt,omitempty"`
}

// Meta carries pagination counters on list responses.
type Meta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}
