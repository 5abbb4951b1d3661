package types

// ------------------------------
// Response Types
// ------------------------------

// TokenPair is the access/refresh token pair issued by the auth endpoints.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is the full body returned by the login endpoint.
type LoginResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// CustomerPage mirrors the customers list envelope.
type CustomerPage struct {
	Data []Customer `json:"data"`
	Meta Meta       `json:"meta"`
}

// InvoicePage mirrors the invoices list envelope.
type InvoicePage struct {
	Data []Invoice `json:"data"`
	Meta Meta      `json:"meta"`
}
