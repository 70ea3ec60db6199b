package entity

import "time"

// ContaAzulIntegration holds one empresa's connection to the Conta Azul API:
// the tenant-supplied OAuth2 client credentials plus the current token pair.
// AccessToken and RefreshToken stay nil until the authorization-code flow
// completes for the first time.
type ContaAzulIntegration struct {
	ID           int64   `json:"id"`
	EmpresaID    int64   `json:"empresa_id"`
	ClientID     string  `json:"client_id"`
	ClientSecret string  `json:"-"`
	AccessToken  *string `json:"-"`
	RefreshToken *string `json:"-"`

	// ExpiresIn is the vendor-declared token lifetime in seconds (typically 3600).
	ExpiresIn int `json:"expires_in"`

	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt marks the last successful token write and is the basis
	// for expiry computation.
	UpdatedAt time.Time `json:"updated_at"`
}

// Authorized reports whether the initial authorization-code exchange has
// already produced a token pair for this integration.
func (i *ContaAzulIntegration) Authorized() bool {
	return i.AccessToken != nil && *i.AccessToken != "" &&
		i.RefreshToken != nil && *i.RefreshToken != ""
}
