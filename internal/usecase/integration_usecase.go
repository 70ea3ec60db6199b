// Package usecase defines the application's use case interfaces and their
// input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"
	"time"

	"dashbi/internal/domain/service"
)

// IntegrationConfigInput carries the tenant-supplied OAuth2 client credentials.
type IntegrationConfigInput struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

// IntegrationConfigOutput is the integration state shown on the settings
// screen. The client secret never leaves the server.
type IntegrationConfigOutput struct {
	Configured bool       `json:"configurado"`
	Authorized bool       `json:"autorizado"`
	ClientID   string     `json:"client_id,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// IntegrationUsecase defines the Conta Azul integration use cases: credential
// management, the OAuth2 authorization flow, transparent token refresh and
// the raw API proxy.
type IntegrationUsecase interface {
	// GetConfig reads the integration state for an empresa. A tenant that
	// never saved credentials gets a zero-value output, not an error.
	GetConfig(ctx context.Context, empresaID int64) (*IntegrationConfigOutput, error)

	// SaveConfig creates or replaces the tenant's client credentials,
	// leaving any stored token pair untouched.
	SaveConfig(ctx context.Context, empresaID int64, input *IntegrationConfigInput) (*IntegrationConfigOutput, error)

	// BuildAuthorizationURL returns the vendor login URL that starts the
	// authorization-code flow for the empresa.
	BuildAuthorizationURL(ctx context.Context, empresaID int64) (string, error)

	// HandleCallback finishes the authorization-code flow: it resolves the
	// empresa from the OAuth state, exchanges the code and persists the
	// token triple. Returns the empresa id for the success redirect.
	HandleCallback(ctx context.Context, state, code string) (int64, error)

	// EnsureAccessToken returns an access token guaranteed to be valid for
	// at least the safety margin, refreshing (and rotating) transparently
	// when the stored one is stale.
	EnsureAccessToken(ctx context.Context, empresaID int64) (string, error)

	// Proxy forwards a GET to the vendor API on behalf of the empresa,
	// passing upstream status and payload through.
	Proxy(ctx context.Context, empresaID int64, endpoint string) (*service.ProxyResult, error)
}
