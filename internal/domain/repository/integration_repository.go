// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"dashbi/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrIntegrationNotFound is returned when an empresa has no Conta Azul integration record.
var ErrIntegrationNotFound = errors.New("conta azul integration not found")

// IntegrationRepository defines the interface for Conta Azul integration persistence.
// One record exists per empresa; it is created when the tenant first saves
// credentials and mutated by the authorization callback and the token refresh.
type IntegrationRepository interface {
	// FindByEmpresa retrieves the integration record for an empresa.
	FindByEmpresa(ctx context.Context, empresaID int64) (*entity.ContaAzulIntegration, error)

	// SaveCredentials creates or updates the tenant-supplied OAuth2 client
	// credentials, leaving any stored token pair untouched.
	SaveCredentials(ctx context.Context, empresaID int64, clientID, clientSecret string) (*entity.ContaAzulIntegration, error)

	// UpdateTokens overwrites the token triple and stamps UpdatedAt in a
	// single atomic write. Called by the authorization callback and by the
	// refresh exchange; the rotated refresh token must always be the one
	// persisted.
	UpdateTokens(ctx context.Context, empresaID int64, accessToken, refreshToken string, expiresIn int) error
}
