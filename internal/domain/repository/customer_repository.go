package repository

import (
	"context"

	"dashbi/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCustomerNotFound is returned when no local customer matches the upstream id.
var ErrCustomerNotFound = errors.New("conta azul customer not found")

// CustomerRepository defines the interface for synchronized Conta Azul customer persistence.
type CustomerRepository interface {
	// FindByCAID retrieves a customer by its upstream Conta Azul id.
	FindByCAID(ctx context.Context, caID string) (*entity.ContaAzulCustomer, error)

	// Upsert reconciles one upstream customer keyed on CAID. An existing row
	// has only its mutable descriptive fields updated; IDLegado, UUIDLegado,
	// EmpresaID and DataCriacaoCA are written once at creation.
	Upsert(ctx context.Context, customer *entity.ContaAzulCustomer) error

	// UpdateContractLink sets the contract-linkage fields on the customer
	// matching caID. Returns ErrCustomerNotFound when the customer was never
	// synchronized, so the contract pass can skip it.
	UpdateContractLink(ctx context.Context, caID string, link *entity.ContractLink) error
}
