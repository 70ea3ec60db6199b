package usecase

import "context"

// CustomerSyncResult reports one completed customer sync run.
type CustomerSyncResult struct {
	Total int `json:"total_processados"`
}

// ContractSyncResult reports one completed contract sync run. Atualizados
// counts the customers whose contract linkage was actually written; items
// skipped for missing customers or bad dates are excluded.
type ContractSyncResult struct {
	Total       int `json:"total_contratos"`
	Atualizados int `json:"clientes_atualizados"`
}

// SyncUsecase defines the paginated bulk synchronization runs against the
// Conta Azul API.
type SyncUsecase interface {
	// SyncCustomers walks the upstream customer collection page by page and
	// reconciles every record into local storage.
	SyncCustomers(ctx context.Context, empresaID int64) (*CustomerSyncResult, error)

	// SyncContracts walks the upstream contract collection and links each
	// contract to its previously synchronized customer. Individual items
	// that cannot be applied are skipped, not fatal.
	SyncContracts(ctx context.Context, empresaID int64) (*ContractSyncResult, error)
}
