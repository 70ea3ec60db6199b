package repository

import (
	"context"

	"dashbi/internal/domain/entity"
)

// LicenseRepository defines the interface for PDV license persistence.
type LicenseRepository interface {
	// FindMatrizes retrieves a page of matriz license rows ordered by
	// registration date descending, each with its grupo and the grupo's
	// non-matriz filiais (ordered by cod_filial) preloaded.
	FindMatrizes(ctx context.Context, offset, limit int) ([]*entity.PDVLicencaFilial, error)

	// CountMatrizes returns how many matriz rows exist, for pagination meta.
	CountMatrizes(ctx context.Context) (int64, error)
}
