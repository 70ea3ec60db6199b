package usecase

import (
	"context"

	"dashbi/internal/domain/entity"
)

// LicenseListMeta carries pagination metadata for the license listing.
type LicenseListMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	LastPage int   `json:"last_page"`
}

// LicenseListOutput is one page of matriz rows with their branches nested.
type LicenseListOutput struct {
	Data []*entity.PDVLicencaFilial `json:"data"`
	Meta LicenseListMeta            `json:"meta"`
}

// LicenseUsecase defines the point-of-sale license listing use case.
type LicenseUsecase interface {
	// ListLicenses returns one page of matriz license rows, newest
	// registration first, each with its grupo's branches nested.
	ListLicenses(ctx context.Context, page, limit int) (*LicenseListOutput, error)
}
