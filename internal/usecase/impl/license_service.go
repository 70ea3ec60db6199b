package impl

import (
	"context"

	"dashbi/internal/domain/repository"
	"dashbi/internal/usecase"

	"github.com/pkg/errors"
)

const defaultLicensePageSize = 10

// licenseService implements the LicenseUsecase interface.
type licenseService struct {
	licenseRepo repository.LicenseRepository
}

// NewLicenseService is the constructor for licenseService.
func NewLicenseService(licenseRepo repository.LicenseRepository) usecase.LicenseUsecase {
	return &licenseService{
		licenseRepo: licenseRepo,
	}
}

// ListLicenses returns one page of matriz license rows with their branches nested.
func (srv *licenseService) ListLicenses(ctx context.Context, page, limit int) (*usecase.LicenseListOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLicensePageSize
	}

	total, err := srv.licenseRepo.CountMatrizes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count licenses")
	}

	matrizes, err := srv.licenseRepo.FindMatrizes(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list licenses")
	}

	lastPage := int((total + int64(limit) - 1) / int64(limit))
	if lastPage < 1 {
		lastPage = 1
	}

	return &usecase.LicenseListOutput{
		Data: matrizes,
		Meta: usecase.LicenseListMeta{
			Total:    total,
			Page:     page,
			LastPage: lastPage,
		},
	}, nil
}
