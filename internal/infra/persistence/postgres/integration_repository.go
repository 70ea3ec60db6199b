// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"dashbi/internal/domain/entity"
	domainerrors "dashbi/internal/domain/errors"
	"dashbi/internal/domain/repository"
	"dashbi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// integrationRepository implements the repository.IntegrationRepository interface.
type integrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository is the constructor for integrationRepository.
func NewIntegrationRepository(db *gorm.DB) repository.IntegrationRepository {
	return &integrationRepository{
		db: db,
	}
}

// FindByEmpresa retrieves the integration record for an empresa.
func (repo *integrationRepository) FindByEmpresa(ctx context.Context, empresaID int64) (*entity.ContaAzulIntegration, error) {
	var integrationM model.IntegracaoContaAzulModel

	if err := repo.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		First(&integrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIntegrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find integration by empresa")
	}

	return toIntegrationDomain(&integrationM), nil
}

// SaveCredentials creates or updates the tenant-supplied client credentials.
// Stored tokens are left untouched; a credential change does not invalidate
// an already authorized token pair.
func (repo *integrationRepository) SaveCredentials(ctx context.Context, empresaID int64, clientID, clientSecret string) (*entity.ContaAzulIntegration, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.EmpresaModel{}).
		Where("id = ?", empresaID).
		Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "failed to check empresa")
	}
	if count == 0 {
		return nil, domainerrors.ErrEmpresaNaoEncontrada
	}

	integrationM := &model.IntegracaoContaAzulModel{
		EmpresaID:    empresaID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "empresa_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"client_id", "client_secret", "updated_at"}),
		}).
		Create(integrationM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save integration credentials")
	}

	// Re-read so the returned entity carries the stored token state too.
	return repo.FindByEmpresa(ctx, empresaID)
}

// UpdateTokens overwrites the token triple and stamps updated_at in a single
// atomic write. The rotated refresh token must always be the one persisted.
func (repo *integrationRepository) UpdateTokens(ctx context.Context, empresaID int64, accessToken, refreshToken string, expiresIn int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IntegracaoContaAzulModel{}).
		Where("empresa_id = ?", empresaID).
		Updates(map[string]any{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"expires_in":    expiresIn,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update integration tokens")
	}

	if result.RowsAffected == 0 {
		return repository.ErrIntegrationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toIntegrationDomain converts a GORM IntegracaoContaAzulModel to a domain entity.
func toIntegrationDomain(data *model.IntegracaoContaAzulModel) *entity.ContaAzulIntegration {
	if data == nil {
		return nil
	}

	return &entity.ContaAzulIntegration{
		ID:           data.ID,
		EmpresaID:    data.EmpresaID,
		ClientID:     data.ClientID,
		ClientSecret: data.ClientSecret,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresIn:    data.ExpiresIn,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
