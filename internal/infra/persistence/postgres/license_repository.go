package postgres

import (
	"context"

	"dashbi/internal/domain/entity"
	"dashbi/internal/domain/repository"
	"dashbi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// licenseRepository implements the repository.LicenseRepository interface.
type licenseRepository struct {
	db *gorm.DB
}

// NewLicenseRepository is the constructor for licenseRepository.
func NewLicenseRepository(db *gorm.DB) repository.LicenseRepository {
	return &licenseRepository{
		db: db,
	}
}

// FindMatrizes retrieves a page of matriz rows, newest registration first,
// each with its grupo and the grupo's non-matriz filiais preloaded.
func (repo *licenseRepository) FindMatrizes(ctx context.Context, offset, limit int) ([]*entity.PDVLicencaFilial, error) {
	var filialModels []*model.PDVLicencaFilialModel

	if err := repo.db.WithContext(ctx).
		Preload("Grupo.Filiais", func(db *gorm.DB) *gorm.DB {
			return db.Where("matriz = ?", false).Order("cod_filial ASC")
		}).
		Preload("Grupo").
		Where("matriz = ?", true).
		Order("data_cadastro_api DESC").
		Offset(offset).
		Limit(limit).
		Find(&filialModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matriz licenses")
	}

	matrizes := make([]*entity.PDVLicencaFilial, 0, len(filialModels))
	for _, filialM := range filialModels {
		matrizes = append(matrizes, toLicenseDomain(filialM))
	}

	return matrizes, nil
}

// CountMatrizes returns how many matriz rows exist.
func (repo *licenseRepository) CountMatrizes(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PDVLicencaFilialModel{}).
		Where("matriz = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count matriz licenses")
	}

	return count, nil
}

// --- Mapper Functions ---

// toLicenseDomain converts a GORM PDVLicencaFilialModel to a domain entity,
// carrying the preloaded grupo and its filiais along.
func toLicenseDomain(data *model.PDVLicencaFilialModel) *entity.PDVLicencaFilial {
	if data == nil {
		return nil
	}

	filial := &entity.PDVLicencaFilial{
		ID:              data.ID,
		GrupoID:         data.GrupoID,
		CodFilial:       data.CodFilial,
		CodGrupo:        data.CodGrupo,
		Nome:            data.Nome,
		Documento:       data.Documento,
		Ativo:           data.Ativo,
		Matriz:          data.Matriz,
		Produto:         data.Produto,
		DataCadastroAPI: data.DataCadastroAPI,
	}

	if data.Grupo != nil {
		grupo := &entity.PDVLicencaGrupo{
			ID:       data.Grupo.ID,
			CodGrupo: data.Grupo.CodGrupo,
		}
		for _, branchM := range data.Grupo.Filiais {
			if branchM.ID == data.ID {
				continue
			}
			grupo.Filiais = append(grupo.Filiais, toLicenseDomain(branchM))
		}
		filial.Grupo = grupo
	}

	return filial
}
