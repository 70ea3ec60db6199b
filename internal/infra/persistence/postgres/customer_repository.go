package postgres

import (
	"context"
	"strings"

	"dashbi/internal/domain/entity"
	domainerrors "dashbi/internal/domain/errors"
	"dashbi/internal/domain/repository"
	"dashbi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByCAID retrieves a customer by its upstream Conta Azul id.
func (repo *customerRepository) FindByCAID(ctx context.Context, caID string) (*entity.ContaAzulCustomer, error) {
	var customerM model.ContaAzulClienteModel

	if err := repo.db.WithContext(ctx).
		Where("ca_id = ?", caID).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by upstream id")
	}

	return toCustomerDomain(&customerM), nil
}

// Upsert reconciles one upstream customer keyed on ca_id. Creation-only
// columns (id_legado, uuid_legado, empresa_id, data_criacao_ca) are excluded
// from the conflict update so they keep their first-sync values.
func (repo *customerRepository) Upsert(ctx context.Context, customer *entity.ContaAzulCustomer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "ca_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"nome", "documento", "email", "telefone", "ativo",
				"tipo_pessoa", "perfis", "observacoes",
				"data_alteracao_ca", "updated_at",
			}),
		}).
		Create(customerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert customer")
	}

	customer.ID = customerM.ID

	return nil
}

// UpdateContractLink sets the contract-linkage columns on the customer
// matching caID.
func (repo *customerRepository) UpdateContractLink(ctx context.Context, caID string, link *entity.ContractLink) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContaAzulClienteModel{}).
		Where("ca_id = ?", caID).
		Updates(map[string]any{
			"contrato_id":         link.ContratoID,
			"contrato_status":     link.ContratoStatus,
			"contrato_numero":     link.ContratoNumero,
			"contrato_inicio":     link.ContratoInicio,
			"contrato_vencimento": link.ContratoVencimento,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update contract link")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM ContaAzulClienteModel to a domain entity.
func toCustomerDomain(data *model.ContaAzulClienteModel) *entity.ContaAzulCustomer {
	if data == nil {
		return nil
	}

	var perfis []string
	if data.Perfis != "" {
		perfis = strings.Split(data.Perfis, ",")
	}

	return &entity.ContaAzulCustomer{
		ID:                 data.ID,
		CAID:               data.CAID,
		IDLegado:           data.IDLegado,
		UUIDLegado:         data.UUIDLegado,
		Nome:               data.Nome,
		Documento:          data.Documento,
		Email:              data.Email,
		Telefone:           data.Telefone,
		Ativo:              data.Ativo,
		TipoPessoa:         data.TipoPessoa,
		Perfis:             perfis,
		Observacoes:        data.Observacoes,
		DataCriacaoCA:      data.DataCriacaoCA,
		DataAlteracaoCA:    data.DataAlteracaoCA,
		ContratoID:         data.ContratoID,
		ContratoStatus:     data.ContratoStatus,
		ContratoNumero:     data.ContratoNumero,
		ContratoInicio:     data.ContratoInicio,
		ContratoVencimento: data.ContratoVencimento,
		EmpresaID:          data.EmpresaID,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain entity to a GORM ContaAzulClienteModel.
func fromCustomerDomain(data *entity.ContaAzulCustomer) *model.ContaAzulClienteModel {
	if data == nil {
		return nil
	}

	return &model.ContaAzulClienteModel{
		ID:                 data.ID,
		CAID:               data.CAID,
		IDLegado:           data.IDLegado,
		UUIDLegado:         data.UUIDLegado,
		Nome:               data.Nome,
		Documento:          data.Documento,
		Email:              data.Email,
		Telefone:           data.Telefone,
		Ativo:              data.Ativo,
		TipoPessoa:         data.TipoPessoa,
		Perfis:             strings.Join(data.Perfis, ","),
		Observacoes:        data.Observacoes,
		DataCriacaoCA:      data.DataCriacaoCA,
		DataAlteracaoCA:    data.DataAlteracaoCA,
		ContratoID:         data.ContratoID,
		ContratoStatus:     data.ContratoStatus,
		ContratoNumero:     data.ContratoNumero,
		ContratoInicio:     data.ContratoInicio,
		ContratoVencimento: data.ContratoVencimento,
		EmpresaID:          data.EmpresaID,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
