package impl

import (
	"context"
	"log/slog"
	"time"

	"dashbi/config"
	deliverycontext "dashbi/internal/delivery/context"
	"dashbi/internal/domain/entity"
	domainerrors "dashbi/internal/domain/errors"
	"dashbi/internal/domain/repository"
	"dashbi/internal/domain/service"
	"dashbi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Fixed date window for the contract listing; the API requires one and the
// dashboard wants every contract, so the bounds are deliberately wide.
const (
	contractWindowStart = "2015-01-01"
	contractWindowEnd   = "2030-12-31"
)

// syncService implements the SyncUsecase interface.
type syncService struct {
	integrationUC usecase.IntegrationUsecase
	customerRepo  repository.CustomerRepository
	contaAzul     service.ContaAzulService
	pageSize      int
	logger        *slog.Logger
}

// SyncServiceParams holds dependencies for syncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	IntegrationUC usecase.IntegrationUsecase
	CustomerRepo  repository.CustomerRepository
	ContaAzul     service.ContaAzulService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return &syncService{
		integrationUC: params.IntegrationUC,
		customerRepo:  params.CustomerRepo,
		contaAzul:     params.ContaAzul,
		pageSize:      params.Config.ContaAzul.SyncPageSize,
		logger:        params.Logger,
	}
}

func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncCustomers walks the upstream customer collection page by page and
// reconciles every record into local storage. Any page fetch or upsert
// failure aborts the run; pages already reconciled remain.
func (srv *syncService) SyncCustomers(ctx context.Context, empresaID int64) (*usecase.CustomerSyncResult, error) {
	if empresaID <= 0 {
		return nil, domainerrors.ErrEmpresaInvalida
	}

	accessToken, err := srv.integrationUC.EnsureAccessToken(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	total := 0
	for page := 1; ; page++ {
		pessoas, err := srv.contaAzul.ListPessoas(ctx, accessToken, page, srv.pageSize)
		if err != nil {
			return nil, err
		}
		if len(pessoas) == 0 {
			break
		}

		group, groupCtx := errgroup.WithContext(ctx)
		for _, pessoa := range pessoas {
			group.Go(func() error {
				return srv.upsertPessoa(groupCtx, empresaID, &pessoa)
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}

		total += len(pessoas)
		srv.log(ctx).Info("Página de clientes sincronizada",
			slog.Int64("empresaID", empresaID),
			slog.Int("pagina", page),
			slog.Int("registros", len(pessoas)))

		// A short page is the last one.
		if len(pessoas) < srv.pageSize {
			break
		}
	}

	return &usecase.CustomerSyncResult{Total: total}, nil
}

// SyncContracts walks the upstream contract collection and links each
// contract to its previously synchronized customer. Items without a linked
// customer, or whose customer was never synchronized, are skipped.
func (srv *syncService) SyncContracts(ctx context.Context, empresaID int64) (*usecase.ContractSyncResult, error) {
	if empresaID <= 0 {
		return nil, domainerrors.ErrEmpresaInvalida
	}

	accessToken, err := srv.integrationUC.EnsureAccessToken(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	periodo := service.ContratoPeriodo{
		DataInicio: contractWindowStart,
		DataFim:    contractWindowEnd,
	}

	total := 0
	updated := 0
	for page := 1; ; page++ {
		contratos, err := srv.contaAzul.ListContratos(ctx, accessToken, page, srv.pageSize, periodo)
		if err != nil {
			return nil, err
		}
		if len(contratos) == 0 {
			break
		}

		total += len(contratos)
		for _, contrato := range contratos {
			if srv.applyContract(ctx, &contrato) {
				updated++
			}
		}

		srv.log(ctx).Info("Página de contratos sincronizada",
			slog.Int64("empresaID", empresaID),
			slog.Int("pagina", page),
			slog.Int("registros", len(contratos)))

		if len(contratos) < srv.pageSize {
			break
		}
	}

	return &usecase.ContractSyncResult{Total: total, Atualizados: updated}, nil
}

// upsertPessoa maps one upstream customer record and reconciles it locally.
func (srv *syncService) upsertPessoa(ctx context.Context, empresaID int64, pessoa *service.Pessoa) error {
	customer := &entity.ContaAzulCustomer{
		CAID:            pessoa.ID,
		IDLegado:        pessoa.IDLegado,
		UUIDLegado:      pessoa.UUIDLegado,
		Nome:            pessoa.Nome,
		Documento:       pessoa.Documento,
		Email:           pessoa.Email,
		Telefone:        pessoa.Telefone,
		Ativo:           pessoa.Ativo,
		TipoPessoa:      pessoa.TipoPessoa,
		Perfis:          pessoa.Perfis,
		Observacoes:     pessoa.ObservacoesGerais,
		DataCriacaoCA:   parseTimestamp(pessoa.DataCriacao),
		DataAlteracaoCA: parseTimestamp(pessoa.DataAlteracao),
		EmpresaID:       empresaID,
	}

	if err := srv.customerRepo.Upsert(ctx, customer); err != nil {
		return errors.Wrapf(err, "failed to upsert customer %s", pessoa.ID)
	}

	return nil
}

// applyContract links one contract to its customer, reporting whether a
// linkage was written. Per-item failures only log; the run continues.
func (srv *syncService) applyContract(ctx context.Context, contrato *service.Contrato) bool {
	if contrato.Cliente == nil {
		return false
	}

	link := &entity.ContractLink{
		ContratoID:         contrato.ID,
		ContratoStatus:     contrato.Status,
		ContratoNumero:     contrato.Numero,
		ContratoInicio:     parseContractDate(contrato.DataInicio),
		ContratoVencimento: parseContractDate(contrato.ProximoVencimento),
	}

	if err := srv.customerRepo.UpdateContractLink(ctx, contrato.Cliente.ID, link); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			srv.log(ctx).Debug("Contrato ignorado, cliente não sincronizado",
				slog.String("contratoID", contrato.ID),
				slog.String("clienteID", contrato.Cliente.ID))

			return false
		}

		srv.log(ctx).Warn("Falha ao vincular contrato",
			slog.String("contratoID", contrato.ID),
			slog.String("clienteID", contrato.Cliente.ID),
			slog.Any("error", err))

		return false
	}

	return true
}

// parseTimestamp decodes an upstream timestamp, which may be RFC 3339 or a
// bare date. Absent or unparseable values map to nil.
func parseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return &parsed
	}

	return nil
}

// parseContractDate decodes a bare contract date, anchoring it at noon local
// time so timezone conversion can never shift it to the previous day.
func parseContractDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", value+"T12:00:00", time.Local)
	if err != nil {
		return nil
	}

	return &parsed
}
