package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dashbi/internal/domain/entity"
	domainerrors "dashbi/internal/domain/errors"
	"dashbi/internal/domain/repository"
	"dashbi/internal/domain/service"
	mockRepo "dashbi/internal/mocks/repository"
	mockSvc "dashbi/internal/mocks/service"
	mockUC "dashbi/internal/mocks/usecase"
	"dashbi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// syncServiceFixtures holds all test dependencies for sync service tests.
type syncServiceFixtures struct {
	service       usecase.SyncUsecase
	integrationUC *mockUC.MockIntegrationUsecase
	customerRepo  *mockRepo.MockCustomerRepository
	contaAzul     *mockSvc.MockContaAzulService
}

func createTestSyncService(t *testing.T) syncServiceFixtures {
	integrationUC := mockUC.NewMockIntegrationUsecase(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	contaAzul := mockSvc.NewMockContaAzulService(t)

	service := NewSyncService(SyncServiceParams{
		IntegrationUC: integrationUC,
		CustomerRepo:  customerRepo,
		ContaAzul:     contaAzul,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return syncServiceFixtures{
		service:       service,
		integrationUC: integrationUC,
		customerRepo:  customerRepo,
		contaAzul:     contaAzul,
	}
}

func makePessoas(n int) []service.Pessoa {
	pessoas := make([]service.Pessoa, 0, n)
	for i := range n {
		pessoas = append(pessoas, service.Pessoa{
			ID:          fmt.Sprintf("pessoa-%03d", i),
			Nome:        fmt.Sprintf("Cliente %03d", i),
			Documento:   "11222333000144",
			Ativo:       true,
			TipoPessoa:  "JURIDICA",
			Perfis:      []string{"CLIENTE"},
			DataCriacao: "2024-01-15T10:30:00Z",
		})
	}

	return pessoas
}

func TestSyncService_SyncCustomers_TwoPages(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()

	fx.integrationUC.EXPECT().
		EnsureAccessToken(ctx, int64(42)).
		Return("valid-token", nil)

	// 25 records: a full page of 20 and a short page of 5. The short page
	// ends the walk; page 3 is never requested.
	fx.contaAzul.EXPECT().
		ListPessoas(ctx, "valid-token", 1, 20).
		Return(makePessoas(20), nil)
	fx.contaAzul.EXPECT().
		ListPessoas(ctx, "valid-token", 2, 20).
		Return(makePessoas(5), nil)

	fx.customerRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.ContaAzulCustomer")).
		Return(nil).
		Times(25)

	result, err := fx.service.SyncCustomers(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 25, result.Total)
}

func TestSyncService_SyncCustomers_ExactPageBoundary(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()

	fx.integrationUC.EXPECT().
		EnsureAccessToken(ctx, int64(42)).
		Return("valid-token", nil)

	// Exactly one full page: the walk only stops after seeing the empty
	// follow-up page.
	fx.contaAzul.EXPECT().
		ListPessoas(ctx, "valid-token", 1, 20).
		Return(makePessoas(20), nil)
	fx.contaAzul.EXPECT().
		ListPessoas(ctx, "valid-token", 2, 20).
		Return([]service.Pessoa{}, nil)

	fx.customerRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.ContaAzulCustomer")).
		Return(nil).
		Times(20)

	result, err := fx.service.SyncCustomers(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 20, result.Total)
}

func TestSyncService_SyncCustomers_MapsUpstreamFields(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	idLegado := "777"

	fx.integrationUC.EXPECT().
		EnsureAccessToken(ctx, int64(42)).
		Return("valid-token", nil)

	fx.contaAzul.EXPECT().
		ListPessoas(ctx, "valid-token", 1, 20).
		Return([]service.Pessoa{{
			ID:                "pessoa-1",
			IDLegado:          &idLegado,
			Nome:              "Empresa Exemplo",
			Documento:         "11222333000144",
			Email:             "contato@exemplo.com.br",
			Ativo:             true,
			TipoPessoa:        "JURIDICA",
			Perfis:            []string{"CLIENTE", "FORNECEDOR"},
			ObservacoesGerais: "obs",
			DataCriacao:       "2024-01-15T10:30:00Z",
			DataAlteracao:     "ruim",
		}}, nil)

	var captured *entity.ContaAzulCustomer
	fx.customerRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.ContaAzulCustomer")).
		Run(func(_ context.Context, customer *entity.ContaAzulCustomer) {
			captured = customer
		}).
		Return(nil)

	result, err := fx.service.SyncCustomers(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)

	require.NotNil(t, captured)
	assert.Equal(t, "pessoa-1", captured.CAID)
	assert.Equal(t, &idLegado, captured.IDLegado)
	assert.Equal(t, int64(42), captured.EmpresaID)
	assert.Equal(t, []string{"CLIENTE", "FORNECEDOR"}, captured.Perfis)
	require.NotNil(t, captured.DataCriacaoCA)
	assert.Equal(t, 2024, captured.DataCriacaoCA.Year())
	// Unparseable upstream timestamp maps to nil, not an error.
	assert.Nil(t, captured.DataAlteracaoCA)
}

func TestSyncService_SyncCustomers_UpsertFailureAbortsRun(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()

	fx.integrationUC.EXPECT().
		EnsureAccessToken(ctx, int64(42)).
		Return("valid-token", nil)

	fx.contaAzul.EXPECT().
		ListPessoas(ctx, "valid-token", 1, 20).
		Return(makePessoas(20), nil)

	dbErr := domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to upsert customer")
	fx.customerRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.ContaAzulCustomer")).
		Return(dbErr)

	// Page 2 must never be fetched.
	result, err := fx.service.SyncCustomers(ctx, 42)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestSyncService_SyncCustomers_PageFailureKeepsEarlierPages(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()

	fx.integrationUC.EXPECT().
		EnsureAccessToken(ctx, int64(42)).
		Return("valid-token", nil)

	fx.contaAzul.EXPECT().
		ListPessoas(ctx, "valid-token", 1, 20).
		Return(makePessoas(20), nil)
	fx.contaAzul.EXPECT().
		ListPessoas(ctx, "valid-token", 2, 20).
		Return(nil, domainerrors.NewContaAzulAPIError(500, "erro interno"))

	// Page 1 was fully reconciled before the failure; those writes stand.
	fx.customerRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.ContaAzulCustomer")).
		Return(nil).
		Times(20)

	result, err := fx.service.SyncCustomers(ctx, 42)
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONTA_AZUL_API", appErr.ErrorCode())
}

func TestSyncService_SyncCustomers_InvalidEmpresa(t *testing.T) {
	fx := createTestSyncService(t)

	result, err := fx.service.SyncCustomers(context.Background(), -1)
	assert.ErrorIs(t, err, domainerrors.ErrEmpresaInvalida)
	assert.Nil(t, result)
}

func TestSyncService_SyncContracts_MixedPage(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	periodo := service.ContratoPeriodo{DataInicio: "2015-01-01", DataFim: "2030-12-31"}

	fx.integrationUC.EXPECT().
		EnsureAccessToken(ctx, int64(42)).
		Return("valid-token", nil)

	contratos := []service.Contrato{
		{
			ID:                "contrato-1",
			Numero:            "001",
			Status:            "ATIVO",
			DataInicio:        "2024-03-10",
			ProximoVencimento: "2026-03-10",
			Cliente:           &service.ContratoCliente{ID: "pessoa-1", Nome: "Cliente Um"},
		},
		{
			// No linked customer; nothing to update.
			ID:     "contrato-2",
			Numero: "002",
			Status: "ATIVO",
		},
		{
			// Customer never synchronized; skipped, not fatal.
			ID:      "contrato-3",
			Numero:  "003",
			Status:  "ATIVO",
			Cliente: &service.ContratoCliente{ID: "pessoa-desconhecida"},
		},
		{
			// Write failure on a single item; skipped, not fatal.
			ID:      "contrato-4",
			Numero:  "004",
			Status:  "CANCELADO",
			Cliente: &service.ContratoCliente{ID: "pessoa-2"},
		},
	}

	fx.contaAzul.EXPECT().
		ListContratos(ctx, "valid-token", 1, 20, periodo).
		Return(contratos, nil)

	var capturedLink *entity.ContractLink
	fx.customerRepo.EXPECT().
		UpdateContractLink(ctx, "pessoa-1", mock.AnythingOfType("*entity.ContractLink")).
		Run(func(_ context.Context, _ string, link *entity.ContractLink) {
			capturedLink = link
		}).
		Return(nil)
	fx.customerRepo.EXPECT().
		UpdateContractLink(ctx, "pessoa-desconhecida", mock.AnythingOfType("*entity.ContractLink")).
		Return(repository.ErrCustomerNotFound)
	fx.customerRepo.EXPECT().
		UpdateContractLink(ctx, "pessoa-2", mock.AnythingOfType("*entity.ContractLink")).
		Return(assert.AnError)

	result, err := fx.service.SyncContracts(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 1, result.Atualizados)

	require.NotNil(t, capturedLink)
	assert.Equal(t, "contrato-1", capturedLink.ContratoID)
	assert.Equal(t, "ATIVO", capturedLink.ContratoStatus)
	assert.Equal(t, "001", capturedLink.ContratoNumero)

	// Dates anchor at noon local time so timezone conversion cannot shift
	// them to the previous day.
	require.NotNil(t, capturedLink.ContratoInicio)
	assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local), *capturedLink.ContratoInicio)
	require.NotNil(t, capturedLink.ContratoVencimento)
	assert.Equal(t, 12, capturedLink.ContratoVencimento.Hour())
}

func TestSyncService_SyncContracts_Pagination(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	periodo := service.ContratoPeriodo{DataInicio: "2015-01-01", DataFim: "2030-12-31"}

	fullPage := make([]service.Contrato, 0, 20)
	for i := range 20 {
		fullPage = append(fullPage, service.Contrato{
			ID:      fmt.Sprintf("contrato-%02d", i),
			Status:  "ATIVO",
			Cliente: &service.ContratoCliente{ID: fmt.Sprintf("pessoa-%02d", i)},
		})
	}

	fx.integrationUC.EXPECT().
		EnsureAccessToken(ctx, int64(42)).
		Return("valid-token", nil)

	fx.contaAzul.EXPECT().
		ListContratos(ctx, "valid-token", 1, 20, periodo).
		Return(fullPage, nil)
	fx.contaAzul.EXPECT().
		ListContratos(ctx, "valid-token", 2, 20, periodo).
		Return([]service.Contrato{fullPage[0]}, nil)

	fx.customerRepo.EXPECT().
		UpdateContractLink(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("*entity.ContractLink")).
		Return(nil).
		Times(21)

	result, err := fx.service.SyncContracts(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 21, result.Total)
	assert.Equal(t, 21, result.Atualizados)
}

func TestSyncService_SyncContracts_TokenFailurePropagates(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()

	fx.integrationUC.EXPECT().
		EnsureAccessToken(ctx, int64(42)).
		Return("", domainerrors.ErrIntegracaoNaoConfigurada)

	result, err := fx.service.SyncContracts(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrIntegracaoNaoConfigurada)
	assert.Nil(t, result)
}
