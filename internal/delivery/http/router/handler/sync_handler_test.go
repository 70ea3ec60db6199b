package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dashbi/config"
	mockUsecase "dashbi/internal/mocks/usecase"
	"dashbi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSyncHandler(t *testing.T) (*SyncHandler, *mockUsecase.MockSyncUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockSyncUsecase(t)
	cfg := &config.Config{
		ContaAzul: &config.ContaAzulConfig{
			SyncTimeout: time.Minute,
		},
	}

	return NewSyncHandler(uc, cfg, slog.New(slog.DiscardHandler)), uc
}

func TestSyncHandler_SyncCustomers(t *testing.T) {
	h, uc := newTestSyncHandler(t)

	uc.EXPECT().SyncCustomers(mock.Anything, int64(7)).
		Return(&usecase.CustomerSyncResult{Total: 35}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/integracoes/conta-azul/sync-clientes?empresaId=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SyncCustomers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_processados":35`)
}

func TestSyncHandler_SyncCustomers_DeadlineAttached(t *testing.T) {
	h, uc := newTestSyncHandler(t)

	uc.EXPECT().SyncCustomers(mock.Anything, int64(7)).
		RunAndReturn(func(ctx context.Context, empresaID int64) (*usecase.CustomerSyncResult, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)

			return &usecase.CustomerSyncResult{}, nil
		})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/integracoes/conta-azul/sync-clientes?empresaId=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SyncCustomers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSyncHandler_SyncContracts(t *testing.T) {
	h, uc := newTestSyncHandler(t)

	uc.EXPECT().SyncContracts(mock.Anything, int64(7)).
		Return(&usecase.ContractSyncResult{Total: 12, Atualizados: 10}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/integracoes/conta-azul/sync-contratos?empresaId=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SyncContracts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clientes_atualizados":10`)
}

func TestSyncHandler_InvalidEmpresa(t *testing.T) {
	h, _ := newTestSyncHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/integracoes/conta-azul/sync-clientes?empresaId=0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SyncCustomers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
