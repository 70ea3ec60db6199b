package handler

import (
	"context"
	"log/slog"
	"net/http"

	"dashbi/config"
	"dashbi/internal/delivery/http/response"
	"dashbi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SyncHandler holds dependencies for the bulk synchronization handlers.
type SyncHandler struct {
	uc     usecase.SyncUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler, injected by Fx.
func NewSyncHandler(uc usecase.SyncUsecase, cfg *config.Config, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// SyncCustomers runs a full customer synchronization for the empresa.
func (h *SyncHandler) SyncCustomers(c echo.Context) error {
	empresaID, err := parseEmpresaID(c.QueryParam("empresaId"))
	if err != nil {
		return response.BadRequest(c, "EMPRESA_INVALIDA", "Identificador de empresa inválido")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.cfg.ContaAzul.SyncTimeout)
	defer cancel()

	result, err := h.uc.SyncCustomers(ctx, empresaID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("customer sync finished", "empresaID", empresaID, "total", result.Total)

	return response.Success(c, http.StatusOK, result, "Sincronização de clientes concluída")
}

// SyncContracts runs a full contract synchronization for the empresa.
func (h *SyncHandler) SyncContracts(c echo.Context) error {
	empresaID, err := parseEmpresaID(c.QueryParam("empresaId"))
	if err != nil {
		return response.BadRequest(c, "EMPRESA_INVALIDA", "Identificador de empresa inválido")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.cfg.ContaAzul.SyncTimeout)
	defer cancel()

	result, err := h.uc.SyncContracts(ctx, empresaID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("contract sync finished",
		"empresaID", empresaID,
		"total", result.Total,
		"updated", result.Atualizados,
	)

	return response.Success(c, http.StatusOK, result, "Sincronização de contratos concluída")
}
