// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"dashbi/config"
	"dashbi/internal/delivery/http/response"
	"dashbi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IntegrationHandler holds dependencies for the Conta Azul integration
// handlers: credential settings, the OAuth2 flow and the raw API proxy.
type IntegrationHandler struct {
	uc     usecase.IntegrationUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewIntegrationHandler is the constructor for IntegrationHandler, injected by Fx.
func NewIntegrationHandler(uc usecase.IntegrationUsecase, cfg *config.Config, logger *slog.Logger) *IntegrationHandler {
	return &IntegrationHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// GetConfig returns the integration state for an empresa. The client secret
// is never included.
func (h *IntegrationHandler) GetConfig(c echo.Context) error {
	empresaID, err := parseEmpresaID(c.QueryParam("empresaId"))
	if err != nil {
		return response.BadRequest(c, "EMPRESA_INVALIDA", "Identificador de empresa inválido")
	}

	output, err := h.uc.GetConfig(c.Request().Context(), empresaID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// SaveConfig stores the tenant's OAuth2 client credentials.
func (h *IntegrationHandler) SaveConfig(c echo.Context) error {
	empresaID, err := parseEmpresaID(c.QueryParam("empresaId"))
	if err != nil {
		return response.BadRequest(c, "EMPRESA_INVALIDA", "Identificador de empresa inválido")
	}

	var input *usecase.IntegrationConfigInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Credenciais inválidas")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SaveConfig(c.Request().Context(), empresaID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Credenciais salvas com sucesso")
}

// Authorize redirects the browser to the vendor login page that starts the
// authorization-code flow.
func (h *IntegrationHandler) Authorize(c echo.Context) error {
	empresaID, err := parseEmpresaID(c.QueryParam("empresaId"))
	if err != nil {
		return response.BadRequest(c, "EMPRESA_INVALIDA", "Identificador de empresa inválido")
	}

	authURL, err := h.uc.BuildAuthorizationURL(c.Request().Context(), empresaID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, authURL)
}

// Callback finishes the authorization-code flow and sends the browser back
// to the settings screen.
func (h *IntegrationHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		return response.BadRequest(c, "CALLBACK_INVALIDO", "Parâmetros code e state são obrigatórios")
	}

	empresaID, err := h.uc.HandleCallback(c.Request().Context(), state, code)
	if err != nil {
		h.logger.Error("OAuth callback failed", "error", err.Error(), "state", state)

		return errors.WithStack(err)
	}

	h.logger.Info("Conta Azul authorization completed", "empresaID", empresaID)

	return c.Redirect(http.StatusFound, h.cfg.ContaAzul.AppBaseURL+"/apps/empresas/config?success=true")
}

// ProxyRequest is the body of the raw API proxy endpoint.
type ProxyRequest struct {
	Endpoint  string `json:"endpoint" validate:"required"`
	EmpresaID int64  `json:"empresaId" validate:"required"`
}

// Proxy forwards a GET request to the vendor API with a valid access token.
// The upstream status travels inside the body; the proxy itself replies 200.
func (h *IntegrationHandler) Proxy(c echo.Context) error {
	var req ProxyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requisição de proxy inválida")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Proxy(c.Request().Context(), req.EmpresaID, req.Endpoint)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, result)
}

func parseEmpresaID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid empresa id")
	}

	return id, nil
}
