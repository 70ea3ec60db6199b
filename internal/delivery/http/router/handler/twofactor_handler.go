package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"dashbi/internal/delivery/http/middleware"
	"dashbi/internal/delivery/http/response"
	"dashbi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TwoFactorHandler holds dependencies for the two-factor authentication
// handlers.
type TwoFactorHandler struct {
	uc     usecase.TwoFactorUsecase
	logger *slog.Logger
}

// NewTwoFactorHandler is the constructor for TwoFactorHandler, injected by Fx.
func NewTwoFactorHandler(uc usecase.TwoFactorUsecase, logger *slog.Logger) *TwoFactorHandler {
	return &TwoFactorHandler{
		uc:     uc,
		logger: logger,
	}
}

// TwoFactorCodeRequest carries a six-digit TOTP code or a backup code.
type TwoFactorCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// Setup generates a new TOTP secret and returns the provisioning material,
// including the QR code as a base64-encoded PNG.
func (h *TwoFactorHandler) Setup(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "NAO_AUTORIZADO", "Sessão inválida")
	}

	output, err := h.uc.Setup(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"secret":      output.Secret,
		"otpauth_url": output.OTPAuthURL,
		"qr_code":     "data:image/png;base64," + base64.StdEncoding.EncodeToString(output.QRCodePNG),
	}, "")
}

// Verify activates two-factor after checking the first authenticator code and
// hands the single-use backup codes to the user.
func (h *TwoFactorHandler) Verify(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "NAO_AUTORIZADO", "Sessão inválida")
	}

	var req TwoFactorCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Código inválido")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Verify(c.Request().Context(), userID, req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("two-factor enabled", "userID", userID)

	return response.Success(c, http.StatusOK, output, "Verificação em duas etapas ativada")
}

// Disable turns two-factor off after validating a current or backup code.
func (h *TwoFactorHandler) Disable(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "NAO_AUTORIZADO", "Sessão inválida")
	}

	var req TwoFactorCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Código inválido")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Disable(c.Request().Context(), userID, req.Code); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("two-factor disabled", "userID", userID)

	return response.Success(c, http.StatusOK, nil, "Verificação em duas etapas desativada")
}

// LoginCheck validates the second factor of a pending login and returns a
// full token pair.
func (h *TwoFactorHandler) LoginCheck(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "NAO_AUTORIZADO", "Sessão inválida")
	}

	var req TwoFactorCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Código inválido")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	accessToken, refreshToken, err := h.uc.LoginCheck(c.Request().Context(), userID, req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}, "Login realizado com sucesso")
}

func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}
