package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dashbi/internal/delivery/http/middleware"
	mockUsecase "dashbi/internal/mocks/usecase"
	"dashbi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTwoFactorHandler(t *testing.T) (*TwoFactorHandler, *mockUsecase.MockTwoFactorUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockTwoFactorUsecase(t)

	return NewTwoFactorHandler(uc, slog.New(slog.DiscardHandler)), uc
}

func newAuthenticatedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID uuid.UUID) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	return c
}

func TestTwoFactorHandler_Setup(t *testing.T) {
	h, uc := newTestTwoFactorHandler(t)
	userID := uuid.New()

	uc.EXPECT().Setup(mock.Anything, userID).Return(&usecase.TwoFactorSetupOutput{
		Secret:     "JBSWY3DPEHPK3PXP",
		OTPAuthURL: "otpauth://totp/dashbi:ana?secret=JBSWY3DPEHPK3PXP",
		QRCodePNG:  []byte{0x89, 0x50, 0x4e, 0x47},
	}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/2fa/setup", nil)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, userID)

	require.NoError(t, h.Setup(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data:image/png;base64,iVBORw==")
	assert.Contains(t, rec.Body.String(), "JBSWY3DPEHPK3PXP")
}

func TestTwoFactorHandler_Setup_NoSession(t *testing.T) {
	h, _ := newTestTwoFactorHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/2fa/setup", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Setup(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTwoFactorHandler_Verify_ReturnsBackupCodes(t *testing.T) {
	h, uc := newTestTwoFactorHandler(t)
	userID := uuid.New()

	uc.EXPECT().Verify(mock.Anything, userID, "123456").Return(&usecase.TwoFactorVerifyOutput{
		BackupCodes: []string{"A1B2C3D4", "E5F6A7B8"},
	}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/2fa/verify", strings.NewReader(`{"code":"123456"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, userID)

	require.NoError(t, h.Verify(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A1B2C3D4")
}

func TestTwoFactorHandler_LoginCheck_ReturnsFullTokenPair(t *testing.T) {
	h, uc := newTestTwoFactorHandler(t)
	userID := uuid.New()

	uc.EXPECT().LoginCheck(mock.Anything, userID, "654321").Return("full-access", "full-refresh", nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/2fa/login-check", strings.NewReader(`{"code":"654321"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, userID)

	require.NoError(t, h.LoginCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"full-access"`)
	assert.Contains(t, rec.Body.String(), `"refresh_token":"full-refresh"`)
}

func TestTwoFactorHandler_Disable(t *testing.T) {
	h, uc := newTestTwoFactorHandler(t)
	userID := uuid.New()

	uc.EXPECT().Disable(mock.Anything, userID, "A1B2C3D4").Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/2fa/disable", strings.NewReader(`{"code":"A1B2C3D4"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, userID)

	require.NoError(t, h.Disable(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
