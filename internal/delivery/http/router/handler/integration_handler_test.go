package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dashbi/config"
	"dashbi/internal/delivery/http/validator"
	"dashbi/internal/domain/service"
	mockUsecase "dashbi/internal/mocks/usecase"
	"dashbi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestIntegrationHandler(t *testing.T) (*IntegrationHandler, *mockUsecase.MockIntegrationUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockIntegrationUsecase(t)
	cfg := &config.Config{
		ContaAzul: &config.ContaAzulConfig{
			AppBaseURL: "https://app.example.com.br",
		},
	}

	return NewIntegrationHandler(uc, cfg, slog.New(slog.DiscardHandler)), uc
}

func TestIntegrationHandler_GetConfig(t *testing.T) {
	h, uc := newTestIntegrationHandler(t)

	uc.EXPECT().GetConfig(mock.Anything, int64(42)).
		Return(&usecase.IntegrationConfigOutput{Configured: true, Authorized: true, ClientID: "abc"}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/integracoes/conta-azul/config?empresaId=42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetConfig(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"configurado":true`)
}

func TestIntegrationHandler_GetConfig_InvalidEmpresa(t *testing.T) {
	h, _ := newTestIntegrationHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/integracoes/conta-azul/config?empresaId=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetConfig(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMPRESA_INVALIDA")
}

func TestIntegrationHandler_Authorize_Redirects(t *testing.T) {
	h, uc := newTestIntegrationHandler(t)

	authURL := "https://auth.contaazul.com/login?client_id=partner&state=42"
	uc.EXPECT().BuildAuthorizationURL(mock.Anything, int64(42)).Return(authURL, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/integracoes/conta-azul/auth?empresaId=42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Authorize(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, authURL, rec.Header().Get(echo.HeaderLocation))
}

func TestIntegrationHandler_Callback_RedirectsToSettings(t *testing.T) {
	h, uc := newTestIntegrationHandler(t)

	uc.EXPECT().HandleCallback(mock.Anything, "42", "auth-code").Return(int64(42), nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/integracoes/conta-azul/callback?code=auth-code&state=42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://app.example.com.br/apps/empresas/config?success=true", rec.Header().Get(echo.HeaderLocation))
}

func TestIntegrationHandler_Callback_MissingParams(t *testing.T) {
	h, _ := newTestIntegrationHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/integracoes/conta-azul/callback?code=auth-code", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "CALLBACK_INVALIDO")
}

func TestIntegrationHandler_Proxy_PassesUpstreamStatusInBody(t *testing.T) {
	h, uc := newTestIntegrationHandler(t)

	uc.EXPECT().Proxy(mock.Anything, int64(42), "/v1/servicos").
		Return(&service.ProxyResult{StatusCode: http.StatusTeapot, Body: "sem chá"}, nil)

	e := newTestEcho()
	body := `{"endpoint":"/v1/servicos","empresaId":42}`
	req := httptest.NewRequest(http.MethodPost, "/integracoes/conta-azul/proxy", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Proxy(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result service.ProxyResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, http.StatusTeapot, result.StatusCode)
	assert.Equal(t, "sem chá", result.Body)
}
