package contaazul

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"dashbi/config"
	domainerrors "dashbi/internal/domain/errors"
	"dashbi/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(authURL, apiURL string) *Client {
	cfg := &config.Config{
		ContaAzul: &config.ContaAzulConfig{
			AuthBaseURL: authURL,
			APIBaseURL:  apiURL,
			ClientID:    "  partner-client-id  ",
			AppBaseURL:  "https://painel.example.com.br",
		},
	}

	return NewClient(cfg).(*Client)
}

func TestClient_BuildAuthorizationURL(t *testing.T) {
	t.Parallel()

	client := newTestClient("https://auth.contaazul.com", "https://api-v2.contaazul.com")

	raw := client.BuildAuthorizationURL(42)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "auth.contaazul.com", parsed.Host)
	assert.Equal(t, "/login", parsed.Path)
	assert.Equal(t, "code", parsed.Query().Get("response_type"))
	assert.Equal(t, "partner-client-id", parsed.Query().Get("client_id"))
	assert.Equal(t, "https://painel.example.com.br/integracoes/conta-azul/callback", parsed.Query().Get("redirect_uri"))
	assert.Equal(t, "42", parsed.Query().Get("state"))
	assert.Equal(t, "openid profile aws.cognito.signin.user.admin", parsed.Query().Get("scope"))
}

func TestClient_RefreshToken(t *testing.T) {
	t.Parallel()

	var gotAuth, gotGrant, gotRefresh string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotAuth = r.Header.Get("Authorization")
		gotGrant = r.PostForm.Get("grant_type")
		gotRefresh = r.PostForm.Get("refresh_token")

		assert.Equal(t, "/oauth2/token", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"new-access","refresh_token":"new-refresh","expires_in":3600}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	tokenSet, err := client.RefreshToken(context.Background(), " tenant-id ", " tenant-secret ", "old-refresh")
	require.NoError(t, err)

	assert.Equal(t, "new-access", tokenSet.AccessToken)
	assert.Equal(t, "new-refresh", tokenSet.RefreshToken)
	assert.Equal(t, 3600, tokenSet.ExpiresIn)

	assert.Equal(t, "refresh_token", gotGrant)
	assert.Equal(t, "old-refresh", gotRefresh)

	// Credentials are trimmed before the Basic header is built.
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("tenant-id:tenant-secret"))
	assert.Equal(t, wantAuth, gotAuth)
}

func TestClient_RefreshToken_VendorRejects(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	tokenSet, err := client.RefreshToken(context.Background(), "id", "secret", "stale")
	require.Error(t, err)
	assert.Nil(t, tokenSet)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TOKEN_REFRESH_FALHOU", appErr.ErrorCode())
	assert.Contains(t, appErr.Error(), "invalid_grant")
}

func TestClient_ExchangeAuthorizationCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "https://painel.example.com.br/integracoes/conta-azul/callback", r.PostForm.Get("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"a","refresh_token":"r","expires_in":900}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	tokenSet, err := client.ExchangeAuthorizationCode(context.Background(), "id", "secret", "the-code")
	require.NoError(t, err)
	assert.Equal(t, "a", tokenSet.AccessToken)
	assert.Equal(t, "r", tokenSet.RefreshToken)
}

func TestClient_ListPessoas(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/pessoas", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("pagina"))
		assert.Equal(t, "20", r.URL.Query().Get("tamanho_pagina"))
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"p1","nome":"Empresa Um","documento":"11222333000144","ativo":true},{"id":"p2","nome":"Empresa Dois"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	pessoas, err := client.ListPessoas(context.Background(), "token-abc", 3, 20)
	require.NoError(t, err)
	require.Len(t, pessoas, 2)
	assert.Equal(t, "p1", pessoas[0].ID)
	assert.Equal(t, "Empresa Um", pessoas[0].Nome)
	assert.True(t, pessoas[0].Ativo)
}

func TestClient_ListPessoas_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expirado"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	pessoas, err := client.ListPessoas(context.Background(), "stale", 1, 20)
	require.Error(t, err)
	assert.Nil(t, pessoas)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONTA_AZUL_API", appErr.ErrorCode())
}

func TestClient_ListContratos_ItensEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/contratos", r.URL.Path)
		assert.Equal(t, "2015-01-01", r.URL.Query().Get("data_inicio"))
		assert.Equal(t, "2030-12-31", r.URL.Query().Get("data_fim"))

		// Some deployments answer with the Portuguese key.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"itens":[{"id":"c1","numero":"001","status":"ATIVO","cliente":{"id":"p1","nome":"Empresa Um"}},{"id":"c2","numero":"002","status":"CANCELADO","cliente":null}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	contratos, err := client.ListContratos(context.Background(), "token", 1, 20, service.ContratoPeriodo{
		DataInicio: "2015-01-01",
		DataFim:    "2030-12-31",
	})
	require.NoError(t, err)
	require.Len(t, contratos, 2)
	assert.Equal(t, "c1", contratos[0].ID)
	require.NotNil(t, contratos[0].Cliente)
	assert.Equal(t, "p1", contratos[0].Cliente.ID)
	assert.Nil(t, contratos[1].Cliente)
}

func TestClient_Get_Proxy(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/servicos", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"message":"sem acesso"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	// The proxy passes upstream errors through instead of failing.
	result, err := client.Get(context.Background(), "token", "v1/servicos")
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, result.StatusCode)

	body, ok := result.Body.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sem acesso", body["message"])
}
