// Package contaazul implements the HTTP client for the Conta Azul
// authorization server and v2 REST API.
package contaazul

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dashbi/config"
	domainerrors "dashbi/internal/domain/errors"
	"dashbi/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	tokenPath    = "/oauth2/token"
	loginPath    = "/login"
	callbackPath = "/integracoes/conta-azul/callback"

	pessoasPath   = "/v1/pessoas"
	contratosPath = "/v1/contratos"

	// Partner-mode scope required by the vendor's login endpoint.
	oauthScope = "openid profile aws.cognito.signin.user.admin"

	requestTimeout = 30 * time.Second
)

// Client talks to the Conta Azul OAuth server and REST API.
type Client struct {
	authBaseURL string
	apiBaseURL  string
	clientID    string
	appBaseURL  string

	httpClient *http.Client
}

// NewClient creates a Conta Azul client from configuration.
func NewClient(cfg *config.Config) service.ContaAzulService {
	return &Client{
		authBaseURL: strings.TrimRight(cfg.ContaAzul.AuthBaseURL, "/"),
		apiBaseURL:  strings.TrimRight(cfg.ContaAzul.APIBaseURL, "/"),
		clientID:    cfg.ContaAzul.ClientID,
		appBaseURL:  strings.TrimRight(cfg.ContaAzul.AppBaseURL, "/"),
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

// BuildAuthorizationURL constructs the partner-mode login URL. The empresa id
// rides in the OAuth state parameter and comes back on the callback.
func (c *Client) BuildAuthorizationURL(empresaID int64) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", strings.TrimSpace(c.clientID))
	params.Set("redirect_uri", c.redirectURI())
	params.Set("state", strconv.FormatInt(empresaID, 10))
	params.Set("scope", oauthScope)

	return c.authBaseURL + loginPath + "?" + params.Encode()
}

// ExchangeAuthorizationCode performs the initial authorization_code exchange.
func (c *Client) ExchangeAuthorizationCode(ctx context.Context, clientID, clientSecret, code string) (*service.TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", c.redirectURI())
	data.Set("code", code)

	return c.postTokenForm(ctx, clientID, clientSecret, data)
}

// RefreshToken performs the refresh_token exchange. The vendor rotates the
// refresh token on every exchange; callers must persist the returned one.
func (c *Client) RefreshToken(ctx context.Context, clientID, clientSecret, refreshToken string) (*service.TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)

	return c.postTokenForm(ctx, clientID, clientSecret, data)
}

// ListPessoas fetches one page of the customer collection.
func (c *Client) ListPessoas(ctx context.Context, accessToken string, page, pageSize int) ([]service.Pessoa, error) {
	params := url.Values{}
	params.Set("pagina", strconv.Itoa(page))
	params.Set("tamanho_pagina", strconv.Itoa(pageSize))

	body, err := c.getCollection(ctx, accessToken, pessoasPath, params)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Items []service.Pessoa `json:"items"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode pessoas page")
	}

	return envelope.Items, nil
}

// ListContratos fetches one page of the contract collection within the date
// window. The API answers with an "items" or "itens" key depending on the
// endpoint version; both are accepted.
func (c *Client) ListContratos(ctx context.Context, accessToken string, page, pageSize int, periodo service.ContratoPeriodo) ([]service.Contrato, error) {
	params := url.Values{}
	params.Set("pagina", strconv.Itoa(page))
	params.Set("tamanho_pagina", strconv.Itoa(pageSize))
	params.Set("data_inicio", periodo.DataInicio)
	params.Set("data_fim", periodo.DataFim)

	body, err := c.getCollection(ctx, accessToken, contratosPath, params)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Items []service.Contrato `json:"items"`
		Itens []service.Contrato `json:"itens"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode contratos page")
	}

	if envelope.Items != nil {
		return envelope.Items, nil
	}

	return envelope.Itens, nil
}

// Get forwards an arbitrary GET to the vendor API with a bearer token and
// returns the upstream status and decoded payload, whatever they are.
func (c *Client) Get(ctx context.Context, accessToken, endpoint string) (*service.ProxyResult, error) {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create proxy request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call Conta Azul API")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Conta Azul response")
	}

	result := &service.ProxyResult{StatusCode: resp.StatusCode}
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err == nil {
			result.Body = decoded

			return result, nil
		}
	}
	result.Body = string(raw)

	return result, nil
}

func (c *Client) redirectURI() string {
	return c.appBaseURL + callbackPath
}

// postTokenForm posts a form to the token endpoint with HTTP Basic auth built
// from the trimmed credentials (copy/paste often brings stray whitespace).
func (c *Client) postTokenForm(ctx context.Context, clientID, clientSecret string, data url.Values) (*service.TokenSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authBaseURL+tokenPath, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token request")
	}

	req.SetBasicAuth(strings.TrimSpace(clientID), strings.TrimSpace(clientSecret))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call token endpoint")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read token response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Vendor error payload surfaced verbatim; stored tokens stay untouched.
		return nil, domainerrors.NewTokenRefreshError(string(body))
	}

	var tokenSet service.TokenSet
	if err := json.Unmarshal(body, &tokenSet); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	return &tokenSet, nil
}

// getCollection performs a bearer-authenticated GET against a collection
// endpoint. Any non-2xx answer aborts the sync run with the status and body.
func (c *Client) getCollection(ctx context.Context, accessToken, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create collection request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call Conta Azul API")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Conta Azul response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerrors.NewContaAzulAPIError(resp.StatusCode, string(body))
	}

	return body, nil
}
