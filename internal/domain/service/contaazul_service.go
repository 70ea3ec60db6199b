package service

import "context"

// TokenSet is the triple returned by the Conta Azul token endpoint. Refresh
// tokens rotate on every exchange, so the returned RefreshToken must replace
// the stored one.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Pessoa is one customer record as the Conta Azul v2 API returns it.
type Pessoa struct {
	ID                string   `json:"id"`
	IDLegado          *string  `json:"id_legado"`
	UUIDLegado        *string  `json:"uuid_legado"`
	Nome              string   `json:"nome"`
	Documento         string   `json:"documento"`
	Email             string   `json:"email"`
	Telefone          string   `json:"telefone"`
	Ativo             bool     `json:"ativo"`
	TipoPessoa        string   `json:"tipo_pessoa"`
	Perfis            []string `json:"perfis"`
	ObservacoesGerais string   `json:"observacoes_gerais"`
	DataCriacao       string   `json:"data_criacao"`
	DataAlteracao     string   `json:"data_alteracao"`
}

// ContratoCliente is the customer reference embedded in a contract record.
type ContratoCliente struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// Contrato is one contract record as the Conta Azul v2 API returns it.
// Cliente is nil for contracts with no linked customer.
type Contrato struct {
	ID                string           `json:"id"`
	Numero            string           `json:"numero"`
	Status            string           `json:"status"`
	DataInicio        string           `json:"data_inicio"`
	ProximoVencimento string           `json:"proximo_vencimento"`
	Cliente           *ContratoCliente `json:"cliente"`
}

// ContratoPeriodo is the fixed date-range filter the contract listing requires.
type ContratoPeriodo struct {
	DataInicio string
	DataFim    string
}

// ProxyResult carries an arbitrary vendor response back to the test console.
type ProxyResult struct {
	StatusCode int `json:"status"`
	Body       any `json:"data"`
}

// ContaAzulService defines the interface for talking to the Conta Azul
// authorization server and v2 REST API. Implementations speak the vendor's
// wire format; callers only see decoded records and domain errors.
type ContaAzulService interface {
	// BuildAuthorizationURL constructs the partner-mode login URL, carrying
	// the empresa id in the OAuth state parameter.
	BuildAuthorizationURL(empresaID int64) string

	// ExchangeAuthorizationCode performs the initial authorization_code
	// exchange using HTTP Basic auth with the tenant's credentials.
	ExchangeAuthorizationCode(ctx context.Context, clientID, clientSecret, code string) (*TokenSet, error)

	// RefreshToken performs the refresh_token exchange. A non-2xx vendor
	// answer surfaces as a TokenRefreshError carrying the vendor payload.
	RefreshToken(ctx context.Context, clientID, clientSecret, refreshToken string) (*TokenSet, error)

	// ListPessoas fetches one page of the customer collection.
	ListPessoas(ctx context.Context, accessToken string, page, pageSize int) ([]Pessoa, error)

	// ListContratos fetches one page of the contract collection within the
	// given date window.
	ListContratos(ctx context.Context, accessToken string, page, pageSize int, periodo ContratoPeriodo) ([]Contrato, error)

	// Get forwards an arbitrary GET to the vendor API with a bearer token.
	Get(ctx context.Context, accessToken, endpoint string) (*ProxyResult, error)
}
