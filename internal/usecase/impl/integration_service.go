// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "dashbi/internal/delivery/context"
	domainerrors "dashbi/internal/domain/errors"
	"dashbi/internal/domain/repository"
	"dashbi/internal/domain/service"
	"dashbi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// tokenExpirySafetyMargin is how long before the declared expiry a stored
// access token is already treated as stale. Covers clock drift between this
// host and the vendor plus the latency of the request about to use the token.
const tokenExpirySafetyMargin = 5 * time.Minute

// integrationService implements the IntegrationUsecase interface.
type integrationService struct {
	integrationRepo repository.IntegrationRepository
	contaAzul       service.ContaAzulService
	logger          *slog.Logger

	// refreshGroup coalesces concurrent refresh attempts per empresa so a
	// burst of requests performs a single exchange of the rotating refresh
	// token instead of racing each other.
	refreshGroup singleflight.Group
}

// IntegrationServiceParams holds dependencies for integrationService, injected by Fx.
type IntegrationServiceParams struct {
	fx.In

	IntegrationRepo repository.IntegrationRepository
	ContaAzul       service.ContaAzulService
	Logger          *slog.Logger
}

// NewIntegrationService is the constructor for integrationService.
func NewIntegrationService(params IntegrationServiceParams) usecase.IntegrationUsecase {
	return &integrationService{
		integrationRepo: params.IntegrationRepo,
		contaAzul:       params.ContaAzul,
		logger:          params.Logger,
	}
}

func (srv *integrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetConfig reads the integration state for an empresa.
func (srv *integrationService) GetConfig(ctx context.Context, empresaID int64) (*usecase.IntegrationConfigOutput, error) {
	if empresaID <= 0 {
		return nil, domainerrors.ErrEmpresaInvalida
	}

	integration, err := srv.integrationRepo.FindByEmpresa(ctx, empresaID)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			// Never configured; the settings screen shows an empty form.
			return &usecase.IntegrationConfigOutput{}, nil
		}

		return nil, errors.Wrap(err, "failed to load integration config")
	}

	updatedAt := integration.UpdatedAt

	return &usecase.IntegrationConfigOutput{
		Configured: true,
		Authorized: integration.Authorized(),
		ClientID:   integration.ClientID,
		UpdatedAt:  &updatedAt,
	}, nil
}

// SaveConfig creates or replaces the tenant's client credentials.
func (srv *integrationService) SaveConfig(ctx context.Context, empresaID int64, input *usecase.IntegrationConfigInput) (*usecase.IntegrationConfigOutput, error) {
	if empresaID <= 0 {
		return nil, domainerrors.ErrEmpresaInvalida
	}

	integration, err := srv.integrationRepo.SaveCredentials(ctx, empresaID, input.ClientID, input.ClientSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save integration credentials")
	}

	srv.log(ctx).Info("Credenciais Conta Azul salvas", slog.Int64("empresaID", empresaID))

	updatedAt := integration.UpdatedAt

	return &usecase.IntegrationConfigOutput{
		Configured: true,
		Authorized: integration.Authorized(),
		ClientID:   integration.ClientID,
		UpdatedAt:  &updatedAt,
	}, nil
}

// BuildAuthorizationURL returns the vendor login URL for the empresa.
func (srv *integrationService) BuildAuthorizationURL(_ context.Context, empresaID int64) (string, error) {
	if empresaID <= 0 {
		return "", domainerrors.ErrEmpresaInvalida
	}

	return srv.contaAzul.BuildAuthorizationURL(empresaID), nil
}

// HandleCallback finishes the authorization-code flow.
func (srv *integrationService) HandleCallback(ctx context.Context, state, code string) (int64, error) {
	if code == "" {
		return 0, domainerrors.ErrEstadoOAuthInvalido
	}

	empresaID, err := strconv.ParseInt(state, 10, 64)
	if err != nil || empresaID <= 0 {
		return 0, domainerrors.ErrEstadoOAuthInvalido
	}

	integration, err := srv.integrationRepo.FindByEmpresa(ctx, empresaID)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return 0, domainerrors.ErrIntegracaoNaoConfigurada
		}

		return 0, errors.Wrap(err, "failed to load integration for callback")
	}

	tokenSet, err := srv.contaAzul.ExchangeAuthorizationCode(ctx, integration.ClientID, integration.ClientSecret, code)
	if err != nil {
		return 0, err
	}

	if err := srv.integrationRepo.UpdateTokens(ctx, empresaID, tokenSet.AccessToken, tokenSet.RefreshToken, tokenSet.ExpiresIn); err != nil {
		return 0, errors.Wrap(err, "failed to persist tokens after callback")
	}

	srv.log(ctx).Info("Autorização Conta Azul concluída", slog.Int64("empresaID", empresaID))

	return empresaID, nil
}

// EnsureAccessToken returns an access token valid for at least the safety
// margin, refreshing transparently when the stored one is stale.
func (srv *integrationService) EnsureAccessToken(ctx context.Context, empresaID int64) (string, error) {
	if empresaID <= 0 {
		return "", domainerrors.ErrEmpresaInvalida
	}

	token, err, _ := srv.refreshGroup.Do(strconv.FormatInt(empresaID, 10), func() (any, error) {
		return srv.ensureAccessToken(ctx, empresaID)
	})
	if err != nil {
		return "", err
	}

	return token.(string), nil
}

func (srv *integrationService) ensureAccessToken(ctx context.Context, empresaID int64) (string, error) {
	integration, err := srv.integrationRepo.FindByEmpresa(ctx, empresaID)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return "", domainerrors.ErrIntegracaoNaoConfigurada
		}

		return "", errors.Wrap(err, "failed to load integration for token check")
	}

	if !integration.Authorized() {
		return "", domainerrors.ErrIntegracaoNaoConfigurada
	}

	expiresAt := integration.UpdatedAt.Add(time.Duration(integration.ExpiresIn) * time.Second)
	if time.Now().Before(expiresAt.Add(-tokenExpirySafetyMargin)) {
		return *integration.AccessToken, nil
	}

	tokenSet, err := srv.contaAzul.RefreshToken(ctx, integration.ClientID, integration.ClientSecret, *integration.RefreshToken)
	if err != nil {
		return "", err
	}

	// The refresh token rotates on every exchange; persisting the new pair
	// atomically is what keeps the next refresh possible.
	if err := srv.integrationRepo.UpdateTokens(ctx, empresaID, tokenSet.AccessToken, tokenSet.RefreshToken, tokenSet.ExpiresIn); err != nil {
		return "", errors.Wrap(err, "failed to persist refreshed tokens")
	}

	srv.log(ctx).Info("Token Conta Azul renovado",
		slog.Int64("empresaID", empresaID),
		slog.Int("expiresIn", tokenSet.ExpiresIn))

	return tokenSet.AccessToken, nil
}

// Proxy forwards a GET to the vendor API on behalf of the empresa.
func (srv *integrationService) Proxy(ctx context.Context, empresaID int64, endpoint string) (*service.ProxyResult, error) {
	accessToken, err := srv.EnsureAccessToken(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	return srv.contaAzul.Get(ctx, accessToken, endpoint)
}
