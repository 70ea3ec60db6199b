package impl

import (
	"context"
	"log/slog"

	deliverycontext "dashbi/internal/delivery/context"
	domainerrors "dashbi/internal/domain/errors"
	"dashbi/internal/domain/repository"
	"dashbi/internal/domain/service"
	"dashbi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates an operator by e-mail and password. A wrong e-mail and
// a wrong password answer identically so accounts cannot be enumerated.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrCredenciaisInvalidas
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Senha, user.SenhaHash) {
		srv.log(ctx).Warn("Senha incorreta no login", slog.String("email", input.Email))

		return nil, domainerrors.ErrCredenciaisInvalidas
	}

	// Accounts with two-factor enabled get a pending token pair; the
	// two-factor check upgrades it to a full session.
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.TwoFactorEnabled)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TwoFactorPending: user.TwoFactorEnabled,
		User:             user,
	}, nil
}
