package impl

import (
	"context"
	"testing"

	"dashbi/internal/domain/entity"
	domainerrors "dashbi/internal/domain/errors"
	"dashbi/internal/domain/repository"
	mockRepo "dashbi/internal/mocks/repository"
	mockSvc "dashbi/internal/mocks/service"
	"dashbi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Login(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:        uuid.New(),
		Nome:      "Operador",
		Email:     "operador@exemplo.com.br",
		SenhaHash: "$2a$12$hash",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "operador@exemplo.com.br").
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("senha-correta", "$2a$12$hash").
		Return(true)

	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, false).
		Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email: "operador@exemplo.com.br",
		Senha: "senha-correta",
	})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.False(t, output.TwoFactorPending)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_TwoFactorPending(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	secret := "JBSWY3DPEHPK3PXP"
	user := &entity.User{
		ID:               uuid.New(),
		Email:            "operador@exemplo.com.br",
		SenhaHash:        "$2a$12$hash",
		TwoFactorEnabled: true,
		TwoFactorSecret:  &secret,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "operador@exemplo.com.br").
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("senha-correta", "$2a$12$hash").
		Return(true)

	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, true).
		Return("pending-access", "pending-refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email: "operador@exemplo.com.br",
		Senha: "senha-correta",
	})
	require.NoError(t, err)
	assert.True(t, output.TwoFactorPending)
	assert.Equal(t, "pending-access", output.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:        uuid.New(),
		Email:     "operador@exemplo.com.br",
		SenhaHash: "$2a$12$hash",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "operador@exemplo.com.br").
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("senha-errada", "$2a$12$hash").
		Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email: "operador@exemplo.com.br",
		Senha: "senha-errada",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCredenciaisInvalidas)
	assert.Nil(t, output)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ninguem@exemplo.com.br").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email: "ninguem@exemplo.com.br",
		Senha: "qualquer",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCredenciaisInvalidas)
	assert.Nil(t, output)
}
