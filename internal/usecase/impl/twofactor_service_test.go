package impl

import (
	"context"
	"strings"
	"testing"

	"dashbi/internal/domain/entity"
	domainerrors "dashbi/internal/domain/errors"
	"dashbi/internal/domain/repository"
	mockRepo "dashbi/internal/mocks/repository"
	mockSvc "dashbi/internal/mocks/service"
	"dashbi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// twoFactorServiceFixtures holds all test dependencies for two-factor service tests.
type twoFactorServiceFixtures struct {
	service      usecase.TwoFactorUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	twoFactorSvc *mockSvc.MockTwoFactorService
	qrcodeSvc    *mockSvc.MockQRCodeService
	tokenService *mockSvc.MockTokenService
}

func createTestTwoFactorService(t *testing.T) twoFactorServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	twoFactorSvc := mockSvc.NewMockTwoFactorService(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewTwoFactorService(TwoFactorServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		TwoFactorSvc: twoFactorSvc,
		QRCodeSvc:    qrcodeSvc,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return twoFactorServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		twoFactorSvc: twoFactorSvc,
		qrcodeSvc:    qrcodeSvc,
		tokenService: tokenService,
	}
}

func testUser(enabled bool, secret, backupCodes *string) *entity.User {
	return &entity.User{
		ID:                   uuid.New(),
		Nome:                 "Operador",
		Email:                "operador@exemplo.com.br",
		SenhaHash:            "$2a$12$hash",
		TwoFactorEnabled:     enabled,
		TwoFactorSecret:      secret,
		TwoFactorBackupCodes: backupCodes,
	}
}

func TestTwoFactorService_Setup(t *testing.T) {
	fx := createTestTwoFactorService(t)

	ctx := context.Background()
	user := testUser(false, nil, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	fx.twoFactorSvc.EXPECT().
		GenerateSecret("operador@exemplo.com.br").
		Return("JBSWY3DPEHPK3PXP", "otpauth://totp/Dashboard%20BI:operador@exemplo.com.br?secret=JBSWY3DPEHPK3PXP", nil)

	secret := "JBSWY3DPEHPK3PXP"
	fx.userRepo.EXPECT().
		UpdateTwoFactor(ctx, user.ID, false, &secret, (*string)(nil)).
		Return(nil)

	fx.qrcodeSvc.EXPECT().
		GeneratePNG("otpauth://totp/Dashboard%20BI:operador@exemplo.com.br?secret=JBSWY3DPEHPK3PXP").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	output, err := fx.service.Setup(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", output.Secret)
	assert.Contains(t, output.OTPAuthURL, "otpauth://totp/")
	assert.NotEmpty(t, output.QRCodePNG)
}

func TestTwoFactorService_Setup_AlreadyEnabled(t *testing.T) {
	fx := createTestTwoFactorService(t)

	ctx := context.Background()
	secret := "JBSWY3DPEHPK3PXP"
	user := testUser(true, &secret, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	output, err := fx.service.Setup(ctx, user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrTwoFactorJaAtivado)
	assert.Nil(t, output)
}

func TestTwoFactorService_Verify_ActivatesAndReturnsBackupCodes(t *testing.T) {
	fx := createTestTwoFactorService(t)

	ctx := context.Background()
	secret := "JBSWY3DPEHPK3PXP"
	user := testUser(false, &secret, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	fx.twoFactorSvc.EXPECT().
		Validate("123456", secret).
		Return(true)

	var storedCodes string
	fx.userRepo.EXPECT().
		UpdateTwoFactor(ctx, user.ID, true, &secret, mock.AnythingOfType("*string")).
		Run(func(_ context.Context, _ uuid.UUID, _ bool, _ *string, backupCodes *string) {
			storedCodes = *backupCodes
		}).
		Return(nil)

	output, err := fx.service.Verify(ctx, user.ID, " 123 456 ")
	require.NoError(t, err)
	require.Len(t, output.BackupCodes, 10)

	for _, code := range output.BackupCodes {
		assert.Len(t, code, 8)
		assert.Equal(t, strings.ToUpper(code), code)
	}

	// All ten codes are distinct and persisted comma-joined.
	assert.Equal(t, strings.Join(output.BackupCodes, ","), storedCodes)
	seen := make(map[string]bool, len(output.BackupCodes))
	for _, code := range output.BackupCodes {
		assert.False(t, seen[code])
		seen[code] = true
	}
}

func TestTwoFactorService_Verify_WrongCode(t *testing.T) {
	fx := createTestTwoFactorService(t)

	ctx := context.Background()
	secret := "JBSWY3DPEHPK3PXP"
	user := testUser(false, &secret, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	fx.twoFactorSvc.EXPECT().
		Validate("000000", secret).
		Return(false)

	output, err := fx.service.Verify(ctx, user.ID, "000000")
	assert.ErrorIs(t, err, domainerrors.ErrTwoFactorCodigoInvalido)
	assert.Nil(t, output)
}

func TestTwoFactorService_Verify_NotStarted(t *testing.T) {
	fx := createTestTwoFactorService(t)

	ctx := context.Background()
	user := testUser(false, nil, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	output, err := fx.service.Verify(ctx, user.ID, "123456")
	assert.ErrorIs(t, err, domainerrors.ErrTwoFactorNaoIniciado)
	assert.Nil(t, output)
}

func TestTwoFactorService_Disable(t *testing.T) {
	fx := createTestTwoFactorService(t)

	ctx := context.Background()
	secret := "JBSWY3DPEHPK3PXP"
	codes := "AAAA1111,BBBB2222"
	user := testUser(true, &secret, &codes)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	fx.twoFactorSvc.EXPECT().
		Validate("123456", secret).
		Return(true)

	fx.userRepo.EXPECT().
		UpdateTwoFactor(ctx, user.ID, false, (*string)(nil), (*string)(nil)).
		Return(nil)

	err := fx.service.Disable(ctx, user.ID, "123456")
	require.NoError(t, err)
}

func TestTwoFactorService_Disable_BackupCodeFallback(t *testing.T) {
	fx := createTestTwoFactorService(t)

	ctx := context.Background()
	secret := "JBSWY3DPEHPK3PXP"
	codes := "AAAA1111,BBBB2222"
	user := testUser(true, &secret, &codes)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	fx.twoFactorSvc.EXPECT().
		Validate("BBBB2222", secret).
		Return(false)

	fx.userRepo.EXPECT().
		UpdateTwoFactor(ctx, user.ID, false, (*string)(nil), (*string)(nil)).
		Return(nil)

	err := fx.service.Disable(ctx, user.ID, "bbbb2222")
	require.NoError(t, err)
}

func TestTwoFactorService_Disable_NotEnabled(t *testing.T) {
	fx := createTestTwoFactorService(t)

	ctx := context.Background()
	user := testUser(false, nil, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	err := fx.service.Disable(ctx, user.ID, "123456")
	assert.ErrorIs(t, err, domainerrors.ErrTwoFactorDesativado)
}

func (fx twoFactorServiceFixtures) expectTransaction(txUserRepo *mockRepo.MockUserRepository, t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestTwoFactorService_LoginCheck_TOTP(t *testing.T) {
	fx := createTestTwoFactorService(t)

	ctx := context.Background()
	secret := "JBSWY3DPEHPK3PXP"
	codes := "AAAA1111,BBBB2222"
	user := testUser(true, &secret, &codes)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)
	fx.expectTransaction(txUserRepo, t)

	fx.twoFactorSvc.EXPECT().
		Validate("123456", secret).
		Return(true)

	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, false).
		Return("full-access", "full-refresh", nil)

	accessToken, refreshToken, err := fx.service.LoginCheck(ctx, user.ID, "123456")
	require.NoError(t, err)
	assert.Equal(t, "full-access", accessToken)
	assert.Equal(t, "full-refresh", refreshToken)
}

func TestTwoFactorService_LoginCheck_ConsumesBackupCode(t *testing.T) {
	fx := createTestTwoFactorService(t)

	ctx := context.Background()
	secret := "JBSWY3DPEHPK3PXP"
	codes := "AAAA1111,BBBB2222,CCCC3333"
	user := testUser(true, &secret, &codes)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	remaining := "AAAA1111,CCCC3333"
	txUserRepo.EXPECT().
		UpdateTwoFactor(ctx, user.ID, true, &secret, &remaining).
		Return(nil)

	fx.expectTransaction(txUserRepo, t)

	fx.twoFactorSvc.EXPECT().
		Validate("BBBB2222", secret).
		Return(false)

	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, false).
		Return("full-access", "full-refresh", nil)

	accessToken, _, err := fx.service.LoginCheck(ctx, user.ID, "bbbb2222")
	require.NoError(t, err)
	assert.Equal(t, "full-access", accessToken)
}

func TestTwoFactorService_LoginCheck_InvalidCode(t *testing.T) {
	fx := createTestTwoFactorService(t)

	ctx := context.Background()
	secret := "JBSWY3DPEHPK3PXP"
	codes := "AAAA1111"
	user := testUser(true, &secret, &codes)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)
	fx.expectTransaction(txUserRepo, t)

	fx.twoFactorSvc.EXPECT().
		Validate("999999", secret).
		Return(false)

	_, _, err := fx.service.LoginCheck(ctx, user.ID, "999999")
	assert.ErrorIs(t, err, domainerrors.ErrTwoFactorCodigoInvalido)
}
