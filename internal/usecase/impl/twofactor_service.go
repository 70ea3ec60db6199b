package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"

	deliverycontext "dashbi/internal/delivery/context"
	"dashbi/internal/domain/entity"
	domainerrors "dashbi/internal/domain/errors"
	"dashbi/internal/domain/repository"
	"dashbi/internal/domain/service"
	"dashbi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	backupCodeCount = 10
	backupCodeBytes = 4
)

// twoFactorService implements the TwoFactorUsecase interface.
type twoFactorService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	twoFactorSvc service.TwoFactorService
	qrcodeSvc    service.QRCodeService
	tokenService service.TokenService
	logger       *slog.Logger
}

// TwoFactorServiceParams holds dependencies for twoFactorService, injected by Fx.
type TwoFactorServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TwoFactorSvc service.TwoFactorService
	QRCodeSvc    service.QRCodeService
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewTwoFactorService is the constructor for twoFactorService.
func NewTwoFactorService(params TwoFactorServiceParams) usecase.TwoFactorUsecase {
	return &twoFactorService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		twoFactorSvc: params.TwoFactorSvc,
		qrcodeSvc:    params.QRCodeSvc,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *twoFactorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Setup generates and stores a new TOTP secret for the user. The secret is
// persisted immediately but two-factor only becomes enforced after Verify.
func (srv *twoFactorService) Setup(ctx context.Context, userID uuid.UUID) (*usecase.TwoFactorSetupOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.TwoFactorEnabled {
		return nil, domainerrors.ErrTwoFactorJaAtivado
	}

	secret, otpauthURL, err := srv.twoFactorSvc.GenerateSecret(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate TOTP secret")
	}

	if err := srv.userRepo.UpdateTwoFactor(ctx, userID, false, &secret, nil); err != nil {
		return nil, errors.Wrap(err, "failed to store TOTP secret")
	}

	png, err := srv.qrcodeSvc.GeneratePNG(otpauthURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render provisioning QR code")
	}

	return &usecase.TwoFactorSetupOutput{
		Secret:     secret,
		OTPAuthURL: otpauthURL,
		QRCodePNG:  png,
	}, nil
}

// Verify checks the first authenticator code, activates two-factor and
// returns the freshly generated single-use backup codes.
func (srv *twoFactorService) Verify(ctx context.Context, userID uuid.UUID, code string) (*usecase.TwoFactorVerifyOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.TwoFactorEnabled {
		return nil, domainerrors.ErrTwoFactorJaAtivado
	}
	if user.TwoFactorSecret == nil || *user.TwoFactorSecret == "" {
		return nil, domainerrors.ErrTwoFactorNaoIniciado
	}

	if !srv.twoFactorSvc.Validate(normalizeCode(code), *user.TwoFactorSecret) {
		return nil, domainerrors.ErrTwoFactorCodigoInvalido
	}

	backupCodes, err := generateBackupCodes(backupCodeCount)
	if err != nil {
		return nil, err
	}

	joined := strings.Join(backupCodes, ",")
	if err := srv.userRepo.UpdateTwoFactor(ctx, userID, true, user.TwoFactorSecret, &joined); err != nil {
		return nil, errors.Wrap(err, "failed to activate two-factor")
	}

	srv.log(ctx).Info("Autenticação em duas etapas ativada", slog.Any("userID", userID))

	return &usecase.TwoFactorVerifyOutput{BackupCodes: backupCodes}, nil
}

// Disable turns two-factor off after validating a current code or an unused
// backup code. Secret and backup codes are cleared together.
func (srv *twoFactorService) Disable(ctx context.Context, userID uuid.UUID, code string) error {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if !user.TwoFactorEnabled || user.TwoFactorSecret == nil {
		return domainerrors.ErrTwoFactorDesativado
	}

	code = normalizeCode(code)
	if !srv.twoFactorSvc.Validate(code, *user.TwoFactorSecret) && !hasBackupCode(user, code) {
		return domainerrors.ErrTwoFactorCodigoInvalido
	}

	if err := srv.userRepo.UpdateTwoFactor(ctx, userID, false, nil, nil); err != nil {
		return errors.Wrap(err, "failed to disable two-factor")
	}

	srv.log(ctx).Info("Autenticação em duas etapas desativada", slog.Any("userID", userID))

	return nil
}

// LoginCheck validates the second factor of a pending login. Backup codes
// are single use; the consumption happens inside a transaction so two
// concurrent logins cannot spend the same code.
func (srv *twoFactorService) LoginCheck(ctx context.Context, userID uuid.UUID, code string) (string, string, error) {
	code = normalizeCode(code)

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUsuarioNaoEncontrado
			}

			return errors.Wrap(err, "failed to load user for two-factor check")
		}

		if !user.TwoFactorEnabled || user.TwoFactorSecret == nil {
			return domainerrors.ErrTwoFactorDesativado
		}

		if srv.twoFactorSvc.Validate(code, *user.TwoFactorSecret) {
			return nil
		}

		remaining, found := consumeBackupCode(user, code)
		if !found {
			return domainerrors.ErrTwoFactorCodigoInvalido
		}

		srv.log(ctx).Info("Código de backup utilizado", slog.Any("userID", userID))

		return userRepo.UpdateTwoFactor(ctx, userID, true, user.TwoFactorSecret, &remaining)
	})
	if err != nil {
		return "", "", err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID, false)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens after two-factor check")
	}

	return accessToken, refreshToken, nil
}

func (srv *twoFactorService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUsuarioNaoEncontrado
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// normalizeCode strips the whitespace authenticator apps and users like to
// paste along with the code.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(code), " ", ""))
}

// generateBackupCodes creates n random single-use codes, hex-encoded and
// uppercased for easy reading over the phone.
func generateBackupCodes(n int) ([]string, error) {
	codes := make([]string, 0, n)
	for range n {
		buf := make([]byte, backupCodeBytes)
		if _, err := rand.Read(buf); err != nil {
			return nil, errors.Wrap(err, "failed to generate backup code")
		}
		codes = append(codes, strings.ToUpper(hex.EncodeToString(buf)))
	}

	return codes, nil
}

func hasBackupCode(user *entity.User, code string) bool {
	if user.TwoFactorBackupCodes == nil || code == "" {
		return false
	}

	for _, candidate := range strings.Split(*user.TwoFactorBackupCodes, ",") {
		if candidate == code {
			return true
		}
	}

	return false
}

// consumeBackupCode removes the matching code and returns the remaining
// joined list. found is false when the code is not present.
func consumeBackupCode(user *entity.User, code string) (remaining string, found bool) {
	if user.TwoFactorBackupCodes == nil || code == "" {
		return "", false
	}

	stored := strings.Split(*user.TwoFactorBackupCodes, ",")
	kept := make([]string, 0, len(stored))
	for _, candidate := range stored {
		if !found && candidate == code {
			found = true

			continue
		}
		kept = append(kept, candidate)
	}

	return strings.Join(kept, ","), found
}
