package usecase

import (
	"context"

	"github.com/google/uuid"
)

// TwoFactorSetupOutput carries the provisioning material for the
// authenticator app. The secret only becomes enforced after Verify.
type TwoFactorSetupOutput struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`

	// QRCodePNG is the provisioning URL rendered as a PNG, base64-encoded
	// by the HTTP layer.
	QRCodePNG []byte `json:"-"`
}

// TwoFactorVerifyOutput carries the single-use backup codes handed to the
// user exactly once, at activation.
type TwoFactorVerifyOutput struct {
	BackupCodes []string `json:"backup_codes"`
}

// TwoFactorUsecase defines the TOTP two-factor authentication use cases.
type TwoFactorUsecase interface {
	// Setup generates and stores a new TOTP secret for the user and returns
	// the provisioning material. Fails when two-factor is already active.
	Setup(ctx context.Context, userID uuid.UUID) (*TwoFactorSetupOutput, error)

	// Verify checks the first code from the authenticator app, activates
	// two-factor and returns the freshly generated backup codes.
	Verify(ctx context.Context, userID uuid.UUID, code string) (*TwoFactorVerifyOutput, error)

	// Disable turns two-factor off after validating a current code or an
	// unused backup code.
	Disable(ctx context.Context, userID uuid.UUID, code string) error

	// LoginCheck validates the second factor of a pending login: a TOTP
	// code, or a backup code which is consumed on use. On success it
	// returns a full (non-pending) token pair.
	LoginCheck(ctx context.Context, userID uuid.UUID, code string) (accessToken string, refreshToken string, err error)
}
