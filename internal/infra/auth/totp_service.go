package auth

import (
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"dashbi/config"
	"dashbi/internal/domain/service"
)

const defaultTOTPIssuer = "Dashboard BI"

// totpService is a concrete implementation of the TwoFactorService interface
// using time-based one-time passwords.
type totpService struct {
	issuer string
}

// NewTOTPService is the constructor for totpService.
func NewTOTPService(cfg *config.Config) service.TwoFactorService {
	issuer := defaultTOTPIssuer
	if cfg != nil && cfg.TwoFactor != nil && cfg.TwoFactor.Issuer != "" {
		issuer = cfg.TwoFactor.Issuer
	}

	return &totpService{issuer: issuer}
}

// GenerateSecret creates a new TOTP secret for the account and returns the
// base32 secret together with its otpauth:// provisioning URL.
func (s *totpService) GenerateSecret(accountName string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: accountName,
	})
	if err != nil {
		return "", "", err
	}

	return key.Secret(), key.URL(), nil
}

// Validate checks a code against a secret, accepting codes from the two
// adjacent 30-second periods to tolerate clock skew (matches the window
// the original systems verified with).
func (s *totpService) Validate(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, timeNow(), totp.ValidateOpts{
		Period:    30,
		Skew:      2,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})

	return err == nil && ok
}
