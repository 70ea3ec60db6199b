package service

// TwoFactorService defines the interface for TOTP secret generation and
// code validation, abstracting the underlying one-time-password library.
type TwoFactorService interface {
	// GenerateSecret creates a new TOTP secret for the account and returns
	// the base32 secret together with its otpauth:// provisioning URL.
	GenerateSecret(accountName string) (secret string, otpauthURL string, err error)

	// Validate checks a 6-digit code against a secret, tolerating clock
	// skew of a couple of periods either way.
	Validate(code, secret string) bool
}
