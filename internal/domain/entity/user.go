package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a back-office operator account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	SenhaHash string    `json:"-"` // bcrypt hash of the password.

	// Two-factor authentication state. The secret is persisted on setup
	// but the feature only becomes enforced once Verify flips Enabled.
	TwoFactorEnabled     bool    `json:"two_factor_enabled"`
	TwoFactorSecret      *string `json:"-"`
	TwoFactorBackupCodes *string `json:"-"` // Comma-joined single-use recovery codes.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
