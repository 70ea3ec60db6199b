package repository

import (
	"context"

	"dashbi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for operator account persistence.
type UserRepository interface {
	// FindByEmail retrieves a user by e-mail address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateTwoFactor overwrites the user's two-factor state (enabled flag,
	// TOTP secret and backup codes) in a single write. Nil pointers clear
	// the respective columns.
	UpdateTwoFactor(ctx context.Context, userID uuid.UUID, enabled bool, secret, backupCodes *string) error
}
