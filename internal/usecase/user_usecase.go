package usecase

import (
	"context"

	"dashbi/internal/domain/entity"
)

// LoginInput carries the operator's credentials.
type LoginInput struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// LoginOutput is the login result. When TwoFactorPending is true the token
// pair only grants access to the two-factor check route.
type LoginOutput struct {
	AccessToken      string       `json:"access_token"`
	RefreshToken     string       `json:"refresh_token"`
	TwoFactorPending bool         `json:"two_factor_pending"`
	User             *entity.User `json:"user"`
}

// UserUsecase defines the operator account use cases.
type UserUsecase interface {
	// Login authenticates an operator by e-mail and password. Accounts with
	// two-factor enabled get a pending token pair that must be upgraded via
	// the two-factor check.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
