// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"strings"

	"dashbi/internal/domain/service"

	"github.com/labstack/echo/v4"

	"dashbi/internal/delivery/http/response"
)

// Context keys set by the authentication middleware.
const (
	ContextKeyUserID           = "userID"
	ContextKeyTwoFactorPending = "twoFactorPending"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and rejects sessions that still
// owe a two-factor code.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, errResp := m.authenticate(c)
		if claims == nil {
			return errResp
		}

		if claims.TwoFactorPending {
			return response.Unauthorized(c, "TWO_FACTOR_PENDENTE", "Verificação em duas etapas pendente")
		}

		return next(c)
	}
}

// AuthenticatePending validates the bearer token but accepts sessions with a
// pending two-factor check. Used only by the two-factor login route.
func (m *AuthMiddleware) AuthenticatePending(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, errResp := m.authenticate(c)
		if claims == nil {
			return errResp
		}

		return next(c)
	}
}

// authenticate parses and validates the Authorization header, storing the
// claims on the echo context. On failure it returns a nil claims pointer and
// the already-written error response.
func (m *AuthMiddleware) authenticate(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, response.Unauthorized(c, "NAO_AUTORIZADO", "Cabeçalho Authorization ausente")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, response.Unauthorized(c, "NAO_AUTORIZADO", "Formato de token inválido, use Bearer")
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, response.Unauthorized(c, "NAO_AUTORIZADO", "Token inválido ou expirado")
	}

	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeyTwoFactorPending, claims.TwoFactorPending)

	return claims, nil
}
