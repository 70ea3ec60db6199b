// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dashbi/internal/delivery/http/middleware"
	"dashbi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler      *handler.HealthHandler
	UserHandler        *handler.UserHandler
	TwoFactorHandler   *handler.TwoFactorHandler
	IntegrationHandler *handler.IntegrationHandler
	SyncHandler        *handler.SyncHandler
	LicenseHandler     *handler.LicenseHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler      *handler.HealthHandler
	userHandler        *handler.UserHandler
	twoFactorHandler   *handler.TwoFactorHandler
	integrationHandler *handler.IntegrationHandler
	syncHandler        *handler.SyncHandler
	licenseHandler     *handler.LicenseHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:      params.HealthHandler,
		userHandler:        params.UserHandler,
		twoFactorHandler:   params.TwoFactorHandler,
		integrationHandler: params.IntegrationHandler,
		syncHandler:        params.SyncHandler,
		licenseHandler:     params.LicenseHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)

		// The login check accepts the pending token pair issued by Login.
		authGroup.POST("/2fa/login-check",
			r.twoFactorHandler.LoginCheck,
			r.authMiddleware.AuthenticatePending,
		)
	}

	// Two-factor management requires a fully authenticated session.
	twoFactorGroup := e.Group("/auth/2fa")
	twoFactorGroup.Use(r.authMiddleware.Authenticate)
	{
		twoFactorGroup.POST("/setup", r.twoFactorHandler.Setup)
		twoFactorGroup.POST("/verify", r.twoFactorHandler.Verify)
		twoFactorGroup.POST("/disable", r.twoFactorHandler.Disable)
	}

	// Conta Azul integration routes. The authorize redirect and the OAuth
	// callback are reached by plain browser navigation, so they stay outside
	// the authenticated group.
	e.GET("/integracoes/conta-azul/auth", r.integrationHandler.Authorize)
	e.GET("/integracoes/conta-azul/callback", r.integrationHandler.Callback)

	integrationGroup := e.Group("/integracoes/conta-azul")
	integrationGroup.Use(r.authMiddleware.Authenticate)
	{
		integrationGroup.GET("/config", r.integrationHandler.GetConfig)
		integrationGroup.POST("/config", r.integrationHandler.SaveConfig)
		integrationGroup.POST("/proxy", r.integrationHandler.Proxy)
		integrationGroup.POST("/sync-clientes", r.syncHandler.SyncCustomers)
		integrationGroup.POST("/sync-contratos", r.syncHandler.SyncContracts)
	}

	// License listing
	licenseGroup := e.Group("/licencas")
	licenseGroup.Use(r.authMiddleware.Authenticate)
	{
		licenseGroup.GET("", r.licenseHandler.ListLicenses)
	}
}
