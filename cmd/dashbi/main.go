package main

import (
	"context"
	"log/slog"
	"os"

	"dashbi/config"
	"dashbi/internal/delivery"
	"dashbi/internal/delivery/http"
	httpmiddleware "dashbi/internal/delivery/http/middleware"
	"dashbi/internal/delivery/http/router/handler"
	deliverymiddleware "dashbi/internal/delivery/middleware"
	"dashbi/internal/domain/service"
	"dashbi/internal/infra/auth"
	"dashbi/internal/infra/contaazul"
	logs "dashbi/internal/infra/log"
	"dashbi/internal/infra/persistence/postgres"
	"dashbi/internal/infra/qrcode"
	"dashbi/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewIntegrationRepository,
			postgres.NewCustomerRepository,
			postgres.NewLicenseRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewTOTPService,
			contaazul.NewClient,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.TwoFactor == nil || cfg.TwoFactor.QRSize <= 0 {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.TwoFactor.QRSize, "M")
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewTwoFactorService,
			impl.NewIntegrationService,
			impl.NewSyncService,
			impl.NewLicenseService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewUserHandler,
			handler.NewTwoFactorHandler,
			handler.NewIntegrationHandler,
			handler.NewSyncHandler,
			handler.NewLicenseHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
