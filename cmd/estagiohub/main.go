package main

import (
	"context"
	"log/slog"
	"os"

	"estagiohub/config"
	"estagiohub/internal/delivery"
	"estagiohub/internal/delivery/http"
	httpmiddleware "estagiohub/internal/delivery/http/middleware"
	"estagiohub/internal/delivery/http/router/handler"
	deliverymiddleware "estagiohub/internal/delivery/middleware"
	"estagiohub/internal/domain/service"
	"estagiohub/internal/infra/auth"
	logs "estagiohub/internal/infra/log"
	"estagiohub/internal/infra/mail"
	"estagiohub/internal/infra/organization"
	"estagiohub/internal/infra/persistence/postgres"
	"estagiohub/internal/usecase/impl"

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
			postgres.NewInternshipRepository,
			postgres.NewDocumentRepository,
			postgres.NewTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			newTokenGenerator,
			mail.NewMailerService,
			organization.NewOrganizationResolver,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher, honoring a configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	return auth.NewBcryptHasher()
}

// newTokenGenerator creates the opaque token generator with the configured TTL.
func newTokenGenerator(cfg *config.Config) service.TokenGenerator {
	return auth.NewOpaqueTokenGenerator(cfg.Auth.TokenTTL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewInternshipService,
			impl.NewDocumentService,
			impl.NewOrganizationService,
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
			handler.NewUserHandler,
			handler.NewInternshipHandler,
			handler.NewOrganizationHandler,
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
