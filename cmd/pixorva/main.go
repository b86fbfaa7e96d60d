package main

import (
	"context"
	"log/slog"
	"os"

	"pixorva/config"
	"pixorva/internal/delivery"
	"pixorva/internal/delivery/api"
	"pixorva/internal/delivery/api/middleware"
	"pixorva/internal/delivery/api/router/handler"
	"pixorva/internal/infra/auth"
	"pixorva/internal/infra/firebaseapp"
	"pixorva/internal/infra/identity"
	logs "pixorva/internal/infra/log"
	"pixorva/internal/infra/media"
	"pixorva/internal/infra/persistence"
	"pixorva/internal/infra/pubsub"
	"pixorva/internal/infra/sessionstore"
	"pixorva/internal/session"
	"pixorva/internal/usecase/impl"

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
		injectSession(),
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
		firebaseapp.NewApp,
		firebaseapp.NewAuthClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRepositories,
			sessionstore.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			identity.NewFirebaseIdentityProvider,
			media.NewMediaUploader,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewVerificationService,
			impl.NewProductService,
		),
	)
}

func injectSession() fx.Option {
	return fx.Provide(session.NewManager)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewGuardMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewSellerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
