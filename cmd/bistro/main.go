package main

import (
	"context"
	"log/slog"
	"os"

	"bistro/config"
	"bistro/internal/delivery"
	"bistro/internal/delivery/http"
	"bistro/internal/delivery/http/router/handler"
	"bistro/internal/delivery/http/session"
	"bistro/internal/delivery/http/view"
	"bistro/internal/infra/auth"
	"bistro/internal/infra/i18n"
	logs "bistro/internal/infra/log"
	"bistro/internal/infra/persistence/database"
	"bistro/internal/infra/persistence/store"
	"bistro/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
		database.New,
		fx.Annotate(
			database.SQLDB,
			fx.As(new(handler.Pinger)),
		),
		i18n.New,
		view.NewRenderer,
		session.NewCookieManager,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewSessionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewMenuService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPageHandler,
			handler.NewAuthHandler,
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

// startServer serves every delivery once the database hooks have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go serve(ctx, params, delivery)
			}

			return nil
		},
	})
}

func serve(ctx context.Context, params startServerParams, delivery delivery.Delivery) {
	if err := delivery.Serve(ctx); err != nil {
		params.Logger.Error("Failed to start server", slog.Any("error", err))

		// Trigger graceful shutdown to execute all OnStop hooks
		if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
			params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
			os.Exit(1)
		}
	}
}
