// Command haven serves the Haven Hop listings marketplace.
package main

import (
	"context"
	"log/slog"

	"haven/config"
	"haven/internal/delivery"
	"haven/internal/delivery/http"
	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/http/router/handler"
	"haven/internal/delivery/http/session"
	"haven/internal/infra/auth"
	"haven/internal/infra/cache"
	"haven/internal/infra/geocoding"
	logs "haven/internal/infra/log"
	"haven/internal/infra/persistence/mongo"
	"haven/internal/infra/persistence/postgres"
	"haven/internal/infra/pubsub"
	"haven/internal/infra/qrcode"
	"haven/internal/infra/storage"
	"haven/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

//nolint:gochecknoglobals
var (
	identityModule = fx.Module("identity",
		fx.Provide(
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
		),
	)

	catalogModule = fx.Module("catalog",
		fx.Provide(
			mongo.New,
			mongo.NewListingRepository,
			mongo.NewReviewRepository,
			cache.NewRedisClient,
			geocoding.NewGeocoder,
			storage.NewImageStore,
			qrcode.NewQRCodeService,
		),
		pubsub.Module,
	)

	usecaseModule = fx.Module("usecase",
		fx.Provide(
			impl.NewUserService,
			impl.NewListingService,
			impl.NewReviewService,
			impl.NewAccessService,
		),
	)

	webModule = fx.Module("web",
		fx.Provide(
			session.NewManager,
			middleware.NewGuardMiddleware,
			middleware.NewErrorMiddleware,
			handler.NewUserHandler,
			handler.NewListingHandler,
			handler.NewReviewHandler,
			fx.Annotate(http.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
	)
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(config.New, logs.New, context.Background),
		identityModule,
		catalogModule,
		usecaseModule,
		webModule,
		fx.Invoke(startServer),
	).Run()
}

type startServerParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// startServer runs every delivery in the background. The first one to fail
// takes the whole app down through the fx stop hooks.
func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}

			params.Logger.Error("Server exited", slog.Any("error", err))
			if err := params.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("Failed to shut down", slog.Any("error", err))
			}
		}()
	}
}
