// Command worker consumes marketplace events pushed by Pub/Sub and fills in
// listing geometry that the web request could not resolve.
package main

import (
	"context"
	"log/slog"

	"haven/config"
	"haven/internal/delivery"
	"haven/internal/delivery/worker"
	"haven/internal/delivery/worker/handler"
	"haven/internal/infra/cache"
	"haven/internal/infra/geocoding"
	logs "haven/internal/infra/log"
	"haven/internal/infra/persistence/mongo"
	"haven/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		fx.Module("storage",
			fx.Provide(mongo.New, mongo.NewListingRepository),
		),
		fx.Module("geometry",
			fx.Provide(cache.NewRedisClient, geocoding.NewGeocoder, impl.NewGeometryService),
		),
		fx.Provide(
			handler.NewPushHandler,
			worker.NewServer,
		),
		fx.Invoke(serve),
	).Run()
}

type serveParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     delivery.Delivery
}

// serve runs the push server beside the fx lifecycle and shuts the app down
// when it exits with an error.
func serve(ctx context.Context, params serveParams) {
	go func() {
		err := params.Server.Serve(ctx)
		if err == nil {
			return
		}

		params.Logger.Error("Worker server stopped", slog.Any("error", err))
		if err := params.Shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
			params.Logger.Error("Failed to shut down", slog.Any("error", err))
		}
	}()
}
