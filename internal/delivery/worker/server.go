// Package worker serves the Pub/Sub push endpoint that keeps listing
// geometry in sync with its free-text location.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"haven/config"
	"haven/internal/delivery"
	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/worker/handler"
	"haven/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type pushServer struct {
	addr   string
	logger *slog.Logger
	http   *http.Server
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer wraps the push routes in an http.Server bound to worker.port.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &pushServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.Worker.Port)),
		logger: params.Logger,
		http: &http.Server{
			Handler:           NewEcho(params),
			ReadHeaderTimeout: params.Cfg.HTTP.Timeouts.ReadHeaderTimeout,
			IdleTimeout:       params.Cfg.HTTP.Timeouts.IdleTimeout,
		},
	}

	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

// NewEcho registers /health and the /push endpoint.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		slogecho.NewWithConfig(params.Logger, slogecho.Config{
			DefaultLevel:     slog.LevelDebug,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithRequestID:    true,
		}),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}

// Serve blocks until the listener fails or stop closes it.
func (s *pushServer) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.addr)
	}

	s.logger.Info("Worker accepting pushes", slog.String("addr", listener.Addr().String()))

	if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *pushServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Draining worker pushes")

	return errors.WithStack(s.http.Shutdown(ctx))
}
