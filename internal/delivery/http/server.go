package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"haven/config"
	"haven/internal/delivery"
	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/http/router"
	"haven/internal/delivery/http/session"
	"haven/internal/delivery/http/validator"
	"haven/internal/delivery/http/view"
	"haven/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// methodOverrideParam carries PUT and DELETE for HTML forms, in the query string or the form body.
const methodOverrideParam = "_method"

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	Sessions        *session.Manager
	ErrorMiddleware *middleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	renderer, err := view.New()
	if err != nil {
		return nil, err
	}

	echoServer := NewEcho(params, renderer)

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho assembles the middleware chain and routes.
func NewEcho(params ServerParams, renderer echo.Renderer) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Both run before routing: the override reads the (size limited) form body
	// and the overridden method selects the route.
	echoServer.Pre(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))
	echoServer.Pre(echomiddleware.MethodOverrideWithConfig(echomiddleware.MethodOverrideConfig{
		Getter: methodFromQueryOrForm,
	}))

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Access log
	echoServer.Use(slogecho.NewWithConfig(params.Logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	}))

	// 4. Cookie session, then the user it identifies
	echoServer.Use(params.Sessions.Middleware())
	echoServer.Use(middleware.NewSessionUserMiddleware(params.Sessions).Process)

	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()
	echoServer.Renderer = renderer

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	return echoServer
}

func methodFromQueryOrForm(c echo.Context) string {
	if method := c.QueryParam(methodOverrideParam); method != "" {
		return method
	}

	return c.FormValue(methodOverrideParam)
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
