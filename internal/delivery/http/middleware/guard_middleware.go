package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "haven/internal/delivery/context"
	"haven/internal/delivery/http/session"
	"haven/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GuardMiddleware applies the access decisions to echo routes.
// Mount order on a route is RequireAuth, then RequireOwner or RequireReviewAuthor.
type GuardMiddleware struct {
	access   usecase.AccessUsecase
	sessions *session.Manager
	logger   *slog.Logger
}

// NewGuardMiddleware creates the guard middleware.
func NewGuardMiddleware(access usecase.AccessUsecase, sessions *session.Manager, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{
		access:   access,
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth lets only logged-in users through and remembers where anonymous ones were going.
func (m *GuardMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.apply(c, m.access.RequireAuthentication(accessRequest(c)), next)
	}
}

// RequireOwner lets only the owner of the :id listing through.
func (m *GuardMiddleware) RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		decision, err := m.access.RequireListingOwner(c.Request().Context(), accessRequest(c))
		if err != nil {
			return errors.WithStack(err)
		}

		return m.apply(c, decision, next)
	}
}

// RequireReviewAuthor lets only the author of the :reviewId review through.
func (m *GuardMiddleware) RequireReviewAuthor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		decision, err := m.access.RequireReviewAuthor(c.Request().Context(), accessRequest(c))
		if err != nil {
			return errors.WithStack(err)
		}

		return m.apply(c, decision, next)
	}
}

// CaptureRedirect copies the session redirect slot into the request for the login handler.
// The slot itself is cleared only when the login succeeds.
func (m *GuardMiddleware) CaptureRedirect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if url := m.sessions.RedirectURL(c); url != "" {
			deliverycontext.SetRedirectURL(c, url)
		}

		return next(c)
	}
}

func (m *GuardMiddleware) apply(c echo.Context, decision usecase.AccessDecision, next echo.HandlerFunc) error {
	if decision.Allowed {
		return next(c)
	}

	if decision.CaptureURL != "" {
		if err := m.sessions.CaptureRedirectURL(c, decision.CaptureURL); err != nil {
			return err
		}
	}
	if decision.Notice != nil {
		if err := m.sessions.Flash(c, string(decision.Notice.Kind), decision.Notice.Message); err != nil {
			return err
		}
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Request stopped by guard",
		slog.String("path", c.Request().URL.Path),
		slog.String("redirect", decision.Redirect),
	)

	return c.Redirect(http.StatusFound, decision.Redirect)
}

func accessRequest(c echo.Context) usecase.AccessRequest {
	return usecase.AccessRequest{
		UserID:    deliverycontext.GetUserID(c),
		URL:       c.Request().URL.RequestURI(),
		ListingID: c.Param("id"),
		ReviewID:  c.Param("reviewId"),
	}
}
