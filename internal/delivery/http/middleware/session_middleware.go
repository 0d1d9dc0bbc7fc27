package middleware

import (
	"log/slog"

	deliverycontext "haven/internal/delivery/context"
	"haven/internal/delivery/http/session"

	"github.com/labstack/echo/v4"
)

// SessionUserMiddleware resolves the session identity for guards and handlers.
type SessionUserMiddleware struct {
	sessions *session.Manager
}

// NewSessionUserMiddleware creates the session user middleware.
func NewSessionUserMiddleware(sessions *session.Manager) *SessionUserMiddleware {
	return &SessionUserMiddleware{sessions: sessions}
}

// Process must run after the session store middleware and the request ID middleware.
func (m *SessionUserMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := m.sessions.Identity(c)
		if !ok {
			return next(c)
		}

		deliverycontext.SetUserID(c, identity.UserID)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", identity.UserID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
