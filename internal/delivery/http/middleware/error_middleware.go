package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "haven/internal/delivery/context"
	"haven/internal/delivery/http/session"
	"haven/internal/delivery/http/view"
	domainerrors "haven/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders failures that handlers did not recover from.
type ErrorMiddleware struct {
	sessions *session.Manager
	logger   *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(sessions *session.Manager, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Recoverable errors become a notice on the page they redirect to.
	if appErr, ok := domainerrors.IsRecoverable(err); ok {
		if flashErr := m.sessions.Flash(c, session.FlashError, appErr.Message()); flashErr == nil {
			_ = c.Redirect(http.StatusFound, appErr.Redirect())

			return
		}
	}

	status := domainerrors.ErrInternalError.HTTPCode()
	message := domainerrors.ErrInternalError.Message()
	code := domainerrors.ErrInternalError.ErrorCode()
	details := ""

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.HTTPCode()
		message = appErr.Message()
		code = appErr.ErrorCode()
		details = appErr.Details()
	case errors.As(err, &httpErr):
		status = httpErr.Code
		code = ""
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("error_code", code),
			slog.String("details", details),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	page := &view.Page{Title: http.StatusText(status), Data: message}
	if identity, ok := m.sessions.Identity(c); ok {
		page.CurrentUser = &identity
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}
	if renderErr := c.Render(status, "error", page); renderErr != nil {
		logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(status, message)
	}
}
