// Package handler contains the HTTP handlers of the web application.
package handler

import (
	"net/http"

	"haven/internal/delivery/http/session"
	"haven/internal/delivery/http/view"
	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pages renders templates with the session-derived layout data and turns
// recoverable errors into notices.
type pages struct {
	sessions *session.Manager
}

func (p pages) render(c echo.Context, name, title string, data any) error {
	flashes, err := p.sessions.PopFlashes(c)
	if err != nil {
		return err
	}

	page := &view.Page{
		Title:      title,
		Flashes:    flashes,
		Categories: entity.Categories,
		Data:       data,
	}
	if identity, ok := p.sessions.Identity(c); ok {
		page.CurrentUser = &identity
	}

	return errors.WithStack(c.Render(http.StatusOK, name, page))
}

// redirect queues a notice and sends the browser to url.
func (p pages) redirect(c echo.Context, kind, message, url string) error {
	if err := p.sessions.Flash(c, kind, message); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, url)
}

// handleError answers recoverable errors with their notice and redirect. Others are returned for the error handler.
func (p pages) handleError(c echo.Context, err error) error {
	if appErr, ok := domainerrors.IsRecoverable(err); ok {
		return p.redirect(c, session.FlashError, appErr.Message(), appErr.Redirect())
	}

	return errors.WithStack(err)
}

// invalid answers a validation failure by sending the user back to the form.
func (p pages) invalid(c echo.Context, url string) error {
	return p.redirect(c, session.FlashError, domainerrors.ErrValidationFailed.Message(), url)
}
