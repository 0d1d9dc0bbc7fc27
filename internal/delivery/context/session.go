package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// echo.Context keys set by the session middleware.
const (
	sessionUserKey = "haven.session_user"
	redirectURLKey = "haven.redirect_url"
)

// SetUserID records the authenticated session user for the rest of the chain.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(sessionUserKey, userID)
}

// GetUserID returns the session user, or uuid.Nil for anonymous requests.
func GetUserID(c echo.Context) uuid.UUID {
	id, ok := c.Get(sessionUserKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return id
}

// SetRedirectURL hands the captured post-login target to the login handler.
func SetRedirectURL(c echo.Context, url string) {
	c.Set(redirectURLKey, url)
}

// GetRedirectURL returns the captured post-login target, or "".
func GetRedirectURL(c echo.Context) string {
	url, _ := c.Get(redirectURLKey).(string)

	return url
}
