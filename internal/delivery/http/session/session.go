// Package session keeps the login identity, flash notices and the post-login
// redirect slot in a gorilla cookie session.
package session

import (
	"net/http"

	"haven/config"
	"haven/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	keyUserID      = "user_id"
	keyUsername    = "username"
	keyRedirectURL = "redirect_url"
)

// Flash buckets rendered by the layout.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Identity is the logged-in user as remembered by the session.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// Flashes are the notices consumed by one rendered page.
type Flashes struct {
	Success []string
	Error   []string
}

// Manager reads and writes the request session.
type Manager struct {
	name  string
	store sessions.Store
}

// NewManager builds the cookie store from the session config section.
func NewManager(cfg *config.Config) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return NewManagerWithStore(cfg.Session.Name, store)
}

// NewManagerWithStore uses an explicit store.
func NewManagerWithStore(name string, store sessions.Store) *Manager {
	return &Manager{name: name, store: store}
}

// Middleware makes the store available to the handlers.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return echosession.Middleware(m.store)
}

func (m *Manager) get(c echo.Context) (*sessions.Session, error) {
	sess, err := echosession.Get(m.name, c)
	if err != nil {
		// A cookie signed with an old secret decodes as an error but still yields a fresh session.
		if sess != nil {
			return sess, nil
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return sess, nil
}

func (m *Manager) save(c echo.Context, sess *sessions.Session) error {
	return errors.Wrap(sess.Save(c.Request(), c.Response()), "failed to save session")
}

// Identity returns the remembered user, ok is false for anonymous sessions.
func (m *Manager) Identity(c echo.Context) (Identity, bool) {
	sess, err := m.get(c)
	if err != nil {
		return Identity{}, false
	}

	raw, _ := sess.Values[keyUserID].(string)
	userID, err := uuid.Parse(raw)
	if err != nil || userID == uuid.Nil {
		return Identity{}, false
	}
	username, _ := sess.Values[keyUsername].(string)

	return Identity{UserID: userID, Username: username}, true
}

// Establish logs the user in and consumes the redirect slot.
func (m *Manager) Establish(c echo.Context, user *entity.User) error {
	sess, err := m.get(c)
	if err != nil {
		return err
	}

	sess.Values[keyUserID] = user.ID.String()
	sess.Values[keyUsername] = user.Username
	delete(sess.Values, keyRedirectURL)

	return m.save(c, sess)
}

// Teardown forgets the identity. The cookie itself survives to carry the logout notice.
func (m *Manager) Teardown(c echo.Context) error {
	sess, err := m.get(c)
	if err != nil {
		return err
	}

	delete(sess.Values, keyUserID)
	delete(sess.Values, keyUsername)

	return m.save(c, sess)
}

// CaptureRedirectURL remembers where to send the user after the next successful login.
func (m *Manager) CaptureRedirectURL(c echo.Context, url string) error {
	sess, err := m.get(c)
	if err != nil {
		return err
	}

	sess.Values[keyRedirectURL] = url

	return m.save(c, sess)
}

// RedirectURL reads the redirect slot without consuming it.
func (m *Manager) RedirectURL(c echo.Context) string {
	sess, err := m.get(c)
	if err != nil {
		return ""
	}

	url, _ := sess.Values[keyRedirectURL].(string)

	return url
}

// Flash queues a notice for the next rendered page.
func (m *Manager) Flash(c echo.Context, kind, message string) error {
	sess, err := m.get(c)
	if err != nil {
		return err
	}

	sess.AddFlash(message, kind)

	return m.save(c, sess)
}

// PopFlashes consumes every queued notice.
func (m *Manager) PopFlashes(c echo.Context) (Flashes, error) {
	sess, err := m.get(c)
	if err != nil {
		return Flashes{}, err
	}

	flashes := Flashes{
		Success: flashStrings(sess.Flashes(FlashSuccess)),
		Error:   flashStrings(sess.Flashes(FlashError)),
	}
	if len(flashes.Success) == 0 && len(flashes.Error) == 0 {
		return flashes, nil
	}

	return flashes, m.save(c, sess)
}

func flashStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}

	return out
}
