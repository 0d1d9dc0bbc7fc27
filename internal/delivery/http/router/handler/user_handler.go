package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "haven/internal/delivery/context"
	"haven/internal/delivery/http/session"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const pathListings = "/listings"

// UserHandler serves signup, login and logout.
type UserHandler struct {
	pages
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, sessions *session.Manager, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		pages:  pages{sessions: sessions},
		uc:     uc,
		logger: logger,
	}
}

func (h *UserHandler) SignupForm(c echo.Context) error {
	return h.render(c, "users/signup", "Sign up", nil)
}

// Signup registers the account and logs it in.
func (h *UserHandler) Signup(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return h.invalid(c, "/signup")
	}
	if err := c.Validate(&input); err != nil {
		return h.invalid(c, "/signup")
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return h.invalid(c, "/signup")
		}

		return h.handleError(c, err)
	}

	if err := h.sessions.Establish(c, output.User); err != nil {
		return err
	}

	return h.redirect(c, session.FlashSuccess, "Welcome to Haven Hop!", pathListings)
}

func (h *UserHandler) LoginForm(c echo.Context) error {
	return h.render(c, "users/login", "Login", nil)
}

// Login verifies the credentials, establishes the session and computes the redirect target.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return h.handleError(c, domainerrors.ErrInvalidCredentials)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return h.handleError(c, err)
	}

	target := deliverycontext.GetRedirectURL(c)
	if target == "" {
		target = pathListings
	}

	if err := h.sessions.Establish(c, output.User); err != nil {
		return err
	}

	return h.redirect(c, session.FlashSuccess, "Welcome back to Haven Hop!", target)
}

// Logout forgets the session identity.
func (h *UserHandler) Logout(c echo.Context) error {
	if err := h.sessions.Teardown(c); err != nil {
		return err
	}

	return h.redirect(c, session.FlashSuccess, "you are logged out!", pathListings)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
