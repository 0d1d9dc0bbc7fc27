package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "haven/internal/delivery/context"
	"haven/internal/delivery/http/session"
	domainerrors "haven/internal/domain/errors"
	mockUC "haven/internal/mocks/usecase"
	"haven/internal/usecase"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type guardFixture struct {
	e        *echo.Echo
	access   *mockUC.MockAccessUsecase
	sessions *session.Manager
	cookie   *http.Cookie
	reached  int
}

func newGuardFixture(t *testing.T) *guardFixture {
	t.Helper()

	f := &guardFixture{
		e:        echo.New(),
		access:   mockUC.NewMockAccessUsecase(t),
		sessions: session.NewManagerWithStore("test_session", sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))),
	}
	guards := NewGuardMiddleware(f.access, f.sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))

	reach := func(c echo.Context) error {
		f.reached++

		return c.String(http.StatusOK, "reached")
	}

	f.e.Use(f.sessions.Middleware())
	f.e.GET("/listings/new", reach, guards.RequireAuth)
	f.e.PUT("/listings/:id", reach, guards.RequireAuth, guards.RequireOwner)
	f.e.DELETE("/listings/:id/reviews/:reviewId", reach, guards.RequireAuth, guards.RequireReviewAuthor)
	f.e.POST("/login", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRedirectURL(c))
	}, guards.CaptureRedirect)
	f.e.GET("/flashes", func(c echo.Context) error {
		flashes, err := f.sessions.PopFlashes(c)
		if err != nil {
			return err
		}

		return c.String(http.StatusOK, strings.Join(flashes.Error, "|"))
	})

	return f
}

func (f *guardFixture) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if f.cookie != nil {
		req.AddCookie(f.cookie)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		f.cookie = cookies[len(cookies)-1]
	}

	return rec
}

func denial(appErr domainerrors.AppError, capture string) usecase.AccessDecision {
	return usecase.AccessDecision{
		Redirect:   appErr.Redirect(),
		Notice:     &usecase.Notice{Kind: domainerrors.NoticeError, Message: appErr.Message()},
		CaptureURL: capture,
	}
}

func TestGuardMiddleware_RequireAuth(t *testing.T) {
	t.Run("allowed request reaches the handler", func(t *testing.T) {
		f := newGuardFixture(t)
		f.access.EXPECT().RequireAuthentication(mock.Anything).Return(usecase.AccessDecision{Allowed: true}).Once()

		rec := f.do(http.MethodGet, "/listings/new")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, f.reached)
	})

	t.Run("denied request is redirected with notice and captured URL", func(t *testing.T) {
		f := newGuardFixture(t)
		f.access.EXPECT().
			RequireAuthentication(usecase.AccessRequest{URL: "/listings/new?from=nav"}).
			Return(denial(domainerrors.ErrAuthenticationRequired, "/listings/new?from=nav")).
			Once()

		rec := f.do(http.MethodGet, "/listings/new?from=nav")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		assert.Zero(t, f.reached)

		assert.Equal(t, "/listings/new?from=nav", f.do(http.MethodPost, "/login").Body.String())
		// Reading the slot does not consume it.
		assert.Equal(t, "/listings/new?from=nav", f.do(http.MethodPost, "/login").Body.String())
		assert.Equal(t, "You must be logged in to do that!", f.do(http.MethodGet, "/flashes").Body.String())
	})
}

func TestGuardMiddleware_RequireOwner(t *testing.T) {
	t.Run("passes route params to the decision", func(t *testing.T) {
		f := newGuardFixture(t)
		f.access.EXPECT().RequireAuthentication(mock.Anything).Return(usecase.AccessDecision{Allowed: true}).Once()
		f.access.EXPECT().
			RequireListingOwner(mock.Anything, mock.MatchedBy(func(req usecase.AccessRequest) bool {
				return req.ListingID == "L1" && req.ReviewID == ""
			})).
			Return(usecase.AccessDecision{Allowed: true}, nil).
			Once()

		rec := f.do(http.MethodPut, "/listings/L1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, f.reached)
	})

	t.Run("non-owner is redirected without capture", func(t *testing.T) {
		f := newGuardFixture(t)
		f.access.EXPECT().RequireAuthentication(mock.Anything).Return(usecase.AccessDecision{Allowed: true}).Once()
		f.access.EXPECT().
			RequireListingOwner(mock.Anything, mock.Anything).
			Return(denial(domainerrors.ErrNotListingOwner, ""), nil).
			Once()

		rec := f.do(http.MethodPut, "/listings/L1")

		assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
		assert.Zero(t, f.reached)
		assert.Empty(t, f.do(http.MethodPost, "/login").Body.String())
		assert.Equal(t, "You are not the owner of this listing", f.do(http.MethodGet, "/flashes").Body.String())
	})

	t.Run("store failure stops the request", func(t *testing.T) {
		f := newGuardFixture(t)
		f.access.EXPECT().RequireAuthentication(mock.Anything).Return(usecase.AccessDecision{Allowed: true}).Once()
		f.access.EXPECT().
			RequireListingOwner(mock.Anything, mock.Anything).
			Return(usecase.AccessDecision{}, errors.New("no reachable servers")).
			Once()

		rec := f.do(http.MethodPut, "/listings/L1")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Zero(t, f.reached)
	})

	t.Run("anonymous request never reaches the ownership check", func(t *testing.T) {
		f := newGuardFixture(t)
		f.access.EXPECT().
			RequireAuthentication(mock.Anything).
			Return(denial(domainerrors.ErrAuthenticationRequired, "/listings/L1")).
			Once()

		rec := f.do(http.MethodPut, "/listings/L1")

		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		f.access.AssertNotCalled(t, "RequireListingOwner", mock.Anything, mock.Anything)
	})
}

func TestGuardMiddleware_RequireReviewAuthor(t *testing.T) {
	f := newGuardFixture(t)
	f.access.EXPECT().RequireAuthentication(mock.Anything).Return(usecase.AccessDecision{Allowed: true}).Twice()
	f.access.EXPECT().
		RequireReviewAuthor(mock.Anything, mock.MatchedBy(func(req usecase.AccessRequest) bool {
			return req.ListingID == "L1" && req.ReviewID == "R1"
		})).
		Return(usecase.AccessDecision{Allowed: true}, nil).
		Once()
	f.access.EXPECT().
		RequireReviewAuthor(mock.Anything, mock.MatchedBy(func(req usecase.AccessRequest) bool {
			return req.ReviewID == "R2"
		})).
		Return(denial(domainerrors.ErrNotReviewAuthor, ""), nil).
		Once()

	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/listings/L1/reviews/R1").Code)

	rec := f.do(http.MethodDelete, "/listings/L1/reviews/R2")
	assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, 1, f.reached)
}
