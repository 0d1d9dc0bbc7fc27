package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"haven/config"
	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/http/router"
	"haven/internal/delivery/http/router/handler"
	"haven/internal/delivery/http/session"
	"haven/internal/delivery/http/view"
	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/domain/service"
	mockRepo "haven/internal/mocks/repository"
	mockSvc "haven/internal/mocks/service"
	mockUC "haven/internal/mocks/usecase"
	"haven/internal/usecase"
	"haven/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// browser replays cookies between requests like a real client.
type browser struct {
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		b.cookies[cookie.Name] = cookie
	}

	return rec
}

type harness struct {
	browser     *browser
	listings    *mockUC.MockListingUsecase
	reviews     *mockUC.MockReviewUsecase
	users       *mockUC.MockUserUsecase
	listingRepo *mockRepo.MockListingRepository
	reviewRepo  *mockRepo.MockReviewRepository
	qrcodes     *mockSvc.MockQRCodeService
	images      *mockSvc.MockImageStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.BaseURL = "http://haven.test/"
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Session = config.SessionConfig{Name: "haven_session", Secret: "0123456789abcdef0123456789abcdef", MaxAge: time.Hour}

	h := &harness{
		listings:    mockUC.NewMockListingUsecase(t),
		reviews:     mockUC.NewMockReviewUsecase(t),
		users:       mockUC.NewMockUserUsecase(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		qrcodes:     mockSvc.NewMockQRCodeService(t),
		images:      mockSvc.NewMockImageStore(t),
	}

	sessions := session.NewManager(cfg)
	access := impl.NewAccessService(impl.AccessServiceParams{
		ListingRepo: h.listingRepo,
		ReviewRepo:  h.reviewRepo,
		Logger:      logger,
	})

	renderer, err := view.New()
	require.NoError(t, err)

	e := NewEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		Sessions:        sessions,
		ErrorMiddleware: middleware.NewErrorMiddleware(sessions, logger),
		RouterParams: router.RouterParams{
			ListingHandler: handler.NewListingHandler(handler.ListingHandlerParams{
				Usecase:  h.listings,
				QRCodes:  h.qrcodes,
				Images:   h.images,
				Sessions: sessions,
				Config:   cfg,
				Logger:   logger,
			}),
			ReviewHandler:   handler.NewReviewHandler(h.reviews, sessions, logger),
			UserHandler:     handler.NewUserHandler(h.users, sessions, logger),
			GuardMiddleware: middleware.NewGuardMiddleware(access, sessions, logger),
		},
	}, renderer)

	h.browser = &browser{e: e, cookies: map[string]*http.Cookie{}}

	return h
}

func (h *harness) login(t *testing.T, user *entity.User) *httptest.ResponseRecorder {
	t.Helper()

	h.users.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: user.Username, Password: "secret"}).
		Return(&usecase.LoginOutput{User: user}, nil).
		Once()

	rec := h.browser.do(http.MethodPost, "/login", url.Values{"username": {user.Username}, "password": {"secret"}})
	require.Equal(t, http.StatusFound, rec.Code)

	return rec
}

// indexPage renders /listings and returns its body, which carries pending notices.
func (h *harness) indexPage(t *testing.T) string {
	t.Helper()

	h.listings.EXPECT().List(mock.Anything, entity.ListingFilter{}).Return([]*entity.Listing{}, nil).Once()
	rec := h.browser.do(http.MethodGet, "/listings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func listingForm(title string) url.Values {
	return url.Values{
		"listing[title]":       {title},
		"listing[description]": {"Sea view"},
		"listing[price]":       {"99"},
		"listing[location]":    {"Malibu"},
		"listing[country]":     {"United States"},
		"listing[category]":    {"Amazing Pools"},
	}
}

var (
	alice = &entity.User{ID: uuid.MustParse("0b6f8f5e-8b53-4ad4-9a3e-9d0a4c4f0a11"), Username: "alice"}
	bob   = &entity.User{ID: uuid.MustParse("5d1c3c0e-2f49-4a55-8d8a-1d9f3b7e6b22"), Username: "bob"}
)

func TestGuards_UnauthenticatedRequestsRedirectToLoginAndComeBack(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		form   url.Values
	}{
		{"new listing form", http.MethodGet, "/listings/new", nil},
		{"create listing", http.MethodPost, "/listings", listingForm("Villa")},
		{"create review", http.MethodPost, "/listings/L1/reviews", url.Values{"review[body]": {"hi"}, "review[rating]": {"4"}}},
		{"edit listing", http.MethodGet, "/listings/L1/edit", nil},
		{"update listing", http.MethodPost, "/listings/L1?_method=PUT", listingForm("Villa")},
		{"delete listing", http.MethodPost, "/listings/L1?_method=DELETE", nil},
		{"delete review", http.MethodPost, "/listings/L1/reviews/R1?_method=DELETE", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			rec := h.browser.do(tt.method, tt.target, tt.form)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

			loginPage := h.browser.do(http.MethodGet, "/login", nil)
			assert.Contains(t, loginPage.Body.String(), "You must be logged in to do that!")

			rec = h.login(t, bob)
			assert.Equal(t, tt.target, rec.Header().Get(echo.HeaderLocation))

			// The captured URL is used once.
			h.browser.do(http.MethodGet, "/logout", nil)
			rec = h.login(t, bob)
			assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestGuards_OwnershipRequiredForListingMutations(t *testing.T) {
	listing := &entity.Listing{ID: "L1", Title: "Villa", OwnerID: alice.ID}

	t.Run("non-owner is rejected", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, bob)
		h.listingRepo.EXPECT().FindByID(mock.Anything, "L1").Return(listing, nil).Twice()

		rec := h.browser.do(http.MethodPost, "/listings/L1?_method=PUT", listingForm("Stolen"))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, h.indexPage(t), "You are not the owner of this listing")

		rec = h.browser.do(http.MethodPost, "/listings/L1?_method=DELETE", nil)
		assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("owner updates", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, alice)
		h.listingRepo.EXPECT().FindByID(mock.Anything, "L1").Return(listing, nil).Once()
		h.listings.EXPECT().
			Update(mock.Anything, alice.ID, "L1", mock.MatchedBy(func(in *usecase.ListingInput) bool {
				return in.Title == "Villa Renovated" && in.Price == 99 && in.Category == "Amazing Pools" && in.Image == nil
			})).
			Return(listing, nil).
			Once()

		rec := h.browser.do(http.MethodPost, "/listings/L1?_method=PUT", listingForm("Villa Renovated"))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/listings/L1", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("owner deletes", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, alice)
		h.listingRepo.EXPECT().FindByID(mock.Anything, "L1").Return(listing, nil).Once()
		h.listings.EXPECT().Delete(mock.Anything, alice.ID, "L1").Return(nil).Once()

		rec := h.browser.do(http.MethodPost, "/listings/L1?_method=DELETE", nil)
		assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, h.indexPage(t), "Listing Deleted!")
	})

	t.Run("missing listing", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, alice)
		h.listingRepo.EXPECT().FindByID(mock.Anything, "gone").Return(nil, repository.ErrListingNotFound).Once()

		rec := h.browser.do(http.MethodGet, "/listings/gone/edit", nil)
		assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, h.indexPage(t), "Listing you requested for does not exist!")
	})

	t.Run("store failure", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, alice)
		h.listingRepo.EXPECT().FindByID(mock.Anything, "L1").Return(nil, errors.New("server selection timeout")).Once()

		rec := h.browser.do(http.MethodGet, "/listings/L1/edit", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestScenario_ReviewDeletedOnlyByItsAuthor(t *testing.T) {
	h := newHarness(t)
	review := &entity.Review{ID: "R1", Body: "Lovely", Rating: 4, AuthorID: bob.ID}

	h.login(t, bob)
	h.reviews.EXPECT().
		Create(mock.Anything, "L1", bob.ID, &usecase.ReviewInput{Body: "Lovely", Rating: 4}).
		Return(review, nil).
		Once()
	rec := h.browser.do(http.MethodPost, "/listings/L1/reviews", url.Values{"review[body]": {"Lovely"}, "review[rating]": {"4"}})
	assert.Equal(t, "/listings/L1", rec.Header().Get(echo.HeaderLocation))

	h.reviewRepo.EXPECT().FindByID(mock.Anything, "R1").Return(review, nil).Twice()

	h.browser.do(http.MethodGet, "/logout", nil)
	h.login(t, alice)
	rec = h.browser.do(http.MethodPost, "/listings/L1/reviews/R1?_method=DELETE", nil)
	assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, h.indexPage(t), "You are not the author of this review")

	h.browser.do(http.MethodGet, "/logout", nil)
	h.login(t, bob)
	h.reviews.EXPECT().Delete(mock.Anything, bob.ID, "L1", "R1").Return(nil).Once()
	rec = h.browser.do(http.MethodPost, "/listings/L1/reviews/R1?_method=DELETE", nil)
	assert.Equal(t, "/listings/L1", rec.Header().Get(echo.HeaderLocation))
}

func TestReviewDelete_ThroughAnotherListing(t *testing.T) {
	h := newHarness(t)
	review := &entity.Review{ID: "R1", Body: "Lovely", Rating: 4, AuthorID: bob.ID}

	h.login(t, bob)
	h.reviewRepo.EXPECT().FindByID(mock.Anything, "R1").Return(review, nil).Once()
	h.reviews.EXPECT().
		Delete(mock.Anything, bob.ID, "L2", "R1").
		Return(domainerrors.ErrReviewNotFound.WrapMessage("review R1 on listing L2")).
		Once()

	rec := h.browser.do(http.MethodPost, "/listings/L2/reviews/R1?_method=DELETE", nil)

	assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
	page := h.indexPage(t)
	assert.Contains(t, page, "Review you requested for does not exist!")
	assert.NotContains(t, page, "Review Deleted!")
}

func TestReviewCreate_BindsReviewBody(t *testing.T) {
	h := newHarness(t)
	h.login(t, bob)
	h.reviews.EXPECT().
		Create(mock.Anything, "L1", bob.ID, &usecase.ReviewInput{Body: "Lovely", Rating: 4}).
		Return(&entity.Review{ID: "R1", Body: "Lovely", Rating: 4, AuthorID: bob.ID}, nil).
		Once()

	rec := h.browser.do(http.MethodPost, "/listings/L1/reviews", url.Values{"review[body]": {"Lovely"}, "review[rating]": {"4"}})

	assert.Equal(t, "/listings/L1", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, h.indexPage(t), "New Review Created!")
}

func TestReviewCreate_InvalidRatingGoesBackToListing(t *testing.T) {
	h := newHarness(t)
	h.login(t, bob)

	rec := h.browser.do(http.MethodPost, "/listings/L1/reviews", url.Values{"review[body]": {"x"}, "review[rating]": {"9"}})

	assert.Equal(t, "/listings/L1", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, h.indexPage(t), domainerrors.ErrValidationFailed.Message())
}

func TestReviewCreate_MissingListing(t *testing.T) {
	h := newHarness(t)
	h.login(t, bob)
	h.reviews.EXPECT().
		Create(mock.Anything, "L404", bob.ID, mock.Anything).
		Return(nil, domainerrors.ErrListingNotFound.WrapMessage("listing L404")).
		Once()

	rec := h.browser.do(http.MethodPost, "/listings/L404/reviews", url.Values{"review[body]": {"x"}, "review[rating]": {"3"}})

	assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, h.indexPage(t), "Listing you requested for does not exist!")
}

func TestListingCreate(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, alice)
		h.listings.EXPECT().
			Create(mock.Anything, alice.ID, mock.MatchedBy(func(in *usecase.ListingInput) bool {
				return in.Title == "Beach House" && in.Location == "Malibu"
			})).
			Return(&entity.Listing{ID: "L9"}, nil).
			Once()

		rec := h.browser.do(http.MethodPost, "/listings", listingForm("Beach House"))
		assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, h.indexPage(t), "New Listing Created!")
	})

	t.Run("missing title returns to the form", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, alice)

		rec := h.browser.do(http.MethodPost, "/listings", listingForm(""))
		assert.Equal(t, "/listings/new", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("unknown category returns to the form", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, alice)
		form := listingForm("Cave")
		form.Set("listing[category]", "Caves")

		rec := h.browser.do(http.MethodPost, "/listings", form)
		assert.Equal(t, "/listings/new", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestListingIndex_PassesFilters(t *testing.T) {
	h := newHarness(t)
	h.listings.EXPECT().
		List(mock.Anything, entity.ListingFilter{Search: "villa", Category: entity.CategoryCastles}).
		Return([]*entity.Listing{{ID: "L1", Title: "Villa Rosa"}}, nil).
		Once()

	rec := h.browser.do(http.MethodGet, "/listings?search=villa&category=Castles", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Villa Rosa")
}

func TestListingShow(t *testing.T) {
	t.Run("renders detail", func(t *testing.T) {
		h := newHarness(t)
		h.listings.EXPECT().Get(mock.Anything, "L1").Return(&entity.ListingDetail{
			Listing: &entity.Listing{ID: "L1", Title: "Villa Rosa", OwnerID: alice.ID},
			Owner:   alice,
		}, nil).Once()

		rec := h.browser.do(http.MethodGet, "/listings/L1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Owned by <i>alice</i>")
	})

	t.Run("missing listing redirects to index with notice", func(t *testing.T) {
		h := newHarness(t)
		h.listings.EXPECT().Get(mock.Anything, "nope").Return(nil, domainerrors.ErrListingNotFound.WrapMessage("listing nope")).Once()

		rec := h.browser.do(http.MethodGet, "/listings/nope", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, h.indexPage(t), "Listing you requested for does not exist!")
	})
}

func TestPersistenceFailureRendersErrorPage(t *testing.T) {
	h := newHarness(t)
	h.listings.EXPECT().List(mock.Anything, entity.ListingFilter{}).Return(nil, errors.New("connection refused")).Once()

	rec := h.browser.do(http.MethodGet, "/listings", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestSignup(t *testing.T) {
	form := url.Values{"username": {"alice"}, "email": {"alice@example.com"}, "password": {"secret"}}

	t.Run("establishes a session", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().
			RegisterUser(mock.Anything, &usecase.RegisterUserInput{Username: "alice", Email: "alice@example.com", Password: "secret"}).
			Return(&usecase.RegisterOutput{User: alice}, nil).
			Once()

		rec := h.browser.do(http.MethodPost, "/signup", form)
		assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))

		body := h.indexPage(t)
		assert.Contains(t, body, "Welcome to Haven Hop!")
		assert.Contains(t, body, `<span class="user">alice</span>`)
	})

	t.Run("duplicate username", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().
			RegisterUser(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "tx")).
			Once()

		rec := h.browser.do(http.MethodPost, "/signup", form)
		assert.Equal(t, "/signup", rec.Header().Get(echo.HeaderLocation))

		page := h.browser.do(http.MethodGet, "/signup", nil)
		assert.Contains(t, page.Body.String(), "A user with the given username is already registered")
	})

	t.Run("invalid email", func(t *testing.T) {
		h := newHarness(t)
		bad := url.Values{"username": {"alice"}, "email": {"nope"}, "password": {"secret"}}

		rec := h.browser.do(http.MethodPost, "/signup", bad)
		assert.Equal(t, "/signup", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := newHarness(t)
	h.users.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")).Once()

	rec := h.browser.do(http.MethodPost, "/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	page := h.browser.do(http.MethodGet, "/login", nil)
	assert.Contains(t, page.Body.String(), "Password or username is incorrect")
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	h.login(t, alice)

	rec := h.browser.do(http.MethodGet, "/logout", nil)
	assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))

	body := h.indexPage(t)
	assert.Contains(t, body, "you are logged out!")
	assert.NotContains(t, body, `<span class="user">`)
}

func TestListingQRCode(t *testing.T) {
	h := newHarness(t)
	h.listings.EXPECT().Find(mock.Anything, "L1").Return(&entity.Listing{ID: "L1"}, nil).Once()
	h.qrcodes.EXPECT().GenerateListingQR("http://haven.test/listings/L1").Return([]byte("png-bytes"), nil).Once()

	rec := h.browser.do(http.MethodGet, "/listings/L1/qrcode", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestUploads(t *testing.T) {
	h := newHarness(t)
	h.images.EXPECT().
		Open(mock.Anything, "listings/a.jpg").
		Return(io.NopCloser(strings.NewReader("jpeg")), "image/jpeg", nil).
		Once()
	h.images.EXPECT().
		Open(mock.Anything, "listings/missing.jpg").
		Return(nil, "", service.ErrImageNotFound).
		Once()

	rec := h.browser.do(http.MethodGet, "/uploads/listings/a.jpg", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg", rec.Body.String())

	rec = h.browser.do(http.MethodGet, "/uploads/listings/missing.jpg", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRootAndHealth(t *testing.T) {
	h := newHarness(t)

	rec := h.browser.do(http.MethodGet, "/", nil)
	assert.Equal(t, "/listings", rec.Header().Get(echo.HeaderLocation))

	rec = h.browser.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = h.browser.do(http.MethodGet, "/listings/L1/reviews", nil)
	assert.Equal(t, "/listings/L1", rec.Header().Get(echo.HeaderLocation))
}

func TestRequestIDHeader(t *testing.T) {
	h := newHarness(t)

	rec := h.browser.do(http.MethodGet, "/health", nil)

	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
