package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"haven/config"
	deliverycontext "haven/internal/delivery/context"
	"haven/internal/domain/constants"
	"haven/internal/domain/service"
	mockUC "haven/internal/mocks/usecase"
	"haven/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockGeometryUsecase) {
	t.Helper()

	geometry := mockUC.NewMockGeometryUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:   &config.Config{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Geometry: geometry,
	})

	return h, geometry
}

func pushBody(t *testing.T, event *service.MarketplaceEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/marketplace-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_ListingEventsBackfillGeometry(t *testing.T) {
	for _, eventType := range []string{service.EventListingCreated, service.EventListingUpdated} {
		t.Run(eventType, func(t *testing.T) {
			h, geometry := newTestPushHandler(t)
			geometry.EXPECT().
				Backfill(mock.Anything, usecase.GeometryBackfillInput{
					ListingID: "L1",
					Location:  "Malibu",
					Current:   service.DefaultPoint,
				}).
				Run(func(ctx context.Context, _ usecase.GeometryBackfillInput) {
					assert.Equal(t, "req-7", deliverycontext.GetRequestIDFromContext(ctx))
				}).
				Return(true, nil).
				Once()

			event := &service.MarketplaceEvent{
				Type:      eventType,
				ListingID: "L1",
				Location:  "Malibu",
				Longitude: service.DefaultPoint.Lon(),
				Latitude:  service.DefaultPoint.Lat(),
			}
			rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-7"}), nil)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_Acknowledgement(t *testing.T) {
	t.Run("store failure asks for redelivery", func(t *testing.T) {
		h, geometry := newTestPushHandler(t)
		geometry.EXPECT().Backfill(mock.Anything, mock.Anything).Return(false, errors.New("timeout")).Once()

		event := &service.MarketplaceEvent{Type: service.EventListingCreated, ListingID: "L1", Location: "Malibu"}
		rec := servePush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("review events are acknowledged untouched", func(t *testing.T) {
		h, _ := newTestPushHandler(t)

		event := &service.MarketplaceEvent{Type: service.EventReviewCreated, ListingID: "L1", ReviewID: "R1", Rating: 5}
		rec := servePush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("untyped event is dropped", func(t *testing.T) {
		h, _ := newTestPushHandler(t)

		rec := servePush(h, pushBody(t, &service.MarketplaceEvent{ListingID: "L1"}, nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		h, _ := newTestPushHandler(t)

		assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":`, nil).Code)
		assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`, nil).Code)

		notJSON := base64.StdEncoding.EncodeToString([]byte("listing.created"))
		assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"`+notJSON+`"}}`, nil).Code)
	})
}

func TestPushHandler_VerifiesTokenForGooglePushes(t *testing.T) {
	newVerifyingHandler := func(t *testing.T, issuer string, validateErr error) (*PushHandler, *mockUC.MockGeometryUsecase, *string) {
		geometry := mockUC.NewMockGeometryUsecase(t)
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = constants.EnvProduction
		h := NewPushHandler(PushHandlerParams{
			Config:   cfg,
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
			Geometry: geometry,
		})
		require.True(t, h.verifyPushAuth)

		var audience string
		h.validateToken = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
			audience = aud
			if validateErr != nil {
				return nil, validateErr
			}

			return &idtoken.Payload{Issuer: issuer, Claims: map[string]interface{}{"email_verified": true}}, nil
		}

		return h, geometry, &audience
	}
	body := pushBody(t, &service.MarketplaceEvent{Type: service.EventReviewDeleted, ListingID: "L1"}, nil)
	bearer := http.Header{echo.HeaderAuthorization: {"Bearer signed.jwt.token"}}

	t.Run("valid token", func(t *testing.T) {
		h, _, audience := newVerifyingHandler(t, "https://accounts.google.com", nil)

		rec := servePush(h, body, bearer)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", *audience)
	})

	t.Run("missing header", func(t *testing.T) {
		h, _, _ := newVerifyingHandler(t, "https://accounts.google.com", nil)

		assert.Equal(t, http.StatusUnauthorized, servePush(h, body, nil).Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		h, _, _ := newVerifyingHandler(t, "", errors.New("idtoken: token expired"))

		assert.Equal(t, http.StatusUnauthorized, servePush(h, body, bearer).Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _, _ := newVerifyingHandler(t, "https://issuer.example", nil)

		assert.Equal(t, http.StatusUnauthorized, servePush(h, body, bearer).Code)
	})
}

func TestNewPushHandler_LocalRunsSkipVerification(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvLocal

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})

	assert.False(t, h.verifyPushAuth)
}
