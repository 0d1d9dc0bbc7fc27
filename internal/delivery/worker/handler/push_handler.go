// Package handler holds the worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"haven/config"
	deliverycontext "haven/internal/delivery/context"
	"haven/internal/domain/constants"
	"haven/internal/domain/service"
	"haven/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the push envelope Pub/Sub POSTs to the worker.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// errRedeliver marks failures Pub/Sub should retry. Everything else is
// acknowledged so a poison message cannot loop forever.
var errRedeliver = errors.New("redeliver")

type redeliverError struct{ cause error }

func (e redeliverError) Error() string   { return "redeliver: " + e.cause.Error() }
func (e redeliverError) Unwrap() []error { return []error{errRedeliver, e.cause} }

func redeliver(err error) error { return redeliverError{cause: err} }

func shouldRedeliver(err error) bool { return errors.Is(err, errRedeliver) }

func googleIssuer(iss string) bool {
	return iss == "accounts.google.com" || iss == "https://accounts.google.com"
}

// tokenValidator checks a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns listing events into geometry backfills.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	geometry       usecase.GeometryUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Geometry usecase.GeometryUsecase
}

// NewPushHandler requires a Google OIDC token on pushes unless running
// locally or fed by the local HTTP publisher.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config

	return &PushHandler{
		verifyPushAuth: cfg.PubSub != nil &&
			cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
			cfg.Env.Env != constants.EnvLocal,
		validateToken: idtoken.Validate,
		geometry:      params.Geometry,
		logger:        params.Logger,
	}
}

// HandlePush answers 401 for a bad token, 400 for an unreadable envelope,
// 503 to request redelivery and 200 otherwise.
func (h *PushHandler) HandlePush(c echo.Context) error {
	req := c.Request()

	if h.verifyPushAuth {
		if err := h.verifyToken(req); err != nil {
			h.logger.Warn("Rejected push", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("Unreadable push", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := firstNonEmpty(
		msg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(req.Context()),
		uuid.NewString(),
	)
	logger := h.logger.With(slog.String("request_id", requestID))
	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(req.Context(), requestID), logger)

	logger.Info("Handling event",
		slog.String("type", event.Type),
		slog.String("listing_id", event.ListingID),
		slog.String("message_id", msg.Message.MessageID),
	)

	if err := h.handle(ctx, event); err != nil {
		retry := shouldRedeliver(err)
		logger.Error("Event failed",
			slog.String("type", event.Type),
			slog.String("listing_id", event.ListingID),
			slog.Bool("redeliver", retry),
			slog.Any("error", err),
		)
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

func decodePush(c echo.Context) (*PubSubMessage, *service.MarketplaceEvent, error) {
	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		return nil, nil, errors.Wrap(err, "bind envelope")
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode message data")
	}

	var event service.MarketplaceEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "decode marketplace event")
	}

	return &msg, &event, nil
}

func (h *PushHandler) handle(ctx context.Context, event *service.MarketplaceEvent) error {
	switch event.Type {
	case "":
		return errors.New("event without type")
	case service.EventListingCreated, service.EventListingUpdated:
	default:
		return nil
	}

	updated, err := h.geometry.Backfill(ctx, usecase.GeometryBackfillInput{
		ListingID: event.ListingID,
		Location:  event.Location,
		Current:   orb.Point{event.Longitude, event.Latitude},
	})
	if err != nil {
		return redeliver(err)
	}
	if updated {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Listing geometry backfilled",
			slog.String("listing_id", event.ListingID))
	}

	return nil
}

// verifyToken checks the push subscription's OIDC token. Its audience is
// the URL Pub/Sub pushed to.
func (h *PushHandler) verifyToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "validate token")
	}
	if !googleIssuer(payload.Issuer) {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("service account email not verified")
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
