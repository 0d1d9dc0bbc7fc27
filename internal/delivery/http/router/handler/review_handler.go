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

// ReviewHandler serves review creation and deletion.
type ReviewHandler struct {
	pages
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, sessions *session.Manager, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		pages:  pages{sessions: sessions},
		uc:     uc,
		logger: logger,
	}
}

// Create adds a review by the session user to the :id listing.
func (h *ReviewHandler) Create(c echo.Context) error {
	listingURL := "/listings/" + c.Param("id")

	var input usecase.ReviewInput
	if err := c.Bind(&input); err != nil {
		return h.invalid(c, listingURL)
	}
	if err := c.Validate(&input); err != nil {
		return h.invalid(c, listingURL)
	}

	_, err := h.uc.Create(c.Request().Context(), c.Param("id"), deliverycontext.GetUserID(c), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return h.invalid(c, listingURL)
		}

		return h.handleError(c, err)
	}

	return h.redirect(c, session.FlashSuccess, "New Review Created!", listingURL)
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	listingURL := "/listings/" + c.Param("id")

	err := h.uc.Delete(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"), c.Param("reviewId"))
	if err != nil {
		return h.handleError(c, err)
	}

	return h.redirect(c, session.FlashSuccess, "Review Deleted!", listingURL)
}

// ToListing sends GET requests for review URLs, such as a post-login redirect
// captured from a review form, to the listing page.
func (h *ReviewHandler) ToListing(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/listings/"+c.Param("id"))
}
