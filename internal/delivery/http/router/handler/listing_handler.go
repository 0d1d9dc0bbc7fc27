package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"haven/config"
	deliverycontext "haven/internal/delivery/context"
	"haven/internal/delivery/http/session"
	"haven/internal/delivery/http/view"
	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/service"
	"haven/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const formFieldImage = "listing[image]"

// ListingHandler serves the listing pages and their images.
type ListingHandler struct {
	pages
	uc      usecase.ListingUsecase
	qrcodes service.QRCodeService
	images  service.ImageStore
	baseURL string
	logger  *slog.Logger
}

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	Usecase  usecase.ListingUsecase
	QRCodes  service.QRCodeService
	Images   service.ImageStore
	Sessions *session.Manager
	Config   *config.Config
	Logger   *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		pages:   pages{sessions: params.Sessions},
		uc:      params.Usecase,
		qrcodes: params.QRCodes,
		images:  params.Images,
		baseURL: strings.TrimSuffix(params.Config.HTTP.BaseURL, "/"),
		logger:  params.Logger,
	}
}

// Index lists listings, filtered by ?search= or else ?category=.
func (h *ListingHandler) Index(c echo.Context) error {
	filter := entity.ListingFilter{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		Category: entity.Category(c.QueryParam("category")),
	}

	listings, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.render(c, "listings/index", "All Listings", view.IndexData{
		Listings: listings,
		Search:   filter.Search,
		Category: string(filter.Category),
	})
}

func (h *ListingHandler) New(c echo.Context) error {
	return h.render(c, "listings/new", "New Listing", nil)
}

// Create stores a listing owned by the session user.
func (h *ListingHandler) Create(c echo.Context) error {
	input, err := h.bindListing(c)
	if err != nil {
		return h.invalid(c, "/listings/new")
	}
	if input.Image != nil {
		defer closeUpload(input.Image)
	}

	if _, err := h.uc.Create(c.Request().Context(), deliverycontext.GetUserID(c), input); err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return h.invalid(c, "/listings/new")
		}

		return h.handleError(c, err)
	}

	return h.redirect(c, session.FlashSuccess, "New Listing Created!", pathListings)
}

// Show renders a listing with its owner and reviews.
func (h *ListingHandler) Show(c echo.Context) error {
	detail, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	userID := deliverycontext.GetUserID(c)

	return h.render(c, "listings/show", detail.Listing.Title, view.ShowData{
		Detail:  detail,
		IsOwner: detail.Listing.IsOwnedBy(userID),
		UserID:  userID,
	})
}

func (h *ListingHandler) Edit(c echo.Context) error {
	listing, err := h.uc.Find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, "listings/edit", "Edit Listing", listing)
}

// Update overwrites the listing with the submitted form.
func (h *ListingHandler) Update(c echo.Context) error {
	id := c.Param("id")
	editURL := "/listings/" + id + "/edit"

	input, err := h.bindListing(c)
	if err != nil {
		return h.invalid(c, editURL)
	}
	if input.Image != nil {
		defer closeUpload(input.Image)
	}

	if _, err := h.uc.Update(c.Request().Context(), deliverycontext.GetUserID(c), id, input); err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return h.invalid(c, editURL)
		}

		return h.handleError(c, err)
	}

	return h.redirect(c, session.FlashSuccess, "Listing Updated!", "/listings/"+id)
}

func (h *ListingHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id")); err != nil {
		return h.handleError(c, err)
	}

	return h.redirect(c, session.FlashSuccess, "Listing Deleted!", pathListings)
}

// QRCode returns a PNG encoding the public URL of the listing.
func (h *ListingHandler) QRCode(c echo.Context) error {
	listing, err := h.uc.Find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	png, err := h.qrcodes.GenerateListingQR(h.baseURL + "/listings/" + listing.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Image streams an uploaded listing picture.
func (h *ListingHandler) Image(c echo.Context) error {
	reader, contentType, err := h.images.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			return echo.ErrNotFound
		}

		return errors.WithStack(err)
	}
	defer reader.Close()

	return c.Stream(http.StatusOK, contentType, reader)
}

// bindListing reads the listing form and its optional image upload.
func (h *ListingHandler) bindListing(c echo.Context) (*usecase.ListingInput, error) {
	var input usecase.ListingInput
	if err := c.Bind(&input); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := c.Validate(&input); err != nil {
		return nil, err
	}

	fileHeader, err := c.FormFile(formFieldImage)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return &input, nil
		}

		return nil, errors.WithStack(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	input.Image = &service.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Body:        file,
	}

	return &input, nil
}

func closeUpload(upload *service.ImageUpload) {
	if closer, ok := upload.Body.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
