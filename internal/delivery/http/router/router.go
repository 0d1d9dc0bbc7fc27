// Package router wires routes, guards and handlers of the web application.
package router

import (
	"net/http"

	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ListingHandler  *handler.ListingHandler
	ReviewHandler   *handler.ReviewHandler
	UserHandler     *handler.UserHandler
	GuardMiddleware *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	listingHandler *handler.ListingHandler
	reviewHandler  *handler.ReviewHandler
	userHandler    *handler.UserHandler
	guard          *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		listingHandler: params.ListingHandler,
		reviewHandler:  params.ReviewHandler,
		userHandler:    params.UserHandler,
		guard:          params.GuardMiddleware,
	}
}

// RegisterRoutes sets up every route. Guards run left to right: authentication,
// then ownership or authorship, then the handler.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth, owner, author := r.guard.RequireAuth, r.guard.RequireOwner, r.guard.RequireReviewAuthor

	e.GET("/health", handler.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/listings")
	})
	e.GET("/uploads/*", r.listingHandler.Image)

	// Account routes
	e.GET("/signup", r.userHandler.SignupForm)
	e.POST("/signup", r.userHandler.Signup)
	e.GET("/login", r.userHandler.LoginForm)
	e.POST("/login", r.userHandler.Login, r.guard.CaptureRedirect)
	e.GET("/logout", r.userHandler.Logout)

	// Listing routes
	listings := e.Group("/listings")
	{
		listings.GET("", r.listingHandler.Index)
		listings.POST("", r.listingHandler.Create, auth)
		listings.GET("/new", r.listingHandler.New, auth)
		listings.GET("/:id", r.listingHandler.Show)
		listings.PUT("/:id", r.listingHandler.Update, auth, owner)
		listings.DELETE("/:id", r.listingHandler.Delete, auth, owner)
		listings.GET("/:id/edit", r.listingHandler.Edit, auth, owner)
		listings.GET("/:id/qrcode", r.listingHandler.QRCode)
	}

	// Review routes
	reviews := listings.Group("/:id/reviews")
	{
		reviews.POST("", r.reviewHandler.Create, auth)
		reviews.DELETE("/:reviewId", r.reviewHandler.Delete, auth, author)
		reviews.GET("", r.reviewHandler.ToListing)
		reviews.GET("/:reviewId", r.reviewHandler.ToListing)
	}
}
