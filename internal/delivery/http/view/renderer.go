// Package view renders the server-side HTML pages.
package view

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"io/fs"
	"math"
	"path"
	"strconv"
	"strings"

	"haven/internal/delivery/http/session"
	"haven/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// IndexData backs listings/index.
type IndexData struct {
	Listings []*entity.Listing
	Search   string
	Category string
}

// ShowData backs listings/show.
type ShowData struct {
	Detail  *entity.ListingDetail
	IsOwner bool
	// UserID is uuid.Nil for anonymous visitors.
	UserID uuid.UUID
}

// Page is the data handed to every template.
type Page struct {
	Title       string
	CurrentUser *session.Identity
	Flashes     session.Flashes
	Categories  []entity.Category
	Data        any
}

// Renderer implements echo.Renderer. Templates are named by their path below
// templates/ without extension, e.g. "listings/show".
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"price":       formatPrice,
		"coordinates": coordinatesJSON,
		"stars":       stars,
	}

	pages := make(map[string]*template.Template)
	err := fs.WalkDir(templateFS, "templates", func(file string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || file == layoutFile || path.Ext(file) != ".html" {
			return err
		}

		tmpl, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return errors.Wrapf(err, "failed to parse %s", file)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		pages[name] = tmpl

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Renderer{pages: pages}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown template %q", name)
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, "layout", data))
}

// formatPrice groups the whole part of a price in thousands, e.g. ₹1,200.
func formatPrice(price float64) string {
	digits := []byte(strconv.FormatInt(int64(math.Abs(price)), 10))

	var grouped []byte
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, digit)
	}

	return "₹" + string(grouped)
}

// coordinatesJSON renders [lng, lat] for the map script.
func coordinatesJSON(point orb.Point) string {
	b, err := json.Marshal([]float64{point.Lon(), point.Lat()})
	if err != nil {
		return "[]"
	}

	return string(b)
}

func stars(rating int) string {
	if rating < entity.MinRating || rating > entity.MaxRating {
		return ""
	}

	return strings.Repeat("★", rating) + strings.Repeat("☆", entity.MaxRating-rating)
}
