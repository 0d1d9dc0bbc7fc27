// Package geocoding resolves listing locations to coordinates.
package geocoding

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"haven/config"
	deliverycontext "haven/internal/delivery/context"
	"haven/internal/domain/service"

	geo "github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ErrNoCandidates is logged when the provider finds nothing for a location.
var ErrNoCandidates = errors.New("no geocoding candidates")

// ResultCache remembers resolved points. Implementations swallow their own failures.
type ResultCache interface {
	Get(ctx context.Context, location string) (orb.Point, bool)
	Set(ctx context.Context, location string, point orb.Point)
}

type geocoder struct {
	provider geo.Geocoder
	cache    ResultCache
	timeout  time.Duration
	logger   *slog.Logger
}

// Params holds dependencies for the geocoder, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Redis  *redis.Client `optional:"true"`
	Logger *slog.Logger
}

// NewGeocoder builds the Nominatim-backed geocoder, cached in Redis when a client is available.
func NewGeocoder(params Params) service.Geocoder {
	cfg := params.Config.Geocoding

	provider := openstreetmap.Geocoder()
	if cfg.NominatimURL != "" {
		provider = openstreetmap.GeocoderWithURL(ensureTrailingSlash(cfg.NominatimURL))
	}

	var cache ResultCache
	if params.Redis != nil {
		cache = NewRedisCache(params.Redis, cfg.CacheTTL, params.Logger)
	}

	return New(provider, cache, cfg.Timeout, params.Logger)
}

// New wraps any geo-golang provider. cache may be nil.
func New(provider geo.Geocoder, cache ResultCache, timeout time.Duration, logger *slog.Logger) service.Geocoder {
	return &geocoder{
		provider: provider,
		cache:    cache,
		timeout:  timeout,
		logger:   logger,
	}
}

func (g *geocoder) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Geocode returns the first candidate for location, or service.DefaultPoint.
func (g *geocoder) Geocode(ctx context.Context, location string) orb.Point {
	location = strings.TrimSpace(location)
	if location == "" {
		return service.DefaultPoint
	}

	if g.cache != nil {
		if point, ok := g.cache.Get(ctx, location); ok {
			return point
		}
	}

	point, err := g.lookup(ctx, location)
	if err != nil {
		g.log(ctx).Warn("Geocoding failed, using default point",
			slog.String("location", location),
			slog.Any("error", err),
		)

		return service.DefaultPoint
	}

	if g.cache != nil {
		g.cache.Set(ctx, location, point)
	}

	return point
}

type lookupResult struct {
	location *geo.Location
	err      error
}

// lookup runs the provider call under ctx and the configured timeout.
// geo-golang providers take no context, so the call is raced against it.
func (g *geocoder) lookup(ctx context.Context, location string) (orb.Point, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	done := make(chan lookupResult, 1)
	go func() {
		loc, err := g.provider.Geocode(location)
		done <- lookupResult{location: loc, err: err}
	}()

	select {
	case <-ctx.Done():
		return orb.Point{}, errors.Wrap(ctx.Err(), "geocoding aborted")
	case res := <-done:
		if res.err != nil {
			return orb.Point{}, errors.Wrap(res.err, "provider error")
		}
		if res.location == nil {
			return orb.Point{}, ErrNoCandidates
		}

		return orb.Point{res.location.Lng, res.location.Lat}, nil
	}
}

func ensureTrailingSlash(url string) string {
	if strings.HasSuffix(url, "/") {
		return url
	}

	return url + "/"
}
