package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"haven/internal/domain/service"

	geo "github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	location *geo.Location
	err      error
	delay    time.Duration
	calls    int
	mu       sync.Mutex
}

func (f *fakeProvider) Geocode(string) (*geo.Location, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	return f.location, f.err
}

func (f *fakeProvider) ReverseGeocode(float64, float64) (*geo.Address, error) {
	return nil, nil
}

type mapCache struct {
	points map[string]orb.Point
}

func (m *mapCache) Get(_ context.Context, location string) (orb.Point, bool) {
	p, ok := m.points[location]

	return p, ok
}

func (m *mapCache) Set(_ context.Context, location string, point orb.Point) {
	m.points[location] = point
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGeocode_FirstCandidateIsLongitudeFirst(t *testing.T) {
	provider := &fakeProvider{location: &geo.Location{Lat: 48.8566, Lng: 2.3522}}
	g := New(provider, nil, time.Second, discardLogger())

	assert.Equal(t, orb.Point{2.3522, 48.8566}, g.Geocode(context.Background(), "Paris"))
}

func TestGeocode_FallsBackToDefaultPoint(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		location string
		timeout  time.Duration
	}{
		{"zero candidates", &fakeProvider{}, "Nowhere", time.Second},
		{"provider error", &fakeProvider{err: errors.New("boom")}, "Paris", time.Second},
		{"timeout", &fakeProvider{location: &geo.Location{Lat: 1, Lng: 2}, delay: 200 * time.Millisecond}, "Paris", 10 * time.Millisecond},
		{"blank text", &fakeProvider{location: &geo.Location{Lat: 1, Lng: 2}}, "   ", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.provider, nil, tt.timeout, discardLogger())

			assert.Equal(t, service.DefaultPoint, g.Geocode(context.Background(), tt.location))
		})
	}
}

func TestGeocode_CanceledContext(t *testing.T) {
	provider := &fakeProvider{location: &geo.Location{Lat: 1, Lng: 2}, delay: 200 * time.Millisecond}
	g := New(provider, nil, 0, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, service.DefaultPoint, g.Geocode(ctx, "Paris"))
}

func TestGeocode_UsesCache(t *testing.T) {
	provider := &fakeProvider{location: &geo.Location{Lat: 34.03, Lng: -118.78}}
	cache := &mapCache{points: map[string]orb.Point{}}
	g := New(provider, cache, time.Second, discardLogger())

	first := g.Geocode(context.Background(), "Malibu")
	second := g.Geocode(context.Background(), "Malibu")

	assert.Equal(t, orb.Point{-118.78, 34.03}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls)
}

func TestGeocode_DefaultPointIsNotCached(t *testing.T) {
	cache := &mapCache{points: map[string]orb.Point{}}
	g := New(&fakeProvider{}, cache, time.Second, discardLogger())

	g.Geocode(context.Background(), "Nowhere")

	assert.Empty(t, cache.points)
}

func TestGeocode_NominatimResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") == "Atlantis" {
			_, _ = w.Write([]byte(`[]`))

			return
		}
		_, _ = w.Write([]byte(`[{"lat":"34.0259","lon":"-118.7798","display_name":"Malibu, California"}]`))
	}))
	defer srv.Close()

	g := New(openstreetmap.GeocoderWithURL(srv.URL+"/"), nil, 2*time.Second, discardLogger())

	point := g.Geocode(context.Background(), "Malibu")
	assert.InDelta(t, -118.7798, point.Lon(), 1e-9)
	assert.InDelta(t, 34.0259, point.Lat(), 1e-9)
	assert.Equal(t, service.DefaultPoint, g.Geocode(context.Background(), "Atlantis"))
}

func TestGeocode_UnreachableRedisIsIgnored(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	provider := &fakeProvider{location: &geo.Location{Lat: 10, Lng: 20}}
	g := New(provider, NewRedisCache(client, 0, discardLogger()), time.Second, discardLogger())

	assert.Equal(t, orb.Point{20, 10}, g.Geocode(context.Background(), "Somewhere"))
}

func TestCacheKey_NormalizesText(t *testing.T) {
	assert.Equal(t, cacheKey("New  York"), cacheKey(" new york "))
	assert.NotEqual(t, cacheKey("New York"), cacheKey("York"))
}

func TestEnsureTrailingSlash(t *testing.T) {
	assert.Equal(t, "http://nominatim.local/", ensureTrailingSlash("http://nominatim.local"))
	assert.Equal(t, "http://nominatim.local/", ensureTrailingSlash("http://nominatim.local/"))
}
