package service

import (
	"context"

	"github.com/paulmach/orb"
)

// DefaultPoint is used whenever a location cannot be resolved (New Delhi).
var DefaultPoint = orb.Point{77.209, 28.6139}

// Geocoder resolves free-text locations to coordinates.
type Geocoder interface {
	// Geocode never fails: lookups that error or find nothing yield DefaultPoint.
	Geocode(ctx context.Context, location string) orb.Point
}
