package mock

import (
	"context"

	"github.com/fwojciec/petdex"
)

var _ petdex.Geocoder = (*Geocoder)(nil)

// Geocoder is a mock implementation of petdex.Geocoder.
type Geocoder struct {
	GeocodeFn func(ctx context.Context, query string) (*petdex.LatLng, error)
}

func (g *Geocoder) Geocode(ctx context.Context, query string) (*petdex.LatLng, error) {
	return g.GeocodeFn(ctx, query)
}
