package petdex

import (
	"context"
	"fmt"
	"net/url"
)

// Route is a driving route preview between two points.
type Route struct {
	Origin      LatLng
	Destination LatLng

	// Polyline is the provider's encoded overview geometry.
	Polyline string

	DistanceMeters  int
	DurationSeconds int
	Summary         string
}

// RoutePlanner is the provider boundary for route computation.
type RoutePlanner interface {
	// Route computes a driving route from origin to destination.
	// Returns EUNAVAILABLE when the provider cannot produce a route.
	Route(ctx context.Context, origin, destination LatLng) (*Route, error)
}

// RouteDisplay is the single shared surface a route preview is drawn on.
// At most one route is visible at a time; SetRoute replaces whatever was
// drawn before.
type RouteDisplay interface {
	SetRoute(route *Route)
	Clear()
}

// ExternalMapsURL builds a link that opens turn-by-turn directions to dest
// in the provider's own maps product. The origin parameter is omitted when
// the user position is unknown, letting the external product resolve it.
func ExternalMapsURL(origin *LatLng, dest LatLng) string {
	q := url.Values{}
	q.Set("api", "1")
	if origin != nil {
		q.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	}
	q.Set("destination", fmt.Sprintf("%f,%f", dest.Lat, dest.Lng))
	return "https://www.google.com/maps/dir/?" + q.Encode()
}
