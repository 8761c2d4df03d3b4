package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/petdex"
)

var _ petdex.RoutePlanner = (*RoutePlanner)(nil)

// RoutePlanner is a mock implementation of petdex.RoutePlanner.
type RoutePlanner struct {
	RouteFn func(ctx context.Context, origin, destination petdex.LatLng) (*petdex.Route, error)
}

func (p *RoutePlanner) Route(ctx context.Context, origin, destination petdex.LatLng) (*petdex.Route, error) {
	return p.RouteFn(ctx, origin, destination)
}

var _ petdex.RouteDisplay = (*RouteDisplay)(nil)

// RouteDisplay is a recording implementation of petdex.RouteDisplay. It
// remembers the last route drawn, mimicking a shared display surface.
type RouteDisplay struct {
	mu      sync.Mutex
	current *petdex.Route
	sets    int
	clears  int
}

func (d *RouteDisplay) SetRoute(route *petdex.Route) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = route
	d.sets++
}

func (d *RouteDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = nil
	d.clears++
}

// Current returns the route currently drawn, or nil.
func (d *RouteDisplay) Current() *petdex.Route {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Sets returns how many times a route was drawn.
func (d *RouteDisplay) Sets() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sets
}
