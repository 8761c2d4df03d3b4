package search

import (
	"context"
	"sync"

	"github.com/fwojciec/petdex"
)

// Routes orchestrates driving-route previews onto a shared display surface.
// Previews are last-write-wins: starting a new preview cancels the previous
// in-flight request, and only the newest preview may draw, regardless of
// completion order.
type Routes struct {
	planner petdex.RoutePlanner
	display petdex.RouteDisplay

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewRoutes creates a Routes orchestrator. The display may be nil for
// headless use; previews then only return the computed route.
func NewRoutes(planner petdex.RoutePlanner, display petdex.RouteDisplay) *Routes {
	return &Routes{planner: planner, display: display}
}

// Preview computes a driving route from origin to dest and draws it on the
// shared surface, replacing whatever route was drawn before. A nil origin
// fails immediately with EINVALID and issues no request. Provider failure
// maps to EUNAVAILABLE; the caller owns user-facing messaging.
func (r *Routes) Preview(ctx context.Context, origin *petdex.LatLng, dest petdex.LatLng) (*petdex.Route, error) {
	if origin == nil {
		return nil, petdex.Errorf(petdex.EINVALID, "missing origin: user location is unknown")
	}
	if r.planner == nil {
		return nil, petdex.Errorf(petdex.EINTERNAL, "no route planner configured")
	}

	r.mu.Lock()
	r.seq++
	seq := r.seq
	if r.cancel != nil {
		// Abort the superseded request; its result would be dropped anyway.
		r.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	route, err := r.planner.Route(ctx, *origin, dest)
	if err != nil {
		if ctx.Err() != nil {
			return nil, petdex.Errorf(petdex.EUNAVAILABLE, "route preview superseded")
		}
		return nil, petdex.Errorf(petdex.EUNAVAILABLE, "route unavailable")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if seq == r.seq && r.display != nil {
		r.display.SetRoute(route)
	}
	return route, nil
}

// Clear removes any drawn route and invalidates in-flight previews.
func (r *Routes) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if r.display != nil {
		r.display.Clear()
	}
}
