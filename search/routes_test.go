package search_test

import (
	"context"
	"testing"

	"github.com/fwojciec/petdex"
	"github.com/fwojciec/petdex/mock"
	"github.com/fwojciec/petdex/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_PreviewRequiresKnownOrigin(t *testing.T) {
	t.Parallel()

	called := false
	planner := &mock.RoutePlanner{
		RouteFn: func(_ context.Context, _, _ petdex.LatLng) (*petdex.Route, error) {
			called = true
			return &petdex.Route{}, nil
		},
	}
	r := search.NewRoutes(planner, &mock.RouteDisplay{})

	_, err := r.Preview(context.Background(), nil, petdex.LatLng{Lat: 1, Lng: 1})

	assert.Equal(t, petdex.EINVALID, petdex.ErrorCode(err))
	assert.False(t, called, "no request may be issued without an origin")
}

func TestRoutes_PreviewDrawsOnSharedSurface(t *testing.T) {
	t.Parallel()

	want := &petdex.Route{Summary: "Av. Paulista", DistanceMeters: 1200}
	planner := &mock.RoutePlanner{
		RouteFn: func(_ context.Context, _, _ petdex.LatLng) (*petdex.Route, error) {
			return want, nil
		},
	}
	display := &mock.RouteDisplay{}
	r := search.NewRoutes(planner, display)

	got, err := r.Preview(context.Background(), &petdex.LatLng{}, petdex.LatLng{Lat: 1, Lng: 1})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want, display.Current())
}

func TestRoutes_ProviderFailureIsRouteUnavailable(t *testing.T) {
	t.Parallel()

	planner := &mock.RoutePlanner{
		RouteFn: func(_ context.Context, _, _ petdex.LatLng) (*petdex.Route, error) {
			return nil, petdex.Errorf(petdex.EUNAVAILABLE, "NOT_FOUND")
		},
	}
	display := &mock.RouteDisplay{}
	r := search.NewRoutes(planner, display)

	_, err := r.Preview(context.Background(), &petdex.LatLng{}, petdex.LatLng{Lat: 1, Lng: 1})

	assert.Equal(t, petdex.EUNAVAILABLE, petdex.ErrorCode(err))
	assert.Equal(t, "route unavailable", petdex.ErrorMessage(err))
	assert.Nil(t, display.Current())
}

func TestRoutes_NewerPreviewWinsRegardlessOfCompletionOrder(t *testing.T) {
	t.Parallel()

	routeA := &petdex.Route{Summary: "first"}
	routeB := &petdex.Route{Summary: "second"}

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	planner := &mock.RoutePlanner{
		RouteFn: func(ctx context.Context, _, dest petdex.LatLng) (*petdex.Route, error) {
			if dest.Lng == 1 {
				close(firstStarted)
				select {
				case <-releaseFirst:
					return routeA, nil
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return routeB, nil
		},
	}
	display := &mock.RouteDisplay{}
	r := search.NewRoutes(planner, display)
	origin := &petdex.LatLng{}

	firstDone := make(chan error, 1)
	go func() {
		_, err := r.Preview(context.Background(), origin, petdex.LatLng{Lng: 1})
		firstDone <- err
	}()
	<-firstStarted

	// Second preview preempts the first while it is still in flight. The
	// first's transport context is canceled and its result discarded.
	_, err := r.Preview(context.Background(), origin, petdex.LatLng{Lng: 2})
	require.NoError(t, err)

	close(releaseFirst)
	firstErr := <-firstDone

	assert.Equal(t, petdex.EUNAVAILABLE, petdex.ErrorCode(firstErr))
	assert.Equal(t, "route preview superseded", petdex.ErrorMessage(firstErr))
	assert.Equal(t, routeB, display.Current())
	assert.Equal(t, 1, display.Sets())
}

func TestRoutes_LateSuccessOfSupersededPreviewIsNotDrawn(t *testing.T) {
	t.Parallel()

	// A transport that ignores cancellation may still resolve the old
	// request successfully after a newer one finished. Its route is
	// returned to the caller but never drawn.
	routeA := &petdex.Route{Summary: "first"}
	routeB := &petdex.Route{Summary: "second"}

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	planner := &mock.RoutePlanner{
		RouteFn: func(_ context.Context, _, dest petdex.LatLng) (*petdex.Route, error) {
			if dest.Lng == 1 {
				close(firstStarted)
				<-releaseFirst
				return routeA, nil
			}
			return routeB, nil
		},
	}
	display := &mock.RouteDisplay{}
	r := search.NewRoutes(planner, display)
	origin := &petdex.LatLng{}

	firstDone := make(chan *petdex.Route, 1)
	go func() {
		route, _ := r.Preview(context.Background(), origin, petdex.LatLng{Lng: 1})
		firstDone <- route
	}()
	<-firstStarted

	_, err := r.Preview(context.Background(), origin, petdex.LatLng{Lng: 2})
	require.NoError(t, err)

	close(releaseFirst)
	<-firstDone

	assert.Equal(t, routeB, display.Current())
	assert.Equal(t, 1, display.Sets())
}

func TestRoutes_ClearRemovesDrawnRoute(t *testing.T) {
	t.Parallel()

	planner := &mock.RoutePlanner{
		RouteFn: func(_ context.Context, _, _ petdex.LatLng) (*petdex.Route, error) {
			return &petdex.Route{}, nil
		},
	}
	display := &mock.RouteDisplay{}
	r := search.NewRoutes(planner, display)

	_, err := r.Preview(context.Background(), &petdex.LatLng{}, petdex.LatLng{Lng: 1})
	require.NoError(t, err)
	require.NotNil(t, display.Current())

	r.Clear()

	assert.Nil(t, display.Current())
}
