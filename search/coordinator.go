package search

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/petdex"
)

// Config holds the collaborators a Coordinator is built from. Searcher is
// required; the rest may be nil, disabling the corresponding operation
// (headless or partial wiring, e.g. the CLI without a map surface).
type Config struct {
	Searcher petdex.NearbySearcher
	Geocoder petdex.Geocoder
	Details  petdex.DetailsService
	Planner  petdex.RoutePlanner

	Map       petdex.MapSurface
	RouteView petdex.RouteDisplay

	// Progress receives session lifecycle events.
	Progress ProgressFunc

	// Events receives marker/card synchronization events.
	Events EventFunc

	// ProfileOpened receives the assembled profile view after a result is
	// selected via marker or card. ProfileFailed receives the non-fatal
	// error when that fetch fails.
	ProfileOpened func(view petdex.ProfileView)
	ProfileFailed func(err error)
}

// Coordinator owns the current search session and the state derived from it:
// accumulated results, active filters, the displayed list, and the marker
// bindings. It is the single exposed surface of the pipeline; all shared
// mutation happens under one mutex, and asynchronous completions re-check
// the session token before touching anything.
type Coordinator struct {
	searcher petdex.NearbySearcher
	geocoder petdex.Geocoder
	progress ProgressFunc
	events   EventFunc

	profileOpened func(view petdex.ProfileView)
	profileFailed func(err error)

	profiles *Profiles
	routes   *Routes
	binder   *Binder

	// tokens allocates session tokens; the live session holds the latest.
	tokens atomic.Uint64

	mu          sync.Mutex
	session     *Session
	origin      *petdex.LatLng
	accumulated []petdex.Place
	displayed   []DisplayResult
	sortOption  SortOption
	openNowOnly bool
}

// New creates a Coordinator from the given collaborators.
func New(cfg Config) *Coordinator {
	c := &Coordinator{
		searcher:      cfg.Searcher,
		geocoder:      cfg.Geocoder,
		progress:      cfg.Progress,
		events:        cfg.Events,
		profileOpened: cfg.ProfileOpened,
		profileFailed: cfg.ProfileFailed,
		profiles:      NewProfiles(cfg.Details),
		routes:        NewRoutes(cfg.Planner, cfg.RouteView),
		sortOption:    SortByDistance,
	}
	c.binder = NewBinder(cfg.Map, c.onEvent)
	return c
}

// StartSearch begins a new search session centered on origin, unconditionally
// superseding any session still in flight: the old session's page callbacks
// become no-ops the moment the new token is allocated. The result surface is
// cleared immediately; results render when the session completes.
//
// The returned session's Done channel closes on completion, letting
// synchronous callers wait.
func (c *Coordinator) StartSearch(ctx context.Context, origin petdex.LatLng, category petdex.Category, radiusMeters int) (*Session, error) {
	req := petdex.SearchRequest{Origin: origin, Category: category, RadiusMeters: radiusMeters}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess := &Session{
		Token:        c.tokens.Add(1),
		Origin:       origin,
		Category:     category,
		RadiusMeters: radiusMeters,
		state:        Paginating,
		done:         make(chan struct{}),
	}

	c.mu.Lock()
	if c.session != nil && c.session.state == Paginating {
		c.abortLocked(c.session)
	}
	c.session = sess
	c.origin = &petdex.LatLng{Lat: origin.Lat, Lng: origin.Lng}
	c.accumulated = nil
	c.displayed = nil
	c.binder.Clear()
	c.mu.Unlock()

	c.routes.Clear()
	c.emit(ProgressEvent{Type: ProgressStarted, Token: sess.Token})

	go c.paginate(ctx, sess)

	return sess, nil
}

// SearchAddress geocodes a free-text address and starts a search from the
// result. A query that resolves to nothing fails with ENOTFOUND and leaves
// the current session untouched.
func (c *Coordinator) SearchAddress(ctx context.Context, query string, category petdex.Category, radiusMeters int) (*Session, error) {
	if c.geocoder == nil {
		return nil, petdex.Errorf(petdex.EINTERNAL, "no geocoder configured")
	}

	origin, err := c.geocoder.Geocode(ctx, query)
	if err != nil {
		if petdex.ErrorCode(err) == petdex.ENOTFOUND {
			return nil, petdex.Errorf(petdex.ENOTFOUND, "address not found")
		}
		return nil, petdex.Errorf(petdex.EUNAVAILABLE, "address lookup failed")
	}

	return c.StartSearch(ctx, *origin, category, radiusMeters)
}

// ApplyFilters updates the sort option and open-now filter and re-renders
// the displayed list from the accumulated results.
func (c *Coordinator) ApplyFilters(sortOption SortOption, openNowOnly bool) error {
	if err := sortOption.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sortOption = sortOption
	c.openNowOnly = openNowOnly
	c.renderLocked()
	return nil
}

// ClearAll supersedes any in-flight session and clears results, markers,
// and the route surface. The known origin is kept.
func (c *Coordinator) ClearAll() {
	c.mu.Lock()
	if c.session != nil && c.session.state == Paginating {
		c.abortLocked(c.session)
	}
	c.session = nil
	c.accumulated = nil
	c.displayed = nil
	c.binder.Clear()
	c.mu.Unlock()

	c.routes.Clear()
}

// SelectResult selects a displayed result by canonical identity, exactly as
// clicking its marker would: pan the map and emit EventSelected (which in
// turn opens the profile).
func (c *Coordinator) SelectResult(id string) error {
	c.mu.Lock()
	var found *DisplayResult
	for i := range c.displayed {
		if petdex.CanonicalID(c.displayed[i].Place) == id {
			found = &c.displayed[i]
			break
		}
	}
	c.mu.Unlock()

	if found == nil {
		return petdex.Errorf(petdex.ENOTFOUND, "result %q is not displayed", id)
	}

	if found.Position != nil {
		c.binder.Select(id, *found.Position)
	} else {
		c.onEvent(Event{Type: EventSelected, PlaceID: id})
	}
	return nil
}

// OpenProfile fetches and assembles the profile view for a place. A view
// superseded by a newer open while in flight fails with EUNAVAILABLE and
// must not be rendered.
func (c *Coordinator) OpenProfile(ctx context.Context, placeID string) (petdex.ProfileView, error) {
	view, authoritative, err := c.profiles.Open(ctx, placeID, c.Origin())
	if err != nil {
		return petdex.ProfileView{}, err
	}
	if !authoritative {
		return petdex.ProfileView{}, petdex.Errorf(petdex.EUNAVAILABLE, "profile superseded")
	}
	return view, nil
}

// PreviewRoute draws a driving-route preview from the known origin to dest.
// Fails with EINVALID when the origin is unknown.
func (c *Coordinator) PreviewRoute(ctx context.Context, dest petdex.LatLng) (*petdex.Route, error) {
	return c.routes.Preview(ctx, c.Origin(), dest)
}

// Results returns a copy of the currently displayed result list.
func (c *Coordinator) Results() []DisplayResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]DisplayResult, len(c.displayed))
	copy(out, c.displayed)
	return out
}

// Counts returns the displayed and total accumulated result counts.
func (c *Coordinator) Counts() (shown, found int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.displayed), len(c.accumulated)
}

// Origin returns a copy of the known user origin, or nil when unknown.
func (c *Coordinator) Origin() *petdex.LatLng {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.origin == nil {
		return nil
	}
	o := *c.origin
	return &o
}

// renderLocked recomputes the displayed list from accumulated state and
// rebinds markers. Caller holds the mutex.
func (c *Coordinator) renderLocked() {
	c.displayed = Project(c.accumulated, c.origin, c.sortOption, c.openNowOnly)
	c.binder.Bind(c.displayed)
}

// onEvent forwards binder events and opens the profile for selections.
func (c *Coordinator) onEvent(event Event) {
	if c.events != nil {
		c.events(event)
	}

	if event.Type == EventSelected && c.profileOpened != nil {
		go func() {
			// The transport's own timeout bounds the fetch.
			view, err := c.OpenProfile(context.Background(), event.PlaceID)
			if err != nil {
				if c.profileFailed != nil {
					c.profileFailed(err)
				}
				return
			}
			c.profileOpened(view)
		}()
	}
}
