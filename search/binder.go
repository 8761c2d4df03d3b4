package search

import "github.com/fwojciec/petdex"

// selectZoom is the zoom level applied when a result is selected.
const selectZoom = 15

// EventType indicates the type of binder event.
type EventType int

const (
	// EventHighlightOn and EventHighlightOff mirror marker hover onto the
	// corresponding card. Visual only; no underlying state changes.
	EventHighlightOn EventType = iota
	EventHighlightOff

	// EventSelected fires when a result is selected via its marker or
	// card. The map has already been panned to the result.
	EventSelected
)

// Event is a marker/card synchronization event keyed by canonical identity.
type Event struct {
	Type    EventType
	PlaceID string
}

// EventFunc receives binder events.
type EventFunc func(event Event)

// Binder materializes one map marker per displayed result and keeps marker
// and card state synchronized through identity-keyed events. Markers are
// mapped by canonical identity, not creation order, so pairing survives any
// divergence between render order and marker order.
type Binder struct {
	surface petdex.MapSurface
	events  EventFunc
	markers map[string]petdex.Marker
}

// NewBinder creates a Binder for the given map surface. A nil surface is
// allowed; binding then produces no markers (headless use).
func NewBinder(surface petdex.MapSurface, events EventFunc) *Binder {
	return &Binder{
		surface: surface,
		events:  events,
		markers: make(map[string]petdex.Marker),
	}
}

// Bind replaces the bound display set. Every marker from the previous bind
// is removed before new ones are created; no stale markers survive a
// re-render. Results without a position get no marker but remain in the
// displayed list.
func (b *Binder) Bind(results []DisplayResult) {
	b.Clear()
	if b.surface == nil {
		return
	}

	for _, r := range results {
		if r.Position == nil {
			continue
		}
		id := petdex.CanonicalID(r.Place)
		if id == "" {
			continue
		}
		pos := *r.Position

		marker := b.surface.AddMarker(pos, r.Name)
		b.markers[id] = marker

		marker.OnClick(func() {
			b.Select(id, pos)
		})
		marker.OnHover(func(entered bool) {
			if entered {
				b.emit(Event{Type: EventHighlightOn, PlaceID: id})
			} else {
				b.emit(Event{Type: EventHighlightOff, PlaceID: id})
			}
		})
	}
}

// Select handles selection of a result, from its marker or its card: pans
// the map to the position and emits EventSelected. Marker click and card
// click are equivalent.
func (b *Binder) Select(id string, pos petdex.LatLng) {
	if b.surface != nil {
		b.surface.PanTo(pos, selectZoom)
	}
	b.emit(Event{Type: EventSelected, PlaceID: id})
}

// Clear removes every marker the binder created.
func (b *Binder) Clear() {
	for id, marker := range b.markers {
		marker.Remove()
		delete(b.markers, id)
	}
}

// Marker returns the marker bound to the given canonical identity.
func (b *Binder) Marker(id string) (petdex.Marker, bool) {
	m, ok := b.markers[id]
	return m, ok
}

// Len returns the number of currently bound markers.
func (b *Binder) Len() int {
	return len(b.markers)
}

func (b *Binder) emit(event Event) {
	if b.events != nil {
		b.events(event)
	}
}
