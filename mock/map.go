package mock

import (
	"sync"

	"github.com/fwojciec/petdex"
)

var _ petdex.MapSurface = (*MapSurface)(nil)

// MapSurface is a recording implementation of petdex.MapSurface. It tracks
// the markers currently on the map so tests can assert on marker lifecycle
// and drive click/hover handlers.
type MapSurface struct {
	mu      sync.Mutex
	markers []*Marker
	panned  *petdex.LatLng
	zoom    int
}

func (s *MapSurface) AddMarker(position petdex.LatLng, title string) petdex.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := &Marker{surface: s, Position: position, Title: title}
	s.markers = append(s.markers, m)
	return m
}

func (s *MapSurface) PanTo(position petdex.LatLng, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := position
	s.panned = &p
	s.zoom = zoom
}

// Live returns the markers currently on the map (added and not removed),
// in creation order.
func (s *MapSurface) Live() []*Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	var live []*Marker
	for _, m := range s.markers {
		if !m.removed {
			live = append(live, m)
		}
	}
	return live
}

// PannedTo returns the last PanTo position and zoom, or nil if never panned.
func (s *MapSurface) PannedTo() (*petdex.LatLng, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panned, s.zoom
}

var _ petdex.Marker = (*Marker)(nil)

// Marker is the mock marker handle created by MapSurface.
type Marker struct {
	surface *MapSurface

	Position petdex.LatLng
	Title    string

	click   func()
	hover   func(entered bool)
	removed bool
}

func (m *Marker) OnClick(fn func()) {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()
	m.click = fn
}

func (m *Marker) OnHover(fn func(entered bool)) {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()
	m.hover = fn
}

func (m *Marker) Remove() {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()
	m.removed = true
}

// Click simulates a user clicking the marker.
func (m *Marker) Click() {
	m.surface.mu.Lock()
	fn := m.click
	m.surface.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Hover simulates the pointer entering (true) or leaving (false) the marker.
func (m *Marker) Hover(entered bool) {
	m.surface.mu.Lock()
	fn := m.hover
	m.surface.mu.Unlock()
	if fn != nil {
		fn(entered)
	}
}

// Removed reports whether the marker was taken off the map.
func (m *Marker) Removed() bool {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()
	return m.removed
}
