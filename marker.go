package petdex

// MapSurface is the map-rendering boundary. The pipeline only creates
// markers and pans; styling, tiles, and the user marker belong to the
// rendering collaborator.
type MapSurface interface {
	// AddMarker places a marker on the map and returns its handle.
	AddMarker(position LatLng, title string) Marker

	// PanTo centers the map on position at the given zoom level.
	PanTo(position LatLng, zoom int)
}

// Marker is a handle to one map marker created by the pipeline.
type Marker interface {
	// OnClick registers a click handler. A marker has at most one; later
	// registrations replace earlier ones.
	OnClick(fn func())

	// OnHover registers a hover handler, called with true on enter and
	// false on leave.
	OnHover(fn func(entered bool))

	// Remove takes the marker off the map. The handle must not be used
	// afterwards.
	Remove()
}
