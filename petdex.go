// Package petdex provides the search pipeline behind a nearby pet-venue
// finder: paginated nearby-search with stale-session suppression, result
// deduplication and projection, marker/card binding, route previews, and
// place profiles.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., googlemaps/, sqlite/), and the
// session orchestration lives in search/.
package petdex
