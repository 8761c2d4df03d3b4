package petdex

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Category identifies the kind of pet venue a search looks for.
type Category string

// Category values. The provider-specific mapping (place types, keywords)
// lives in the provider client.
const (
	CategoryVet     Category = "vet"
	CategoryStore   Category = "store"
	CategoryShelter Category = "shelter"
)

// Validate returns an error if the category is not a known value.
func (c Category) Validate() error {
	switch c {
	case CategoryVet, CategoryStore, CategoryShelter:
		return nil
	}
	return Errorf(EINVALID, "unknown category %q", string(c))
}

// Place is one venue candidate returned by nearby-search. Immutable once
// constructed.
type Place struct {
	// ID is the provider's stable identifier. May be empty; see CanonicalID.
	ID string `json:"id"`

	Name string `json:"name"`

	// Position is nil when the provider returned no usable geometry.
	Position *LatLng `json:"position"`

	// Rating is 0 when the provider reported none.
	Rating       float64 `json:"rating,omitempty"`
	RatingsTotal int     `json:"ratingsTotal,omitempty"`

	Vicinity string `json:"vicinity,omitempty"`

	// OpenNow is nil when the open/closed status is unknown.
	OpenNow *bool `json:"openNow,omitempty"`

	// Raw preserves the opaque provider payload for debugging.
	Raw json.RawMessage `json:"-"`
}

// syntheticIDPrecision is the number of decimal places positions are rounded
// to before deriving a synthetic identity. Four decimal places is roughly an
// 11 m cell, wide enough to collapse near-duplicate entries from different
// catalog sources at the same physical location.
const syntheticIDPrecision = 4

// CanonicalID returns the canonical identity of a place: the provider ID when
// present, else a synthetic identity derived deterministically from the
// position rounded to a fixed precision. Returns the empty string when the
// place has neither an ID nor a position; such entries cannot be keyed.
func CanonicalID(p Place) string {
	if p.ID != "" {
		return p.ID
	}
	if p.Position == nil {
		return ""
	}
	key := fmt.Sprintf("%.*f,%.*f",
		syntheticIDPrecision, roundTo(p.Position.Lat, syntheticIDPrecision),
		syntheticIDPrecision, roundTo(p.Position.Lng, syntheticIDPrecision))
	return fmt.Sprintf("geo:%016x", xxhash.Sum64String(key))
}

// Dedupe returns places with exactly one entry per canonical identity,
// keeping for each identity the entry nearest to origin (ties broken by
// first-seen order). Entries without a canonical identity are dropped.
// Output preserves the first-seen order of the kept identities, so the
// operation is idempotent: Dedupe(Dedupe(x), origin) == Dedupe(x, origin).
func Dedupe(places []Place, origin *LatLng) []Place {
	type slot struct {
		index int
		dist  float64
	}

	kept := make(map[string]slot, len(places))
	out := make([]Place, 0, len(places))

	for _, p := range places {
		id := CanonicalID(p)
		if id == "" {
			continue
		}
		dist := Distance(origin, p.Position)

		existing, ok := kept[id]
		if !ok {
			kept[id] = slot{index: len(out), dist: dist}
			out = append(out, p)
			continue
		}
		if dist < existing.dist {
			out[existing.index] = p
			kept[id] = slot{index: existing.index, dist: dist}
		}
	}

	return out
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
