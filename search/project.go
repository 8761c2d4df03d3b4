package search

import (
	"sort"

	"github.com/fwojciec/petdex"
)

// SortOption selects the ordering of the displayed result list.
type SortOption string

const (
	SortByDistance SortOption = "distance"
	SortByRating   SortOption = "rating"
)

// Validate returns an error if the sort option is not a known value.
func (o SortOption) Validate() error {
	switch o {
	case SortByDistance, SortByRating:
		return nil
	}
	return petdex.Errorf(petdex.EINVALID, "unknown sort option %q", string(o))
}

// DisplayResult is one entry of the rendered result list: a place annotated
// with its distance from the search origin. Recomputed on every projection,
// never persisted.
type DisplayResult struct {
	petdex.Place

	// DistanceMeters from the search origin; +Inf when the origin or the
	// place position is unknown.
	DistanceMeters float64
}

// Project computes the displayed result list from accumulated places. Pure:
// the output is a deterministic function of its arguments.
//
// Places are annotated with their distance from origin, filtered (openNowOnly
// keeps only entries whose open-now flag is known and true), sorted (distance
// ascending or rating descending, stable in input order), and deduplicated as
// a final safety net against duplicates that slipped through accumulation.
func Project(places []petdex.Place, origin *petdex.LatLng, sortOption SortOption, openNowOnly bool) []DisplayResult {
	results := make([]DisplayResult, 0, len(places))
	for _, p := range places {
		if openNowOnly && (p.OpenNow == nil || !*p.OpenNow) {
			// Unknown open/closed status is conservatively excluded.
			continue
		}
		results = append(results, DisplayResult{
			Place:          p,
			DistanceMeters: petdex.Distance(origin, p.Position),
		})
	}

	switch sortOption {
	case SortByRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DistanceMeters < results[j].DistanceMeters
		})
	}

	return dedupeResults(results)
}

// dedupeResults keeps one entry per canonical identity, preferring the
// smaller distance (ties: first in current order). Identity-less entries are
// dropped. Mirrors petdex.Dedupe over already-annotated results.
func dedupeResults(results []DisplayResult) []DisplayResult {
	type slot struct {
		index int
		dist  float64
	}

	kept := make(map[string]slot, len(results))
	out := make([]DisplayResult, 0, len(results))

	for _, r := range results {
		id := petdex.CanonicalID(r.Place)
		if id == "" {
			continue
		}
		existing, ok := kept[id]
		if !ok {
			kept[id] = slot{index: len(out), dist: r.DistanceMeters}
			out = append(out, r)
			continue
		}
		if r.DistanceMeters < existing.dist {
			out[existing.index] = r
			kept[id] = slot{index: existing.index, dist: r.DistanceMeters}
		}
	}

	return out
}
