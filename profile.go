package petdex

import (
	"context"
	"fmt"
	"html"
	"math"
)

// PlaceDetail is the extended detail record for a place, as returned by the
// provider's details endpoint.
type PlaceDetail struct {
	PlaceID      string
	Name         string
	Address      string
	Phone        string
	Website      string
	URL          string // canonical provider page for the place
	Rating       float64
	RatingsTotal int
	Position     *LatLng

	// WeekdayHours holds one formatted line per weekday when the provider
	// supplies structured hours. Empty otherwise.
	WeekdayHours []string

	// OpenNow is nil when the open/closed status is unknown.
	OpenNow *bool

	Reviews []Review
}

// Review is a single user review of a place.
type Review struct {
	Author string
	Rating float64
	Text   string
}

// DetailsService is the provider boundary for extended place details.
type DetailsService interface {
	// Details fetches the extended detail record for a place.
	// Returns ENOTFOUND for an unknown or invalid id and EUNAVAILABLE on
	// provider or transport failure.
	Details(ctx context.Context, placeID string) (*PlaceDetail, error)
}

// Presentation limits for profile assembly.
const (
	maxProfileReviews   = 3
	maxReviewTextLength = 300
)

// ProfileView is the presentation model for a place profile. All
// user-supplied text is HTML-escaped during assembly; templates may embed
// the fields without further escaping.
type ProfileView struct {
	PlaceID      string
	Name         string
	Address      string
	Phone        string // empty when the place has no phone
	Website      string // empty when the place has no website
	ProviderURL  string
	Rating       float64
	RatingsTotal int

	// WeekdayHours is the structured weekly schedule when available.
	// When empty, OpenNow carries the single open/closed flag instead
	// (nil meaning unknown).
	WeekdayHours []string
	OpenNow      *bool

	// DistanceMeters from the user origin; +Inf when either side is unknown.
	DistanceMeters float64

	// DirectionsURL opens external turn-by-turn directions to the place.
	// Empty when the place position is unknown.
	DirectionsURL string

	Reviews []ReviewView
}

// ReviewView is one review prepared for display.
type ReviewView struct {
	Author string
	Rating float64
	Text   string
}

// BuildProfileView assembles the presentation model for a place detail
// record. Pure: the same detail and origin always produce the same view.
func BuildProfileView(detail *PlaceDetail, origin *LatLng) ProfileView {
	view := ProfileView{
		PlaceID:      detail.PlaceID,
		Name:         html.EscapeString(detail.Name),
		Address:      html.EscapeString(detail.Address),
		Phone:        html.EscapeString(detail.Phone),
		Website:      detail.Website,
		ProviderURL:  detail.URL,
		Rating:       detail.Rating,
		RatingsTotal: detail.RatingsTotal,
		OpenNow:      detail.OpenNow,
	}

	for _, line := range detail.WeekdayHours {
		view.WeekdayHours = append(view.WeekdayHours, html.EscapeString(line))
	}

	view.DistanceMeters = Distance(origin, detail.Position)
	if detail.Position != nil {
		view.DirectionsURL = ExternalMapsURL(origin, *detail.Position)
	}

	for i, rev := range detail.Reviews {
		if i >= maxProfileReviews {
			break
		}
		view.Reviews = append(view.Reviews, ReviewView{
			Author: html.EscapeString(rev.Author),
			Rating: rev.Rating,
			Text:   html.EscapeString(truncateRunes(rev.Text, maxReviewTextLength)),
		})
	}

	return view
}

// DistanceLabel formats a distance in meters as a kilometer string for
// display, e.g. "1.23 km". Returns the empty string for unknown (+Inf)
// distances.
func DistanceLabel(meters float64) string {
	if math.IsInf(meters, 1) {
		return ""
	}
	return formatKilometers(meters)
}

func formatKilometers(meters float64) string {
	return fmt.Sprintf("%.2f km", meters/1000)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
