package main

import (
	"fmt"

	"github.com/fwojciec/petdex"
)

// Run executes the profile command.
func (c *ProfileCmd) Run(deps *Dependencies) error {
	detail, err := deps.Details.Details(deps.Ctx, c.PlaceID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", petdex.ErrorMessage(err))
		return err
	}

	var origin *petdex.LatLng
	if c.Lat != nil && c.Lng != nil {
		origin = &petdex.LatLng{Lat: *c.Lat, Lng: *c.Lng}
	}

	view := petdex.BuildProfileView(detail, origin)

	fmt.Fprintln(deps.Stdout, view.Name)
	if view.Address != "" {
		fmt.Fprintln(deps.Stdout, view.Address)
	}
	if view.Rating > 0 {
		fmt.Fprintf(deps.Stdout, "Rating: %.1f (%d reviews)\n", view.Rating, view.RatingsTotal)
	}
	if label := petdex.DistanceLabel(view.DistanceMeters); label != "" {
		fmt.Fprintf(deps.Stdout, "Distance: %s\n", label)
	}
	if view.Phone != "" {
		fmt.Fprintf(deps.Stdout, "Phone: %s\n", view.Phone)
	}
	if view.Website != "" {
		fmt.Fprintf(deps.Stdout, "Website: %s\n", view.Website)
	}
	for _, line := range view.WeekdayHours {
		fmt.Fprintf(deps.Stdout, "  %s\n", line)
	}
	for _, review := range view.Reviews {
		fmt.Fprintf(deps.Stdout, "— %s (%.0f): %s\n", review.Author, review.Rating, review.Text)
	}
	if view.DirectionsURL != "" {
		fmt.Fprintf(deps.Stdout, "Directions: %s\n", view.DirectionsURL)
	}
	return nil
}
