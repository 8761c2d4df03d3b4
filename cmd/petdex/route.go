package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/petdex"
)

// Run executes the route command.
func (c *RouteCmd) Run(deps *Dependencies) error {
	origin, err := parseLatLng(c.From)
	if err != nil {
		return err
	}
	dest, err := parseLatLng(c.To)
	if err != nil {
		return err
	}

	route, err := deps.Planner.Route(deps.Ctx, origin, dest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", petdex.ErrorMessage(err))
		return err
	}

	if route.Summary != "" {
		fmt.Fprintf(deps.Stdout, "via %s\n", route.Summary)
	}
	fmt.Fprintf(deps.Stdout, "%s, %s\n",
		petdex.DistanceLabel(float64(route.DistanceMeters)),
		(time.Duration(route.DurationSeconds) * time.Second).String(),
	)
	fmt.Fprintf(deps.Stdout, "Open in maps: %s\n", petdex.ExternalMapsURL(&origin, dest))
	return nil
}

// parseLatLng parses a "lat,lng" argument.
func parseLatLng(s string) (petdex.LatLng, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return petdex.LatLng{}, petdex.Errorf(petdex.EINVALID, "expected lat,lng, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return petdex.LatLng{}, petdex.Errorf(petdex.EINVALID, "invalid latitude in %q", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return petdex.LatLng{}, petdex.Errorf(petdex.EINVALID, "invalid longitude in %q", s)
	}
	return petdex.LatLng{Lat: lat, Lng: lng}, nil
}
