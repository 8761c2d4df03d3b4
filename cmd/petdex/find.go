package main

import (
	"fmt"

	"github.com/fwojciec/petdex"
	"github.com/fwojciec/petdex/search"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	coord := search.New(search.Config{
		Searcher: deps.Searcher,
		Geocoder: deps.Geocoder,
	})

	category := petdex.Category(c.Category)

	var sess *search.Session
	var err error
	switch {
	case c.Address != "":
		sess, err = coord.SearchAddress(deps.Ctx, c.Address, category, c.Radius)
	case c.Lat != nil && c.Lng != nil:
		origin := petdex.LatLng{Lat: *c.Lat, Lng: *c.Lng}
		sess, err = coord.StartSearch(deps.Ctx, origin, category, c.Radius)
	default:
		return petdex.Errorf(petdex.EINVALID, "either --address or both --lat and --lng are required")
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", petdex.ErrorMessage(err))
		return err
	}

	<-sess.Done()

	if err := coord.ApplyFilters(search.SortOption(c.Sort), c.OpenNow); err != nil {
		return err
	}

	results := coord.Results()
	for _, r := range results {
		printCard(deps, r)
	}

	shown, found := coord.Counts()
	fmt.Fprintf(deps.Stdout, "Showing %d of %d results\n", shown, found)
	return nil
}

// printCard renders one result the way the list panel would.
func printCard(deps *Dependencies, r search.DisplayResult) {
	fmt.Fprintf(deps.Stdout, "%s", r.Name)
	if label := petdex.DistanceLabel(r.DistanceMeters); label != "" {
		fmt.Fprintf(deps.Stdout, "  %s", label)
	}
	if r.Rating > 0 {
		fmt.Fprintf(deps.Stdout, "  %.1f (%d)", r.Rating, r.RatingsTotal)
	}
	fmt.Fprintln(deps.Stdout)
	if r.Vicinity != "" {
		fmt.Fprintf(deps.Stdout, "  %s\n", r.Vicinity)
	}
}
