package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/petdex"
	"github.com/fwojciec/petdex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB    *sqlite.DB
	Prefs petdex.PrefsService

	Searcher petdex.NearbySearcher
	Geocoder petdex.Geocoder
	Details  petdex.DetailsService
	Planner  petdex.RoutePlanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the proxy API server"`
	Find    FindCmd    `cmd:"" help:"Search for pet venues near a location"`
	Profile ProfileCmd `cmd:"" help:"Show the full profile of a place"`
	Route   RouteCmd   `cmd:"" help:"Compute a driving route between two points"`
	Prefs   PrefsCmd   `cmd:"" help:"Read or change stored preferences"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"PETDEX_ADDR" help:"Listen address"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Address  string   `short:"a" help:"Free-text address to search from"`
	Lat      *float64 `help:"Origin latitude (with --lng, instead of --address)"`
	Lng      *float64 `help:"Origin longitude (with --lat, instead of --address)"`
	Category string   `short:"c" default:"vet" enum:"vet,store,shelter" help:"Venue category"`
	Radius   int      `short:"r" default:"5000" help:"Search radius in meters"`
	Sort     string   `short:"s" default:"distance" enum:"distance,rating" help:"Result ordering"`
	OpenNow  bool     `help:"Only show venues known to be open now"`
}

// ProfileCmd is the "profile" subcommand.
type ProfileCmd struct {
	PlaceID string   `arg:"" help:"Provider place ID"`
	Lat     *float64 `help:"Origin latitude for the distance line"`
	Lng     *float64 `help:"Origin longitude for the distance line"`
}

// RouteCmd is the "route" subcommand.
type RouteCmd struct {
	From string `required:"" help:"Origin as lat,lng"`
	To   string `required:"" help:"Destination as lat,lng"`
}

// PrefsCmd is the "prefs" subcommand.
type PrefsCmd struct {
	Dark DarkCmd `cmd:"" help:"Read or set the dark display theme"`
}

// DarkCmd reads or sets the dark-mode preference.
type DarkCmd struct {
	State string `arg:"" optional:"" default:"" enum:"on,off," help:"New state; omit to read"`
}
