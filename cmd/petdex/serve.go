package main

import (
	"fmt"
	"os/signal"
	"syscall"

	petdexhttp "github.com/fwojciec/petdex/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := petdexhttp.NewServer(petdexhttp.Config{
		Searcher: deps.Searcher,
		Geocoder: deps.Geocoder,
		Logger:   deps.Logger,
	})

	fmt.Fprintf(deps.Stdout, "listening on %s\n", c.Addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx, c.Addr)
	})
	return g.Wait()
}
