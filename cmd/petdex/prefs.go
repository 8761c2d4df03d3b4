package main

import (
	"fmt"

	"github.com/fwojciec/petdex"
)

// Run executes the prefs dark command.
func (c *DarkCmd) Run(deps *Dependencies) error {
	switch c.State {
	case "on", "off":
		if err := deps.Prefs.SetDarkMode(deps.Ctx, c.State == "on"); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", petdex.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "dark mode %s\n", c.State)
		return nil
	default:
		enabled, err := deps.Prefs.DarkMode(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", petdex.ErrorMessage(err))
			return err
		}
		state := "off"
		if enabled {
			state = "on"
		}
		fmt.Fprintf(deps.Stdout, "dark mode %s\n", state)
		return nil
	}
}
