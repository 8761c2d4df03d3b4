package petdex

import "context"

// PrefsService persists the single UI preference the application keeps
// across sessions: the dark-theme flag.
type PrefsService interface {
	// DarkMode reports whether the dark theme is enabled. A store with no
	// saved preference reports false.
	DarkMode(ctx context.Context) (bool, error)

	// SetDarkMode saves the dark-theme flag.
	SetDarkMode(ctx context.Context, enabled bool) error
}
