package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/petdex"
)

// Compile-time interface verification.
var _ petdex.PrefsService = (*PrefsService)(nil)

const darkModeKey = "dark_mode"

// PrefsService implements petdex.PrefsService using SQLite.
type PrefsService struct {
	db *DB
}

// NewPrefsService creates a new PrefsService.
func NewPrefsService(db *DB) *PrefsService {
	return &PrefsService{db: db}
}

// DarkMode reports whether the dark display theme is enabled.
// An unset preference defaults to false.
func (s *PrefsService) DarkMode(ctx context.Context) (bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM prefs WHERE key = ?
	`, darkModeKey).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return value == "1", nil
}

// SetDarkMode persists the dark display theme preference.
func (s *PrefsService) SetDarkMode(ctx context.Context, enabled bool) error {
	value := "0"
	if enabled {
		value = "1"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prefs (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, darkModeKey, value, time.Now().UTC().Format(time.RFC3339))

	return err
}
