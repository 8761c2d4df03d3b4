package mock

import (
	"context"

	"github.com/fwojciec/petdex"
)

var _ petdex.PrefsService = (*PrefsService)(nil)

// PrefsService is a mock implementation of petdex.PrefsService.
type PrefsService struct {
	DarkModeFn    func(ctx context.Context) (bool, error)
	SetDarkModeFn func(ctx context.Context, enabled bool) error
}

func (s *PrefsService) DarkMode(ctx context.Context) (bool, error) {
	return s.DarkModeFn(ctx)
}

func (s *PrefsService) SetDarkMode(ctx context.Context, enabled bool) error {
	return s.SetDarkModeFn(ctx, enabled)
}
