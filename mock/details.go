package mock

import (
	"context"

	"github.com/fwojciec/petdex"
)

var _ petdex.DetailsService = (*DetailsService)(nil)

// DetailsService is a mock implementation of petdex.DetailsService.
type DetailsService struct {
	DetailsFn func(ctx context.Context, placeID string) (*petdex.PlaceDetail, error)
}

func (s *DetailsService) Details(ctx context.Context, placeID string) (*petdex.PlaceDetail, error) {
	return s.DetailsFn(ctx, placeID)
}
