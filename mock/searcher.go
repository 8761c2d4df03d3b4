// Package mock provides mock implementations of petdex interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/petdex"
)

var _ petdex.NearbySearcher = (*NearbySearcher)(nil)

// NearbySearcher is a mock implementation of petdex.NearbySearcher.
type NearbySearcher struct {
	SearchFn   func(ctx context.Context, req petdex.SearchRequest) (*petdex.Page, error)
	NextPageFn func(ctx context.Context, token string) (*petdex.Page, error)
}

func (s *NearbySearcher) Search(ctx context.Context, req petdex.SearchRequest) (*petdex.Page, error) {
	return s.SearchFn(ctx, req)
}

func (s *NearbySearcher) NextPage(ctx context.Context, token string) (*petdex.Page, error) {
	return s.NextPageFn(ctx, token)
}
