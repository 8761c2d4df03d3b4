// Package slog provides logging decorators for the provider boundaries.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/petdex"
)

// Ensure LoggingSearcher implements petdex.NearbySearcher.
var _ petdex.NearbySearcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a NearbySearcher with debug logging.
type LoggingSearcher struct {
	next   petdex.NearbySearcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next petdex.NearbySearcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, req petdex.SearchRequest) (page *petdex.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("nearby search",
			"category", string(req.Category),
			"radius", req.RadiusMeters,
			"count", pageLen(page),
			"more", page != nil && page.NextPageToken != "",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, req)
}

// NextPage delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) NextPage(ctx context.Context, token string) (page *petdex.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("nearby search page",
			"count", pageLen(page),
			"more", page != nil && page.NextPageToken != "",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.NextPage(ctx, token)
}

func pageLen(page *petdex.Page) int {
	if page == nil {
		return 0
	}
	return len(page.Places)
}
