package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/petdex"
)

// Ensure LoggingDetailsService implements petdex.DetailsService.
var _ petdex.DetailsService = (*LoggingDetailsService)(nil)

// LoggingDetailsService wraps a DetailsService with debug logging.
type LoggingDetailsService struct {
	next   petdex.DetailsService
	logger *slog.Logger
}

// NewLoggingDetailsService creates a new LoggingDetailsService.
func NewLoggingDetailsService(next petdex.DetailsService, logger *slog.Logger) *LoggingDetailsService {
	return &LoggingDetailsService{next: next, logger: logger}
}

// Details delegates to the wrapped service and logs the operation.
func (s *LoggingDetailsService) Details(ctx context.Context, placeID string) (detail *petdex.PlaceDetail, err error) {
	defer func(begin time.Time) {
		s.logger.Info("place details",
			"place_id", placeID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Details(ctx, placeID)
}
