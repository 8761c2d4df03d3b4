package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/petdex"
)

// Ensure LoggingRoutePlanner implements petdex.RoutePlanner.
var _ petdex.RoutePlanner = (*LoggingRoutePlanner)(nil)

// LoggingRoutePlanner wraps a RoutePlanner with debug logging.
type LoggingRoutePlanner struct {
	next   petdex.RoutePlanner
	logger *slog.Logger
}

// NewLoggingRoutePlanner creates a new LoggingRoutePlanner.
func NewLoggingRoutePlanner(next petdex.RoutePlanner, logger *slog.Logger) *LoggingRoutePlanner {
	return &LoggingRoutePlanner{next: next, logger: logger}
}

// Route delegates to the wrapped planner and logs the operation.
func (p *LoggingRoutePlanner) Route(ctx context.Context, origin, destination petdex.LatLng) (route *petdex.Route, err error) {
	defer func(begin time.Time) {
		var meters int
		if route != nil {
			meters = route.DistanceMeters
		}
		p.logger.Info("route",
			"distance_m", meters,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Route(ctx, origin, destination)
}
