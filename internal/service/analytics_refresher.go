package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/PumPum7/modmail/internal/middleware"

	"github.com/thejerf/suture/v4"
)

// AnalyticsRefresher recomputes the analytics summaries of every known guild
// on a fixed interval. It runs as a supervised service.
type AnalyticsRefresher struct {
	analytics *AnalyticsService
	interval  time.Duration
	name      string
}

func NewAnalyticsRefresher(analytics *AnalyticsService, interval time.Duration) *AnalyticsRefresher {
	return &AnalyticsRefresher{
		analytics: analytics,
		interval:  interval,
		name:      "analytics-refresher",
	}
}

// Serve implements suture.Service. A refresh runs immediately and then on
// every tick until ctx is canceled. The service stops for good when the
// interval is zero or there is no cache to refresh into.
func (r *AnalyticsRefresher) Serve(ctx context.Context) error {
	if r.interval <= 0 {
		middleware.Logger.InfoContext(ctx, "analytics refresher disabled")
		return suture.ErrDoNotRestart
	}
	if !r.analytics.Cached() {
		middleware.Logger.InfoContext(ctx, "analytics refresher disabled, no redis cache configured")
		return suture.ErrDoNotRestart
	}

	r.runOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *AnalyticsRefresher) runOnce(ctx context.Context) {
	start := time.Now()
	refreshed, err := r.analytics.RefreshAll(ctx)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "analytics refresh finished with errors",
			slog.Int("refreshed", refreshed),
			slog.String("error", err.Error()),
		)
		return
	}
	middleware.Logger.InfoContext(ctx, "analytics refresh finished",
		slog.Int("refreshed", refreshed),
		slog.Duration("duration", time.Since(start)),
	)
}

func (r *AnalyticsRefresher) String() string {
	return r.name
}
