package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/PumPum7/modmail/internal/cache"
	"github.com/PumPum7/modmail/internal/middleware"
	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/observability"
	"github.com/PumPum7/modmail/internal/repository"

	"github.com/redis/go-redis/v9"
)

// Source tells where an analytics result came from.
type Source string

const (
	SourceCache Source = "cache"
	SourceLive  Source = "live"
)

// cachedReport is the Redis representation of one report.
type cachedReport[T any] struct {
	ComputedAt time.Time `json:"computed_at"`
	Data       T         `json:"data"`
}

// AnalyticsService serves guild analytics from the Redis summary cache when a
// fresh entry exists and computes them live otherwise. The live path is
// authoritative; the cache is skipped entirely when rdb is nil.
type AnalyticsService struct {
	repo repository.AnalyticsRepository
	rdb  redis.Cmdable
	ttl  time.Duration
	now  func() time.Time
}

func NewAnalyticsService(repo repository.AnalyticsRepository, rdb redis.Cmdable, ttl time.Duration) *AnalyticsService {
	if ttl <= 0 {
		ttl = cache.DefaultAnalyticsTTL
	}
	return &AnalyticsService{repo: repo, rdb: rdb, ttl: ttl, now: time.Now}
}

func (s *AnalyticsService) Overview(ctx context.Context, guildID string) (*models.AnalyticsOverview, Source, error) {
	return readThrough(ctx, s, guildID, cache.ReportOverview, s.repo.Overview)
}

func (s *AnalyticsService) ThreadVolume(ctx context.Context, guildID string) ([]models.ThreadVolume, Source, error) {
	return readThrough(ctx, s, guildID, cache.ReportThreadVolume, s.repo.ThreadVolume)
}

func (s *AnalyticsService) ModeratorActivity(ctx context.Context, guildID string) ([]models.ModeratorActivity, Source, error) {
	return readThrough(ctx, s, guildID, cache.ReportModeratorActivity, s.repo.ModeratorActivity)
}

func (s *AnalyticsService) ResponseTimes(ctx context.Context, guildID string) (*models.ResponseTimeMetrics, Source, error) {
	return readThrough(ctx, s, guildID, cache.ReportResponseTimes, s.repo.ResponseTimes)
}

func readThrough[T any](ctx context.Context, s *AnalyticsService, guildID, report string, compute func(context.Context, string) (T, error)) (T, Source, error) {
	key := cache.AnalyticsKey(guildID, report)

	if s.rdb != nil {
		var entry cachedReport[T]
		found, err := cache.GetJSON(ctx, s.rdb, key, &entry)
		switch {
		case err != nil:
			observability.AnalyticsCacheLookups.WithLabelValues(report, "error").Inc()
			middleware.Logger.WarnContext(ctx, "analytics cache read failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		case found && s.now().Sub(entry.ComputedAt) <= s.ttl:
			observability.AnalyticsCacheLookups.WithLabelValues(report, "hit").Inc()
			return entry.Data, SourceCache, nil
		case found:
			observability.AnalyticsCacheLookups.WithLabelValues(report, "stale").Inc()
		default:
			observability.AnalyticsCacheLookups.WithLabelValues(report, "miss").Inc()
		}
	}

	data, err := compute(ctx, guildID)
	if err != nil {
		var zero T
		return zero, SourceLive, err
	}
	s.store(ctx, key, data)
	return data, SourceLive, nil
}

func (s *AnalyticsService) store(ctx context.Context, key string, data any) {
	if s.rdb == nil {
		return
	}
	entry := cachedReport[any]{ComputedAt: s.now().UTC(), Data: data}
	if err := cache.SetJSON(ctx, s.rdb, key, entry, s.ttl); err != nil {
		middleware.Logger.WarnContext(ctx, "analytics cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// Cached reports whether computed reports are stored in Redis.
func (s *AnalyticsService) Cached() bool {
	return s.rdb != nil
}

// Refresh recomputes every report for one guild and stores the results.
func (s *AnalyticsService) Refresh(ctx context.Context, guildID string) (*models.AnalyticsSnapshot, error) {
	ctx, span := observability.StartSpan(ctx, "AnalyticsService.Refresh", guildID)
	var err error
	defer func() { observability.EndSpan(span, err) }()

	snapshot := &models.AnalyticsSnapshot{GuildID: guildID, ComputedAt: s.now().UTC()}

	var overview *models.AnalyticsOverview
	if overview, err = s.repo.Overview(ctx, guildID); err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}
	snapshot.Overview = *overview

	if snapshot.ThreadVolume, err = s.repo.ThreadVolume(ctx, guildID); err != nil {
		return nil, fmt.Errorf("thread volume: %w", err)
	}
	if snapshot.ModeratorActivity, err = s.repo.ModeratorActivity(ctx, guildID); err != nil {
		return nil, fmt.Errorf("moderator activity: %w", err)
	}

	var times *models.ResponseTimeMetrics
	if times, err = s.repo.ResponseTimes(ctx, guildID); err != nil {
		return nil, fmt.Errorf("response times: %w", err)
	}
	snapshot.ResponseTimes = *times

	s.store(ctx, cache.AnalyticsKey(guildID, cache.ReportOverview), overview)
	s.store(ctx, cache.AnalyticsKey(guildID, cache.ReportThreadVolume), snapshot.ThreadVolume)
	s.store(ctx, cache.AnalyticsKey(guildID, cache.ReportModeratorActivity), snapshot.ModeratorActivity)
	s.store(ctx, cache.AnalyticsKey(guildID, cache.ReportResponseTimes), times)

	return snapshot, nil
}

// RefreshAll refreshes every guild known to the database. A failing guild is
// logged and skipped; the joined failures are returned with the success count.
func (s *AnalyticsService) RefreshAll(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() { observability.AnalyticsRefreshDuration.Observe(time.Since(start).Seconds()) }()

	guildIDs, err := s.repo.KnownGuildIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list guilds: %w", err)
	}

	var errs []error
	refreshed := 0
	for _, guildID := range guildIDs {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if _, err := s.Refresh(ctx, guildID); err != nil {
			middleware.Logger.ErrorContext(ctx, "analytics refresh failed",
				slog.String("guild_id", guildID),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("guild %s: %w", guildID, err))
			continue
		}
		refreshed++
	}
	return refreshed, errors.Join(errs...)
}
