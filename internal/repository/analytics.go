package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/PumPum7/modmail/internal/models"

	"gorm.io/gorm"
)

// AnalyticsRepository computes guild analytics directly from the live tables.
// Windows are whole UTC days counted back from the current date.
type AnalyticsRepository interface {
	Overview(ctx context.Context, guildID string) (*models.AnalyticsOverview, error)
	ThreadVolume(ctx context.Context, guildID string) ([]models.ThreadVolume, error)
	ModeratorActivity(ctx context.Context, guildID string) ([]models.ModeratorActivity, error)
	ResponseTimes(ctx context.Context, guildID string) (*models.ResponseTimeMetrics, error)
	KnownGuildIDs(ctx context.Context) ([]string, error)
}

type analyticsRepository struct {
	db *gorm.DB
	q  analyticsQueries
}

// analyticsQueries is the SQL one dialect runs for the guild summaries.
type analyticsQueries struct {
	overview          string
	threadVolume      string
	moderatorActivity string
	responseTimes     string
	// firstResponseHours lists windowed first response times, for dialects
	// without a percentile aggregate. The median is then taken in Go.
	firstResponseHours string
}

var postgresAnalytics = analyticsQueries{
	overview:          overviewQuery,
	threadVolume:      threadVolumeQuery,
	moderatorActivity: moderatorActivityQuery,
	responseTimes:     responseTimesQuery,
}

// NewAnalyticsRepository returns a new AnalyticsRepository implementation
// using the SQL of the connection's dialect.
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	q := postgresAnalytics
	if db.Dialector.Name() == "sqlite" {
		q = sqliteAnalytics
	}
	return &analyticsRepository{db: db, q: q}
}

// firstResponsesCTE yields, per thread, the earliest linked message written by
// anyone other than the thread opener.
const firstResponsesCTE = `
WITH first_responses AS (
    SELECT t.id, t.created_at, MIN(m.created_at) AS first_response_at
    FROM threads t
    JOIN thread_messages tm ON tm.thread_id = t.id
    JOIN messages m ON m.id = tm.message_id
    WHERE t.guild_id = @guild AND m.author_id <> t.user_id
    GROUP BY t.id, t.created_at
)`

const overviewQuery = firstResponsesCTE + `
SELECT
    tc.total_threads,
    tc.open_threads,
    tc.closed_threads,
    tc.threads_today,
    tc.threads_this_week,
    tc.threads_this_month,
    (SELECT COUNT(*) FROM messages WHERE guild_id = @guild) AS total_messages,
    (SELECT COUNT(*) FROM notes WHERE guild_id = @guild) AS total_notes,
    (SELECT COUNT(*) FROM blocked_users WHERE guild_id = @guild) AS blocked_users,
    (SELECT AVG(EXTRACT(EPOCH FROM (fr.first_response_at - fr.created_at)) / 3600.0)::float8
        FROM first_responses fr) AS avg_response_time_hours
FROM (
    SELECT
        COUNT(*) AS total_threads,
        COUNT(*) FILTER (WHERE is_open) AS open_threads,
        COUNT(*) FILTER (WHERE NOT is_open) AS closed_threads,
        COUNT(*) FILTER (WHERE created_at >= CURRENT_DATE) AS threads_today,
        COUNT(*) FILTER (WHERE created_at >= CURRENT_DATE - INTERVAL '7 days') AS threads_this_week,
        COUNT(*) FILTER (WHERE created_at >= CURRENT_DATE - INTERVAL '30 days') AS threads_this_month
    FROM threads
    WHERE guild_id = @guild
) tc`

const threadVolumeQuery = `
SELECT TO_CHAR(DATE(created_at), 'YYYY-MM-DD') AS date, COUNT(*) AS count
FROM threads
WHERE guild_id = @guild AND created_at >= CURRENT_DATE - INTERVAL '30 days'
GROUP BY DATE(created_at)
ORDER BY DATE(created_at) DESC`

// Messages written by the opener of the thread they are linked to are user
// messages, not moderator replies.
const moderatorActivityQuery = `
WITH message_counts AS (
    SELECT m.author_tag, COUNT(*) AS message_count
    FROM messages m
    WHERE m.guild_id = @guild
      AND m.created_at >= CURRENT_DATE - INTERVAL '30 days'
      AND NOT EXISTS (
          SELECT 1 FROM thread_messages tm
          JOIN threads t ON t.id = tm.thread_id
          WHERE tm.message_id = m.id AND t.user_id = m.author_id
      )
    GROUP BY m.author_tag
),
note_counts AS (
    SELECT author_tag, COUNT(*) AS note_count
    FROM notes
    WHERE guild_id = @guild AND created_at >= CURRENT_DATE - INTERVAL '30 days'
    GROUP BY author_tag
),
close_counts AS (
    SELECT closed_by_tag AS author_tag, COUNT(*) AS threads_closed
    FROM threads
    WHERE guild_id = @guild
      AND closed_by_tag IS NOT NULL
      AND closed_at >= CURRENT_DATE - INTERVAL '30 days'
    GROUP BY closed_by_tag
)
SELECT
    COALESCE(mc.author_tag, nc.author_tag, cc.author_tag) AS moderator_tag,
    COALESCE(mc.message_count, 0) AS message_count,
    COALESCE(nc.note_count, 0) AS note_count,
    COALESCE(cc.threads_closed, 0) AS threads_closed
FROM message_counts mc
FULL OUTER JOIN note_counts nc ON nc.author_tag = mc.author_tag
FULL OUTER JOIN close_counts cc ON cc.author_tag = COALESCE(mc.author_tag, nc.author_tag)
ORDER BY (COALESCE(mc.message_count, 0) + COALESCE(nc.note_count, 0)) DESC, moderator_tag ASC`

const responseTimesQuery = firstResponsesCTE + `
SELECT
    (SELECT AVG(EXTRACT(EPOCH FROM (first_response_at - created_at)) / 3600.0)::float8
        FROM first_responses
        WHERE created_at >= CURRENT_DATE - INTERVAL '30 days') AS avg_first_response_hours,
    (SELECT (PERCENTILE_CONT(0.5) WITHIN GROUP (
            ORDER BY EXTRACT(EPOCH FROM (first_response_at - created_at)) / 3600.0))::float8
        FROM first_responses
        WHERE created_at >= CURRENT_DATE - INTERVAL '30 days') AS median_first_response_hours,
    (SELECT AVG(EXTRACT(EPOCH FROM (COALESCE(closed_at, updated_at) - created_at)) / 3600.0)::float8
        FROM threads
        WHERE guild_id = @guild
          AND NOT is_open
          AND created_at >= CURRENT_DATE - INTERVAL '30 days') AS avg_resolution_time_hours`

func (r *analyticsRepository) Overview(ctx context.Context, guildID string) (*models.AnalyticsOverview, error) {
	var overview models.AnalyticsOverview
	if err := r.db.WithContext(ctx).Raw(r.q.overview, sql.Named("guild", guildID)).Scan(&overview).Error; err != nil {
		return nil, fmt.Errorf("analytics overview: %w", err)
	}
	return &overview, nil
}

func (r *analyticsRepository) ThreadVolume(ctx context.Context, guildID string) ([]models.ThreadVolume, error) {
	volume := []models.ThreadVolume{}
	if err := r.db.WithContext(ctx).Raw(r.q.threadVolume, sql.Named("guild", guildID)).Scan(&volume).Error; err != nil {
		return nil, fmt.Errorf("thread volume: %w", err)
	}
	return volume, nil
}

func (r *analyticsRepository) ModeratorActivity(ctx context.Context, guildID string) ([]models.ModeratorActivity, error) {
	activity := []models.ModeratorActivity{}
	if err := r.db.WithContext(ctx).Raw(r.q.moderatorActivity, sql.Named("guild", guildID)).Scan(&activity).Error; err != nil {
		return nil, fmt.Errorf("moderator activity: %w", err)
	}
	return activity, nil
}

func (r *analyticsRepository) ResponseTimes(ctx context.Context, guildID string) (*models.ResponseTimeMetrics, error) {
	var metrics models.ResponseTimeMetrics
	if err := r.db.WithContext(ctx).Raw(r.q.responseTimes, sql.Named("guild", guildID)).Scan(&metrics).Error; err != nil {
		return nil, fmt.Errorf("response times: %w", err)
	}
	if r.q.firstResponseHours == "" {
		return &metrics, nil
	}

	var hours []float64
	if err := r.db.WithContext(ctx).Raw(r.q.firstResponseHours, sql.Named("guild", guildID)).Scan(&hours).Error; err != nil {
		return nil, fmt.Errorf("first response times: %w", err)
	}
	metrics.MedianFirstResponseHours = median(hours)
	return &metrics, nil
}

// median interpolates between the two middle values of an even-sized set,
// matching PERCENTILE_CONT(0.5). It returns nil for an empty set.
func median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	m := sorted[mid]
	if len(sorted)%2 == 0 {
		m = (sorted[mid-1] + sorted[mid]) / 2
	}
	return &m
}

// KnownGuildIDs lists every guild that is registered or has threads.
func (r *analyticsRepository) KnownGuildIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Raw("SELECT guild_id FROM servers UNION SELECT DISTINCT guild_id FROM threads ORDER BY guild_id").
		Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("known guilds: %w", err)
	}
	return ids, nil
}
