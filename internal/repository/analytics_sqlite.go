package repository

// SQLite keeps timestamps as text, so every window compares julianday values
// and durations are julianday differences scaled to hours. SQLite has no
// percentile aggregate; the median comes from firstResponseHours.
var sqliteAnalytics = analyticsQueries{
	overview:           sqliteOverviewQuery,
	threadVolume:       sqliteThreadVolumeQuery,
	moderatorActivity:  sqliteModeratorActivityQuery,
	responseTimes:      sqliteResponseTimesQuery,
	firstResponseHours: sqliteFirstResponseHoursQuery,
}

const sqliteOverviewQuery = firstResponsesCTE + `
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
    (SELECT AVG((julianday(fr.first_response_at) - julianday(fr.created_at)) * 24.0)
        FROM first_responses fr) AS avg_response_time_hours
FROM (
    SELECT
        COUNT(*) AS total_threads,
        COUNT(CASE WHEN is_open THEN 1 END) AS open_threads,
        COUNT(CASE WHEN NOT is_open THEN 1 END) AS closed_threads,
        COUNT(CASE WHEN julianday(created_at) >= julianday('now', 'start of day') THEN 1 END) AS threads_today,
        COUNT(CASE WHEN julianday(created_at) >= julianday('now', 'start of day', '-7 days') THEN 1 END) AS threads_this_week,
        COUNT(CASE WHEN julianday(created_at) >= julianday('now', 'start of day', '-30 days') THEN 1 END) AS threads_this_month
    FROM threads
    WHERE guild_id = @guild
) tc`

const sqliteThreadVolumeQuery = `
SELECT strftime('%Y-%m-%d', created_at) AS date, COUNT(*) AS count
FROM threads
WHERE guild_id = @guild AND julianday(created_at) >= julianday('now', 'start of day', '-30 days')
GROUP BY strftime('%Y-%m-%d', created_at)
ORDER BY date DESC`

const sqliteModeratorActivityQuery = `
WITH message_counts AS (
    SELECT m.author_tag, COUNT(*) AS message_count
    FROM messages m
    WHERE m.guild_id = @guild
      AND julianday(m.created_at) >= julianday('now', 'start of day', '-30 days')
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
    WHERE guild_id = @guild AND julianday(created_at) >= julianday('now', 'start of day', '-30 days')
    GROUP BY author_tag
),
close_counts AS (
    SELECT closed_by_tag AS author_tag, COUNT(*) AS threads_closed
    FROM threads
    WHERE guild_id = @guild
      AND closed_by_tag IS NOT NULL
      AND julianday(closed_at) >= julianday('now', 'start of day', '-30 days')
    GROUP BY closed_by_tag
),
tags AS (
    SELECT author_tag FROM message_counts
    UNION SELECT author_tag FROM note_counts
    UNION SELECT author_tag FROM close_counts
)
SELECT
    tags.author_tag AS moderator_tag,
    COALESCE(mc.message_count, 0) AS message_count,
    COALESCE(nc.note_count, 0) AS note_count,
    COALESCE(cc.threads_closed, 0) AS threads_closed
FROM tags
LEFT JOIN message_counts mc ON mc.author_tag = tags.author_tag
LEFT JOIN note_counts nc ON nc.author_tag = tags.author_tag
LEFT JOIN close_counts cc ON cc.author_tag = tags.author_tag
ORDER BY (COALESCE(mc.message_count, 0) + COALESCE(nc.note_count, 0)) DESC, moderator_tag ASC`

const sqliteResponseTimesQuery = firstResponsesCTE + `
SELECT
    (SELECT AVG((julianday(first_response_at) - julianday(created_at)) * 24.0)
        FROM first_responses
        WHERE julianday(created_at) >= julianday('now', 'start of day', '-30 days')) AS avg_first_response_hours,
    (SELECT AVG((julianday(COALESCE(closed_at, updated_at)) - julianday(created_at)) * 24.0)
        FROM threads
        WHERE guild_id = @guild
          AND NOT is_open
          AND julianday(created_at) >= julianday('now', 'start of day', '-30 days')) AS avg_resolution_time_hours`

const sqliteFirstResponseHoursQuery = firstResponsesCTE + `
SELECT (julianday(first_response_at) - julianday(created_at)) * 24.0 AS hours
FROM first_responses
WHERE julianday(created_at) >= julianday('now', 'start of day', '-30 days')
ORDER BY hours`
