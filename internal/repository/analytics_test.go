package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/PumPum7/modmail/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var overviewColumns = []string{
	"total_threads", "open_threads", "closed_threads", "threads_today", "threads_this_week",
	"threads_this_month", "total_messages", "total_notes", "blocked_users", "avg_response_time_hours",
}

func TestAnalyticsRepository_Overview(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM first_responses fr) AS avg_response_time_hours`)).
		WillReturnRows(sqlmock.NewRows(overviewColumns).AddRow(10, 4, 6, 1, 3, 9, 120, 15, 2, 1.5))

	overview, err := repo.Overview(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), overview.TotalThreads)
	assert.Equal(t, int64(4), overview.OpenThreads)
	assert.Equal(t, int64(6), overview.ClosedThreads)
	assert.Equal(t, int64(9), overview.ThreadsThisMonth)
	assert.Equal(t, int64(2), overview.BlockedUsers)
	require.NotNil(t, overview.AvgResponseTimeHours)
	assert.InDelta(t, 1.5, *overview.AvgResponseTimeHours, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_ThreadVolume(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`TO_CHAR(DATE(created_at), 'YYYY-MM-DD') AS date`)).
		WillReturnRows(sqlmock.NewRows([]string{"date", "count"}).
			AddRow("2024-05-02", 3).
			AddRow("2024-05-01", 1))

	volume, err := repo.ThreadVolume(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, volume, 2)
	assert.Equal(t, "2024-05-02", volume[0].Date)
	assert.Equal(t, int64(3), volume[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_ModeratorActivity(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`FULL OUTER JOIN note_counts nc`).
		WillReturnRows(sqlmock.NewRows([]string{"moderator_tag", "message_count", "note_count", "threads_closed"}).
			AddRow("alice#1", 10, 2, 4).
			AddRow("bob#2", 0, 3, 0))

	activity, err := repo.ModeratorActivity(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, activity, 2)
	assert.Equal(t, "alice#1", activity[0].ModeratorTag)
	assert.Equal(t, int64(4), activity[0].ThreadsClosed)
	assert.Equal(t, int64(3), activity[1].NoteCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_ResponseTimes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`PERCENTILE_CONT(0.5)`)).
		WillReturnRows(sqlmock.NewRows([]string{"avg_first_response_hours", "median_first_response_hours", "avg_resolution_time_hours"}).
			AddRow(2.0, 1.0, nil))

	metrics, err := repo.ResponseTimes(context.Background(), "g1")
	require.NoError(t, err)
	require.NotNil(t, metrics.AvgFirstResponseHours)
	require.NotNil(t, metrics.MedianFirstResponseHours)
	assert.Equal(t, 1.0, *metrics.MedianFirstResponseHours)
	assert.Nil(t, metrics.AvgResolutionTimeHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_ErrorsAreWrapped(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`first_responses`).WillReturnError(boom)

	_, err := repo.ResponseTimes(context.Background(), "g1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestAnalyticsRepository_KnownGuildIDs(t *testing.T) {
	db := setupTestDB(t)
	threads := NewThreadRepository(db)
	servers := NewServerRepository(db)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	require.NoError(t, servers.Create(ctx, &models.Server{GuildID: "g1", GuildName: "One"}))
	require.NoError(t, threads.Create(ctx, newThread("g2", "u1")))
	require.NoError(t, threads.Create(ctx, newThread("g1", "u1")))

	ids, err := repo.KnownGuildIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g2"}, ids)
}
