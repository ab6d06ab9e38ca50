package models

import "time"

// AnalyticsOverview summarizes a guild's modmail activity.
type AnalyticsOverview struct {
	TotalThreads         int64    `json:"total_threads"`
	OpenThreads          int64    `json:"open_threads"`
	ClosedThreads        int64    `json:"closed_threads"`
	TotalMessages        int64    `json:"total_messages"`
	TotalNotes           int64    `json:"total_notes"`
	BlockedUsers         int64    `json:"blocked_users"`
	AvgResponseTimeHours *float64 `json:"avg_response_time_hours"`
	ThreadsToday         int64    `json:"threads_today"`
	ThreadsThisWeek      int64    `json:"threads_this_week"`
	ThreadsThisMonth     int64    `json:"threads_this_month"`
}

// ThreadVolume is the number of threads opened on one day (YYYY-MM-DD).
type ThreadVolume struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ModeratorActivity aggregates what one moderator did in the reporting window.
type ModeratorActivity struct {
	ModeratorTag  string `json:"moderator_tag"`
	MessageCount  int64  `json:"message_count"`
	NoteCount     int64  `json:"note_count"`
	ThreadsClosed int64  `json:"threads_closed"`
}

// ResponseTimeMetrics reports first-response and resolution times in hours.
type ResponseTimeMetrics struct {
	AvgFirstResponseHours    *float64 `json:"avg_first_response_hours"`
	AvgResolutionTimeHours   *float64 `json:"avg_resolution_time_hours"`
	MedianFirstResponseHours *float64 `json:"median_first_response_hours"`
}

// AnalyticsSnapshot is every analytics report for one guild, as cached by the refresher.
type AnalyticsSnapshot struct {
	GuildID           string              `json:"guild_id"`
	ComputedAt        time.Time           `json:"computed_at"`
	Overview          AnalyticsOverview   `json:"overview"`
	ThreadVolume      []ThreadVolume      `json:"thread_volume"`
	ModeratorActivity []ModeratorActivity `json:"moderator_activity"`
	ResponseTimes     ResponseTimeMetrics `json:"response_times"`
}
