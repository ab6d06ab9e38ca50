package cache

import (
	"fmt"
	"time"
)

const (
	analyticsKeyFormat    = "modmail:analytics:%s:%s"
	threadEventsKeyFormat = "modmail:guild:%s:threads"
)

// DefaultAnalyticsTTL applies when ANALYTICS_CACHE_TTL is unset.
const DefaultAnalyticsTTL = 90 * time.Minute

// Analytics report kinds, used as key suffixes and metric labels.
const (
	ReportOverview          = "overview"
	ReportThreadVolume      = "thread-volume"
	ReportModeratorActivity = "moderator-activity"
	ReportResponseTimes     = "response-times"
)

// AnalyticsReports lists every cached report kind.
var AnalyticsReports = []string{
	ReportOverview,
	ReportThreadVolume,
	ReportModeratorActivity,
	ReportResponseTimes,
}

func AnalyticsKey(guildID, report string) string {
	return fmt.Sprintf(analyticsKeyFormat, guildID, report)
}

// AnalyticsKeys returns the keys of every report cached for a guild.
func AnalyticsKeys(guildID string) []string {
	keys := make([]string, 0, len(AnalyticsReports))
	for _, r := range AnalyticsReports {
		keys = append(keys, AnalyticsKey(guildID, r))
	}
	return keys
}

// ThreadEventsChannel is the pub/sub channel carrying a guild's thread events.
func ThreadEventsChannel(guildID string) string {
	return fmt.Sprintf(threadEventsKeyFormat, guildID)
}
