package server

import (
	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/service"
	"github.com/PumPum7/modmail/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// sourceHeader tells clients whether analytics came from the summary cache.
const sourceHeader = "X-Analytics-Source"

func respondAnalytics(c *fiber.Ctx, data any, source service.Source) error {
	c.Set(sourceHeader, string(source))
	return c.JSON(data)
}

// GetOverview handles GET /guilds/:guild_id/analytics/overview
// @Summary Thread, message and response-time totals
// @Tags analytics
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Success 200 {object} models.AnalyticsOverview
// @Header 200 {string} X-Analytics-Source "cache or live"
// @Router /guilds/{guild_id}/analytics/overview [get]
func (s *Server) GetOverview(c *fiber.Ctx) error {
	overview, source, err := s.analytics.Overview(c.UserContext(), guildID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondAnalytics(c, overview, source)
}

// GetThreadVolume handles GET /guilds/:guild_id/analytics/thread-volume
// @Summary Threads opened per day over the last 30 days
// @Tags analytics
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Success 200 {array} models.ThreadVolume
// @Header 200 {string} X-Analytics-Source "cache or live"
// @Router /guilds/{guild_id}/analytics/thread-volume [get]
func (s *Server) GetThreadVolume(c *fiber.Ctx) error {
	volume, source, err := s.analytics.ThreadVolume(c.UserContext(), guildID(c))
	if err != nil {
		return respondError(c, err)
	}
	if volume == nil {
		volume = []models.ThreadVolume{}
	}
	return respondAnalytics(c, volume, source)
}

// GetModeratorActivity handles GET /guilds/:guild_id/analytics/moderator-activity
// @Summary Messages, notes and closes per moderator over the last 30 days
// @Tags analytics
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Success 200 {array} models.ModeratorActivity
// @Header 200 {string} X-Analytics-Source "cache or live"
// @Router /guilds/{guild_id}/analytics/moderator-activity [get]
func (s *Server) GetModeratorActivity(c *fiber.Ctx) error {
	activity, source, err := s.analytics.ModeratorActivity(c.UserContext(), guildID(c))
	if err != nil {
		return respondError(c, err)
	}
	if activity == nil {
		activity = []models.ModeratorActivity{}
	}
	return respondAnalytics(c, activity, source)
}

// GetResponseTimes handles GET /guilds/:guild_id/analytics/response-times
// @Summary First-response and resolution times over the last 30 days
// @Tags analytics
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Success 200 {object} models.ResponseTimeMetrics
// @Header 200 {string} X-Analytics-Source "cache or live"
// @Router /guilds/{guild_id}/analytics/response-times [get]
func (s *Server) GetResponseTimes(c *fiber.Ctx) error {
	times, source, err := s.analytics.ResponseTimes(c.UserContext(), guildID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondAnalytics(c, times, source)
}

// RefreshAnalytics handles POST /analytics/refresh
// @Summary Recompute cached analytics
// @Description Refreshes one guild when guild_id is given, every known guild otherwise.
// @Tags analytics
// @Produce json
// @Param guild_id query string false "Guild ID"
// @Success 200 {object} object{success=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /analytics/refresh [post]
func (s *Server) RefreshAnalytics(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if gid := c.Query("guild_id"); gid != "" {
		if err := validation.ValidateGuildID(gid); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(err.Error()))
		}
		if _, err := s.analytics.Refresh(ctx, gid); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"success": "Analytics data refreshed successfully"})
	}

	refreshed, err := s.analytics.RefreshAll(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":   "Analytics data refreshed successfully",
		"refreshed": refreshed,
	})
}
