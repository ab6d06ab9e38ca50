package server

import (
	"github.com/PumPum7/modmail/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListBlockedUsers handles GET /guilds/:guild_id/blocked-users
// @Summary List blocked users
// @Tags blocked-users
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Success 200 {array} models.BlockedUser
// @Router /guilds/{guild_id}/blocked-users [get]
func (s *Server) ListBlockedUsers(c *fiber.Ctx) error {
	users, err := s.blocked.ListBlockedUsers(c.UserContext(), guildID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// BlockUser handles POST /guilds/:guild_id/blocked-users
// @Summary Block a user from opening threads
// @Tags blocked-users
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param request body service.BlockUserInput true "Block"
// @Success 201 {object} models.BlockedUser
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/blocked-users [post]
func (s *Server) BlockUser(c *fiber.Ctx) error {
	var req service.BlockUserInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	user, err := s.blocked.BlockUser(c.UserContext(), guildID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetBlockStatus handles GET /guilds/:guild_id/blocked-users/:user_id
// @Summary Block status of a user
// @Tags blocked-users
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param user_id path string true "User ID"
// @Success 200 {object} models.BlockStatus
// @Router /guilds/{guild_id}/blocked-users/{user_id} [get]
func (s *Server) GetBlockStatus(c *fiber.Ctx) error {
	status, err := s.blocked.GetBlockStatus(c.UserContext(), guildID(c), c.Params("user_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(status)
}

// UnblockUser handles DELETE /guilds/:guild_id/blocked-users/:user_id
// @Summary Unblock a user
// @Tags blocked-users
// @Param guild_id path string true "Guild ID"
// @Param user_id path string true "User ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/blocked-users/{user_id} [delete]
func (s *Server) UnblockUser(c *fiber.Ctx) error {
	if err := s.blocked.UnblockUser(c.UserContext(), guildID(c), c.Params("user_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
