package server

import (
	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListServers handles GET /servers
// @Summary List registered guilds
// @Tags servers
// @Produce json
// @Success 200 {array} models.Server
// @Router /servers [get]
func (s *Server) ListServers(c *fiber.Ctx) error {
	servers, err := s.servers.ListServers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(servers)
}

// CreateServer handles POST /servers
// @Summary Register a guild
// @Tags servers
// @Accept json
// @Produce json
// @Param request body service.CreateServerInput true "Guild"
// @Success 201 {object} models.Server
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /servers [post]
func (s *Server) CreateServer(c *fiber.Ctx) error {
	var req service.CreateServerInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	server, err := s.servers.CreateServer(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(server)
}

// GetServer handles GET /servers/:guild_id
// @Summary Get a registered guild
// @Tags servers
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Success 200 {object} models.Server
// @Failure 404 {object} models.ErrorResponse
// @Router /servers/{guild_id} [get]
func (s *Server) GetServer(c *fiber.Ctx) error {
	server, err := s.servers.GetServer(c.UserContext(), guildID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(server)
}

// UpdateServer handles PUT /servers/:guild_id
// @Summary Update a registered guild
// @Tags servers
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param request body service.UpdateServerInput true "Fields to change"
// @Success 200 {object} models.Server
// @Failure 404 {object} models.ErrorResponse
// @Router /servers/{guild_id} [put]
func (s *Server) UpdateServer(c *fiber.Ctx) error {
	var req service.UpdateServerInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	server, err := s.servers.UpdateServer(c.UserContext(), guildID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(server)
}

// DeleteServer handles DELETE /servers/:guild_id
// @Summary Remove a registered guild
// @Tags servers
// @Param guild_id path string true "Guild ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /servers/{guild_id} [delete]
func (s *Server) DeleteServer(c *fiber.Ctx) error {
	if err := s.servers.DeleteServer(c.UserContext(), guildID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ValidateGuilds handles POST /validate-guilds
// @Summary Filter candidate guilds to those with the bot installed
// @Tags servers
// @Accept json
// @Produce json
// @Param request body []models.GuildCandidate true "Candidates"
// @Success 200 {array} models.ValidatedGuild
// @Failure 400 {object} models.ErrorResponse
// @Router /validate-guilds [post]
func (s *Server) ValidateGuilds(c *fiber.Ctx) error {
	var req []models.GuildCandidate
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	guilds, err := s.servers.ValidateGuilds(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(guilds)
}

// GetGuildConfig handles GET /guilds/:guild_id/config
// @Summary Get guild configuration
// @Tags config
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Success 200 {object} models.GuildConfig
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/config [get]
func (s *Server) GetGuildConfig(c *fiber.Ctx) error {
	cfg, err := s.configs.GetGuildConfig(c.UserContext(), guildID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cfg)
}

// CreateGuildConfig handles POST /guilds/:guild_id/config
// @Summary Create guild configuration
// @Tags config
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param request body service.GuildConfigInput true "Configuration"
// @Success 201 {object} models.GuildConfig
// @Failure 409 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/config [post]
func (s *Server) CreateGuildConfig(c *fiber.Ctx) error {
	var req service.GuildConfigInput
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return nil
		}
	}
	cfg, err := s.configs.CreateGuildConfig(c.UserContext(), guildID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cfg)
}

// UpdateGuildConfig handles PUT /guilds/:guild_id/config
// @Summary Update guild configuration
// @Tags config
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param request body service.GuildConfigInput true "Fields to change"
// @Success 200 {object} models.GuildConfig
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/config [put]
func (s *Server) UpdateGuildConfig(c *fiber.Ctx) error {
	var req service.GuildConfigInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	cfg, err := s.configs.UpdateGuildConfig(c.UserContext(), guildID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cfg)
}
