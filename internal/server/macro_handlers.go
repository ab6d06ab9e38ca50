package server

import (
	"github.com/PumPum7/modmail/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListMacros handles GET /guilds/:guild_id/macros
// @Summary List macros
// @Tags macros
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Success 200 {array} models.Macro
// @Router /guilds/{guild_id}/macros [get]
func (s *Server) ListMacros(c *fiber.Ctx) error {
	macros, err := s.macros.ListMacros(c.UserContext(), guildID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(macros)
}

// ListQuickAccessMacros handles GET /guilds/:guild_id/macros/quick-access
// @Summary List quick-access macros (at most 3)
// @Tags macros
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Success 200 {array} models.Macro
// @Router /guilds/{guild_id}/macros/quick-access [get]
func (s *Server) ListQuickAccessMacros(c *fiber.Ctx) error {
	macros, err := s.macros.ListQuickAccessMacros(c.UserContext(), guildID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(macros)
}

// CreateMacro handles POST /guilds/:guild_id/macros
// @Summary Create a macro
// @Tags macros
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param request body service.CreateMacroInput true "Macro"
// @Success 201 {object} models.Macro
// @Failure 400 {object} models.ErrorResponse "Validation error or QUICK_ACCESS_LIMIT"
// @Failure 409 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/macros [post]
func (s *Server) CreateMacro(c *fiber.Ctx) error {
	var req service.CreateMacroInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	macro, err := s.macros.CreateMacro(c.UserContext(), guildID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(macro)
}

// GetMacro handles GET /guilds/:guild_id/macros/:name
// @Summary Get a macro by name
// @Tags macros
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param name path string true "Macro name"
// @Success 200 {object} models.Macro
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/macros/{name} [get]
func (s *Server) GetMacro(c *fiber.Ctx) error {
	macro, err := s.macros.GetMacro(c.UserContext(), guildID(c), c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(macro)
}

// UpdateMacro handles PUT /guilds/:guild_id/macros/:name
// @Summary Update a macro
// @Tags macros
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param name path string true "Macro name"
// @Param request body service.UpdateMacroInput true "Fields to change"
// @Success 200 {object} models.Macro
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/macros/{name} [put]
func (s *Server) UpdateMacro(c *fiber.Ctx) error {
	var req service.UpdateMacroInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	macro, err := s.macros.UpdateMacro(c.UserContext(), guildID(c), c.Params("name"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(macro)
}

// DeleteMacro handles DELETE /guilds/:guild_id/macros/:name
// @Summary Delete a macro
// @Tags macros
// @Param guild_id path string true "Guild ID"
// @Param name path string true "Macro name"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/macros/{name} [delete]
func (s *Server) DeleteMacro(c *fiber.Ctx) error {
	if err := s.macros.DeleteMacro(c.UserContext(), guildID(c), c.Params("name")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
