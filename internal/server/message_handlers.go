package server

import (
	"github.com/PumPum7/modmail/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListMessages handles GET /guilds/:guild_id/messages
// @Summary List messages
// @Tags messages
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 50, max 100)"
// @Success 200 {object} models.Page[models.Message]
// @Router /guilds/{guild_id}/messages [get]
func (s *Server) ListMessages(c *fiber.Ctx) error {
	p := parsePagination(c)
	page, err := s.messages.ListMessages(c.UserContext(), guildID(c), p.Page, p.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// CreateMessage handles POST /guilds/:guild_id/messages
// @Summary Store a standalone message
// @Tags messages
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param request body service.MessageInput true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/messages [post]
func (s *Server) CreateMessage(c *fiber.Ctx) error {
	var req service.MessageInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	msg, err := s.messages.CreateMessage(c.UserContext(), guildID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// ListNotes handles GET /guilds/:guild_id/threads/:id/notes
// @Summary List moderator notes of a thread
// @Tags notes
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param id path int true "Thread ID"
// @Success 200 {array} models.Note
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/threads/{id}/notes [get]
func (s *Server) ListNotes(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	notes, err := s.notes.ListNotes(c.UserContext(), guildID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notes)
}

// CreateNote handles POST /guilds/:guild_id/threads/:id/notes
// @Summary Add a moderator note
// @Tags notes
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param id path int true "Thread ID"
// @Param request body service.CreateNoteInput true "Note"
// @Success 201 {object} models.Note
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/threads/{id}/notes [post]
func (s *Server) CreateNote(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.CreateNoteInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	note, err := s.notes.CreateNote(c.UserContext(), guildID(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}
