package server

import (
	"github.com/PumPum7/modmail/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListThreads handles GET /guilds/:guild_id/threads
// @Summary List threads
// @Description Threads of a guild, newest first
// @Tags threads
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} models.Page[models.Thread]
// @Failure 400 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/threads [get]
func (s *Server) ListThreads(c *fiber.Ctx) error {
	p := parsePagination(c)
	page, err := s.threads.ListThreads(c.UserContext(), guildID(c), p.Page, p.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// CreateThread handles POST /guilds/:guild_id/threads
// @Summary Open a thread
// @Tags threads
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param request body service.CreateThreadInput true "Thread"
// @Success 201 {object} models.Thread
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/threads [post]
func (s *Server) CreateThread(c *fiber.Ctx) error {
	var req service.CreateThreadInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	thread, err := s.threads.CreateThread(c.UserContext(), guildID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(thread)
}

// GetThread handles GET /guilds/:guild_id/threads/:id
// @Summary Get a thread with its messages
// @Tags threads
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param id path int true "Thread ID"
// @Param page query int false "Message page (default 1)"
// @Param limit query int false "Message page size (default 50, max 100)"
// @Success 200 {object} models.ThreadDetail
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/threads/{id} [get]
func (s *Server) GetThread(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c)
	detail, err := s.threads.GetThread(c.UserContext(), guildID(c), id, p.Page, p.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// CloseThread handles POST /guilds/:guild_id/threads/:id/close
// @Summary Close a thread
// @Description Closing an already closed thread keeps the first close time and notifies again.
// @Tags threads
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param id path int true "Thread ID"
// @Param request body service.CloseThreadInput false "Closer"
// @Success 200 {object} models.Thread
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/threads/{id}/close [post]
func (s *Server) CloseThread(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.CloseThreadInput
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return nil
		}
	}
	thread, err := s.threads.CloseThread(c.UserContext(), guildID(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(thread)
}

// AddMessageToThread handles POST /guilds/:guild_id/threads/:id/messages
// @Summary Add a message to a thread
// @Tags threads
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param id path int true "Thread ID"
// @Param request body service.MessageInput true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/threads/{id}/messages [post]
func (s *Server) AddMessageToThread(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.MessageInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	msg, err := s.threads.AddMessage(c.UserContext(), guildID(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// UpdateThreadUrgency handles PUT /guilds/:guild_id/threads/:id/urgency
// @Summary Change thread urgency
// @Tags threads
// @Accept json
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Param id path int true "Thread ID"
// @Param request body service.UpdateUrgencyInput true "Urgency"
// @Success 200 {object} models.Thread
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /guilds/{guild_id}/threads/{id}/urgency [put]
func (s *Server) UpdateThreadUrgency(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.UpdateUrgencyInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	thread, err := s.threads.UpdateUrgency(c.UserContext(), guildID(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(thread)
}
