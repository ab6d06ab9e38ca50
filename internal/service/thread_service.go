package service

import (
	"context"
	"strings"

	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/notifications"
	"github.com/PumPum7/modmail/internal/observability"
	"github.com/PumPum7/modmail/internal/repository"
	"github.com/PumPum7/modmail/internal/validation"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

type ThreadService struct {
	threads    repository.ThreadRepository
	dispatcher *notifications.Dispatcher
}

type CreateThreadInput struct {
	UserID   string         `json:"user_id" validate:"required,max=255"`
	ThreadID string         `json:"thread_id" validate:"required,max=255"`
	Urgency  models.Urgency `json:"urgency" validate:"omitempty,urgency"`
}

type CloseThreadInput struct {
	ClosedByID  *string `json:"closed_by_id" validate:"omitempty,max=255"`
	ClosedByTag *string `json:"closed_by_tag" validate:"omitempty,max=255"`
}

type UpdateUrgencyInput struct {
	Urgency models.Urgency `json:"urgency" validate:"required,urgency"`
}

// MessageInput is the body of a new message, standalone or in a thread.
type MessageInput struct {
	AuthorID    string          `json:"author_id" validate:"required,max=255"`
	AuthorTag   string          `json:"author_tag" validate:"required,max=255"`
	Content     string          `json:"content" validate:"required"`
	Attachments json.RawMessage `json:"attachments" swaggertype:"array,object"`
}

// NewThreadService wires the thread rules. A nil dispatcher disables close notifications.
func NewThreadService(threads repository.ThreadRepository, dispatcher *notifications.Dispatcher) *ThreadService {
	return &ThreadService{threads: threads, dispatcher: dispatcher}
}

func (s *ThreadService) ListThreads(ctx context.Context, guildID string, page, limit int) (*models.Page[models.Thread], error) {
	page, limit = NormalizePage(page, limit, DefaultThreadPageSize)
	threads, total, err := s.threads.List(ctx, guildID, page, limit)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.Thread]{Data: threads, Pagination: models.NewPagination(page, limit, total)}, nil
}

func (s *ThreadService) CreateThread(ctx context.Context, guildID string, in CreateThreadInput) (*models.Thread, error) {
	ctx, span := observability.StartSpan(ctx, "ThreadService.CreateThread", guildID)
	var err error
	defer func() { observability.EndSpan(span, err) }()

	if err = validation.Struct(&in); err != nil {
		return nil, err
	}
	urgency := in.Urgency
	if urgency == "" {
		urgency = models.DefaultUrgency
	}

	thread := &models.Thread{
		UserID:   in.UserID,
		ThreadID: in.ThreadID,
		IsOpen:   true,
		Urgency:  urgency,
		GuildID:  guildID,
	}
	if err = s.threads.Create(ctx, thread); err != nil {
		return nil, err
	}
	observability.ThreadsCreated.WithLabelValues(string(urgency)).Inc()
	return thread, nil
}

// GetThread returns a thread with one page of its messages, oldest first.
func (s *ThreadService) GetThread(ctx context.Context, guildID string, id uint, page, limit int) (*models.ThreadDetail, error) {
	thread, err := s.threads.GetByID(ctx, guildID, id)
	if err != nil {
		return nil, err
	}

	page, limit = NormalizePage(page, limit, DefaultMessagePageSize)
	messages, total, err := s.threads.ListMessages(ctx, guildID, id, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.ThreadDetail{
		Thread:     *thread,
		Messages:   messages,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// CloseThread closes the thread and schedules the close notification. Closing
// an already closed thread succeeds and notifies again.
func (s *ThreadService) CloseThread(ctx context.Context, guildID string, id uint, in CloseThreadInput) (*models.Thread, error) {
	ctx, span := observability.StartSpan(ctx, "ThreadService.CloseThread", guildID)
	var err error
	defer func() { observability.EndSpan(span, err) }()

	if err = validation.Struct(&in); err != nil {
		return nil, err
	}

	var thread *models.Thread
	thread, err = s.threads.Close(ctx, guildID, id, in.ClosedByID, in.ClosedByTag)
	if err != nil {
		return nil, err
	}
	observability.ThreadsClosed.Inc()

	s.dispatcher.ThreadClosed(ctx, notifications.NewThreadClosedEvent(*thread, in.ClosedByID, in.ClosedByTag))
	return thread, nil
}

func (s *ThreadService) UpdateUrgency(ctx context.Context, guildID string, id uint, in UpdateUrgencyInput) (*models.Thread, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	return s.threads.UpdateUrgency(ctx, guildID, id, in.Urgency)
}

func (s *ThreadService) AddMessage(ctx context.Context, guildID string, id uint, in MessageInput) (*models.Message, error) {
	msg, err := newMessage(guildID, in)
	if err != nil {
		return nil, err
	}
	if err := s.threads.AddMessage(ctx, guildID, id, msg); err != nil {
		return nil, err
	}
	observability.MessagesCreated.WithLabelValues("thread").Inc()
	return msg, nil
}

func newMessage(guildID string, in MessageInput) (*models.Message, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	attachments, err := normalizeAttachments(in.Attachments)
	if err != nil {
		return nil, err
	}
	return &models.Message{
		AuthorID:    in.AuthorID,
		AuthorTag:   in.AuthorTag,
		Content:     in.Content,
		Attachments: attachments,
		GuildID:     guildID,
	}, nil
}

// normalizeAttachments accepts an absent/null value or a JSON array.
func normalizeAttachments(raw json.RawMessage) (datatypes.JSON, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return datatypes.JSON("[]"), nil
	}
	if !strings.HasPrefix(trimmed, "[") || !json.Valid([]byte(trimmed)) {
		return nil, models.NewValidationError("attachments must be a JSON array")
	}
	return datatypes.JSON(trimmed), nil
}
