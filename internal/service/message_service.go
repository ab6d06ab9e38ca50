package service

import (
	"context"

	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/observability"
	"github.com/PumPum7/modmail/internal/repository"
	"github.com/PumPum7/modmail/internal/validation"
)

type MessageService struct {
	messages repository.MessageRepository
}

func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

func (s *MessageService) ListMessages(ctx context.Context, guildID string, page, limit int) (*models.Page[models.Message], error) {
	page, limit = NormalizePage(page, limit, DefaultMessagePageSize)
	messages, total, err := s.messages.List(ctx, guildID, page, limit)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.Message]{Data: messages, Pagination: models.NewPagination(page, limit, total)}, nil
}

func (s *MessageService) CreateMessage(ctx context.Context, guildID string, in MessageInput) (*models.Message, error) {
	msg, err := newMessage(guildID, in)
	if err != nil {
		return nil, err
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	observability.MessagesCreated.WithLabelValues("standalone").Inc()
	return msg, nil
}

type NoteService struct {
	notes repository.NoteRepository
}

type CreateNoteInput struct {
	AuthorID  string `json:"author_id" validate:"required,max=255"`
	AuthorTag string `json:"author_tag" validate:"required,max=255"`
	Content   string `json:"content" validate:"required"`
}

func NewNoteService(notes repository.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

func (s *NoteService) ListNotes(ctx context.Context, guildID string, threadID uint) ([]models.Note, error) {
	return s.notes.ListByThread(ctx, guildID, threadID)
}

func (s *NoteService) CreateNote(ctx context.Context, guildID string, threadID uint, in CreateNoteInput) (*models.Note, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	note := &models.Note{
		ThreadID:  &threadID,
		AuthorID:  in.AuthorID,
		AuthorTag: in.AuthorTag,
		Content:   in.Content,
		GuildID:   guildID,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}
