package repository

import (
	"context"
	"fmt"

	"github.com/PumPum7/modmail/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines persistence operations for guild messages.
type MessageRepository interface {
	List(ctx context.Context, guildID string, page, limit int) ([]models.Message, int64, error)
	Create(ctx context.Context, msg *models.Message) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a new MessageRepository implementation.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) List(ctx context.Context, guildID string, page, limit int) ([]models.Message, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Message{}).Where("guild_id = ?", guildID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	messages := []models.Message{}
	err := r.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset(page, limit)).
		Find(&messages).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list messages: %w", err)
	}
	return messages, total, nil
}

func (r *messageRepository) Create(ctx context.Context, msg *models.Message) error {
	return translate(r.db.WithContext(ctx).Create(msg).Error, "Message", msg.ID)
}
