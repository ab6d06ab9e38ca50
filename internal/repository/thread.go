package repository

import (
	"context"
	"fmt"

	"github.com/PumPum7/modmail/internal/database"
	"github.com/PumPum7/modmail/internal/models"

	"gorm.io/gorm"
)

// ThreadRepository defines persistence operations for modmail threads.
type ThreadRepository interface {
	List(ctx context.Context, guildID string, page, limit int) ([]models.Thread, int64, error)
	GetByID(ctx context.Context, guildID string, id uint) (*models.Thread, error)
	Create(ctx context.Context, thread *models.Thread) error
	Close(ctx context.Context, guildID string, id uint, closedByID, closedByTag *string) (*models.Thread, error)
	UpdateUrgency(ctx context.Context, guildID string, id uint, urgency models.Urgency) (*models.Thread, error)
	ListMessages(ctx context.Context, guildID string, id uint, page, limit int) ([]models.Message, int64, error)
	AddMessage(ctx context.Context, guildID string, id uint, msg *models.Message) error
}

type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository returns a new ThreadRepository implementation.
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) List(ctx context.Context, guildID string, page, limit int) ([]models.Thread, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&models.Thread{}).Where("guild_id = ?", guildID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count threads: %w", err)
	}

	threads := []models.Thread{}
	err := r.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("id DESC").
		Limit(limit).
		Offset(offset(page, limit)).
		Find(&threads).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list threads: %w", err)
	}
	return threads, total, nil
}

func (r *threadRepository) GetByID(ctx context.Context, guildID string, id uint) (*models.Thread, error) {
	var thread models.Thread
	err := r.db.WithContext(ctx).Where("guild_id = ? AND id = ?", guildID, id).First(&thread).Error
	if err != nil {
		return nil, translate(err, "Thread", id)
	}
	return &thread, nil
}

// Create inserts an open thread unless the user already has one open in the
// guild. The partial unique index on (guild_id, user_id) backs the check.
func (r *threadRepository) Create(ctx context.Context, thread *models.Thread) error {
	return transaction(ctx, r.db, func(tx *gorm.DB) error {
		var open int64
		err := tx.Model(&models.Thread{}).
			Where("guild_id = ? AND user_id = ? AND is_open = ?", thread.GuildID, thread.UserID, true).
			Count(&open).Error
		if err != nil {
			return fmt.Errorf("check open threads: %w", err)
		}
		if open > 0 {
			return models.NewConflictError(fmt.Sprintf("User %s already has an open thread", thread.UserID))
		}

		if err := tx.Create(thread).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return models.NewConflictError(fmt.Sprintf("User %s already has an open thread", thread.UserID))
			}
			return fmt.Errorf("insert thread: %w", err)
		}
		return nil
	})
}

// Close marks the thread closed. closed_at and the closer are only written the
// first time, so repeated closes leave the original record intact.
func (r *threadRepository) Close(ctx context.Context, guildID string, id uint, closedByID, closedByTag *string) (*models.Thread, error) {
	var thread models.Thread
	err := transaction(ctx, r.db, func(tx *gorm.DB) error {
		now := tx.NowFunc()
		res := tx.Model(&models.Thread{}).
			Where("guild_id = ? AND id = ?", guildID, id).
			Updates(map[string]interface{}{
				"is_open":       false,
				"closed_at":     gorm.Expr("COALESCE(closed_at, ?)", now),
				"closed_by_id":  gorm.Expr("COALESCE(closed_by_id, ?)", closedByID),
				"closed_by_tag": gorm.Expr("COALESCE(closed_by_tag, ?)", closedByTag),
				"updated_at":    now,
			})
		if res.Error != nil {
			return fmt.Errorf("close thread: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Thread", id)
		}
		return tx.Where("guild_id = ? AND id = ?", guildID, id).First(&thread).Error
	})
	if err != nil {
		return nil, translate(err, "Thread", id)
	}
	return &thread, nil
}

func (r *threadRepository) UpdateUrgency(ctx context.Context, guildID string, id uint, urgency models.Urgency) (*models.Thread, error) {
	var thread models.Thread
	err := transaction(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Model(&models.Thread{}).
			Where("guild_id = ? AND id = ?", guildID, id).
			Updates(map[string]interface{}{"urgency": urgency, "updated_at": tx.NowFunc()})
		if res.Error != nil {
			return fmt.Errorf("update urgency: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Thread", id)
		}
		return tx.Where("guild_id = ? AND id = ?", guildID, id).First(&thread).Error
	})
	if err != nil {
		return nil, translate(err, "Thread", id)
	}
	return &thread, nil
}

// ListMessages pages through the messages linked to a thread, oldest first.
func (r *threadRepository) ListMessages(ctx context.Context, guildID string, id uint, page, limit int) ([]models.Message, int64, error) {
	linked := func(db *gorm.DB) *gorm.DB {
		return db.Model(&models.Message{}).
			Joins("JOIN thread_messages ON thread_messages.message_id = messages.id").
			Where("thread_messages.thread_id = ? AND messages.guild_id = ?", id, guildID)
	}

	var total int64
	if err := linked(r.db.WithContext(ctx)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count thread messages: %w", err)
	}

	messages := []models.Message{}
	err := linked(r.db.WithContext(ctx)).
		Order("messages.created_at ASC").
		Limit(limit).
		Offset(offset(page, limit)).
		Find(&messages).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list thread messages: %w", err)
	}
	return messages, total, nil
}

// AddMessage stores msg and links it to the thread in one transaction.
func (r *threadRepository) AddMessage(ctx context.Context, guildID string, id uint, msg *models.Message) error {
	err := transaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := threadInGuild(tx, guildID, id); err != nil {
			return err
		}
		if err := tx.Create(msg).Error; err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
		link := models.ThreadMessage{ThreadID: id, MessageID: msg.ID}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("link message: %w", err)
		}
		return nil
	})
	return translate(err, "Thread", id)
}
