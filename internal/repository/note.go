package repository

import (
	"context"
	"fmt"

	"github.com/PumPum7/modmail/internal/models"

	"gorm.io/gorm"
)

// NoteRepository defines persistence operations for internal thread notes.
type NoteRepository interface {
	ListByThread(ctx context.Context, guildID string, threadID uint) ([]models.Note, error)
	Create(ctx context.Context, note *models.Note) error
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository returns a new NoteRepository implementation.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) ListByThread(ctx context.Context, guildID string, threadID uint) ([]models.Note, error) {
	notes := []models.Note{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := threadInGuild(tx, guildID, threadID); err != nil {
			return err
		}
		return tx.Where("guild_id = ? AND thread_id = ?", guildID, threadID).
			Order("created_at ASC").
			Find(&notes).Error
	})
	if err != nil {
		return nil, translate(err, "Thread", threadID)
	}
	return notes, nil
}

// Create stores a note on a thread of the note's guild.
func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	if note.ThreadID == nil {
		return r.create(r.db.WithContext(ctx), note)
	}
	err := transaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := threadInGuild(tx, note.GuildID, *note.ThreadID); err != nil {
			return err
		}
		return r.create(tx, note)
	})
	return translate(err, "Thread", *note.ThreadID)
}

func (r *noteRepository) create(tx *gorm.DB, note *models.Note) error {
	if err := tx.Create(note).Error; err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}
