// Package repository implements guild-scoped data access for the modmail API.
package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/PumPum7/modmail/internal/database"
	"github.com/PumPum7/modmail/internal/models"

	"gorm.io/gorm"
)

// translate maps driver errors onto the AppError taxonomy. Anything that is
// neither a missing row nor a unique violation is wrapped and returned as is.
func translate(err error, resource string, id interface{}) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError(resource, id)
	case database.IsUniqueViolation(err):
		return models.NewConflictError(fmt.Sprintf("%s %v already exists", resource, id))
	default:
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return fmt.Errorf("%s %v: %w", resource, id, err)
	}
}

// threadInGuild verifies that the thread exists and belongs to the guild.
func threadInGuild(tx *gorm.DB, guildID string, threadID uint) error {
	var count int64
	err := tx.Model(&models.Thread{}).
		Where("guild_id = ? AND id = ?", guildID, threadID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("check thread: %w", err)
	}
	if count == 0 {
		return models.NewNotFoundError("Thread", threadID)
	}
	return nil
}

// lockGuild serializes writers of one guild-scoped resource for the rest of
// the transaction. SQLite serializes writers on its own, so it is a no-op there.
func lockGuild(tx *gorm.DB, scope, guildID string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", scope+":"+guildID).Error
}

func transaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

func offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	// Pages past the addressable range land beyond every row.
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}
