package repository

import (
	"context"
	"fmt"

	"github.com/PumPum7/modmail/internal/models"

	"gorm.io/gorm"
)

// BlockedUserRepository defines persistence operations for the guild block list.
type BlockedUserRepository interface {
	List(ctx context.Context, guildID string) ([]models.BlockedUser, error)
	GetByUserID(ctx context.Context, guildID, userID string) (*models.BlockedUser, error)
	Create(ctx context.Context, user *models.BlockedUser) error
	Delete(ctx context.Context, guildID, userID string) error
}

type blockedUserRepository struct {
	db *gorm.DB
}

// NewBlockedUserRepository returns a new BlockedUserRepository implementation.
func NewBlockedUserRepository(db *gorm.DB) BlockedUserRepository {
	return &blockedUserRepository{db: db}
}

func (r *blockedUserRepository) List(ctx context.Context, guildID string) ([]models.BlockedUser, error) {
	users := []models.BlockedUser{}
	err := r.db.WithContext(ctx).Where("guild_id = ?", guildID).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list blocked users: %w", err)
	}
	return users, nil
}

func (r *blockedUserRepository) GetByUserID(ctx context.Context, guildID, userID string) (*models.BlockedUser, error) {
	var user models.BlockedUser
	if err := r.db.WithContext(ctx).Where("guild_id = ? AND user_id = ?", guildID, userID).First(&user).Error; err != nil {
		return nil, translate(err, "Blocked user", userID)
	}
	return &user, nil
}

func (r *blockedUserRepository) Create(ctx context.Context, user *models.BlockedUser) error {
	return translate(r.db.WithContext(ctx).Create(user).Error, "Blocked user", user.UserID)
}

func (r *blockedUserRepository) Delete(ctx context.Context, guildID, userID string) error {
	res := r.db.WithContext(ctx).Where("guild_id = ? AND user_id = ?", guildID, userID).Delete(&models.BlockedUser{})
	if res.Error != nil {
		return fmt.Errorf("delete blocked user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Blocked user", userID)
	}
	return nil
}
