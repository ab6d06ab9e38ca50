package repository

import (
	"context"
	"fmt"

	"github.com/PumPum7/modmail/internal/models"

	"gorm.io/gorm"
)

// GuildConfigRepository defines persistence operations for per-guild settings.
type GuildConfigRepository interface {
	Get(ctx context.Context, guildID string) (*models.GuildConfig, error)
	Create(ctx context.Context, cfg *models.GuildConfig) error
	Update(ctx context.Context, cfg *models.GuildConfig) error
	ConfiguredGuildIDs(ctx context.Context, guildIDs []string) (map[string]bool, error)
}

type guildConfigRepository struct {
	db *gorm.DB
}

// NewGuildConfigRepository returns a new GuildConfigRepository implementation.
func NewGuildConfigRepository(db *gorm.DB) GuildConfigRepository {
	return &guildConfigRepository{db: db}
}

func (r *guildConfigRepository) Get(ctx context.Context, guildID string) (*models.GuildConfig, error) {
	var cfg models.GuildConfig
	if err := r.db.WithContext(ctx).Where("guild_id = ?", guildID).First(&cfg).Error; err != nil {
		return nil, translate(err, "Guild config", guildID)
	}
	return &cfg, nil
}

func (r *guildConfigRepository) Create(ctx context.Context, cfg *models.GuildConfig) error {
	return translate(r.db.WithContext(ctx).Create(cfg).Error, "Guild config", cfg.GuildID)
}

func (r *guildConfigRepository) Update(ctx context.Context, cfg *models.GuildConfig) error {
	return translate(r.db.WithContext(ctx).Save(cfg).Error, "Guild config", cfg.GuildID)
}

// ConfiguredGuildIDs reports which of guildIDs have a stored configuration.
func (r *guildConfigRepository) ConfiguredGuildIDs(ctx context.Context, guildIDs []string) (map[string]bool, error) {
	configured := make(map[string]bool, len(guildIDs))
	if len(guildIDs) == 0 {
		return configured, nil
	}

	var found []string
	err := r.db.WithContext(ctx).Model(&models.GuildConfig{}).
		Where("guild_id IN ?", guildIDs).
		Pluck("guild_id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("list configured guilds: %w", err)
	}
	for _, id := range found {
		configured[id] = true
	}
	return configured, nil
}
