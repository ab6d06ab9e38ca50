package repository

import (
	"context"
	"fmt"

	"github.com/PumPum7/modmail/internal/models"

	"gorm.io/gorm"
)

// ServerRepository defines persistence operations for registered guilds.
type ServerRepository interface {
	List(ctx context.Context) ([]models.Server, error)
	ListByGuildIDs(ctx context.Context, guildIDs []string) ([]models.Server, error)
	GetByGuildID(ctx context.Context, guildID string) (*models.Server, error)
	Create(ctx context.Context, server *models.Server) error
	Update(ctx context.Context, server *models.Server) error
	Delete(ctx context.Context, guildID string) error
}

type serverRepository struct {
	db *gorm.DB
}

// NewServerRepository returns a new ServerRepository implementation.
func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{db: db}
}

func (r *serverRepository) List(ctx context.Context) ([]models.Server, error) {
	servers := []models.Server{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&servers).Error; err != nil {
		return nil, fmt.Errorf("list servers: %w", err)
	}
	return servers, nil
}

func (r *serverRepository) ListByGuildIDs(ctx context.Context, guildIDs []string) ([]models.Server, error) {
	servers := []models.Server{}
	if len(guildIDs) == 0 {
		return servers, nil
	}
	if err := r.db.WithContext(ctx).Where("guild_id IN ?", guildIDs).Find(&servers).Error; err != nil {
		return nil, fmt.Errorf("list servers by guild: %w", err)
	}
	return servers, nil
}

func (r *serverRepository) GetByGuildID(ctx context.Context, guildID string) (*models.Server, error) {
	var server models.Server
	if err := r.db.WithContext(ctx).Where("guild_id = ?", guildID).First(&server).Error; err != nil {
		return nil, translate(err, "Server", guildID)
	}
	return &server, nil
}

func (r *serverRepository) Create(ctx context.Context, server *models.Server) error {
	return translate(r.db.WithContext(ctx).Create(server).Error, "Server", server.GuildID)
}

func (r *serverRepository) Update(ctx context.Context, server *models.Server) error {
	return translate(r.db.WithContext(ctx).Save(server).Error, "Server", server.GuildID)
}

func (r *serverRepository) Delete(ctx context.Context, guildID string) error {
	res := r.db.WithContext(ctx).Where("guild_id = ?", guildID).Delete(&models.Server{})
	if res.Error != nil {
		return fmt.Errorf("delete server: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Server", guildID)
	}
	return nil
}
