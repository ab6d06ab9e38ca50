package service

import (
	"context"

	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/repository"
	"github.com/PumPum7/modmail/internal/validation"

	"gorm.io/datatypes"
)

type GuildConfigService struct {
	configs repository.GuildConfigRepository
}

// GuildConfigInput is used for create and partial update; nil fields are
// left unchanged on update and take their defaults on create.
type GuildConfigInput struct {
	ModmailCategoryID *string   `json:"modmail_category_id" validate:"omitempty,max=255"`
	LogChannelID      *string   `json:"log_channel_id" validate:"omitempty,max=255"`
	RandomizeNames    *bool     `json:"randomize_names"`
	AutoCloseHours    *int      `json:"auto_close_hours" validate:"omitempty,gte=0"`
	WelcomeMessage    *string   `json:"welcome_message" validate:"omitempty,max=4000"`
	ModeratorRoleIDs  *[]string `json:"moderator_role_ids" validate:"omitempty,dive,max=255"`
	BlockedWords      *[]string `json:"blocked_words" validate:"omitempty,dive,max=255"`
}

func NewGuildConfigService(configs repository.GuildConfigRepository) *GuildConfigService {
	return &GuildConfigService{configs: configs}
}

func (s *GuildConfigService) GetGuildConfig(ctx context.Context, guildID string) (*models.GuildConfig, error) {
	return s.configs.Get(ctx, guildID)
}

func (s *GuildConfigService) CreateGuildConfig(ctx context.Context, guildID string, in GuildConfigInput) (*models.GuildConfig, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	cfg := &models.GuildConfig{GuildID: guildID}
	in.apply(cfg)
	if err := s.configs.Create(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *GuildConfigService) UpdateGuildConfig(ctx context.Context, guildID string, in GuildConfigInput) (*models.GuildConfig, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	cfg, err := s.configs.Get(ctx, guildID)
	if err != nil {
		return nil, err
	}
	in.apply(cfg)
	if err := s.configs.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (in GuildConfigInput) apply(cfg *models.GuildConfig) {
	if in.ModmailCategoryID != nil {
		cfg.ModmailCategoryID = in.ModmailCategoryID
	}
	if in.LogChannelID != nil {
		cfg.LogChannelID = in.LogChannelID
	}
	if in.RandomizeNames != nil {
		cfg.RandomizeNames = *in.RandomizeNames
	}
	if in.AutoCloseHours != nil {
		cfg.AutoCloseHours = in.AutoCloseHours
	}
	if in.WelcomeMessage != nil {
		cfg.WelcomeMessage = in.WelcomeMessage
	}
	if in.ModeratorRoleIDs != nil {
		cfg.ModeratorRoleIDs = datatypes.JSONSlice[string](*in.ModeratorRoleIDs)
	}
	if in.BlockedWords != nil {
		cfg.BlockedWords = datatypes.JSONSlice[string](*in.BlockedWords)
	}
	if cfg.ModeratorRoleIDs == nil {
		cfg.ModeratorRoleIDs = datatypes.JSONSlice[string]{}
	}
	if cfg.BlockedWords == nil {
		cfg.BlockedWords = datatypes.JSONSlice[string]{}
	}
}
