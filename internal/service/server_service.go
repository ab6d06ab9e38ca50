package service

import (
	"context"

	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/repository"
	"github.com/PumPum7/modmail/internal/validation"
)

type ServerService struct {
	servers repository.ServerRepository
	configs repository.GuildConfigRepository
}

type CreateServerInput struct {
	GuildID   string `json:"guild_id" validate:"required,max=255"`
	GuildName string `json:"guild_name" validate:"required,max=255"`
}

type UpdateServerInput struct {
	GuildName  *string `json:"guild_name" validate:"omitempty,min=1,max=255"`
	IsPremium  *bool   `json:"is_premium"`
	MaxThreads *int    `json:"max_threads" validate:"omitempty,gte=0"`
	MaxMacros  *int    `json:"max_macros" validate:"omitempty,gte=0"`
}

func NewServerService(servers repository.ServerRepository, configs repository.GuildConfigRepository) *ServerService {
	return &ServerService{servers: servers, configs: configs}
}

func (s *ServerService) ListServers(ctx context.Context) ([]models.Server, error) {
	return s.servers.List(ctx)
}

func (s *ServerService) GetServer(ctx context.Context, guildID string) (*models.Server, error) {
	return s.servers.GetByGuildID(ctx, guildID)
}

func (s *ServerService) CreateServer(ctx context.Context, in CreateServerInput) (*models.Server, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	if err := validation.ValidateGuildID(in.GuildID); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	server := &models.Server{GuildID: in.GuildID, GuildName: in.GuildName}
	if err := s.servers.Create(ctx, server); err != nil {
		return nil, err
	}
	return server, nil
}

func (s *ServerService) UpdateServer(ctx context.Context, guildID string, in UpdateServerInput) (*models.Server, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	server, err := s.servers.GetByGuildID(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if in.GuildName != nil {
		server.GuildName = *in.GuildName
	}
	if in.IsPremium != nil {
		server.IsPremium = *in.IsPremium
	}
	if in.MaxThreads != nil {
		server.MaxThreads = in.MaxThreads
	}
	if in.MaxMacros != nil {
		server.MaxMacros = in.MaxMacros
	}
	if err := s.servers.Update(ctx, server); err != nil {
		return nil, err
	}
	return server, nil
}

func (s *ServerService) DeleteServer(ctx context.Context, guildID string) error {
	return s.servers.Delete(ctx, guildID)
}

// ValidateGuilds keeps the candidates the bot is installed in, in input
// order. Unknown guilds are dropped silently and duplicates are reported once.
func (s *ServerService) ValidateGuilds(ctx context.Context, candidates []models.GuildCandidate) ([]models.ValidatedGuild, error) {
	result := []models.ValidatedGuild{}
	if len(candidates) == 0 {
		return result, nil
	}
	if err := validation.Slice(candidates); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.GuildID)
	}

	servers, err := s.servers.ListByGuildIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := make(map[string]models.Server, len(servers))
	for _, srv := range servers {
		known[srv.GuildID] = srv
	}

	configured, err := s.configs.ConfiguredGuildIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		srv, ok := known[c.GuildID]
		if !ok || seen[c.GuildID] {
			continue
		}
		seen[c.GuildID] = true

		name := c.GuildName
		if name == "" {
			name = srv.GuildName
		}
		result = append(result, models.ValidatedGuild{
			GuildID:            c.GuildID,
			GuildName:          name,
			GuildIcon:          c.GuildIcon,
			HasBot:             true,
			HasConfig:          configured[c.GuildID],
			UserHasPermissions: c.UserHasPermissions,
		})
	}
	return result, nil
}
