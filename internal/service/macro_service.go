package service

import (
	"context"

	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/repository"
	"github.com/PumPum7/modmail/internal/validation"
)

type MacroService struct {
	macros repository.MacroRepository
}

type CreateMacroInput struct {
	Name        string `json:"name" validate:"required,macroname"`
	Content     string `json:"content" validate:"required,max=4000"`
	QuickAccess bool   `json:"quick_access"`
}

type UpdateMacroInput struct {
	Content     *string `json:"content" validate:"omitempty,min=1,max=4000"`
	QuickAccess *bool   `json:"quick_access"`
}

func NewMacroService(macros repository.MacroRepository) *MacroService {
	return &MacroService{macros: macros}
}

func (s *MacroService) ListMacros(ctx context.Context, guildID string) ([]models.Macro, error) {
	return s.macros.List(ctx, guildID)
}

func (s *MacroService) ListQuickAccessMacros(ctx context.Context, guildID string) ([]models.Macro, error) {
	return s.macros.ListQuickAccess(ctx, guildID)
}

func (s *MacroService) GetMacro(ctx context.Context, guildID, name string) (*models.Macro, error) {
	return s.macros.GetByName(ctx, guildID, name)
}

// CreateMacro stores a macro. At most models.MaxQuickAccessMacros macros per
// guild may have quick access.
func (s *MacroService) CreateMacro(ctx context.Context, guildID string, in CreateMacroInput) (*models.Macro, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	macro := &models.Macro{
		Name:        in.Name,
		Content:     in.Content,
		QuickAccess: in.QuickAccess,
		GuildID:     guildID,
	}
	if err := s.macros.Create(ctx, macro); err != nil {
		return nil, err
	}
	return macro, nil
}

func (s *MacroService) UpdateMacro(ctx context.Context, guildID, name string, in UpdateMacroInput) (*models.Macro, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	return s.macros.Update(ctx, guildID, name, repository.MacroUpdate{
		Content:     in.Content,
		QuickAccess: in.QuickAccess,
	})
}

func (s *MacroService) DeleteMacro(ctx context.Context, guildID, name string) error {
	return s.macros.Delete(ctx, guildID, name)
}
