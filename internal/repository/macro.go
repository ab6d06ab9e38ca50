package repository

import (
	"context"
	"fmt"

	"github.com/PumPum7/modmail/internal/models"

	"gorm.io/gorm"
)

const macroLockScope = "macros"

// MacroUpdate carries the fields of a partial macro update. Nil fields are kept.
type MacroUpdate struct {
	Content     *string
	QuickAccess *bool
}

// MacroRepository defines persistence operations for canned-response macros.
type MacroRepository interface {
	List(ctx context.Context, guildID string) ([]models.Macro, error)
	ListQuickAccess(ctx context.Context, guildID string) ([]models.Macro, error)
	GetByName(ctx context.Context, guildID, name string) (*models.Macro, error)
	Create(ctx context.Context, macro *models.Macro) error
	Update(ctx context.Context, guildID, name string, update MacroUpdate) (*models.Macro, error)
	Delete(ctx context.Context, guildID, name string) error
}

type macroRepository struct {
	db *gorm.DB
}

// NewMacroRepository returns a new MacroRepository implementation.
func NewMacroRepository(db *gorm.DB) MacroRepository {
	return &macroRepository{db: db}
}

func (r *macroRepository) List(ctx context.Context, guildID string) ([]models.Macro, error) {
	macros := []models.Macro{}
	err := r.db.WithContext(ctx).Where("guild_id = ?", guildID).Order("name ASC").Find(&macros).Error
	if err != nil {
		return nil, fmt.Errorf("list macros: %w", err)
	}
	return macros, nil
}

func (r *macroRepository) ListQuickAccess(ctx context.Context, guildID string) ([]models.Macro, error) {
	macros := []models.Macro{}
	err := r.db.WithContext(ctx).
		Where("guild_id = ? AND quick_access = ?", guildID, true).
		Order("name ASC").
		Limit(models.MaxQuickAccessMacros).
		Find(&macros).Error
	if err != nil {
		return nil, fmt.Errorf("list quick access macros: %w", err)
	}
	return macros, nil
}

func (r *macroRepository) GetByName(ctx context.Context, guildID, name string) (*models.Macro, error) {
	var macro models.Macro
	if err := r.db.WithContext(ctx).Where("guild_id = ? AND name = ?", guildID, name).First(&macro).Error; err != nil {
		return nil, translate(err, "Macro", name)
	}
	return &macro, nil
}

// checkQuickAccess fails when the guild already has the maximum number of
// quick-access macros other than name. Callers must hold the guild lock.
func checkQuickAccess(tx *gorm.DB, guildID, name string) error {
	var count int64
	err := tx.Model(&models.Macro{}).
		Where("guild_id = ? AND quick_access = ? AND name <> ?", guildID, true, name).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("count quick access macros: %w", err)
	}
	if count >= models.MaxQuickAccessMacros {
		return models.ErrQuickAccessLimit
	}
	return nil
}

func (r *macroRepository) Create(ctx context.Context, macro *models.Macro) error {
	err := transaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := lockGuild(tx, macroLockScope, macro.GuildID); err != nil {
			return fmt.Errorf("lock macros: %w", err)
		}
		if macro.QuickAccess {
			if err := checkQuickAccess(tx, macro.GuildID, macro.Name); err != nil {
				return err
			}
		}
		return tx.Create(macro).Error
	})
	return translate(err, "Macro", macro.Name)
}

func (r *macroRepository) Update(ctx context.Context, guildID, name string, update MacroUpdate) (*models.Macro, error) {
	var macro models.Macro
	err := transaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := lockGuild(tx, macroLockScope, guildID); err != nil {
			return fmt.Errorf("lock macros: %w", err)
		}
		if err := tx.Where("guild_id = ? AND name = ?", guildID, name).First(&macro).Error; err != nil {
			return err
		}

		changes := map[string]interface{}{"updated_at": tx.NowFunc()}
		if update.Content != nil {
			changes["content"] = *update.Content
		}
		if update.QuickAccess != nil {
			if *update.QuickAccess {
				if err := checkQuickAccess(tx, guildID, name); err != nil {
					return err
				}
			}
			changes["quick_access"] = *update.QuickAccess
		}

		return tx.Model(&macro).Updates(changes).Error
	})
	if err != nil {
		return nil, translate(err, "Macro", name)
	}
	return &macro, nil
}

func (r *macroRepository) Delete(ctx context.Context, guildID, name string) error {
	res := r.db.WithContext(ctx).Where("guild_id = ? AND name = ?", guildID, name).Delete(&models.Macro{})
	if res.Error != nil {
		return fmt.Errorf("delete macro: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Macro", name)
	}
	return nil
}
