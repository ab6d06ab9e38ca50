package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Server is a guild the bot has been installed in.
type Server struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GuildID    string    `gorm:"size:255;not null;uniqueIndex" json:"guild_id"`
	GuildName  string    `gorm:"size:255;not null" json:"guild_name"`
	IsPremium  bool      `gorm:"not null;default:false" json:"is_premium"`
	MaxThreads *int      `json:"max_threads"`
	MaxMacros  *int      `json:"max_macros"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GuildConfig holds per-guild modmail behavior settings.
type GuildConfig struct {
	ID                uint                        `gorm:"primaryKey" json:"id"`
	GuildID           string                      `gorm:"size:255;not null;uniqueIndex" json:"guild_id"`
	ModmailCategoryID *string                     `gorm:"size:255" json:"modmail_category_id"`
	LogChannelID      *string                     `gorm:"size:255" json:"log_channel_id"`
	RandomizeNames    bool                        `gorm:"not null;default:false" json:"randomize_names"`
	AutoCloseHours    *int                        `json:"auto_close_hours"`
	WelcomeMessage    *string                     `gorm:"type:text" json:"welcome_message"`
	ModeratorRoleIDs  datatypes.JSONSlice[string] `json:"moderator_role_ids" swaggertype:"array,string"`
	BlockedWords      datatypes.JSONSlice[string] `json:"blocked_words" swaggertype:"array,string"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

// GuildCandidate is a guild the dashboard user can see, as reported by Discord.
type GuildCandidate struct {
	GuildID            string  `json:"guild_id" validate:"required,max=255"`
	GuildName          string  `json:"guild_name" validate:"max=255"`
	GuildIcon          *string `json:"guild_icon"`
	UserHasPermissions bool    `json:"user_has_permissions"`
}

// ValidatedGuild is a candidate guild that has the bot installed.
type ValidatedGuild struct {
	GuildID            string  `json:"guild_id"`
	GuildName          string  `json:"guild_name"`
	GuildIcon          *string `json:"guild_icon"`
	HasBot             bool    `json:"has_bot"`
	HasConfig          bool    `json:"has_config"`
	UserHasPermissions bool    `json:"user_has_permissions"`
}

// BeforeSave stores absent lists as empty JSON arrays.
func (g *GuildConfig) BeforeSave(tx *gorm.DB) error {
	if g.ModeratorRoleIDs == nil {
		g.ModeratorRoleIDs = datatypes.JSONSlice[string]{}
	}
	if g.BlockedWords == nil {
		g.BlockedWords = datatypes.JSONSlice[string]{}
	}
	return nil
}
