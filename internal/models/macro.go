package models

import "time"

// MaxQuickAccessMacros caps how many macros a guild may pin for quick access.
const MaxQuickAccessMacros = 3

// Macro is a named canned response.
type Macro struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:idx_macros_guild_name,priority:2" json:"name"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	QuickAccess bool      `gorm:"not null;default:false" json:"quick_access"`
	GuildID     string    `gorm:"size:255;not null;uniqueIndex:idx_macros_guild_name,priority:1" json:"guild_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BlockedUser is a user barred from opening threads in a guild.
type BlockedUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"size:255;not null;uniqueIndex:idx_blocked_users_guild_user,priority:2" json:"user_id"`
	UserTag      string    `gorm:"size:255;not null" json:"user_tag"`
	BlockedBy    string    `gorm:"size:255;not null" json:"blocked_by"`
	BlockedByTag string    `gorm:"size:255;not null" json:"blocked_by_tag"`
	Reason       *string   `gorm:"type:text" json:"reason"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	GuildID      string    `gorm:"size:255;not null;uniqueIndex:idx_blocked_users_guild_user,priority:1" json:"guild_id"`
}

// BlockStatus answers whether a user is blocked in a guild.
type BlockStatus struct {
	Blocked bool         `json:"blocked"`
	User    *BlockedUser `json:"user,omitempty"`
}
