package database

import "github.com/PumPum7/modmail/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.Server{},
		&models.GuildConfig{},
		&models.Thread{},
		&models.Message{},
		&models.ThreadMessage{},
		&models.Note{},
		&models.Macro{},
		&models.BlockedUser{},
	}
}

// supplementalIndexes cannot be expressed as GORM tags. Both PostgreSQL and
// SQLite accept partial indexes in this form.
var supplementalIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_threads_open_user ON threads (guild_id, user_id) WHERE is_open`,
	`CREATE INDEX IF NOT EXISTS idx_threads_guild_created ON threads (guild_id, created_at)`,
}
