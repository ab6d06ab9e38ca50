package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/PumPum7/modmail/internal/config"
	"github.com/PumPum7/modmail/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestConfigurePool(t *testing.T) {
	db := openSQLite(t)

	cfg := &config.Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 15,
	}

	require.NoError(t, configurePool(db, cfg))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 10, sqlDB.Stats().MaxOpenConnections)
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm translated", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"postgres fk", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite unique", errors.New("UNIQUE constraint failed: macros.guild_id, macros.name"), true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestSchemaPolicy(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		env      string
		dialect  string
		wantSQL  bool
		wantAuto bool
		wantErr  bool
	}{
		{"hybrid development", "hybrid", "development", "postgres", true, true, false},
		{"hybrid production", "", "production", "postgres", true, false, false},
		{"sql only", "sql", "development", "postgres", true, false, false},
		{"auto development", "auto", "development", "postgres", false, true, false},
		{"auto production refused", "auto", "production", "postgres", false, false, true},
		{"none", "none", "production", "postgres", false, false, false},
		{"sqlite ignores sql", "sql", "development", "sqlite", false, true, false},
		{"unknown mode", "magic", "development", "postgres", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{DBSchemaMode: tt.mode, Env: tt.env}
			runSQL, runAuto, err := schemaPolicy(cfg, tt.dialect)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, runSQL)
			assert.Equal(t, tt.wantAuto, runAuto)
		})
	}
}

func TestAutoMigrate_OpenThreadIndex(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, AutoMigrate(db))

	open := models.Thread{UserID: "u1", ThreadID: "c1", IsOpen: true, Urgency: models.UrgencyMedium, GuildID: "g1"}
	require.NoError(t, db.Create(&open).Error)

	dup := models.Thread{UserID: "u1", ThreadID: "c2", IsOpen: true, Urgency: models.UrgencyMedium, GuildID: "g1"}
	err := db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	otherGuild := models.Thread{UserID: "u1", ThreadID: "c3", IsOpen: true, Urgency: models.UrgencyLow, GuildID: "g2"}
	require.NoError(t, db.Create(&otherGuild).Error)

	require.NoError(t, db.Model(&open).Update("is_open", false).Error)
	reopened := models.Thread{UserID: "u1", ThreadID: "c4", IsOpen: true, Urgency: models.UrgencyHigh, GuildID: "g1"}
	assert.NoError(t, db.Create(&reopened).Error)
}

func TestApplySchema_SQLiteUsesAutoMigrate(t *testing.T) {
	db := openSQLite(t)
	cfg := &config.Config{DBSchemaMode: "hybrid", Env: "development"}

	require.NoError(t, ApplySchema(t.Context(), db, cfg))
	for _, m := range PersistentModels() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}

	status, err := GetSchemaStatus(t.Context(), db, cfg)
	require.NoError(t, err)
	assert.False(t, status.WillRunSQL)
	assert.True(t, status.WillRunAutoMigrate)
}

func TestEmbeddedMigrations(t *testing.T) {
	all, err := EmbeddedMigrations(0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].Version)
	assert.Equal(t, int64(2), all[1].Version)

	pending, err := EmbeddedMigrations(1)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(2), pending[0].Version)
}

func TestPersistentModels(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range PersistentModels() {
		name := fmt.Sprintf("%T", m)
		assert.False(t, seen[name], "duplicate model %s", name)
		seen[name] = true
	}
	assert.True(t, seen["*models.Thread"])
	assert.True(t, seen["*models.ThreadMessage"])
	assert.True(t, seen["*models.BlockedUser"])
	assert.Len(t, seen, 8)
}
