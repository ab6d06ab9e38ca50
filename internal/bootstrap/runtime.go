// Package bootstrap wires the process-level dependencies shared by the commands.
package bootstrap

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PumPum7/modmail/internal/cache"
	"github.com/PumPum7/modmail/internal/config"
	"github.com/PumPum7/modmail/internal/database"
	"github.com/PumPum7/modmail/internal/middleware"
	"github.com/PumPum7/modmail/internal/notifications"
	"github.com/PumPum7/modmail/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemo fills an empty development database with demo guilds.
	SeedDemo bool
}

// InitRuntime connects to the database and Redis. Redis is optional: the
// returned client is nil when it is not configured or not reachable.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemo {
		if err := seedDemo(cfg, db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}

func seedDemo(cfg *config.Config, db *gorm.DB) error {
	if !strings.EqualFold(cfg.Env, "development") {
		return nil
	}
	var servers int64
	if err := db.Table("servers").Count(&servers).Error; err != nil {
		return err
	}
	if servers > 0 {
		return nil
	}
	_, err := seed.NewSeeder(db, seed.DefaultOptions).Run()
	return err
}

// NewDispatcher assembles the configured thread notifiers. Targets without
// configuration are left out; with none at all the dispatcher is a no-op.
func NewDispatcher(cfg *config.Config, rdb *redis.Client) (*notifications.Dispatcher, error) {
	timeout := time.Duration(cfg.NotifyTimeoutSeconds) * time.Second

	multi := notifications.NewMultiNotifier()
	if cfg.DiscordWebhookURL != "" {
		multi.Add("webhook", notifications.NewWebhookNotifier(cfg.DiscordWebhookURL))
	}
	if cfg.DiscordLogWebhookID != "" {
		discord, err := notifications.NewDiscordLogNotifier(cfg.DiscordLogWebhookID, cfg.DiscordLogWebhookToken, timeout)
		if err != nil {
			return nil, err
		}
		multi.Add("discord", discord)
	}
	if rdb != nil {
		multi.Add("redis", notifications.NewRedisNotifier(rdb))
	}

	middleware.Logger.Info("thread notifiers configured", slog.Int("count", multi.Len()))
	if multi.Len() == 0 {
		return notifications.NewDispatcher(nil, timeout), nil
	}
	return notifications.NewDispatcher(multi, timeout), nil
}
