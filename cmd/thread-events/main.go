// Command thread-events prints the thread events published for a guild.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/PumPum7/modmail/internal/cache"
	"github.com/PumPum7/modmail/internal/config"
	"github.com/PumPum7/modmail/internal/middleware"
	"github.com/PumPum7/modmail/internal/notifications"
	"github.com/PumPum7/modmail/internal/validation"
)

func main() {
	guildID := flag.String("guild", "", "Guild ID to follow (required)")
	flag.Parse()

	if err := run(*guildID); err != nil {
		middleware.Logger.Error("thread-events failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(guildID string) error {
	if err := validation.ValidateGuildID(guildID); err != nil {
		return err
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	middleware.ConfigureLogger(cfg.LogLevel, cfg.LogFormat, cfg.Env)

	rdb, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = notifications.NewRedisNotifier(rdb).SubscribeThreadEvents(ctx, guildID, func(payload string) {
		fmt.Println(payload)
	})
	if err != nil {
		return err
	}
	middleware.Logger.Info("following thread events", slog.String("guild_id", guildID))
	<-ctx.Done()
	return nil
}
