// Command seed fills the modmail database with demo guilds.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/PumPum7/modmail/internal/config"
	"github.com/PumPum7/modmail/internal/database"
	"github.com/PumPum7/modmail/internal/middleware"
	"github.com/PumPum7/modmail/internal/seed"
)

func main() {
	guilds := flag.Int("guilds", seed.DefaultOptions.Guilds, "Number of guilds to create")
	threads := flag.Int("threads", seed.DefaultOptions.ThreadsPerGuild, "Threads per guild")
	days := flag.Int("days", seed.DefaultOptions.MaxDays, "Spread activity over this many past days")
	randSeed := flag.Int64("seed", 0, "Random seed for reproducible data (0 = random)")
	clean := flag.Bool("clean", false, "Delete all modmail data before seeding")
	dryRun := flag.Bool("dry-run", false, "Generate data without writing it")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fatal("load config", err)
	}
	middleware.ConfigureLogger(cfg.LogLevel, cfg.LogFormat, cfg.Env)
	if config.IsProduction(cfg.Env) {
		middleware.Logger.Error("refusing to seed a production database")
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		fatal("connect database", err)
	}

	s := seed.NewSeeder(db, seed.Options{
		Guilds:          *guilds,
		ThreadsPerGuild: *threads,
		Seed:            *randSeed,
		MaxDays:         *days,
		DryRun:          *dryRun,
	})
	if *clean {
		if err := s.ClearAll(); err != nil {
			fatal("cleanup", err)
		}
	}
	sum, err := s.Run()
	if err != nil {
		fatal("seeding", err)
	}
	middleware.Logger.Info("seed complete",
		slog.Int("guilds", sum.Guilds),
		slog.Int("threads", sum.Threads),
		slog.Int("open_threads", sum.OpenThreads),
		slog.Int("messages", sum.Messages),
		slog.Int("notes", sum.Notes),
		slog.Int("macros", sum.Macros),
		slog.Int("blocked_users", sum.BlockedUsers),
	)
}

func fatal(step string, err error) {
	middleware.Logger.Error(step+" failed", slog.String("error", err.Error()))
	os.Exit(1)
}
