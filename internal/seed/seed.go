package seed

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/PumPum7/modmail/internal/database"
	"github.com/PumPum7/modmail/internal/middleware"
	"github.com/PumPum7/modmail/internal/models"

	"gorm.io/gorm"
)

// Options configure the seeder.
type Options struct {
	Guilds          int
	ThreadsPerGuild int
	// Seed makes the generated data reproducible; zero picks a random seed.
	Seed            int64
	MaxDays         int
	DryRun          bool
}

// DefaultOptions seeds a small but varied data set.
var DefaultOptions = Options{Guilds: 3, ThreadsPerGuild: 25, MaxDays: 30}

// Moderator is a staff member acting in seeded threads.
type Moderator struct {
	ID  string
	Tag string
}

// Summary counts what a run created.
type Summary struct {
	Guilds       int
	Threads      int
	OpenThreads  int
	Messages     int
	Notes        int
	Macros       int
	BlockedUsers int
}

var macroNames = []string{"greeting", "closing", "rules", "appeal", "escalate", "timezone", "faq"}

// Seeder populates a database with demo guilds.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder returns a Seeder writing through db.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	if opts.Guilds <= 0 {
		opts.Guilds = DefaultOptions.Guilds
	}
	if opts.ThreadsPerGuild < 0 {
		opts.ThreadsPerGuild = 0
	}
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll deletes every row of every modmail table, children first.
func (s *Seeder) ClearAll() error {
	if s.factory.opts.DryRun {
		return nil
	}
	tables := database.PersistentModels()
	slices.Reverse(tables)
	for _, model := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	middleware.Logger.Info("cleared modmail tables", slog.Int("tables", len(tables)))
	return nil
}

// Run creates the configured number of guilds, each with a config, macros,
// blocked users and a mix of open and closed threads.
func (s *Seeder) Run() (*Summary, error) {
	f := s.factory
	sum := &Summary{}
	for range f.opts.Guilds {
		if err := s.seedGuild(sum); err != nil {
			return sum, err
		}
	}
	middleware.Logger.Info("seeded demo data",
		slog.Int("guilds", sum.Guilds),
		slog.Int("threads", sum.Threads),
		slog.Int("messages", sum.Messages),
		slog.Bool("dry_run", f.opts.DryRun),
	)
	return sum, nil
}

func (s *Seeder) seedGuild(sum *Summary) error {
	f := s.factory

	server, err := f.CreateServer()
	if err != nil {
		return err
	}
	sum.Guilds++
	if _, err := f.CreateGuildConfig(server.GuildID); err != nil {
		return err
	}

	mods := []Moderator{f.moderator(), f.moderator(), f.moderator()}

	for i, name := range macroNames {
		if _, err := f.CreateMacro(server.GuildID, name, i < models.MaxQuickAccessMacros); err != nil {
			return err
		}
		sum.Macros++
	}

	for range f.fake.Number(1, 4) {
		if _, err := f.CreateBlockedUser(server.GuildID, mods[0]); err != nil {
			return err
		}
		sum.BlockedUsers++
	}

	for range f.opts.ThreadsPerGuild {
		var closer *Moderator
		// Roughly two in three threads are resolved.
		if f.fake.Number(0, 2) > 0 {
			m := mods[f.fake.Number(0, len(mods)-1)]
			closer = &m
		}
		thread, messages, err := f.CreateThread(server.GuildID, f.fake.Number(1, 8), mods, closer)
		if err != nil {
			return err
		}
		sum.Threads++
		sum.Messages += len(messages)
		if thread.IsOpen {
			sum.OpenThreads++
		}

		if f.fake.Number(0, 3) == 0 {
			if _, err := f.CreateNote(thread, mods[f.fake.Number(0, len(mods)-1)]); err != nil {
				return err
			}
			sum.Notes++
		}
	}
	return nil
}
