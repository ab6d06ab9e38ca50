// Package seed generates demo data for development databases and tests.
package seed

import (
	"fmt"
	"time"

	"github.com/PumPum7/modmail/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Factory builds modmail entities with plausible fake content and persists them.
type Factory struct {
	db   *gorm.DB
	opts Options
	fake *gofakeit.Faker
	now  time.Time
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a Factory bound to db. A zero Options.Seed picks a random one.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 30
	}
	return &Factory{
		db:     db,
		opts:   opts,
		fake:   gofakeit.New(seed),
		now:    time.Now().UTC(),
		nextID: 1000,
	}
}

// snowflake returns a Discord-style numeric ID.
func (f *Factory) snowflake() string {
	return f.fake.Numerify("1##################")
}

func (f *Factory) userTag() string {
	return f.fake.Username()
}

func (f *Factory) moderator() Moderator {
	return Moderator{ID: f.snowflake(), Tag: f.userTag()}
}

// pastTime returns a moment within the configured window.
func (f *Factory) pastTime() time.Time {
	back := time.Duration(f.fake.Number(0, f.opts.MaxDays*24*60)) * time.Minute
	return f.now.Add(-back)
}

func (f *Factory) create(value any) error {
	if f.opts.DryRun {
		return nil
	}
	return f.db.Create(value).Error
}

func (f *Factory) assignID() uint {
	f.nextID++
	return f.nextID
}

// CreateServer registers a guild.
func (f *Factory) CreateServer(overrides ...func(*models.Server)) (*models.Server, error) {
	server := &models.Server{
		GuildID:   f.snowflake(),
		GuildName: f.fake.Company(),
		IsPremium: f.fake.Number(0, 4) == 0,
	}
	for _, override := range overrides {
		override(server)
	}
	if f.opts.DryRun {
		server.ID = f.assignID()
	}
	if err := f.create(server); err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}
	return server, nil
}

// CreateGuildConfig stores a configuration for guildID.
func (f *Factory) CreateGuildConfig(guildID string) (*models.GuildConfig, error) {
	category := f.snowflake()
	logChannel := f.snowflake()
	welcome := f.fake.Sentence(12)
	hours := f.fake.RandomInt([]int{24, 48, 72})
	cfg := &models.GuildConfig{
		GuildID:           guildID,
		ModmailCategoryID: &category,
		LogChannelID:      &logChannel,
		RandomizeNames:    f.fake.Bool(),
		AutoCloseHours:    &hours,
		WelcomeMessage:    &welcome,
		ModeratorRoleIDs:  datatypes.JSONSlice[string]{f.snowflake(), f.snowflake()},
		BlockedWords:      datatypes.JSONSlice[string]{f.fake.Word(), f.fake.Word()},
	}
	if f.opts.DryRun {
		cfg.ID = f.assignID()
	}
	if err := f.create(cfg); err != nil {
		return nil, fmt.Errorf("create guild config: %w", err)
	}
	return cfg, nil
}

// BuildThread returns an unsaved open thread for a new user of guildID.
func (f *Factory) BuildThread(guildID string) *models.Thread {
	created := f.pastTime()
	return &models.Thread{
		UserID:    f.snowflake(),
		ThreadID:  f.snowflake(),
		IsOpen:    true,
		Urgency:   models.Urgencies[f.fake.Number(0, len(models.Urgencies)-1)],
		GuildID:   guildID,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// CreateThread persists a thread with a conversation of messageCount messages
// alternating between the user and staff. When closedBy is set the thread is
// closed after its last message.
func (f *Factory) CreateThread(guildID string, messageCount int, staff []Moderator, closedBy *Moderator) (*models.Thread, []models.Message, error) {
	if len(staff) == 0 {
		staff = []Moderator{f.moderator()}
	}
	thread := f.BuildThread(guildID)
	userTag := f.userTag()

	messages := make([]models.Message, 0, messageCount)
	at := thread.CreatedAt
	for i := range messageCount {
		authorID, authorTag := thread.UserID, userTag
		if i%2 == 1 {
			mod := staff[f.fake.Number(0, len(staff)-1)]
			authorID, authorTag = mod.ID, mod.Tag
		}
		at = at.Add(time.Duration(f.fake.Number(1, 180)) * time.Minute)
		messages = append(messages, f.BuildMessage(guildID, authorID, authorTag, at))
	}

	if closedBy != nil {
		closedAt := at.Add(time.Duration(f.fake.Number(5, 600)) * time.Minute)
		thread.IsOpen = false
		thread.ClosedAt = &closedAt
		thread.ClosedByID = &closedBy.ID
		thread.ClosedByTag = &closedBy.Tag
		thread.UpdatedAt = closedAt
	}

	if f.opts.DryRun {
		thread.ID = f.assignID()
		return thread, messages, nil
	}

	closed := !thread.IsOpen
	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(thread).Error; err != nil {
			return fmt.Errorf("create thread: %w", err)
		}
		// is_open defaults to true, so a false value is skipped on insert.
		if closed {
			if err := tx.Model(thread).UpdateColumn("is_open", false).Error; err != nil {
				return fmt.Errorf("close thread: %w", err)
			}
			thread.IsOpen = false
		}
		if len(messages) == 0 {
			return nil
		}
		if err := tx.Create(&messages).Error; err != nil {
			return fmt.Errorf("create messages: %w", err)
		}
		links := make([]models.ThreadMessage, len(messages))
		for i, m := range messages {
			links[i] = models.ThreadMessage{ThreadID: thread.ID, MessageID: m.ID}
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return thread, messages, nil
}

// BuildMessage returns an unsaved message, occasionally with an attachment.
func (f *Factory) BuildMessage(guildID, authorID, authorTag string, at time.Time) models.Message {
	attachments := datatypes.JSON("[]")
	if f.fake.Number(0, 9) == 0 {
		attachments = datatypes.JSON(fmt.Sprintf(`[{"url":%q,"filename":%q}]`,
			f.fake.URL()+"/"+f.fake.Word()+".png", f.fake.Word()+".png"))
	}
	return models.Message{
		ID:          uuid.New(),
		AuthorID:    authorID,
		AuthorTag:   authorTag,
		Content:     f.fake.Sentence(f.fake.Number(3, 20)),
		Attachments: attachments,
		CreatedAt:   at,
		GuildID:     guildID,
	}
}

// CreateNote attaches a moderator note to thread.
func (f *Factory) CreateNote(thread *models.Thread, author Moderator) (*models.Note, error) {
	id := thread.ID
	note := &models.Note{
		ID:        uuid.New(),
		ThreadID:  &id,
		AuthorID:  author.ID,
		AuthorTag: author.Tag,
		Content:   f.fake.Sentence(8),
		CreatedAt: thread.CreatedAt.Add(time.Duration(f.fake.Number(1, 60)) * time.Minute),
		GuildID:   thread.GuildID,
	}
	if err := f.create(note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// CreateMacro stores a canned response named name.
func (f *Factory) CreateMacro(guildID, name string, quickAccess bool) (*models.Macro, error) {
	macro := &models.Macro{
		Name:        name,
		Content:     f.fake.Paragraph(1, 2, 10, " "),
		QuickAccess: quickAccess,
		GuildID:     guildID,
	}
	if f.opts.DryRun {
		macro.ID = f.assignID()
	}
	if err := f.create(macro); err != nil {
		return nil, fmt.Errorf("create macro %s: %w", name, err)
	}
	return macro, nil
}

// CreateBlockedUser blocks a new fake user in guildID.
func (f *Factory) CreateBlockedUser(guildID string, by Moderator) (*models.BlockedUser, error) {
	reason := f.fake.RandomString([]string{"spam", "harassment", "ban evasion", "abusive language"})
	user := &models.BlockedUser{
		UserID:       f.snowflake(),
		UserTag:      f.userTag(),
		BlockedBy:    by.ID,
		BlockedByTag: by.Tag,
		Reason:       &reason,
		CreatedAt:    f.pastTime(),
		GuildID:      guildID,
	}
	if f.opts.DryRun {
		user.ID = f.assignID()
	}
	if err := f.create(user); err != nil {
		return nil, fmt.Errorf("create blocked user: %w", err)
	}
	return user, nil
}
