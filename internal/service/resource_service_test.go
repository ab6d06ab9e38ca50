package service

import (
	"context"
	"strings"
	"testing"

	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacroService_CreateMacro_Validation(t *testing.T) {
	t.Parallel()

	svc := NewMacroService(noopMacroRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateMacroInput
	}{
		{"missing name", CreateMacroInput{Content: "hi"}},
		{"missing content", CreateMacroInput{Name: "greet"}},
		{"slash in name", CreateMacroInput{Name: "a/b", Content: "hi"}},
		{"reserved name", CreateMacroInput{Name: "quick-access", Content: "hi"}},
		{"name too long", CreateMacroInput{Name: strings.Repeat("n", 101), Content: "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateMacro(ctx, "guild-1", tt.in)
			assertValidationError(t, err)
		})
	}
}

func TestMacroService_CreateMacro_QuickAccessLimit(t *testing.T) {
	t.Parallel()

	repo := noopMacroRepo()
	repo.createFn = func(_ context.Context, m *models.Macro) error {
		if m.QuickAccess {
			return models.ErrQuickAccessLimit
		}
		return nil
	}
	svc := NewMacroService(repo)

	_, err := svc.CreateMacro(context.Background(), "guild-1", CreateMacroInput{Name: "d", Content: "x", QuickAccess: true})
	assertAppError(t, err, models.CodeQuickAccessLimit)

	macro, err := svc.CreateMacro(context.Background(), "guild-1", CreateMacroInput{Name: "d", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "guild-1", macro.GuildID)
}

func TestMacroService_UpdateMacro(t *testing.T) {
	t.Parallel()

	var got repository.MacroUpdate
	repo := noopMacroRepo()
	repo.updateFn = func(_ context.Context, g, name string, u repository.MacroUpdate) (*models.Macro, error) {
		got = u
		return &models.Macro{GuildID: g, Name: name, Content: *u.Content}, nil
	}
	svc := NewMacroService(repo)

	macro, err := svc.UpdateMacro(context.Background(), "guild-1", "greet", UpdateMacroInput{Content: strPtr("hello there")})
	require.NoError(t, err)
	assert.Equal(t, "hello there", macro.Content)
	assert.Nil(t, got.QuickAccess)

	_, err = svc.UpdateMacro(context.Background(), "guild-1", "greet", UpdateMacroInput{Content: strPtr("")})
	assertValidationError(t, err)
}

func TestBlockedUserService_Status(t *testing.T) {
	t.Parallel()

	blocked := map[string]*models.BlockedUser{}
	repo := &blockedRepoStub{
		listFn: func(_ context.Context, _ string) ([]models.BlockedUser, error) { return nil, nil },
		getByUserIDFn: func(_ context.Context, _, userID string) (*models.BlockedUser, error) {
			if u, ok := blocked[userID]; ok {
				return u, nil
			}
			return nil, models.NewNotFoundError("Blocked user", userID)
		},
		createFn: func(_ context.Context, u *models.BlockedUser) error {
			blocked[u.UserID] = u
			return nil
		},
		deleteFn: func(_ context.Context, _, userID string) error {
			if _, ok := blocked[userID]; !ok {
				return models.NewNotFoundError("Blocked user", userID)
			}
			delete(blocked, userID)
			return nil
		},
	}
	svc := NewBlockedUserService(repo)
	ctx := context.Background()

	status, err := svc.GetBlockStatus(ctx, "guild-1", "u1")
	require.NoError(t, err)
	assert.False(t, status.Blocked)
	assert.Nil(t, status.User)

	_, err = svc.BlockUser(ctx, "guild-1", BlockUserInput{
		UserID: "u1", UserTag: "user#1", BlockedBy: "m1", BlockedByTag: "mod#1", Reason: strPtr("spam"),
	})
	require.NoError(t, err)

	status, err = svc.GetBlockStatus(ctx, "guild-1", "u1")
	require.NoError(t, err)
	assert.True(t, status.Blocked)
	require.NotNil(t, status.User)
	assert.Equal(t, "spam", *status.User.Reason)

	require.NoError(t, svc.UnblockUser(ctx, "guild-1", "u1"))
	assertAppError(t, svc.UnblockUser(ctx, "guild-1", "u1"), models.CodeNotFound)

	_, err = svc.BlockUser(ctx, "guild-1", BlockUserInput{UserID: "u2"})
	assertValidationError(t, err)
}

func TestServerService_ValidateGuilds(t *testing.T) {
	t.Parallel()

	servers := &serverRepoStub{
		listByGuildIDsFn: func(_ context.Context, ids []string) ([]models.Server, error) {
			return []models.Server{
				{GuildID: "g3", GuildName: "Stored three"},
				{GuildID: "g1", GuildName: "Stored one"},
			}, nil
		},
	}
	configs := &configRepoStub{
		configuredGuildIDsFn: func(_ context.Context, _ []string) (map[string]bool, error) {
			return map[string]bool{"g3": true}, nil
		},
	}
	svc := NewServerService(servers, configs)

	got, err := svc.ValidateGuilds(context.Background(), []models.GuildCandidate{
		{GuildID: "g1", GuildName: "One", UserHasPermissions: true},
		{GuildID: "unknown", GuildName: "Nope"},
		{GuildID: "g3"},
		{GuildID: "g1", GuildName: "One again"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "g1", got[0].GuildID)
	assert.Equal(t, "One", got[0].GuildName)
	assert.True(t, got[0].HasBot)
	assert.False(t, got[0].HasConfig)
	assert.True(t, got[0].UserHasPermissions)

	assert.Equal(t, "g3", got[1].GuildID)
	assert.Equal(t, "Stored three", got[1].GuildName)
	assert.True(t, got[1].HasConfig)
}

func TestServerService_ValidateGuilds_Empty(t *testing.T) {
	t.Parallel()

	svc := NewServerService(&serverRepoStub{}, &configRepoStub{})
	got, err := svc.ValidateGuilds(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = svc.ValidateGuilds(context.Background(), []models.GuildCandidate{{GuildName: "no id"}})
	assertValidationError(t, err)
}

func TestServerService_CreateAndUpdate(t *testing.T) {
	t.Parallel()

	stored := &models.Server{ID: 1, GuildID: "g1", GuildName: "Old"}
	servers := &serverRepoStub{
		createFn:       func(_ context.Context, _ *models.Server) error { return nil },
		getByGuildIDFn: func(_ context.Context, _ string) (*models.Server, error) { return stored, nil },
		updateFn:       func(_ context.Context, _ *models.Server) error { return nil },
	}
	svc := NewServerService(servers, &configRepoStub{})
	ctx := context.Background()

	_, err := svc.CreateServer(ctx, CreateServerInput{GuildID: "bad id!", GuildName: "x"})
	assertValidationError(t, err)

	created, err := svc.CreateServer(ctx, CreateServerInput{GuildID: "g1", GuildName: "Guild"})
	require.NoError(t, err)
	assert.False(t, created.IsPremium)

	updated, err := svc.UpdateServer(ctx, "g1", UpdateServerInput{IsPremium: boolPtr(true), MaxThreads: intPtr(50)})
	require.NoError(t, err)
	assert.Equal(t, "Old", updated.GuildName)
	assert.True(t, updated.IsPremium)
	assert.Equal(t, 50, *updated.MaxThreads)
	assert.Nil(t, updated.MaxMacros)
}

func TestGuildConfigService(t *testing.T) {
	t.Parallel()

	var stored *models.GuildConfig
	configs := &configRepoStub{
		getFn: func(_ context.Context, g string) (*models.GuildConfig, error) {
			if stored == nil {
				return nil, models.NewNotFoundError("Guild config", g)
			}
			cp := *stored
			return &cp, nil
		},
		createFn: func(_ context.Context, c *models.GuildConfig) error {
			if stored != nil {
				return models.NewConflictError("Guild config already exists")
			}
			stored = c
			return nil
		},
		updateFn: func(_ context.Context, c *models.GuildConfig) error {
			stored = c
			return nil
		},
	}
	svc := NewGuildConfigService(configs)
	ctx := context.Background()

	_, err := svc.UpdateGuildConfig(ctx, "g1", GuildConfigInput{RandomizeNames: boolPtr(true)})
	assertAppError(t, err, models.CodeNotFound)

	created, err := svc.CreateGuildConfig(ctx, "g1", GuildConfigInput{LogChannelID: strPtr("chan-1")})
	require.NoError(t, err)
	assert.Equal(t, "g1", created.GuildID)
	assert.NotNil(t, created.ModeratorRoleIDs)
	assert.Empty(t, created.ModeratorRoleIDs)
	assert.NotNil(t, created.BlockedWords)

	_, err = svc.CreateGuildConfig(ctx, "g1", GuildConfigInput{})
	assertAppError(t, err, models.CodeConflict)

	roles := []string{"r1", "r2"}
	updated, err := svc.UpdateGuildConfig(ctx, "g1", GuildConfigInput{ModeratorRoleIDs: &roles, AutoCloseHours: intPtr(24)})
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, []string(updated.ModeratorRoleIDs))
	assert.Equal(t, "chan-1", *updated.LogChannelID)
	assert.Equal(t, 24, *updated.AutoCloseHours)

	_, err = svc.UpdateGuildConfig(ctx, "g1", GuildConfigInput{AutoCloseHours: intPtr(-1)})
	assertValidationError(t, err)
}

func TestNoteService_CreateNote(t *testing.T) {
	t.Parallel()

	var stored *models.Note
	repo := &noteRepoStub{
		createFn: func(_ context.Context, n *models.Note) error {
			stored = n
			return nil
		},
	}
	svc := NewNoteService(repo)

	note, err := svc.CreateNote(context.Background(), "g1", 42, CreateNoteInput{AuthorID: "m1", AuthorTag: "mod#1", Content: "watch"})
	require.NoError(t, err)
	assert.Same(t, stored, note)
	require.NotNil(t, note.ThreadID)
	assert.Equal(t, uint(42), *note.ThreadID)

	_, err = svc.CreateNote(context.Background(), "g1", 42, CreateNoteInput{AuthorID: "m1", AuthorTag: "mod#1"})
	assertValidationError(t, err)
}

func TestMessageService(t *testing.T) {
	t.Parallel()

	repo := &messageRepoStub{
		listFn: func(_ context.Context, _ string, page, limit int) ([]models.Message, int64, error) {
			assert.Equal(t, MaxPageSize, limit)
			return []models.Message{{Content: "a"}}, 101, nil
		},
		createFn: func(_ context.Context, _ *models.Message) error { return nil },
	}
	svc := NewMessageService(repo)

	page, err := svc.ListMessages(context.Background(), "g1", 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasNext)

	msg, err := svc.CreateMessage(context.Background(), "g1", MessageInput{AuthorID: "u", AuthorTag: "u#1", Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "g1", msg.GuildID)
}

// noteRepoStub is a stub for repository.NoteRepository.
type noteRepoStub struct {
	listByThreadFn func(context.Context, string, uint) ([]models.Note, error)
	createFn       func(context.Context, *models.Note) error
}

func (s *noteRepoStub) ListByThread(ctx context.Context, guildID string, threadID uint) ([]models.Note, error) {
	return s.listByThreadFn(ctx, guildID, threadID)
}
func (s *noteRepoStub) Create(ctx context.Context, note *models.Note) error {
	return s.createFn(ctx, note)
}

// messageRepoStub is a stub for repository.MessageRepository.
type messageRepoStub struct {
	listFn   func(context.Context, string, int, int) ([]models.Message, int64, error)
	createFn func(context.Context, *models.Message) error
}

func (s *messageRepoStub) List(ctx context.Context, guildID string, page, limit int) ([]models.Message, int64, error) {
	return s.listFn(ctx, guildID, page, limit)
}
func (s *messageRepoStub) Create(ctx context.Context, msg *models.Message) error {
	return s.createFn(ctx, msg)
}
