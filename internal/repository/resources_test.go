package repository

import (
	"context"
	"testing"
	"time"

	"github.com/PumPum7/modmail/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRepository(t *testing.T) {
	db := setupTestDB(t)
	threads := NewThreadRepository(db)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	th := newThread("g1", "u1")
	require.NoError(t, threads.Create(ctx, th))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	second := &models.Note{ThreadID: &th.ID, AuthorID: "m1", AuthorTag: "mod", Content: "two", GuildID: "g1", CreatedAt: base.Add(time.Hour)}
	first := &models.Note{ThreadID: &th.ID, AuthorID: "m1", AuthorTag: "mod", Content: "one", GuildID: "g1", CreatedAt: base}
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	notes, err := repo.ListByThread(ctx, "g1", th.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "one", notes[0].Content)

	_, err = repo.ListByThread(ctx, "g2", th.ID)
	assert.Equal(t, models.CodeNotFound, appCode(err))

	foreign := &models.Note{ThreadID: &th.ID, AuthorID: "m", AuthorTag: "m", Content: "x", GuildID: "g2"}
	assert.Equal(t, models.CodeNotFound, appCode(repo.Create(ctx, foreign)))
}

func TestMessageRepository_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &models.Message{
			AuthorID: "u", AuthorTag: "u", Content: content, GuildID: "g1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.Message{AuthorID: "u", AuthorTag: "u", Content: "z", GuildID: "g2"}))

	msgs, total, err := repo.List(ctx, "g1", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, msgs, 2)
	assert.Equal(t, "c", msgs[0].Content)
	assert.Equal(t, "b", msgs[1].Content)
}

func TestBlockedUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlockedUserRepository(db)
	ctx := context.Background()

	u := &models.BlockedUser{UserID: "u1", UserTag: "spam#1", BlockedBy: "m1", BlockedByTag: "mod#1", GuildID: "g1"}
	require.NoError(t, repo.Create(ctx, u))

	dup := &models.BlockedUser{UserID: "u1", UserTag: "spam#1", BlockedBy: "m2", BlockedByTag: "mod#2", GuildID: "g1"}
	assert.Equal(t, models.CodeConflict, appCode(repo.Create(ctx, dup)))

	got, err := repo.GetByUserID(ctx, "g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "mod#1", got.BlockedByTag)

	list, err := repo.List(ctx, "g1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, "g1", "u1"))
	_, err = repo.GetByUserID(ctx, "g1", "u1")
	assert.Equal(t, models.CodeNotFound, appCode(err))
	assert.Equal(t, models.CodeNotFound, appCode(repo.Delete(ctx, "g1", "u1")))
}

func TestServerRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Server{GuildID: "g1", GuildName: "One"}))
	require.NoError(t, repo.Create(ctx, &models.Server{GuildID: "g2", GuildName: "Two"}))
	assert.Equal(t, models.CodeConflict, appCode(repo.Create(ctx, &models.Server{GuildID: "g1", GuildName: "Again"})))

	servers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, servers, 2)
	assert.Equal(t, "g1", servers[0].GuildID)

	found, err := repo.ListByGuildIDs(ctx, []string{"g2", "unknown"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Two", found[0].GuildName)

	s, err := repo.GetByGuildID(ctx, "g1")
	require.NoError(t, err)
	s.IsPremium = true
	require.NoError(t, repo.Update(ctx, s))
	s, err = repo.GetByGuildID(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, s.IsPremium)

	require.NoError(t, repo.Delete(ctx, "g2"))
	assert.Equal(t, models.CodeNotFound, appCode(repo.Delete(ctx, "g2")))
}

func TestGuildConfigRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuildConfigRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.GuildConfig{GuildID: "g1"}))
	assert.Equal(t, models.CodeConflict, appCode(repo.Create(ctx, &models.GuildConfig{GuildID: "g1"})))

	cfg, err := repo.Get(ctx, "g1")
	require.NoError(t, err)
	assert.NotNil(t, cfg.ModeratorRoleIDs)
	assert.Empty(t, cfg.ModeratorRoleIDs)

	cfg.BlockedWords = append(cfg.BlockedWords, "spam")
	require.NoError(t, repo.Update(ctx, cfg))
	cfg, err = repo.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"spam"}, []string(cfg.BlockedWords))

	configured, err := repo.ConfiguredGuildIDs(ctx, []string{"g1", "g2"})
	require.NoError(t, err)
	assert.True(t, configured["g1"])
	assert.False(t, configured["g2"])

	_, err = repo.Get(ctx, "g2")
	assert.Equal(t, models.CodeNotFound, appCode(err))
}
