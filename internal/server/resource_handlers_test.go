package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/PumPum7/modmail/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacroHandlers(t *testing.T) {
	_, app := setupTestServer(t, nil, nil)

	for _, name := range []string{"greet", "rules", "bye"} {
		resp, body := doJSON(t, app, http.MethodPost, "/guilds/g1/macros", fiber.Map{
			"name": name, "content": name + " text", "quick_access": true,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := doJSON(t, app, http.MethodPost, "/guilds/g1/macros", fiber.Map{
		"name": "extra", "content": "x", "quick_access": true,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, models.CodeQuickAccessLimit, decode[models.ErrorResponse](t, body).Code)

	resp, body = doJSON(t, app, http.MethodPost, "/guilds/g1/macros", fiber.Map{"name": "extra", "content": "x"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = doJSON(t, app, http.MethodPut, "/guilds/g1/macros/extra", fiber.Map{"quick_access": true})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))

	resp, body = doJSON(t, app, http.MethodGet, "/guilds/g1/macros/quick-access", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	quick := decode[[]models.Macro](t, body)
	require.Len(t, quick, 3)
	assert.Equal(t, "bye", quick[0].Name)

	resp, body = doJSON(t, app, http.MethodPost, "/guilds/g1/macros", fiber.Map{"name": "greet", "content": "dup"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode, string(body))

	resp, body = doJSON(t, app, http.MethodPut, "/guilds/g1/macros/greet", fiber.Map{"content": "hello there"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = doJSON(t, app, http.MethodGet, "/guilds/g1/macros/greet", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	macro := decode[models.Macro](t, body)
	assert.Equal(t, "hello there", macro.Content)
	assert.True(t, macro.QuickAccess)

	resp, _ = doJSON(t, app, http.MethodGet, "/guilds/g2/macros/greet", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/guilds/g1/macros/greet", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodDelete, "/guilds/g1/macros/greet", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/guilds/g1/macros", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.Macro](t, body), 3)
}

func TestBlockedUserHandlers(t *testing.T) {
	_, app := setupTestServer(t, nil, nil)

	resp, body := doJSON(t, app, http.MethodGet, "/guilds/g1/blocked-users/u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[models.BlockStatus](t, body).Blocked)

	block := fiber.Map{
		"user_id": "u1", "user_tag": "spam#1", "blocked_by": "m1", "blocked_by_tag": "mod#1", "reason": "spam",
	}
	resp, body = doJSON(t, app, http.MethodPost, "/guilds/g1/blocked-users", block)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = doJSON(t, app, http.MethodPost, "/guilds/g1/blocked-users", block)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/guilds/g1/blocked-users/u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status := decode[models.BlockStatus](t, body)
	assert.True(t, status.Blocked)
	require.NotNil(t, status.User)
	assert.Equal(t, "spam", *status.User.Reason)

	// Blocks are per guild.
	resp, body = doJSON(t, app, http.MethodGet, "/guilds/g2/blocked-users/u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[models.BlockStatus](t, body).Blocked)

	resp, body = doJSON(t, app, http.MethodGet, "/guilds/g1/blocked-users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.BlockedUser](t, body), 1)

	resp, _ = doJSON(t, app, http.MethodDelete, "/guilds/g1/blocked-users/u1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodDelete, "/guilds/g1/blocked-users/u1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/guilds/g1/blocked-users", fiber.Map{"user_id": "u2"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServerHandlersAndValidateGuilds(t *testing.T) {
	_, app := setupTestServer(t, nil, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/servers", fiber.Map{"guild_id": "g1", "guild_name": "Stored One"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	resp, body = doJSON(t, app, http.MethodPost, "/servers", fiber.Map{"guild_id": "g2", "guild_name": "Two"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	resp, _ = doJSON(t, app, http.MethodPost, "/servers", fiber.Map{"guild_id": "g1", "guild_name": "again"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPut, "/servers/g2", fiber.Map{"is_premium": true, "max_threads": 50})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	updated := decode[models.Server](t, body)
	assert.True(t, updated.IsPremium)
	assert.Equal(t, "Two", updated.GuildName)
	require.NotNil(t, updated.MaxThreads)
	assert.Equal(t, 50, *updated.MaxThreads)

	resp, body = doJSON(t, app, http.MethodPost, "/guilds/g2/config", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = doJSON(t, app, http.MethodPost, "/validate-guilds", []fiber.Map{
		{"guild_id": "g2", "guild_name": "Two", "user_has_permissions": true},
		{"guild_id": "unknown", "guild_name": "Nope"},
		{"guild_id": "g1", "guild_name": ""},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	guilds := decode[[]models.ValidatedGuild](t, body)
	require.Len(t, guilds, 2)
	assert.Equal(t, "g2", guilds[0].GuildID)
	assert.True(t, guilds[0].HasConfig)
	assert.True(t, guilds[0].UserHasPermissions)
	assert.Equal(t, "g1", guilds[1].GuildID)
	assert.Equal(t, "Stored One", guilds[1].GuildName)
	assert.False(t, guilds[1].HasConfig)

	resp, body = doJSON(t, app, http.MethodPost, "/validate-guilds", []fiber.Map{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	resp, body = doJSON(t, app, http.MethodGet, "/servers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.Server](t, body), 2)

	resp, _ = doJSON(t, app, http.MethodDelete, "/servers/g1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodGet, "/servers/g1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGuildConfigHandlers(t *testing.T) {
	_, app := setupTestServer(t, nil, nil)

	resp, _ := doJSON(t, app, http.MethodGet, "/guilds/g1/config", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, "/guilds/g1/config", fiber.Map{"randomize_names": true})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/guilds/g1/config", fiber.Map{"log_channel_id": "c9"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	created := decode[models.GuildConfig](t, body)
	assert.Empty(t, created.ModeratorRoleIDs)
	assert.NotNil(t, created.ModeratorRoleIDs)

	resp, _ = doJSON(t, app, http.MethodPost, "/guilds/g1/config", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPut, "/guilds/g1/config", fiber.Map{
		"randomize_names": true, "moderator_role_ids": []string{"r1", "r2"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = doJSON(t, app, http.MethodGet, "/guilds/g1/config", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cfg := decode[models.GuildConfig](t, body)
	assert.True(t, cfg.RandomizeNames)
	assert.Equal(t, []string{"r1", "r2"}, []string(cfg.ModeratorRoleIDs))
	require.NotNil(t, cfg.LogChannelID)
	assert.Equal(t, "c9", *cfg.LogChannelID)

	resp, _ = doJSON(t, app, http.MethodPut, "/guilds/g1/config", fiber.Map{"auto_close_hours": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	_, app := setupTestServer(t, nil, nil)

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	health := decode[struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}](t, body)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Checks["database"])
	assert.Equal(t, "unavailable", health.Checks["redis"])

	resp, _ = doJSON(t, app, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnknownRouteReturns404(t *testing.T) {
	_, app := setupTestServer(t, nil, nil)
	resp, _ := doJSON(t, app, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServiceAuth(t *testing.T) {
	secret := "test-secret-key-12345678901234567890123456789012"
	cfg := testConfig()
	cfg.APIJWTSecret = secret
	_, app := setupTestServer(t, cfg, nil)

	sign := func(issuer string, exp time.Duration) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"iss": issuer,
			"exp": time.Now().Add(exp).Unix(),
		})
		str, _ := token.SignedString([]byte(secret))
		return "Bearer " + str
	}

	tests := []struct {
		name   string
		path   string
		auth   string
		status int
	}{
		{"health stays public", "/health/live", "", http.StatusOK},
		{"missing token", "/guilds/g1/macros", "", http.StatusUnauthorized},
		{"bot token", "/guilds/g1/macros", sign("modmail-bot", time.Hour), http.StatusOK},
		{"dashboard token on servers", "/servers", sign("modmail-dashboard", time.Hour), http.StatusOK},
		{"expired token", "/guilds/g1/macros", sign("modmail-bot", -time.Hour), http.StatusUnauthorized},
		{"unknown issuer", "/guilds/g1/macros", sign("someone", time.Hour), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers []string
			if tt.auth != "" {
				headers = []string{"Authorization", tt.auth}
			}
			resp, body := doJSON(t, app, http.MethodGet, tt.path, nil, headers...)
			assert.Equal(t, tt.status, resp.StatusCode, string(body))
		})
	}
}
