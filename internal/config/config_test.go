package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ValidateProductionDatabase(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		sslMode     string
		password    string
		databaseURL string
		expectError bool
	}{
		{"Production with disable SSL mode", "production", "disable", "secure-password", "", true},
		{"Production with default password", "production", "require", "password", "", true},
		{"Production with require SSL mode", "production", "require", "secure-password", "", false},
		{"Production with DATABASE_URL", "prod", "", "", "postgres://modmail@db/modmail", false},
		{"Development with disable SSL mode", "development", "disable", "password", "", false},
		{"Test with empty SSL mode", "test", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Env:         tt.env,
				Port:        "8080",
				DBDriver:    "postgres",
				DBSSLMode:   tt.sslMode,
				DBPassword:  tt.password,
				DatabaseURL: tt.databaseURL,
			}

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		return &Config{Env: "development", Port: "8080", DBDriver: "postgres", TracingSampleRatio: 1}
	}

	c := base()
	c.Port = ""
	assert.Error(t, c.Validate())

	c = base()
	c.DBDriver = "mysql"
	assert.Error(t, c.Validate())

	c = base()
	c.TracingSampleRatio = 1.5
	assert.Error(t, c.Validate())

	c = base()
	c.DiscordLogWebhookID = "123"
	assert.Error(t, c.Validate(), "webhook id without token")

	c = base()
	c.DiscordLogWebhookID = "123"
	c.DiscordLogWebhookToken = "abc"
	assert.NoError(t, c.Validate())
}

func TestConfig_DSN(t *testing.T) {
	c := &Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "modmail"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=modmail sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://u:p@db:5432/modmail"
	assert.Equal(t, "postgres://u:p@db:5432/modmail", c.DSN())
}

func TestLoadConfig_EnvOverridesAndNormalization(t *testing.T) {
	defer viper.Reset()
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_SSLMODE", "  DISABLE  ")
	t.Setenv("ANALYTICS_REFRESH_INTERVAL", "15m")
	t.Setenv("DISCORD_WEBHOOK_URL", "http://bot:3000/webhook")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, 15*time.Minute, c.AnalyticsRefreshInterval)
	assert.Equal(t, 90*time.Minute, c.AnalyticsCacheTTL)
	assert.Equal(t, "http://bot:3000/webhook", c.DiscordWebhookURL)
	assert.Equal(t, "8080", c.Port)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, IsProduction("production"))
	assert.True(t, IsProduction(" PROD "))
	assert.False(t, IsProduction("development"))
	assert.False(t, IsProduction(os.Getenv("MODMAIL_UNSET_ENV")))
}
