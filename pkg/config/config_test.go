package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		t.Setenv("TEST_SMTP_PASSWORD", "s3cret")
		configContent := `
server:
  listen: ":9090"
  timeout: 45s
  admin_password: admin-pass

portal:
  name: Hromada
  base_url: https://portal.example.com
  timezone: Europe/Kyiv

smtp:
  host: smtp.example.com
  port: 465
  username: mailer
  password: ${TEST_SMTP_PASSWORD}
  from: noreply@example.com
  tls: true

schedule:
  interval: 12h
  run_on_start: true

chat:
  endpoint: http://localhost:11434/v1
  model: llama3
  temperature: 0.2
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "admin-pass", cfg.Server.AdminPassword)

		assert.Equal(t, "Hromada", cfg.Portal.Name)
		assert.Equal(t, "https://portal.example.com", cfg.Portal.BaseURL)
		loc, err := cfg.Portal.Location()
		require.NoError(t, err)
		assert.Equal(t, "Europe/Kyiv", loc.String())

		assert.True(t, cfg.SMTP.Enabled())
		assert.Equal(t, 465, cfg.SMTP.Port)
		assert.Equal(t, "s3cret", cfg.SMTP.Password, "env expanded")
		assert.Equal(t, "noreply@example.com", cfg.SMTP.To, "to defaults to from")
		assert.True(t, cfg.SMTP.TLS)

		assert.Equal(t, 12*time.Hour, cfg.Schedule.Interval)
		assert.True(t, cfg.Schedule.RunOnStart)

		assert.True(t, cfg.Chat.Enabled())
		assert.Equal(t, "llama3", cfg.Chat.Model)
		assert.InDelta(t, 0.2, cfg.Chat.Temperature, 0.001)
		assert.Equal(t, 800, cfg.Chat.MaxTokens)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "portal:\n  name: Test\n"))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		// check server defaults
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Empty(t, cfg.Server.AdminPassword)

		assert.Equal(t, "file:portal.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, "http://localhost:8080", cfg.Portal.BaseURL)
		assert.Equal(t, "UTC", cfg.Portal.Timezone)

		assert.False(t, cfg.SMTP.Enabled())
		assert.Equal(t, 587, cfg.SMTP.Port)
		assert.Equal(t, 30*time.Second, cfg.SMTP.Timeout)

		assert.Equal(t, 24*time.Hour, cfg.Schedule.Interval)
		assert.False(t, cfg.Schedule.RunOnStart)

		assert.False(t, cfg.Chat.Enabled())
		assert.Equal(t, "gpt-4o-mini", cfg.Chat.Model)
		assert.Equal(t, 30*time.Second, cfg.Chat.Timeout)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			errMsg  string
		}{
			{"short server timeout", "server:\n  timeout: 100ms\n", "server timeout must be at least 1 second"},
			{"bad timezone", "portal:\n  timezone: Mars/Olympus\n", "portal.timezone"},
			{"bad base url", "portal:\n  base_url: not a url\n", "portal.base_url is invalid"},
			{"smtp without from", "smtp:\n  host: smtp.example.com\n", "smtp.from is required"},
			{"smtp bad port", "smtp:\n  host: smtp.example.com\n  from: a@example.com\n  port: 70000\n", "smtp.port"},
			{"short interval", "schedule:\n  interval: 10s\n", "schedule.interval"},
			{"chat temperature", "chat:\n  temperature: 3\n", "chat.temperature"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg, err := Load(writeConfig(t, tt.content))
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tt.errMsg)
			})
		}
	})
}

func TestPortalConfig_Location(t *testing.T) {
	loc, err := PortalConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = PortalConfig{Timezone: "Nowhere/Land"}.Location()
	require.Error(t, err)
}
