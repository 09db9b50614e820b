package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityportal/notifier/pkg/domain"
)

func TestSettingRepository_GetSetSetting(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	value, err := repos.Setting.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, repos.Setting.SetSetting(ctx, "k", "v1"))
	require.NoError(t, repos.Setting.SetSetting(ctx, "k", "v2"))

	value, err = repos.Setting.GetSetting(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)
}

func TestSettingRepository_NotificationSettings(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("created lazily with default", func(t *testing.T) {
		settings, err := repos.Setting.GetNotificationSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.FrequencyDaily, settings.Frequency)
		assert.Nil(t, settings.LastSentAt)

		raw, err := repos.Setting.GetSetting(ctx, NotificationSettingsKey)
		require.NoError(t, err)
		assert.JSONEq(t, `{"frequency":"daily"}`, raw)
	})

	t.Run("round trip", func(t *testing.T) {
		sent := time.Date(2026, 10, 5, 8, 30, 0, 0, time.FixedZone("CET", 3600))
		err := repos.Setting.SaveNotificationSettings(ctx, domain.NotificationSettings{Frequency: domain.FrequencyBiWeekly, LastSentAt: &sent})
		require.NoError(t, err)

		settings, err := repos.Setting.GetNotificationSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.FrequencyBiWeekly, settings.Frequency)
		require.NotNil(t, settings.LastSentAt)
		assert.True(t, sent.Equal(*settings.LastSentAt))
	})

	t.Run("unknown frequency normalized", func(t *testing.T) {
		require.NoError(t, repos.Setting.SetSetting(ctx, NotificationSettingsKey, `{"frequency":"hourly"}`))
		settings, err := repos.Setting.GetNotificationSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.FrequencyDaily, settings.Frequency)
	})

	t.Run("corrupt record treated as default", func(t *testing.T) {
		require.NoError(t, repos.Setting.SetSetting(ctx, NotificationSettingsKey, `{broken`))
		settings, err := repos.Setting.GetNotificationSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.FrequencyDaily, settings.Frequency)
	})
}
