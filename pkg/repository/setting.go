package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/communityportal/notifier/pkg/domain"
)

// NotificationSettingsKey is the settings key holding the notifications singleton
const NotificationSettingsKey = "notifications"

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`
		if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set setting: %w", err)}
		}
		return nil
	})
}

// GetNotificationSettings loads the notifications singleton, creating the default one if absent.
// A record that cannot be decoded is treated as the default.
func (r *SettingRepository) GetNotificationSettings(ctx context.Context) (domain.NotificationSettings, error) {
	value, err := r.GetSetting(ctx, NotificationSettingsKey)
	if err != nil {
		return domain.NotificationSettings{}, fmt.Errorf("get notification settings: %w", err)
	}

	if value == "" {
		settings := domain.NotificationSettings{Frequency: domain.DefaultFrequency}
		if err := r.SaveNotificationSettings(ctx, settings); err != nil {
			return domain.NotificationSettings{}, fmt.Errorf("create default notification settings: %w", err)
		}
		lgr.Printf("[INFO] created default notification settings, frequency %s", settings.Frequency)
		return settings, nil
	}

	var settings domain.NotificationSettings
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		lgr.Printf("[WARN] malformed notification settings %q, using defaults: %v", value, err)
		return domain.NotificationSettings{Frequency: domain.DefaultFrequency}, nil
	}
	return settings.Normalize(), nil
}

// SaveNotificationSettings stores the notifications singleton
func (r *SettingRepository) SaveNotificationSettings(ctx context.Context, settings domain.NotificationSettings) error {
	if settings.LastSentAt != nil {
		ts := settings.LastSentAt.UTC()
		settings.LastSentAt = &ts
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode notification settings: %w", err)
	}
	return r.SetSetting(ctx, NotificationSettingsKey, string(data))
}
