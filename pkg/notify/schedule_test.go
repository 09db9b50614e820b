package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/communityportal/notifier/pkg/domain"
)

// monday is a Monday morning used as the reference date
var monday = time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)

func TestShouldRunToday_Daily(t *testing.T) {
	settings := domain.NotificationSettings{Frequency: domain.FrequencyDaily}
	for i := 0; i < 14; i++ {
		day := monday.AddDate(0, 0, i)
		assert.True(t, ShouldRunToday(settings, day, false), "day %s", day.Weekday())
	}
}

func TestShouldRunToday_Weekly(t *testing.T) {
	settings := domain.NotificationSettings{Frequency: domain.FrequencyWeekly}
	for i := 0; i < 14; i++ {
		day := monday.AddDate(0, 0, i)
		assert.Equal(t, day.Weekday() == time.Monday, ShouldRunToday(settings, day, false), "day %s", day.Weekday())
	}
}

func TestShouldRunToday_BiWeekly(t *testing.T) {
	at := func(days int) *time.Time {
		ts := monday.AddDate(0, 0, -days)
		return &ts
	}

	tbl := []struct {
		name     string
		today    time.Time
		lastSent *time.Time
		want     bool
	}{
		{"never sent, monday", monday, nil, true},
		{"never sent, tuesday", monday.AddDate(0, 0, 1), nil, false},
		{"13 days ago", monday, at(13), false},
		{"14 days ago", monday, at(14), true},
		{"21 days ago", monday, at(21), true},
		{"7 days ago", monday, at(7), false},
		{"14 days ago but later in the day", monday, func() *time.Time { ts := monday.AddDate(0, 0, -14).Add(5 * time.Hour); return &ts }(), true},
		{"enough days but not monday", monday.AddDate(0, 0, 1), at(14), false},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.NotificationSettings{Frequency: domain.FrequencyBiWeekly, LastSentAt: tt.lastSent}
			assert.Equal(t, tt.want, ShouldRunToday(settings, tt.today, false))
		})
	}
}

func TestShouldRunToday_BiWeeklyLocation(t *testing.T) {
	// 23:30 UTC on a Sunday is already Monday in Kyiv
	kyiv := time.FixedZone("EEST", 3*3600)
	last := time.Date(2026, 9, 27, 22, 0, 0, 0, time.UTC) // Monday 01:00 in Kyiv
	today := time.Date(2026, 10, 11, 23, 30, 0, 0, time.UTC).In(kyiv)
	settings := domain.NotificationSettings{Frequency: domain.FrequencyBiWeekly, LastSentAt: &last}
	assert.True(t, ShouldRunToday(settings, today, false))
	assert.False(t, ShouldRunToday(settings, today.In(time.UTC), false), "still sunday in UTC")
}

func TestShouldRunToday_Instant(t *testing.T) {
	settings := domain.NotificationSettings{Frequency: domain.FrequencyInstant}
	assert.False(t, ShouldRunToday(settings, monday, false))
	assert.True(t, ShouldRunToday(settings, monday, true))
}

func TestShouldRunToday_Forced(t *testing.T) {
	last := monday.AddDate(0, 0, -1)
	for _, f := range []domain.Frequency{domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyBiWeekly, domain.FrequencyInstant, "garbage"} {
		for i := 0; i < 7; i++ {
			settings := domain.NotificationSettings{Frequency: f, LastSentAt: &last}
			assert.True(t, ShouldRunToday(settings, monday.AddDate(0, 0, i), true), "frequency %s day %d", f, i)
		}
	}
}

func TestShouldRunToday_MalformedFrequencyIsDaily(t *testing.T) {
	settings := domain.NotificationSettings{Frequency: "every-full-moon"}
	assert.True(t, ShouldRunToday(settings, monday.AddDate(0, 0, 3), false))
	assert.True(t, ShouldRunToday(domain.NotificationSettings{}, monday.AddDate(0, 0, 4), false))
}
