package notify

import (
	"time"

	"github.com/communityportal/notifier/pkg/domain"
)

// biWeeklyDays is the minimal number of calendar days between two bi-weekly digests
const biWeeklyDays = 14

// ShouldRunToday decides whether a periodic digest is due on the date of today.
// Forced runs always proceed. Instant frequency never runs a periodic digest.
// The bi-weekly gap is counted in calendar days in today's location, so the time of day
// the trigger fires does not matter.
func ShouldRunToday(settings domain.NotificationSettings, today time.Time, forced bool) bool {
	if forced {
		return true
	}

	switch settings.Normalize().Frequency {
	case domain.FrequencyDaily:
		return true
	case domain.FrequencyWeekly:
		return today.Weekday() == time.Monday
	case domain.FrequencyBiWeekly:
		if today.Weekday() != time.Monday {
			return false
		}
		if settings.LastSentAt == nil {
			return true
		}
		return daysBetween(settings.LastSentAt.In(today.Location()), today) >= biWeeklyDays
	default: // instant
		return false
	}
}

// daysBetween returns the number of calendar days from a to b
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
