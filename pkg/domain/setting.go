package domain

import (
	"strings"
	"time"
)

// Setting represents a key-value configuration setting
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Frequency is the cadence of periodic digest emails
type Frequency string

const (
	FrequencyInstant  Frequency = "instant"
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi-weekly"
)

// DefaultFrequency is used when settings are absent or hold an unknown value
const DefaultFrequency = FrequencyDaily

// ParseFrequency converts a stored value to Frequency, falling back to DefaultFrequency
func ParseFrequency(s string) Frequency {
	f, ok := LookupFrequency(s)
	if !ok {
		return DefaultFrequency
	}
	return f
}

// LookupFrequency reports whether s names a known frequency
func LookupFrequency(s string) (Frequency, bool) {
	switch f := Frequency(strings.ToLower(strings.TrimSpace(s))); f {
	case FrequencyInstant, FrequencyDaily, FrequencyWeekly, FrequencyBiWeekly:
		return f, true
	}
	return "", false
}

// NotificationSettings is the singleton controlling digest cadence
type NotificationSettings struct {
	Frequency  Frequency  `json:"frequency"`
	LastSentAt *time.Time `json:"lastSentAt,omitempty"`
}

// Normalize returns a copy with an unknown frequency replaced by the default
func (s NotificationSettings) Normalize() NotificationSettings {
	s.Frequency = ParseFrequency(string(s.Frequency))
	return s
}
