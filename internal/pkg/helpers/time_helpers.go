package helpers

import (
	"time"

	"github.com/kmoeti/attachtrack/internal/pkg/logger"
)

// ParseDuration parses a duration string, falling back to a default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		logger.Warn().
			Str("value", durationStr).
			Dur("default", defaultDuration).
			Msg("Invalid duration value, using default")
		return defaultDuration
	}
	return duration
}

// DateOnly truncates t to midnight in its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
