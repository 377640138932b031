package helpers

import (
	"strings"
	"time"

	"github.com/yigit/salesweb/internal/pkg/logger"
)

// ParseDuration parses a configured duration such as "1h" or "720h".
// Empty, malformed or negative values fall back to defaultDuration.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	durationStr = strings.TrimSpace(durationStr)
	if durationStr == "" {
		return defaultDuration
	}

	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration < 0 {
		logger.Warn().Err(err).
			Str("value", durationStr).
			Dur("default", defaultDuration).
			Msg("Invalid duration, using default")
		return defaultDuration
	}
	return duration
}
