package log

import (
	"log/slog"
	"strings"
)

// Level is the minimum severity a logger emits. It is a thin wrapper
// around slog.Level so config files and flags can name levels by string.
type Level slog.Level

const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// String returns the canonical upper-case name of the level.
func (l Level) String() string {
	return slog.Level(l).String()
}

// ToSlogLevel converts the level for use in slog handler options.
func (l Level) ToSlogLevel() slog.Level {
	return slog.Level(l)
}

// ParseLevel parses a level name case-insensitively. Unknown names
// fall back to LevelInfo so a typo in a config file never silences logs.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
