package log

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"nonsense", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelRoundTrip(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		t.Run(level.String(), func(t *testing.T) {
			if got := ParseLevel(level.String()); got != level {
				t.Errorf("roundtrip failed: %v -> %q -> %v", level, level.String(), got)
			}
		})
	}
}

func TestToSlogLevel(t *testing.T) {
	if got := LevelWarn.ToSlogLevel(); got != slog.LevelWarn {
		t.Errorf("LevelWarn.ToSlogLevel() = %v, want %v", got, slog.LevelWarn)
	}
}
