package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_ConfiguredLevel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		level        string
		debugEnabled bool
		infoEnabled  bool
	}{
		{"debug", true, true},
		{"", false, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{" DEBUG ", true, true},
	}
	for _, tc := range tests {
		logger := newLogger(tc.level)
		require.Equal(t, tc.debugEnabled, logger.Enabled(ctx, slog.LevelDebug), "level %q debug", tc.level)
		require.Equal(t, tc.infoEnabled, logger.Enabled(ctx, slog.LevelInfo), "level %q info", tc.level)
	}
}
