package logger

import (
	"testing"

	"jobboard/internal/config"

	"github.com/stretchr/testify/require"
)

func TestNew_FallsBackToInfoOnUnknownLevel(t *testing.T) {
	l, err := New(config.LogConfig{Level: "loud", JSON: true})
	require.NoError(t, err)
	require.NotNil(t, l)
	require.False(t, l.Core().Enabled(-1))
	require.True(t, l.Core().Enabled(0))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "", Truncate("abc", 0))
	require.Equal(t, "abc", Truncate("  abc ", 5))
	require.Equal(t, "ab...", Truncate("abcdef", 2))
}
