package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrBadLevel)
}

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", "json")
	require.NoError(t, err)
	l.Info("solved", "length", 5)
	assert.Contains(t, buf.String(), `"length":5`)

	buf.Reset()
	l, err = New(&buf, "warn", "text")
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = New(&buf, "info", "xml")
	assert.ErrorIs(t, err, ErrBadFormat)
	_, err = New(&buf, "loud", "text")
	assert.ErrorIs(t, err, ErrBadLevel)
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := slog.Default()
	assert.Same(t, l, OrDiscard(l))
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
