package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInit_Formats(t *testing.T) {
	var buf bytes.Buffer
	_, err := Init("info", FormatText, &buf)
	require.NoError(t, err)
	New("refine").Info("step done", "k", 1)
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "component=refine")
	assert.Contains(t, buf.String(), "k=1")

	buf.Reset()
	_, err = Init("info", FormatJSON, &buf)
	require.NoError(t, err)
	New("refine").Info("step done")
	assert.Contains(t, buf.String(), `"component":"refine"`)

	_, err = Init("info", "xml", &buf)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestInit_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Init("warn", FormatText, &buf)
	require.NoError(t, err)

	logger.Info("suppressed")
	logger.Warn("kept")
	assert.NotContains(t, buf.String(), "suppressed")
	assert.Contains(t, buf.String(), "kept")
}
