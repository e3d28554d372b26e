package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/ports"
)

func TestSlogLoggerAdapter_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("New widget session", ports.F("session", "abc"), ports.F("city", "London"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "New widget session", entry["msg"])
	assert.Equal(t, "abc", entry["session"])
	assert.Equal(t, "London", entry["city"])
}

func TestSlogLoggerAdapter_ZeroValueUsesDefault(t *testing.T) {
	var logger SlogLoggerAdapter
	assert.NotPanics(t, func() {
		logger.Warn("zero value logger", ports.F("ok", true))
	})
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLogLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}

func TestMultiLogger(t *testing.T) {
	var first, second bytes.Buffer
	logger := NewMultiLogger(
		NewSlogLoggerAdapter(&first, slog.LevelDebug),
		NewSlogLoggerAdapter(&second, slog.LevelWarn),
	)

	logger.Debug("debug")
	logger.Error("error")

	assert.Equal(t, 2, strings.Count(first.String(), "\n"))
	assert.Equal(t, 1, strings.Count(second.String(), "\n"))
}
