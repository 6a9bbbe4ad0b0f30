package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "json", "info")

	logger.Debug("hidden")
	logger.Info("backend call failed", "endpoint", "/api/roaster/roast")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "backend call failed", entry["msg"])
	assert.Equal(t, "/api/roaster/roast", entry["endpoint"])
}

func TestNewWithWriter_TextAddsSource(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "text", "debug").Debug("rendering page")
	assert.Contains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), `msg="rendering page"`)
}
