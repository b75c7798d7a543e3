package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"travel-backend/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&config.Config{LogLevel: "debug", LogFormat: "json"}, &buf)

	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	logger.Info().Str("k", "v").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "v", entry["k"])
	assert.Equal(t, "travel-backend", entry["app"])
}

func TestNewWithWriterUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&config.Config{LogLevel: "loud"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())
}
