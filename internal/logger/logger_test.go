package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := New(buf, "info", FormatJSON)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("View", "sys.columns").Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "sys.columns", entry["View"])
	assert.Equal(t, "loaded", entry["message"])
	assert.NotContains(t, entry, "pid")
}

func TestNew_DebugAddsCaller(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := New(buf, "debug", FormatJSON)
	require.NoError(t, err)
	l.Debug().Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry, "pid")
	assert.Contains(t, entry, zerolog.CallerFieldName)
}

func TestNew_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := New(buf, "warn", FormatText)
	require.NoError(t, err)
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "verbose", FormatJSON)
	assert.ErrorIs(t, err, errUnknownLogLevel)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.ErrorIs(t, err, errUnknownLogFormat)
}
