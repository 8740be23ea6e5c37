package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelInfo))

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.With("ruleset", "german").WithGroup("req").Warn("slow encode", "words", 3)
	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "slow encode")
	assert.Contains(t, out, "ruleset"+reset+"=german")
	assert.Contains(t, out, "req.words"+reset+"=3")
}

func TestPrettyHandlerGroupAttr(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelDebug))

	log.Debug("layer applied", slog.Group("code", "in", "muller", "out", "miler"))
	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "code.in"+reset+"=muller")
	assert.Contains(t, out, "code.out"+reset+"=miler")
}

func TestNewJSON(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	var buf bytes.Buffer
	New(&buf).Debug("encoded", "word", "Müller", "code", "milr")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "encoded", entry["msg"])
	assert.Equal(t, "milr", entry["code"])
}

func TestNewPretty(t *testing.T) {
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_LEVEL", "error")

	var buf bytes.Buffer
	log := New(&buf)
	log.Warn("dropped")
	assert.Empty(t, buf.String())
	log.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}
