package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/homestead/internal/config"
)

func TestNewProductionWritesJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := New(&buf, config.Settings{Environment: "production", LogLevelName: "info"})
	WithScene(log, "town").Info("scene entered", "spawn", "start")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "scene entered", rec["msg"])
	assert.Equal(t, "town", rec["scene"])
	assert.Equal(t, "start", rec["spawn"])
}

func TestNewDevelopmentRespectsLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := New(&buf, config.Settings{Environment: "development", LogLevelName: "warn"})
	log.Info("hidden")
	WithError(log, errors.New("disk full")).Warn("save failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "save failed")
	assert.Contains(t, out, "error=\"disk full\"")
}
