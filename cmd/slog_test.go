package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogHandler_ProductionLogsJSON(t *testing.T) {
	var buf bytes.Buffer
	h, err := newLogHandler(&buf, "production", "")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Debug("hidden")
	logger.Info("request handled", "status", 200)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request handled", line["msg"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLogHandler_DevelopmentUsesDebugTint(t *testing.T) {
	var buf bytes.Buffer
	h, err := newLogHandler(&buf, "development", "")
	require.NoError(t, err)

	slog.New(h).Debug("render timing")
	assert.Contains(t, buf.String(), "render timing")
	assert.Error(t, json.Unmarshal(buf.Bytes(), new(map[string]any)))
}

func TestNewLogHandler_LevelOverride(t *testing.T) {
	var buf bytes.Buffer
	h, err := newLogHandler(&buf, "development", "warn")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("quiet")
	logger.Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")

	_, err = newLogHandler(&buf, "production", "chatty")
	assert.Error(t, err)
}

func TestCleanSourcePath(t *testing.T) {
	assert.Equal(t, "service/pages.go", cleanSourcePath("/home/dev/academy/service/pages.go", "/academy/"))
	assert.Equal(t, "github.com/x/y.go", cleanSourcePath("/root/go/src/github.com/x/y.go", "/academy/"))
	assert.Equal(t, "y.go", cleanSourcePath("y.go", "/academy/"))
}
