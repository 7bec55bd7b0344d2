package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestSetupConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := Setup("warn", "", &buf)
	require.NotNil(t, logger)
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("row count mismatch", "affected", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "row count mismatch")
	assert.Contains(t, out, "affected=2")
}

func TestMultiHandlerFansOut(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	}}
	logger := slog.New(h).With("session", "s1")

	logger.Debug("loaded")
	logger.Error("commit failed")

	assert.Contains(t, debugBuf.String(), "loaded")
	assert.Contains(t, debugBuf.String(), "commit failed")
	assert.Contains(t, debugBuf.String(), "session=s1")
	assert.NotContains(t, errorBuf.String(), "loaded")
	assert.Contains(t, errorBuf.String(), "commit failed")
}
