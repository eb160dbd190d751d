package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	t.Run("writes structured fields", func(t *testing.T) {
		buf.Reset()
		logger.Info("assignment decided", "task", "task-1", "member", "alice")

		out := buf.String()
		require.Contains(t, out, "assignment decided")
		require.Contains(t, out, "task=task-1")
		require.Contains(t, out, "member=alice")
	})

	t.Run("respects levels", func(t *testing.T) {
		buf.Reset()
		logger.Debug("detail")
		logger.Warn("clamped")
		logger.Error("failed")

		out := buf.String()
		require.Contains(t, out, "level=DEBUG")
		require.Contains(t, out, "level=WARN")
		require.Contains(t, out, "level=ERROR")
	})
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	// Must not panic or exit, even Fatal.
	logger.Debug("d")
	logger.Info("i", "k", "v")
	logger.Warn("w")
	logger.Error("e")
	logger.Fatal("f")
}
