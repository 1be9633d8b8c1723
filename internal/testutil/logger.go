package testutil

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/GustavoCaso/spendwise/internal/logger"
)

func TestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	// creates a test logger that doesn't output anything.
	testLogger := logger.New(logger.Config{
		Level:  logger.LevelInfo,
		Format: logger.FormatText,
		Output: "discard",
	})

	return testLogger
}

// BufferLogger returns a debug level logger writing text records to the
// returned buffer.
func BufferLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return &logger.Logger{Logger: slog.New(handler)}, buf
}
