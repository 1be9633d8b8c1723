package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
	Output string `toml:"output"`
}

type Logger struct {
	*slog.Logger
}

func New(config Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: config.Level.slogLevel(),
	}

	writer := openOutput(config.Output)

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	case FormatText:
		fallthrough
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// openOutput resolves stdout, stderr, discard or a file path. Files that
// cannot be opened fall back to stderr so logs never end up on the CLI's
// stdout by accident.
func openOutput(output string) io.Writer {
	switch output {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard":
		return io.Discard
	}

	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to open custom logger file. Using 'stderr' error: %s\n", err.Error())
		return os.Stderr
	}
	return file
}

func (l Level) slogLevel() slog.Level {
	switch Level(strings.ToLower(string(l))) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelInfo:
		return slog.LevelInfo
	}
	return slog.LevelInfo
}

// WithComponent returns a child logger tagging every record with the
// component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", component),
	}
}

func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
