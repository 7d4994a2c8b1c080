package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging surface used across the services. It is a thin
// wrapper over slog so handlers can carry request-scoped fields with With.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New returns a JSON structured logger writing to stdout.
// Accepted levels: debug, info, warn, error (default info).
func New(level string) Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return &slogLogger{l: slog.New(h)}
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) Infof(format string, args ...any) {
	s.l.Info(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Errorf(format string, args ...any) {
	s.l.Error(fmt.Sprintf(format, args...))
}

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

type noopLogger struct{}

// NewNoopLogger returns a logger that discards everything. Used in tests
// and as a fallback when a nil logger is injected.
func NewNoopLogger() Logger { return noopLogger{} }

func (noopLogger) Debug(msg string, args ...any)    {}
func (noopLogger) Info(msg string, args ...any)     {}
func (noopLogger) Error(msg string, args ...any)    {}
func (noopLogger) Infof(format string, args ...any) {}
func (noopLogger) Errorf(format string, args ...any) {
}
func (n noopLogger) With(args ...any) Logger { return n }
