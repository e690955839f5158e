package utils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/lmittmann/tint"
)

// LoggerConfig controls where and how the Logger writes.
type LoggerConfig struct {
	// Writer defaults to os.Stderr.
	Writer io.Writer
	Level  slog.Level
	Color  bool
	// Fluent, when non-nil, receives a copy of every record.
	Fluent *fluent.Fluent
}

// Logger provides structured, leveled logging throughout the application.
type Logger struct {
	slog   *slog.Logger
	level  slog.Level
	fluent *fluent.Fluent
	// fluentFailures counts records that could not be forwarded.
	fluentFailures atomic.Int64
}

// NewLogger creates a Logger writing colored, human-readable lines.
func NewLogger(cfg LoggerConfig) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	handler := tint.NewHandler(w, &tint.Options{
		Level:      cfg.Level,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    !cfg.Color,
	})
	return &Logger{slog: slog.New(handler), level: cfg.Level, fluent: cfg.Fluent}
}

// NewNopLogger returns a Logger that discards everything. Handy in tests.
func NewNopLogger() *Logger {
	return NewLogger(LoggerConfig{Writer: io.Discard, Level: slog.LevelError + 4})
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewFluentClient connects to a Fluent Bit / fluentd forward input.
func NewFluentClient(host string, port int, tagPrefix string) (*fluent.Fluent, error) {
	if tagPrefix == "" {
		return nil, fmt.Errorf("fluent: tag prefix is required")
	}
	client, err := fluent.New(fluent.Config{
		FluentHost: host,
		FluentPort: port,
		TagPrefix:  tagPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("fluent: connect %s:%d: %w", host, port, err)
	}
	return client, nil
}

func (l *Logger) Info(format string, args ...any) {
	l.log(slog.LevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log(slog.LevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log(slog.LevelError, format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.log(slog.LevelDebug, format, args...)
}

// Close releases the fluent connection, if any.
func (l *Logger) Close() error {
	if l.fluent == nil {
		return nil
	}
	return l.fluent.Close()
}

func (l *Logger) log(level slog.Level, format string, args ...any) {
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.slog.Log(context.Background(), level, msg)

	if l.fluent == nil {
		return
	}
	err := l.fluent.Post(strings.ToLower(level.String()), map[string]any{
		"level":     level.String(),
		"message":   msg,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil && l.fluentFailures.Add(1) == 1 {
		// Only the first failure is reported; FluentFailures has the count.
		l.slog.Warn(fmt.Sprintf("[logger] Fluent forwarding failed: %v", err))
	}
}

// FluentFailures is the number of records the fluent client rejected.
func (l *Logger) FluentFailures() int64 {
	return l.fluentFailures.Load()
}
