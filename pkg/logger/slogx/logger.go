package slogx

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Logger is a ctx-first wrapper around slog.Logger that only accepts typed attributes.
type Logger struct {
	l *slog.Logger
}

func New(h slog.Handler) *Logger {
	return &Logger{l: slog.New(h)}
}

func (l *Logger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelInfo, msg, attrs...)
}

func (l *Logger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelDebug, msg, attrs...)
}

func (l *Logger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelWarn, msg, attrs...)
}

func (l *Logger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelError, msg, attrs...)
}

func (l *Logger) Log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	l.l.LogAttrs(ctx, level, msg, attrs...)
}

func (l *Logger) With(attrs ...slog.Attr) *Logger {
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}

	return &Logger{l: l.l.With(args...)}
}

// Slog exposes the underlying logger for libraries that want a *slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.l
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parse log level %q: %v", s, err)
	}

	return level, nil
}

func Err(err error) slog.Attr {
	return slog.Any("err", err)
}

func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

func MemoID(id int64) slog.Attr {
	return slog.Int64("memo_id", id)
}

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}
