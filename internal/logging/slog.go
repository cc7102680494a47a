package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// SecretKeys are attribute keys whose values are never written.
var SecretKeys = []string{"password", "key", "verifier", "token", "access_token", "refresh_token", "secret"}

const redacted = "[REDACTED]"

type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// New returns a logger writing to w as JSON, or as text when json is false,
// at level and above. Secret attributes are redacted.
func New(w io.Writer, json bool, level slog.Level) *SlogLogger {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redact}

	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return NewSlogLogger(slog.New(h))
}

func redact(groups []string, a slog.Attr) slog.Attr {
	for _, k := range SecretKeys {
		if strings.EqualFold(a.Key, k) {
			return slog.String(a.Key, redacted)
		}
	}
	return a
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
