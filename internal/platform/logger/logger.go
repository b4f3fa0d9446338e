package logger

import (
	"context"
)

// Logger is the logging interface every component depends on.
// Args are alternating key/value pairs, as with log/slog.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}
