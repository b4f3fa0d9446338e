package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/posts-api/internal/platform/logger"
)

func TestSlogAdapter_JSONIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewSlogAdapter(&buf, "production", "info")

	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "req-123")
	log.Info(ctx, "post created", "post_id", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "post created", record["msg"])
	assert.Equal(t, "req-123", record["request_id"])
	assert.EqualValues(t, 3, record["post_id"])
}

func TestSlogAdapter_NoRequestIDWithoutContextValue(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewSlogAdapter(&buf, "production", "info")

	log.Info(context.Background(), "startup")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	_, ok := record["request_id"]
	assert.False(t, ok)
}

func TestSlogAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewSlogAdapter(&buf, "development", "warn")

	log.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	log.Warn(context.Background(), "shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}
