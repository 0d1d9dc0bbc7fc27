package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"haven/config"
	deliverycontext "haven/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_SkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_PrefersRequestLogger(t *testing.T) {
	var fallback, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&fallback), &config.Config{}).LogMode(logger.Info)
	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))

	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT * FROM users", 1 }, nil)

	assert.Empty(t, fallback.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "SELECT * FROM users")
}

func TestGormSlogLogger_WarnLevelHidesRoutineQueries(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	l.Info(context.Background(), "connected to %s", "db")

	assert.Empty(t, buf.String())
}
