package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"taskflow/internal/domain/entity"
)

func TestIdentityRoundTrip(t *testing.T) {
	_, ok := IdentityFrom(context.Background())
	assert.False(t, ok)

	identity := entity.Identity{UserID: uuid.New(), Email: "ada@example.com"}
	got, ok := IdentityFrom(WithIdentity(context.Background(), identity))
	assert.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}
