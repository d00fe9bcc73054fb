package impl

import (
	"context"
	"testing"

	mockRepo "taskflow/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CleanupExpiredSessions_Success(t *testing.T) {
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	service := NewSessionService(refreshRepo, newDiscardLogger())

	ctx := context.Background()
	refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(3), nil)

	removed, err := service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestSessionService_CleanupExpiredSessions_Error(t *testing.T) {
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	service := NewSessionService(refreshRepo, newDiscardLogger())

	ctx := context.Background()
	dbErr := errors.New("database error")
	refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(0), dbErr)

	removed, err := service.CleanupExpiredSessions(ctx)

	assert.Error(t, err)
	assert.Zero(t, removed)
	assert.True(t, errors.Is(err, dbErr))
}
