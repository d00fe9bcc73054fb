package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskflow/internal/delivery/context"
	"taskflow/internal/domain/repository"
	"taskflow/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	refreshTokenRepo repository.RefreshTokenRepository,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		refreshTokenRepo: refreshTokenRepo,
		logger:           logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CleanupExpiredSessions removes all expired sessions from the database.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Cleaned up expired sessions", slog.Int64("removed", removed))
	}

	return removed, nil
}
