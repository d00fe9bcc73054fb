package usecase

import "context"

// SessionUsecase defines housekeeping over stored sessions.
type SessionUsecase interface {
	// CleanupExpiredSessions deletes expired refresh token records and returns how many were removed.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
