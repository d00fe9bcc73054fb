package memory

import (
	"context"

	"taskflow/internal/domain/entity"
	"taskflow/internal/domain/repository"

	"github.com/google/uuid"
)

type refreshTokenRepository struct {
	store *Store
	undo  *undoLog
}

func (repo *refreshTokenRepository) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	s := repo.store

	return s.write(repo.undo, func() (func(), error) {
		if _, ok := s.users[token.UserID]; !ok {
			return nil, repository.ErrUserNotFound
		}

		if token.ID == uuid.Nil {
			token.ID = uuid.New()
		}
		if token.CreatedAt.IsZero() {
			token.CreatedAt = s.now()
		}

		s.tokens[token.TokenHash] = *token

		hash := token.TokenHash

		return func() { delete(s.tokens, hash) }, nil
	})
}

func (repo *refreshTokenRepository) FindRefreshTokenByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	token, ok := repo.store.tokens[tokenHash]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}

	if token.IsExpired(repo.store.now()) {
		return nil, repository.ErrRefreshTokenExpired
	}

	return &token, nil
}

// DeleteRefreshTokenByHash checks and removes under one lock, so of two
// concurrent deletes of the same hash exactly one succeeds.
func (repo *refreshTokenRepository) DeleteRefreshTokenByHash(_ context.Context, tokenHash string) error {
	s := repo.store

	return s.write(repo.undo, func() (func(), error) {
		previous, ok := s.tokens[tokenHash]
		if !ok {
			return nil, repository.ErrRefreshTokenNotFound
		}

		delete(s.tokens, tokenHash)

		return func() { s.tokens[tokenHash] = previous }, nil
	})
}

func (repo *refreshTokenRepository) DeleteExpiredRefreshTokens(_ context.Context) (int64, error) {
	s := repo.store

	var removed []entity.RefreshToken
	err := s.write(repo.undo, func() (func(), error) {
		now := s.now()
		for hash, token := range s.tokens {
			if token.IsExpired(now) {
				removed = append(removed, token)
				delete(s.tokens, hash)
			}
		}

		return func() {
			for _, token := range removed {
				s.tokens[token.TokenHash] = token
			}
		}, nil
	})

	return int64(len(removed)), err
}
