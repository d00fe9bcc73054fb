package memory

import (
	"context"

	"taskflow/internal/domain/entity"
	"taskflow/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
	undo  *undoLog
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	user, ok := repo.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	id, ok := repo.store.userIDsByEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	user := repo.store.users[id]

	return &user, nil
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	s := repo.store

	return s.write(repo.undo, func() (func(), error) {
		if _, taken := s.userIDsByEmail[user.Email]; taken {
			return nil, repository.ErrDuplicateEmail
		}

		if user.ID == uuid.Nil {
			user.ID = uuid.New()
		}
		now := s.now()
		user.CreatedAt = now
		user.UpdatedAt = now

		s.users[user.ID] = *user
		s.userIDsByEmail[user.Email] = user.ID

		id, email := user.ID, user.Email

		return func() {
			delete(s.users, id)
			delete(s.userIDsByEmail, email)
		}, nil
	})
}
