package memory

import (
	"context"

	"taskflow/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
	undo  *undoLog
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store, undo: f.undo}
}

func (f *repositoryFactory) TaskRepo() repository.TaskRepository {
	return &taskRepository{store: f.store, undo: f.undo}
}

func (f *repositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return &refreshTokenRepository{store: f.store, undo: f.undo}
}

// NewTransactionManager returns a transaction manager over the store. Writes
// made through the factory are reverted when fn fails or panics.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &transactionManager{store: s}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	undo := &undoLog{}

	defer func() {
		if r := recover(); r != nil {
			tm.store.rollback(undo)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store, undo: undo}); err != nil {
		tm.store.rollback(undo)

		return err
	}

	return nil
}
