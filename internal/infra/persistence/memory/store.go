// Package memory keeps users, tasks and sessions in process memory. It backs
// local runs and end-to-end tests where no PostgreSQL is available.
package memory

import (
	"sync"
	"time"

	"taskflow/internal/domain/entity"
	"taskflow/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds all records behind a single lock. Repositories hand out copies,
// so callers never alias stored state.
type Store struct {
	mu sync.RWMutex
	// txMu is held for the whole of a transaction and for every write made
	// outside one, so a rollback never reverts over a concurrent write.
	txMu sync.Mutex

	users          map[uuid.UUID]entity.User
	userIDsByEmail map[string]uuid.UUID
	tasks          map[uuid.UUID]taskRecord
	tokens         map[string]entity.RefreshToken
	seq            uint64

	now func() time.Time
}

// taskRecord remembers insertion order so listings stay stable when two tasks
// share a creation timestamp.
type taskRecord struct {
	task entity.Task
	seq  uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:          make(map[uuid.UUID]entity.User),
		userIDsByEmail: make(map[string]uuid.UUID),
		tasks:          make(map[uuid.UUID]taskRecord),
		tokens:         make(map[string]entity.RefreshToken),
		now:            time.Now,
	}
}

// NewUserRepository returns a user repository over the store.
func NewUserRepository(s *Store) repository.UserRepository {
	return &userRepository{store: s}
}

// NewTaskRepository returns a task repository over the store.
func NewTaskRepository(s *Store) repository.TaskRepository {
	return &taskRepository{store: s}
}

// NewRefreshTokenRepository returns a refresh token repository over the store.
func NewRefreshTokenRepository(s *Store) repository.RefreshTokenRepository {
	return &refreshTokenRepository{store: s}
}

// undoLog collects inverse operations of the writes made inside a transaction.
// A nil log means the write is not part of a transaction.
type undoLog struct {
	ops []func()
}

func (l *undoLog) push(op func()) {
	if l == nil || op == nil {
		return
	}

	l.ops = append(l.ops, op)
}

// write runs fn under the write lock and records the inverse it returns.
// Writes outside a transaction wait for any running transaction to finish.
func (s *Store) write(log *undoLog, fn func() (func(), error)) error {
	if log == nil {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	revert, err := fn()
	if err != nil {
		return err
	}

	log.push(revert)

	return nil
}

// rollback applies the recorded inverses newest first.
func (s *Store) rollback(log *undoLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(log.ops) - 1; i >= 0; i-- {
		log.ops[i]()
	}

	log.ops = nil
}

func (s *Store) nextSeq() uint64 {
	s.seq++

	return s.seq
}
