package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"taskflow/internal/domain/entity"
	"taskflow/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore()
	store.now = func() time.Time { return now }

	return store, &now
}

func createUser(t *testing.T, store *Store, email string) *entity.User {
	t.Helper()

	user := &entity.User{Name: "Test", Email: email, PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(store).Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	user := createUser(t, store, "ada@example.com")
	assert.NotEqual(t, uuid.Nil, user.ID)

	byEmail, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	store, _ := newTestStore(t)
	createUser(t, store, "ada@example.com")

	err := NewUserRepository(store).Create(context.Background(), &entity.User{Email: "ada@example.com"})

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestTaskRepository_OwnershipScoping(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewTaskRepository(store)
	ctx := context.Background()

	owner := createUser(t, store, "owner@example.com")
	other := createUser(t, store, "other@example.com")

	task := &entity.Task{Title: "Mine", Status: entity.TaskStatusTodo, UserID: owner.ID}
	require.NoError(t, repo.CreateTask(ctx, task))

	_, err := repo.FindTaskByID(ctx, other.ID, task.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	err = repo.UpdateTask(ctx, &entity.Task{ID: task.ID, UserID: other.ID, Title: "Stolen"})
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	err = repo.DeleteTask(ctx, other.ID, task.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	found, err := repo.FindTaskByID(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", found.Title)
}

func TestTaskRepository_CreateTaskRequiresOwner(t *testing.T) {
	store, _ := newTestStore(t)

	err := NewTaskRepository(store).CreateTask(context.Background(), &entity.Task{Title: "Orphan", UserID: uuid.New()})

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTaskRepository_FindTasks(t *testing.T) {
	store, now := newTestStore(t)
	repo := NewTaskRepository(store)
	ctx := context.Background()

	owner := createUser(t, store, "owner@example.com")
	for i := 1; i <= 15; i++ {
		*now = now.Add(time.Second)
		status := entity.TaskStatusTodo
		if i%5 == 0 {
			status = entity.TaskStatusCompleted
		}
		require.NoError(t, repo.CreateTask(ctx, &entity.Task{
			Title:  fmt.Sprintf("Task %02d", i),
			Status: status,
			UserID: owner.ID,
		}))
	}

	t.Run("newest first with total", func(t *testing.T) {
		tasks, total, err := repo.FindTasks(ctx, entity.TaskFilter{UserID: owner.ID, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		require.Len(t, tasks, 10)
		assert.Equal(t, "Task 15", tasks[0].Title)
		assert.Equal(t, "Task 06", tasks[9].Title)
	})

	t.Run("second page", func(t *testing.T) {
		tasks, total, err := repo.FindTasks(ctx, entity.TaskFilter{UserID: owner.ID, Offset: 10, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		require.Len(t, tasks, 5)
		assert.Equal(t, "Task 01", tasks[4].Title)
	})

	t.Run("offset past the end", func(t *testing.T) {
		tasks, total, err := repo.FindTasks(ctx, entity.TaskFilter{UserID: owner.ID, Offset: 40, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		assert.Empty(t, tasks)
	})

	t.Run("case-insensitive search", func(t *testing.T) {
		tasks, total, err := repo.FindTasks(ctx, entity.TaskFilter{UserID: owner.ID, Search: "task 1", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(6), total)
		assert.Len(t, tasks, 6)
	})

	t.Run("status filter", func(t *testing.T) {
		completed := entity.TaskStatusCompleted
		_, total, err := repo.FindTasks(ctx, entity.TaskFilter{UserID: owner.ID, Status: &completed, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		tasks, total, err := repo.FindTasks(ctx, entity.TaskFilter{UserID: uuid.New(), Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, tasks)
	})
}

func TestTaskRepository_SameTimestampKeepsInsertionOrder(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewTaskRepository(store)
	ctx := context.Background()
	owner := createUser(t, store, "owner@example.com")

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.CreateTask(ctx, &entity.Task{Title: title, UserID: owner.ID}))
	}

	tasks, _, err := repo.FindTasks(ctx, entity.TaskFilter{UserID: owner.ID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{tasks[0].Title, tasks[1].Title, tasks[2].Title})
}

func TestRefreshTokenRepository_Lifecycle(t *testing.T) {
	store, now := newTestStore(t)
	repo := NewRefreshTokenRepository(store)
	ctx := context.Background()
	owner := createUser(t, store, "owner@example.com")

	require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    owner.ID,
		TokenHash: "live",
		ExpiresAt: now.Add(time.Hour),
	}))
	require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    owner.ID,
		TokenHash: "stale",
		ExpiresAt: now.Add(-time.Minute),
	}))

	found, err := repo.FindRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.UserID)

	_, err = repo.FindRefreshTokenByHash(ctx, "stale")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenExpired)

	removed, err := repo.DeleteExpiredRefreshTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.FindRefreshTokenByHash(ctx, "stale")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	require.NoError(t, repo.DeleteRefreshTokenByHash(ctx, "live"))
	assert.ErrorIs(t, repo.DeleteRefreshTokenByHash(ctx, "live"), repository.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_ConcurrentDeleteSucceedsOnce(t *testing.T) {
	store, now := newTestStore(t)
	repo := NewRefreshTokenRepository(store)
	ctx := context.Background()
	owner := createUser(t, store, "owner@example.com")

	require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    owner.ID,
		TokenHash: "contested",
		ExpiresAt: now.Add(time.Hour),
	}))

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if repo.DeleteRefreshTokenByHash(ctx, "contested") == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store, now := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner@example.com")

	tokens := NewRefreshTokenRepository(store)
	require.NoError(t, tokens.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    owner.ID,
		TokenHash: "old",
		ExpiresAt: now.Add(time.Hour),
	}))

	failure := errors.New("issuing failed")
	err := NewTransactionManager(store).Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.RefreshTokenRepo()
		if err := repo.DeleteRefreshTokenByHash(ctx, "old"); err != nil {
			return err
		}
		if err := repo.CreateRefreshToken(ctx, &entity.RefreshToken{
			UserID:    owner.ID,
			TokenHash: "new",
			ExpiresAt: now.Add(time.Hour),
		}); err != nil {
			return err
		}

		return failure
	})
	require.ErrorIs(t, err, failure)

	_, err = tokens.FindRefreshTokenByHash(ctx, "old")
	assert.NoError(t, err, "deleted token is restored")

	_, err = tokens.FindRefreshTokenByHash(ctx, "new")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound, "created token is discarded")
}

func TestTransactionManager_RollbackKeepsConcurrentDelete(t *testing.T) {
	store, now := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner@example.com")

	tokens := NewRefreshTokenRepository(store)
	require.NoError(t, tokens.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    owner.ID,
		TokenHash: "old",
		ExpiresAt: now.Add(time.Hour),
	}))

	logoutDone := make(chan error, 1)
	failure := errors.New("issuing failed")
	err := NewTransactionManager(store).Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.RefreshTokenRepo().DeleteRefreshTokenByHash(ctx, "old"); err != nil {
			return err
		}

		go func() {
			logoutDone <- tokens.DeleteRefreshTokenByHash(ctx, "old")
		}()

		time.Sleep(20 * time.Millisecond)
		select {
		case err := <-logoutDone:
			t.Errorf("delete outside the transaction finished early: %v", err)
		default:
		}

		return failure
	})
	require.ErrorIs(t, err, failure)

	select {
	case err := <-logoutDone:
		require.NoError(t, err, "delete runs against the restored token")
	case <-time.After(time.Second):
		t.Fatal("delete outside the transaction never ran")
	}

	_, err = tokens.FindRefreshTokenByHash(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner@example.com")

	var taskID uuid.UUID
	err := NewTransactionManager(store).Execute(ctx, func(factory repository.RepositoryFactory) error {
		task := &entity.Task{Title: "Committed", Status: entity.TaskStatusTodo, UserID: owner.ID}
		if err := factory.TaskRepo().CreateTask(ctx, task); err != nil {
			return err
		}
		taskID = task.ID

		return nil
	})
	require.NoError(t, err)

	found, err := NewTaskRepository(store).FindTaskByID(ctx, owner.ID, taskID)
	require.NoError(t, err)
	assert.Equal(t, "Committed", found.Title)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = NewTransactionManager(store).Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.UserRepo().Create(ctx, &entity.User{Email: "ghost@example.com"})
			panic("boom")
		})
	})

	_, err := NewUserRepository(store).FindByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
