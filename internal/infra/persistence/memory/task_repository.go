package memory

import (
	"context"
	"sort"
	"strings"

	"taskflow/internal/domain/entity"
	"taskflow/internal/domain/repository"

	"github.com/google/uuid"
)

type taskRepository struct {
	store *Store
	undo  *undoLog
}

func (repo *taskRepository) CreateTask(_ context.Context, task *entity.Task) error {
	s := repo.store

	return s.write(repo.undo, func() (func(), error) {
		if _, ok := s.users[task.UserID]; !ok {
			return nil, repository.ErrUserNotFound
		}

		if task.ID == uuid.Nil {
			task.ID = uuid.New()
		}
		now := s.now()
		task.CreatedAt = now
		task.UpdatedAt = now

		s.tasks[task.ID] = taskRecord{task: *task, seq: s.nextSeq()}

		id := task.ID

		return func() { delete(s.tasks, id) }, nil
	})
}

func (repo *taskRepository) FindTaskByID(_ context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	record, ok := repo.store.tasks[taskID]
	if !ok || record.task.UserID != userID {
		return nil, repository.ErrTaskNotFound
	}

	task := record.task

	return &task, nil
}

func (repo *taskRepository) FindTasks(_ context.Context, filter entity.TaskFilter) ([]*entity.Task, int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	search := strings.ToLower(filter.Search)

	matched := make([]taskRecord, 0)
	for _, record := range repo.store.tasks {
		if record.task.UserID != filter.UserID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(record.task.Title), search) {
			continue
		}
		if filter.Status != nil && record.task.Status != *filter.Status {
			continue
		}
		matched = append(matched, record)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.task.CreatedAt.Equal(b.task.CreatedAt) {
			return a.task.CreatedAt.After(b.task.CreatedAt)
		}

		return a.seq > b.seq
	})

	total := int64(len(matched))

	start := min(max(filter.Offset, 0), len(matched))
	end := len(matched)
	if filter.Limit > 0 {
		end = min(start+filter.Limit, len(matched))
	}

	tasks := make([]*entity.Task, 0, end-start)
	for _, record := range matched[start:end] {
		task := record.task
		tasks = append(tasks, &task)
	}

	return tasks, total, nil
}

func (repo *taskRepository) UpdateTask(_ context.Context, task *entity.Task) error {
	s := repo.store

	return s.write(repo.undo, func() (func(), error) {
		previous, ok := s.tasks[task.ID]
		if !ok || previous.task.UserID != task.UserID {
			return nil, repository.ErrTaskNotFound
		}

		updated := previous
		updated.task.Title = task.Title
		updated.task.Description = task.Description
		updated.task.Status = task.Status
		updated.task.UpdatedAt = s.now()
		s.tasks[task.ID] = updated

		task.CreatedAt = updated.task.CreatedAt
		task.UpdatedAt = updated.task.UpdatedAt

		return func() { s.tasks[previous.task.ID] = previous }, nil
	})
}

func (repo *taskRepository) DeleteTask(_ context.Context, userID, taskID uuid.UUID) error {
	s := repo.store

	return s.write(repo.undo, func() (func(), error) {
		previous, ok := s.tasks[taskID]
		if !ok || previous.task.UserID != userID {
			return nil, repository.ErrTaskNotFound
		}

		delete(s.tasks, taskID)

		return func() { s.tasks[taskID] = previous }, nil
	})
}
