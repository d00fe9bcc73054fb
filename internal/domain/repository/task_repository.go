package repository

import (
	"context"

	"taskflow/internal/domain/entity"
	"taskflow/internal/errors"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist or is owned by someone else.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines ownership-scoped task persistence.
// Every lookup and mutation takes the owner's ID; a task owned by another user
// is indistinguishable from a missing one.
type TaskRepository interface {
	// CreateTask persists a new task.
	CreateTask(ctx context.Context, task *entity.Task) error

	// FindTaskByID retrieves a task by ID if it belongs to userID.
	FindTaskByID(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error)

	// FindTasks returns one page of the owner's tasks, newest first, and the total
	// number of tasks matching the filter.
	FindTasks(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, int64, error)

	// UpdateTask saves title, description and status of an owned task.
	UpdateTask(ctx context.Context, task *entity.Task) error

	// DeleteTask removes an owned task.
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}
