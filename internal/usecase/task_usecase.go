package usecase

import (
	"context"

	"taskflow/internal/domain/entity"

	"github.com/google/uuid"
)

// Listing defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// CreateTaskInput defines the data required to add a task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// ListTasksInput defines paging and filtering of a task listing.
type ListTasksInput struct {
	Page   int
	Limit  int
	Search string
	Status *entity.TaskStatus
}

// UpdateTaskInput holds the fields to change. Empty strings leave the field as is.
type UpdateTaskInput struct {
	Title       string
	Description string
}

// Pagination describes the page returned by a listing.
type Pagination struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListTasksOutput is one page of tasks plus its pagination block.
type ListTasksOutput struct {
	Tasks      []*entity.Task
	Pagination Pagination
}

// TaskUsecase defines ownership-scoped task operations. Task IDs arrive as raw
// path values; an ID that does not name one of the caller's tasks is not found.
type TaskUsecase interface {
	AddTask(ctx context.Context, userID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID, input *ListTasksInput) (*ListTasksOutput, error)
	GetTaskDetails(ctx context.Context, userID uuid.UUID, taskID string) (*entity.Task, error)
	UpdateTask(ctx context.Context, userID uuid.UUID, taskID string, input *UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, userID uuid.UUID, taskID string) error
	ToggleTaskStatus(ctx context.Context, userID uuid.UUID, taskID string) (*entity.Task, error)
}
