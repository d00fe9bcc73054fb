package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// Toggled returns the status a toggle moves to: completed tasks reopen,
// everything else completes.
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskStatusCompleted {
		return TaskStatusTodo
	}

	return TaskStatusCompleted
}

// Task is a unit of work owned by exactly one user.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	UserID      uuid.UUID // Owner. Only the owner can see or change the task.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskFilter narrows a task listing for one owner.
type TaskFilter struct {
	UserID uuid.UUID
	Search string      // Case-insensitive substring match on title. Empty means no filter.
	Status *TaskStatus // Exact match. Nil means any status.
	Offset int
	Limit  int
}

// TaskEventType names a task lifecycle event.
type TaskEventType string

const (
	TaskEventCreated       TaskEventType = "task.created"
	TaskEventUpdated       TaskEventType = "task.updated"
	TaskEventDeleted       TaskEventType = "task.deleted"
	TaskEventStatusToggled TaskEventType = "task.status_toggled"
)
