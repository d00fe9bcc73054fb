package service

import (
	"context"
	"time"

	"taskflow/internal/domain/entity"
)

// TaskEvent describes a change to a task for downstream consumers.
type TaskEvent struct {
	RequestID  string               `json:"request_id,omitempty"` // For distributed tracing
	Type       entity.TaskEventType `json:"type"`
	TaskID     string               `json:"task_id"`
	UserID     string               `json:"user_id"`
	Status     entity.TaskStatus    `json:"status,omitempty"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTaskEvent publishes a task lifecycle event
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
