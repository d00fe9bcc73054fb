package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "taskflow/internal/delivery/context"
	"taskflow/internal/domain/entity"
	domainerrors "taskflow/internal/domain/errors"
	"taskflow/internal/domain/repository"
	"taskflow/internal/domain/service"
	"taskflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	userRepo  repository.UserRepository
	taskRepo  repository.TaskRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	TaskRepo  repository.TaskRepository
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		userRepo:  params.UserRepo,
		taskRepo:  params.TaskRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddTask creates a TODO task for a user that still exists.
func (srv *taskService) AddTask(ctx context.Context, userID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Task rejected, owner no longer exists", slog.Any("userID", userID))

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "add task")
		}

		return nil, srv.internalError(ctx, "failed to load task owner", err)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.NewValidationError(map[string]string{"title": "Title is required"})
	}

	task := &entity.Task{
		Title:       title,
		Description: input.Description,
		Status:      entity.TaskStatusTodo,
		UserID:      userID,
	}

	if err := srv.taskRepo.CreateTask(ctx, task); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "add task")
		}

		return nil, srv.internalError(ctx, "failed to create task", err)
	}

	srv.log(ctx).Debug("Task created", slog.Any("taskID", task.ID))
	srv.publish(ctx, entity.TaskEventCreated, task)

	return task, nil
}

// ListTasks returns one page of the user's tasks, newest first.
func (srv *taskService) ListTasks(ctx context.Context, userID uuid.UUID, input *usecase.ListTasksInput) (*usecase.ListTasksOutput, error) {
	page, limit := input.Page, input.Limit
	if page < 1 {
		page = usecase.DefaultPage
	}
	if limit < 1 {
		limit = usecase.DefaultLimit
	}
	if limit > usecase.MaxLimit {
		limit = usecase.MaxLimit
	}

	tasks, total, err := srv.taskRepo.FindTasks(ctx, entity.TaskFilter{
		UserID: userID,
		Search: strings.TrimSpace(input.Search),
		Status: input.Status,
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return nil, srv.internalError(ctx, "failed to list tasks", err)
	}

	return &usecase.ListTasksOutput{
		Tasks: tasks,
		Pagination: usecase.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}, nil
}

// GetTaskDetails returns a task the user owns.
func (srv *taskService) GetTaskDetails(ctx context.Context, userID uuid.UUID, taskID string) (*entity.Task, error) {
	id, err := parseTaskID(taskID)
	if err != nil {
		return nil, err
	}

	return srv.findOwnedTask(ctx, userID, id)
}

// UpdateTask changes the supplied non-empty fields. With nothing to change the
// task is returned as stored.
func (srv *taskService) UpdateTask(ctx context.Context, userID uuid.UUID, taskID string, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	id, err := parseTaskID(taskID)
	if err != nil {
		return nil, err
	}

	task, err := srv.findOwnedTask(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if title := strings.TrimSpace(input.Title); title != "" {
		task.Title = title
		changed = true
	}
	if input.Description != "" {
		task.Description = input.Description
		changed = true
	}
	if !changed {
		return task, nil
	}

	if err := srv.saveTask(ctx, task); err != nil {
		return nil, err
	}

	srv.publish(ctx, entity.TaskEventUpdated, task)

	return task, nil
}

// DeleteTask removes a task the user owns.
func (srv *taskService) DeleteTask(ctx context.Context, userID uuid.UUID, taskID string) error {
	id, err := parseTaskID(taskID)
	if err != nil {
		return err
	}

	if err := srv.taskRepo.DeleteTask(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return errors.Wrap(domainerrors.ErrTaskNotFound, "delete task")
		}

		return srv.internalError(ctx, "failed to delete task", err)
	}

	srv.publish(ctx, entity.TaskEventDeleted, &entity.Task{ID: id, UserID: userID})

	return nil
}

// ToggleTaskStatus reopens a completed task and completes any other.
func (srv *taskService) ToggleTaskStatus(ctx context.Context, userID uuid.UUID, taskID string) (*entity.Task, error) {
	id, err := parseTaskID(taskID)
	if err != nil {
		return nil, err
	}

	task, err := srv.findOwnedTask(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	task.Status = task.Status.Toggled()
	if err := srv.saveTask(ctx, task); err != nil {
		return nil, err
	}

	srv.publish(ctx, entity.TaskEventStatusToggled, task)

	return task, nil
}

func (srv *taskService) findOwnedTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindTaskByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "find task")
		}

		return nil, srv.internalError(ctx, "failed to find task", err)
	}

	return task, nil
}

func (srv *taskService) saveTask(ctx context.Context, task *entity.Task) error {
	if err := srv.taskRepo.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return errors.Wrap(domainerrors.ErrTaskNotFound, "update task")
		}

		return srv.internalError(ctx, "failed to update task", err)
	}

	return nil
}

// publish emits a task event. Failures are logged and never reach the caller.
func (srv *taskService) publish(ctx context.Context, eventType entity.TaskEventType, task *entity.Task) {
	if srv.publisher == nil {
		return
	}

	event := &service.TaskEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		TaskID:     task.ID.String(),
		UserID:     task.UserID.String(),
		Status:     task.Status,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishTaskEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish task event",
			slog.String("type", string(eventType)),
			slog.String("taskID", event.TaskID),
			slog.Any("error", err),
		)
	}
}

func (srv *taskService) internalError(ctx context.Context, msg string, err error) error {
	srv.log(ctx).Error(msg, slog.Any("error", err))

	return domainerrors.NewInternalError(errors.Wrap(err, msg))
}

// parseTaskID maps a raw path value to a task ID. A value that cannot be an ID
// cannot name an existing task, so it is reported as not found.
func parseTaskID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, errors.Wrap(domainerrors.ErrTaskIDRequired, "parse task id")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrTaskNotFound, "parse task id")
	}

	return id, nil
}
