package handler

import (
	"log/slog"
	"net/http"

	"taskflow/internal/delivery/api/middleware"
	"taskflow/internal/delivery/api/response"
	"taskflow/internal/domain/entity"
	domainerrors "taskflow/internal/domain/errors"
	"taskflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler holds dependencies for task handlers. Every route sits behind
// AuthMiddleware.Authenticate.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler.
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// CreateTaskRequest represents the request body for adding a task.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateTaskRequest represents the request body for changing a task. Empty
// fields are left as they are.
type UpdateTaskRequest struct {
	Title       string `json:"title" validate:"max=150"`
	Description string `json:"description" validate:"max=1000"`
}

// ListTasksRequest represents the query of a task listing.
type ListTasksRequest struct {
	Page   int    `query:"page" validate:"min=1"`
	Limit  int    `query:"limit" validate:"min=1,max=100"`
	Search string `query:"search" validate:"max=150"`
	Status string `query:"status" validate:"omitempty,oneof=TODO IN_PROGRESS COMPLETED"`
}

// CreateTask handles adding a task for the caller.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskUC.AddTask(c.Request().Context(), userID, &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, response.TaskResult{
		Envelope: response.OK("Task added successfully."),
		Task:     response.NewTaskResponse(task),
	})
}

// ListTasks handles retrieving one page of the caller's tasks.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	req := ListTasksRequest{Page: usecase.DefaultPage, Limit: usecase.DefaultLimit}
	if err := echo.QueryParamsBinder(c).
		Int("page", &req.Page).
		Int("limit", &req.Limit).
		String("search", &req.Search).
		String("status", &req.Status).
		BindError(); err != nil {
		return bindingError(err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.ListTasksInput{
		Page:   req.Page,
		Limit:  req.Limit,
		Search: req.Search,
	}
	if req.Status != "" {
		status := entity.TaskStatus(req.Status)
		input.Status = &status
	}

	output, err := h.taskUC.ListTasks(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewTaskListResult("Tasks retrieved successfully.", output))
}

// GetTask handles retrieving one of the caller's tasks.
func (h *TaskHandler) GetTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	task, err := h.taskUC.GetTaskDetails(c.Request().Context(), userID, c.Param("taskId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.TaskResult{
		Envelope: response.OK("Task retrieved successfully."),
		Task:     response.NewTaskResponse(task),
	})
}

// UpdateTask handles a partial update of one of the caller's tasks.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskUC.UpdateTask(c.Request().Context(), userID, c.Param("taskId"), &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.TaskResult{
		Envelope: response.OK("Task updated successfully."),
		Task:     response.NewTaskResponse(task),
	})
}

// DeleteTask handles removing one of the caller's tasks.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.taskUC.DeleteTask(c.Request().Context(), userID, c.Param("taskId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Task deleted successfully.")
}

// ToggleTaskStatus handles completing or reopening one of the caller's tasks.
func (h *TaskHandler) ToggleTaskStatus(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	task, err := h.taskUC.ToggleTaskStatus(c.Request().Context(), userID, c.Param("taskId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.TaskResult{
		Envelope: response.OK("Task status updated successfully."),
		Task:     response.NewTaskResponse(task),
	})
}

func currentUserID(c echo.Context) (uuid.UUID, error) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return identity.UserID, nil
}
