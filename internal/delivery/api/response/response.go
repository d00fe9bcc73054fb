// Package response defines the JSON bodies written by the API handlers.
package response

import (
	"net/http"
	"time"

	"taskflow/internal/domain/entity"
	"taskflow/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Envelope is the part every response body shares.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is written for every failed request.
type ErrorResponse struct {
	Envelope
	Code   string            `json:"code,omitempty"`   // Machine-readable error code, e.g. "TASK_NOT_FOUND"
	Errors map[string]string `json:"errors,omitempty"` // First failing message per request field
}

// UserResponse is the safe projection of a user. The password hash never leaves the service.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      entity.TaskStatus `json:"status"`
	UserID      string            `json:"userId"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// PaginationResponse describes the returned page of a listing.
type PaginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// UserResult carries a user.
type UserResult struct {
	Envelope
	User UserResponse `json:"user"`
}

// LoginResult carries the access token and the logged-in user.
type LoginResult struct {
	Envelope
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// TokenResult carries a fresh access token.
type TokenResult struct {
	Envelope
	AccessToken string `json:"accessToken"`
}

// TaskResult carries a single task.
type TaskResult struct {
	Envelope
	Task TaskResponse `json:"task"`
}

// TaskListResult carries one page of tasks.
type TaskListResult struct {
	Envelope
	Tasks      []TaskResponse     `json:"tasks"`
	Pagination PaginationResponse `json:"pagination"`
}

// OK builds a successful envelope.
func OK(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// JSON writes a response body with the given status.
func JSON(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Message writes a successful body without payload.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, OK(message))
}

// Error writes an error body. Field messages are dropped for 5xx and auth errors.
func Error(c echo.Context, statusCode int, errorCode, message string, fields map[string]string) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		fields = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Envelope: Envelope{Success: false, Message: message},
		Code:     errorCode,
		Errors:   fields,
	})
}

// NewUserResponse maps a user to its safe projection.
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewTaskResponse maps a task to its wire form.
func NewTaskResponse(task *entity.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		UserID:      task.UserID.String(),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// NewTaskListResult maps a listing page.
func NewTaskListResult(message string, output *usecase.ListTasksOutput) TaskListResult {
	tasks := make([]TaskResponse, 0, len(output.Tasks))
	for _, task := range output.Tasks {
		tasks = append(tasks, NewTaskResponse(task))
	}

	return TaskListResult{
		Envelope: OK(message),
		Tasks:    tasks,
		Pagination: PaginationResponse{
			Total:      output.Pagination.Total,
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			TotalPages: output.Pagination.TotalPages,
		},
	}
}
