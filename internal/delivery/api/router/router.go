// Package router contains routing for the API delivery.
package router

import (
	"taskflow/config"
	"taskflow/internal/delivery/api/middleware"
	"taskflow/internal/delivery/api/router/handler"
	deliverymiddleware "taskflow/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	TaskHandler         *handler.TaskHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	MetricsMiddleware   *deliverymiddleware.MetricsMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	taskHandler         *handler.TaskHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	metricsMiddleware   *deliverymiddleware.MetricsMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		taskHandler:         params.TaskHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		metricsMiddleware:   params.MetricsMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled && r.metricsMiddleware != nil {
		e.GET(r.config.Metrics.Path, r.metricsMiddleware.Handler())
	}

	api := e.Group("/api")

	// Credential-accepting routes are rate limited per client IP
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimitMiddleware.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimitMiddleware.Limit)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	tasksGroup := api.Group("/tasks")
	tasksGroup.Use(r.authMiddleware.Authenticate)
	{
		tasksGroup.POST("", r.taskHandler.CreateTask)
		tasksGroup.GET("", r.taskHandler.ListTasks)
		tasksGroup.GET("/:taskId", r.taskHandler.GetTask)
		tasksGroup.PATCH("/:taskId", r.taskHandler.UpdateTask)
		tasksGroup.DELETE("/:taskId", r.taskHandler.DeleteTask)
		tasksGroup.PATCH("/:taskId/toggle", r.taskHandler.ToggleTaskStatus)
	}
}
