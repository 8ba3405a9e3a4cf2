// Package httpserver exposes the tracker services as a JSON REST API.
package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurkanbulca/tasktracker/internal/middleware"
	"github.com/gurkanbulca/tasktracker/internal/service"
	"github.com/gurkanbulca/tasktracker/pkg/auth"
)

// Server is the REST gateway
type Server struct {
	auth         *service.AuthService
	tasks        *service.TaskService
	categories   *service.CategoryService
	admin        *service.AdminService
	tokenManager *auth.TokenManager
	limits       *middleware.ValidationConfig
	router       *gin.Engine
}

// NewServer creates the gateway and registers its routes. Request bodies are
// held to the same limits as the gRPC API; nil limits select the defaults.
func NewServer(
	authService *service.AuthService,
	taskService *service.TaskService,
	categoryService *service.CategoryService,
	adminService *service.AdminService,
	tokenManager *auth.TokenManager,
	limits *middleware.ValidationConfig,
) *Server {
	if limits == nil {
		limits = middleware.DefaultValidationConfig()
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		auth:         authService,
		tasks:        taskService,
		categories:   categoryService,
		admin:        adminService,
		tokenManager: tokenManager,
		limits:       limits,
		router:       router,
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		authRoutes.POST("/register", s.handleRegister)
		authRoutes.POST("/login", s.handleLogin)

		tasks := api.Group("/tasks", s.authenticate)
		tasks.POST("", s.handleCreateTask)
		tasks.GET("", s.handleListTasks)
		tasks.GET("/:id", s.handleGetTask)
		tasks.PUT("/:id", s.handleUpdateTask)
		tasks.DELETE("/:id", s.handleDeleteTask)

		categories := api.Group("/categories", s.authenticate)
		categories.GET("", s.handleListCategories)
		categories.POST("", requireAdmin, s.handleCreateCategory)
		categories.PUT("/:id", requireAdmin, s.handleUpdateCategory)
		categories.DELETE("/:id", requireAdmin, s.handleDeleteCategory)

		admin := api.Group("/admin", s.authenticate, requireAdmin)
		admin.GET("/tasks", s.handleAdminTasks)
		admin.GET("/users", s.handleAdminUsers)
		admin.GET("/stats", s.handleAdminStats)
	}

	return s
}

// Handler returns the HTTP handler serving the gateway
func (s *Server) Handler() http.Handler {
	return s.router
}
