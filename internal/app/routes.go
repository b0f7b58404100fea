package app

import (
	"github.com/gin-gonic/gin"
	"github.com/ozgurgul/taskdemo/internal/config"
	"github.com/ozgurgul/taskdemo/internal/handlers"
	"github.com/ozgurgul/taskdemo/internal/store"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, s *store.Store) {
	r.GET("/", rootHandler())
	r.GET("/health", healthHandler(cfg))

	userHandler := handlers.NewUserHandler(s)
	registerUserRoutes(r, userHandler)

	taskHandler := handlers.NewTaskHandler(s)
	registerTaskRoutes(r, taskHandler)

	adminHandler := handlers.NewAdminHandler(s)
	registerAdminRoutes(r, adminHandler)
}

func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to Demo API"})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "version": cfg.App.Version})
	}
}

func registerUserRoutes(r *gin.Engine, h *handlers.UserHandler) {
	r.POST("/users", h.CreateUser)
	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)
}

func registerTaskRoutes(r *gin.Engine, h *handlers.TaskHandler) {
	r.POST("/tasks", h.CreateTask)
	r.GET("/tasks", h.ListTasks)
	r.GET("/tasks/:id", h.GetTask)
	r.PUT("/tasks/:id", h.UpdateTask)
	r.PATCH("/tasks/:id/complete", h.CompleteTask)
	r.DELETE("/tasks/:id", h.DeleteTask)
}

func registerAdminRoutes(r *gin.Engine, h *handlers.AdminHandler) {
	r.POST("/admin/reset", h.Reset)
	r.GET("/admin/stats", h.Stats)
}
