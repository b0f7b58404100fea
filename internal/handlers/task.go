package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ozgurgul/taskdemo/internal/apierr"
	"github.com/ozgurgul/taskdemo/internal/dto"
	"github.com/ozgurgul/taskdemo/internal/store"
)

type TaskHandler struct {
	store *store.Store
}

func NewTaskHandler(s *store.Store) *TaskHandler {
	return &TaskHandler{store: s}
}

// CreateTask creates a new task. A supplied user_id must resolve to an
// existing user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.store.CreateTask(req.Title, req.Description, req.UserID)
	if err != nil {
		apierr.InvalidReference(c, "User not found")
		return
	}
	c.JSON(http.StatusCreated, task)
}

// ListTasks returns tasks, optionally filtered by completion state
// and/or owning user via query parameters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var filter store.TaskFilter

	if v := c.Query("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			apierr.BadRequest(c, "Invalid completed filter")
			return
		}
		filter.Completed = &completed
	}
	if v := c.Query("user_id"); v != "" {
		filter.UserID = &v
	}

	c.JSON(http.StatusOK, h.store.ListTasks(filter))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.store.GetTask(c.Param("id"))
	if err != nil {
		apierr.NotFound(c, "Task not found")
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask fully replaces an existing task, re-validating the user
// reference.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.store.UpdateTask(c.Param("id"), req.Title, req.Description, req.Completed, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			apierr.InvalidReference(c, "User not found")
			return
		}
		apierr.NotFound(c, "Task not found")
		return
	}
	c.JSON(http.StatusOK, task)
}

// CompleteTask marks a task as completed. Idempotent.
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	task, err := h.store.CompleteTask(c.Param("id"))
	if err != nil {
		apierr.NotFound(c, "Task not found")
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.store.DeleteTask(c.Param("id")); err != nil {
		apierr.NotFound(c, "Task not found")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task deleted successfully"})
}
