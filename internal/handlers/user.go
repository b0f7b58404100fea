package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozgurgul/taskdemo/internal/apierr"
	"github.com/ozgurgul/taskdemo/internal/dto"
	"github.com/ozgurgul/taskdemo/internal/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// CreateUser creates a new user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.BadRequest(c, "Invalid request body")
		return
	}

	user := h.store.CreateUser(req.Name, req.Email, req.Age)
	c.JSON(http.StatusCreated, user)
}

// ListUsers returns all users
func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListUsers())
}

// GetUser returns a specific user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.store.GetUser(c.Param("id"))
	if err != nil {
		apierr.NotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser fully replaces an existing user
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.store.UpdateUser(c.Param("id"), req.Name, req.Email, req.Age)
	if err != nil {
		apierr.NotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser deletes a user and all tasks referencing it
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.store.DeleteUser(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrConsistency) {
			apierr.InternalError(c, err.Error())
			return
		}
		apierr.NotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
