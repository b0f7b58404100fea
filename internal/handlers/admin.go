package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozgurgul/taskdemo/internal/dto"
	"github.com/ozgurgul/taskdemo/internal/store"
)

// AdminHandler exposes the reset and statistics operations used by
// tests and administrative tooling.
type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(s *store.Store) *AdminHandler {
	return &AdminHandler{store: s}
}

// Reset atomically empties both collections
func (h *AdminHandler) Reset(c *gin.Context) {
	h.store.Reset()
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Database reset successfully"})
}

// Stats returns current collection counts
func (h *AdminHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}
