// Package apierr defines the standardized API error body and gin
// helpers for writing it.
package apierr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeInternalError    = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// New creates a new APIError.
func New(code, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	c.JSON(http.StatusNotFound, New(CodeNotFound, message))
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	c.JSON(http.StatusBadRequest, New(CodeInvalidInput, message))
}

// InvalidReference sends a 400 response for an unresolvable user_id.
// Distinct code so clients can tell "entity missing" from "bad link".
func InvalidReference(c *gin.Context, message string) {
	if message == "" {
		message = "Referenced user does not exist"
	}
	c.JSON(http.StatusBadRequest, New(CodeInvalidReference, message))
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	c.JSON(http.StatusInternalServerError, New(CodeInternalError, message))
}
