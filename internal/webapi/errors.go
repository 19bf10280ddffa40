// Package webapi holds the JSON error vocabulary for the console's own XHR
// endpoints (grid mutations and dependent dropdown data). Page navigations
// report failures through flash notices instead.
package webapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeUpstream     = "UPSTREAM_ERROR"
)

// APIError is the standardized error body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// RespondWithError sends an error response.
func RespondWithError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, &APIError{Code: code, Message: message})
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, ErrCodeInvalidInput, message)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	RespondWithError(c, http.StatusNotFound, ErrCodeNotFound, message)
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Conflict"
	}
	RespondWithError(c, http.StatusConflict, ErrCodeConflict, message)
}

// UpstreamError sends a 502 response for backend failures surfaced through
// an XHR endpoint. The message carries the server's wording when available.
func UpstreamError(c *gin.Context, message string) {
	if message == "" {
		message = "The server could not complete the request"
	}
	RespondWithError(c, http.StatusBadGateway, ErrCodeUpstream, message)
}
