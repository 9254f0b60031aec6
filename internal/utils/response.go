// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform envelope for every endpoint. Total carries the
// result count on list responses and Query echoes the search term on search
// responses; both are omitted elsewhere.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Total   *int        `json:"total,omitempty"`
	Query   string      `json:"query,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func SuccessResponseWithMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func ListResponse(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Total:   &total,
	})
}

func SearchResponse(c *gin.Context, data interface{}, total int, query string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Total:   &total,
		Query:   query,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	if message == "" {
		message = "Invalid request"
	}
	ErrorResponse(c, http.StatusBadRequest, message, details)
}

func NotFoundResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	ErrorResponse(c, http.StatusNotFound, message, nil)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, message, nil)
}

func ValidationErrorResponse(c *gin.Context, message string, errors []ValidationError) {
	if message == "" {
		message = "Invalid input"
	}
	ErrorResponse(c, http.StatusBadRequest, message, errors)
}

func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	if sessionID, exists := c.Get("session_id"); exists {
		if sessionIDStr, ok := sessionID.(string); ok {
			return sessionIDStr, true
		}
	}
	return "", false
}
