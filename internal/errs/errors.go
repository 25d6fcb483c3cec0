package errs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrNotFound is returned by repositories when no document matches a lookup.
var ErrNotFound = errors.New("not found")

// ApiError is an error carrying the HTTP status it should be reported with.
type ApiError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e ApiError) Error() string {
	return e.Message
}

func NewValidation(message string) ApiError {
	return ApiError{Status: http.StatusBadRequest, Message: message}
}

func NewConflict(message string) ApiError {
	return ApiError{Status: http.StatusConflict, Message: message}
}

func NewNotFound(message string) ApiError {
	return ApiError{Status: http.StatusNotFound, Message: message}
}

func NewInternal(message string) ApiError {
	return ApiError{Status: http.StatusInternalServerError, Message: message}
}

// SendError writes err as a JSON response. ApiError values keep their status
// and message; anything else becomes a generic 500 so internal details never
// reach the caller.
func SendError(c *gin.Context, err error) {
	var apiErr ApiError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"message": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "an unexpected error occurred"})
}
