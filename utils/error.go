package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes for the failure taxonomy. Conflict maps to 400 like the other
// validation-class failures; only unexpected persistence errors map to 500.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodeForbidden       = "FORBIDDEN"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL"
)

// AppError is the error type every service returns; handlers translate it
// into the response envelope without inspecting anything else.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidArgument(message string) *AppError {
	return &AppError{Code: CodeInvalidArgument, Message: message, HTTPStatus: http.StatusBadRequest}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found", HTTPStatus: http.StatusNotFound}
}

func Forbidden(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message, HTTPStatus: http.StatusForbidden}
}

func Conflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message, HTTPStatus: http.StatusBadRequest}
}

// Internal wraps an unexpected persistence failure; the underlying message is
// surfaced to the client verbatim, matching the original behavior.
func Internal(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: err.Error(), HTTPStatus: http.StatusInternalServerError, Err: err}
}

// AsAppError extracts an AppError from an error chain, defaulting unknown
// failures to Internal.
func AsAppError(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

// ErrorHandler is a middleware that catches panics and returns the envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", rec))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}
