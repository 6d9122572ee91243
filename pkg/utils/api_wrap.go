package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternalError   = "INTERNAL_ERROR"
)

type APIResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Data:    data,
		TraceID: traceID(c),
	})
}

func RespondError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIResponse{
		Error:   &APIError{Code: code, Message: message},
		TraceID: traceID(c),
	})
}

// HandleServiceError maps sentinel service errors onto the fixed
// status/code table. Anything unrecognized is an opaque 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, CodeUnauthenticated, "Invalid email or password")
	case errors.Is(err, ErrSelfVerification):
		RespondError(c, http.StatusForbidden, CodeForbidden, "You cannot verify your own report")
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrVariantNotFound),
		errors.Is(err, ErrMarketNotFound),
		errors.Is(err, ErrReportNotFound),
		errors.Is(err, ErrNotificationNotFound):
		RespondError(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, ErrReportAlreadyResolved):
		RespondError(c, http.StatusConflict, CodeConflict, "Report has already been resolved")
	case errors.Is(err, ErrDuplicateReport):
		RespondError(c, http.StatusConflict, CodeConflict, "You already reported this item at this market in the past hour")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, CodeConflict, "Email is already registered")
	case errors.Is(err, ErrInvalidPage), errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err.Error())
	default:
		log.Printf("Unexpected error: %v", err)
		sentry.CaptureException(err)
		RespondError(c, http.StatusInternalServerError, CodeInternalError, "Internal server error")
	}
}
