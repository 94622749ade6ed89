package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dataquality/internal/domain"
)

// APIResponse is the standard envelope for the data and administration endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ValidationErrorBody is the error body of the validation and rule endpoints, whose
// consumers read the message from a top-level "error" string.
type ValidationErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrMissingRecord):
		return http.StatusBadRequest, "MISSING_RECORD", "record is required"
	case errors.Is(err, domain.ErrMissingIdentity):
		return http.StatusBadRequest, "INVALID_RECORD", "invalid record: fields cli and tcli are required"
	case errors.Is(err, domain.ErrEmptyBatch):
		return http.StatusBadRequest, "INVALID_BATCH", "records must be a non-empty array"
	case errors.Is(err, domain.ErrUnsupportedValue):
		return http.StatusBadRequest, "UNSUPPORTED_VALUE", err.Error()
	case errors.Is(err, domain.ErrInvalidClientType):
		return http.StatusBadRequest, "INVALID_CLIENT_TYPE", "client type must be 1, 2 or 3"
	case errors.Is(err, domain.ErrInvalidRule):
		return http.StatusBadRequest, "INVALID_RULE", err.Error()
	case errors.Is(err, domain.ErrInvalidRuleUpdate):
		return http.StatusBadRequest, "INVALID_RULE_UPDATE", err.Error()
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "report format must be csv or xlsx"
	case errors.Is(err, domain.ErrValidationRuleNotFound):
		return http.StatusNotFound, "RULE_NOT_FOUND", "validation rule not found"
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, "CLIENT_NOT_FOUND", "client not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrDuplicateRule):
		return http.StatusConflict, "DUPLICATE_RULE", "validation rule id already exists"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrStorageNotConfigured):
		return http.StatusServiceUnavailable, "STORAGE_NOT_CONFIGURED", "report storage is not configured"
	case errors.Is(err, domain.ErrCacheUnavailable):
		return http.StatusServiceUnavailable, "CACHE_UNAVAILABLE", "cache backend unavailable"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "report upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

// HandleValidationError is HandleError for the validation and rule endpoints. Internal
// errors carry the underlying message unless exposeDetail is false.
func HandleValidationError(c *gin.Context, err error, exposeDetail bool) {
	status, code, msg := MapDomainError(err)
	body := ValidationErrorBody{Success: false, Error: msg, Code: code}
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
		if exposeDetail {
			body.Message = err.Error()
		}
	}
	c.JSON(status, body)
}

// Timestamp formats t the way the validation endpoints report evaluation time.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
