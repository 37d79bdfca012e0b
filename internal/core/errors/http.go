package errors

import (
	"bytes"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/crystal-vistas/vistas-ops/internal/core/jobid"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// APIError carries the structured HTTP error shape from a helper back to the
// handler. Helpers return it instead of writing to gin.Context directly.
type APIError struct {
	StatusCode int
	ErrorType  string
	Message    string
	Details    interface{}
	Retryable  bool
}

func (e *APIError) Error() string {
	return e.Message
}

// Invalid is a 400 for a request that failed validation.
func Invalid(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		ErrorType:  HttpInvalidRequestError,
		Message:    message,
	}
}

// InvalidJSON is a 400 for a body that could not be decoded.
func InvalidJSON() *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		ErrorType:  HttpInvalidJsonError,
		Message:    "Invalid JSON body",
	}
}

// FromStore maps a storage or allocation failure to its HTTP shape.
// what names the resource in messages and logs, e.g. "job".
func FromStore(err error, what string) *APIError {
	switch {
	case stderrors.Is(err, storage.ErrNotFound):
		return &APIError{
			StatusCode: http.StatusNotFound,
			ErrorType:  HttpNotFoundError,
			Message:    what + " not found",
		}
	case stderrors.Is(err, jobid.ErrIdentifierSpaceExhausted):
		slog.Error("[API] Job identifier space exhausted", "error", err)
		return &APIError{
			StatusCode: http.StatusConflict,
			ErrorType:  HttpIdentifierSpaceError,
			Message:    "No work order identifiers are left to allocate",
		}
	case stderrors.Is(err, storage.ErrDuplicate):
		return &APIError{
			StatusCode: http.StatusConflict,
			ErrorType:  HttpConflictError,
			Message:    what + " conflicts with an existing record",
			Retryable:  true,
		}
	case stderrors.Is(err, storage.ErrUnavailable):
		slog.Error("[API] Store unavailable", "resource", what, "error", err)
		return &APIError{
			StatusCode: http.StatusServiceUnavailable,
			ErrorType:  HttpStoreUnavailableError,
			Message:    "Storage is temporarily unavailable",
			Retryable:  true,
		}
	default:
		slog.Error("[API] Unexpected store error", "resource", what, "error", err)
		return &APIError{
			StatusCode: http.StatusInternalServerError,
			ErrorType:  HttpInternalError,
			Message:    "Failed to process " + what,
		}
	}
}

// BindJSON reads at most maxBytes of the request body and decodes it into dst.
// Oversized bodies get a 413 and undecodable ones a 400.
func BindJSON(c *gin.Context, maxBytes int64, dst interface{}) *APIError {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1))
	if err != nil {
		slog.Error("[API] Failed to read request body", "error", err)
		return &APIError{
			StatusCode: http.StatusInternalServerError,
			ErrorType:  HttpInternalError,
			Message:    "Failed to read request body",
		}
	}
	if int64(len(body)) > maxBytes {
		slog.Warn("[API] Request body exceeds maximum size", "size", len(body), "max", maxBytes)
		return &APIError{
			StatusCode: http.StatusRequestEntityTooLarge,
			ErrorType:  HttpRequestTooLargeError,
			Message:    "Request body exceeds maximum allowed size",
			Details:    map[string]interface{}{"max_size_mb": maxBytes / (1024 * 1024)},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if err := c.ShouldBindJSON(dst); err != nil {
		slog.Warn("[API] Invalid JSON body received", "error", err, "payload_size", len(body))
		return InvalidJSON()
	}
	return nil
}

// Write serializes an APIError as the JSON HTTP response.
func Write(c *gin.Context, err *APIError) {
	c.JSON(err.StatusCode, ErrorResponse{
		ErrorType: err.ErrorType,
		Message:   err.Message,
		Details:   err.Details,
		Retryable: err.Retryable,
	})
}

// Abort writes err and stops the middleware chain.
func Abort(c *gin.Context, err *APIError) {
	Write(c, err)
	c.Abort()
}
