package errors

const (
	HttpInternalError          = "internal_error"
	HttpInvalidJsonError       = "invalid_json"
	HttpInvalidRequestError    = "invalid_request"
	HttpNotFoundError          = "not_found"
	HttpConflictError          = "conflict"
	HttpStoreUnavailableError  = "store_unavailable"
	HttpIdentifierSpaceError   = "identifier_space_exhausted"
	HttpUnknownChartError      = "unknown_chart"
	HttpUnauthorizedError      = "unauthorized"
	HttpForbiddenError         = "forbidden"
	HttpPendingApprovalError   = "pending_approval"
	HttpRequestTooLargeError   = "request_too_large"
	HttpSelfDisableForbidError = "cannot_disable_self"
)

// ErrorResponse is the error response body for every API error.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Retryable bool        `json:"retryable,omitempty"`
}
