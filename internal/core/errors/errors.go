package errors

const (
	HttpInternalError     = "internal_error"
	HttpInvalidQueryError = "invalid_query"
	HttpSessionNotFound   = "session_not_found"
	HttpQueryFailedError  = "query_failed"
	HttpInvalidJsonError  = "invalid_json"
)

// ErrorResponse is the JSON error body of every API endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
