package openalex

import (
	"errors"
	"fmt"
)

// DocumentationURL is included in serialized errors so scripted callers can
// point users at the upstream API docs.
const DocumentationURL = "https://docs.openalex.org/"

// Sentinel errors for classifying API failures with errors.Is.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrBadRequest indicates the API rejected the query parameters.
	ErrBadRequest = errors.New("bad request")

	// ErrRateLimited indicates the rate limit was exceeded and retries were exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrConnection indicates a transport-level failure after retries were exhausted.
	ErrConnection = errors.New("connection error")
)

// APIError is a classified failure from the OpenAlex API. Every terminal
// error path in the client produces one of these.
type APIError struct {
	Message    string
	StatusCode int    // 0 when no HTTP status applies (e.g. transport faults)
	Suggestion string // optional remediation hint
	RetryAfter int    // seconds, from the Retry-After header when known
	kind       error  // sentinel for errors.Is classification
	cause      error  // wrapped transport fault, if any
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// Is reports whether the error matches one of the sentinel classifications.
func (e *APIError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

// Unwrap returns the underlying transport fault, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// ErrorDict converts an error to a map for JSON output. The shape is stable:
// {"error": ..., "status_code": ..., "suggestion": ..., "documentation": ...}
// with the optional keys omitted when absent.
func ErrorDict(err error) map[string]any {
	result := map[string]any{}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		result["error"] = apiErr.Message
		if apiErr.StatusCode > 0 {
			result["status_code"] = apiErr.StatusCode
		}
		if apiErr.Suggestion != "" {
			result["suggestion"] = apiErr.Suggestion
		}
	} else {
		result["error"] = err.Error()
	}

	result["documentation"] = DocumentationURL
	return result
}

// Suggestion returns the remediation hint attached to the error, if any.
func Suggestion(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Suggestion
	}
	return ""
}

func notFoundError() *APIError {
	return &APIError{
		Message:    "Entity not found",
		StatusCode: 404,
		Suggestion: "Check the ID format. OpenAlex IDs start with W (works), A (authors), I (institutions), S (sources), etc.",
		kind:       ErrNotFound,
	}
}

func badRequestError(message string) *APIError {
	if message == "" {
		message = "Bad request"
	}
	return &APIError{
		Message:    message,
		StatusCode: 400,
		Suggestion: "Check the query parameters and filter syntax",
		kind:       ErrBadRequest,
	}
}

func rateLimitError(retryAfter int) *APIError {
	return &APIError{
		Message:    "Rate limit exceeded",
		StatusCode: 429,
		Suggestion: "Wait a moment or add your email via --email or OPENALEX_EMAIL env var for higher limits",
		RetryAfter: retryAfter,
		kind:       ErrRateLimited,
	}
}

func connectionError(cause error) *APIError {
	return &APIError{
		Message:    fmt.Sprintf("Connection error: %v", cause),
		Suggestion: "Check your network connection",
		kind:       ErrConnection,
		cause:      cause,
	}
}

func statusError(statusCode int) *APIError {
	return &APIError{
		Message:    fmt.Sprintf("API request failed: %d", statusCode),
		StatusCode: statusCode,
	}
}
