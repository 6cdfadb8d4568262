package jobo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Common errors returned by the Jobo client. Use errors.Is to classify:
//
//	if errors.Is(err, jobo.ErrRateLimit) {
//	    // back off and retry
//	}
var (
	// ErrAuthentication indicates a missing or invalid API key (401/403).
	ErrAuthentication = errors.New("jobo: authentication failed")

	// ErrValidation indicates a malformed request or an unparseable/invalid
	// response payload (4xx or local decode failure).
	ErrValidation = errors.New("jobo: validation failed")

	// ErrRateLimit indicates the request was throttled (429).
	ErrRateLimit = errors.New("jobo: rate limit exceeded")

	// ErrServer indicates a 5xx response. Possibly transient; the client
	// never retries on its own.
	ErrServer = errors.New("jobo: server error")

	// ErrConnection indicates a network-level failure (DNS, TLS, timeout,
	// reset) before any HTTP status was received.
	ErrConnection = errors.New("jobo: connection failed")
)

// ErrorKind classifies an APIError into the closed error taxonomy.
type ErrorKind int

const (
	KindConnection ErrorKind = iota
	KindAuthentication
	KindValidation
	KindRateLimit
	KindServer
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// APIError is the structured error returned for every failed API call.
type APIError struct {
	Kind       ErrorKind
	StatusCode int           // 0 for connection and local validation errors
	Detail     string        // human-readable detail from the response body
	RetryAfter time.Duration // only set for rate-limit errors
	Body       []byte        // raw response body, if any

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("jobo: %s error", e.Kind)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// Is reports whether the error matches one of the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAuthentication:
		return e.Kind == KindAuthentication
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrRateLimit:
		return e.Kind == KindRateLimit
	case ErrServer:
		return e.Kind == KindServer
	case ErrConnection:
		return e.Kind == KindConnection
	}
	return false
}

// IsAuthentication reports whether the error is an authentication failure.
func (e *APIError) IsAuthentication() bool { return e.Kind == KindAuthentication }

// IsValidation reports whether the error is a validation failure.
func (e *APIError) IsValidation() bool { return e.Kind == KindValidation }

// IsRateLimit reports whether the request was throttled.
func (e *APIError) IsRateLimit() bool { return e.Kind == KindRateLimit }

// IsServer reports whether the remote service failed with a 5xx status.
func (e *APIError) IsServer() bool { return e.Kind == KindServer }

// IsConnection reports whether the failure happened below the HTTP layer.
func (e *APIError) IsConnection() bool { return e.Kind == KindConnection }

// errorBody is the error envelope the API returns on failed requests.
type errorBody struct {
	Detail string `json:"detail"`
}

// classifyStatus maps a non-2xx response to a typed error.
func classifyStatus(statusCode int, body []byte, header http.Header) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Detail = envelope.Detail
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		apiErr.Kind = KindAuthentication
	case statusCode == http.StatusTooManyRequests:
		apiErr.Kind = KindRateLimit
		apiErr.RetryAfter = parseRetryAfter(header.Get("Retry-After"))
	case statusCode >= 500:
		apiErr.Kind = KindServer
	default:
		apiErr.Kind = KindValidation
	}

	return apiErr
}

// parseRetryAfter parses the integer-seconds form of the Retry-After header.
// The HTTP-date form is not used by the API and yields zero.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// newConnectionError wraps a network-level failure.
func newConnectionError(err error) *APIError {
	return &APIError{
		Kind:  KindConnection,
		cause: err,
	}
}

// newValidationError builds a local (non-HTTP) validation error.
func newValidationError(detail string, cause error) *APIError {
	return &APIError{
		Kind:   KindValidation,
		Detail: detail,
		cause:  cause,
	}
}
