package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an APIError.
type Kind string

// Error kinds
const (
	KindRequest  Kind = "request"
	KindResponse Kind = "response"
	KindDecode   Kind = "decode"
)

// APIError is the error type returned by the lichess client and its mock.
type APIError struct {
	Kind    Kind   // Failure class
	Message string // Human-readable error message
	Status  int    // HTTP status code, 0 when no response was involved
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewResponseError creates an error for a response the API (or mock) rejected.
func NewResponseError(message string) *APIError {
	return &APIError{
		Kind:    KindResponse,
		Message: message,
	}
}

// NewStatusError creates a response error carrying the HTTP status.
func NewStatusError(status int, message string) *APIError {
	return &APIError{
		Kind:    KindResponse,
		Message: message,
		Status:  status,
	}
}

// NewRequestError creates an error for a request that could not be built or sent.
func NewRequestError(err error) *APIError {
	return &APIError{
		Kind:    KindRequest,
		Message: "request failed",
		Err:     err,
	}
}

// NewDecodeError creates an error for a payload that could not be parsed.
func NewDecodeError(what string, err error) *APIError {
	return &APIError{
		Kind:    KindDecode,
		Message: fmt.Sprintf("failed to decode %s", what),
		Err:     err,
	}
}

// As extracts an APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err's chain holds an APIError of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == kind
}
