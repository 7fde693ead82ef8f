package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned to callers in the "error" field of JSON responses.
const (
	CodeMissingInput      = "missing_input"
	CodeUpstreamRejected  = "upstream_rejected"
	CodeNoCredential      = "no_auth"
	CodeInvalidCredential = "invalid_token"
	CodeStoreError        = "store_error"
	CodeServerError       = "server_error"
)

// Error is the single error type crossing handler boundaries. Code and
// Detail are caller-visible; the wrapped cause is for server-side logs only.
type Error struct {
	Code   string
	Detail string
	Status int
	cause  error
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// MissingInput reports a required field the caller did not supply.
func MissingInput(detail string) *Error {
	return &Error{Code: CodeMissingInput, Detail: detail, Status: http.StatusBadRequest}
}

// UpstreamRejected reports that the identity provider refused the token.
// The provider's raw response body travels in Detail so operators can
// diagnose rejections without grepping provider-side logs.
func UpstreamRejected(detail string) *Error {
	return &Error{Code: CodeUpstreamRejected, Detail: detail, Status: http.StatusUnauthorized}
}

// NoCredential reports an absent or malformed Authorization header.
func NoCredential() *Error {
	return &Error{Code: CodeNoCredential, Status: http.StatusUnauthorized}
}

// InvalidCredential reports a credential that failed validation. The reason
// is deliberately not surfaced.
func InvalidCredential() *Error {
	return &Error{Code: CodeInvalidCredential, Status: http.StatusUnauthorized}
}

// StoreError reports a backing-store failure with the store's message attached.
func StoreError(cause error) *Error {
	return &Error{Code: CodeStoreError, Detail: cause.Error(), Status: http.StatusInternalServerError, cause: cause}
}

// Internal wraps an unexpected error. The cause is kept for logging but the
// caller only ever sees the opaque server_error code.
func Internal(cause error) *Error {
	return &Error{Code: CodeServerError, Status: http.StatusInternalServerError, cause: cause}
}

// From maps any error onto the taxonomy. Errors that are not already typed
// collapse to server_error.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
