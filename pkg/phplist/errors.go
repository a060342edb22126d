package phplist

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrBaseURLRequired     = errors.New("base URL is required")
	ErrMissingField        = errors.New("required field missing from response")
	ErrEmptyTimestamp      = errors.New("empty timestamp")
	ErrSessionKeyMissing   = errors.New("session key not found in response")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrImportFileRequired  = errors.New("import file is required")
	ErrUnsupportedBodyType = errors.New("unsupported request body type")
)

// Default messages used when an error response carries no message of
// its own.
const (
	defaultAPIErrorMessage        = "API error occurred"
	defaultAuthenticationMessage  = "Authentication failed"
	defaultNotFoundMessage        = "Resource not found"
	defaultValidationMessage      = "Validation failed"
	transportFailureMessagePrefix = "API request failed"
)

// APIError is the catch-all error for non-2xx responses that do not map
// to a more specific kind, and for transport-level failures. Transport
// failures carry StatusCode 0 with the underlying error chained.
type APIError struct {
	Message    string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}

	return e.Message
}

// Unwrap returns the chained transport error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates an APIError, substituting the default message when
// message is empty.
func NewAPIError(message string, statusCode int) *APIError {
	if message == "" {
		message = defaultAPIErrorMessage
	}

	return &APIError{Message: message, StatusCode: statusCode}
}

// NewTransportError wraps a transport-level failure (connection refused,
// timeout, DNS) as an APIError with status 0 and the cause chained.
func NewTransportError(err error) *APIError {
	return &APIError{
		Message:    fmt.Sprintf("%s: %v", transportFailureMessagePrefix, err),
		StatusCode: 0,
		Err:        err,
	}
}

// AuthenticationError is returned for 401/403 responses, for local
// authentication precondition failures (logout without a session), and
// for a 2xx login response missing the session key.
type AuthenticationError struct {
	APIError
}

// NewAuthenticationError creates an AuthenticationError with the given
// message and status code, substituting defaults when empty/zero.
func NewAuthenticationError(message string, statusCode int) *AuthenticationError {
	if message == "" {
		message = defaultAuthenticationMessage
	}

	if statusCode == 0 {
		statusCode = 401
	}

	return &AuthenticationError{APIError{Message: message, StatusCode: statusCode}}
}

// NotFoundError is returned for 404 responses.
type NotFoundError struct {
	APIError
}

// NewNotFoundError creates a NotFoundError with the given message,
// substituting the default when empty.
func NewNotFoundError(message string, statusCode int) *NotFoundError {
	if message == "" {
		message = defaultNotFoundMessage
	}

	if statusCode == 0 {
		statusCode = 404
	}

	return &NotFoundError{APIError{Message: message, StatusCode: statusCode}}
}

// ValidationError is returned for 400/422 responses and carries the
// field-keyed validation error map from the response body.
type ValidationError struct {
	APIError

	Errors map[string][]string
}

// NewValidationError creates a ValidationError carrying the given field
// error map. A nil map is normalized to an empty one.
func NewValidationError(message string, statusCode int, fieldErrors map[string][]string) *ValidationError {
	if message == "" {
		message = defaultValidationMessage
	}

	if statusCode == 0 {
		statusCode = 422
	}

	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}

	return &ValidationError{
		APIError: APIError{Message: message, StatusCode: statusCode},
		Errors:   fieldErrors,
	}
}

// HasErrorsForField reports whether the given field has validation
// errors.
func (e *ValidationError) HasErrorsForField(field string) bool {
	return len(e.Errors[field]) > 0
}

// ErrorsForField returns the validation errors for the given field, or
// an empty list when there are none.
func (e *ValidationError) ErrorsForField(field string) []string {
	messages, ok := e.Errors[field]
	if !ok {
		return []string{}
	}

	return messages
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError

	return errors.As(err, &authErr)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError

	return errors.As(err, &notFoundErr)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}

func newMissingFieldError(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}
