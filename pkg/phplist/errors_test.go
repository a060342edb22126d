package phplist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phplist/go-client/pkg/phplist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	apiErr := phplist.NewAPIError("Internal server error", 500)
	assert.Equal(t, "Internal server error (status: 500)", apiErr.Error())

	defaulted := phplist.NewAPIError("", 502)
	assert.Equal(t, "API error occurred (status: 502)", defaulted.Error())
}

func TestNewTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	transportErr := phplist.NewTransportError(cause)

	assert.Equal(t, 0, transportErr.StatusCode)
	assert.Equal(t, "API request failed: connection refused", transportErr.Error())
	require.ErrorIs(t, transportErr, cause)
}

func TestErrorKindDefaults(t *testing.T) {
	t.Parallel()

	authErr := phplist.NewAuthenticationError("", 0)
	assert.Equal(t, "Authentication failed (status: 401)", authErr.Error())

	notFoundErr := phplist.NewNotFoundError("", 0)
	assert.Equal(t, "Resource not found (status: 404)", notFoundErr.Error())

	validationErr := phplist.NewValidationError("", 0, nil)
	assert.Equal(t, "Validation failed (status: 422)", validationErr.Error())
	assert.NotNil(t, validationErr.Errors)
}

func TestValidationError_FieldQueries(t *testing.T) {
	t.Parallel()

	validationErr := phplist.NewValidationError("Validation failed", 422, map[string][]string{
		"email":      {"This value is not a valid email address.", "This value is already used."},
		"login_name": {},
	})

	assert.True(t, validationErr.HasErrorsForField("email"))
	assert.Len(t, validationErr.ErrorsForField("email"), 2)

	// A field present with no messages behaves like an absent field.
	assert.False(t, validationErr.HasErrorsForField("login_name"))
	assert.False(t, validationErr.HasErrorsForField("password"))
	assert.Empty(t, validationErr.ErrorsForField("password"))
	assert.NotNil(t, validationErr.ErrorsForField("password"))
}

func TestErrorMatchers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		err              error
		isAuthentication bool
		isNotFound       bool
		isValidation     bool
	}{
		{
			name:             "authentication",
			err:              phplist.NewAuthenticationError("Invalid credentials", 401),
			isAuthentication: true,
		},
		{
			name:       "not found",
			err:        phplist.NewNotFoundError("Subscriber not found", 404),
			isNotFound: true,
		},
		{
			name:         "validation",
			err:          phplist.NewValidationError("Invalid email", 422, nil),
			isValidation: true,
		},
		{
			name: "plain api error",
			err:  phplist.NewAPIError("boom", 500),
		},
		{
			name:         "wrapped validation",
			err:          fmt.Errorf("creating subscriber: %w", phplist.NewValidationError("Invalid email", 422, nil)),
			isValidation: true,
		},
		{
			name: "unrelated",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.isAuthentication, phplist.IsAuthentication(tt.err))
			assert.Equal(t, tt.isNotFound, phplist.IsNotFound(tt.err))
			assert.Equal(t, tt.isValidation, phplist.IsValidation(tt.err))
		})
	}
}
