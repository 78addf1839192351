package fusionauth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	t.Run("with code", func(t *testing.T) {
		err := Error{
			Code:    "[blank]user.email",
			Message: "You must specify the [user.email] property.",
		}

		assert.Equal(t, "You must specify the [user.email] property. (code: [blank]user.email)", err.Error())
	})

	t.Run("without code", func(t *testing.T) {
		err := Error{Message: "Something went wrong."}

		assert.Equal(t, "Something went wrong.", err.Error())
	})
}

func TestErrors_Error(t *testing.T) {
	tests := []struct {
		name     string
		report   *Errors
		expected string
	}{
		{
			name:     "empty report",
			report:   &Errors{},
			expected: "unknown API error",
		},
		{
			name: "single general error",
			report: &Errors{
				GeneralErrors: []Error{
					{Code: "[invalid]", Message: "Invalid request."},
				},
			},
			expected: "Invalid request. (code: [invalid])",
		},
		{
			name: "multiple general errors",
			report: &Errors{
				GeneralErrors: []Error{
					{Code: "[invalid]", Message: "Invalid request."},
					{Code: "[expired]", Message: "The request has expired."},
				},
			},
			expected: "multiple API errors: Invalid request. (code: [invalid]) (and 1 more)",
		},
		{
			name: "single field error",
			report: &Errors{
				FieldErrors: map[string][]Error{
					"user.email": {
						{Code: "[blank]user.email", Message: "You must specify the [user.email] property."},
					},
				},
			},
			expected: "You must specify the [user.email] property. (code: [blank]user.email)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.report.Error())
		})
	}
}

func TestErrors_Empty(t *testing.T) {
	var nilReport *Errors

	assert.True(t, nilReport.Empty())
	assert.True(t, (&Errors{}).Empty())
	assert.False(t, (&Errors{GeneralErrors: []Error{{Message: "boom"}}}).Empty())
	assert.False(t, (&Errors{FieldErrors: map[string][]Error{"user.email": {{Message: "blank"}}}}).Empty())
}

func TestErrors_All(t *testing.T) {
	report := &Errors{
		FieldErrors: map[string][]Error{
			"user.email": {
				{Code: "[blank]user.email", Message: "You must specify the [user.email] property."},
			},
		},
		GeneralErrors: []Error{
			{Code: "[invalid]", Message: "Invalid request."},
		},
	}

	all := report.All()
	require.Len(t, all, 2)

	// General errors come first
	assert.Equal(t, "[invalid]", all[0].Code)
	assert.Equal(t, "[blank]user.email", all[1].Code)
}

func TestAPIError_Error(t *testing.T) {
	t.Run("without error report", func(t *testing.T) {
		err := &APIError{StatusCode: 404}

		assert.Equal(t, "fusionauth: status 404", err.Error())
	})

	t.Run("with error report", func(t *testing.T) {
		err := &APIError{
			StatusCode: 400,
			Errors: &Errors{
				GeneralErrors: []Error{
					{Code: "[invalid]", Message: "Invalid request."},
				},
			},
		}

		assert.Equal(t, "fusionauth: status 400: Invalid request. (code: [invalid])", err.Error())
	})
}

func TestParseAPIError(t *testing.T) {
	t.Run("field error report", func(t *testing.T) {
		body := `{
			"fieldErrors": {
				"user.email": [
					{
						"code": "[blank]user.email",
						"message": "You must specify the [user.email] property."
					}
				]
			}
		}`

		apiErr := ParseAPIError(400, []byte(body))
		require.NotNil(t, apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
		require.NotNil(t, apiErr.Errors)
		require.Len(t, apiErr.Errors.FieldErrors["user.email"], 1)
		assert.Equal(t, "[blank]user.email", apiErr.Errors.FieldErrors["user.email"][0].Code)
	})

	t.Run("general error report", func(t *testing.T) {
		body := `{"generalErrors": [{"code": "[invalid]", "message": "Invalid request."}]}`

		apiErr := ParseAPIError(400, []byte(body))
		require.NotNil(t, apiErr.Errors)
		require.Len(t, apiErr.Errors.GeneralErrors, 1)
		assert.Equal(t, "[invalid]", apiErr.Errors.GeneralErrors[0].Code)
	})

	t.Run("empty body", func(t *testing.T) {
		apiErr := ParseAPIError(404, nil)
		require.NotNil(t, apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Nil(t, apiErr.Errors)
	})

	t.Run("unparseable body", func(t *testing.T) {
		apiErr := ParseAPIError(502, []byte("<html>Bad Gateway</html>"))
		require.NotNil(t, apiErr)
		assert.Equal(t, 502, apiErr.StatusCode)
		assert.Nil(t, apiErr.Errors)
	})

	t.Run("empty report", func(t *testing.T) {
		apiErr := ParseAPIError(400, []byte(`{}`))
		require.NotNil(t, apiErr)
		assert.Nil(t, apiErr.Errors)
	})
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "APIError not found",
			err:      &APIError{StatusCode: 404},
			expected: true,
		},
		{
			name:     "APIError other status",
			err:      &APIError{StatusCode: 400},
			expected: false,
		},
		{
			name:     "wrapped APIError",
			err:      fmt.Errorf("retrieving user: %w", &APIError{StatusCode: 404}),
			expected: true,
		},
		{
			name:     "other error type",
			err:      ErrTest,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFound(tt.err))
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "APIError unauthorized",
			err:      &APIError{StatusCode: 401},
			expected: true,
		},
		{
			name:     "APIError other status",
			err:      &APIError{StatusCode: 404},
			expected: false,
		},
		{
			name:     "wrapped APIError",
			err:      fmt.Errorf("logging in: %w", &APIError{StatusCode: 401}),
			expected: true,
		},
		{
			name:     "other error type",
			err:      ErrTest,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUnauthorized(tt.err))
		})
	}
}

func TestIsForbidden(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "APIError forbidden",
			err:      &APIError{StatusCode: 403},
			expected: true,
		},
		{
			name:     "APIError other status",
			err:      &APIError{StatusCode: 401},
			expected: false,
		},
		{
			name:     "other error type",
			err:      ErrTest,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsForbidden(tt.err))
		})
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "APIError validation",
			err:      &APIError{StatusCode: 400},
			expected: true,
		},
		{
			name:     "APIError other status",
			err:      &APIError{StatusCode: 500},
			expected: false,
		},
		{
			name:     "other error type",
			err:      ErrTest,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidation(tt.err))
		})
	}
}

func TestFieldErrors(t *testing.T) {
	fieldErrors := map[string][]Error{
		"user.email": {
			{Code: "[blank]user.email", Message: "You must specify the [user.email] property."},
		},
	}

	t.Run("APIError with field errors", func(t *testing.T) {
		err := &APIError{StatusCode: 400, Errors: &Errors{FieldErrors: fieldErrors}}

		result := FieldErrors(err)
		require.Len(t, result, 1)
		assert.Equal(t, "[blank]user.email", result["user.email"][0].Code)
	})

	t.Run("wrapped APIError", func(t *testing.T) {
		err := fmt.Errorf("creating user: %w", &APIError{StatusCode: 400, Errors: &Errors{FieldErrors: fieldErrors}})

		assert.Len(t, FieldErrors(err), 1)
	})

	t.Run("APIError without report", func(t *testing.T) {
		assert.Nil(t, FieldErrors(&APIError{StatusCode: 404}))
	})

	t.Run("other error type", func(t *testing.T) {
		assert.Nil(t, FieldErrors(ErrTest))
	})
}
