package fusionauth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a single coded error inside a FusionAuth error response.
type Error struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Code == "" {
		return e.Message
	}

	return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
}

// Errors is the validation report FusionAuth returns for rejected
// requests. FieldErrors are keyed by the path of the offending request
// field, for example "user.email".
type Errors struct {
	FieldErrors   map[string][]Error `json:"fieldErrors,omitempty"   yaml:"fieldErrors,omitempty"`
	GeneralErrors []Error            `json:"generalErrors,omitempty" yaml:"generalErrors,omitempty"`
}

// Empty reports whether the report carries no errors at all.
func (e *Errors) Empty() bool {
	return e == nil || (len(e.FieldErrors) == 0 && len(e.GeneralErrors) == 0)
}

// All returns every error in the report, general errors first.
func (e *Errors) All() []Error {
	if e == nil {
		return nil
	}

	all := make([]Error, 0, len(e.GeneralErrors))
	all = append(all, e.GeneralErrors...)

	for _, fieldErrors := range e.FieldErrors {
		all = append(all, fieldErrors...)
	}

	return all
}

// Error implements the error interface.
func (e *Errors) Error() string {
	all := e.All()

	switch len(all) {
	case 0:
		return "unknown API error"
	case 1:
		return all[0].Error()
	default:
		return fmt.Sprintf("multiple API errors: %s (and %d more)", all[0].Error(), len(all)-1)
	}
}

// APIError is returned when FusionAuth answers with a non-2xx status.
// Errors is nil when the response carried no parseable error report,
// which is common for statuses like 401, 404, and 5xx.
type APIError struct {
	StatusCode int
	Errors     *Errors
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Errors.Empty() {
		return fmt.Sprintf("fusionauth: status %d", e.StatusCode)
	}

	return fmt.Sprintf("fusionauth: status %d: %s", e.StatusCode, e.Errors.Error())
}

// ParseAPIError builds an APIError from a response status and body. A
// body that is empty or not a FusionAuth error report yields an
// APIError carrying only the status.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	if len(body) == 0 {
		return apiErr
	}

	var report Errors
	if err := json.Unmarshal(body, &report); err != nil {
		return apiErr
	}

	if !report.Empty() {
		apiErr.Errors = &report
	}

	return apiErr
}

// Static errors for err113 compliance.
var (
	// ErrConfigRequired is returned when a nil config is supplied.
	ErrConfigRequired = errors.New("config is required")

	// ErrBaseURLRequired is returned when no server URL is configured.
	ErrBaseURLRequired = errors.New("base URL is required")

	// ErrUserIDRequired is returned when a user ID argument is empty.
	ErrUserIDRequired = errors.New("user ID is required")

	// ErrUserIDsRequired is returned when a bulk operation receives no
	// user IDs.
	ErrUserIDsRequired = errors.New("at least one user ID is required")

	// ErrEmailRequired is returned when an email argument is empty.
	ErrEmailRequired = errors.New("email is required")

	// ErrUsernameRequired is returned when a username argument is empty.
	ErrUsernameRequired = errors.New("username is required")

	// ErrApplicationIDRequired is returned when an application ID
	// argument is empty.
	ErrApplicationIDRequired = errors.New("application ID is required")

	// ErrTenantIDRequired is returned when a tenant ID argument is empty.
	ErrTenantIDRequired = errors.New("tenant ID is required")

	// ErrGroupIDRequired is returned when a group ID argument is empty.
	ErrGroupIDRequired = errors.New("group ID is required")

	// ErrRequestRequired is returned when a nil request body is supplied.
	ErrRequestRequired = errors.New("request is required")

	// ErrLoginIDRequired is returned when a login call has no login ID.
	ErrLoginIDRequired = errors.New("login ID is required")

	// ErrTokenRequired is returned when a JWT argument is empty.
	ErrTokenRequired = errors.New("token is required")

	// ErrRefreshTokenRequired is returned when a refresh token argument
	// is empty.
	ErrRefreshTokenRequired = errors.New("refresh token is required")

	// ErrAuthCodeRequired is returned when an OAuth exchange has no code.
	ErrAuthCodeRequired = errors.New("authorization code is required")

	// ErrClientIDRequired is returned when an OAuth call has no client ID.
	ErrClientIDRequired = errors.New("client ID is required")

	// ErrNoServersConfigured is returned when the CLI has no servers.
	ErrNoServersConfigured = errors.New("no FusionAuth servers configured")

	// ErrCurrentServerNotFound is returned when the selected server is
	// missing from the configuration.
	ErrCurrentServerNotFound = errors.New("current server not found")

	// ErrServerNotFound is returned when a named server is missing from
	// the configuration.
	ErrServerNotFound = errors.New("server not found")

	// ErrServerNameOrURLRequired is returned when a server reference is
	// empty.
	ErrServerNameOrURLRequired = errors.New("server name or URL is required")

	// ErrDeprecatedClientConstructor is returned by the deprecated
	// NewClient helper.
	ErrDeprecatedClientConstructor = errors.New("use the faclient package to construct a client")
)

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden reports whether err is an APIError with status 403.
func IsForbidden(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsValidation reports whether err is an APIError with status 400.
func IsValidation(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusBadRequest
	}

	return false
}

// FieldErrors returns the field error report of err when it is an
// APIError carrying one, and nil otherwise.
func FieldErrors(err error) map[string][]Error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Errors != nil {
		return apiErr.Errors.FieldErrors
	}

	return nil
}

// Test error variables for test files to comply with err113.
var (
	// ErrTest is a generic error for tests.
	ErrTest = errors.New("test error")

	// ErrTestInterceptor is used by interceptor tests.
	ErrTestInterceptor = errors.New("interceptor failure")
)
