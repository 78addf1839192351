package restclient

import "errors"

// Static errors for err113 compliance.
var (
	// ErrBaseURLRequired is returned by Execute when no URL was set.
	ErrBaseURLRequired = errors.New("base URL is required")

	// ErrMethodRequired is returned by Execute when no method was set.
	ErrMethodRequired = errors.New("request method is required")

	// ErrUnsupportedMethod is returned by Execute for a method outside
	// the supported set.
	ErrUnsupportedMethod = errors.New("unsupported request method")

	// ErrInvalidProxyURL is returned when the configured proxy URL
	// cannot be parsed.
	ErrInvalidProxyURL = errors.New("invalid proxy URL")

	// ErrInvalidJSONBody is returned when a body that should be JSON
	// cannot be parsed.
	ErrInvalidJSONBody = errors.New("body is not valid JSON")

	// ErrValueNotPresent is returned when a document value addressed
	// for decoding does not exist.
	ErrValueNotPresent = errors.New("value not present in document")
)
