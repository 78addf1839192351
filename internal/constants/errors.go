package constants

import "errors"

// CLI authentication errors.
var (
	ErrNotAuthenticated     = errors.New("not authenticated, run 'fusionauth login' or configure an API key")
	ErrPasswordRequired     = errors.New("password is required")
	ErrTwoFactorRequired    = errors.New("additional authentication factor required, complete the login in a browser")
	ErrLoginReturnedNoToken = errors.New("login succeeded but returned no token")
)

// CLI configuration errors.
var (
	ErrServerAlreadyExists = errors.New("server already exists")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrInvalidServerURL    = errors.New("invalid server URL")
)
