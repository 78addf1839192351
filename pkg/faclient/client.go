// Package faclient provides the main entry point for creating FusionAuth API clients
package faclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fusionauth-community/go-client/internal/client"
	"github.com/fusionauth-community/go-client/pkg/fusionauth"
)

// validate is a package-level singleton; constructing a validator per
// call is expensive and the instance is safe for concurrent use.
var validate = validator.New()

// New creates a new FusionAuth API client from the given configuration.
// The base URL is normalized (trailing slash removed, https assumed when
// no scheme is present) and the configuration is validated before any
// client state is built.
func New(ctx context.Context, config *fusionauth.Config) (fusionauth.Client, error) {
	if config == nil {
		return nil, fusionauth.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, fusionauth.ErrBaseURLRequired
	}

	config.BaseURL = normalizeBaseURL(config.BaseURL)

	err := validate.StructCtx(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// normalizeBaseURL trims the trailing slash and defaults the scheme to
// https, so "auth.example.com/" becomes "https://auth.example.com".
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithAPIKey creates a new client with a base URL and API key.
func NewWithAPIKey(ctx context.Context, baseURL, apiKey string) (fusionauth.Client, error) {
	return New(ctx, &fusionauth.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}

// NewWithBearerToken creates a new client that authenticates with a JWT.
func NewWithBearerToken(ctx context.Context, baseURL, token string) (fusionauth.Client, error) {
	return New(ctx, &fusionauth.Config{
		BaseURL:     baseURL,
		BearerToken: token,
	})
}

// NewAnonymous creates a new client with no credentials, for the
// endpoints that accept unauthenticated calls.
func NewAnonymous(ctx context.Context, baseURL string) (fusionauth.Client, error) {
	return New(ctx, &fusionauth.Config{
		BaseURL: baseURL,
	})
}
