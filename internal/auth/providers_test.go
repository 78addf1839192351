package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionauth-community/go-client/internal/auth"
)

func TestStaticKeyProvider(t *testing.T) {
	t.Parallel()

	provider := auth.NewStaticKeyProvider("api-key-value")

	value, err := provider.AuthorizationValue(context.Background())
	require.NoError(t, err)

	// API keys are sent verbatim, with no scheme prefix
	assert.Equal(t, "api-key-value", value)
}

func TestBearerProvider(t *testing.T) {
	t.Parallel()

	provider := auth.NewBearerProvider("some-jwt")

	value, err := provider.AuthorizationValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer some-jwt", value)
}
