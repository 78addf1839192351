package auth_test

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionauth-community/go-client/internal/auth"
	"github.com/fusionauth-community/go-client/internal/constants"
)

func TestTokenValid(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name  string
		token *auth.Token
		want  bool
	}{
		{"nil token", nil, false},
		{"no access token", &auth.Token{RefreshToken: "rt"}, false},
		{"unknown expiry is trusted", &auth.Token{AccessToken: "jwt"}, true},
		{"expiry far in the future", &auth.Token{AccessToken: "jwt", ExpiresAt: now.Add(time.Hour)}, true},
		{"already expired", &auth.Token{AccessToken: "jwt", ExpiresAt: now.Add(-time.Minute)}, false},
		{"inside the refresh buffer", &auth.Token{AccessToken: "jwt", ExpiresAt: now.Add(constants.TokenExpirationBuffer / 2)}, false},
		{"just past the refresh buffer", &auth.Token{AccessToken: "jwt", ExpiresAt: now.Add(constants.TokenExpirationBuffer + 5*time.Second)}, true},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.token.Valid())
		})
	}
}

func TestTokenStoreLifecycle(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	assert.Nil(t, store.Get(), "a fresh store holds no token")

	first := &auth.Token{
		AccessToken:  "first-jwt",
		RefreshToken: "first-refresh",
		TokenType:    "Bearer",
	}
	store.Set(first)

	got := store.Get()
	require.NotNil(t, got)
	assert.Equal(t, "first-jwt", got.AccessToken)
	assert.Equal(t, "first-refresh", got.RefreshToken)
	assert.Equal(t, "Bearer", got.TokenType)

	// Replacing the token swaps the whole value, refresh token included
	store.Set(&auth.Token{AccessToken: "second-jwt"})

	got = store.Get()
	require.NotNil(t, got)
	assert.Equal(t, "second-jwt", got.AccessToken)
	assert.Empty(t, got.RefreshToken)

	store.Clear()
	assert.Nil(t, store.Get())

	// Clearing an empty store is a no-op
	store.Clear()
	assert.Nil(t, store.Get())
}

func TestTokenStoreConcurrency(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()

	const (
		writers       = 4
		readers       = 4
		opsPerRoutine = 200
	)

	var wg sync.WaitGroup

	for i := 0; i < writers; i++ {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			token := &auth.Token{AccessToken: "jwt-" + strconv.Itoa(i)}
			for op := 0; op < opsPerRoutine; op++ {
				store.Set(token)
			}
		}()
	}

	for r := 0; r < readers; r++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for op := 0; op < opsPerRoutine; op++ {
				if token := store.Get(); token != nil {
					_ = token.Valid()
				}
			}
		}()
	}

	wg.Wait()

	// Whatever writer landed last, the stored value is one of theirs
	final := store.Get()
	require.NotNil(t, final)
	assert.Contains(t, final.AccessToken, "jwt-")
}
