package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPersister struct {
	mu           sync.Mutex
	serverURL    string
	token        string
	refreshToken string
	calls        int
}

func (p *recordingPersister) UpdateServerToken(serverURL, token string, _ time.Time, refreshToken string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.serverURL = serverURL
	p.token = token
	p.refreshToken = refreshToken
	p.calls++

	return nil
}

func TestConfigTokenManager_PersistsOnRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token":        "refreshed-token",
			"refreshToken": "rotated-refresh-token",
		})
	}))
	defer server.Close()

	persister := &recordingPersister{}
	manager := NewConfigTokenManager(&JWTConfig{
		BaseURL:      server.URL,
		RefreshToken: "stored-refresh-token",
	}, persister, server.URL, "stored-token", time.Now().Add(-1*time.Minute))

	err := manager.RefreshToken(context.Background())
	require.NoError(t, err)

	persister.mu.Lock()
	defer persister.mu.Unlock()
	assert.Equal(t, 1, persister.calls)
	assert.Equal(t, server.URL, persister.serverURL)
	assert.Equal(t, "refreshed-token", persister.token)
	assert.Equal(t, "rotated-refresh-token", persister.refreshToken)
}

func TestConfigTokenManager_IsTokenExpiringSoon(t *testing.T) {
	manager := NewConfigTokenManager(&JWTConfig{}, nil, "https://auth.example.com", "some-token", time.Now().Add(10*time.Minute))

	assert.True(t, manager.IsTokenExpiringSoon(15*time.Minute))
	assert.False(t, manager.IsTokenExpiringSoon(5*time.Minute))

	// Unknown expiry is not reported as expiring
	manager.SetToken("opaque-token", time.Time{})
	assert.False(t, manager.IsTokenExpiringSoon(24*time.Hour))
}

func TestConfigTokenManager_GetTokenExpiry(t *testing.T) {
	expiry := time.Now().Add(30 * time.Minute)
	manager := NewConfigTokenManager(&JWTConfig{}, nil, "https://auth.example.com", "some-token", expiry)

	assert.Equal(t, expiry.Unix(), manager.GetTokenExpiry().Unix())
}
