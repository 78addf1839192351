package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrNoConfigPersister = errors.New("no config persister configured")
)

// ConfigPersister saves refreshed tokens back to wherever the CLI keeps
// its per-server credentials.
type ConfigPersister interface {
	UpdateServerToken(serverURL, token string, expiresAt time.Time, refreshToken string) error
}

// ConfigTokenManager wraps JWTTokenManager and persists refreshed tokens
// so later CLI invocations pick them up.
type ConfigTokenManager struct {
	jwtManager      *JWTTokenManager
	configPersister ConfigPersister
	serverURL       string
	mutex           sync.Mutex
	persistedToken  string
	persistedExpiry time.Time
}

// NewConfigTokenManager creates a config-persisting token manager. When an
// initial token is supplied its stored expiry wins over the exp claim, since
// the persisted value may have been adjusted at login time.
func NewConfigTokenManager(config *JWTConfig, configPersister ConfigPersister, serverURL string, initialToken string, initialExpiry time.Time) *ConfigTokenManager {
	jwtManager := NewJWTTokenManager(config)

	if initialToken != "" {
		jwtManager.SetToken(initialToken, initialExpiry)
	}

	return &ConfigTokenManager{
		jwtManager:      jwtManager,
		configPersister: configPersister,
		serverURL:       serverURL,
		persistedToken:  initialToken,
		persistedExpiry: initialExpiry,
	}
}

// GetToken returns a valid access token, refreshing if necessary.
func (m *ConfigTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token, err := m.jwtManager.GetToken(ctx)
	if err != nil {
		return "", err
	}

	// Persist the token if the manager refreshed it along the way
	currentToken := m.jwtManager.store.Get()
	if currentToken != nil && (currentToken.AccessToken != m.persistedToken || !currentToken.ExpiresAt.Equal(m.persistedExpiry)) {
		go func() {
			persistErr := m.persistToken(currentToken)
			if persistErr != nil {
				// Warn but don't fail the request over a persistence problem
				_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist refreshed token: %v\n", persistErr)
			}
		}()

		m.persistedToken = currentToken.AccessToken
		m.persistedExpiry = currentToken.ExpiresAt
	}

	return token, nil
}

// RefreshToken forces a token refresh and persists the result.
func (m *ConfigTokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	err := m.jwtManager.RefreshToken(ctx)
	if err != nil {
		return err
	}

	currentToken := m.jwtManager.store.Get()
	if currentToken != nil {
		persistErr := m.persistToken(currentToken)
		if persistErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist refreshed token: %v\n", persistErr)
		}

		m.persistedToken = currentToken.AccessToken
		m.persistedExpiry = currentToken.ExpiresAt
	}

	return nil
}

// SetToken manually sets the access token.
func (m *ConfigTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.jwtManager.SetToken(token, expiresAt)
	m.persistedToken = token
	m.persistedExpiry = expiresAt
}

// AuthorizationValue implements Provider.
func (m *ConfigTokenManager) AuthorizationValue(ctx context.Context) (string, error) {
	token, err := m.GetToken(ctx)
	if err != nil {
		return "", err
	}

	return "Bearer " + token, nil
}

// IsTokenExpiringSoon reports whether the token expires within the given
// duration. A zero expiry means the expiry is unknown, not immediate.
func (m *ConfigTokenManager) IsTokenExpiringSoon(within time.Duration) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token := m.jwtManager.store.Get()
	if token == nil {
		return true
	}

	if token.ExpiresAt.IsZero() {
		return false
	}

	return time.Now().Add(within).After(token.ExpiresAt)
}

// GetTokenExpiry returns the current token's expiration time.
func (m *ConfigTokenManager) GetTokenExpiry() time.Time {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token := m.jwtManager.store.Get()
	if token == nil {
		return time.Time{}
	}

	return token.ExpiresAt
}

// persistToken saves the token to config.
func (m *ConfigTokenManager) persistToken(token *Token) error {
	if m.configPersister == nil {
		return ErrNoConfigPersister
	}

	err := m.configPersister.UpdateServerToken(m.serverURL, token.AccessToken, token.ExpiresAt, token.RefreshToken)
	if err != nil {
		return fmt.Errorf("failed to update server token: %w", err)
	}

	return nil
}
