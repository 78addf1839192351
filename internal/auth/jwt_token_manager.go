package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fusionauth-community/go-client/pkg/restclient"
)

// Static errors for err113 compliance.
var (
	ErrNoValidCredentials = errors.New("no valid credentials available")
	ErrRefreshFailed      = errors.New("token refresh failed")
)

// refreshRequest is the payload of the JWT refresh endpoint.
type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
	Token        string `json:"token,omitempty"`
}

// JWTConfig configures a refreshing JWT manager.
type JWTConfig struct {
	// BaseURL is the FusionAuth server URL
	BaseURL string

	// AccessToken seeds the manager with an existing JWT
	AccessToken string

	// RefreshToken is exchanged for new JWTs as they expire
	RefreshToken string

	// ConnectTimeout and ReadTimeout bound the refresh call
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
}

// JWTTokenManager keeps a FusionAuth JWT fresh by exchanging its refresh
// token before the JWT expires. It is safe for concurrent use.
type JWTTokenManager struct {
	config *JWTConfig
	store  *TokenStore
	mutex  sync.Mutex
}

// NewJWTTokenManager creates a manager seeded with the tokens in config.
func NewJWTTokenManager(config *JWTConfig) *JWTTokenManager {
	manager := &JWTTokenManager{
		config: config,
		store:  NewTokenStore(),
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken:  config.AccessToken,
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
			ExpiresAt:    jwtExpiry(config.AccessToken),
		})
	}

	return manager
}

// GetToken returns a valid JWT, refreshing it first when it is missing,
// expired, or about to expire.
func (m *JWTTokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Another caller may have refreshed while this one waited
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	err := m.refresh(ctx)
	if err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken forces a refresh regardless of the current token's state.
func (m *JWTTokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.refresh(ctx)
}

// SetToken manually sets the access token. A zero expiresAt falls back
// to the exp claim inside the token.
func (m *JWTTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	refreshToken := m.config.RefreshToken
	if current := m.store.Get(); current != nil && current.RefreshToken != "" {
		refreshToken = current.RefreshToken
	}

	if expiresAt.IsZero() {
		expiresAt = jwtExpiry(token)
	}

	m.store.Set(&Token{
		AccessToken:  token,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	})
}

// AuthorizationValue implements Provider.
func (m *JWTTokenManager) AuthorizationValue(ctx context.Context) (string, error) {
	token, err := m.GetToken(ctx)
	if err != nil {
		return "", err
	}

	return "Bearer " + token, nil
}

// refresh exchanges the refresh token for a new JWT. Callers must hold
// the mutex.
func (m *JWTTokenManager) refresh(ctx context.Context) error {
	refreshToken := m.config.RefreshToken

	current := m.store.Get()
	if current != nil && current.RefreshToken != "" {
		refreshToken = current.RefreshToken
	}

	if refreshToken == "" {
		return ErrNoValidCredentials
	}

	body := refreshRequest{RefreshToken: refreshToken}
	if current != nil {
		body.Token = current.AccessToken
	}

	builder := restclient.New().
		WithBaseURL(m.config.BaseURL + "/api/jwt/refresh").
		WithMethod(restclient.MethodPost).
		WithJSONBody(body)

	if m.config.ConnectTimeout > 0 {
		builder = builder.WithConnectTimeout(m.config.ConnectTimeout)
	}

	if m.config.ReadTimeout > 0 {
		builder = builder.WithReadTimeout(m.config.ReadTimeout)
	}

	response, err := builder.Execute(ctx)
	if err != nil {
		return fmt.Errorf("refreshing token: %w", err)
	}

	if response.TransportError != nil {
		return fmt.Errorf("refreshing token: %w", response.TransportError)
	}

	if !response.WasSuccessful() {
		return fmt.Errorf("%w: status %d", ErrRefreshFailed, response.StatusCode)
	}

	newJWT := response.SuccessBody.Get("token").String()
	if newJWT == "" {
		return fmt.Errorf("%w: response carried no token", ErrRefreshFailed)
	}

	newRefreshToken := response.SuccessBody.Get("refreshToken").String()
	if newRefreshToken == "" {
		newRefreshToken = refreshToken
	}

	m.store.Set(&Token{
		AccessToken:  newJWT,
		RefreshToken: newRefreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    jwtExpiry(newJWT),
	})

	return nil
}
