// Package auth supplies Authorization header values for API requests,
// from static API keys up to self-refreshing JWTs.
package auth

import (
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"github.com/fusionauth-community/go-client/internal/constants"
)

// Token holds a FusionAuth JWT together with its refresh token.
type Token struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresAt    time.Time
}

// Valid reports whether the token is present and not about to expire.
// A zero ExpiresAt means the expiry is unknown and the token is used
// as is.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpirationBuffer).Before(t.ExpiresAt)
}

// TokenStore holds the current token. It is safe for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil when none is set.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}

// jwtExpiry extracts the exp claim from an encoded JWT. It returns the
// zero time when the string is not a decodable JWT or carries no exp
// claim, which callers treat as an unknown expiry.
func jwtExpiry(encodedJWT string) time.Time {
	parts := strings.Split(encodedJWT, ".")
	if len(parts) != constants.JWTPartsCount {
		return time.Time{}
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return time.Time{}
	}

	exp := gjson.GetBytes(payload, "exp")
	if !exp.Exists() {
		return time.Time{}
	}

	return time.Unix(exp.Int(), 0)
}
