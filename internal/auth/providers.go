package auth

import "context"

// Provider supplies the Authorization header value for outgoing
// requests.
type Provider interface {
	// AuthorizationValue returns the exact header value to send
	AuthorizationValue(ctx context.Context) (string, error)
}

// StaticKeyProvider sends a FusionAuth API key. API keys go out
// verbatim, without a Bearer prefix.
type StaticKeyProvider struct {
	key string
}

// NewStaticKeyProvider creates a provider for a fixed API key.
func NewStaticKeyProvider(key string) *StaticKeyProvider {
	return &StaticKeyProvider{key: key}
}

// AuthorizationValue implements Provider.
func (p *StaticKeyProvider) AuthorizationValue(_ context.Context) (string, error) {
	return p.key, nil
}

// BearerProvider sends a fixed JWT as a bearer token.
type BearerProvider struct {
	token string
}

// NewBearerProvider creates a provider for a fixed JWT.
func NewBearerProvider(token string) *BearerProvider {
	return &BearerProvider{token: token}
}

// AuthorizationValue implements Provider.
func (p *BearerProvider) AuthorizationValue(_ context.Context) (string, error) {
	return "Bearer " + p.token, nil
}
