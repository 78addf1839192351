package fusionauth

import (
	"crypto/tls"
	"time"
)

// CoreResourceClients groups the directory resource management interfaces.
type CoreResourceClients interface {
	// Users returns the user management client
	Users() UsersClient

	// Applications returns the application management client
	Applications() ApplicationsClient

	// Tenants returns the tenant management client
	Tenants() TenantsClient

	// Groups returns the group management client
	Groups() GroupsClient
}

// SessionClients groups the registration and authentication interfaces.
type SessionClients interface {
	// Registrations returns the registration management client
	Registrations() RegistrationsClient

	// Auth returns the login, token, and OAuth client
	Auth() AuthClient
}

// ResourceClients combines every resource-oriented interface.
type ResourceClients interface {
	CoreResourceClients
	SessionClients
}

// Client combines all client interfaces.
type Client interface {
	ResourceClients

	// System returns the server status and version client
	System() SystemClient

	// Metrics returns the request latency collector, or nil when metrics
	// are not enabled
	Metrics() *MetricsCollector
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds client configuration.
//
// # Authentication precedence
//
// When APIKey is set it is sent verbatim in the Authorization header of
// every request, which is how FusionAuth expects its API keys. Otherwise,
// when BearerToken is set it is sent as "Bearer <token>". When neither is
// set requests go out unauthenticated, which only suits the handful of
// endpoints that accept anonymous calls.
//
// # Tenant scoping
//
// When TenantID is set every request carries it in the
// X-FusionAuth-TenantId header, scoping the call to that tenant. Leave it
// empty on single-tenant deployments or when the API key is already
// tenant-locked.
//
// # Timeouts and TLS
//
// ConnectTimeout bounds dialing and ReadTimeout bounds the whole exchange.
// Zero values fall back to the client defaults. ClientCertificate,
// ProxyURL, and SkipTLSVerify tune the transport for mutual TLS and
// outbound proxies.
type Config struct {
	// BaseURL is the FusionAuth server URL, like "https://auth.example.com" (required)
	BaseURL string `validate:"required"`

	// APIKey authenticates requests with a FusionAuth API key
	APIKey string `validate:"excluded_with=BearerToken"`

	// BearerToken authenticates requests with a JWT instead of an API key
	BearerToken string

	// TenantID scopes requests to one tenant via the X-FusionAuth-TenantId header
	TenantID string `validate:"omitempty,uuid4"`

	// ConnectTimeout bounds establishing the TCP connection
	ConnectTimeout time.Duration `validate:"min=0"`

	// ReadTimeout bounds the full request and response exchange
	ReadTimeout time.Duration `validate:"min=0"`

	// ClientCertificate is presented to servers that require mutual TLS
	ClientCertificate *tls.Certificate

	// ProxyURL routes requests through an HTTP proxy
	ProxyURL string `validate:"omitempty,url"`

	// SkipTLSVerify disables server certificate verification. Never enable
	// it outside of development setups
	SkipTLSVerify bool

	// UserAgent overrides the User-Agent header sent with every request
	UserAgent string

	// EnableMetrics turns on request latency collection
	EnableMetrics bool

	// Debug logs every request and response through Logger
	Debug bool

	// Logger receives debug and error output. Defaults to a no-op logger
	Logger Logger

	// RequestInterceptors run before each request is sent
	RequestInterceptors []RequestInterceptor

	// ResponseInterceptors run after each response is received
	ResponseInterceptors []ResponseInterceptor
}

// NewClient creates a new FusionAuth client with the given configuration.
//
// Deprecated: Use the faclient package to construct clients. This
// function only exists to keep old import paths compiling and always
// returns ErrDeprecatedClientConstructor.
func NewClient(_ *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
