// Package client implements the fusionauth.Client interface on top of
// the restclient request builder. Each resource client maps one API
// family to builder calls; the shared plumbing in this file handles
// authentication, interceptors, metrics, and error mapping.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fusionauth-community/go-client/internal/auth"
	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/fusionauth-community/go-client/pkg/restclient"
)

// Client implements the fusionauth.Client interface.
type Client struct {
	config       *fusionauth.Config
	baseURL      string
	authProvider auth.Provider
	interceptors *fusionauth.InterceptorChain
	metrics      *fusionauth.MetricsCollector
	logger       fusionauth.Logger

	// Resource clients
	users         fusionauth.UsersClient
	applications  fusionauth.ApplicationsClient
	tenants       fusionauth.TenantsClient
	groups        fusionauth.GroupsClient
	registrations fusionauth.RegistrationsClient
	authClient    fusionauth.AuthClient
	system        fusionauth.SystemClient
}

// New creates a new FusionAuth API client.
func New(config *fusionauth.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fusionauth.ErrBaseURLRequired
	}

	var metrics *fusionauth.MetricsCollector
	if config.EnableMetrics {
		metrics = fusionauth.NewMetricsCollector()
	}

	client := &Client{
		config:       config,
		baseURL:      strings.TrimSuffix(config.BaseURL, "/"),
		authProvider: createAuthProvider(config),
		interceptors: buildInterceptorChain(config, metrics),
		metrics:      metrics,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithProvider creates a client that takes its Authorization values
// from the given provider instead of the config credentials.
func NewWithProvider(config *fusionauth.Config, provider auth.Provider) (*Client, error) {
	client, err := New(config)
	if err != nil {
		return nil, err
	}

	client.authProvider = provider

	return client, nil
}

// createAuthProvider picks the Authorization source from the configured
// credentials. API keys win over bearer tokens.
func createAuthProvider(config *fusionauth.Config) auth.Provider {
	if config.APIKey != "" {
		return auth.NewStaticKeyProvider(config.APIKey)
	}

	if config.BearerToken != "" {
		return auth.NewBearerProvider(config.BearerToken)
	}

	return nil // No authentication
}

// buildInterceptorChain assembles the interceptor chain from config.
// Built-in interceptors run before user-supplied ones.
func buildInterceptorChain(config *fusionauth.Config, metrics *fusionauth.MetricsCollector) *fusionauth.InterceptorChain {
	chain := fusionauth.NewInterceptorChain()

	if config.TenantID != "" {
		chain.AddRequestInterceptor(fusionauth.TenantInterceptor(config.TenantID))
	}

	if metrics != nil {
		chain.AddRequestInterceptor(fusionauth.MetricsRequestInterceptor(metrics))
		chain.AddResponseInterceptor(fusionauth.MetricsResponseInterceptor(metrics))
	}

	if config.Debug && config.Logger != nil {
		chain.AddRequestInterceptor(fusionauth.LoggingInterceptor(config.Logger))
		chain.AddResponseInterceptor(fusionauth.LoggingResponseInterceptor(config.Logger))
	}

	for _, interceptor := range config.RequestInterceptors {
		chain.AddRequestInterceptor(interceptor)
	}

	for _, interceptor := range config.ResponseInterceptors {
		chain.AddResponseInterceptor(interceptor)
	}

	return chain
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c)
	c.applications = NewApplicationsClient(c)
	c.tenants = NewTenantsClient(c)
	c.groups = NewGroupsClient(c)
	c.registrations = NewRegistrationsClient(c)
	c.authClient = NewAuthClient(c)
	c.system = NewSystemClient(c)
}

// Resource client accessors

// Users implements fusionauth.Client.Users.
func (c *Client) Users() fusionauth.UsersClient {
	return c.users
}

// Applications implements fusionauth.Client.Applications.
func (c *Client) Applications() fusionauth.ApplicationsClient {
	return c.applications
}

// Tenants implements fusionauth.Client.Tenants.
func (c *Client) Tenants() fusionauth.TenantsClient {
	return c.tenants
}

// Groups implements fusionauth.Client.Groups.
func (c *Client) Groups() fusionauth.GroupsClient {
	return c.groups
}

// Registrations implements fusionauth.Client.Registrations.
func (c *Client) Registrations() fusionauth.RegistrationsClient {
	return c.registrations
}

// Auth implements fusionauth.Client.Auth.
func (c *Client) Auth() fusionauth.AuthClient {
	return c.authClient
}

// System implements fusionauth.Client.System.
func (c *Client) System() fusionauth.SystemClient {
	return c.system
}

// Metrics implements fusionauth.Client.Metrics.
func (c *Client) Metrics() *fusionauth.MetricsCollector {
	return c.metrics
}

// apiRequest pairs a configured request builder with the logical route
// that interceptors and metrics see. The route path stays free of IDs;
// those are appended as URI segments on the embedded builder.
type apiRequest struct {
	*restclient.RequestBuilder
	method restclient.Method
	path   string
	noAuth bool
}

// withoutAuth leaves the Authorization header unset, for endpoints that
// authenticate through the request itself.
func (r *apiRequest) withoutAuth() *apiRequest {
	r.noAuth = true

	return r
}

// newRequest starts a builder for one API call with the client-wide
// transport settings applied.
func (c *Client) newRequest(method restclient.Method, path string) *apiRequest {
	builder := restclient.New().
		WithBaseURL(c.baseURL + path).
		WithMethod(method).
		WithHeader("Accept", "application/json").
		WithClientCertificate(c.config.ClientCertificate).
		WithProxy(c.config.ProxyURL).
		WithSkipTLSVerification(c.config.SkipTLSVerify)

	if c.config.ConnectTimeout > 0 {
		builder.WithConnectTimeout(c.config.ConnectTimeout)
	}

	if c.config.ReadTimeout > 0 {
		builder.WithReadTimeout(c.config.ReadTimeout)
	}

	if c.config.UserAgent != "" {
		builder.WithHeader("User-Agent", c.config.UserAgent)
	}

	if c.logger != nil {
		builder.WithLogger(c.logger).WithDebug(c.config.Debug)
	}

	return &apiRequest{RequestBuilder: builder, method: method, path: path}
}

// doRaw executes one API call: authentication, request interceptors,
// the HTTP exchange, response interceptors, and error mapping. Transport
// failures and non-2xx statuses come back as errors; the caller decodes
// the body of successful responses.
func (c *Client) doRaw(ctx context.Context, req *apiRequest) (*restclient.ClientResponse, error) {
	if !req.noAuth && c.authProvider != nil {
		value, err := c.authProvider.AuthorizationValue(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving authorization: %w", err)
		}

		req.WithAuthorization(value)
	}

	interceptorReq := &fusionauth.Request{
		Method:   string(req.method),
		Path:     req.path,
		Metadata: make(map[string]interface{}),
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptorReq)
	if err != nil {
		return nil, err
	}

	for name := range interceptorReq.Headers {
		req.WithHeader(name, interceptorReq.Headers.Get(name))
	}

	response, execErr := req.Execute(ctx)
	if response == nil {
		// The builder rejected the request before any network activity
		return nil, execErr
	}

	callErr := outcomeError(req, response, execErr)

	interceptorErr := c.interceptors.ExecuteResponseInterceptors(ctx, interceptorReq, &fusionauth.Response{
		StatusCode: response.StatusCode,
		Body:       response.Body,
		Error:      callErr,
	})

	if callErr != nil {
		return nil, callErr
	}

	if interceptorErr != nil {
		return nil, interceptorErr
	}

	return response, nil
}

// outcomeError maps the response envelope to the call outcome. A non-2xx
// status becomes an APIError even when its body was not valid JSON; an
// invalid body on a 2xx status surfaces as the parse error.
func outcomeError(req *apiRequest, response *restclient.ClientResponse, execErr error) error {
	if response.TransportError != nil {
		return fmt.Errorf("calling %s %s: %w", req.method, req.path, response.TransportError)
	}

	if !response.WasSuccessful() {
		return fusionauth.ParseAPIError(response.StatusCode, response.Body)
	}

	return execErr
}

// do executes one API call and decodes the response body into out. A
// nil out discards the body.
func (c *Client) do(ctx context.Context, req *apiRequest, out interface{}) error {
	response, err := c.doRaw(ctx, req)
	if err != nil {
		return err
	}

	if out == nil || len(response.Body) == 0 {
		return nil
	}

	err = json.Unmarshal(response.Body, out)
	if err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}
