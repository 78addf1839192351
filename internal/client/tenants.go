package client

import (
	"context"
	"fmt"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/fusionauth-community/go-client/pkg/restclient"
)

// TenantsClient implements fusionauth.TenantsClient.
type TenantsClient struct {
	client *Client
}

// NewTenantsClient creates a new tenants client.
func NewTenantsClient(client *Client) *TenantsClient {
	return &TenantsClient{client: client}
}

// Create implements fusionauth.TenantsClient.Create. An empty tenantID
// lets the server generate one.
func (c *TenantsClient) Create(ctx context.Context, tenantID string, request *fusionauth.TenantRequest) (*fusionauth.TenantResponse, error) {
	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/api/tenant")
	req.WithURISegment(tenantID).WithJSONBody(request)

	var response fusionauth.TenantResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("creating tenant: %w", err)
	}

	return &response, nil
}

// Retrieve implements fusionauth.TenantsClient.Retrieve.
func (c *TenantsClient) Retrieve(ctx context.Context, tenantID string) (*fusionauth.TenantResponse, error) {
	if tenantID == "" {
		return nil, fusionauth.ErrTenantIDRequired
	}

	req := c.client.newRequest(restclient.MethodGet, "/api/tenant")
	req.WithURISegment(tenantID)

	var response fusionauth.TenantResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("retrieving tenant: %w", err)
	}

	return &response, nil
}

// List implements fusionauth.TenantsClient.List. Without an ID segment
// the server returns every tenant.
func (c *TenantsClient) List(ctx context.Context) (*fusionauth.TenantResponse, error) {
	req := c.client.newRequest(restclient.MethodGet, "/api/tenant")

	var response fusionauth.TenantResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}

	return &response, nil
}

// Update implements fusionauth.TenantsClient.Update.
func (c *TenantsClient) Update(ctx context.Context, tenantID string, request *fusionauth.TenantRequest) (*fusionauth.TenantResponse, error) {
	if tenantID == "" {
		return nil, fusionauth.ErrTenantIDRequired
	}

	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPut, "/api/tenant")
	req.WithURISegment(tenantID).WithJSONBody(request)

	var response fusionauth.TenantResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("updating tenant: %w", err)
	}

	return &response, nil
}

// Delete implements fusionauth.TenantsClient.Delete.
func (c *TenantsClient) Delete(ctx context.Context, tenantID string) error {
	if tenantID == "" {
		return fusionauth.ErrTenantIDRequired
	}

	req := c.client.newRequest(restclient.MethodDelete, "/api/tenant")
	req.WithURISegment(tenantID)

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("deleting tenant: %w", err)
	}

	return nil
}
