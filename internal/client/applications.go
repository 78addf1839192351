package client

import (
	"context"
	"fmt"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/fusionauth-community/go-client/pkg/restclient"
)

// ApplicationsClient implements fusionauth.ApplicationsClient.
type ApplicationsClient struct {
	client *Client
}

// NewApplicationsClient creates a new applications client.
func NewApplicationsClient(client *Client) *ApplicationsClient {
	return &ApplicationsClient{client: client}
}

// Create implements fusionauth.ApplicationsClient.Create. An empty
// applicationID lets the server generate one.
func (c *ApplicationsClient) Create(ctx context.Context, applicationID string, request *fusionauth.ApplicationRequest) (*fusionauth.ApplicationResponse, error) {
	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/api/application")
	req.WithURISegment(applicationID).WithJSONBody(request)

	var response fusionauth.ApplicationResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	return &response, nil
}

// Retrieve implements fusionauth.ApplicationsClient.Retrieve.
func (c *ApplicationsClient) Retrieve(ctx context.Context, applicationID string) (*fusionauth.ApplicationResponse, error) {
	if applicationID == "" {
		return nil, fusionauth.ErrApplicationIDRequired
	}

	req := c.client.newRequest(restclient.MethodGet, "/api/application")
	req.WithURISegment(applicationID)

	var response fusionauth.ApplicationResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("retrieving application: %w", err)
	}

	return &response, nil
}

// List implements fusionauth.ApplicationsClient.List. Without an ID
// segment the server returns every application.
func (c *ApplicationsClient) List(ctx context.Context) (*fusionauth.ApplicationResponse, error) {
	req := c.client.newRequest(restclient.MethodGet, "/api/application")

	var response fusionauth.ApplicationResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	return &response, nil
}

// Update implements fusionauth.ApplicationsClient.Update.
func (c *ApplicationsClient) Update(ctx context.Context, applicationID string, request *fusionauth.ApplicationRequest) (*fusionauth.ApplicationResponse, error) {
	if applicationID == "" {
		return nil, fusionauth.ErrApplicationIDRequired
	}

	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPut, "/api/application")
	req.WithURISegment(applicationID).WithJSONBody(request)

	var response fusionauth.ApplicationResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("updating application: %w", err)
	}

	return &response, nil
}

// Deactivate implements fusionauth.ApplicationsClient.Deactivate. A
// delete without the hardDelete parameter deactivates the application.
func (c *ApplicationsClient) Deactivate(ctx context.Context, applicationID string) error {
	if applicationID == "" {
		return fusionauth.ErrApplicationIDRequired
	}

	req := c.client.newRequest(restclient.MethodDelete, "/api/application")
	req.WithURISegment(applicationID)

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("deactivating application: %w", err)
	}

	return nil
}

// Reactivate implements fusionauth.ApplicationsClient.Reactivate.
func (c *ApplicationsClient) Reactivate(ctx context.Context, applicationID string) (*fusionauth.ApplicationResponse, error) {
	if applicationID == "" {
		return nil, fusionauth.ErrApplicationIDRequired
	}

	req := c.client.newRequest(restclient.MethodPut, "/api/application")
	req.WithURISegment(applicationID).WithParameter("reactivate", "true")

	var response fusionauth.ApplicationResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("reactivating application: %w", err)
	}

	return &response, nil
}

// Delete implements fusionauth.ApplicationsClient.Delete.
func (c *ApplicationsClient) Delete(ctx context.Context, applicationID string) error {
	if applicationID == "" {
		return fusionauth.ErrApplicationIDRequired
	}

	req := c.client.newRequest(restclient.MethodDelete, "/api/application")
	req.WithURISegment(applicationID).WithParameter("hardDelete", "true")

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}

	return nil
}
