package client

import (
	"context"
	"fmt"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/fusionauth-community/go-client/pkg/restclient"
)

// SystemClient implements fusionauth.SystemClient.
type SystemClient struct {
	client *Client
}

// NewSystemClient creates a new system client.
func NewSystemClient(client *Client) *SystemClient {
	return &SystemClient{client: client}
}

// Status implements fusionauth.SystemClient.Status. The report shape
// varies by deployment, so the parsed body is handed back as is.
func (c *SystemClient) Status(ctx context.Context) (*restclient.Document, error) {
	req := c.client.newRequest(restclient.MethodGet, "/api/status")

	response, err := c.client.doRaw(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("retrieving status: %w", err)
	}

	return response.SuccessBody, nil
}

// Version implements fusionauth.SystemClient.Version.
func (c *SystemClient) Version(ctx context.Context) (*fusionauth.VersionResponse, error) {
	req := c.client.newRequest(restclient.MethodGet, "/api/system/version")

	var response fusionauth.VersionResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("retrieving version: %w", err)
	}

	return &response, nil
}
