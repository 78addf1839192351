package client

import (
	"context"
	"fmt"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/fusionauth-community/go-client/pkg/restclient"
)

// RegistrationsClient implements fusionauth.RegistrationsClient.
type RegistrationsClient struct {
	client *Client
}

// NewRegistrationsClient creates a new registrations client.
func NewRegistrationsClient(client *Client) *RegistrationsClient {
	return &RegistrationsClient{client: client}
}

// Register implements fusionauth.RegistrationsClient.Register. An empty
// userID combined with a request carrying a user creates the account
// and the registration in one call.
func (c *RegistrationsClient) Register(ctx context.Context, userID string, request *fusionauth.RegistrationRequest) (*fusionauth.RegistrationResponse, error) {
	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/api/user/registration")
	req.WithURISegment(userID).WithJSONBody(request)

	var response fusionauth.RegistrationResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	return &response, nil
}

// Retrieve implements fusionauth.RegistrationsClient.Retrieve.
func (c *RegistrationsClient) Retrieve(ctx context.Context, userID, applicationID string) (*fusionauth.RegistrationResponse, error) {
	if userID == "" {
		return nil, fusionauth.ErrUserIDRequired
	}

	if applicationID == "" {
		return nil, fusionauth.ErrApplicationIDRequired
	}

	req := c.client.newRequest(restclient.MethodGet, "/api/user/registration")
	req.WithURISegment(userID).WithURISegment(applicationID)

	var response fusionauth.RegistrationResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("retrieving registration: %w", err)
	}

	return &response, nil
}

// Update implements fusionauth.RegistrationsClient.Update. The target
// application comes from the registration in the request body.
func (c *RegistrationsClient) Update(ctx context.Context, userID string, request *fusionauth.RegistrationRequest) (*fusionauth.RegistrationResponse, error) {
	if userID == "" {
		return nil, fusionauth.ErrUserIDRequired
	}

	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPut, "/api/user/registration")
	req.WithURISegment(userID).WithJSONBody(request)

	var response fusionauth.RegistrationResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("updating registration: %w", err)
	}

	return &response, nil
}

// Delete implements fusionauth.RegistrationsClient.Delete.
func (c *RegistrationsClient) Delete(ctx context.Context, userID, applicationID string) error {
	if userID == "" {
		return fusionauth.ErrUserIDRequired
	}

	if applicationID == "" {
		return fusionauth.ErrApplicationIDRequired
	}

	req := c.client.newRequest(restclient.MethodDelete, "/api/user/registration")
	req.WithURISegment(userID).WithURISegment(applicationID)

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("deleting registration: %w", err)
	}

	return nil
}
