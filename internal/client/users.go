package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/fusionauth-community/go-client/pkg/restclient"
)

// UsersClient implements fusionauth.UsersClient.
type UsersClient struct {
	client *Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(client *Client) *UsersClient {
	return &UsersClient{client: client}
}

// Create implements fusionauth.UsersClient.Create. An empty userID lets
// the server generate one.
func (c *UsersClient) Create(ctx context.Context, userID string, request *fusionauth.UserRequest) (*fusionauth.UserResponse, error) {
	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/api/user")
	req.WithURISegment(userID).WithJSONBody(request)

	var response fusionauth.UserResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &response, nil
}

// Retrieve implements fusionauth.UsersClient.Retrieve.
func (c *UsersClient) Retrieve(ctx context.Context, userID string) (*fusionauth.UserResponse, error) {
	if userID == "" {
		return nil, fusionauth.ErrUserIDRequired
	}

	req := c.client.newRequest(restclient.MethodGet, "/api/user")
	req.WithURISegment(userID)

	var response fusionauth.UserResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("retrieving user: %w", err)
	}

	return &response, nil
}

// RetrieveByEmail implements fusionauth.UsersClient.RetrieveByEmail.
func (c *UsersClient) RetrieveByEmail(ctx context.Context, email string) (*fusionauth.UserResponse, error) {
	if email == "" {
		return nil, fusionauth.ErrEmailRequired
	}

	req := c.client.newRequest(restclient.MethodGet, "/api/user")
	req.WithParameter("email", email)

	var response fusionauth.UserResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("retrieving user by email: %w", err)
	}

	return &response, nil
}

// RetrieveByUsername implements fusionauth.UsersClient.RetrieveByUsername.
func (c *UsersClient) RetrieveByUsername(ctx context.Context, username string) (*fusionauth.UserResponse, error) {
	if username == "" {
		return nil, fusionauth.ErrUsernameRequired
	}

	req := c.client.newRequest(restclient.MethodGet, "/api/user")
	req.WithParameter("username", username)

	var response fusionauth.UserResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("retrieving user by username: %w", err)
	}

	return &response, nil
}

// Update implements fusionauth.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, userID string, request *fusionauth.UserRequest) (*fusionauth.UserResponse, error) {
	if userID == "" {
		return nil, fusionauth.ErrUserIDRequired
	}

	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPut, "/api/user")
	req.WithURISegment(userID).WithJSONBody(request)

	var response fusionauth.UserResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return &response, nil
}

// Deactivate implements fusionauth.UsersClient.Deactivate. A delete
// without the hardDelete parameter deactivates the account.
func (c *UsersClient) Deactivate(ctx context.Context, userID string) error {
	if userID == "" {
		return fusionauth.ErrUserIDRequired
	}

	req := c.client.newRequest(restclient.MethodDelete, "/api/user")
	req.WithURISegment(userID)

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("deactivating user: %w", err)
	}

	return nil
}

// Reactivate implements fusionauth.UsersClient.Reactivate.
func (c *UsersClient) Reactivate(ctx context.Context, userID string) (*fusionauth.UserResponse, error) {
	if userID == "" {
		return nil, fusionauth.ErrUserIDRequired
	}

	req := c.client.newRequest(restclient.MethodPut, "/api/user")
	req.WithURISegment(userID).WithParameter("reactivate", "true")

	var response fusionauth.UserResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("reactivating user: %w", err)
	}

	return &response, nil
}

// Delete implements fusionauth.UsersClient.Delete. The hardDelete
// parameter is always sent so the server never falls back to its own
// default.
func (c *UsersClient) Delete(ctx context.Context, userID string, hardDelete bool) error {
	if userID == "" {
		return fusionauth.ErrUserIDRequired
	}

	req := c.client.newRequest(restclient.MethodDelete, "/api/user")
	req.WithURISegment(userID).WithParameter("hardDelete", strconv.FormatBool(hardDelete))

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

// BulkDeactivate implements fusionauth.UsersClient.BulkDeactivate.
func (c *UsersClient) BulkDeactivate(ctx context.Context, userIDs []string) error {
	if len(userIDs) == 0 {
		return fusionauth.ErrUserIDsRequired
	}

	req := c.client.newRequest(restclient.MethodDelete, "/api/user/bulk")
	req.WithParameters("userId", userIDs).WithParameter("hardDelete", "false")

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("deactivating users: %w", err)
	}

	return nil
}

// BulkDelete implements fusionauth.UsersClient.BulkDelete.
func (c *UsersClient) BulkDelete(ctx context.Context, userIDs []string) error {
	if len(userIDs) == 0 {
		return fusionauth.ErrUserIDsRequired
	}

	req := c.client.newRequest(restclient.MethodDelete, "/api/user/bulk")
	req.WithParameters("userId", userIDs).WithParameter("hardDelete", "true")

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("deleting users: %w", err)
	}

	return nil
}

// Search implements fusionauth.UsersClient.Search.
func (c *UsersClient) Search(ctx context.Context, request *fusionauth.SearchRequest) (*fusionauth.SearchResponse, error) {
	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/api/user/search")
	req.WithJSONBody(request)

	var response fusionauth.SearchResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}

	return &response, nil
}

// Import implements fusionauth.UsersClient.Import.
func (c *UsersClient) Import(ctx context.Context, request *fusionauth.ImportRequest) error {
	if request == nil {
		return fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/api/user/import")
	req.WithJSONBody(request)

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("importing users: %w", err)
	}

	return nil
}
