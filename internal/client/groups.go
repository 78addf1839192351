package client

import (
	"context"
	"fmt"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/fusionauth-community/go-client/pkg/restclient"
)

// GroupsClient implements fusionauth.GroupsClient.
type GroupsClient struct {
	client *Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(client *Client) *GroupsClient {
	return &GroupsClient{client: client}
}

// Create implements fusionauth.GroupsClient.Create. An empty groupID
// lets the server generate one.
func (c *GroupsClient) Create(ctx context.Context, groupID string, request *fusionauth.GroupRequest) (*fusionauth.GroupResponse, error) {
	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/api/group")
	req.WithURISegment(groupID).WithJSONBody(request)

	var response fusionauth.GroupResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	return &response, nil
}

// Retrieve implements fusionauth.GroupsClient.Retrieve.
func (c *GroupsClient) Retrieve(ctx context.Context, groupID string) (*fusionauth.GroupResponse, error) {
	if groupID == "" {
		return nil, fusionauth.ErrGroupIDRequired
	}

	req := c.client.newRequest(restclient.MethodGet, "/api/group")
	req.WithURISegment(groupID)

	var response fusionauth.GroupResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("retrieving group: %w", err)
	}

	return &response, nil
}

// List implements fusionauth.GroupsClient.List. Without an ID segment
// the server returns every group.
func (c *GroupsClient) List(ctx context.Context) (*fusionauth.GroupResponse, error) {
	req := c.client.newRequest(restclient.MethodGet, "/api/group")

	var response fusionauth.GroupResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	return &response, nil
}

// Update implements fusionauth.GroupsClient.Update.
func (c *GroupsClient) Update(ctx context.Context, groupID string, request *fusionauth.GroupRequest) (*fusionauth.GroupResponse, error) {
	if groupID == "" {
		return nil, fusionauth.ErrGroupIDRequired
	}

	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPut, "/api/group")
	req.WithURISegment(groupID).WithJSONBody(request)

	var response fusionauth.GroupResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("updating group: %w", err)
	}

	return &response, nil
}

// Delete implements fusionauth.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, groupID string) error {
	if groupID == "" {
		return fusionauth.ErrGroupIDRequired
	}

	req := c.client.newRequest(restclient.MethodDelete, "/api/group")
	req.WithURISegment(groupID)

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	return nil
}

// AddMembers implements fusionauth.GroupsClient.AddMembers.
func (c *GroupsClient) AddMembers(ctx context.Context, request *fusionauth.MemberRequest) (*fusionauth.MemberResponse, error) {
	if request == nil {
		return nil, fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodPost, "/api/group/member")
	req.WithJSONBody(request)

	var response fusionauth.MemberResponse

	err := c.client.do(ctx, req, &response)
	if err != nil {
		return nil, fmt.Errorf("adding group members: %w", err)
	}

	return &response, nil
}

// RemoveMembers implements fusionauth.GroupsClient.RemoveMembers. The
// membership selection travels in the request body of the delete.
func (c *GroupsClient) RemoveMembers(ctx context.Context, request *fusionauth.MemberDeleteRequest) error {
	if request == nil {
		return fusionauth.ErrRequestRequired
	}

	req := c.client.newRequest(restclient.MethodDelete, "/api/group/member")
	req.WithJSONBody(request)

	err := c.client.do(ctx, req, nil)
	if err != nil {
		return fmt.Errorf("removing group members: %w", err)
	}

	return nil
}
