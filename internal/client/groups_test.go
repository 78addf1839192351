package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
)

func TestGroupsClient_Create(t *testing.T) {
	tests := []TestCreateOperation[fusionauth.GroupRequest, fusionauth.GroupResponse]{
		{
			Name: "successful create with client-chosen ID",
			ID:   "group-123",
			Request: &fusionauth.GroupRequest{
				Group:   fusionauth.Group{Name: "Admins"},
				RoleIDs: []string{"role-1"},
			},
			ExpectedPath: "/api/group/group-123",
			StatusCode:   http.StatusOK,
			Response: &fusionauth.GroupResponse{
				Group: fusionauth.Group{ID: "group-123", Name: "Admins"},
			},
		},
		{
			Name: "successful create with server-generated ID",
			Request: &fusionauth.GroupRequest{
				Group: fusionauth.Group{Name: "Editors"},
			},
			ExpectedPath: "/api/group",
			StatusCode:   http.StatusOK,
			Response: &fusionauth.GroupResponse{
				Group: fusionauth.Group{ID: "generated-id", Name: "Editors"},
			},
		},
		{
			Name:       "nil request",
			WantErr:    true,
			ErrMessage: "request is required",
		},
	}

	RunCreateTests(t, tests, func(client *Client) func(context.Context, string, *fusionauth.GroupRequest) (*fusionauth.GroupResponse, error) {
		return client.Groups().Create
	}, decodeJSONRequest[fusionauth.GroupRequest])
}

func TestGroupsClient_Retrieve(t *testing.T) {
	tests := []TestGetOperation[fusionauth.GroupResponse]{
		{
			Name:         "successful retrieve",
			ID:           "group-123",
			ExpectedPath: "/api/group/group-123",
			StatusCode:   http.StatusOK,
			Response: &fusionauth.GroupResponse{
				Group: fusionauth.Group{ID: "group-123", Name: "Admins"},
			},
		},
		{
			Name:         "group not found",
			ID:           "missing-group",
			ExpectedPath: "/api/group/missing-group",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "status 404",
		},
	}

	RunGetTests(t, tests, func(client *Client) func(context.Context, string) (*fusionauth.GroupResponse, error) {
		return client.Groups().Retrieve
	})
}

func TestGroupsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/group", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fusionauth.GroupResponse{
			Groups: []fusionauth.Group{
				{ID: "group-1", Name: "Admins"},
				{ID: "group-2", Name: "Editors"},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	response, err := client.Groups().List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Len(t, response.Groups, 2)
}

func TestGroupsClient_Update(t *testing.T) {
	tests := []TestUpdateOperation[fusionauth.GroupRequest, fusionauth.GroupResponse]{
		{
			Name: "successful update",
			ID:   "group-123",
			Request: &fusionauth.GroupRequest{
				Group: fusionauth.Group{Name: "Administrators"},
			},
			ExpectedPath: "/api/group/group-123",
			StatusCode:   http.StatusOK,
			Response: &fusionauth.GroupResponse{
				Group: fusionauth.Group{ID: "group-123", Name: "Administrators"},
			},
		},
	}

	RunUpdateTests(t, tests, func(client *Client) func(context.Context, string, *fusionauth.GroupRequest) (*fusionauth.GroupResponse, error) {
		return client.Groups().Update
	}, decodeJSONRequest[fusionauth.GroupRequest])
}

func TestGroupsClient_Delete(t *testing.T) {
	tests := []TestDeleteOperation{
		{
			Name:         "successful delete",
			ID:           "group-123",
			ExpectedPath: "/api/group/group-123",
			StatusCode:   http.StatusOK,
		},
	}

	RunDeleteTests(t, tests, func(client *Client) func(context.Context, string) error {
		return client.Groups().Delete
	})
}

func TestGroupsClient_AddMembers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/group/member", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body fusionauth.MemberRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Members["group-123"], 2)
		assert.Equal(t, "user-1", body.Members["group-123"][0].UserID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fusionauth.MemberResponse{
			Members: map[string][]fusionauth.GroupMember{
				"group-123": {
					{ID: "member-1", UserID: "user-1"},
					{ID: "member-2", UserID: "user-2"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	response, err := client.Groups().AddMembers(context.Background(), &fusionauth.MemberRequest{
		Members: map[string][]fusionauth.GroupMember{
			"group-123": {
				{UserID: "user-1"},
				{UserID: "user-2"},
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Len(t, response.Members["group-123"], 2)
}

func TestGroupsClient_RemoveMembers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/group/member", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		// The membership selection travels in the request body.
		var body fusionauth.MemberDeleteRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"user-1"}, body.Members["group-123"])
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Groups().RemoveMembers(context.Background(), &fusionauth.MemberDeleteRequest{
		Members: map[string][]string{"group-123": {"user-1"}},
	})
	require.NoError(t, err)
}

func TestGroupsClient_RequiredArguments(t *testing.T) {
	client := NewTestClient("http://localhost:9011")
	ctx := context.Background()

	_, err := client.Groups().Retrieve(ctx, "")
	require.ErrorIs(t, err, fusionauth.ErrGroupIDRequired)

	_, err = client.Groups().Update(ctx, "", &fusionauth.GroupRequest{})
	require.ErrorIs(t, err, fusionauth.ErrGroupIDRequired)

	err = client.Groups().Delete(ctx, "")
	require.ErrorIs(t, err, fusionauth.ErrGroupIDRequired)

	_, err = client.Groups().AddMembers(ctx, nil)
	require.ErrorIs(t, err, fusionauth.ErrRequestRequired)

	err = client.Groups().RemoveMembers(ctx, nil)
	require.ErrorIs(t, err, fusionauth.ErrRequestRequired)
}
