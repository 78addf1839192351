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

func TestUsersClient_Create(t *testing.T) {
	tests := []TestCreateOperation[fusionauth.UserRequest, fusionauth.UserResponse]{
		{
			Name: "successful create with client-chosen ID",
			ID:   "user-123",
			Request: &fusionauth.UserRequest{
				User: fusionauth.User{Email: "jane@example.com", Password: "secret-password"},
			},
			ExpectedPath: "/api/user/user-123",
			StatusCode:   http.StatusOK,
			Response: &fusionauth.UserResponse{
				User: fusionauth.User{ID: "user-123", Email: "jane@example.com", Active: true},
			},
		},
		{
			Name: "successful create with server-generated ID",
			Request: &fusionauth.UserRequest{
				User: fusionauth.User{Email: "john@example.com", Password: "secret-password"},
			},
			ExpectedPath: "/api/user",
			StatusCode:   http.StatusOK,
			Response: &fusionauth.UserResponse{
				User: fusionauth.User{ID: "generated-id", Email: "john@example.com", Active: true},
			},
		},
		{
			Name: "duplicate email",
			Request: &fusionauth.UserRequest{
				User: fusionauth.User{Email: "taken@example.com", Password: "secret-password"},
			},
			ExpectedPath: "/api/user",
			StatusCode:   http.StatusBadRequest,
			Response: fieldErrorResponse(
				"user.email", "[duplicate]user.email", "A user with this email already exists."),
			WantErr:    true,
			ErrMessage: "status 400",
		},
		{
			Name:       "nil request",
			WantErr:    true,
			ErrMessage: "request is required",
		},
	}

	RunCreateTests(t, tests, func(client *Client) func(context.Context, string, *fusionauth.UserRequest) (*fusionauth.UserResponse, error) {
		return client.Users().Create
	}, decodeJSONRequest[fusionauth.UserRequest])
}

func TestUsersClient_Retrieve(t *testing.T) {
	tests := []TestGetOperation[fusionauth.UserResponse]{
		{
			Name:         "successful retrieve",
			ID:           "user-123",
			ExpectedPath: "/api/user/user-123",
			StatusCode:   http.StatusOK,
			Response: &fusionauth.UserResponse{
				User: fusionauth.User{ID: "user-123", Email: "jane@example.com"},
			},
		},
		{
			Name:         "user not found",
			ID:           "missing-user",
			ExpectedPath: "/api/user/missing-user",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "status 404",
		},
	}

	RunGetTests(t, tests, func(client *Client) func(context.Context, string) (*fusionauth.UserResponse, error) {
		return client.Users().Retrieve
	})
}

func TestUsersClient_RetrieveByEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "jane@example.com", r.URL.Query().Get("email"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fusionauth.UserResponse{
			User: fusionauth.User{ID: "user-123", Email: "jane@example.com"},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	response, err := client.Users().RetrieveByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, "user-123", response.User.ID)
}

func TestUsersClient_RetrieveByUsername(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "jdoe", r.URL.Query().Get("username"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fusionauth.UserResponse{
			User: fusionauth.User{ID: "user-123", Username: "jdoe"},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	response, err := client.Users().RetrieveByUsername(context.Background(), "jdoe")
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, "jdoe", response.User.Username)
}

func TestUsersClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/123", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-api-key", r.Header.Get("Authorization"))

		var body fusionauth.UserRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body.User.Email)
		assert.Equal(t, "Jane", body.User.FirstName)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fusionauth.UserResponse{
			User: fusionauth.User{
				ID:        "123",
				Email:     "jane@example.com",
				FirstName: "Jane",
				Active:    true,
			},
		})
	}))
	defer server.Close()

	client, err := New(&fusionauth.Config{BaseURL: server.URL, APIKey: "test-api-key"})
	require.NoError(t, err)

	response, err := client.Users().Update(context.Background(), "123", &fusionauth.UserRequest{
		User: fusionauth.User{Email: "jane@example.com", FirstName: "Jane"},
	})
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, "123", response.User.ID)
	assert.Equal(t, "jane@example.com", response.User.Email)
	assert.True(t, response.User.Active)
}

func TestUsersClient_Update_ValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/123", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(fieldErrorResponse(
			"user.email", "[duplicate]user.email", "A user with this email address already exists."))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	response, err := client.Users().Update(context.Background(), "123", &fusionauth.UserRequest{
		User: fusionauth.User{Email: "taken@example.com"},
	})
	require.Error(t, err)
	assert.Nil(t, response)

	var apiErr *fusionauth.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.NotNil(t, apiErr.Errors)
	require.Len(t, apiErr.Errors.FieldErrors["user.email"], 1)
	assert.Equal(t, "[duplicate]user.email", apiErr.Errors.FieldErrors["user.email"][0].Code)

	assert.True(t, fusionauth.IsValidation(err))
	assert.Contains(t, fusionauth.FieldErrors(err), "user.email")
}

func TestUsersClient_Update_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewTestClient(server.URL)

	response, err := client.Users().Update(context.Background(), "123", &fusionauth.UserRequest{
		User: fusionauth.User{Email: "jane@example.com"},
	})
	require.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "calling PUT /api/user")
}

func TestUsersClient_Deactivate(t *testing.T) {
	tests := []TestDeleteOperation{
		{
			Name:         "successful deactivate",
			ID:           "user-123",
			ExpectedPath: "/api/user/user-123",
			StatusCode:   http.StatusOK,
		},
		{
			Name:         "user not found",
			ID:           "missing-user",
			ExpectedPath: "/api/user/missing-user",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "status 404",
		},
	}

	RunDeleteTests(t, tests, func(client *Client) func(context.Context, string) error {
		return client.Users().Deactivate
	})
}

func TestUsersClient_Reactivate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/user-123", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "true", r.URL.Query().Get("reactivate"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fusionauth.UserResponse{
			User: fusionauth.User{ID: "user-123", Active: true},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	response, err := client.Users().Reactivate(context.Background(), "user-123")
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.True(t, response.User.Active)
}

func TestUsersClient_Delete(t *testing.T) {
	var queries []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/user-123", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		queries = append(queries, r.URL.RawQuery)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	require.NoError(t, client.Users().Delete(context.Background(), "user-123", true))
	require.NoError(t, client.Users().Delete(context.Background(), "user-123", false))

	// The flag is always sent explicitly, never left to the server default.
	assert.Equal(t, []string{"hardDelete=true", "hardDelete=false"}, queries)
}

func TestUsersClient_BulkDeactivate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/bulk", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, []string{"user-1", "user-2"}, r.URL.Query()["userId"])
		assert.Equal(t, "false", r.URL.Query().Get("hardDelete"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Users().BulkDeactivate(context.Background(), []string{"user-1", "user-2"})
	require.NoError(t, err)
}

func TestUsersClient_BulkDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/bulk", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, []string{"user-1", "user-2"}, r.URL.Query()["userId"])
		assert.Equal(t, "true", r.URL.Query().Get("hardDelete"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Users().BulkDelete(context.Background(), []string{"user-1", "user-2"})
	require.NoError(t, err)
}

func TestUsersClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/search", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body fusionauth.SearchRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "email:*@example.com", body.Search.QueryString)
		assert.Equal(t, 25, body.Search.NumberOfResults)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fusionauth.SearchResponse{
			Total: 2,
			Users: []fusionauth.User{
				{ID: "user-1", Email: "jane@example.com"},
				{ID: "user-2", Email: "john@example.com"},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	response, err := client.Users().Search(context.Background(), &fusionauth.SearchRequest{
		Search: fusionauth.SearchCriteria{QueryString: "email:*@example.com", NumberOfResults: 25},
	})
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, int64(2), response.Total)
	assert.Len(t, response.Users, 2)
}

func TestUsersClient_Import(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/import", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body fusionauth.ImportRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Users, 2)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Users().Import(context.Background(), &fusionauth.ImportRequest{
		Users: []fusionauth.User{
			{Email: "jane@example.com"},
			{Email: "john@example.com"},
		},
	})
	require.NoError(t, err)
}

func TestUsersClient_RequiredArguments(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name: "retrieve without ID",
			call: func() error {
				_, err := client.Users().Retrieve(ctx, "")

				return err
			},
			wantErr: fusionauth.ErrUserIDRequired,
		},
		{
			name: "retrieve by email without email",
			call: func() error {
				_, err := client.Users().RetrieveByEmail(ctx, "")

				return err
			},
			wantErr: fusionauth.ErrEmailRequired,
		},
		{
			name: "retrieve by username without username",
			call: func() error {
				_, err := client.Users().RetrieveByUsername(ctx, "")

				return err
			},
			wantErr: fusionauth.ErrUsernameRequired,
		},
		{
			name: "update without ID",
			call: func() error {
				_, err := client.Users().Update(ctx, "", &fusionauth.UserRequest{})

				return err
			},
			wantErr: fusionauth.ErrUserIDRequired,
		},
		{
			name: "update without request",
			call: func() error {
				_, err := client.Users().Update(ctx, "user-123", nil)

				return err
			},
			wantErr: fusionauth.ErrRequestRequired,
		},
		{
			name: "deactivate without ID",
			call: func() error {
				return client.Users().Deactivate(ctx, "")
			},
			wantErr: fusionauth.ErrUserIDRequired,
		},
		{
			name: "reactivate without ID",
			call: func() error {
				_, err := client.Users().Reactivate(ctx, "")

				return err
			},
			wantErr: fusionauth.ErrUserIDRequired,
		},
		{
			name: "delete without ID",
			call: func() error {
				return client.Users().Delete(ctx, "", true)
			},
			wantErr: fusionauth.ErrUserIDRequired,
		},
		{
			name: "bulk deactivate without IDs",
			call: func() error {
				return client.Users().BulkDeactivate(ctx, nil)
			},
			wantErr: fusionauth.ErrUserIDsRequired,
		},
		{
			name: "bulk delete without IDs",
			call: func() error {
				return client.Users().BulkDelete(ctx, nil)
			},
			wantErr: fusionauth.ErrUserIDsRequired,
		},
		{
			name: "search without request",
			call: func() error {
				_, err := client.Users().Search(ctx, nil)

				return err
			},
			wantErr: fusionauth.ErrRequestRequired,
		},
		{
			name: "import without request",
			call: func() error {
				return client.Users().Import(ctx, nil)
			},
			wantErr: fusionauth.ErrRequestRequired,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			require.ErrorIs(t, testCase.call(), testCase.wantErr)
		})
	}

	// Argument validation happens before any request is built or sent.
	assert.Zero(t, requests)
}
