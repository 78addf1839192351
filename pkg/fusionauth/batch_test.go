package fusionauth_test

import (
	"context"
	"testing"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClient implements fusionauth.Client for testing
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Users() fusionauth.UsersClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(fusionauth.UsersClient)
}

func (m *MockClient) Applications() fusionauth.ApplicationsClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(fusionauth.ApplicationsClient)
}

func (m *MockClient) Tenants() fusionauth.TenantsClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(fusionauth.TenantsClient)
}

func (m *MockClient) Groups() fusionauth.GroupsClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(fusionauth.GroupsClient)
}

func (m *MockClient) Registrations() fusionauth.RegistrationsClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(fusionauth.RegistrationsClient)
}

func (m *MockClient) Auth() fusionauth.AuthClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(fusionauth.AuthClient)
}

func (m *MockClient) System() fusionauth.SystemClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(fusionauth.SystemClient)
}

func (m *MockClient) Metrics() *fusionauth.MetricsCollector {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*fusionauth.MetricsCollector)
}

// MockUsersClient implements fusionauth.UsersClient for testing
type MockUsersClient struct {
	mock.Mock
}

func (m *MockUsersClient) Create(ctx context.Context, userID string, request *fusionauth.UserRequest) (*fusionauth.UserResponse, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fusionauth.UserResponse), args.Error(1)
}

func (m *MockUsersClient) Retrieve(ctx context.Context, userID string) (*fusionauth.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fusionauth.UserResponse), args.Error(1)
}

func (m *MockUsersClient) RetrieveByEmail(ctx context.Context, email string) (*fusionauth.UserResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fusionauth.UserResponse), args.Error(1)
}

func (m *MockUsersClient) RetrieveByUsername(ctx context.Context, username string) (*fusionauth.UserResponse, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fusionauth.UserResponse), args.Error(1)
}

func (m *MockUsersClient) Update(ctx context.Context, userID string, request *fusionauth.UserRequest) (*fusionauth.UserResponse, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fusionauth.UserResponse), args.Error(1)
}

func (m *MockUsersClient) Deactivate(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUsersClient) Reactivate(ctx context.Context, userID string) (*fusionauth.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fusionauth.UserResponse), args.Error(1)
}

func (m *MockUsersClient) Delete(ctx context.Context, userID string, hardDelete bool) error {
	args := m.Called(ctx, userID, hardDelete)
	return args.Error(0)
}

func (m *MockUsersClient) BulkDeactivate(ctx context.Context, userIDs []string) error {
	args := m.Called(ctx, userIDs)
	return args.Error(0)
}

func (m *MockUsersClient) BulkDelete(ctx context.Context, userIDs []string) error {
	args := m.Called(ctx, userIDs)
	return args.Error(0)
}

func (m *MockUsersClient) Search(ctx context.Context, request *fusionauth.SearchRequest) (*fusionauth.SearchResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fusionauth.SearchResponse), args.Error(1)
}

func (m *MockUsersClient) Import(ctx context.Context, request *fusionauth.ImportRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// MockTenantsClient implements fusionauth.TenantsClient for testing
type MockTenantsClient struct {
	mock.Mock
}

func (m *MockTenantsClient) Create(ctx context.Context, tenantID string, request *fusionauth.TenantRequest) (*fusionauth.TenantResponse, error) {
	args := m.Called(ctx, tenantID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fusionauth.TenantResponse), args.Error(1)
}

func (m *MockTenantsClient) Retrieve(ctx context.Context, tenantID string) (*fusionauth.TenantResponse, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fusionauth.TenantResponse), args.Error(1)
}

func (m *MockTenantsClient) List(ctx context.Context) (*fusionauth.TenantResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fusionauth.TenantResponse), args.Error(1)
}

func (m *MockTenantsClient) Update(ctx context.Context, tenantID string, request *fusionauth.TenantRequest) (*fusionauth.TenantResponse, error) {
	args := m.Called(ctx, tenantID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fusionauth.TenantResponse), args.Error(1)
}

func (m *MockTenantsClient) Delete(ctx context.Context, tenantID string) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

func TestBatchExecutor_Execute(t *testing.T) {
	mockClient := &MockClient{}
	mockUsers := &MockUsersClient{}
	mockClient.On("Users").Return(mockUsers)

	executor := fusionauth.NewBatchExecutor(mockClient, 2)
	ctx := context.Background()

	// Set up mock expectations
	user1 := &fusionauth.UserResponse{
		User: fusionauth.User{ID: "user-1", Email: "one@example.com"},
	}
	user2 := &fusionauth.UserResponse{
		User: fusionauth.User{ID: "user-2", Email: "two@example.com"},
	}

	mockUsers.On("Retrieve", mock.Anything, "user-1").Return(user1, nil)
	mockUsers.On("Retrieve", mock.Anything, "user-2").Return(user2, nil)

	operations := []fusionauth.BatchOperation{
		{
			ID:       "op1",
			Type:     "retrieve",
			Resource: "user",
			Data:     "user-1",
		},
		{
			ID:       "op2",
			Type:     "retrieve",
			Resource: "user",
			Data:     "user-2",
		},
	}

	results, err := executor.Execute(ctx, operations)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Check results
	for _, result := range results {
		assert.True(t, result.Success)
		assert.NoError(t, result.Error)
		assert.NotNil(t, result.Data)
		assert.True(t, result.Duration > 0)
	}

	mockClient.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestBatchExecutor_WithCallback(t *testing.T) {
	mockClient := &MockClient{}
	mockUsers := &MockUsersClient{}
	mockClient.On("Users").Return(mockUsers)

	executor := fusionauth.NewBatchExecutor(mockClient, 1)
	ctx := context.Background()

	user := &fusionauth.UserResponse{
		User: fusionauth.User{ID: "user-1", Email: "one@example.com"},
	}
	mockUsers.On("Retrieve", mock.Anything, "user-1").Return(user, nil)

	var callbackCalled bool
	var callbackResult *fusionauth.BatchResult

	operation := fusionauth.BatchOperation{
		ID:       "op1",
		Type:     "retrieve",
		Resource: "user",
		Data:     "user-1",
		Callback: func(result *fusionauth.BatchResult) {
			callbackCalled = true
			callbackResult = result
		},
	}

	_, err := executor.Execute(ctx, []fusionauth.BatchOperation{operation})
	require.NoError(t, err)

	assert.True(t, callbackCalled)
	require.NotNil(t, callbackResult)
	assert.True(t, callbackResult.Success)
	assert.Equal(t, "op1", callbackResult.ID)

	mockClient.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestBatchExecutor_WithError(t *testing.T) {
	mockClient := &MockClient{}
	mockUsers := &MockUsersClient{}
	mockClient.On("Users").Return(mockUsers)

	executor := fusionauth.NewBatchExecutor(mockClient, 1)
	ctx := context.Background()

	mockUsers.On("Retrieve", mock.Anything, "user-1").Return(nil, fusionauth.ErrTest)

	operation := fusionauth.BatchOperation{
		ID:       "op1",
		Type:     "retrieve",
		Resource: "user",
		Data:     "user-1",
	}

	results, err := executor.Execute(ctx, []fusionauth.BatchOperation{operation})
	require.NoError(t, err) // Execute itself shouldn't fail
	assert.Len(t, results, 1)

	result := results[0]
	assert.False(t, result.Success)
	require.Error(t, result.Error)
	assert.ErrorIs(t, result.Error, fusionauth.ErrTest)

	mockClient.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestBatchExecutor_SoftDeletesUsers(t *testing.T) {
	mockClient := &MockClient{}
	mockUsers := &MockUsersClient{}
	mockClient.On("Users").Return(mockUsers)

	executor := fusionauth.NewBatchExecutor(mockClient, 1)

	// Batched deletes never hard delete
	mockUsers.On("Delete", mock.Anything, "user-1", false).Return(nil)

	operation := fusionauth.BatchOperation{
		ID:       "op1",
		Type:     "delete",
		Resource: "user",
		Data:     "user-1",
	}

	results, err := executor.Execute(context.Background(), []fusionauth.BatchOperation{operation})
	require.NoError(t, err)
	assert.True(t, results[0].Success)

	mockUsers.AssertExpectations(t)
}

func TestBatchExecutor_TenantOperations(t *testing.T) {
	mockClient := &MockClient{}
	mockTenants := &MockTenantsClient{}
	mockClient.On("Tenants").Return(mockTenants)

	executor := fusionauth.NewBatchExecutor(mockClient, 1)
	ctx := context.Background()

	request := &fusionauth.TenantRequest{
		Tenant: fusionauth.Tenant{Name: "Acme"},
	}
	response := &fusionauth.TenantResponse{
		Tenant: fusionauth.Tenant{ID: "tenant-1", Name: "Acme"},
	}

	// Batched creates let the server generate the ID
	mockTenants.On("Create", mock.Anything, "", request).Return(response, nil)
	mockTenants.On("Delete", mock.Anything, "tenant-2").Return(nil)

	operations := []fusionauth.BatchOperation{
		{
			ID:       "create-tenant",
			Type:     "create",
			Resource: "tenant",
			Data:     request,
		},
		{
			ID:       "delete-tenant",
			Type:     "delete",
			Resource: "tenant",
			Data:     "tenant-2",
		},
	}

	results, err := executor.Execute(ctx, operations)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	for _, result := range results {
		assert.True(t, result.Success)
		assert.NoError(t, result.Error)
	}

	mockClient.AssertExpectations(t)
	mockTenants.AssertExpectations(t)
}

func TestBatchExecutor_UnsupportedResource(t *testing.T) {
	mockClient := &MockClient{}
	executor := fusionauth.NewBatchExecutor(mockClient, 1)

	operation := fusionauth.BatchOperation{
		ID:       "op1",
		Type:     "retrieve",
		Resource: "webhook",
		Data:     "webhook-1",
	}

	results, err := executor.Execute(context.Background(), []fusionauth.BatchOperation{operation})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	result := results[0]
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Error, fusionauth.ErrUnsupportedResourceType)
}

func TestBatchExecutor_UnsupportedOperation(t *testing.T) {
	mockClient := &MockClient{}
	mockUsers := &MockUsersClient{}
	mockClient.On("Users").Return(mockUsers)

	executor := fusionauth.NewBatchExecutor(mockClient, 1)

	operation := fusionauth.BatchOperation{
		ID:       "op1",
		Type:     "merge",
		Resource: "user",
		Data:     "user-1",
	}

	results, err := executor.Execute(context.Background(), []fusionauth.BatchOperation{operation})
	require.NoError(t, err)

	result := results[0]
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Error, fusionauth.ErrUnsupportedOperationType)
}

func TestBatchExecutor_InvalidData(t *testing.T) {
	mockClient := &MockClient{}
	executor := fusionauth.NewBatchExecutor(mockClient, 1)

	// Create expects a *UserRequest, not a string
	operation := fusionauth.BatchOperation{
		ID:       "op1",
		Type:     "create",
		Resource: "user",
		Data:     "not a request",
	}

	results, err := executor.Execute(context.Background(), []fusionauth.BatchOperation{operation})
	require.NoError(t, err)

	result := results[0]
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Error, fusionauth.ErrInvalidDataTypeUser)
}

func TestBatchBuilder(t *testing.T) {
	builder := fusionauth.NewBatchBuilder()

	createReq := &fusionauth.UserRequest{
		User: fusionauth.User{Email: "new@example.com"},
	}
	updateReq := &fusionauth.UserRequest{
		User: fusionauth.User{Email: "updated@example.com"},
	}

	builder.
		AddCreateUser("create-1", createReq).
		AddUpdateUser("update-1", "user-1", updateReq).
		AddDeleteUser("delete-1", "user-2").
		AddRetrieveUser("retrieve-1", "user-3")

	operations := builder.Build()
	assert.Len(t, operations, 4)

	assert.Equal(t, "create-1", operations[0].ID)
	assert.Equal(t, "create", operations[0].Type)
	assert.Equal(t, "user", operations[0].Resource)

	assert.Equal(t, "update-1", operations[1].ID)
	assert.Equal(t, "update", operations[1].Type)

	assert.Equal(t, "delete-1", operations[2].ID)
	assert.Equal(t, "delete", operations[2].Type)

	assert.Equal(t, "retrieve-1", operations[3].ID)
	assert.Equal(t, "retrieve", operations[3].Type)
}

func TestBatchBuilder_UpdateWrapsID(t *testing.T) {
	request := &fusionauth.UserRequest{
		User: fusionauth.User{Email: "updated@example.com"},
	}

	operations := fusionauth.NewBatchBuilder().
		AddUpdateUser("update-1", "user-1", request).
		Build()

	require.Len(t, operations, 1)

	wrapper, ok := operations[0].Data.(*fusionauth.UpdateDataWrapper[fusionauth.UserRequest])
	require.True(t, ok)
	assert.Equal(t, "user-1", wrapper.ID)
	assert.Equal(t, request, wrapper.Request)
}
