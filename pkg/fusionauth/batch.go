package fusionauth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fusionauth-community/go-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedResourceType    = errors.New("unsupported resource type")
	ErrUnsupportedOperationType   = errors.New("unsupported operation type")
	ErrInvalidDataTypeUser        = errors.New("invalid data type for user operation")
	ErrInvalidDataTypeApplication = errors.New("invalid data type for application operation")
	ErrInvalidDataTypeTenant      = errors.New("invalid data type for tenant operation")
	ErrInvalidDataTypeGroup       = errors.New("invalid data type for group operation")
)

// BatchOperation represents a single operation in a batch.
type BatchOperation struct {
	ID       string
	Type     string // "create", "update", "delete", "retrieve"
	Resource string // "user", "application", "tenant", "group"
	Data     interface{}
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// UpdateDataWrapper carries the resource ID alongside the update request
// in a BatchOperation's Data field.
type UpdateDataWrapper[T any] struct {
	ID      string
	Request *T
}

// ResourceClientOps defines the operations shared by batchable resource
// clients. Batched creates always let the server generate the resource ID.
type ResourceClientOps[TRequest, TResponse any] interface {
	Create(ctx context.Context, id string, request *TRequest) (*TResponse, error)
	Retrieve(ctx context.Context, id string) (*TResponse, error)
	Update(ctx context.Context, id string, request *TRequest) (*TResponse, error)
	Delete(ctx context.Context, id string) error
}

// runResourceOperation resolves one batch operation against a resource
// client, type-checking the operation data before dispatch.
func runResourceOperation[TRequest, TResponse any](
	ctx context.Context,
	operation BatchOperation,
	client ResourceClientOps[TRequest, TResponse],
	invalidDataErr error,
) (interface{}, error) {
	switch operation.Type {
	case constants.OperationCreate:
		request, ok := operation.Data.(*TRequest)
		if !ok {
			return nil, fmt.Errorf("%w create", invalidDataErr)
		}

		return client.Create(ctx, "", request)
	case constants.OperationUpdate:
		wrapper, ok := operation.Data.(*UpdateDataWrapper[TRequest])
		if !ok {
			return nil, fmt.Errorf("%w update", invalidDataErr)
		}

		return client.Update(ctx, wrapper.ID, wrapper.Request)
	case constants.OperationDelete:
		resourceID, ok := operation.Data.(string)
		if !ok {
			return nil, fmt.Errorf("%w delete", invalidDataErr)
		}

		return nil, client.Delete(ctx, resourceID)
	case constants.OperationRetrieve:
		resourceID, ok := operation.Data.(string)
		if !ok {
			return nil, fmt.Errorf("%w retrieve", invalidDataErr)
		}

		return client.Retrieve(ctx, resourceID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type)
	}
}

// BatchExecutor runs independent operations against a shared client with
// bounded concurrency.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultBatchTimeout,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations and returns results in operation
// order. The returned error covers executor failures only; an operation
// that fails reports through its BatchResult.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		index, operation := index, operation // per-iteration copies; needed while go.mod targets <1.22

		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			// Each operation gets its own deadline
			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.run(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}()
	}

	waitGroup.Wait()

	return results, nil
}

// run dispatches a single operation to the client for its resource.
func (b *BatchExecutor) run(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	var (
		data interface{}
		err  error
	)

	switch operation.Resource {
	case "user":
		data, err = b.runUserOperation(ctx, operation)
	case "application":
		data, err = runResourceOperation[ApplicationRequest, ApplicationResponse](ctx, operation, b.client.Applications(), ErrInvalidDataTypeApplication)
	case "tenant":
		data, err = runResourceOperation[TenantRequest, TenantResponse](ctx, operation, b.client.Tenants(), ErrInvalidDataTypeTenant)
	case "group":
		data, err = runResourceOperation[GroupRequest, GroupResponse](ctx, operation, b.client.Groups(), ErrInvalidDataTypeGroup)
	default:
		result.Error = fmt.Errorf("%w: %s", ErrUnsupportedResourceType, operation.Resource)

		return result
	}

	result.Success = err == nil
	result.Data = data
	result.Error = err

	return result
}

// runUserOperation resolves user operations. Users need their own
// handling because deletes take a hard delete flag, which batches always
// leave off so a failed batch never destroys accounts.
func (b *BatchExecutor) runUserOperation(ctx context.Context, operation BatchOperation) (interface{}, error) {
	users := b.client.Users()

	switch operation.Type {
	case constants.OperationCreate:
		request, ok := operation.Data.(*UserRequest)
		if !ok {
			return nil, fmt.Errorf("%w create", ErrInvalidDataTypeUser)
		}

		return users.Create(ctx, "", request)
	case constants.OperationUpdate:
		wrapper, ok := operation.Data.(*UpdateDataWrapper[UserRequest])
		if !ok {
			return nil, fmt.Errorf("%w update", ErrInvalidDataTypeUser)
		}

		return users.Update(ctx, wrapper.ID, wrapper.Request)
	case constants.OperationDelete:
		userID, ok := operation.Data.(string)
		if !ok {
			return nil, fmt.Errorf("%w delete", ErrInvalidDataTypeUser)
		}

		return nil, users.Delete(ctx, userID, false)
	case constants.OperationRetrieve:
		userID, ok := operation.Data.(string)
		if !ok {
			return nil, fmt.Errorf("%w retrieve", ErrInvalidDataTypeUser)
		}

		return users.Retrieve(ctx, userID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type)
	}
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{}
}

func (b *BatchBuilder) add(operationType, resource, id string, data interface{}) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     operationType,
		Resource: resource,
		Data:     data,
	})

	return b
}

// AddCreateUser adds a user creation operation.
func (b *BatchBuilder) AddCreateUser(id string, request *UserRequest) *BatchBuilder {
	return b.add(constants.OperationCreate, "user", id, request)
}

// AddUpdateUser adds an update operation for the given user ID.
func (b *BatchBuilder) AddUpdateUser(id, userID string, request *UserRequest) *BatchBuilder {
	return b.add(constants.OperationUpdate, "user", id, &UpdateDataWrapper[UserRequest]{ID: userID, Request: request})
}

// AddDeleteUser adds a user deletion operation.
func (b *BatchBuilder) AddDeleteUser(id, userID string) *BatchBuilder {
	return b.add(constants.OperationDelete, "user", id, userID)
}

// AddRetrieveUser adds a user retrieve operation.
func (b *BatchBuilder) AddRetrieveUser(id, userID string) *BatchBuilder {
	return b.add(constants.OperationRetrieve, "user", id, userID)
}

// AddCreateApplication adds an application creation operation.
func (b *BatchBuilder) AddCreateApplication(id string, request *ApplicationRequest) *BatchBuilder {
	return b.add(constants.OperationCreate, "application", id, request)
}

// AddUpdateApplication adds an update operation for the given application ID.
func (b *BatchBuilder) AddUpdateApplication(id, applicationID string, request *ApplicationRequest) *BatchBuilder {
	return b.add(constants.OperationUpdate, "application", id, &UpdateDataWrapper[ApplicationRequest]{ID: applicationID, Request: request})
}

// AddDeleteApplication adds an application deletion operation.
func (b *BatchBuilder) AddDeleteApplication(id, applicationID string) *BatchBuilder {
	return b.add(constants.OperationDelete, "application", id, applicationID)
}

// AddCreateTenant adds a tenant creation operation.
func (b *BatchBuilder) AddCreateTenant(id string, request *TenantRequest) *BatchBuilder {
	return b.add(constants.OperationCreate, "tenant", id, request)
}

// AddCreateGroup adds a group creation operation.
func (b *BatchBuilder) AddCreateGroup(id string, request *GroupRequest) *BatchBuilder {
	return b.add(constants.OperationCreate, "group", id, request)
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}
