package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
)

// NewTestClient creates a client for the given test server URL with no
// credentials configured.
func NewTestClient(baseURL string) *Client {
	client := &Client{
		config:       &fusionauth.Config{BaseURL: baseURL},
		baseURL:      baseURL,
		interceptors: fusionauth.NewInterceptorChain(),
	}

	client.initializeResourceClients()

	return client
}

// TestCreateOperation represents a generic create operation test case.
// ID is the optional client-chosen ID appended to the route.
type TestCreateOperation[TRequest, TResponse any] struct {
	Name         string
	ID           string
	Request      *TRequest
	ExpectedPath string
	StatusCode   int
	Response     interface{} // Can be *TResponse or an error report map
	WantErr      bool
	ErrMessage   string
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrMessage   string
}

// TestUpdateOperation represents a generic update operation test case.
type TestUpdateOperation[TRequest, TResponse any] struct {
	Name         string
	ID           string
	Request      *TRequest
	ExpectedPath string
	StatusCode   int
	Response     interface{} // Can be *TResponse or an error report map
	WantErr      bool
	ErrMessage   string
}

// TestDeleteOperation represents a generic delete operation test case.
// ExpectedQuery is compared against the raw query, so an empty value
// asserts the request carried no query string at all.
type TestDeleteOperation struct {
	Name          string
	ID            string
	ExpectedPath  string
	ExpectedQuery string
	StatusCode    int
	WantErr       bool
	ErrMessage    string
}

// expectedRoute describes the single request a stub server expects.
type expectedRoute struct {
	method     string
	path       string
	query      string
	checkQuery bool
}

// stubHandler checks the incoming request against the expected route,
// hands it to onRequest when set, then replies with the given status
// and JSON payload. The handler runs outside the test goroutine, so it
// records failures with assert instead of require.
func stubHandler(t *testing.T, route expectedRoute, statusCode int, payload interface{}, onRequest func(*http.Request)) http.HandlerFunc {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, route.method, request.Method)
		assert.Equal(t, route.path, request.URL.Path)

		if route.checkQuery {
			assert.Equal(t, route.query, request.URL.RawQuery)
		}

		if onRequest != nil {
			onRequest(request)
		}

		if payload == nil {
			writer.WriteHeader(statusCode)

			return
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(statusCode)
		_ = json.NewEncoder(writer).Encode(payload)
	}
}

// decodeHook adapts a request decoder into a stub handler hook. A nil
// decoder produces a nil hook, which skips body inspection.
func decodeHook[TRequest any](t *testing.T, requestDecoder func(*http.Request) (*TRequest, error)) func(*http.Request) {
	t.Helper()

	if requestDecoder == nil {
		return nil
	}

	return func(request *http.Request) {
		_, err := requestDecoder(request)
		assert.NoError(t, err)
	}
}

// checkOutcome applies the shared error expectations to an operation
// result.
func checkOutcome(t *testing.T, wantErr bool, errMessage string, err error) {
	t.Helper()

	if !wantErr {
		require.NoError(t, err)

		return
	}

	require.Error(t, err)

	if errMessage != "" {
		assert.Contains(t, err.Error(), errMessage)
	}
}

// RunCreateTests runs a series of create operation tests.
func RunCreateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestCreateOperation[TRequest, TResponse],
	createFunc func(*Client) func(context.Context, string, *TRequest) (*TResponse, error),
	requestDecoder func(*http.Request) (*TRequest, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			route := expectedRoute{method: http.MethodPost, path: testCase.ExpectedPath}
			server := httptest.NewServer(stubHandler(t, route, testCase.StatusCode, testCase.Response, decodeHook(t, requestDecoder)))
			defer server.Close()

			result, err := createFunc(NewTestClient(server.URL))(context.Background(), testCase.ID, testCase.Request)
			checkOutcome(t, testCase.WantErr, testCase.ErrMessage, err)

			if testCase.WantErr {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
			}
		})
	}
}

// RunGetTests runs a series of get operation tests. Error cases answer
// with a bare status and no body, the way FusionAuth reports missing
// resources.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			var payload interface{}
			if testCase.Response != nil {
				payload = testCase.Response
			}

			route := expectedRoute{method: http.MethodGet, path: testCase.ExpectedPath}
			server := httptest.NewServer(stubHandler(t, route, testCase.StatusCode, payload, nil))
			defer server.Close()

			result, err := getFunc(NewTestClient(server.URL))(context.Background(), testCase.ID)
			checkOutcome(t, testCase.WantErr, testCase.ErrMessage, err)

			if testCase.WantErr {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
			}
		})
	}
}

// RunUpdateTests runs a series of update operation tests.
func RunUpdateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestUpdateOperation[TRequest, TResponse],
	updateFunc func(*Client) func(context.Context, string, *TRequest) (*TResponse, error),
	requestDecoder func(*http.Request) (*TRequest, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			route := expectedRoute{method: http.MethodPut, path: testCase.ExpectedPath}
			server := httptest.NewServer(stubHandler(t, route, testCase.StatusCode, testCase.Response, decodeHook(t, requestDecoder)))
			defer server.Close()

			result, err := updateFunc(NewTestClient(server.URL))(context.Background(), testCase.ID, testCase.Request)
			checkOutcome(t, testCase.WantErr, testCase.ErrMessage, err)

			if testCase.WantErr {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
			}
		})
	}
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, string) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			route := expectedRoute{
				method:     http.MethodDelete,
				path:       testCase.ExpectedPath,
				query:      testCase.ExpectedQuery,
				checkQuery: true,
			}
			server := httptest.NewServer(stubHandler(t, route, testCase.StatusCode, nil, nil))
			defer server.Close()

			err := deleteFunc(NewTestClient(server.URL))(context.Background(), testCase.ID)
			checkOutcome(t, testCase.WantErr, testCase.ErrMessage, err)
		})
	}
}

// decodeJSONRequest decodes a JSON request body into TRequest, for use
// as a RunCreateTests or RunUpdateTests request decoder.
func decodeJSONRequest[TRequest any](request *http.Request) (*TRequest, error) {
	var body TRequest

	err := json.NewDecoder(request.Body).Decode(&body)
	if err != nil {
		return nil, fmt.Errorf("decoding request body: %w", err)
	}

	return &body, nil
}

// fieldErrorResponse builds a validation report with a single field
// error, shaped the way FusionAuth rejects invalid requests.
func fieldErrorResponse(field, code, message string) map[string]interface{} {
	return map[string]interface{}{
		"fieldErrors": map[string]interface{}{
			field: []map[string]interface{}{
				{"code": code, "message": message},
			},
		},
	}
}
