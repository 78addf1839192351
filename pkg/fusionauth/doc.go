// Package fusionauth provides types, interfaces, and helpers for working
// with the FusionAuth API.
//
// # Overview
//
// The fusionauth package defines the domain types (e.g., User, Application,
// Tenant, Group) and the interfaces for resource-oriented clients (e.g.,
// UsersClient, AuthClient). A concrete implementation of these clients is
// provided by the faclient package, which wires configuration, transport,
// and authentication. Most consumers should import faclient to construct a
// client and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fusionauth-community/go-client/pkg/faclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := faclient.NewWithAPIKey(ctx, "https://auth.example.com", "api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Look up a user by email
//	  resp, err := cli.Users().RetrieveByEmail(ctx, "jane@example.com")
//	  if err != nil { log.Fatal(err) }
//	  _ = resp.User
//	}
//
// # Errors
//
// API errors are represented by APIError, which carries the HTTP status and
// the server's field and general error reports. Helpers such as IsNotFound,
// IsUnauthorized, and IsValidation make it easy to branch on common cases,
// and FieldErrors extracts per-field validation messages.
//
// # Interceptors and metrics
//
// The package includes generic building blocks such as request/response
// interceptors (for logging, custom headers, tenant scoping) and an
// HDR-histogram-backed MetricsCollector for per-endpoint latency. The
// faclient package composes these pieces for a sensible default client;
// applications with advanced needs can also use these primitives directly.
//
// # Batch operations
//
// BatchBuilder and BatchExecutor run many independent operations against
// the API with bounded concurrency, collecting per-operation results and
// durations:
//
//	ops := fusionauth.NewBatchBuilder().
//	  AddCreateUser("u1", &fusionauth.UserRequest{User: alice}).
//	  AddCreateUser("u2", &fusionauth.UserRequest{User: bob}).
//	  Build()
//	results, _ := fusionauth.NewBatchExecutor(cli, 3).Execute(ctx, ops)
//
// # Resources
//
// Resource clients follow a consistent CRUD-and-actions pattern across
// FusionAuth resources (Users, Applications, Tenants, Groups,
// Registrations) plus session-oriented clients for login, logout, JWT, and
// OAuth token exchange. See the individual interfaces in interfaces.go for
// the full surface area.
package fusionauth
