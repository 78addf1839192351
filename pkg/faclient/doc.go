// Package faclient provides the primary entry point for constructing a
// FusionAuth API client that implements the fusionauth.Client interface.
//
// It layers configuration validation and credential selection on top of
// the resource interfaces and types defined in the fusionauth package.
// Most applications should import faclient to build a client, then use
// the returned fusionauth.Client to access resource-specific clients,
// for example Users(), Applications(), Tenants(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fusionauth-community/go-client/pkg/faclient"
//	  "github.com/fusionauth-community/go-client/pkg/fusionauth"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Most deployments authenticate with an API key.
//	  cli, err := faclient.NewWithAPIKey(ctx, "https://auth.example.com", "api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or configure everything explicitly:
//	  cli, err = faclient.New(ctx, &fusionauth.Config{
//	    BaseURL:  "https://auth.example.com",
//	    APIKey:   "api-key",
//	    TenantID: "11e8a9ec-37ee-45a7-b0e0-a0c163e1f376",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  user, err := cli.Users().RetrieveByEmail(ctx, "jane@example.com")
//	  if err != nil { log.Fatal(err) }
//	  _ = user
//	}
//
// # Authentication
//
// When Config.APIKey is set it is sent verbatim in the Authorization
// header, which is how FusionAuth expects API keys. A Config.BearerToken
// is sent as "Bearer <token>" instead. NewAnonymous builds a client with
// no credentials at all for the endpoints that allow it, such as login
// and the status report.
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey,
// NewWithBearerToken, and NewAnonymous that wrap New with the
// appropriate configuration.
package faclient
