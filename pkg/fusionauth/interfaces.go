package fusionauth

import (
	"context"

	"github.com/fusionauth-community/go-client/pkg/restclient"
)

// UsersClient provides user management operations.
type UsersClient interface {
	// Create creates a user. An empty userID lets the server generate one
	Create(ctx context.Context, userID string, request *UserRequest) (*UserResponse, error)

	// Retrieve fetches a user by ID
	Retrieve(ctx context.Context, userID string) (*UserResponse, error)

	// RetrieveByEmail fetches a user by email address
	RetrieveByEmail(ctx context.Context, email string) (*UserResponse, error)

	// RetrieveByUsername fetches a user by username
	RetrieveByUsername(ctx context.Context, username string) (*UserResponse, error)

	// Update replaces a user
	Update(ctx context.Context, userID string, request *UserRequest) (*UserResponse, error)

	// Deactivate soft-deletes a user, keeping the account recoverable
	Deactivate(ctx context.Context, userID string) error

	// Reactivate restores a deactivated user
	Reactivate(ctx context.Context, userID string) (*UserResponse, error)

	// Delete removes a user. With hardDelete the account and all of its
	// data are permanently erased
	Delete(ctx context.Context, userID string, hardDelete bool) error

	// BulkDeactivate soft-deletes several users in one call
	BulkDeactivate(ctx context.Context, userIDs []string) error

	// BulkDelete permanently removes several users in one call
	BulkDelete(ctx context.Context, userIDs []string) error

	// Search finds users matching the criteria
	Search(ctx context.Context, request *SearchRequest) (*SearchResponse, error)

	// Import bulk-imports users
	Import(ctx context.Context, request *ImportRequest) error
}

// ApplicationsClient provides application management operations.
type ApplicationsClient interface {
	// Create creates an application. An empty applicationID lets the
	// server generate one
	Create(ctx context.Context, applicationID string, request *ApplicationRequest) (*ApplicationResponse, error)

	// Retrieve fetches an application by ID
	Retrieve(ctx context.Context, applicationID string) (*ApplicationResponse, error)

	// List fetches all applications
	List(ctx context.Context) (*ApplicationResponse, error)

	// Update replaces an application
	Update(ctx context.Context, applicationID string, request *ApplicationRequest) (*ApplicationResponse, error)

	// Deactivate soft-deletes an application
	Deactivate(ctx context.Context, applicationID string) error

	// Reactivate restores a deactivated application
	Reactivate(ctx context.Context, applicationID string) (*ApplicationResponse, error)

	// Delete permanently removes an application
	Delete(ctx context.Context, applicationID string) error
}

// TenantsClient provides tenant management operations.
type TenantsClient interface {
	// Create creates a tenant. An empty tenantID lets the server generate one
	Create(ctx context.Context, tenantID string, request *TenantRequest) (*TenantResponse, error)

	// Retrieve fetches a tenant by ID
	Retrieve(ctx context.Context, tenantID string) (*TenantResponse, error)

	// List fetches all tenants
	List(ctx context.Context) (*TenantResponse, error)

	// Update replaces a tenant
	Update(ctx context.Context, tenantID string, request *TenantRequest) (*TenantResponse, error)

	// Delete permanently removes a tenant
	Delete(ctx context.Context, tenantID string) error
}

// GroupsClient provides group management operations.
type GroupsClient interface {
	// Create creates a group. An empty groupID lets the server generate one
	Create(ctx context.Context, groupID string, request *GroupRequest) (*GroupResponse, error)

	// Retrieve fetches a group by ID
	Retrieve(ctx context.Context, groupID string) (*GroupResponse, error)

	// List fetches all groups
	List(ctx context.Context) (*GroupResponse, error)

	// Update replaces a group
	Update(ctx context.Context, groupID string, request *GroupRequest) (*GroupResponse, error)

	// Delete permanently removes a group
	Delete(ctx context.Context, groupID string) error

	// AddMembers adds users to groups
	AddMembers(ctx context.Context, request *MemberRequest) (*MemberResponse, error)

	// RemoveMembers removes users from groups
	RemoveMembers(ctx context.Context, request *MemberDeleteRequest) error
}

// RegistrationsClient provides user registration operations.
type RegistrationsClient interface {
	// Register registers a user with an application. An empty userID lets
	// the server create the user from the request in the same call
	Register(ctx context.Context, userID string, request *RegistrationRequest) (*RegistrationResponse, error)

	// Retrieve fetches one user's registration for one application
	Retrieve(ctx context.Context, userID, applicationID string) (*RegistrationResponse, error)

	// Update replaces a registration
	Update(ctx context.Context, userID string, request *RegistrationRequest) (*RegistrationResponse, error)

	// Delete removes one user's registration for one application
	Delete(ctx context.Context, userID, applicationID string) error
}

// AuthClient provides login, logout, token, and OAuth operations.
type AuthClient interface {
	// Login authenticates a user with login ID and password
	Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error)

	// Logout invalidates refresh tokens for the user of the given refresh
	// token. With global set, all of the user's sessions end
	Logout(ctx context.Context, global bool, refreshToken string) error

	// ExchangeOAuthCode trades an authorization code for tokens. The
	// client secret may be empty for public clients
	ExchangeOAuthCode(ctx context.Context, code, clientID, clientSecret, redirectURI string) (*AccessToken, error)

	// ClientCredentialsGrant obtains a token for a server-side client
	ClientCredentialsGrant(ctx context.Context, clientID, clientSecret, scope string) (*AccessToken, error)

	// ExchangeRefreshToken trades a refresh token for a new access token
	ExchangeRefreshToken(ctx context.Context, refreshToken, clientID, clientSecret, scope string) (*AccessToken, error)

	// RefreshJWT exchanges a refresh token for a new JWT
	RefreshJWT(ctx context.Context, request *RefreshRequest) (*RefreshResponse, error)

	// ValidateJWT checks a JWT signature and expiry and returns its claims
	ValidateJWT(ctx context.Context, encodedJWT string) (*ValidateResponse, error)
}

// SystemClient provides server status and version operations.
type SystemClient interface {
	// Status fetches the server health report. The shape of the report is
	// deployment specific, so it is returned as a navigable document
	Status(ctx context.Context) (*restclient.Document, error)

	// Version fetches the server version
	Version(ctx context.Context) (*VersionResponse, error)
}
