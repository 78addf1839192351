package fusionauth

// User represents a FusionAuth user account. Instant fields hold epoch
// milliseconds, matching the wire format.
type User struct {
	ID                        string                 `json:"id,omitempty"                        yaml:"id,omitempty"`
	TenantID                  string                 `json:"tenantId,omitempty"                  yaml:"tenantId,omitempty"`
	Active                    bool                   `json:"active,omitempty"                    yaml:"active,omitempty"`
	Email                     string                 `json:"email,omitempty"                     yaml:"email,omitempty"`
	Username                  string                 `json:"username,omitempty"                  yaml:"username,omitempty"`
	Password                  string                 `json:"password,omitempty"                  yaml:"password,omitempty"`
	FirstName                 string                 `json:"firstName,omitempty"                 yaml:"firstName,omitempty"`
	MiddleName                string                 `json:"middleName,omitempty"                yaml:"middleName,omitempty"`
	LastName                  string                 `json:"lastName,omitempty"                  yaml:"lastName,omitempty"`
	FullName                  string                 `json:"fullName,omitempty"                  yaml:"fullName,omitempty"`
	BirthDate                 string                 `json:"birthDate,omitempty"                 yaml:"birthDate,omitempty"`
	MobilePhone               string                 `json:"mobilePhone,omitempty"               yaml:"mobilePhone,omitempty"`
	ImageURL                  string                 `json:"imageUrl,omitempty"                  yaml:"imageUrl,omitempty"`
	Timezone                  string                 `json:"timezone,omitempty"                  yaml:"timezone,omitempty"`
	PreferredLanguages        []string               `json:"preferredLanguages,omitempty"        yaml:"preferredLanguages,omitempty"`
	Verified                  bool                   `json:"verified,omitempty"                  yaml:"verified,omitempty"`
	Data                      map[string]interface{} `json:"data,omitempty"                      yaml:"data,omitempty"`
	Registrations             []UserRegistration     `json:"registrations,omitempty"             yaml:"registrations,omitempty"`
	Memberships               []GroupMember          `json:"memberships,omitempty"               yaml:"memberships,omitempty"`
	InsertInstant             int64                  `json:"insertInstant,omitempty"             yaml:"insertInstant,omitempty"`
	LastUpdateInstant         int64                  `json:"lastUpdateInstant,omitempty"         yaml:"lastUpdateInstant,omitempty"`
	LastLoginInstant          int64                  `json:"lastLoginInstant,omitempty"          yaml:"lastLoginInstant,omitempty"`
	PasswordLastUpdateInstant int64                  `json:"passwordLastUpdateInstant,omitempty" yaml:"passwordLastUpdateInstant,omitempty"`
	Expiry                    int64                  `json:"expiry,omitempty"                    yaml:"expiry,omitempty"`
}

// UserRequest wraps a user for create and update calls.
type UserRequest struct {
	ApplicationID        string `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	SendSetPasswordEmail bool   `json:"sendSetPasswordEmail"    yaml:"sendSetPasswordEmail"`
	SkipVerification     bool   `json:"skipVerification"        yaml:"skipVerification"`
	User                 User   `json:"user"                    yaml:"user"`
}

// UserResponse is returned by single-user operations.
type UserResponse struct {
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
	User  User   `json:"user"            yaml:"user"`
}

// SortField orders search results by one field.
type SortField struct {
	Name    string `json:"name"              yaml:"name"`
	Order   string `json:"order,omitempty"   yaml:"order,omitempty"`
	Missing string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// SearchCriteria selects users for a search. Paging is body-driven:
// StartRow and NumberOfResults address the result window.
type SearchCriteria struct {
	IDs             []string    `json:"ids,omitempty"             yaml:"ids,omitempty"`
	Query           string      `json:"query,omitempty"           yaml:"query,omitempty"`
	QueryString     string      `json:"queryString,omitempty"     yaml:"queryString,omitempty"`
	NumberOfResults int         `json:"numberOfResults,omitempty" yaml:"numberOfResults,omitempty"`
	StartRow        int         `json:"startRow,omitempty"        yaml:"startRow,omitempty"`
	SortFields      []SortField `json:"sortFields,omitempty"      yaml:"sortFields,omitempty"`
	AccurateTotal   bool        `json:"accurateTotal,omitempty"   yaml:"accurateTotal,omitempty"`
}

// SearchRequest wraps search criteria.
type SearchRequest struct {
	Search SearchCriteria `json:"search" yaml:"search"`
}

// SearchResponse is returned by user searches.
type SearchResponse struct {
	Total int64  `json:"total"           yaml:"total"`
	Users []User `json:"users,omitempty" yaml:"users,omitempty"`
}

// ImportRequest bulk-imports users.
type ImportRequest struct {
	Users                 []User `json:"users"                 yaml:"users"`
	ValidateDBConstraints bool   `json:"validateDbConstraints" yaml:"validateDbConstraints"`
}

// ApplicationRole is a role defined by an application.
type ApplicationRole struct {
	ID          string `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	IsDefault   bool   `json:"isDefault"             yaml:"isDefault"`
	IsSuperRole bool   `json:"isSuperRole"           yaml:"isSuperRole"`
}

// OAuthConfiguration holds the OAuth settings of an application.
type OAuthConfiguration struct {
	ClientID                    string   `json:"clientId,omitempty"                    yaml:"clientId,omitempty"`
	ClientSecret                string   `json:"clientSecret,omitempty"                yaml:"clientSecret,omitempty"`
	AuthorizedRedirectURLs      []string `json:"authorizedRedirectURLs,omitempty"      yaml:"authorizedRedirectURLs,omitempty"`
	AuthorizedOriginURLs        []string `json:"authorizedOriginURLs,omitempty"        yaml:"authorizedOriginURLs,omitempty"`
	EnabledGrants               []string `json:"enabledGrants,omitempty"               yaml:"enabledGrants,omitempty"`
	LogoutURL                   string   `json:"logoutURL,omitempty"                   yaml:"logoutURL,omitempty"`
	GenerateRefreshTokens       bool     `json:"generateRefreshTokens,omitempty"       yaml:"generateRefreshTokens,omitempty"`
	RequireClientAuthentication bool     `json:"requireClientAuthentication,omitempty" yaml:"requireClientAuthentication,omitempty"`
}

// Application represents a FusionAuth application.
type Application struct {
	ID                 string                 `json:"id,omitempty"                 yaml:"id,omitempty"`
	TenantID           string                 `json:"tenantId,omitempty"           yaml:"tenantId,omitempty"`
	Name               string                 `json:"name,omitempty"               yaml:"name,omitempty"`
	Active             bool                   `json:"active,omitempty"             yaml:"active,omitempty"`
	OAuthConfiguration *OAuthConfiguration    `json:"oauthConfiguration,omitempty" yaml:"oauthConfiguration,omitempty"`
	Roles              []ApplicationRole      `json:"roles,omitempty"              yaml:"roles,omitempty"`
	Data               map[string]interface{} `json:"data,omitempty"               yaml:"data,omitempty"`
	InsertInstant      int64                  `json:"insertInstant,omitempty"      yaml:"insertInstant,omitempty"`
	LastUpdateInstant  int64                  `json:"lastUpdateInstant,omitempty"  yaml:"lastUpdateInstant,omitempty"`
}

// ApplicationRequest wraps an application for create and update calls.
type ApplicationRequest struct {
	Application Application `json:"application" yaml:"application"`
}

// ApplicationResponse is returned by application operations. Single
// lookups populate Application; listings populate Applications.
type ApplicationResponse struct {
	Application  Application   `json:"application,omitempty"  yaml:"application,omitempty"`
	Applications []Application `json:"applications,omitempty" yaml:"applications,omitempty"`
}

// JWTConfiguration holds token settings for a tenant.
type JWTConfiguration struct {
	Enabled                         bool   `json:"enabled"                                   yaml:"enabled"`
	AccessTokenKeyID                string `json:"accessTokenKeyId,omitempty"                yaml:"accessTokenKeyId,omitempty"`
	IDTokenKeyID                    string `json:"idTokenKeyId,omitempty"                    yaml:"idTokenKeyId,omitempty"`
	TimeToLiveInSeconds             int    `json:"timeToLiveInSeconds,omitempty"             yaml:"timeToLiveInSeconds,omitempty"`
	RefreshTokenTimeToLiveInMinutes int    `json:"refreshTokenTimeToLiveInMinutes,omitempty" yaml:"refreshTokenTimeToLiveInMinutes,omitempty"`
}

// Tenant represents a FusionAuth tenant.
type Tenant struct {
	ID                string                 `json:"id,omitempty"                yaml:"id,omitempty"`
	Name              string                 `json:"name,omitempty"              yaml:"name,omitempty"`
	Issuer            string                 `json:"issuer,omitempty"            yaml:"issuer,omitempty"`
	ThemeID           string                 `json:"themeId,omitempty"           yaml:"themeId,omitempty"`
	JWTConfiguration  *JWTConfiguration      `json:"jwtConfiguration,omitempty"  yaml:"jwtConfiguration,omitempty"`
	Data              map[string]interface{} `json:"data,omitempty"              yaml:"data,omitempty"`
	InsertInstant     int64                  `json:"insertInstant,omitempty"     yaml:"insertInstant,omitempty"`
	LastUpdateInstant int64                  `json:"lastUpdateInstant,omitempty" yaml:"lastUpdateInstant,omitempty"`
}

// TenantRequest wraps a tenant for create and update calls.
type TenantRequest struct {
	Tenant Tenant `json:"tenant" yaml:"tenant"`
}

// TenantResponse is returned by tenant operations. Single lookups
// populate Tenant; listings populate Tenants.
type TenantResponse struct {
	Tenant  Tenant   `json:"tenant,omitempty"  yaml:"tenant,omitempty"`
	Tenants []Tenant `json:"tenants,omitempty" yaml:"tenants,omitempty"`
}

// Group represents a FusionAuth group. Roles maps application IDs to
// the roles the group grants.
type Group struct {
	ID                string                       `json:"id,omitempty"                yaml:"id,omitempty"`
	TenantID          string                       `json:"tenantId,omitempty"          yaml:"tenantId,omitempty"`
	Name              string                       `json:"name,omitempty"              yaml:"name,omitempty"`
	Roles             map[string][]ApplicationRole `json:"roles,omitempty"             yaml:"roles,omitempty"`
	Data              map[string]interface{}       `json:"data,omitempty"              yaml:"data,omitempty"`
	InsertInstant     int64                        `json:"insertInstant,omitempty"     yaml:"insertInstant,omitempty"`
	LastUpdateInstant int64                        `json:"lastUpdateInstant,omitempty" yaml:"lastUpdateInstant,omitempty"`
}

// GroupRequest wraps a group for create and update calls. RoleIDs names
// the application roles the group grants.
type GroupRequest struct {
	Group   Group    `json:"group"             yaml:"group"`
	RoleIDs []string `json:"roleIds,omitempty" yaml:"roleIds,omitempty"`
}

// GroupResponse is returned by group operations. Single lookups
// populate Group; listings populate Groups.
type GroupResponse struct {
	Group  Group   `json:"group,omitempty"  yaml:"group,omitempty"`
	Groups []Group `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// GroupMember is one user's membership of a group.
type GroupMember struct {
	ID            string                 `json:"id,omitempty"            yaml:"id,omitempty"`
	GroupID       string                 `json:"groupId,omitempty"       yaml:"groupId,omitempty"`
	UserID        string                 `json:"userId"                  yaml:"userId"`
	Data          map[string]interface{} `json:"data,omitempty"          yaml:"data,omitempty"`
	InsertInstant int64                  `json:"insertInstant,omitempty" yaml:"insertInstant,omitempty"`
}

// MemberRequest adds members to groups, keyed by group ID.
type MemberRequest struct {
	Members map[string][]GroupMember `json:"members" yaml:"members"`
}

// MemberDeleteRequest removes members from groups, either by membership
// ID or per group by user ID.
type MemberDeleteRequest struct {
	MemberIDs []string            `json:"memberIds,omitempty" yaml:"memberIds,omitempty"`
	Members   map[string][]string `json:"members,omitempty"   yaml:"members,omitempty"`
}

// MemberResponse is returned when members are added, keyed by group ID.
type MemberResponse struct {
	Members map[string][]GroupMember `json:"members" yaml:"members"`
}

// UserRegistration links a user to an application.
type UserRegistration struct {
	ID                 string                 `json:"id,omitempty"                 yaml:"id,omitempty"`
	ApplicationID      string                 `json:"applicationId"                yaml:"applicationId"`
	UserID             string                 `json:"userId,omitempty"             yaml:"userId,omitempty"`
	Username           string                 `json:"username,omitempty"           yaml:"username,omitempty"`
	Roles              []string               `json:"roles,omitempty"              yaml:"roles,omitempty"`
	PreferredLanguages []string               `json:"preferredLanguages,omitempty" yaml:"preferredLanguages,omitempty"`
	Timezone           string                 `json:"timezone,omitempty"           yaml:"timezone,omitempty"`
	Verified           bool                   `json:"verified,omitempty"           yaml:"verified,omitempty"`
	Data               map[string]interface{} `json:"data,omitempty"               yaml:"data,omitempty"`
	InsertInstant      int64                  `json:"insertInstant,omitempty"      yaml:"insertInstant,omitempty"`
	LastLoginInstant   int64                  `json:"lastLoginInstant,omitempty"   yaml:"lastLoginInstant,omitempty"`
}

// RegistrationRequest wraps a registration. User is only set when the
// registration call should create the user in the same request.
type RegistrationRequest struct {
	Registration                 UserRegistration `json:"registration"                 yaml:"registration"`
	User                         *User            `json:"user,omitempty"               yaml:"user,omitempty"`
	SendSetPasswordEmail         bool             `json:"sendSetPasswordEmail"         yaml:"sendSetPasswordEmail"`
	SkipVerification             bool             `json:"skipVerification"             yaml:"skipVerification"`
	SkipRegistrationVerification bool             `json:"skipRegistrationVerification" yaml:"skipRegistrationVerification"`
}

// RegistrationResponse is returned by registration operations.
type RegistrationResponse struct {
	Registration UserRegistration `json:"registration"    yaml:"registration"`
	User         *User            `json:"user,omitempty"  yaml:"user,omitempty"`
	Token        string           `json:"token,omitempty" yaml:"token,omitempty"`
}

// LoginRequest authenticates a user with login ID and password.
type LoginRequest struct {
	LoginID       string `json:"loginId"                 yaml:"loginId"`
	Password      string `json:"password"                yaml:"password"`
	ApplicationID string `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	IPAddress     string `json:"ipAddress,omitempty"     yaml:"ipAddress,omitempty"`
	NoJWT         bool   `json:"noJWT,omitempty"         yaml:"noJWT,omitempty"`
}

// LoginResponse is returned by login calls. Any 2xx status is a
// completed login step; statuses like 242 indicate an additional factor
// is required and carry TwoFactorID.
type LoginResponse struct {
	Token                  string `json:"token,omitempty"                  yaml:"token,omitempty"`
	RefreshToken           string `json:"refreshToken,omitempty"           yaml:"refreshToken,omitempty"`
	TwoFactorID            string `json:"twoFactorId,omitempty"            yaml:"twoFactorId,omitempty"`
	User                   *User  `json:"user,omitempty"                   yaml:"user,omitempty"`
	TokenExpirationInstant int64  `json:"tokenExpirationInstant,omitempty" yaml:"tokenExpirationInstant,omitempty"`
}

// AccessToken is the response of the OAuth token endpoint.
type AccessToken struct {
	AccessToken  string `json:"access_token"            yaml:"access_token"`
	TokenType    string `json:"token_type"              yaml:"token_type"`
	ExpiresIn    int64  `json:"expires_in"              yaml:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"      yaml:"id_token,omitempty"`
	Scope        string `json:"scope,omitempty"         yaml:"scope,omitempty"`
	UserID       string `json:"userId,omitempty"        yaml:"userId,omitempty"`
}

// RefreshRequest exchanges a refresh token for a new JWT.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"    yaml:"refreshToken"`
	Token        string `json:"token,omitempty" yaml:"token,omitempty"`
}

// RefreshResponse is returned by the JWT refresh endpoint.
type RefreshResponse struct {
	Token        string `json:"token"                  yaml:"token"`
	RefreshToken string `json:"refreshToken,omitempty" yaml:"refreshToken,omitempty"`
}

// ValidateResponse carries the decoded claims of a validated JWT.
type ValidateResponse struct {
	JWT map[string]interface{} `json:"jwt" yaml:"jwt"`
}

// VersionResponse reports the server version.
type VersionResponse struct {
	Version string `json:"version" yaml:"version"`
}
