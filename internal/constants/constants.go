package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultConnectTimeout is the default timeout for establishing a connection.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultReadTimeout is the default timeout for a full request and response.
	DefaultReadTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as status probes.
	ShortHTTPTimeout = 10 * time.Second
)

// Concurrency and batching limits.
const (
	// DefaultConcurrencyLimit limits concurrent batch operations.
	DefaultConcurrencyLimit = 3

	// DefaultBatchTimeout bounds a single operation inside a batch.
	DefaultBatchTimeout = 30 * time.Second
)

// Token handling.
const (
	// TokenExpirationBuffer is the buffer time before token expiration.
	// Tokens within this window of expiry are refreshed before use.
	TokenExpirationBuffer = 30 * time.Second

	// JWTPartsCount is the expected number of segments in an encoded JWT.
	JWTPartsCount = 3
)

// Search and pagination.
const (
	// DefaultSearchPageSize is the default number of results per search page.
	DefaultSearchPageSize = 25

	// MaxSearchPageSize is the largest page the server accepts in one request.
	MaxSearchPageSize = 10000
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// CRUD operation constants.
const (
	// OperationCreate for create operations.
	OperationCreate = "create"

	// OperationUpdate for update operations.
	OperationUpdate = "update"

	// OperationDelete for delete operations.
	OperationDelete = "delete"

	// OperationRetrieve for retrieve operations.
	OperationRetrieve = "retrieve"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)
