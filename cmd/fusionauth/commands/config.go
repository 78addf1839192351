package commands

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fusionauth-community/go-client/internal/auth"
	"github.com/fusionauth-community/go-client/internal/client"
	"github.com/fusionauth-community/go-client/internal/constants"
	"github.com/fusionauth-community/go-client/pkg/faclient"
	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	Servers       map[string]*ServerConfig `json:"servers,omitempty"        yaml:"servers,omitempty"`
	CurrentServer string                   `json:"current_server,omitempty" yaml:"current_server,omitempty"`

	// Global settings
	Output  string `json:"output"   yaml:"output"`
	NoColor bool   `json:"no_color" yaml:"no_color"`
}

// ServerConfig holds the settings and credentials for one FusionAuth
// server. Either APIKey or a stored login token authenticates requests;
// the API key wins when both are present.
type ServerConfig struct {
	URL            string     `json:"url"                        yaml:"url"`
	APIKey         string     `json:"api_key,omitempty"          yaml:"api_key,omitempty"`
	TenantID       string     `json:"tenant_id,omitempty"        yaml:"tenant_id,omitempty"`
	Token          string     `json:"token,omitempty"            yaml:"token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`
	RefreshToken   string     `json:"refresh_token,omitempty"    yaml:"refresh_token,omitempty"`
	LastRefreshed  *time.Time `json:"last_refreshed,omitempty"   yaml:"last_refreshed,omitempty"`
	Username       string     `json:"username,omitempty"         yaml:"username,omitempty"`
	SkipTLSVerify  bool       `json:"skip_tls_verify"            yaml:"skip_tls_verify"`
}

// loadConfig reads the CLI configuration out of viper.
func loadConfig() *Config {
	config := &Config{
		Output:  viper.GetString("output"),
		NoColor: viper.GetBool("no_color"),
		Servers: make(map[string]*ServerConfig),
	}

	loadServerConfigurations(config)

	return config
}

func loadServerConfigurations(config *Config) {
	config.CurrentServer = viper.GetString("current_server")

	serversRaw := viper.GetStringMap("servers")
	for name, serverRaw := range serversRaw {
		if serverMap, ok := serverRaw.(map[string]interface{}); ok {
			config.Servers[name] = parseServerConfig(serverMap)
		}
	}
}

func parseServerConfig(serverMap map[string]interface{}) *ServerConfig {
	serverConfig := &ServerConfig{}

	if serverURL, ok := serverMap["url"].(string); ok {
		serverConfig.URL = serverURL
	}

	if apiKey, ok := serverMap["api_key"].(string); ok {
		serverConfig.APIKey = apiKey
	}

	if tenantID, ok := serverMap["tenant_id"].(string); ok {
		serverConfig.TenantID = tenantID
	}

	if token, ok := serverMap["token"].(string); ok {
		serverConfig.Token = token
	}

	if refreshToken, ok := serverMap["refresh_token"].(string); ok {
		serverConfig.RefreshToken = refreshToken
	}

	if username, ok := serverMap["username"].(string); ok {
		serverConfig.Username = username
	}

	if skipTLS, ok := serverMap["skip_tls_verify"].(bool); ok {
		serverConfig.SkipTLSVerify = skipTLS
	}

	parseServerTimestamps(serverConfig, serverMap)

	return serverConfig
}

func parseServerTimestamps(serverConfig *ServerConfig, serverMap map[string]interface{}) {
	if value, ok := serverMap["token_expires_at"].(string); ok && value != "" {
		expiresAt, err := time.Parse(time.RFC3339, value)
		if err == nil {
			serverConfig.TokenExpiresAt = &expiresAt
		}
	}

	if value, ok := serverMap["last_refreshed"].(string); ok && value != "" {
		lastRefreshed, err := time.Parse(time.RFC3339, value)
		if err == nil {
			serverConfig.LastRefreshed = &lastRefreshed
		}
	}
}

// saveConfigStruct writes the configuration back to the config file.
func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".fusionauth")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yaml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalizeServerURL adds an https scheme when none is present and strips
// any trailing slash.
func normalizeServerURL(rawURL string) string {
	trimmed := strings.TrimSuffix(strings.TrimSpace(rawURL), "/")
	if trimmed == "" {
		return ""
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	return trimmed
}

// serverKey derives the config map key for a server URL, preferring the
// bare host name.
func serverKey(serverURL string) string {
	parsed, err := url.Parse(serverURL)
	if err != nil || parsed.Host == "" {
		return serverURL
	}

	return parsed.Host
}

// findServerName resolves a short name or URL to a configured server key.
func findServerName(config *Config, serverRef string) (string, error) {
	if serverRef == "" {
		return "", fusionauth.ErrServerNameOrURLRequired
	}

	if _, exists := config.Servers[serverRef]; exists {
		return serverRef, nil
	}

	normalized := normalizeServerURL(serverRef)
	for name, serverConfig := range config.Servers {
		if serverConfig.URL == normalized {
			return name, nil
		}
	}

	return "", fmt.Errorf("server '%s': %w", serverRef, fusionauth.ErrServerNotFound)
}

// getServerConfigByFlag resolves the --api flag (short name or URL) to a
// server configuration. An empty flag falls back to the current server.
// Unknown URLs are still returned so ad hoc calls against servers that
// were never added can work with --key.
func getServerConfigByFlag(serverFlag string) (*ServerConfig, string, error) {
	config := loadConfig()

	if serverFlag == "" {
		return getCurrentServerConfig(config)
	}

	serverName, err := findServerName(config, serverFlag)
	if err == nil {
		return config.Servers[serverName], serverName, nil
	}

	if strings.Contains(serverFlag, "://") || strings.Contains(serverFlag, ".") || strings.HasPrefix(serverFlag, "localhost") {
		normalized := normalizeServerURL(serverFlag)

		return &ServerConfig{URL: normalized}, serverKey(normalized), nil
	}

	return nil, "", fmt.Errorf("%w, use 'fusionauth servers list' to see configured servers", err)
}

func getCurrentServerConfig(config *Config) (*ServerConfig, string, error) {
	if len(config.Servers) == 0 {
		return nil, "", fmt.Errorf("%w, use 'fusionauth servers add' or 'fusionauth login' first", fusionauth.ErrNoServersConfigured)
	}

	if config.CurrentServer == "" {
		return nil, "", fmt.Errorf("%w, use 'fusionauth servers use' to select one", fusionauth.ErrCurrentServerNotFound)
	}

	serverConfig, exists := config.Servers[config.CurrentServer]
	if !exists {
		return nil, "", fmt.Errorf("server '%s': %w", config.CurrentServer, fusionauth.ErrCurrentServerNotFound)
	}

	return serverConfig, config.CurrentServer, nil
}

// CreateClientWithServer creates a FusionAuth client for the server the
// --api flag selects, falling back to the current server.
func CreateClientWithServer(serverFlag string) (fusionauth.Client, error) {
	serverConfig, serverName, err := getServerConfigByFlag(serverFlag)
	if err != nil {
		return nil, err
	}

	applyFlagOverrides(serverConfig)

	if serverConfig.URL == "" {
		return nil, fmt.Errorf("server '%s': %w", serverName, fusionauth.ErrBaseURLRequired)
	}

	faConfig := buildClientConfig(serverConfig)

	// API keys win over stored login tokens
	if serverConfig.APIKey != "" {
		faConfig.APIKey = serverConfig.APIKey

		apiClient, err := faclient.New(context.Background(), faConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create client: %w", err)
		}

		return apiClient, nil
	}

	if serverConfig.Token != "" {
		return createClientWithTokenManager(faConfig, serverConfig)
	}

	return nil, fmt.Errorf("server '%s': %w", serverName, constants.ErrNotAuthenticated)
}

// applyFlagOverrides lets per-invocation flags override stored settings.
func applyFlagOverrides(serverConfig *ServerConfig) {
	if key := viper.GetString("key"); key != "" {
		serverConfig.APIKey = key
	}

	if tenant := viper.GetString("tenant"); tenant != "" {
		serverConfig.TenantID = tenant
	}

	if viper.GetBool("insecure") {
		serverConfig.SkipTLSVerify = true
	}
}

func buildClientConfig(serverConfig *ServerConfig) *fusionauth.Config {
	faConfig := &fusionauth.Config{
		BaseURL:        serverConfig.URL,
		TenantID:       serverConfig.TenantID,
		SkipTLSVerify:  serverConfig.SkipTLSVerify,
		ConnectTimeout: constants.DefaultConnectTimeout,
		ReadTimeout:    constants.DefaultReadTimeout,
	}

	if viper.GetBool("verbose") {
		faConfig.Debug = true
		faConfig.Logger = stderrLogger{}
	}

	return faConfig
}

// createClientWithTokenManager builds a client whose JWT is refreshed and
// persisted back to the config file as needed.
func createClientWithTokenManager(faConfig *fusionauth.Config, serverConfig *ServerConfig) (fusionauth.Client, error) {
	jwtConfig := &auth.JWTConfig{
		BaseURL:        faConfig.BaseURL,
		AccessToken:    serverConfig.Token,
		RefreshToken:   serverConfig.RefreshToken,
		ConnectTimeout: constants.DefaultConnectTimeout,
		ReadTimeout:    constants.DefaultReadTimeout,
	}

	var initialExpiry time.Time
	if serverConfig.TokenExpiresAt != nil {
		initialExpiry = *serverConfig.TokenExpiresAt
	}

	tokenManager := auth.NewConfigTokenManager(jwtConfig, NewConfigPersister(), serverConfig.URL, serverConfig.Token, initialExpiry)

	apiClient, err := client.NewWithProvider(faConfig, tokenManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return apiClient, nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change FusionAuth CLI configuration settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration including configured servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(redactConfig(config))
			case OutputFormatYAML:
				return StandardYAMLRenderer(redactConfig(config))
			default:
				return renderConfigTable(config)
			}
		},
	}
}

// redactConfig clones the config with secrets masked for display.
func redactConfig(config *Config) *Config {
	redacted := &Config{
		CurrentServer: config.CurrentServer,
		Output:        config.Output,
		NoColor:       config.NoColor,
		Servers:       make(map[string]*ServerConfig, len(config.Servers)),
	}

	for name, serverConfig := range config.Servers {
		clone := *serverConfig
		if clone.APIKey != "" {
			clone.APIKey = constants.MaskedSecret
		}

		if clone.Token != "" {
			clone.Token = constants.MaskedSecret
		}

		if clone.RefreshToken != "" {
			clone.RefreshToken = constants.MaskedSecret
		}

		redacted.Servers[name] = &clone
	}

	return redacted
}

func renderConfigTable(config *Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("output", valueOrNA(config.Output))
	_ = table.Append("no_color", strconv.FormatBool(config.NoColor))
	_ = table.Append("current_server", valueOrNA(config.CurrentServer))

	for name, serverConfig := range config.Servers {
		_ = table.Append("server."+name, serverSummary(serverConfig))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// serverSummary describes a server's URL and credential state in one cell.
func serverSummary(serverConfig *ServerConfig) string {
	summary := serverConfig.URL

	switch {
	case serverConfig.APIKey != "":
		summary += " (api key)"
	case serverConfig.Token != "":
		summary += " (logged in"
		if serverConfig.Username != "" {
			summary += " as " + serverConfig.Username
		}

		summary += ")"
	default:
		summary += " (unauthenticated)"
	}

	if serverConfig.SkipTLSVerify {
		summary += " [insecure]"
	}

	return summary
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a global configuration value (output, no_color, current_server)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSetCommand(args[0], args[1])
		},
	}
}

func runConfigSetCommand(key, value string) error {
	config := loadConfig()

	switch key {
	case "output":
		if value != OutputFormatTable && value != OutputFormatJSON && value != OutputFormatYAML {
			return fmt.Errorf("%w: output must be table, json, or yaml", constants.ErrUnknownConfigKey)
		}

		config.Output = value
	case "no_color":
		noColor, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parsing no_color: %w", err)
		}

		config.NoColor = noColor
	case "current_server":
		serverName, err := findServerName(config, value)
		if err != nil {
			return err
		}

		config.CurrentServer = serverName
	default:
		return fmt.Errorf("'%s': %w", key, constants.ErrUnknownConfigKey)
	}

	err := saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("Set %s to %s\n", key, value)

	return nil
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Reset a configuration value",
		Long:  "Reset a global configuration value to its default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigUnsetCommand(args[0])
		},
	}
}

func runConfigUnsetCommand(key string) error {
	config := loadConfig()

	switch key {
	case "output":
		config.Output = OutputFormatTable
	case "no_color":
		config.NoColor = false
	case "current_server":
		config.CurrentServer = ""
	default:
		return fmt.Errorf("'%s': %w", key, constants.ErrUnknownConfigKey)
	}

	err := saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("Unset %s\n", key)

	return nil
}
