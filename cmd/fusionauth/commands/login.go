package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/fusionauth-community/go-client/internal/constants"
	"github.com/fusionauth-community/go-client/pkg/faclient"
	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		username      string
		password      string
		applicationID string
	)

	cmd := &cobra.Command{
		Use:   "login [SERVER]",
		Short: "Log in to a FusionAuth server",
		Long:  "Authenticate against a FusionAuth server and store the issued JWT",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverRef := ""
			if len(args) > 0 {
				serverRef = args[0]
			}

			return runLoginCommand(serverRef, username, password, applicationID)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "login ID (email or username)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&applicationID, "application", "", "application ID to authenticate against")

	return cmd
}

func runLoginCommand(serverRef, username, password, applicationID string) error {
	config := loadConfig()

	serverName, serverURL := resolveLoginServer(config, serverRef)
	if serverURL == "" {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Server URL: ")
		input, _ := reader.ReadString('\n')

		serverURL = normalizeServerURL(input)
		serverName = serverKey(serverURL)
	}

	if serverURL == "" {
		return fusionauth.ErrServerNameOrURLRequired
	}

	if username == "" {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Login ID: ")
		username, _ = reader.ReadString('\n')
		username = strings.TrimSpace(username)
	}

	if password == "" {
		fmt.Print("Password: ")

		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		password = string(bytePassword)

		fmt.Println()
	}

	if password == "" {
		return constants.ErrPasswordRequired
	}

	ctx := context.Background()

	apiClient, err := faclient.NewAnonymous(ctx, serverURL)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	response, err := apiClient.Auth().Login(ctx, &fusionauth.LoginRequest{
		LoginID:       username,
		Password:      password,
		ApplicationID: applicationID,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// A 2xx status with a twoFactorId means the password alone did not
	// complete the login
	if response.TwoFactorID != "" {
		return constants.ErrTwoFactorRequired
	}

	if response.Token == "" {
		return constants.ErrLoginReturnedNoToken
	}

	persistLogin(config, serverName, serverURL, username, response)

	err = saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("%s Logged in to %s as %s\n", Colors().Success.Sprint("OK"), serverURL, loginDisplayName(username, response))

	if config.CurrentServer == serverName {
		fmt.Printf("Server '%s' is the current server\n", serverName)
	}

	return nil
}

// resolveLoginServer maps the positional or --api server reference to a
// config key and URL. Empty results mean the caller must prompt.
func resolveLoginServer(config *Config, serverRef string) (string, string) {
	if serverRef == "" {
		serverRef = viper.GetString("api")
	}

	if serverRef == "" {
		if serverConfig, exists := config.Servers[config.CurrentServer]; exists {
			return config.CurrentServer, serverConfig.URL
		}

		return "", ""
	}

	if serverConfig, exists := config.Servers[serverRef]; exists {
		return serverRef, serverConfig.URL
	}

	normalized := normalizeServerURL(serverRef)

	return serverKey(normalized), normalized
}

func persistLogin(config *Config, serverName, serverURL, username string, response *fusionauth.LoginResponse) {
	if config.Servers == nil {
		config.Servers = make(map[string]*ServerConfig)
	}

	serverConfig, exists := config.Servers[serverName]
	if !exists {
		serverConfig = &ServerConfig{URL: serverURL}
		config.Servers[serverName] = serverConfig
	}

	serverConfig.Username = username
	serverConfig.Token = response.Token
	serverConfig.RefreshToken = response.RefreshToken
	serverConfig.TokenExpiresAt = nil

	if response.TokenExpirationInstant > 0 {
		expiresAt := time.UnixMilli(response.TokenExpirationInstant).UTC()
		serverConfig.TokenExpiresAt = &expiresAt
	}

	if config.CurrentServer == "" {
		config.CurrentServer = serverName
	}
}

func loginDisplayName(username string, response *fusionauth.LoginResponse) string {
	if response.User != nil && response.User.Email != "" {
		return response.User.Email
	}

	return username
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	var everywhere bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current server",
		Long:  "Invalidate the stored refresh token and clear saved credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogoutCommand(cmd.Flag("api").Value.String(), everywhere)
		},
	}

	cmd.Flags().BoolVar(&everywhere, "everywhere", false, "end every session of the user, not just this one")

	return cmd
}

func runLogoutCommand(serverFlag string, everywhere bool) error {
	config := loadConfig()

	serverName := config.CurrentServer
	if serverFlag != "" {
		resolved, err := findServerName(config, serverFlag)
		if err != nil {
			return err
		}

		serverName = resolved
	}

	serverConfig, exists := config.Servers[serverName]
	if !exists {
		return fmt.Errorf("%w, nothing to log out of", fusionauth.ErrCurrentServerNotFound)
	}

	// Best effort remote invalidation of the refresh token
	if serverConfig.RefreshToken != "" {
		ctx := context.Background()

		apiClient, err := faclient.NewAnonymous(ctx, serverConfig.URL)
		if err == nil {
			err = apiClient.Auth().Logout(ctx, everywhere, serverConfig.RefreshToken)
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not invalidate refresh token: %v\n", err)
		}
	}

	serverConfig.Token = ""
	serverConfig.RefreshToken = ""
	serverConfig.TokenExpiresAt = nil
	serverConfig.LastRefreshed = nil

	err := saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println("Successfully logged out")

	return nil
}
