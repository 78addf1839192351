//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fusionauth-community/go-client/pkg/faclient"
	"github.com/fusionauth-community/go-client/pkg/fusionauth"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Endpoint      string
	APIKey        string
	ApplicationID string
	CLIPath       string
	Verbose       bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint:      os.Getenv("FUSIONAUTH_ENDPOINT"),
		APIKey:        os.Getenv("FUSIONAUTH_API_KEY"),
		ApplicationID: os.Getenv("FUSIONAUTH_APPLICATION_ID"),
		CLIPath:       getCLIPath(),
		Verbose:       os.Getenv("FUSIONAUTH_VERBOSE") == "true",
	}
}

// getCLIPath determines the path to the fusionauth CLI binary
func getCLIPath() string {
	if path := os.Getenv("FUSIONAUTH_CLI_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../fusionauth",
		"./fusionauth",
		"../fusionauth",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "fusionauth" // Fallback to PATH
}

// SkipIfMissingConfig skips the test if the server configuration is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.Endpoint == "" {
		t.Skip("FUSIONAUTH_ENDPOINT not set, skipping integration test")
	}

	if config.APIKey == "" {
		t.Skip("FUSIONAUTH_API_KEY not set, skipping integration test")
	}
}

// SkipIfMissingCLI skips the test if the CLI binary cannot be found
func (config *TestConfig) SkipIfMissingCLI(t *testing.T) {
	if _, err := os.Stat(config.CLIPath); os.IsNotExist(err) {
		t.Skipf("fusionauth binary not found at %s, skipping integration test", config.CLIPath)
	}
}

// SkipIfMissingApplication skips the test if no application ID is configured
func (config *TestConfig) SkipIfMissingApplication(t *testing.T) {
	if config.ApplicationID == "" {
		t.Skip("FUSIONAUTH_APPLICATION_ID not set, skipping integration test")
	}
}

// NewAPIClient creates a client for the configured server
func (config *TestConfig) NewAPIClient(t *testing.T) fusionauth.Client {
	return config.NewAPIClientWithKey(t, config.APIKey)
}

// NewAPIClientWithKey creates a client for the configured server with an
// explicit API key
func (config *TestConfig) NewAPIClientWithKey(t *testing.T, apiKey string) fusionauth.Client {
	apiClient, err := faclient.NewWithAPIKey(context.Background(), config.Endpoint, apiKey)
	if err != nil {
		t.Fatalf("Failed to create API client: %v", err)
	}

	return apiClient
}

// CommandRunner provides utilities for running fusionauth CLI commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a fusionauth command against the configured server and
// returns output. The server URL and API key are passed as flags so the
// user's config file is never touched.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	full := append([]string{"--api", runner.config.Endpoint, "--key", runner.config.APIKey, "--no-color"}, args...)

	cmd := exec.Command(runner.config.CLIPath, full...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.CLIPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// GenerateTestEmail creates a unique test email address
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s@integration.test", GenerateTestName(prefix))
}

// CleanupUser permanently deletes a test user, logging instead of failing
// when the user is already gone
func CleanupUser(t *testing.T, apiClient fusionauth.Client, userID string) {
	if userID == "" {
		return
	}

	err := apiClient.Users().Delete(context.Background(), userID, true)
	if err != nil && !fusionauth.IsNotFound(err) {
		t.Logf("Cleanup warning for user %s: %v", userID, err)
	}
}

// CleanupGroup permanently deletes a test group, logging instead of
// failing when the group is already gone
func CleanupGroup(t *testing.T, apiClient fusionauth.Client, groupID string) {
	if groupID == "" {
		return
	}

	err := apiClient.Groups().Delete(context.Background(), groupID)
	if err != nil && !fusionauth.IsNotFound(err) {
		t.Logf("Cleanup warning for group %s: %v", groupID, err)
	}
}

// WaitForCondition waits for a condition to be met with timeout. The user
// search index is eventually consistent, so search-based assertions poll.
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	timeoutChan := time.After(timeout)

	for {
		select {
		case <-ticker.C:
			if condition() {
				return
			}
		case <-timeoutChan:
			t.Fatalf("Timeout waiting for condition: %s", message)
		}
	}
}

// AssertJSONOutput verifies command output parses as JSON
func AssertJSONOutput(t *testing.T, output string) {
	var decoded interface{}

	err := json.Unmarshal([]byte(output), &decoded)
	if err != nil {
		t.Errorf("Output is not valid JSON: %v\n%s", err, output)
	}
}

// AssertYAMLOutput verifies command output parses as YAML
func AssertYAMLOutput(t *testing.T, output string) {
	var decoded interface{}

	err := yaml.Unmarshal([]byte(output), &decoded)
	if err != nil {
		t.Errorf("Output is not valid YAML: %v\n%s", err, output)
	}
}
