package commands_test

import (
	"testing"

	"github.com/fusionauth-community/go-client/cmd/fusionauth/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServersCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewServersCommand()
	assert.Equal(t, "servers", cmd.Use)
	assert.Equal(t, []string{"server"}, cmd.Aliases)
	assert.Equal(t, "Manage FusionAuth servers", cmd.Short)

	names := subcommandNames(cmd)
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "use")
	assert.Contains(t, names, "remove")
}

func TestServersAddCommandFlags(t *testing.T) {
	t.Parallel()

	addCmd := findSubcommand(commands.NewServersCommand(), "add")
	require.NotNil(t, addCmd)

	assert.NotNil(t, addCmd.Flags().Lookup("api-key"))
	assert.NotNil(t, addCmd.Flags().Lookup("tenant"))
	assert.NotNil(t, addCmd.Flags().Lookup("insecure"))
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)

	names := subcommandNames(cmd)
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "set")
	assert.Contains(t, names, "unset")
}

func TestNewLoginCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewLoginCommand()
	assert.Equal(t, "login [SERVER]", cmd.Use)

	assert.NotNil(t, cmd.Flags().Lookup("username"))
	assert.NotNil(t, cmd.Flags().Lookup("password"))
	assert.NotNil(t, cmd.Flags().Lookup("application"))
}

func TestNewLogoutCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewLogoutCommand()
	assert.Equal(t, "logout", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("everywhere"))
}

func TestNewVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewVersionCommand("1.2.3", "abc123", "2025-01-02")
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Display version information", cmd.Short)
}

func TestNewInfoCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewInfoCommand()
	assert.Equal(t, "info", cmd.Use)
	assert.Equal(t, "Display server information", cmd.Short)
}
