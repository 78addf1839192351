package commands_test

import (
	"testing"

	"github.com/fusionauth-community/go-client/cmd/fusionauth/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsersCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewUsersCommand()
	assert.Equal(t, "users", cmd.Use)
	assert.Equal(t, []string{"user"}, cmd.Aliases)
	assert.Equal(t, "Manage users", cmd.Short)

	names := subcommandNames(cmd)
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "get")
	assert.Contains(t, names, "create")
	assert.Contains(t, names, "deactivate")
	assert.Contains(t, names, "reactivate")
	assert.Contains(t, names, "delete")
	assert.Contains(t, names, "search")
}

func TestUsersListCommandFlags(t *testing.T) {
	t.Parallel()

	listCmd := findSubcommand(commands.NewUsersCommand(), "list")
	require.NotNil(t, listCmd)

	assert.NotNil(t, listCmd.Flags().Lookup("page-size"))
	assert.NotNil(t, listCmd.Flags().Lookup("start-row"))
}

func TestUsersCreateCommandFlags(t *testing.T) {
	t.Parallel()

	createCmd := findSubcommand(commands.NewUsersCommand(), "create")
	require.NotNil(t, createCmd)

	for _, flag := range []string{"email", "username", "password", "first-name", "last-name", "send-set-password-email", "skip-verification"} {
		assert.NotNil(t, createCmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestUsersDeleteCommandFlags(t *testing.T) {
	t.Parallel()

	deleteCmd := findSubcommand(commands.NewUsersCommand(), "delete")
	require.NotNil(t, deleteCmd)

	assert.NotNil(t, deleteCmd.Flags().Lookup("hard"))
}
