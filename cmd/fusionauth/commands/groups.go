package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage groups",
		Long:    "List FusionAuth groups",
	}

	cmd.AddCommand(newGroupsListCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Long:  "List all groups on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			response, err := apiClient.Groups().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}

			return outputGroups(response.Groups)
		},
	}
}

func outputGroups(groups []fusionauth.Group) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(groups)
	case OutputFormatYAML:
		return StandardYAMLRenderer(groups)
	default:
		return renderGroupTable(groups)
	}
}

func renderGroupTable(groups []fusionauth.Group) error {
	if len(groups) == 0 {
		_, _ = os.Stdout.WriteString("No groups found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "ID", "Tenant", "Role Grants")

	for _, group := range groups {
		grantCount := 0
		for _, roles := range group.Roles {
			grantCount += len(roles)
		}

		_ = table.Append(group.Name, group.ID, valueOrNA(group.TenantID),
			strconv.Itoa(grantCount))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
