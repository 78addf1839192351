package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewApplicationsCommand creates the applications command group.
func NewApplicationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"applications", "app"},
		Short:   "Manage applications",
		Long:    "List and inspect FusionAuth applications",
	}

	cmd.AddCommand(newAppsListCommand())
	cmd.AddCommand(newAppsGetCommand())

	return cmd
}

func newAppsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Long:  "List all applications on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			response, err := apiClient.Applications().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list applications: %w", err)
			}

			return outputApplications(response.Applications)
		},
	}
}

func outputApplications(applications []fusionauth.Application) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(applications)
	case OutputFormatYAML:
		return StandardYAMLRenderer(applications)
	default:
		return renderApplicationTable(applications)
	}
}

func renderApplicationTable(applications []fusionauth.Application) error {
	if len(applications) == 0 {
		_, _ = os.Stdout.WriteString("No applications found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "ID", "State", "Roles")

	for _, application := range applications {
		_ = table.Append(application.Name, application.ID,
			formatActive(application.Active), applicationRoleNames(&application))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func applicationRoleNames(application *fusionauth.Application) string {
	if len(application.Roles) == 0 {
		return ""
	}

	names := make([]string, 0, len(application.Roles))
	for _, role := range application.Roles {
		names = append(names, role.Name)
	}

	return strings.Join(names, ", ")
}

func newAppsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get APPLICATION_ID",
		Short: "Get application details",
		Long:  "Display detailed information about one application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			response, err := apiClient.Applications().Retrieve(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get application: %w", err)
			}

			return outputApplicationDetails(&response.Application)
		},
	}
}

func outputApplicationDetails(application *fusionauth.Application) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(application)
	case OutputFormatYAML:
		return StandardYAMLRenderer(application)
	default:
		return renderApplicationDetailsTable(application)
	}
}

func renderApplicationDetailsTable(application *fusionauth.Application) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Name", application.Name)
	_ = table.Append("ID", application.ID)
	_ = table.Append("Tenant", valueOrNA(application.TenantID))
	_ = table.Append("State", formatActive(application.Active))
	_ = table.Append("Created", formatInstant(application.InsertInstant))

	if roleNames := applicationRoleNames(application); roleNames != "" {
		_ = table.Append("Roles", roleNames)
	}

	if application.OAuthConfiguration != nil {
		_ = table.Append("OAuth Client ID", valueOrNA(application.OAuthConfiguration.ClientID))

		if len(application.OAuthConfiguration.AuthorizedRedirectURLs) > 0 {
			_ = table.Append("Redirect URLs", strings.Join(application.OAuthConfiguration.AuthorizedRedirectURLs, "\n"))
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
