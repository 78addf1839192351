package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTenantsCommand creates the tenants command group.
func NewTenantsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tenants",
		Aliases: []string{"tenant"},
		Short:   "Manage tenants",
		Long:    "List and inspect FusionAuth tenants",
	}

	cmd.AddCommand(newTenantsListCommand())
	cmd.AddCommand(newTenantsGetCommand())

	return cmd
}

func newTenantsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		Long:  "List all tenants on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			response, err := apiClient.Tenants().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list tenants: %w", err)
			}

			return outputTenants(response.Tenants)
		},
	}
}

func outputTenants(tenants []fusionauth.Tenant) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(tenants)
	case OutputFormatYAML:
		return StandardYAMLRenderer(tenants)
	default:
		return renderTenantTable(tenants)
	}
}

func renderTenantTable(tenants []fusionauth.Tenant) error {
	if len(tenants) == 0 {
		_, _ = os.Stdout.WriteString("No tenants found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "ID", "Issuer")

	for _, tenant := range tenants {
		_ = table.Append(tenant.Name, tenant.ID, valueOrNA(tenant.Issuer))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newTenantsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TENANT_ID",
		Short: "Get tenant details",
		Long:  "Display detailed information about one tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			response, err := apiClient.Tenants().Retrieve(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get tenant: %w", err)
			}

			return outputTenantDetails(&response.Tenant)
		},
	}
}

func outputTenantDetails(tenant *fusionauth.Tenant) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(tenant)
	case OutputFormatYAML:
		return StandardYAMLRenderer(tenant)
	default:
		return renderTenantDetailsTable(tenant)
	}
}

func renderTenantDetailsTable(tenant *fusionauth.Tenant) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Name", tenant.Name)
	_ = table.Append("ID", tenant.ID)
	_ = table.Append("Issuer", valueOrNA(tenant.Issuer))
	_ = table.Append("Created", formatInstant(tenant.InsertInstant))

	if tenant.JWTConfiguration != nil {
		_ = table.Append("JWT TTL", fmt.Sprintf("%ds", tenant.JWTConfiguration.TimeToLiveInSeconds))
		_ = table.Append("Refresh Token TTL", fmt.Sprintf("%dm", tenant.JWTConfiguration.RefreshTokenTimeToLiveInMinutes))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
