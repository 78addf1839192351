package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display server information",
		Long:  "Display version and health information for the selected FusionAuth server",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			ctx := context.Background()

			version, err := apiClient.System().Version(ctx)
			if err != nil {
				return fmt.Errorf("failed to get server version: %w", err)
			}

			// The status report shape is deployment specific, so keep it
			// as loose data
			var statusData map[string]interface{}

			status, err := apiClient.System().Status(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not fetch server status: %v\n", err)
			} else if status != nil {
				_ = status.Unmarshal(&statusData)
			}

			type serverInfo struct {
				Version string                 `json:"version"          yaml:"version"`
				Status  map[string]interface{} `json:"status,omitempty" yaml:"status,omitempty"`
			}

			info := serverInfo{Version: version.Version, Status: statusData}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(info)
			case OutputFormatYAML:
				return StandardYAMLRenderer(info)
			default:
				return renderServerInfoTable(info.Version, statusData)
			}
		},
	}
}

func renderServerInfoTable(version string, statusData map[string]interface{}) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Version", valueOrNA(version))

	keys := make([]string, 0, len(statusData))
	for key := range statusData {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		_ = table.Append(headerLabel(key), fmt.Sprintf("%v", statusData[key]))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
