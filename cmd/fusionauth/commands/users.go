package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fusionauth-community/go-client/internal/constants"
	"github.com/fusionauth-community/go-client/pkg/fusionauth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List, retrieve, create, deactivate, delete, and search FusionAuth users",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersDeactivateCommand())
	cmd.AddCommand(newUsersReactivateCommand())
	cmd.AddCommand(newUsersDeleteCommand())
	cmd.AddCommand(newUsersSearchCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		pageSize int
		startRow int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List users on the server, paged with --page-size and --start-row",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersSearch(cmd, "*", pageSize, startRow)
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", constants.DefaultSearchPageSize, "results per page")
	cmd.Flags().IntVar(&startRow, "start-row", 0, "row offset of the first result")

	return cmd
}

func newUsersSearchCommand() *cobra.Command {
	var (
		pageSize int
		startRow int
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search users",
		Long:  "Search users with an Elasticsearch query string, like 'email:*@example.com'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersSearch(cmd, args[0], pageSize, startRow)
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", constants.DefaultSearchPageSize, "results per page")
	cmd.Flags().IntVar(&startRow, "start-row", 0, "row offset of the first result")

	return cmd
}

func runUsersSearch(cmd *cobra.Command, queryString string, pageSize, startRow int) error {
	apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
	if err != nil {
		return err
	}

	if pageSize > constants.MaxSearchPageSize {
		pageSize = constants.MaxSearchPageSize
	}

	request := &fusionauth.SearchRequest{
		Search: fusionauth.SearchCriteria{
			QueryString:     queryString,
			NumberOfResults: pageSize,
			StartRow:        startRow,
		},
	}

	response, err := apiClient.Users().Search(context.Background(), request)
	if err != nil {
		return fmt.Errorf("failed to search users: %w", err)
	}

	return outputUsers(response.Users, response.Total, startRow)
}

func outputUsers(users []fusionauth.User, total int64, startRow int) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(users)
	case OutputFormatYAML:
		return StandardYAMLRenderer(users)
	default:
		return renderUserTable(users, total, startRow)
	}
}

func renderUserTable(users []fusionauth.User, total int64, startRow int) error {
	if len(users) == 0 {
		_, _ = os.Stdout.WriteString("No users found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Email", "Username", "ID", "State", "Last Login")

	for _, user := range users {
		_ = table.Append(valueOrNA(user.Email), valueOrNA(user.Username), user.ID,
			formatActive(user.Active), formatInstant(user.LastLoginInstant))
	}

	_ = table.Render()

	if total > int64(startRow+len(users)) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d users. Use --start-row to page.\n", len(users), total)
	}

	return nil
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID_OR_LOGIN",
		Short: "Get user details",
		Long:  "Display a user looked up by ID, email address, or username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersGetCommand(cmd, args[0])
		},
	}
}

func runUsersGetCommand(cmd *cobra.Command, identifier string) error {
	apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
	if err != nil {
		return err
	}

	response, err := findUser(context.Background(), apiClient, identifier)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	return outputUserDetails(&response.User)
}

// findUser looks a user up by UUID, email address, or username.
func findUser(ctx context.Context, apiClient fusionauth.Client, identifier string) (*fusionauth.UserResponse, error) {
	users := apiClient.Users()

	if looksLikeUUID(identifier) {
		return users.Retrieve(ctx, identifier)
	}

	if strings.Contains(identifier, "@") {
		return users.RetrieveByEmail(ctx, identifier)
	}

	return users.RetrieveByUsername(ctx, identifier)
}

// looksLikeUUID reports whether the identifier has the 8-4-4-4-12 shape
// of a UUID.
func looksLikeUUID(identifier string) bool {
	if len(identifier) != 36 {
		return false
	}

	for _, position := range []int{8, 13, 18, 23} {
		if identifier[position] != '-' {
			return false
		}
	}

	return true
}

func outputUserDetails(user *fusionauth.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(user)
	case OutputFormatYAML:
		return StandardYAMLRenderer(user)
	default:
		return renderUserDetailsTable(user)
	}
}

func renderUserDetailsTable(user *fusionauth.User) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", user.ID)
	_ = table.Append("Email", valueOrNA(user.Email))
	_ = table.Append("Username", valueOrNA(user.Username))
	_ = table.Append("Name", valueOrNA(fullName(user)))
	_ = table.Append("State", formatActive(user.Active))
	_ = table.Append("Verified", strconv.FormatBool(user.Verified))
	_ = table.Append("Tenant", valueOrNA(user.TenantID))
	_ = table.Append("Created", formatInstant(user.InsertInstant))
	_ = table.Append("Last Login", formatInstant(user.LastLoginInstant))

	if len(user.Registrations) > 0 {
		applications := make([]string, 0, len(user.Registrations))
		for _, registration := range user.Registrations {
			applications = append(applications, registration.ApplicationID)
		}

		_ = table.Append("Registrations", strings.Join(applications, "\n"))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func fullName(user *fusionauth.User) string {
	if user.FullName != "" {
		return user.FullName
	}

	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}

func newUsersCreateCommand() *cobra.Command {
	var (
		email                string
		username             string
		password             string
		firstName            string
		lastName             string
		sendSetPasswordEmail bool
		skipVerification     bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long:  "Create a user identified by an email address or username",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &fusionauth.UserRequest{
				SendSetPasswordEmail: sendSetPasswordEmail,
				SkipVerification:     skipVerification,
				User: fusionauth.User{
					Email:     email,
					Username:  username,
					Password:  password,
					FirstName: firstName,
					LastName:  lastName,
				},
			}

			return runUsersCreateCommand(cmd, request)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().BoolVar(&sendSetPasswordEmail, "send-set-password-email", false, "email the user a link to choose a password")
	cmd.Flags().BoolVar(&skipVerification, "skip-verification", false, "skip email verification")

	return cmd
}

func runUsersCreateCommand(cmd *cobra.Command, request *fusionauth.UserRequest) error {
	apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
	if err != nil {
		return err
	}

	// An empty user ID lets the server generate one
	response, err := apiClient.Users().Create(context.Background(), "", request)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("%s User created with ID %s\n", Colors().Success.Sprint("OK"), response.User.ID)

	return nil
}

func newUsersDeactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate USER_ID",
		Short: "Deactivate a user",
		Long:  "Deactivate a user, keeping the account recoverable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			err = apiClient.Users().Deactivate(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to deactivate user: %w", err)
			}

			fmt.Printf("User %s deactivated\n", args[0])

			return nil
		},
	}
}

func newUsersReactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reactivate USER_ID",
		Short: "Reactivate a user",
		Long:  "Restore a previously deactivated user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			_, err = apiClient.Users().Reactivate(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to reactivate user: %w", err)
			}

			fmt.Printf("User %s reactivated\n", args[0])

			return nil
		},
	}
}

func newUsersDeleteCommand() *cobra.Command {
	var hardDelete bool

	cmd := &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user",
		Long:  "Delete a user. Without --hard the account is deactivated and recoverable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := CreateClientWithServer(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			err = apiClient.Users().Delete(context.Background(), args[0], hardDelete)
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			if hardDelete {
				fmt.Printf("User %s permanently deleted\n", args[0])
			} else {
				fmt.Printf("User %s deactivated\n", args[0])
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&hardDelete, "hard", false, "permanently erase the user and all of their data")

	return cmd
}
