package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/phplist/go-client/pkg/phplist"
	"github.com/spf13/cobra"
)

// NewAdministratorsCommand creates the administrators command group.
func NewAdministratorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "administrators",
		Aliases: []string{"administrator", "admins"},
		Short:   "Manage administrators",
		Long:    "List and manage phpList administrators",
	}

	cmd.AddCommand(newAdministratorsListCommand())
	cmd.AddCommand(newAdministratorsCreateCommand())
	cmd.AddCommand(newAdministratorsDeleteCommand())
	cmd.AddCommand(newAdministratorsResetPasswordCommand())

	return cmd
}

func newAdministratorsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List administrators",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			administrators, err := client.Administrators().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list administrators: %w", err)
			}

			done, err := outputObject(administrators.Items)
			if done || err != nil {
				return err
			}

			if len(administrators.Items) == 0 {
				fmt.Println("No administrators found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Login", "Email", "Super user", "Created")

			for _, admin := range administrators.Items {
				_ = table.Append(
					strconv.Itoa(admin.ID),
					admin.LoginName,
					admin.Email,
					formatBool(admin.SuperUser),
					admin.CreatedAt.Format(displayTimeLayout),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newAdministratorsCreateCommand() *cobra.Command {
	var (
		email     string
		password  string
		superUser bool
	)

	cmd := &cobra.Command{
		Use:   "create LOGIN_NAME",
		Short: "Create an administrator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			admin, err := client.Administrators().Create(context.Background(), &phplist.CreateAdministratorRequest{
				LoginName: args[0],
				Password:  password,
				Email:     email,
				SuperUser: superUser,
			})
			if err != nil {
				return fmt.Errorf("failed to create administrator: %w", err)
			}

			fmt.Printf("Created administrator %s (ID %d)\n", admin.LoginName, admin.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "administrator email address")
	cmd.Flags().StringVar(&password, "password", "", "administrator password")
	cmd.Flags().BoolVar(&superUser, "super-user", false, "grant super user privileges")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAdministratorsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ADMINISTRATOR_ID",
		Short: "Delete an administrator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adminID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid administrator ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.Administrators().Delete(context.Background(), adminID); err != nil {
				return fmt.Errorf("failed to delete administrator: %w", err)
			}

			fmt.Printf("Deleted administrator %d\n", adminID)

			return nil
		},
	}
}

func newAdministratorsResetPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password EMAIL",
		Short: "Request a password reset email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.PasswordReset().Request(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to request password reset: %w", err)
			}

			if result.Message != nil {
				fmt.Println(*result.Message)
			} else {
				fmt.Println("Password reset requested")
			}

			return nil
		},
	}
}
