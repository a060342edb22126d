package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewBlacklistCommand creates the blacklist command group.
func NewBlacklistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blacklist",
		Short: "Manage the email blacklist",
		Long:  "Check, add, and remove blacklisted email addresses",
	}

	cmd.AddCommand(newBlacklistCheckCommand())
	cmd.AddCommand(newBlacklistAddCommand())
	cmd.AddCommand(newBlacklistRemoveCommand())

	return cmd
}

func newBlacklistCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check EMAIL",
		Short: "Check whether an address is blacklisted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			status, err := client.Blacklist().Check(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to check blacklist: %w", err)
			}

			done, err := outputObject(status)
			if done || err != nil {
				return err
			}

			if !status.Blacklisted {
				fmt.Printf("%s is not blacklisted\n", status.Email)

				return nil
			}

			fmt.Printf("%s is blacklisted\n", status.Email)

			if status.Reason != nil {
				fmt.Printf("  Reason: %s\n", *status.Reason)
			}

			if status.AddedAt != nil {
				fmt.Printf("  Since:  %s\n", formatTime(status.AddedAt))
			}

			return nil
		},
	}
}

func newBlacklistAddCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "add EMAIL",
		Short: "Blacklist an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			status, err := client.Blacklist().Add(context.Background(), args[0], reason)
			if err != nil {
				return fmt.Errorf("failed to blacklist address: %w", err)
			}

			fmt.Printf("Blacklisted %s\n", status.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason for blacklisting")

	return cmd
}

func newBlacklistRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove EMAIL",
		Short: "Remove an address from the blacklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.Blacklist().Remove(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to remove from blacklist: %w", err)
			}

			fmt.Printf("Removed %s from the blacklist\n", args[0])

			return nil
		},
	}
}
