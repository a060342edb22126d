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

// NewBouncesCommand creates the bounces command group.
func NewBouncesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounces",
		Short: "Manage bounce handling rules",
		Long:  "List and manage the regex rules used to process bounced mail",
	}

	cmd.AddCommand(newBouncesListCommand())
	cmd.AddCommand(newBouncesAddCommand())
	cmd.AddCommand(newBouncesDeleteCommand())

	return cmd
}

func newBouncesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bounce regex rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			regexes, err := client.Bounces().ListRegexes(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list bounce rules: %w", err)
			}

			done, err := outputObject(regexes.Items)
			if done || err != nil {
				return err
			}

			if len(regexes.Items) == 0 {
				fmt.Println("No bounce rules found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Regex", "Action", "Matches")

			for _, regex := range regexes.Items {
				matches := NotAvailable
				if regex.Count != nil {
					matches = strconv.Itoa(*regex.Count)
				}

				_ = table.Append(
					strconv.Itoa(regex.ID),
					regex.Regex,
					formatOptString(regex.Action),
					matches,
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newBouncesAddCommand() *cobra.Command {
	var action string

	cmd := &cobra.Command{
		Use:   "add REGEX",
		Short: "Add or update a bounce regex rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &phplist.UpsertBounceRegexRequest{Regex: args[0]}
			if action != "" {
				request.Action = &action
			}

			regex, err := client.Bounces().UpsertRegex(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to save bounce rule: %w", err)
			}

			fmt.Printf("Saved bounce rule %d\n", regex.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "action to take on match (e.g. deleteuser, unconfirmuser)")

	return cmd
}

func newBouncesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete REGEX_ID",
		Short: "Delete a bounce regex rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regexID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid regex ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.Bounces().DeleteRegex(context.Background(), regexID); err != nil {
				return fmt.Errorf("failed to delete bounce rule: %w", err)
			}

			fmt.Printf("Deleted bounce rule %d\n", regexID)

			return nil
		},
	}
}
