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

// NewSubscribersCommand creates the subscribers command group.
func NewSubscribersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscribers",
		Aliases: []string{"subscriber", "subs"},
		Short:   "Manage subscribers",
		Long:    "List and manage phpList subscribers",
	}

	cmd.AddCommand(newSubscribersListCommand())
	cmd.AddCommand(newSubscribersGetCommand())
	cmd.AddCommand(newSubscribersAddCommand())
	cmd.AddCommand(newSubscribersDeleteCommand())
	cmd.AddCommand(newSubscribersHistoryCommand())
	cmd.AddCommand(newSubscribersExportCommand())
	cmd.AddCommand(newSubscribersImportCommand())

	return cmd
}

func newSubscribersListCommand() *cobra.Command {
	var (
		afterID int
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscribers",
		Long:  "List subscribers, paged by cursor",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			subscribers, err := client.Subscribers().List(context.Background(), listOptionsFromFlags(afterID, limit))
			if err != nil {
				return fmt.Errorf("failed to list subscribers: %w", err)
			}

			done, err := outputObject(subscribers.Items)
			if done || err != nil {
				return err
			}

			if len(subscribers.Items) == 0 {
				fmt.Println("No subscribers found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Email", "Confirmed", "Blacklisted", "Bounces", "Created")

			for _, subscriber := range subscribers.Items {
				_ = table.Append(
					strconv.Itoa(subscriber.ID),
					subscriber.Email,
					formatBool(subscriber.Confirmed),
					formatBool(subscriber.Blacklisted),
					strconv.Itoa(subscriber.BounceCount),
					formatTime(subscriber.CreatedAt),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			printPaginationHint(subscribers.Pagination)

			return nil
		},
	}

	cmd.Flags().IntVar(&afterID, "after-id", 0, "return subscribers with an ID greater than this")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")

	return cmd
}

func newSubscribersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIBER_ID",
		Short: "Get subscriber details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriberID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid subscriber ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			subscriber, err := client.Subscribers().Get(context.Background(), subscriberID)
			if err != nil {
				return fmt.Errorf("failed to get subscriber: %w", err)
			}

			done, err := outputObject(subscriber)
			if done || err != nil {
				return err
			}

			fmt.Printf("Subscriber: %s\n", subscriber.Email)
			fmt.Printf("  ID:           %d\n", subscriber.ID)
			fmt.Printf("  Unique ID:    %s\n", subscriber.UniqueID)
			fmt.Printf("  Confirmed:    %s\n", formatBool(subscriber.Confirmed))
			fmt.Printf("  Blacklisted:  %s\n", formatBool(subscriber.Blacklisted))
			fmt.Printf("  HTML email:   %s\n", formatBool(subscriber.HTMLEmail))
			fmt.Printf("  Disabled:     %s\n", formatBool(subscriber.Disabled))
			fmt.Printf("  Bounce count: %d\n", subscriber.BounceCount)
			fmt.Printf("  Created:      %s\n", formatTime(subscriber.CreatedAt))

			if len(subscriber.SubscribedLists) > 0 {
				fmt.Println("  Lists:")

				for _, list := range subscriber.SubscribedLists {
					fmt.Printf("    %d: %s\n", list.ID, list.Name)
				}
			}

			return nil
		},
	}
}

func newSubscribersAddCommand() *cobra.Command {
	var (
		requestConfirmation bool
		htmlEmail           bool
	)

	cmd := &cobra.Command{
		Use:   "add EMAIL",
		Short: "Add a subscriber",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			if email == "" {
				return ErrEmailRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &phplist.CreateSubscriberRequest{Email: email}
			if cmd.Flags().Changed("request-confirmation") {
				request.RequestConfirmation = &requestConfirmation
			}

			if cmd.Flags().Changed("html") {
				request.HTMLEmail = &htmlEmail
			}

			subscriber, err := client.Subscribers().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to add subscriber: %w", err)
			}

			fmt.Printf("Added subscriber %s (ID %d)\n", subscriber.Email, subscriber.ID)

			return nil
		},
	}

	cmd.Flags().BoolVar(&requestConfirmation, "request-confirmation", false, "send a confirmation request email")
	cmd.Flags().BoolVar(&htmlEmail, "html", false, "subscriber prefers HTML email")

	return cmd
}

func newSubscribersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SUBSCRIBER_ID",
		Short: "Delete a subscriber",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriberID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid subscriber ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.Subscribers().Delete(context.Background(), subscriberID); err != nil {
				return fmt.Errorf("failed to delete subscriber: %w", err)
			}

			fmt.Printf("Deleted subscriber %d\n", subscriberID)

			return nil
		},
	}
}

func newSubscribersHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history SUBSCRIBER_ID",
		Short: "Show subscriber activity history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriberID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid subscriber ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			var request *phplist.SubscriberHistoryRequest
			if limit > 0 {
				request = &phplist.SubscriberHistoryRequest{Limit: &limit}
			}

			history, err := client.Subscribers().History(context.Background(), subscriberID, request)
			if err != nil {
				return fmt.Errorf("failed to get subscriber history: %w", err)
			}

			done, err := outputObject(history.Items)
			if done || err != nil {
				return err
			}

			if len(history.Items) == 0 {
				fmt.Println("No history found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Date", "IP", "Summary")

			for _, entry := range history.Items {
				_ = table.Append(
					strconv.Itoa(entry.ID),
					formatTime(entry.CreatedAt),
					entry.IP,
					entry.Summary,
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of entries")

	return cmd
}

func newSubscribersExportCommand() *cobra.Command {
	var (
		listID  int
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export subscribers as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &phplist.ExportSubscribersRequest{}
			if listID > 0 {
				request.ListID = &listID
			}

			data, err := client.Subscribers().Export(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to export subscribers: %w", err)
			}

			if outFile == "" {
				_, err = os.Stdout.Write(data)

				return err
			}

			if err := os.WriteFile(outFile, data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}

			fmt.Printf("Exported %d bytes to %s\n", len(data), outFile)

			return nil
		},
	}

	cmd.Flags().IntVar(&listID, "list", 0, "restrict the export to one list")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write CSV to this file instead of stdout")

	return cmd
}

func newSubscribersImportCommand() *cobra.Command {
	var (
		listID         int
		updateExisting bool
	)

	cmd := &cobra.Command{
		Use:   "import CSV_FILE",
		Short: "Import subscribers from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &phplist.ImportSubscribersRequest{
				File:           file,
				Filename:       args[0],
				UpdateExisting: updateExisting,
			}
			if listID > 0 {
				request.ListID = &listID
			}

			result, err := client.Subscribers().Import(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to import subscribers: %w", err)
			}

			if result.Message != nil {
				fmt.Println(*result.Message)
			} else {
				fmt.Println("Import finished")
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&listID, "list", 0, "subscribe imported addresses to this list")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "update subscribers that already exist")

	return cmd
}
