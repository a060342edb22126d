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

// NewListsCommand creates the lists command group.
func NewListsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lists",
		Aliases: []string{"list"},
		Short:   "Manage subscriber lists",
		Long:    "List and manage phpList subscriber lists",
	}

	cmd.AddCommand(newListsListCommand())
	cmd.AddCommand(newListsGetCommand())
	cmd.AddCommand(newListsCreateCommand())
	cmd.AddCommand(newListsDeleteCommand())
	cmd.AddCommand(newListsMembersCommand())
	cmd.AddCommand(newListsSubscribeCommand())
	cmd.AddCommand(newListsUnsubscribeCommand())

	return cmd
}

func newListsListCommand() *cobra.Command {
	var (
		afterID int
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriber lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			lists, err := client.Lists().List(context.Background(), listOptionsFromFlags(afterID, limit))
			if err != nil {
				return fmt.Errorf("failed to list lists: %w", err)
			}

			done, err := outputObject(lists.Items)
			if done || err != nil {
				return err
			}

			if len(lists.Items) == 0 {
				fmt.Println("No lists found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Public", "Description")

			for _, list := range lists.Items {
				_ = table.Append(
					strconv.Itoa(list.ID),
					list.Name,
					formatBool(list.Public),
					formatOptString(list.Description),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			printPaginationHint(lists.Pagination)

			return nil
		},
	}

	cmd.Flags().IntVar(&afterID, "after-id", 0, "return lists with an ID greater than this")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")

	return cmd
}

func newListsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LIST_ID",
		Short: "Get list details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid list ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			list, err := client.Lists().Get(ctx, listID)
			if err != nil {
				return fmt.Errorf("failed to get list: %w", err)
			}

			count, err := client.Lists().CountMembers(ctx, listID)
			if err != nil {
				return fmt.Errorf("failed to count list members: %w", err)
			}

			done, err := outputObject(list)
			if done || err != nil {
				return err
			}

			fmt.Printf("List: %s\n", list.Name)
			fmt.Printf("  ID:          %d\n", list.ID)
			fmt.Printf("  Public:      %s\n", formatBool(list.Public))
			fmt.Printf("  Subscribers: %d\n", count)
			fmt.Printf("  Created:     %s\n", list.CreatedAt.Format(displayTimeLayout))

			if list.Description != nil {
				fmt.Printf("  Description: %s\n", *list.Description)
			}

			if list.Category != nil {
				fmt.Printf("  Category:    %s\n", *list.Category)
			}

			return nil
		},
	}
}

func newListsCreateCommand() *cobra.Command {
	var (
		public      bool
		description string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a subscriber list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &phplist.CreateSubscriberListRequest{Name: args[0]}
			if cmd.Flags().Changed("public") {
				request.Public = &public
			}

			if description != "" {
				request.Description = &description
			}

			list, err := client.Lists().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create list: %w", err)
			}

			fmt.Printf("Created list %s (ID %d)\n", list.Name, list.ID)

			return nil
		},
	}

	cmd.Flags().BoolVar(&public, "public", false, "make the list publicly visible")
	cmd.Flags().StringVar(&description, "description", "", "list description")

	return cmd
}

func newListsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete LIST_ID",
		Short: "Delete a subscriber list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid list ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.Lists().Delete(context.Background(), listID); err != nil {
				return fmt.Errorf("failed to delete list: %w", err)
			}

			fmt.Printf("Deleted list %d\n", listID)

			return nil
		},
	}
}

func newListsMembersCommand() *cobra.Command {
	var (
		afterID int
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "members LIST_ID",
		Short: "List the subscribers of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid list ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			members, err := client.Lists().Members(context.Background(), listID, listOptionsFromFlags(afterID, limit))
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			done, err := outputObject(members.Items)
			if done || err != nil {
				return err
			}

			if len(members.Items) == 0 {
				fmt.Println("No members found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Email", "Confirmed")

			for _, member := range members.Items {
				_ = table.Append(strconv.Itoa(member.ID), member.Email, formatBool(member.Confirmed))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			printPaginationHint(members.Pagination)

			return nil
		},
	}

	cmd.Flags().IntVar(&afterID, "after-id", 0, "return members with an ID greater than this")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")

	return cmd
}

func newListsSubscribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe LIST_ID SUBSCRIBER_ID",
		Short: "Add a subscriber to a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid list ID %q: %w", args[0], err)
			}

			subscriberID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid subscriber ID %q: %w", args[1], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			subscription, err := client.Lists().AddSubscriber(context.Background(), listID, subscriberID)
			if err != nil {
				return fmt.Errorf("failed to subscribe: %w", err)
			}

			fmt.Printf("Subscribed %s to %s\n", subscription.Subscriber.Email, subscription.SubscriberList.Name)

			return nil
		},
	}
}

func newListsUnsubscribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe LIST_ID SUBSCRIBER_ID",
		Short: "Remove a subscriber from a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid list ID %q: %w", args[0], err)
			}

			subscriberID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid subscriber ID %q: %w", args[1], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.Lists().RemoveSubscriber(context.Background(), listID, subscriberID); err != nil {
				return fmt.Errorf("failed to unsubscribe: %w", err)
			}

			fmt.Printf("Removed subscriber %d from list %d\n", subscriberID, listID)

			return nil
		},
	}
}
