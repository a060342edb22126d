package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command group.
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"statistics"},
		Short:   "View delivery statistics",
		Long:    "View phpList campaign and audience statistics",
	}

	cmd.AddCommand(newStatsCampaignsCommand())
	cmd.AddCommand(newStatsOpensCommand())
	cmd.AddCommand(newStatsDomainsCommand())
	cmd.AddCommand(newStatsConfirmationsCommand())

	return cmd
}

func newStatsCampaignsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Per-campaign delivery statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			stats, err := client.Statistics().CampaignStatistics(context.Background(), listOptionsFromFlags(0, limit))
			if err != nil {
				return fmt.Errorf("failed to get campaign statistics: %w", err)
			}

			done, err := outputObject(stats.Items)
			if done || err != nil {
				return err
			}

			if len(stats.Items) == 0 {
				fmt.Println("No statistics found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Campaign", "Subject", "Sent", "Bounces", "Views", "Clicks")

			for _, stat := range stats.Items {
				_ = table.Append(
					strconv.Itoa(stat.CampaignID),
					stat.Subject,
					strconv.Itoa(stat.Sent),
					strconv.Itoa(stat.Bounces),
					strconv.Itoa(stat.UniqueViews),
					strconv.Itoa(stat.UniqueClicks),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			printPaginationHint(stats.Pagination)

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")

	return cmd
}

func newStatsOpensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "opens",
		Short: "Campaign open rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opens, err := client.Statistics().ViewOpens(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to get view opens: %w", err)
			}

			done, err := outputObject(opens.Items)
			if done || err != nil {
				return err
			}

			if len(opens.Items) == 0 {
				fmt.Println("No statistics found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Campaign", "Subject", "Sent", "Unique views", "Rate %")

			for _, open := range opens.Items {
				_ = table.Append(
					strconv.Itoa(open.CampaignID),
					open.Subject,
					strconv.Itoa(open.Sent),
					strconv.Itoa(open.UniqueViews),
					fmt.Sprintf("%.1f", open.Rate),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newStatsDomainsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "domains",
		Short: "Subscriber counts for the most common domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			domains, err := client.Statistics().TopDomains(context.Background(), listOptionsFromFlags(0, limit))
			if err != nil {
				return fmt.Errorf("failed to get top domains: %w", err)
			}

			done, err := outputObject(domains.Items)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Domain", "Subscribers", "Share %")

			for _, domain := range domains.Items {
				_ = table.Append(
					domain.Domain,
					strconv.Itoa(domain.Subscribers),
					fmt.Sprintf("%.1f", domain.Percentage),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")

	return cmd
}

func newStatsConfirmationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "confirmations",
		Short: "Confirmation rates per domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			confirmations, err := client.Statistics().DomainConfirmations(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to get domain confirmations: %w", err)
			}

			done, err := outputObject(confirmations.Items)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Domain", "Total", "Confirmed", "Unconfirmed", "Rate %")

			for _, confirmation := range confirmations.Items {
				_ = table.Append(
					confirmation.Domain,
					strconv.Itoa(confirmation.Total),
					strconv.Itoa(confirmation.Confirmed),
					strconv.Itoa(confirmation.Unconfirmed),
					fmt.Sprintf("%.1f", confirmation.ConfirmationRate),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
