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

// NewCampaignsCommand creates the campaigns command group.
func NewCampaignsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "campaigns",
		Aliases: []string{"campaign", "messages"},
		Short:   "Manage campaigns",
		Long:    "List and manage phpList campaigns",
	}

	cmd.AddCommand(newCampaignsListCommand())
	cmd.AddCommand(newCampaignsGetCommand())
	cmd.AddCommand(newCampaignsCreateCommand())
	cmd.AddCommand(newCampaignsSubmitCommand())
	cmd.AddCommand(newCampaignsDeleteCommand())
	cmd.AddCommand(newCampaignsListsCommand())

	return cmd
}

func campaignSubject(campaign *phplist.Campaign) string {
	if campaign.Content != nil && campaign.Content.Subject != nil {
		return *campaign.Content.Subject
	}

	return NotAvailable
}

func campaignStatus(campaign *phplist.Campaign) string {
	if campaign.Metadata != nil && campaign.Metadata.Status != nil {
		return *campaign.Metadata.Status
	}

	return NotAvailable
}

func newCampaignsListCommand() *cobra.Command {
	var (
		afterID int
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			campaigns, err := client.Campaigns().List(context.Background(), listOptionsFromFlags(afterID, limit))
			if err != nil {
				return fmt.Errorf("failed to list campaigns: %w", err)
			}

			done, err := outputObject(campaigns.Items)
			if done || err != nil {
				return err
			}

			if len(campaigns.Items) == 0 {
				fmt.Println("No campaigns found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Subject", "Status", "Views")

			for _, campaign := range campaigns.Items {
				views := NotAvailable
				if campaign.Metadata != nil && campaign.Metadata.Views != nil {
					views = strconv.Itoa(*campaign.Metadata.Views)
				}

				_ = table.Append(
					strconv.Itoa(campaign.ID),
					campaignSubject(campaign),
					campaignStatus(campaign),
					views,
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			printPaginationHint(campaigns.Pagination)

			return nil
		},
	}

	cmd.Flags().IntVar(&afterID, "after-id", 0, "return campaigns with an ID greater than this")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")

	return cmd
}

func newCampaignsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CAMPAIGN_ID",
		Short: "Get campaign details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaignID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			campaign, err := client.Campaigns().Get(context.Background(), campaignID)
			if err != nil {
				return fmt.Errorf("failed to get campaign: %w", err)
			}

			done, err := outputObject(campaign)
			if done || err != nil {
				return err
			}

			fmt.Printf("Campaign: %s\n", campaignSubject(campaign))
			fmt.Printf("  ID:        %d\n", campaign.ID)
			fmt.Printf("  Unique ID: %s\n", campaign.UniqueID)
			fmt.Printf("  Status:    %s\n", campaignStatus(campaign))

			if campaign.Metadata != nil {
				if campaign.Metadata.Views != nil {
					fmt.Printf("  Views:     %d\n", *campaign.Metadata.Views)
				}

				if campaign.Metadata.Sent != nil {
					fmt.Printf("  Sent:      %s\n", formatTime(campaign.Metadata.Sent))
				}
			}

			if campaign.Template != nil {
				fmt.Printf("  Template:  %s (ID %d)\n", campaign.Template.Title, campaign.Template.ID)
			}

			return nil
		},
	}
}

func newCampaignsCreateCommand() *cobra.Command {
	var (
		subject    string
		text       string
		templateID int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a draft campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			status := "draft"
			request := &phplist.CreateCampaignRequest{
				Content:  &phplist.CampaignContentRequest{Subject: &subject},
				Metadata: &phplist.CampaignMetadataRequest{Status: &status},
			}

			if text != "" {
				request.Content.Text = &text
			}

			if templateID > 0 {
				request.TemplateID = &templateID
			}

			campaign, err := client.Campaigns().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create campaign: %w", err)
			}

			fmt.Printf("Created draft campaign %d\n", campaign.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "campaign subject")
	cmd.Flags().StringVar(&text, "text", "", "campaign body text")
	cmd.Flags().IntVar(&templateID, "template", 0, "template ID to render the campaign with")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newCampaignsSubmitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "submit CAMPAIGN_ID",
		Short: "Submit a campaign for sending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaignID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			status := "submitted"

			_, err = client.Campaigns().Update(context.Background(), campaignID, &phplist.UpdateCampaignRequest{
				Metadata: &phplist.CampaignMetadataRequest{Status: &status},
			})
			if err != nil {
				return fmt.Errorf("failed to submit campaign: %w", err)
			}

			fmt.Printf("Submitted campaign %d\n", campaignID)

			return nil
		},
	}
}

func newCampaignsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CAMPAIGN_ID",
		Short: "Delete a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaignID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.Campaigns().Delete(context.Background(), campaignID); err != nil {
				return fmt.Errorf("failed to delete campaign: %w", err)
			}

			fmt.Printf("Deleted campaign %d\n", campaignID)

			return nil
		},
	}
}

func newCampaignsListsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lists CAMPAIGN_ID",
		Short: "Show the lists a campaign is sent to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaignID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			lists, err := client.ListMessages().ListsForCampaign(context.Background(), campaignID, nil)
			if err != nil {
				return fmt.Errorf("failed to list campaign lists: %w", err)
			}

			done, err := outputObject(lists.Items)
			if done || err != nil {
				return err
			}

			if len(lists.Items) == 0 {
				fmt.Println("Campaign is not assigned to any list")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Public")

			for _, list := range lists.Items {
				_ = table.Append(strconv.Itoa(list.ID), list.Name, formatBool(list.Public))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
