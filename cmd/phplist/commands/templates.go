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

// NewTemplatesCommand creates the templates command group.
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "Manage templates",
		Long:    "List and manage phpList campaign templates",
	}

	cmd.AddCommand(newTemplatesListCommand())
	cmd.AddCommand(newTemplatesGetCommand())
	cmd.AddCommand(newTemplatesCreateCommand())
	cmd.AddCommand(newTemplatesDeleteCommand())

	return cmd
}

func newTemplatesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			templates, err := client.Templates().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}

			done, err := outputObject(templates.Items)
			if done || err != nil {
				return err
			}

			if len(templates.Items) == 0 {
				fmt.Println("No templates found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Title", "Images")

			for _, template := range templates.Items {
				_ = table.Append(
					strconv.Itoa(template.ID),
					template.Title,
					strconv.Itoa(len(template.Images)),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newTemplatesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TEMPLATE_ID",
		Short: "Get template details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid template ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			template, err := client.Templates().Get(context.Background(), templateID)
			if err != nil {
				return fmt.Errorf("failed to get template: %w", err)
			}

			done, err := outputObject(template)
			if done || err != nil {
				return err
			}

			fmt.Printf("Template: %s\n", template.Title)
			fmt.Printf("  ID: %d\n", template.ID)

			if template.Content != nil {
				fmt.Printf("  Content:\n%s\n", *template.Content)
			}

			return nil
		},
	}
}

func newTemplatesCreateCommand() *cobra.Command {
	var (
		contentFile string
		checkLinks  bool
	)

	cmd := &cobra.Command{
		Use:   "create TITLE",
		Short: "Create a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &phplist.CreateTemplateRequest{Title: args[0]}

			if contentFile != "" {
				data, err := os.ReadFile(contentFile)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", contentFile, err)
				}

				content := string(data)
				request.Content = &content
			}

			if cmd.Flags().Changed("check-links") {
				request.CheckLinks = &checkLinks
			}

			template, err := client.Templates().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create template: %w", err)
			}

			fmt.Printf("Created template %s (ID %d)\n", template.Title, template.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&contentFile, "content", "", "file containing the template HTML")
	cmd.Flags().BoolVar(&checkLinks, "check-links", false, "validate that links are personalized")

	return cmd
}

func newTemplatesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TEMPLATE_ID",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid template ID %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.Templates().Delete(context.Background(), templateID); err != nil {
				return fmt.Errorf("failed to delete template: %w", err)
			}

			fmt.Printf("Deleted template %d\n", templateID)

			return nil
		},
	}
}
