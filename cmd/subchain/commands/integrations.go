package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// NewIntegrationsCommand creates the integrations command group
func NewIntegrationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "integrations",
		Aliases: []string{"integration"},
		Short:   "Manage third-party integrations",
	}

	cmd.AddCommand(newIntegrationsListCommand())
	cmd.AddCommand(newIntegrationsCreateCommand())
	cmd.AddCommand(newIntegrationsDeleteCommand())

	return cmd
}

func newIntegrationsListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List integrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			integrations, err := client.Integrations().List(context.Background(), flags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list integrations: %w", err)
			}

			if handled, err := structuredOutput(integrations.Results); handled {
				return err
			}

			if len(integrations.Results) == 0 {
				fmt.Println("No integrations found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Provider", "Name", "Active")

			for _, integration := range integrations.Results {
				table.Append(
					fmt.Sprintf("%d", integration.ID),
					integration.Provider,
					integration.Name,
					yesNo(integration.IsActive),
				)
			}

			table.Render()

			return nil
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func newIntegrationsCreateCommand() *cobra.Command {
	var (
		provider string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			integration, err := client.Integrations().Create(context.Background(), &subchain.IntegrationCreateRequest{
				Provider: provider,
				Name:     name,
			})
			if err != nil {
				return fmt.Errorf("failed to create integration: %w", err)
			}

			fmt.Printf("Created integration %d (%s)\n", integration.ID, integration.Provider)

			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "integration provider")
	cmd.Flags().StringVar(&name, "name", "", "integration name")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newIntegrationsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an integration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Integrations().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete integration: %w", err)
			}

			fmt.Printf("Deleted integration %d\n", id)

			return nil
		},
	}
}
