package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// NewInvoicesCommand creates the invoices command group
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice"},
		Short:   "Manage invoices",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesCreateCommand())
	cmd.AddCommand(newInvoicesPayCommand())
	cmd.AddCommand(newInvoicesDeleteCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var (
		flags  listFlags
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := flags.toParams()
			if status != "" {
				params.WithFilter("status", status)
			}

			invoices, err := client.Invoices().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}

			if handled, err := structuredOutput(invoices.Results); handled {
				return err
			}

			if len(invoices.Results) == 0 {
				fmt.Println("No invoices found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Number", "Subscription", "Due", "Paid", "Currency", "Status")

			for _, invoice := range invoices.Results {
				table.Append(
					fmt.Sprintf("%d", invoice.ID),
					invoice.Number,
					fmt.Sprintf("%d", invoice.SubscriptionID),
					invoice.AmountDue,
					invoice.AmountPaid,
					invoice.Currency,
					invoice.Status,
				)
			}

			table.Render()

			return nil
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft, open, paid, void)")

	return cmd
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get an invoice",
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

			invoice, err := client.Invoices().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get invoice: %w", err)
			}

			if handled, err := structuredOutput(invoice); handled {
				return err
			}

			fmt.Printf("ID:           %d\n", invoice.ID)
			fmt.Printf("Number:       %s\n", invoice.Number)
			fmt.Printf("Subscription: %d\n", invoice.SubscriptionID)
			fmt.Printf("Amount due:   %s %s\n", invoice.AmountDue, invoice.Currency)
			fmt.Printf("Amount paid:  %s %s\n", invoice.AmountPaid, invoice.Currency)
			fmt.Printf("Status:       %s\n", invoice.Status)
			if invoice.DueDate != nil {
				fmt.Printf("Due date:     %s\n", invoice.DueDate.Format("2006-01-02"))
			}

			return nil
		},
	}
}

func newInvoicesCreateCommand() *cobra.Command {
	var (
		subscriptionID int64
		amount         string
		currency       string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Create(context.Background(), &subchain.InvoiceCreateRequest{
				SubscriptionID: subscriptionID,
				AmountDue:      amount,
				Currency:       currency,
			})
			if err != nil {
				return fmt.Errorf("failed to create invoice: %w", err)
			}

			fmt.Printf("Created invoice %s\n", invoice.Number)

			return nil
		},
	}

	cmd.Flags().Int64Var(&subscriptionID, "subscription", 0, "subscription ID")
	cmd.Flags().StringVar(&amount, "amount", "", "amount due")
	cmd.Flags().StringVar(&currency, "currency", "ALGO", "invoice currency")
	_ = cmd.MarkFlagRequired("subscription")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newInvoicesPayCommand() *cobra.Command {
	var (
		txHash  string
		network string
	)

	cmd := &cobra.Command{
		Use:   "pay ID",
		Short: "Record an on-chain payment against an invoice",
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

			invoice, err := client.Invoices().Pay(context.Background(), id, &subchain.InvoicePayRequest{
				TxHash:  txHash,
				Network: network,
			})
			if err != nil {
				return fmt.Errorf("failed to pay invoice: %w", err)
			}

			fmt.Printf("Invoice %s is now %s\n", invoice.Number, invoice.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&txHash, "tx-hash", "", "settlement transaction hash")
	cmd.Flags().StringVar(&network, "network", "", "blockchain network")
	_ = cmd.MarkFlagRequired("tx-hash")

	return cmd
}

func newInvoicesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an invoice",
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

			if err := client.Invoices().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete invoice: %w", err)
			}

			fmt.Printf("Deleted invoice %d\n", id)

			return nil
		},
	}
}
