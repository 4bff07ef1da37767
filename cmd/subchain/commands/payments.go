package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPaymentsCommand creates the payments command group
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Inspect on-chain payments",
	}

	cmd.AddCommand(newPaymentsListCommand())
	cmd.AddCommand(newPaymentsGetCommand())
	cmd.AddCommand(newPaymentsQRCommand())

	return cmd
}

func newPaymentsListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			payments, err := client.Payments().List(context.Background(), flags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list payments: %w", err)
			}

			if handled, err := structuredOutput(payments.Results); handled {
				return err
			}

			if len(payments.Results) == 0 {
				fmt.Println("No payments found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Invoice", "Amount", "Currency", "Network", "Status", "Tx Hash")

			for _, payment := range payments.Results {
				table.Append(
					fmt.Sprintf("%d", payment.ID),
					fmt.Sprintf("%d", payment.InvoiceID),
					payment.Amount,
					payment.Currency,
					payment.Network,
					payment.Status,
					payment.TxHash,
				)
			}

			table.Render()

			return nil
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func newPaymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a payment",
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

			payment, err := client.Payments().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get payment: %w", err)
			}

			if handled, err := structuredOutput(payment); handled {
				return err
			}

			fmt.Printf("ID:       %d\n", payment.ID)
			fmt.Printf("Invoice:  %d\n", payment.InvoiceID)
			fmt.Printf("Amount:   %s %s\n", payment.Amount, payment.Currency)
			fmt.Printf("Network:  %s\n", payment.Network)
			fmt.Printf("Status:   %s\n", payment.Status)
			fmt.Printf("Tx hash:  %s\n", payment.TxHash)
			if payment.ConfirmedAt != nil {
				fmt.Printf("Confirmed: %s\n", payment.ConfirmedAt.Format("2006-01-02 15:04:05"))
			}

			return nil
		},
	}
}

func newPaymentsQRCommand() *cobra.Command {
	var (
		amount   string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Print the payment QR code URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			fmt.Println(client.Payments().QRCodeURL(amount, currency))

			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "payment amount")
	cmd.Flags().StringVar(&currency, "currency", "ALGO", "payment currency")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
