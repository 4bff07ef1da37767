package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCurrencyCommand creates the currency command group
func NewCurrencyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Currencies, exchange rates, and conversion",
	}

	cmd.AddCommand(newCurrencyListCommand())
	cmd.AddCommand(newCurrencyRatesCommand())
	cmd.AddCommand(newCurrencyConvertCommand())

	return cmd
}

func newCurrencyListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			currencies, err := client.Currency().ListCurrencies(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list currencies: %w", err)
			}

			if handled, err := structuredOutput(currencies.Results); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Code", "Name", "Symbol", "Decimals", "Crypto")

			for _, currency := range currencies.Results {
				table.Append(
					currency.Code,
					currency.Name,
					currency.Symbol,
					fmt.Sprintf("%d", currency.Decimals),
					yesNo(currency.IsCrypto),
				)
			}

			table.Render()

			return nil
		},
	}
}

func newCurrencyRatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "List exchange rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			rates, err := client.Currency().ListExchangeRates(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list exchange rates: %w", err)
			}

			if handled, err := structuredOutput(rates.Results); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Base", "Quote", "Rate", "Fetched")

			for _, rate := range rates.Results {
				table.Append(rate.Base, rate.Quote, rate.Rate, rate.FetchedAt.Format("2006-01-02 15:04:05"))
			}

			table.Render()

			return nil
		},
	}
}

func newCurrencyConvertCommand() *cobra.Command {
	var (
		from   string
		to     string
		amount string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount between currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			conversion, err := client.Currency().Convert(context.Background(), from, to, amount)
			if err != nil {
				return fmt.Errorf("failed to convert: %w", err)
			}

			if handled, err := structuredOutput(conversion); handled {
				return err
			}

			fmt.Printf("%s %s = %s %s (rate %s)\n", conversion.Amount, conversion.From, conversion.Converted, conversion.To, conversion.Rate)

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source currency code")
	cmd.Flags().StringVar(&to, "to", "", "target currency code")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to convert")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
