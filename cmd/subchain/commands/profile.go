package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// NewProfileCommand creates the profile command group
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the merchant account",
	}

	cmd.AddCommand(newProfileGetCommand())
	cmd.AddCommand(newProfileUpdateCommand())
	cmd.AddCommand(newProfileSettingsCommand())
	cmd.AddCommand(newProfileActivityCommand())

	return cmd
}

func newProfileGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the merchant profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			user, err := client.GetProfile(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get profile: %w", err)
			}

			if handled, err := structuredOutput(user); handled {
				return err
			}

			fmt.Printf("Email:    %s\n", user.Email)
			fmt.Printf("Username: %s\n", user.Username)
			fmt.Printf("Name:     %s %s\n", user.FirstName, user.LastName)
			fmt.Printf("Company:  %s\n", user.CompanyName)
			fmt.Printf("Wallet:   %s\n", user.WalletAddress)

			return nil
		},
	}
}

func newProfileUpdateCommand() *cobra.Command {
	var (
		firstName string
		lastName  string
		company   string
		wallet    string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the merchant profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &subchain.ProfileUpdateRequest{}
			if cmd.Flags().Changed("first-name") {
				request.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				request.LastName = &lastName
			}
			if cmd.Flags().Changed("company") {
				request.CompanyName = &company
			}
			if cmd.Flags().Changed("wallet") {
				request.WalletAddress = &wallet
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			user, err := client.UpdateProfile(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}

			fmt.Printf("Updated profile for %s\n", user.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&wallet, "wallet", "", "payout wallet address")

	return cmd
}

func newProfileSettingsCommand() *cobra.Command {
	var (
		webhookURL      string
		defaultCurrency string
		emailEnabled    bool
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update account settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if cmd.Flags().Changed("webhook-url") || cmd.Flags().Changed("currency") || cmd.Flags().Changed("email-notifications") {
				request := &subchain.SettingsUpdateRequest{}
				if cmd.Flags().Changed("webhook-url") {
					request.WebhookURL = &webhookURL
				}
				if cmd.Flags().Changed("currency") {
					request.DefaultCurrency = &defaultCurrency
				}
				if cmd.Flags().Changed("email-notifications") {
					request.EmailNotifications = &emailEnabled
				}

				settings, err := client.UpdateSettings(ctx, request)
				if err != nil {
					return fmt.Errorf("failed to update settings: %w", err)
				}

				fmt.Printf("Settings updated (currency %s)\n", settings.DefaultCurrency)

				return nil
			}

			settings, err := client.GetSettings(ctx)
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}

			if handled, err := structuredOutput(settings); handled {
				return err
			}

			fmt.Printf("Email notifications: %s\n", yesNo(settings.EmailNotifications))
			fmt.Printf("Webhook URL:         %s\n", settings.WebhookURL)
			fmt.Printf("Default currency:    %s\n", settings.DefaultCurrency)
			fmt.Printf("Invoice due days:    %d\n", settings.InvoiceDueDays)
			fmt.Printf("Auto-collect:        %s\n", yesNo(settings.AutoCollectInvoices))

			return nil
		},
	}

	cmd.Flags().StringVar(&webhookURL, "webhook-url", "", "webhook endpoint URL")
	cmd.Flags().StringVar(&defaultCurrency, "currency", "", "default billing currency")
	cmd.Flags().BoolVar(&emailEnabled, "email-notifications", true, "enable email notifications")

	return cmd
}

func newProfileActivityCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "List account activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			activity, err := client.ListActivity(context.Background(), flags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list activity: %w", err)
			}

			if handled, err := structuredOutput(activity.Results); handled {
				return err
			}

			if len(activity.Results) == 0 {
				fmt.Println("No activity found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("When", "Action", "IP", "User Agent")

			for _, entry := range activity.Results {
				table.Append(
					entry.CreatedAt.Format("2006-01-02 15:04"),
					entry.Action,
					entry.IPAddress,
					entry.UserAgent,
				)
			}

			table.Render()

			return nil
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}
