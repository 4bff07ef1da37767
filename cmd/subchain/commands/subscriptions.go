package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// NewSubscriptionsCommand creates the subscriptions command group
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Manage subscriptions",
		Long:    "List and manage subscriber agreements",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsCreateCommand())
	cmd.AddCommand(newSubscriptionsActionCommand("cancel", "Cancel a subscription at the period end", func(client subchain.Client) actionFunc {
		return client.Subscriptions().Cancel
	}))
	cmd.AddCommand(newSubscriptionsActionCommand("resume", "Resume a subscription set to cancel", func(client subchain.Client) actionFunc {
		return client.Subscriptions().Resume
	}))
	cmd.AddCommand(newSubscriptionsActionCommand("activate", "Activate a pending subscription", func(client subchain.Client) actionFunc {
		return client.Subscriptions().Activate
	}))

	return cmd
}

type actionFunc func(ctx context.Context, id int64) (*subchain.Subscription, error)

func newSubscriptionsListCommand() *cobra.Command {
	var (
		flags  listFlags
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := flags.toParams()
			if status != "" {
				params.WithFilter("status", status)
			}

			subs, err := client.Subscriptions().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			if handled, err := structuredOutput(subs.Results); handled {
				return err
			}

			if len(subs.Results) == 0 {
				fmt.Println("No subscriptions found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Plan", "Subscriber", "Wallet", "Status", "Cancel at Period End")

			for _, sub := range subs.Results {
				planName := fmt.Sprintf("%d", sub.PlanID)
				if sub.Plan != nil {
					planName = sub.Plan.Name
				}

				table.Append(
					fmt.Sprintf("%d", sub.ID),
					planName,
					sub.SubscriberEmail,
					sub.WalletAddress,
					sub.Status,
					yesNo(sub.CancelAtPeriodEnd),
				)
			}

			table.Render()

			return nil
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().StringVar(&status, "status", "", "filter by status (active, trialing, past_due, canceled)")

	return cmd
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a subscription",
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

			sub, err := client.Subscriptions().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}

			if handled, err := structuredOutput(sub); handled {
				return err
			}

			fmt.Printf("ID:         %d\n", sub.ID)
			fmt.Printf("Plan:       %d\n", sub.PlanID)
			fmt.Printf("Subscriber: %s\n", sub.SubscriberEmail)
			fmt.Printf("Wallet:     %s\n", sub.WalletAddress)
			fmt.Printf("Status:     %s\n", sub.Status)
			if sub.CurrentPeriodEnd != nil {
				fmt.Printf("Period end: %s\n", sub.CurrentPeriodEnd.Format("2006-01-02"))
			}

			return nil
		},
	}
}

func newSubscriptionsCreateCommand() *cobra.Command {
	var (
		planID int64
		email  string
		wallet string
		coupon string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			sub, err := client.Subscriptions().Create(context.Background(), &subchain.SubscriptionCreateRequest{
				PlanID:          planID,
				SubscriberEmail: email,
				WalletAddress:   wallet,
				CouponCode:      coupon,
			})
			if err != nil {
				return fmt.Errorf("failed to create subscription: %w", err)
			}

			fmt.Printf("Created subscription %d (%s)\n", sub.ID, sub.Status)

			return nil
		},
	}

	cmd.Flags().Int64Var(&planID, "plan", 0, "plan ID")
	cmd.Flags().StringVar(&email, "email", "", "subscriber email")
	cmd.Flags().StringVar(&wallet, "wallet", "", "subscriber wallet address")
	cmd.Flags().StringVar(&coupon, "coupon", "", "coupon code")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("wallet")

	return cmd
}

func newSubscriptionsActionCommand(verb, short string, resolve func(subchain.Client) actionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " ID",
		Short: short,
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

			sub, err := resolve(client)(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to %s subscription: %w", verb, err)
			}

			fmt.Printf("Subscription %d is now %s\n", sub.ID, sub.Status)

			return nil
		},
	}
}
