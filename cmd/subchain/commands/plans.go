package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// NewPlansCommand creates the plans command group
func NewPlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plans",
		Aliases: []string{"plan"},
		Short:   "Manage subscription plans",
		Long:    "List and manage the merchant's subscription plans",
	}

	cmd.AddCommand(newPlansListCommand())
	cmd.AddCommand(newPlansGetCommand())
	cmd.AddCommand(newPlansCreateCommand())
	cmd.AddCommand(newPlansUpdateCommand())
	cmd.AddCommand(newPlansDeleteCommand())

	return cmd
}

func newPlansListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			plans, err := client.Plans().List(context.Background(), flags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list plans: %w", err)
			}

			if handled, err := structuredOutput(plans.Results); handled {
				return err
			}

			if len(plans.Results) == 0 {
				fmt.Println("No plans found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Amount", "Currency", "Interval", "Trial Days", "Active", "Subscribers")

			for _, plan := range plans.Results {
				table.Append(
					fmt.Sprintf("%d", plan.ID),
					plan.Name,
					plan.Amount,
					plan.Currency,
					plan.Interval,
					fmt.Sprintf("%d", plan.TrialDays),
					yesNo(plan.IsActive),
					fmt.Sprintf("%d", plan.SubscriberCount),
				)
			}

			table.Render()

			return nil
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func newPlansGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a plan",
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

			plan, err := client.Plans().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get plan: %w", err)
			}

			if handled, err := structuredOutput(plan); handled {
				return err
			}

			fmt.Printf("ID:          %d\n", plan.ID)
			fmt.Printf("Name:        %s\n", plan.Name)
			fmt.Printf("Description: %s\n", plan.Description)
			fmt.Printf("Amount:      %s %s\n", plan.Amount, plan.Currency)
			fmt.Printf("Interval:    %s\n", plan.Interval)
			fmt.Printf("Trial days:  %d\n", plan.TrialDays)
			fmt.Printf("Active:      %s\n", yesNo(plan.IsActive))
			fmt.Printf("Subscribers: %d\n", plan.SubscriberCount)

			return nil
		},
	}
}

func newPlansCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		amount      string
		currency    string
		interval    string
		trialDays   int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			plan, err := client.Plans().Create(context.Background(), &subchain.PlanCreateRequest{
				Name:        name,
				Description: description,
				Amount:      amount,
				Currency:    currency,
				Interval:    interval,
				TrialDays:   trialDays,
			})
			if err != nil {
				return fmt.Errorf("failed to create plan: %w", err)
			}

			fmt.Printf("Created plan %d (%s)\n", plan.ID, plan.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "plan name")
	cmd.Flags().StringVar(&description, "description", "", "plan description")
	cmd.Flags().StringVar(&amount, "amount", "", "billing amount")
	cmd.Flags().StringVar(&currency, "currency", "ALGO", "billing currency")
	cmd.Flags().StringVar(&interval, "interval", "monthly", "billing interval")
	cmd.Flags().IntVar(&trialDays, "trial-days", 0, "free trial length in days")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newPlansUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
		amount      string
		active      bool
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			request := &subchain.PlanUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}
			if cmd.Flags().Changed("description") {
				request.Description = &description
			}
			if cmd.Flags().Changed("amount") {
				request.Amount = &amount
			}
			if cmd.Flags().Changed("active") {
				request.IsActive = &active
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			plan, err := client.Plans().Update(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to update plan: %w", err)
			}

			fmt.Printf("Updated plan %d (%s)\n", plan.ID, plan.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "plan name")
	cmd.Flags().StringVar(&description, "description", "", "plan description")
	cmd.Flags().StringVar(&amount, "amount", "", "billing amount")
	cmd.Flags().BoolVar(&active, "active", true, "whether the plan accepts new subscribers")

	return cmd
}

func newPlansDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a plan",
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

			if err := client.Plans().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete plan: %w", err)
			}

			fmt.Printf("Deleted plan %d\n", id)

			return nil
		},
	}
}
