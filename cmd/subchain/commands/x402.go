package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// NewX402Command creates the x402 pay-per-call command group
func NewX402Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "x402",
		Short: "Manage the x402 pay-per-call console",
		Long:  "Pricing rules, receipts, payment links, widgets, and prepaid credits",
	}

	cmd.AddCommand(newX402RulesCommand())
	cmd.AddCommand(newX402ReceiptsCommand())
	cmd.AddCommand(newX402LinksCommand())
	cmd.AddCommand(newX402WidgetsCommand())
	cmd.AddCommand(newX402CreditPlansCommand())
	cmd.AddCommand(newX402CreditsCommand())

	return cmd
}

func newX402RulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Aliases: []string{"rule", "pricing-rules"},
		Short:   "Manage pricing rules",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List pricing rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			rules, err := client.X402PricingRules().List(context.Background(), flags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list pricing rules: %w", err)
			}

			if handled, err := structuredOutput(rules.Results); handled {
				return err
			}

			if len(rules.Results) == 0 {
				fmt.Println("No pricing rules found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Method", "Path", "Price", "Currency", "Active")

			for _, rule := range rules.Results {
				table.Append(
					fmt.Sprintf("%d", rule.ID),
					rule.Method,
					rule.Path,
					rule.Price,
					rule.Currency,
					yesNo(rule.IsActive),
				)
			}

			table.Render()

			return nil
		},
	}
	addListFlags(list, &flags)
	cmd.AddCommand(list)

	var (
		path     string
		method   string
		price    string
		currency string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a pricing rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			rule, err := client.X402PricingRules().Create(context.Background(), &subchain.X402PricingRuleCreateRequest{
				Path:     path,
				Method:   method,
				Price:    price,
				Currency: currency,
			})
			if err != nil {
				return fmt.Errorf("failed to create pricing rule: %w", err)
			}

			fmt.Printf("Created pricing rule %d (%s %s)\n", rule.ID, rule.Method, rule.Path)

			return nil
		},
	}
	create.Flags().StringVar(&path, "path", "", "request path to price")
	create.Flags().StringVar(&method, "method", "GET", "HTTP method")
	create.Flags().StringVar(&price, "price", "", "price per call")
	create.Flags().StringVar(&currency, "currency", "ALGO", "pricing currency")
	_ = create.MarkFlagRequired("path")
	_ = create.MarkFlagRequired("price")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a pricing rule",
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

			if err := client.X402PricingRules().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete pricing rule: %w", err)
			}

			fmt.Printf("Deleted pricing rule %d\n", id)

			return nil
		},
	})

	return cmd
}

func newX402ReceiptsCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:     "receipts",
		Aliases: []string{"receipt"},
		Short:   "List settled micropayments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			receipts, err := client.X402Receipts().List(context.Background(), flags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list receipts: %w", err)
			}

			if handled, err := structuredOutput(receipts.Results); handled {
				return err
			}

			if len(receipts.Results) == 0 {
				fmt.Println("No receipts found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Method", "Path", "Amount", "Currency", "Payer", "Tx Hash")

			for _, receipt := range receipts.Results {
				table.Append(
					fmt.Sprintf("%d", receipt.ID),
					receipt.Method,
					receipt.Path,
					receipt.Amount,
					receipt.Currency,
					receipt.Payer,
					receipt.TxHash,
				)
			}

			table.Render()

			return nil
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func newX402LinksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "links",
		Aliases: []string{"link"},
		Short:   "Manage payment links",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List payment links",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			links, err := client.X402Links().List(context.Background(), flags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list links: %w", err)
			}

			if handled, err := structuredOutput(links.Results); handled {
				return err
			}

			if len(links.Results) == 0 {
				fmt.Println("No links found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Slug", "Title", "Price", "Currency", "Hits", "Active")

			for _, link := range links.Results {
				table.Append(
					fmt.Sprintf("%d", link.ID),
					link.Slug,
					link.Title,
					link.Price,
					link.Currency,
					fmt.Sprintf("%d", link.Hits),
					yesNo(link.IsActive),
				)
			}

			table.Render()

			return nil
		},
	}
	addListFlags(list, &flags)
	cmd.AddCommand(list)

	var (
		title    string
		url      string
		price    string
		currency string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a payment link",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			link, err := client.X402Links().Create(context.Background(), &subchain.X402LinkCreateRequest{
				Title:    title,
				URL:      url,
				Price:    price,
				Currency: currency,
			})
			if err != nil {
				return fmt.Errorf("failed to create link: %w", err)
			}

			fmt.Printf("Created link %s (%s)\n", link.Slug, link.Title)

			return nil
		},
	}
	create.Flags().StringVar(&title, "title", "", "link title")
	create.Flags().StringVar(&url, "url", "", "target URL")
	create.Flags().StringVar(&price, "price", "", "access price")
	create.Flags().StringVar(&currency, "currency", "ALGO", "pricing currency")
	_ = create.MarkFlagRequired("title")
	_ = create.MarkFlagRequired("url")
	_ = create.MarkFlagRequired("price")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a payment link",
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

			if err := client.X402Links().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete link: %w", err)
			}

			fmt.Printf("Deleted link %d\n", id)

			return nil
		},
	})

	return cmd
}

func newX402WidgetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "widgets",
		Aliases: []string{"widget"},
		Short:   "Manage paywall widgets",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List widgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			widgets, err := client.X402Widgets().List(context.Background(), flags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list widgets: %w", err)
			}

			if handled, err := structuredOutput(widgets.Results); handled {
				return err
			}

			if len(widgets.Results) == 0 {
				fmt.Println("No widgets found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Price", "Currency", "Active")

			for _, widget := range widgets.Results {
				table.Append(
					fmt.Sprintf("%d", widget.ID),
					widget.Name,
					widget.Price,
					widget.Currency,
					yesNo(widget.IsActive),
				)
			}

			table.Render()

			return nil
		},
	}
	addListFlags(list, &flags)
	cmd.AddCommand(list)

	var (
		name     string
		price    string
		currency string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a widget",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			widget, err := client.X402Widgets().Create(context.Background(), &subchain.X402WidgetCreateRequest{
				Name:     name,
				Price:    price,
				Currency: currency,
			})
			if err != nil {
				return fmt.Errorf("failed to create widget: %w", err)
			}

			fmt.Printf("Created widget %d (%s)\n", widget.ID, widget.Name)
			fmt.Println(widget.EmbedCode)

			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "widget name")
	create.Flags().StringVar(&price, "price", "", "access price")
	create.Flags().StringVar(&currency, "currency", "ALGO", "pricing currency")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("price")
	cmd.AddCommand(create)

	return cmd
}

func newX402CreditPlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credit-plans",
		Short: "Manage prepaid credit bundles",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List credit plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			plans, err := client.X402CreditPlans().List(context.Background(), flags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list credit plans: %w", err)
			}

			if handled, err := structuredOutput(plans.Results); handled {
				return err
			}

			if len(plans.Results) == 0 {
				fmt.Println("No credit plans found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Credits", "Price", "Currency", "Active")

			for _, plan := range plans.Results {
				table.Append(
					fmt.Sprintf("%d", plan.ID),
					plan.Name,
					fmt.Sprintf("%d", plan.Credits),
					plan.Price,
					plan.Currency,
					yesNo(plan.IsActive),
				)
			}

			table.Render()

			return nil
		},
	}
	addListFlags(list, &flags)
	cmd.AddCommand(list)

	var (
		name     string
		credits  int64
		price    string
		currency string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a credit plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			plan, err := client.X402CreditPlans().Create(context.Background(), &subchain.X402CreditPlanCreateRequest{
				Name:     name,
				Credits:  credits,
				Price:    price,
				Currency: currency,
			})
			if err != nil {
				return fmt.Errorf("failed to create credit plan: %w", err)
			}

			fmt.Printf("Created credit plan %d (%s)\n", plan.ID, plan.Name)

			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "plan name")
	create.Flags().Int64Var(&credits, "credits", 0, "credits in the bundle")
	create.Flags().StringVar(&price, "price", "", "bundle price")
	create.Flags().StringVar(&currency, "currency", "ALGO", "pricing currency")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("credits")
	_ = create.MarkFlagRequired("price")
	cmd.AddCommand(create)

	return cmd
}

func newX402CreditsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Manage consumer credit subscriptions",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List credit subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			subs, err := client.X402CreditSubscriptions().List(context.Background(), flags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list credit subscriptions: %w", err)
			}

			if handled, err := structuredOutput(subs.Results); handled {
				return err
			}

			if len(subs.Results) == 0 {
				fmt.Println("No credit subscriptions found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Plan", "Consumer", "Credits Remaining", "Status")

			for _, sub := range subs.Results {
				table.Append(
					fmt.Sprintf("%d", sub.ID),
					fmt.Sprintf("%d", sub.PlanID),
					sub.Consumer,
					fmt.Sprintf("%d", sub.CreditsRemaining),
					sub.Status,
				)
			}

			table.Render()

			return nil
		},
	}
	addListFlags(list, &flags)
	cmd.AddCommand(list)

	var (
		credits int64
		path    string
	)
	consume := &cobra.Command{
		Use:   "consume ID",
		Short: "Debit credits from a subscription",
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

			sub, err := client.X402CreditSubscriptions().Consume(context.Background(), id, &subchain.X402ConsumeRequest{
				Credits: credits,
				Path:    path,
			})
			if err != nil {
				return fmt.Errorf("failed to consume credits: %w", err)
			}

			fmt.Printf("Subscription %d has %d credits remaining\n", sub.ID, sub.CreditsRemaining)

			return nil
		},
	}
	consume.Flags().Int64Var(&credits, "credits", 1, "credits to debit")
	consume.Flags().StringVar(&path, "path", "", "path the debit covers")
	cmd.AddCommand(consume)

	usageFlags := listFlags{}
	usage := &cobra.Command{
		Use:   "usage ID",
		Short: "List usage for a credit subscription",
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

			entries, err := client.X402CreditSubscriptions().ListUsage(context.Background(), id, usageFlags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list usage: %w", err)
			}

			if handled, err := structuredOutput(entries.Results); handled {
				return err
			}

			if len(entries.Results) == 0 {
				fmt.Println("No usage found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("When", "Credits", "Path")

			for _, entry := range entries.Results {
				table.Append(
					entry.CreatedAt.Format("2006-01-02 15:04"),
					fmt.Sprintf("%d", entry.CreditsUsed),
					entry.Path,
				)
			}

			table.Render()

			return nil
		},
	}
	addListFlags(usage, &usageFlags)
	cmd.AddCommand(usage)

	return cmd
}
