package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// NewCouponsCommand creates the coupons command group
func NewCouponsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "coupons",
		Aliases: []string{"coupon"},
		Short:   "Manage discount coupons",
	}

	cmd.AddCommand(newCouponsListCommand())
	cmd.AddCommand(newCouponsCreateCommand())
	cmd.AddCommand(newCouponsUpdateCommand())
	cmd.AddCommand(newCouponsDeleteCommand())

	return cmd
}

func newCouponsListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List coupons",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			coupons, err := client.Coupons().List(context.Background(), flags.toParams())
			if err != nil {
				return fmt.Errorf("failed to list coupons: %w", err)
			}

			if handled, err := structuredOutput(coupons.Results); handled {
				return err
			}

			if len(coupons.Results) == 0 {
				fmt.Println("No coupons found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Code", "Discount", "Redeemed", "Max", "Active")

			for _, coupon := range coupons.Results {
				table.Append(
					fmt.Sprintf("%d", coupon.ID),
					coupon.Code,
					fmt.Sprintf("%s (%s)", coupon.DiscountValue, coupon.DiscountType),
					fmt.Sprintf("%d", coupon.TimesRedeemed),
					fmt.Sprintf("%d", coupon.MaxRedemptions),
					yesNo(coupon.IsActive),
				)
			}

			table.Render()

			return nil
		},
	}

	addListFlags(cmd, &flags)

	return cmd
}

func newCouponsCreateCommand() *cobra.Command {
	var (
		code           string
		discountType   string
		discountValue  string
		maxRedemptions int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a coupon",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			coupon, err := client.Coupons().Create(context.Background(), &subchain.CouponCreateRequest{
				Code:           code,
				DiscountType:   discountType,
				DiscountValue:  discountValue,
				MaxRedemptions: maxRedemptions,
			})
			if err != nil {
				return fmt.Errorf("failed to create coupon: %w", err)
			}

			fmt.Printf("Created coupon %s\n", coupon.Code)

			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "coupon code")
	cmd.Flags().StringVar(&discountType, "type", "percent", "discount type (percent, fixed)")
	cmd.Flags().StringVar(&discountValue, "value", "", "discount value")
	cmd.Flags().IntVar(&maxRedemptions, "max-redemptions", 0, "redemption cap, 0 for unlimited")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newCouponsUpdateCommand() *cobra.Command {
	var (
		value  string
		active bool
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a coupon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			request := &subchain.CouponUpdateRequest{}
			if cmd.Flags().Changed("value") {
				request.DiscountValue = &value
			}
			if cmd.Flags().Changed("active") {
				request.IsActive = &active
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			coupon, err := client.Coupons().Update(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to update coupon: %w", err)
			}

			fmt.Printf("Updated coupon %s\n", coupon.Code)

			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "discount value")
	cmd.Flags().BoolVar(&active, "active", true, "whether the coupon can be redeemed")

	return cmd
}

func newCouponsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a coupon",
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

			if err := client.Coupons().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete coupon: %w", err)
			}

			fmt.Printf("Deleted coupon %d\n", id)

			return nil
		},
	}
}
