package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// NewNotificationsCommand creates the notifications command group
func NewNotificationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notification"},
		Short:   "Manage the notification feed",
	}

	cmd.AddCommand(newNotificationsListCommand())
	cmd.AddCommand(newNotificationsMarkReadCommand())
	cmd.AddCommand(newNotificationsMarkAllReadCommand())
	cmd.AddCommand(newNotificationsDeleteCommand())
	cmd.AddCommand(newNotificationsSendCommand())

	return cmd
}

func newNotificationsListCommand() *cobra.Command {
	var (
		flags      listFlags
		unreadOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := flags.toParams()
			if unreadOnly {
				params.WithFilter("is_read", "false")
			}

			notifications, err := client.Notifications().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list notifications: %w", err)
			}

			if handled, err := structuredOutput(notifications.Results); handled {
				return err
			}

			if len(notifications.Results) == 0 {
				fmt.Println("No notifications found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Title", "Level", "Read", "Created")

			for _, notification := range notifications.Results {
				table.Append(
					fmt.Sprintf("%d", notification.ID),
					notification.Title,
					notification.Level,
					yesNo(notification.IsRead),
					notification.CreatedAt.Format("2006-01-02 15:04"),
				)
			}

			table.Render()

			return nil
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "show only unread notifications")

	return cmd
}

func newNotificationsMarkReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-read ID",
		Short: "Mark a notification read",
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

			if _, err := client.Notifications().MarkRead(context.Background(), id); err != nil {
				return fmt.Errorf("failed to mark notification read: %w", err)
			}

			fmt.Printf("Marked notification %d read\n", id)

			return nil
		},
	}
}

func newNotificationsMarkAllReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-all-read",
		Short: "Mark every unread notification read",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			// The fallback path needs the unread IDs up front.
			notifications, err := client.Notifications().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list notifications: %w", err)
			}

			unread := make([]int64, 0)
			for _, notification := range notifications.Results {
				if !notification.IsRead {
					unread = append(unread, notification.ID)
				}
			}

			if err := client.Notifications().MarkAllRead(ctx, unread); err != nil {
				return fmt.Errorf("failed to mark notifications read: %w", err)
			}

			fmt.Printf("Marked %d notifications read\n", len(unread))

			return nil
		},
	}
}

func newNotificationsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a notification",
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

			if err := client.Notifications().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete notification: %w", err)
			}

			fmt.Printf("Deleted notification %d\n", id)

			return nil
		},
	}
}

func newNotificationsSendCommand() *cobra.Command {
	var (
		email   string
		title   string
		message string
		level   string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a notification to a subscriber",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Notifications().Send(context.Background(), &subchain.SendNotificationRequest{
				Email:   email,
				Title:   title,
				Message: message,
				Level:   level,
			})
			if err != nil {
				return fmt.Errorf("failed to send notification: %w", err)
			}

			fmt.Printf("Sent notification to %s\n", email)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "recipient email")
	cmd.Flags().StringVar(&title, "title", "", "notification title")
	cmd.Flags().StringVar(&message, "message", "", "notification body")
	cmd.Flags().StringVar(&level, "level", "info", "notification level")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
