package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/planka"
)

// NotificationCommand returns the notification subcommand group.
func NotificationCommand() *cli.Command {
	return &cli.Command{
		Name:    "notification",
		Aliases: []string{"notif"},
		Usage:   "Manage notifications",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List notifications",
				Action: notificationList,
			},
			{
				Name:      "get",
				Usage:     "Get notification details",
				ArgsUsage: "NOTIFICATION_ID",
				Action:    notificationGet,
			},
			{
				Name:      "read",
				Usage:     "Mark a notification as read",
				ArgsUsage: "NOTIFICATION_ID",
				Action:    notificationRead,
			},
			{
				Name:   "read-all",
				Usage:  "Mark all notifications as read",
				Action: notificationReadAll,
			},
		},
	}
}

func notificationList(c *cli.Context) error {
	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	notifications, err := client.Notifications(ctx)
	if err != nil {
		return err
	}

	return printItems(c, notifications,
		[]string{"ID", "TYPE", "READ", "CREATED"},
		[]string{"id", "type", "isRead", "createdAt"})
}

func notificationGet(c *cli.Context) error {
	notificationID := c.Args().First()
	if notificationID == "" {
		return fmt.Errorf("notification ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	notification, err := client.Notification(ctx, notificationID)
	if err != nil {
		return err
	}

	return printItem(c, notification)
}

func notificationRead(c *cli.Context) error {
	notificationID := c.Args().First()
	if notificationID == "" {
		return fmt.Errorf("notification ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	notification, err := client.UpdateNotification(ctx, notificationID, planka.NotificationUpdate{
		IsRead: planka.Bool(true),
	})
	if err != nil {
		return err
	}

	return printItem(c, notification)
}

func notificationReadAll(c *cli.Context) error {
	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if _, err := client.ReadAllNotifications(ctx); err != nil {
		return err
	}

	fmt.Println("All notifications marked as read.")
	return nil
}
