package cli

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/iudanet/chirp/internal/models"
)

func newNotificationsCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notifs"},
		Short:   "Show your notifications",
		Args:    cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runNotifications(ctx)
		}),
	}
}

func (c *Cli) runNotifications(ctx context.Context) error {
	notifications, err := c.notifications.FetchNotifications(ctx)
	if err != nil {
		return err
	}

	if len(notifications) == 0 {
		c.io.Println("No notifications.")
		return nil
	}

	now := c.now()
	for _, n := range notifications {
		c.io.Printf("%-14s @%s %s", humanize.RelTime(n.CreatedAt, now, "ago", "from now"), n.SenderUsername, n.Type.Message())
		if n.Type == models.NotificationLike && n.PostText != nil {
			c.io.Printf(": %q", *n.PostText)
		}
		c.io.Println()
	}
	return nil
}
