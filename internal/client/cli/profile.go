package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/chirp/internal/client/profile"
	"github.com/iudanet/chirp/internal/models"
)

func newProfileCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile [user-id]",
		Short: "Show a profile and its tweets (yours by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: r.run(func(ctx context.Context, c *Cli, args []string) error {
			var userID string
			if len(args) == 1 {
				userID = args[0]
			}
			return c.runProfile(ctx, userID)
		}),
	}
	cmd.AddCommand(newProfileEditCommand(r))
	return cmd
}

func newProfileEditCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update your profile",
		Args:  cobra.NoArgs,
	}

	flags := cmd.Flags()
	name := flags.String("name", "", "Display name")
	bio := flags.String("bio", "", "Bio")
	website := flags.String("website", "", "Website URL")
	location := flags.String("location", "", "Location")

	cmd.RunE = r.run(func(ctx context.Context, c *Cli, _ []string) error {
		var in profile.UpdateInput
		if flags.Changed("name") {
			in.Name = name
		}
		if flags.Changed("bio") {
			in.Bio = bio
		}
		if flags.Changed("website") {
			in.Website = website
		}
		if flags.Changed("location") {
			in.Location = location
		}
		return c.runProfileEdit(ctx, in)
	})
	return cmd
}

func newAvatarCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <image.jpg>",
		Short: "Upload a profile avatar",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runUpload(ctx, "avatar", args[0], c.profiles.UploadAvatar)
		}),
	}
}

func newBannerCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "banner <image.jpg>",
		Short: "Upload a profile banner",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runUpload(ctx, "banner", args[0], c.profiles.UploadBanner)
		}),
	}
}

// runProfile загружает профиль и твиты параллельно
func (c *Cli) runProfile(ctx context.Context, userID string) error {
	var (
		user   *models.User
		tweets []models.Tweet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = c.profiles.FetchUserProfile(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		tweets, err = c.profiles.FetchUserTweets(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := c.printProfile(user); err != nil {
		return err
	}

	c.io.Println()
	if len(tweets) == 0 {
		c.io.Println("No tweets yet.")
		return nil
	}
	c.printTweets(ctx, tweets)
	return nil
}

func (c *Cli) runProfileEdit(ctx context.Context, in profile.UpdateInput) error {
	user, err := c.profiles.UpdateProfile(ctx, in)
	if err != nil {
		return err
	}
	c.io.Println("✓ Profile updated")
	return c.printProfile(user)
}

func (c *Cli) runUpload(ctx context.Context, kind, path string, upload func(context.Context, []byte) (*models.User, error)) error {
	image, err := readImage(path)
	if err != nil {
		return err
	}

	if _, err := upload(ctx, image); err != nil {
		return err
	}

	c.io.Printf("✓ %s uploaded (%s)\n", kind, humanize.Bytes(uint64(len(image))))
	return nil
}

func (c *Cli) printProfile(user *models.User) error {
	if err := profileTmpl.Execute(c.io, user); err != nil {
		return fmt.Errorf("failed to render profile: %w", err)
	}
	return nil
}
