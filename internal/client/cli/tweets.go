package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/iudanet/chirp/internal/models"
)

func newFeedCommand(r *runner) *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the feed",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runFeed(ctx, cached)
		}),
	}
	cmd.Flags().BoolVar(&cached, "cached", false, "Show the locally cached feed without a request")
	return cmd
}

func newPostCommand(r *runner) *cobra.Command {
	var imagePath string

	cmd := &cobra.Command{
		Use:   "post <text>",
		Short: "Post a tweet",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runPost(ctx, args[0], imagePath)
		}),
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "Attach a JPEG image")
	return cmd
}

func newLikeCommand(r *runner) *cobra.Command {
	var toggle bool

	cmd := &cobra.Command{
		Use:   "like <tweet-id>",
		Short: "Like a tweet",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, c *Cli, args []string) error {
			if toggle {
				return c.runToggleLike(ctx, args[0])
			}
			return c.runLike(ctx, args[0])
		}),
	}
	cmd.Flags().BoolVar(&toggle, "toggle", false, "Unlike if the tweet is already liked")
	return cmd
}

func newUnlikeCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "unlike <tweet-id>",
		Short: "Remove your like from a tweet",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runUnlike(ctx, args[0])
		}),
	}
}

func (c *Cli) runFeed(ctx context.Context, cached bool) error {
	var (
		tweets []models.Tweet
		err    error
	)
	if cached {
		tweets, err = c.tweets.CachedTweets(ctx)
	} else {
		tweets, err = c.tweets.FetchTweets(ctx)
	}
	if err != nil {
		return err
	}

	if len(tweets) == 0 {
		c.io.Println("No tweets yet.")
		return nil
	}

	c.printTweets(ctx, tweets)
	return nil
}

func (c *Cli) runPost(ctx context.Context, text, imagePath string) error {
	var image []byte
	if imagePath != "" {
		var err error
		if image, err = readImage(imagePath); err != nil {
			return err
		}
	}

	posted, err := c.tweets.CreateTweet(ctx, text, image)
	if err != nil {
		if posted != nil {
			c.io.Printf("✓ Tweet posted [%s], but the image was not attached\n", posted.ID)
		}
		return err
	}

	c.io.Printf("✓ Tweet posted [%s]\n", posted.ID)
	if len(image) > 0 {
		c.io.Printf("  image attached (%s)\n", humanize.Bytes(uint64(len(image))))
	}
	return nil
}

func (c *Cli) runLike(ctx context.Context, tweetID string) error {
	liked, err := c.tweets.LikeTweet(ctx, tweetID)
	if err != nil {
		return err
	}
	c.io.Printf("♥ Liked [%s] (%s)\n", liked.ID, likesText(liked.LikesCount()))
	return nil
}

func (c *Cli) runUnlike(ctx context.Context, tweetID string) error {
	unliked, err := c.tweets.UnlikeTweet(ctx, tweetID)
	if err != nil {
		return err
	}
	c.io.Printf("♡ Unliked [%s] (%s)\n", unliked.ID, likesText(unliked.LikesCount()))
	return nil
}

func (c *Cli) runToggleLike(ctx context.Context, tweetID string) error {
	principal, err := c.auth.Principal(ctx)
	if err != nil {
		return err
	}

	toggled, err := c.tweets.ToggleLike(ctx, tweetID)
	if err != nil {
		return err
	}

	if toggled.IsLikedBy(principal.UserID) {
		c.io.Printf("♥ Liked [%s] (%s)\n", toggled.ID, likesText(toggled.LikesCount()))
	} else {
		c.io.Printf("♡ Unliked [%s] (%s)\n", toggled.ID, likesText(toggled.LikesCount()))
	}
	return nil
}

// printTweets выводит твиты; лайки текущего пользователя отмечаются
func (c *Cli) printTweets(ctx context.Context, tweets []models.Tweet) {
	var me string
	if principal, err := c.auth.Principal(ctx); err == nil {
		me = principal.UserID
	}

	for i := range tweets {
		c.io.Printf("%s", formatTweet(&tweets[i], me))
	}
}

func formatTweet(t *models.Tweet, me string) string {
	var b strings.Builder

	author := t.Username
	if t.User != "" {
		author = fmt.Sprintf("%s @%s", t.User, t.Username)
	} else if author != "" {
		author = "@" + author
	}
	fmt.Fprintf(&b, "[%s] %s\n", t.ID, author)
	fmt.Fprintf(&b, "  %s\n", t.Text)

	heart := "♡"
	if me != "" && t.IsLikedBy(me) {
		heart = "♥"
	}
	fmt.Fprintf(&b, "  %s %s", heart, likesText(t.LikesCount()))
	if t.Image != nil && *t.Image {
		b.WriteString("  [image]")
	}
	b.WriteString("\n\n")

	return b.String()
}

func likesText(n int) string {
	if n == 1 {
		return "1 like"
	}
	return humanize.Comma(int64(n)) + " likes"
}
