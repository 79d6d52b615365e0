package storage

import (
	"context"

	"github.com/iudanet/chirp/internal/models"
)

// TweetStorage defines interface for the local tweet cache.
// Cached tweets are overwritten wholesale whenever the server returns a newer copy.
type TweetStorage interface {
	// SaveTweet stores or replaces a tweet
	SaveTweet(ctx context.Context, tweet *models.Tweet) error

	// SaveTweets replaces the cached feed with the given tweets, keeping their order
	SaveTweets(ctx context.Context, tweets []models.Tweet) error

	// GetTweet retrieves a tweet by ID
	// Returns ErrTweetNotFound if tweet doesn't exist
	GetTweet(ctx context.Context, id string) (*models.Tweet, error)

	// ListTweets returns cached tweets in feed order
	ListTweets(ctx context.Context) ([]models.Tweet, error)

	// ClearTweets removes all cached tweets
	ClearTweets(ctx context.Context) error
}
