package tweet

import (
	"context"
	"errors"

	"github.com/iudanet/chirp/internal/client/mutation"
	"github.com/iudanet/chirp/internal/client/storage"
	"github.com/iudanet/chirp/internal/models"
)

// tweetCache адаптирует TweetStorage к mutation.Cache
type tweetCache struct {
	store storage.TweetStorage
}

var _ mutation.Cache[models.Tweet] = tweetCache{}

func (c tweetCache) Load(ctx context.Context, id string) (models.Tweet, error) {
	tweet, err := c.store.GetTweet(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrTweetNotFound) {
			return models.Tweet{}, mutation.ErrNotFound
		}
		return models.Tweet{}, err
	}
	return *tweet, nil
}

func (c tweetCache) Store(ctx context.Context, id string, v models.Tweet) error {
	v.ID = id
	return c.store.SaveTweet(ctx, &v)
}
