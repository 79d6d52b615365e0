package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/chirp/internal/client/storage"
	"github.com/iudanet/chirp/internal/models"
)

var feedKey = []byte("order")

// SaveTweet stores or replaces a tweet
func (s *Storage) SaveTweet(ctx context.Context, tweet *models.Tweet) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketTweets)
		if err != nil {
			return err
		}
		return putTweet(b, tweet)
	})
}

// SaveTweets replaces the cached feed, keeping server order
func (s *Storage) SaveTweets(ctx context.Context, tweets []models.Tweet) error {
	return s.update(func(tx *bbolt.Tx) error {
		if err := resetBucket(tx, bucketTweets); err != nil {
			return err
		}
		b, err := bucket(tx, bucketTweets)
		if err != nil {
			return err
		}

		order := make([]string, 0, len(tweets))
		for i := range tweets {
			if err := putTweet(b, &tweets[i]); err != nil {
				return err
			}
			order = append(order, tweets[i].ID)
		}

		feed, err := bucket(tx, bucketFeed)
		if err != nil {
			return err
		}
		return putJSON(feed, feedKey, order)
	})
}

// GetTweet retrieves a tweet by ID
func (s *Storage) GetTweet(ctx context.Context, id string) (*models.Tweet, error) {
	tweet := &models.Tweet{}
	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketTweets)
		if err != nil {
			return err
		}
		found, err := getJSON(b, []byte(id), tweet)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrTweetNotFound
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return tweet, nil
}

// ListTweets returns cached tweets: first in feed order, then the rest by ID
func (s *Storage) ListTweets(ctx context.Context) ([]models.Tweet, error) {
	var tweets []models.Tweet

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketTweets)
		if err != nil {
			return err
		}
		feed, err := bucket(tx, bucketFeed)
		if err != nil {
			return err
		}

		var order []string
		if _, err := getJSON(feed, feedKey, &order); err != nil {
			return err
		}

		seen := make(map[string]struct{}, len(order))
		for _, id := range order {
			data := b.Get([]byte(id))
			if data == nil {
				continue
			}
			var tweet models.Tweet
			if err := json.Unmarshal(data, &tweet); err != nil {
				return fmt.Errorf("failed to unmarshal tweet: %w", err)
			}
			tweets = append(tweets, tweet)
			seen[id] = struct{}{}
		}

		// Твиты, сохраненные вне ленты (например, только что созданные)
		return b.ForEach(func(k, v []byte) error {
			if _, ok := seen[string(k)]; ok {
				return nil
			}
			var tweet models.Tweet
			if err := json.Unmarshal(v, &tweet); err != nil {
				return fmt.Errorf("failed to unmarshal tweet: %w", err)
			}
			tweets = append(tweets, tweet)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return tweets, nil
}

// ClearTweets removes all cached tweets
func (s *Storage) ClearTweets(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		if err := resetBucket(tx, bucketTweets); err != nil {
			return err
		}
		return resetBucket(tx, bucketFeed)
	})
}

func putTweet(b *bbolt.Bucket, tweet *models.Tweet) error {
	if tweet.ID == "" {
		return fmt.Errorf("tweet without id")
	}

	return putJSON(b, []byte(tweet.ID), tweet)
}

// resetBucket пересоздает bucket пустым
func resetBucket(tx *bbolt.Tx, name []byte) error {
	if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
		return fmt.Errorf("failed to delete %s bucket: %w", name, err)
	}
	if _, err := tx.CreateBucket(name); err != nil {
		return fmt.Errorf("failed to create %s bucket: %w", name, err)
	}
	return nil
}
