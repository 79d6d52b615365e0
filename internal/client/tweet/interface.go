package tweet

import (
	"context"

	"github.com/iudanet/chirp/internal/models"
	pkgapi "github.com/iudanet/chirp/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines operations on the feed and single tweets.
// Like and unlike are optimistic: the local cache changes before the server answers
// and is rolled back if the request fails.
type Service interface {
	// FetchTweets загружает ленту с сервера и обновляет локальный кэш
	FetchTweets(ctx context.Context) ([]models.Tweet, error)

	// CachedTweets возвращает ленту из локального кэша
	CachedTweets(ctx context.Context) ([]models.Tweet, error)

	// CreateTweet публикует твит; image может быть nil
	CreateTweet(ctx context.Context, text string, image []byte) (*models.Tweet, error)

	// UploadImage прикрепляет картинку к существующему твиту
	UploadImage(ctx context.Context, tweetID string, image []byte) error

	// LikeTweet ставит лайк от имени текущего пользователя
	LikeTweet(ctx context.Context, tweetID string) (*models.Tweet, error)

	// UnlikeTweet снимает лайк текущего пользователя
	UnlikeTweet(ctx context.Context, tweetID string) (*models.Tweet, error)

	// ToggleLike ставит лайк, если его нет, и снимает, если есть
	ToggleLike(ctx context.Context, tweetID string) (*models.Tweet, error)
}

// Notifier отправляет уведомления о действиях пользователя
type Notifier interface {
	Create(ctx context.Context, req pkgapi.CreateNotificationRequest) error
}
