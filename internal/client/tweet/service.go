// Package tweet реализует ленту, публикацию и лайки твитов
package tweet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/chirp/internal/client/api"
	"github.com/iudanet/chirp/internal/client/mutation"
	"github.com/iudanet/chirp/internal/client/session"
	"github.com/iudanet/chirp/internal/client/sideeffect"
	"github.com/iudanet/chirp/internal/client/storage"
	"github.com/iudanet/chirp/internal/models"
	"github.com/iudanet/chirp/internal/validation"
	pkgapi "github.com/iudanet/chirp/pkg/api"
)

// TweetService реализует Service
type TweetService struct {
	apiClient *api.Client
	identity  session.Identity
	store     storage.TweetStorage
	effects   *sideeffect.Dispatcher
	notifier  Notifier
	mutations *mutation.Controller[models.Tweet]
	logger    *slog.Logger
}

// Compile-time check that TweetService implements Service
var _ Service = (*TweetService)(nil)

// NewTweetService создает сервис твитов.
// notifier может быть nil, тогда уведомления о лайках не отправляются.
func NewTweetService(
	apiClient *api.Client,
	identity session.Identity,
	store storage.TweetStorage,
	effects *sideeffect.Dispatcher,
	notifier Notifier,
	logger *slog.Logger,
) *TweetService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if effects == nil {
		effects = sideeffect.New(sideeffect.WithLogger(logger))
	}

	s := &TweetService{
		apiClient: apiClient,
		identity:  identity,
		store:     store,
		effects:   effects,
		notifier:  notifier,
		logger:    logger,
	}
	s.mutations = mutation.NewController[models.Tweet](tweetCache{store: store},
		mutation.WithLogger[models.Tweet](logger),
		mutation.WithOnFailed(func(id string, _ models.Tweet, err error) {
			logger.Warn("like change rolled back", "tweet_id", id, "error", err)
		}),
	)
	return s
}

// FetchTweets загружает ленту и сохраняет ее в кэш.
// Для твитов с незавершенным лайком оптимистичное состояние сохраняется,
// а лайк, подтвержденный после отправки запроса, не затирается старой лентой.
func (s *TweetService) FetchTweets(ctx context.Context) ([]models.Tweet, error) {
	since := s.mutations.Version()

	fetched, err := api.Execute[[]models.Tweet](ctx, s.apiClient, api.FetchTweets())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tweets: %w", err)
	}

	tweets, err := s.mutations.RefreshAll(ctx, since, fetched, tweetKey, s.store.SaveTweets)
	if err != nil {
		return nil, fmt.Errorf("failed to cache tweets: %w", err)
	}

	s.logger.Debug("feed fetched", "count", len(tweets))
	return tweets, nil
}

// CachedTweets возвращает ленту из кэша
func (s *TweetService) CachedTweets(ctx context.Context) ([]models.Tweet, error) {
	tweets, err := s.store.ListTweets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached tweets: %w", err)
	}
	return tweets, nil
}

// CreateTweet публикует твит. Если передана картинка, она загружается отдельным запросом;
// при ошибке загрузки возвращается созданный твит вместе с ошибкой.
func (s *TweetService) CreateTweet(ctx context.Context, text string, image []byte) (*models.Tweet, error) {
	if err := validation.ValidateTweetText(text); err != nil {
		return nil, fmt.Errorf("invalid tweet: %w", err)
	}

	principal, err := s.identity.Principal(ctx)
	if err != nil {
		return nil, err
	}

	tweet, err := api.Execute[models.Tweet](ctx, s.apiClient, api.CreateTweet(pkgapi.CreateTweetRequest{
		Text:   text,
		UserID: principal.UserID,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create tweet: %w", err)
	}

	if err := s.mutations.Refresh(ctx, tweet.ID, tweet); err != nil {
		s.logger.Warn("failed to cache created tweet", "tweet_id", tweet.ID, "error", err)
	}
	s.logger.Info("tweet created", "tweet_id", tweet.ID)

	if len(image) == 0 {
		return &tweet, nil
	}

	if err := s.UploadImage(ctx, tweet.ID, image); err != nil {
		return &tweet, err
	}

	hasImage := true
	tweet.Image = &hasImage
	if err := s.mutations.Refresh(ctx, tweet.ID, tweet); err != nil {
		s.logger.Warn("failed to cache created tweet", "tweet_id", tweet.ID, "error", err)
	}

	return &tweet, nil
}

// UploadImage прикрепляет картинку к твиту
func (s *TweetService) UploadImage(ctx context.Context, tweetID string, image []byte) error {
	if tweetID == "" {
		return fmt.Errorf("tweet id is required")
	}
	if len(image) == 0 {
		return fmt.Errorf("image is empty")
	}

	if err := s.apiClient.ExecuteVoid(ctx, api.UploadImage(tweetID, image)); err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info("tweet image uploaded", "tweet_id", tweetID, "size", len(image))
	return nil
}

// LikeTweet ставит лайк. Автор твита получает уведомление, если это не сам пользователь.
func (s *TweetService) LikeTweet(ctx context.Context, tweetID string) (*models.Tweet, error) {
	principal, err := s.identity.Principal(ctx)
	if err != nil {
		return nil, err
	}

	tweet, err := s.perform(ctx, mutation.Mutation[models.Tweet]{
		ID:   tweetID,
		Plan: models.LikePlan(principal.UserID),
		Call: func(ctx context.Context) (models.Tweet, error) {
			return api.Execute[models.Tweet](ctx, s.apiClient, api.LikeTweet(tweetID))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to like tweet: %w", err)
	}

	s.notifyLike(principal, tweet)
	return &tweet, nil
}

// UnlikeTweet снимает лайк
func (s *TweetService) UnlikeTweet(ctx context.Context, tweetID string) (*models.Tweet, error) {
	principal, err := s.identity.Principal(ctx)
	if err != nil {
		return nil, err
	}

	tweet, err := s.perform(ctx, mutation.Mutation[models.Tweet]{
		ID:   tweetID,
		Plan: models.UnlikePlan(principal.UserID),
		Call: func(ctx context.Context) (models.Tweet, error) {
			return api.Execute[models.Tweet](ctx, s.apiClient, api.UnlikeTweet(tweetID))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unlike tweet: %w", err)
	}

	return &tweet, nil
}

// ToggleLike переключает лайк по состоянию в кэше
func (s *TweetService) ToggleLike(ctx context.Context, tweetID string) (*models.Tweet, error) {
	principal, err := s.identity.Principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.ensureCached(ctx, tweetID); err != nil {
		return nil, err
	}
	current, err := s.mutations.Get(ctx, tweetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tweet: %w", err)
	}

	if current.IsLikedBy(principal.UserID) {
		return s.UnlikeTweet(ctx, tweetID)
	}
	return s.LikeTweet(ctx, tweetID)
}

// Wait дожидается завершения фоновых лайков и уведомлений
func (s *TweetService) Wait() {
	s.mutations.Wait()
	s.effects.Wait()
}

// perform выполняет мутацию; если твита нет в кэше, сначала загружает ленту
func (s *TweetService) perform(ctx context.Context, m mutation.Mutation[models.Tweet]) (models.Tweet, error) {
	if err := s.ensureCached(ctx, m.ID); err != nil {
		return models.Tweet{}, err
	}
	return s.mutations.Perform(ctx, m)
}

func tweetKey(t models.Tweet) string {
	return t.ID
}

func (s *TweetService) ensureCached(ctx context.Context, tweetID string) error {
	if tweetID == "" {
		return fmt.Errorf("tweet id is required")
	}

	_, err := s.store.GetTweet(ctx, tweetID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrTweetNotFound) {
		return fmt.Errorf("failed to read cached tweet: %w", err)
	}

	if _, err := s.FetchTweets(ctx); err != nil {
		return err
	}
	if _, err := s.store.GetTweet(ctx, tweetID); err != nil {
		return fmt.Errorf("tweet %s: %w", tweetID, err)
	}
	return nil
}

// notifyLike отправляет уведомление автору в фоне. Ошибки только логируются.
func (s *TweetService) notifyLike(principal *session.Principal, tweet models.Tweet) {
	if s.notifier == nil || tweet.UserID == "" || tweet.UserID == principal.UserID {
		return
	}

	text := tweet.Text
	req := pkgapi.CreateNotificationRequest{
		Username:               principal.Username,
		NotificationReceiverID: tweet.UserID,
		NotificationType:       models.NotificationLike,
		PostText:               &text,
	}

	s.effects.Dispatch("like notification", func(ctx context.Context) error {
		return s.notifier.Create(ctx, req)
	})
}
