// Package profile работает с профилями пользователей
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/chirp/internal/client/api"
	"github.com/iudanet/chirp/internal/client/session"
	"github.com/iudanet/chirp/internal/models"
	"github.com/iudanet/chirp/internal/validation"
	pkgapi "github.com/iudanet/chirp/pkg/api"
)

// ErrNothingToUpdate возвращается UpdateProfile без изменяемых полей
var ErrNothingToUpdate = errors.New("nothing to update")

// ProfileService реализует Service
type ProfileService struct {
	apiClient *api.Client
	session   *session.Session
	logger    *slog.Logger
}

var _ Service = (*ProfileService)(nil)

// NewProfileService создает сервис профилей
func NewProfileService(apiClient *api.Client, sess *session.Session, logger *slog.Logger) *ProfileService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProfileService{
		apiClient: apiClient,
		session:   sess,
		logger:    logger,
	}
}

// FetchUserProfile получает профиль пользователя
func (s *ProfileService) FetchUserProfile(ctx context.Context, userID string) (*models.User, error) {
	ep := api.FetchCurrentUser()
	if userID != "" {
		ep = api.FetchUserProfile(userID)
	}

	user, err := api.Execute[models.User](ctx, s.apiClient, ep)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &user, nil
}

// FetchUserTweets получает твиты пользователя
func (s *ProfileService) FetchUserTweets(ctx context.Context, userID string) ([]models.Tweet, error) {
	if userID == "" {
		principal, err := s.session.Principal(ctx)
		if err != nil {
			return nil, err
		}
		userID = principal.UserID
	}

	tweets, err := api.Execute[[]models.Tweet](ctx, s.apiClient, api.FetchUserTweets(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user tweets: %w", err)
	}
	return tweets, nil
}

// UpdateProfile изменяет профиль и обновляет данные сессии
func (s *ProfileService) UpdateProfile(ctx context.Context, in UpdateInput) (*models.User, error) {
	if in.Empty() {
		return nil, ErrNothingToUpdate
	}
	if in.Name != nil {
		if err := validation.ValidateName(*in.Name); err != nil {
			return nil, fmt.Errorf("invalid name: %w", err)
		}
	}
	if in.Bio != nil {
		if err := validation.ValidateBio(*in.Bio); err != nil {
			return nil, fmt.Errorf("invalid bio: %w", err)
		}
	}
	if in.Website != nil {
		if err := validation.ValidateWebsite(*in.Website); err != nil {
			return nil, fmt.Errorf("invalid website: %w", err)
		}
	}

	user, err := api.Execute[models.User](ctx, s.apiClient, api.UpdateProfile(pkgapi.UpdateProfileRequest{
		Name:     in.Name,
		Bio:      in.Bio,
		Website:  in.Website,
		Location: in.Location,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.syncSession(ctx, &user)
	s.logger.Info("profile updated", "user_id", user.ID)
	return &user, nil
}

// UploadAvatar загружает аватар
func (s *ProfileService) UploadAvatar(ctx context.Context, image []byte) (*models.User, error) {
	return s.upload(ctx, "avatar", api.UploadAvatar, image)
}

// UploadBanner загружает баннер
func (s *ProfileService) UploadBanner(ctx context.Context, image []byte) (*models.User, error) {
	return s.upload(ctx, "banner", api.UploadBanner, image)
}

// upload отправляет картинку и перечитывает профиль: ответ загрузки профиль не содержит
func (s *ProfileService) upload(ctx context.Context, kind string, endpoint func([]byte) api.Endpoint, image []byte) (*models.User, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%s image is empty", kind)
	}

	if err := s.apiClient.ExecuteVoid(ctx, endpoint(image)); err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", kind, err)
	}
	s.logger.Info("image uploaded", "kind", kind, "size", len(image))

	user, err := api.Execute[models.User](ctx, s.apiClient, api.FetchCurrentUser())
	if err != nil {
		return nil, fmt.Errorf("failed to refresh profile: %w", err)
	}

	s.syncSession(ctx, &user)
	return &user, nil
}

func (s *ProfileService) syncSession(ctx context.Context, user *models.User) {
	if err := s.session.UpdateUser(ctx, user.Username, user.Email, user.Name); err != nil {
		s.logger.Warn("failed to update session user", "error", err)
	}
}
