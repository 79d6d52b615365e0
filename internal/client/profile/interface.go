package profile

import (
	"context"

	"github.com/iudanet/chirp/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service defines operations on user profiles
type Service interface {
	// FetchUserProfile получает профиль пользователя; пустой userID означает текущего
	FetchUserProfile(ctx context.Context, userID string) (*models.User, error)

	// FetchUserTweets получает твиты пользователя; пустой userID означает текущего
	FetchUserTweets(ctx context.Context, userID string) ([]models.Tweet, error)

	// UpdateProfile изменяет заданные поля профиля текущего пользователя
	UpdateProfile(ctx context.Context, in UpdateInput) (*models.User, error)

	// UploadAvatar загружает аватар и возвращает обновленный профиль
	UploadAvatar(ctx context.Context, image []byte) (*models.User, error)

	// UploadBanner загружает баннер и возвращает обновленный профиль
	UploadBanner(ctx context.Context, image []byte) (*models.User, error)
}

// UpdateInput изменяемые поля профиля; nil означает "не менять"
type UpdateInput struct {
	Name     *string
	Bio      *string
	Website  *string
	Location *string
}

// Empty сообщает, что ни одно поле не задано
func (in UpdateInput) Empty() bool {
	return in.Name == nil && in.Bio == nil && in.Website == nil && in.Location == nil
}
