package notification

import (
	"context"

	"github.com/iudanet/chirp/internal/models"
	pkgapi "github.com/iudanet/chirp/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines notification operations
type Service interface {
	// FetchNotifications возвращает уведомления текущего пользователя, новые первыми
	FetchNotifications(ctx context.Context) ([]models.Notification, error)

	// Create создает уведомление для другого пользователя
	Create(ctx context.Context, req pkgapi.CreateNotificationRequest) error
}
