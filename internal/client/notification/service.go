// Package notification получает и создает уведомления пользователя
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/iudanet/chirp/internal/client/api"
	"github.com/iudanet/chirp/internal/client/session"
	"github.com/iudanet/chirp/internal/models"
	pkgapi "github.com/iudanet/chirp/pkg/api"
)

// NotificationService реализует Service
type NotificationService struct {
	apiClient *api.Client
	identity  session.Identity
	logger    *slog.Logger
}

var _ Service = (*NotificationService)(nil)

// NewNotificationService создает сервис уведомлений
func NewNotificationService(apiClient *api.Client, identity session.Identity, logger *slog.Logger) *NotificationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &NotificationService{
		apiClient: apiClient,
		identity:  identity,
		logger:    logger,
	}
}

// FetchNotifications возвращает уведомления текущего пользователя
func (s *NotificationService) FetchNotifications(ctx context.Context) ([]models.Notification, error) {
	principal, err := s.identity.Principal(ctx)
	if err != nil {
		return nil, err
	}

	notifications, err := api.Execute[[]models.Notification](ctx, s.apiClient, api.FetchNotifications(principal.UserID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	slices.SortStableFunc(notifications, func(a, b models.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	s.logger.Debug("notifications fetched", "count", len(notifications))
	return notifications, nil
}

// Create создает уведомление. Тело ответа не используется.
func (s *NotificationService) Create(ctx context.Context, req pkgapi.CreateNotificationRequest) error {
	if req.NotificationReceiverID == "" {
		return fmt.Errorf("notification receiver is required")
	}
	if err := s.apiClient.ExecuteVoid(ctx, api.CreateNotification(req)); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}
