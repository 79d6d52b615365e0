package api

import "github.com/iudanet/chirp/internal/models"

// CreateTweetRequest представляет запрос на публикацию твита
type CreateTweetRequest struct {
	Text   string `json:"text"`
	UserID string `json:"userId"`
}

// ImageUploadResponse возвращается сервером после загрузки картинки к твиту
type ImageUploadResponse struct {
	Message string `json:"message"`
}

// CreateNotificationRequest представляет запрос на создание уведомления
type CreateNotificationRequest struct {
	PostText               *string                 `json:"postText,omitempty"`
	Username               string                  `json:"username"`
	NotificationReceiverID string                  `json:"notificationReceiverId"`
	NotificationType       models.NotificationType `json:"notificationType"`
}
