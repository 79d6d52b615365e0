package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// NotificationType тип уведомления
type NotificationType string

const (
	NotificationLike   NotificationType = "like"
	NotificationFollow NotificationType = "follow"
)

// Message возвращает текст уведомления для отображения
func (t NotificationType) Message() string {
	switch t {
	case NotificationLike:
		return "liked your tweet"
	case NotificationFollow:
		return "followed you"
	default:
		return string(t)
	}
}

// Notification представляет уведомление пользователя
type Notification struct {
	CreatedAt      time.Time        `json:"createdAt"`
	PostText       *string          `json:"postText,omitempty"`
	ID             string           `json:"_id"`
	SenderID       string           `json:"-"`
	SenderUsername string           `json:"-"`
	ReceiverID     string           `json:"notificationReceiverId"`
	Type           NotificationType `json:"notificationType"`
}

// UnmarshalJSON разбирает populated-поле notificationSenderId {_id, username}.
// Даты приходят в ISO-8601 с дробными секундами.
func (n *Notification) UnmarshalJSON(data []byte) error {
	var raw struct {
		CreatedAt time.Time        `json:"createdAt"`
		PostText  *string          `json:"postText"`
		ID        string           `json:"_id"`
		Receiver  string           `json:"notificationReceiverId"`
		Type      NotificationType `json:"notificationType"`
		Sender    struct {
			ID       string `json:"_id"`
			Username string `json:"username"`
		} `json:"notificationSenderId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Type {
	case NotificationLike, NotificationFollow:
	default:
		return fmt.Errorf("notification %s: unknown type %q", raw.ID, raw.Type)
	}

	*n = Notification{
		ID:             raw.ID,
		SenderID:       raw.Sender.ID,
		SenderUsername: raw.Sender.Username,
		ReceiverID:     raw.Receiver,
		Type:           raw.Type,
		PostText:       raw.PostText,
		CreatedAt:      raw.CreatedAt,
	}
	return nil
}
