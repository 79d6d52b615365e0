package storage

import (
	"context"
	"time"
)

// AuthStorage defines interface for storing the client session
type AuthStorage interface {
	// SaveAuth stores the session, replacing any previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored session
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents the signed-in user and its bearer token
type AuthData struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Token    string `json:"token"`
	// ExpiresAt unix-время истечения токена; 0 если срок неизвестен
	ExpiresAt int64 `json:"expires_at"`
}

// Expired сообщает, истек ли токен к моменту now
func (a *AuthData) Expired(now time.Time) bool {
	return a.ExpiresAt != 0 && !now.Before(time.Unix(a.ExpiresAt, 0))
}
