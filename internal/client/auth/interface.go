package auth

import (
	"context"

	"github.com/iudanet/chirp/internal/client/session"
	"github.com/iudanet/chirp/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for authentication operations.
// It manages both the server calls (register/login/current user) and the local session.
type Service interface {
	// Register регистрирует нового пользователя и сохраняет сессию
	Register(ctx context.Context, in RegisterInput) (*models.User, error)

	// Login выполняет аутентификацию по email и паролю и сохраняет сессию
	Login(ctx context.Context, email, password string) (*models.User, error)

	// FetchCurrentUser получает профиль текущего пользователя с сервера
	FetchCurrentUser(ctx context.Context) (*models.User, error)

	// Principal возвращает пользователя локальной сессии без обращения к серверу
	Principal(ctx context.Context) (*session.Principal, error)

	// Logout удаляет локальную сессию и кэш
	Logout(ctx context.Context) error

	// HandleError завершает сессию, если err означает, что она недействительна.
	// Возвращает err без изменений.
	HandleError(ctx context.Context, err error) error
}

// RegisterInput данные для регистрации
type RegisterInput struct {
	Email    string
	Username string
	Password string
	Name     string
}
