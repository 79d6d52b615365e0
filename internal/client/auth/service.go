package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/chirp/internal/client/api"
	"github.com/iudanet/chirp/internal/client/session"
	"github.com/iudanet/chirp/internal/client/storage"
	"github.com/iudanet/chirp/internal/models"
	"github.com/iudanet/chirp/internal/validation"
	pkgapi "github.com/iudanet/chirp/pkg/api"
)

// AuthService реализует Service поверх API клиента и локальной сессии
type AuthService struct {
	apiClient *api.Client
	session   *session.Session
	cache     storage.TweetStorage
	logger    *slog.Logger
}

// Compile-time check that AuthService implements Service
var _ Service = (*AuthService)(nil)

// NewAuthService создает новый сервис авторизации.
// cache очищается при выходе; может быть nil.
func NewAuthService(apiClient *api.Client, sess *session.Session, cache storage.TweetStorage, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		apiClient: apiClient,
		session:   sess,
		cache:     cache,
		logger:    logger,
	}
}

// Register регистрирует нового пользователя
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	// Валидация входных данных
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, fmt.Errorf("invalid name: %w", err)
	}

	req := pkgapi.RegisterRequest{
		Email:    in.Email,
		Username: in.Username,
		Password: in.Password,
		Name:     in.Name,
	}

	resp, err := api.Execute[pkgapi.LoginResponse](ctx, s.apiClient, api.Register(req))
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if err := s.session.Save(ctx, &resp); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", resp.User.ID, "username", resp.User.Username)
	return &resp.User, nil
}

// Login выполняет аутентификацию пользователя
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	req := pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	}

	resp, err := api.Execute[pkgapi.LoginResponse](ctx, s.apiClient, api.Login(req))
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := s.session.Save(ctx, &resp); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", resp.User.ID, "username", resp.User.Username)
	return &resp.User, nil
}

// FetchCurrentUser получает профиль текущего пользователя и обновляет сессию
func (s *AuthService) FetchCurrentUser(ctx context.Context) (*models.User, error) {
	user, err := api.Execute[models.User](ctx, s.apiClient, api.FetchCurrentUser())
	if err != nil {
		return nil, s.HandleError(ctx, fmt.Errorf("failed to fetch current user: %w", err))
	}

	if err := s.session.UpdateUser(ctx, user.Username, user.Email, user.Name); err != nil {
		s.logger.Debug("failed to update session user", "error", err)
	}

	return &user, nil
}

// Principal возвращает пользователя локальной сессии
func (s *AuthService) Principal(ctx context.Context) (*session.Principal, error) {
	return s.session.Principal(ctx)
}

// Logout выполняет выход из системы.
// Сервер о выходе не уведомляется: токен просто забывается локально.
func (s *AuthService) Logout(ctx context.Context) error {
	if s.cache != nil {
		if err := s.cache.ClearTweets(ctx); err != nil {
			// Не прерываем процесс, сессию удаляем в любом случае
			s.logger.Warn("failed to clear tweet cache", "error", err)
		}
	}

	if err := s.session.SignOut(ctx); err != nil {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}

	return nil
}

// HandleError завершает локальную сессию, если сервер ответил 401
func (s *AuthService) HandleError(ctx context.Context, err error) error {
	if !api.IsUnauthorized(err) {
		return err
	}

	s.logger.Warn("session rejected by server, signing out")
	if signOutErr := s.Logout(ctx); signOutErr != nil {
		s.logger.Error("failed to sign out", "error", signOutErr)
	}
	return err
}
