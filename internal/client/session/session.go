// Package session хранит текущую сессию пользователя и отдает bearer token
// API клиенту при сборке каждого запроса.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/chirp/internal/client/api"
	"github.com/iudanet/chirp/internal/client/storage"
	pkgapi "github.com/iudanet/chirp/pkg/api"
)

// ErrNotAuthenticated возвращается, когда сессии нет или токен истек
var ErrNotAuthenticated = errors.New("not authenticated")

// Principal текущий пользователь
type Principal struct {
	UserID   string
	Username string
	Email    string
	Name     string
}

// Identity отдает текущего пользователя
type Identity interface {
	Principal(ctx context.Context) (*Principal, error)
}

// Session слой между API клиентом и AuthStorage
type Session struct {
	storage storage.AuthStorage
	logger  *slog.Logger
	now     func() time.Time
}

// Compile-time check that Session implements api.TokenSource and Identity
var (
	_ api.TokenSource = (*Session)(nil)
	_ Identity        = (*Session)(nil)
)

// New создает сессию поверх хранилища
func New(store storage.AuthStorage, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		storage: store,
		logger:  logger,
		now:     time.Now,
	}
}

// Token возвращает сохраненный токен, если он есть и не истек.
// Читается заново при каждом вызове, так что повтор запроса увидит новый токен.
func (s *Session) Token(ctx context.Context) (string, bool) {
	auth, err := s.current(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotAuthenticated) {
			s.logger.Debug("failed to read session", "error", err)
		}
		return "", false
	}
	return auth.Token, true
}

// Principal возвращает текущего пользователя
func (s *Session) Principal(ctx context.Context) (*Principal, error) {
	auth, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return &Principal{
		UserID:   auth.UserID,
		Username: auth.Username,
		Email:    auth.Email,
		Name:     auth.Name,
	}, nil
}

// Save сохраняет сессию по ответу логина.
// Срок действия и subject берутся из claims токена без проверки подписи:
// подпись проверяет сервер, клиенту нужен только срок.
func (s *Session) Save(ctx context.Context, resp *pkgapi.LoginResponse) error {
	if resp == nil || resp.Token == "" {
		return fmt.Errorf("login response without token")
	}

	auth := &storage.AuthData{
		UserID:   resp.User.ID,
		Username: resp.User.Username,
		Email:    resp.User.Email,
		Name:     resp.User.Name,
		Token:    resp.Token,
	}

	claims, err := parseClaims(resp.Token)
	if err != nil {
		s.logger.Debug("token is not a JWT, expiry unknown", "error", err)
	} else {
		if claims.expiresAt != nil {
			auth.ExpiresAt = claims.expiresAt.Unix()
		}
		if auth.UserID == "" {
			auth.UserID = claims.subject
		}
	}

	if err := s.storage.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// UpdateUser обновляет профильные поля сессии, не трогая токен
func (s *Session) UpdateUser(ctx context.Context, username, email, name string) error {
	auth, err := s.current(ctx)
	if err != nil {
		return err
	}
	auth.Username = username
	auth.Email = email
	auth.Name = name
	return s.storage.SaveAuth(ctx, auth)
}

// SignOut удаляет локальную сессию. Отсутствие сессии ошибкой не считается.
func (s *Session) SignOut(ctx context.Context) error {
	err := s.storage.DeleteAuth(ctx)
	if err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IsAuthenticated проверяет наличие действующей сессии
func (s *Session) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.current(ctx)
	if errors.Is(err, ErrNotAuthenticated) {
		return false, nil
	}
	return err == nil, err
}

func (s *Session) current(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	if auth.Token == "" || auth.Expired(s.now()) {
		return nil, ErrNotAuthenticated
	}
	return auth, nil
}

type tokenClaims struct {
	expiresAt *time.Time
	subject   string
}

func parseClaims(token string) (*tokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	out := &tokenClaims{}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, err
	}
	if exp != nil {
		out.expiresAt = &exp.Time
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}
	out.subject = sub
	if sub == "" {
		// сервер кладет ID пользователя в claim "id"
		if id, ok := claims["id"].(string); ok {
			out.subject = id
		}
	}

	return out, nil
}
