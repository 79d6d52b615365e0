// Package cli реализует команды консольного клиента chirp
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/chirp/internal/client/api"
	"github.com/iudanet/chirp/internal/client/auth"
	"github.com/iudanet/chirp/internal/client/iocli"
	"github.com/iudanet/chirp/internal/client/notification"
	"github.com/iudanet/chirp/internal/client/profile"
	"github.com/iudanet/chirp/internal/client/session"
	"github.com/iudanet/chirp/internal/client/tweet"
)

// maxImageSize предел размера загружаемой картинки
const maxImageSize = 5 << 20

// Cli выполняет команды поверх сервисов клиента
type Cli struct {
	io            iocli.IO
	auth          auth.Service
	tweets        tweet.Service
	profiles      profile.Service
	notifications notification.Service
	now           func() time.Time
}

// New создает Cli
func New(
	io iocli.IO,
	authService auth.Service,
	tweets tweet.Service,
	profiles profile.Service,
	notifications notification.Service,
) *Cli {
	return &Cli{
		io:            io,
		auth:          authService,
		tweets:        tweets,
		profiles:      profiles,
		notifications: notifications,
		now:           time.Now,
	}
}

// handle завершает сессию при 401 и переводит ошибку в понятное пользователю сообщение
func (c *Cli) handle(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	err = c.auth.HandleError(ctx, err)

	switch {
	case errors.Is(err, session.ErrNotAuthenticated), api.KindOf(err) == api.KindNoToken:
		return fmt.Errorf("not authenticated. Please run 'chirp login' first")
	case api.IsUnauthorized(err):
		return fmt.Errorf("session expired. Please run 'chirp login' again")
	}
	return err
}

// readImage читает картинку с диска с проверкой размера
func readImage(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if info.Size() > maxImageSize {
		return nil, fmt.Errorf("image is too large: %s (max %s)",
			humanize.IBytes(uint64(info.Size())), humanize.IBytes(maxImageSize))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image file is empty")
	}
	return data, nil
}
