package api

import (
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy политика повторов для повторяемых ошибок (KindServer)
type RetryPolicy struct {
	// MaxAttempts общее число попыток, включая первую
	MaxAttempts int
	// BackoffBase база экспоненциальной задержки
	BackoffBase time.Duration
}

// DefaultRetryPolicy три попытки, ожидание 2s перед второй и 4s перед третьей
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BackoffBase: time.Second,
	}
}

// Validate проверяет корректность политики
func (p RetryPolicy) Validate() error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", p.MaxAttempts)
	}
	if p.BackoffBase < 0 {
		return fmt.Errorf("backoff base must not be negative, got %s", p.BackoffBase)
	}
	return nil
}

// Delay возвращает ожидание перед попыткой attempt (нумерация с 1):
// BackoffBase * 2^(attempt-1). Перед первой попыткой ожидания нет.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 2 {
		return 0
	}
	return p.BackoffBase << (attempt - 1)
}

// Backoff строит go-retry Backoff, выдающий задержки перед попытками 2..MaxAttempts
func (p RetryPolicy) Backoff() retry.Backoff {
	retries := p.MaxAttempts - 1
	if retries < 0 {
		retries = 0
	}

	attempt := 1
	next := retry.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		return p.Delay(attempt), false
	})

	return retry.WithMaxRetries(uint64(retries), next)
}
