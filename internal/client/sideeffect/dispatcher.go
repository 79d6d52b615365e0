// Package sideeffect выполняет второстепенные вызовы в режиме fire-and-forget.
// Ошибки эффектов только логируются и никогда не возвращаются вызывающему.
package sideeffect

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

const (
	DefaultMaxConcurrent = 4
	DefaultTimeout       = 15 * time.Second
)

// Effect второстепенный вызов
type Effect func(ctx context.Context) error

// Dispatcher запускает эффекты независимо от основного потока
type Dispatcher struct {
	sem     *semaphore.Weighted
	logger  *slog.Logger
	wg      sync.WaitGroup
	timeout time.Duration
}

// Option настраивает Dispatcher
type Option func(*Dispatcher)

// WithMaxConcurrent ограничивает число одновременно выполняемых эффектов
func WithMaxConcurrent(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.sem = semaphore.NewWeighted(int64(n))
		}
	}
}

// WithTimeout задает таймаут одного эффекта
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithLogger задает логгер
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// New создает Dispatcher
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sem:     semaphore.NewWeighted(DefaultMaxConcurrent),
		logger:  slog.New(slog.DiscardHandler),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch запускает эффект в отдельной горутине и сразу возвращается.
// Если все слоты заняты, эффект отбрасывается; результат false.
func (d *Dispatcher) Dispatch(name string, fn Effect) bool {
	if !d.sem.TryAcquire(1) {
		d.logger.Warn("side effect dropped, dispatcher saturated", "effect", name)
		return false
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.sem.Release(1)

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		start := time.Now()
		if err := d.run(ctx, fn); err != nil {
			d.logger.Warn("side effect failed",
				"effect", name,
				"duration_ms", time.Since(start).Milliseconds(),
				"error", err)
			return
		}
		d.logger.Debug("side effect completed",
			"effect", name,
			"duration_ms", time.Since(start).Milliseconds())
	}()

	return true
}

// run выполняет эффект, превращая панику в ошибку
func (d *Dispatcher) run(ctx context.Context, fn Effect) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()
	return fn(ctx)
}

// Wait блокируется до завершения всех запущенных эффектов
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

type panicError struct {
	value any
}

func (p *panicError) Error() string {
	return fmt.Sprintf("side effect panicked: %v", p.value)
}
