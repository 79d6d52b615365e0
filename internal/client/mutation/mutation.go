// Package mutation реализует оптимистичные изменения кэшированных сущностей:
// локальная дельта применяется сразу, затем результат сервера либо
// заменяет сущность целиком, либо обратная дельта откатывает изменение.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// DefaultCallTimeout ограничивает серверный вызов, который продолжает жить после ухода вызывающего
const DefaultCallTimeout = 30 * time.Second

// ErrInFlight возвращается, когда для сущности уже выполняется мутация
var ErrInFlight = errors.New("mutation already in flight")

// Cache хранилище сущностей, над которым работает контроллер
type Cache[T any] interface {
	Load(ctx context.Context, id string) (T, error)
	Store(ctx context.Context, id string, v T) error
}

// Mutation описывает одно оптимистичное изменение сущности
type Mutation[T any] struct {
	// Forward применяется к кэшу до обращения к серверу
	Forward func(T) T
	// Inverse алгебраически обратна Forward; применяется к текущему значению при ошибке
	Inverse func(T) T
	// Plan строит Forward и Inverse по значению в кэше на момент старта.
	// Если задан, Forward и Inverse не используются.
	Plan func(current T) (forward, inverse func(T) T)
	// Call выполняет запрос к серверу и возвращает подтвержденную сущность.
	// Получает контекст, не зависящий от отмены вызывающего.
	Call func(ctx context.Context) (T, error)
	ID   string
}

// Result итог мутации
type Result[T any] struct {
	Value T
	Err   error
}

type pending[T any] struct {
	forward func(T) T
	inverse func(T) T
	seq     uint64
}

// Controller координирует оптимистичные мутации. Безопасен для конкурентного использования.
type Controller[T any] struct {
	cache     Cache[T]
	logger    *slog.Logger
	onUpdated func(id string, v T)
	onFailed  func(id string, v T, err error)
	inFlight  map[string]pending[T]
	seq       map[string]uint64
	lastErr   map[string]error
	// settled номер завершения последней мутации по сущности, см. Version
	settled     map[string]uint64
	wg          sync.WaitGroup
	version     uint64
	callTimeout time.Duration
	mu          sync.Mutex
}

// Option настраивает Controller
type Option[T any] func(*Controller[T])

// WithOnUpdated вызывается после того, как сервер подтвердил мутацию
func WithOnUpdated[T any](fn func(id string, v T)) Option[T] {
	return func(c *Controller[T]) { c.onUpdated = fn }
}

// WithOnFailed вызывается после отката мутации
func WithOnFailed[T any](fn func(id string, v T, err error)) Option[T] {
	return func(c *Controller[T]) { c.onFailed = fn }
}

// WithLogger задает логгер
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(c *Controller[T]) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCallTimeout задает предел серверного вызова; d <= 0 игнорируется
func WithCallTimeout[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) {
		if d > 0 {
			c.callTimeout = d
		}
	}
}

// NewController создает контроллер поверх кэша
func NewController[T any](cache Cache[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		cache:    cache,
		logger:   slog.New(slog.DiscardHandler),
		inFlight: make(map[string]pending[T]),
		seq:      make(map[string]uint64),
		lastErr:  make(map[string]error),
		settled:  make(map[string]uint64),

		callTimeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start синхронно применяет Forward и запускает серверный вызов в фоне.
// Вызов не отменяется вместе с ctx: блокировка сущности снимается только
// по его завершению или по таймауту WithCallTimeout.
// Результат приходит в возвращаемый канал ровно один раз.
func (c *Controller[T]) Start(ctx context.Context, m Mutation[T]) (<-chan Result[T], error) {
	if m.ID == "" || m.Call == nil || (m.Plan == nil && (m.Forward == nil || m.Inverse == nil)) {
		return nil, fmt.Errorf("incomplete mutation for %q", m.ID)
	}

	c.mu.Lock()
	if _, busy := c.inFlight[m.ID]; busy {
		c.mu.Unlock()
		c.logger.Debug("mutation rejected, another one in flight", "id", m.ID)
		return nil, ErrInFlight
	}

	current, err := c.cache.Load(ctx, m.ID)
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("failed to load %q: %w", m.ID, err)
	}
	forward, inverse := m.Forward, m.Inverse
	if m.Plan != nil {
		forward, inverse = m.Plan(current)
	}
	if err := c.cache.Store(ctx, m.ID, forward(current)); err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("failed to store optimistic %q: %w", m.ID, err)
	}

	c.seq[m.ID]++
	seq := c.seq[m.ID]
	c.inFlight[m.ID] = pending[T]{forward: forward, inverse: inverse, seq: seq}
	delete(c.lastErr, m.ID)
	c.mu.Unlock()

	detached := context.WithoutCancel(ctx)
	results := make(chan Result[T], 1)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		callCtx, cancel := context.WithTimeout(detached, c.callTimeout)
		v, err := m.Call(callCtx)
		cancel()
		results <- c.complete(detached, m.ID, seq, v, err)
		close(results)
	}()

	return results, nil
}

// Perform выполняет мутацию и ждет результата.
// При отмене ctx возвращается сразу; вызов к серверу доживает в фоне, и его
// результат попадет в кэш.
func (c *Controller[T]) Perform(ctx context.Context, m Mutation[T]) (T, error) {
	var zero T

	results, err := c.Start(ctx, m)
	if err != nil {
		return zero, err
	}

	select {
	case res := <-results:
		return res.Value, res.Err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// complete сводит результат серверного вызова с кэшем
func (c *Controller[T]) complete(ctx context.Context, id string, seq uint64, server T, callErr error) Result[T] {
	c.mu.Lock()

	p, ok := c.inFlight[id]
	if !ok || p.seq != seq {
		c.mu.Unlock()
		c.logger.Debug("discarding stale mutation completion", "id", id, "seq", seq)
		return Result[T]{Value: server, Err: callErr}
	}
	delete(c.inFlight, id)
	c.version++
	c.settled[id] = c.version

	if callErr == nil {
		if err := c.cache.Store(ctx, id, server); err != nil {
			c.logger.Error("failed to store confirmed entity", "id", id, "error", err)
		}
		c.mu.Unlock()
		if c.onUpdated != nil {
			c.onUpdated(id, server)
		}
		return Result[T]{Value: server}
	}

	c.lastErr[id] = callErr
	rolledBack, err := c.rollback(ctx, id, p.inverse)
	c.mu.Unlock()
	if err != nil {
		c.logger.Error("failed to roll back mutation", "id", id, "error", err)
	}
	c.logger.Warn("mutation rolled back", "id", id, "error", callErr)

	if c.onFailed != nil {
		c.onFailed(id, rolledBack, callErr)
	}
	return Result[T]{Value: rolledBack, Err: callErr}
}

// rollback применяет inverse к текущему значению кэша. Вызывается под c.mu
func (c *Controller[T]) rollback(ctx context.Context, id string, inverse func(T) T) (T, error) {
	current, err := c.cache.Load(ctx, id)
	if err != nil {
		return current, err
	}
	restored := inverse(current)
	if err := c.cache.Store(ctx, id, restored); err != nil {
		return restored, err
	}
	return restored, nil
}

// Refresh записывает пришедшую с сервера сущность. Если для нее выполняется мутация,
// ее Forward применяется поверх, чтобы оптимистичное состояние оставалось видимым.
func (c *Controller[T]) Refresh(ctx context.Context, id string, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.inFlight[id]; ok {
		v = p.forward(v)
	}
	return c.cache.Store(ctx, id, v)
}

// Version возвращает номер последнего завершения мутации.
// Снимается до запроса пачки с сервера и передается в RefreshAll.
func (c *Controller[T]) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// RefreshAll сохраняет пачку сущностей с сервера через save под той же блокировкой,
// что и мутации. Поверх сущностей с незавершенной мутацией применяется ее Forward.
// Сущности, мутация которых завершилась после since, берутся из кэша: ответ
// сервера был сформирован раньше подтверждения.
func (c *Controller[T]) RefreshAll(
	ctx context.Context,
	since uint64,
	items []T,
	key func(T) string,
	save func(context.Context, []T) error,
) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	merged := make([]T, len(items))
	for i, v := range items {
		id := key(v)
		merged[i] = v
		if c.settled[id] > since {
			// в кэше уже подтвержденное значение и Forward новой мутации, если она есть
			if cached, err := c.cache.Load(ctx, id); err == nil {
				merged[i] = cached
				continue
			}
		}
		if p, ok := c.inFlight[id]; ok {
			merged[i] = p.forward(v)
		}
	}

	if err := save(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// Forget сбрасывает состояние сущности. Незавершенная мутация по ней будет
// проигнорирована при завершении, и кэш она уже не изменит.
func (c *Controller[T]) Forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq[id]++
	delete(c.inFlight, id)
	delete(c.lastErr, id)
	delete(c.settled, id)
}

// Get возвращает текущее значение сущности из кэша
func (c *Controller[T]) Get(ctx context.Context, id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Load(ctx, id)
}

// InFlight сообщает, выполняется ли мутация для сущности
func (c *Controller[T]) InFlight(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inFlight[id]
	return ok
}

// LastError возвращает ошибку последней откаченной мутации сущности
func (c *Controller[T]) LastError(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr[id]
}

// Wait блокируется до завершения всех запущенных мутаций
func (c *Controller[T]) Wait() {
	c.wg.Wait()
}
