package mutation

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound возвращается MapCache для отсутствующей сущности
var ErrNotFound = errors.New("entity not found")

// MapCache Cache в памяти
type MapCache[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewMapCache создает пустой кэш в памяти
func NewMapCache[T any]() *MapCache[T] {
	return &MapCache[T]{items: make(map[string]T)}
}

// Load возвращает сущность или ErrNotFound
func (m *MapCache[T]) Load(_ context.Context, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

// Store сохраняет сущность
func (m *MapCache[T]) Store(_ context.Context, id string, v T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = v
	return nil
}
