package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate moq -out transport_mock.go . Transport

// ExchangeResult результат одной попытки обмена
type ExchangeResult struct {
	Body       []byte
	StatusCode int
}

// Transport выполняет сырой HTTP обмен.
// Ошибку возвращает только при сбое транспорта (сеть недоступна, таймаут);
// не-2xx статусы ошибкой не считаются.
type Transport interface {
	Exchange(ctx context.Context, req *http.Request) (*ExchangeResult, error)
}

// TransportFunc адаптер обычной функции к Transport
type TransportFunc func(ctx context.Context, req *http.Request) (*ExchangeResult, error)

// Exchange вызывает f(ctx, req)
func (f TransportFunc) Exchange(ctx context.Context, req *http.Request) (*ExchangeResult, error) {
	return f(ctx, req)
}

// HTTPTransport реализация Transport поверх net/http
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport создает транспорт с заданным таймаутом запроса
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		client: &http.Client{
			Timeout: timeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Exchange выполняет запрос и читает тело ответа целиком
func (t *HTTPTransport) Exchange(ctx context.Context, req *http.Request) (*ExchangeResult, error) {
	resp, err := t.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &ExchangeResult{StatusCode: resp.StatusCode, Body: body}, nil
}
