package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// TokenSource отдает текущий bearer token. Читается при сборке каждой попытки,
// поэтому повтор подхватывает только что обновленный токен.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// StaticToken TokenSource с фиксированным токеном; пустая строка означает отсутствие токена
type StaticToken string

// Token возвращает токен, если он не пустой
func (s StaticToken) Token(context.Context) (string, bool) {
	return string(s), s != ""
}

// Client представляет HTTP клиент для взаимодействия с сервером.
// Не хранит изменяемого общего состояния: параллельные вызовы независимы.
type Client struct {
	transport Transport
	tokens    TokenSource
	logger    *slog.Logger
	observer  func(attempt int, delay time.Duration)
	headers   http.Header
	baseURL   string
	policy    RetryPolicy
}

// Option настраивает Client
type Option func(*Client)

// WithTransport подменяет транспорт (например, в тестах)
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithTokenSource задает источник bearer token
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithRetryPolicy задает политику повторов; некорректная политика игнорируется
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) {
		if p.Validate() == nil {
			c.policy = p
		}
	}
}

// WithLogger задает логгер
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultHeader добавляет заголовок по умолчанию для всех запросов
func WithDefaultHeader(name, value string) Option {
	return func(c *Client) { c.headers.Set(name, value) }
}

// WithRetryObserver вызывается перед каждым ожиданием с номером следующей попытки и задержкой
func WithRetryObserver(fn func(attempt int, delay time.Duration)) Option {
	return func(c *Client) { c.observer = fn }
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: NewHTTPTransport(30 * time.Second),
		tokens:    StaticToken(""),
		logger:    slog.New(slog.DiscardHandler),
		policy:    DefaultRetryPolicy(),
		headers: http.Header{
			"Accept":       []string{"application/json"},
			"Content-Type": []string{"application/json"},
			"User-Agent":   []string{"chirp-client/1.0"},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute выполняет запрос и декодирует JSON ответ в T
func Execute[T any](ctx context.Context, c *Client, ep Endpoint) (T, error) {
	var zero T

	body, err := c.do(ctx, ep)
	if err != nil {
		return zero, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return zero, &Error{Kind: KindNoData}
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Debug("failed to decode response",
			"method", ep.Method(),
			"path", ep.Path(),
			"error", err)
		return zero, &Error{Kind: KindDecoding, Cause: err}
	}

	return result, nil
}

// ExecuteVoid выполняет запрос, успех определяется только статусом.
// Тело ответа игнорируется.
func (c *Client) ExecuteVoid(ctx context.Context, ep Endpoint) error {
	_, err := c.do(ctx, ep)
	return err
}

// do выполняет запрос с повторами и возвращает тело успешного ответа
func (c *Client) do(ctx context.Context, ep Endpoint) ([]byte, error) {
	var (
		body    []byte
		attempt int
	)

	err := retry.Do(ctx, c.backoff(ep), func(ctx context.Context) error {
		attempt++
		res, err := c.attempt(ctx, ep, attempt)
		if err != nil {
			var apiErr *Error
			if errors.As(err, &apiErr) && apiErr.Retryable() {
				return retry.RetryableError(err)
			}
			return err
		}
		body = res
		return nil
	})
	if err == nil {
		return body, nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		// go-retry возвращает последнюю повторяемую ошибку, когда попытки исчерпаны
		if apiErr.Retryable() {
			c.logger.Warn("retry attempts exhausted",
				"method", ep.Method(),
				"path", ep.Path(),
				"attempts", attempt)
			return nil, &Error{Kind: KindMaxRetriesExceeded, Cause: apiErr}
		}
		return nil, apiErr
	}

	return nil, canceled(err)
}

// attempt собирает свежий запрос и выполняет одну попытку
func (c *Client) attempt(ctx context.Context, ep Endpoint, n int) ([]byte, error) {
	req, err := c.buildRequest(ctx, ep)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := c.transport.Exchange(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, canceled(ctx.Err())
		}
		c.logger.Debug("HTTP exchange failed",
			"method", req.Method,
			"path", req.URL.Path,
			"attempt", n,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return nil, &Error{Kind: KindServer, Cause: err}
	}
	if res == nil {
		return nil, &Error{Kind: KindInvalidResponse}
	}

	c.logger.Debug("HTTP exchange",
		"method", req.Method,
		"path", req.URL.Path,
		"status", res.StatusCode,
		"attempt", n,
		"request_id", req.Header.Get("X-Request-ID"),
		"duration_ms", time.Since(start).Milliseconds(),
		"bytes", len(res.Body))

	return classify(res)
}

// buildRequest собирает запрос: базовый URL + путь, query, заголовки, токен, тело
func (c *Client) buildRequest(ctx context.Context, ep Endpoint) (*http.Request, error) {
	u, err := url.Parse(c.baseURL + ep.Path())
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &Error{Kind: KindInvalidURL, Cause: err}
	}
	if raw := encodeQuery(ep.Query()); raw != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + raw
		} else {
			u.RawQuery = raw
		}
	}

	payload, err := ep.Payload()
	if err != nil {
		return nil, Custom("failed to encode request body", err)
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload.Data)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method(), u.String(), bodyReader)
	if err != nil {
		return nil, &Error{Kind: KindInvalidURL, Cause: err}
	}

	defaults := c.headers.Clone()
	if ep.RequiresAuth() {
		token, ok := c.tokens.Token(ctx)
		if !ok {
			return nil, &Error{Kind: KindNoToken}
		}
		defaults.Set("Authorization", "Bearer "+token)
	}

	header := MergeHeaders(defaults, ep.Headers())
	if payload != nil && payload.ContentType != "" {
		header.Set("Content-Type", payload.ContentType)
	}
	// Локальный HTTP кэш не используется никогда
	header.Set("Cache-Control", "no-cache")
	header.Set("Pragma", "no-cache")
	header.Set("X-Request-ID", uuid.NewString())
	req.Header = header

	return req, nil
}

// backoff оборачивает политику повторов логированием и наблюдателем
func (c *Client) backoff(ep Endpoint) retry.Backoff {
	inner := c.policy.Backoff()
	attempt := 1

	return retry.BackoffFunc(func() (time.Duration, bool) {
		delay, stop := inner.Next()
		if stop {
			return 0, true
		}
		attempt++
		c.logger.Warn("retrying request",
			"method", ep.Method(),
			"path", ep.Path(),
			"attempt", attempt,
			"delay", delay)
		if c.observer != nil {
			c.observer(attempt, delay)
		}
		return delay, false
	})
}

func encodeQuery(items []QueryItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, url.QueryEscape(item.Key)+"="+url.QueryEscape(item.Value))
	}
	return strings.Join(parts, "&")
}

func canceled(err error) *Error {
	return Custom("request canceled", err)
}
