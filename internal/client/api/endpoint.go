package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"slices"

	"github.com/google/uuid"
)

// Поддерживаемые HTTP методы
const (
	MethodGet    = http.MethodGet
	MethodPost   = http.MethodPost
	MethodPut    = http.MethodPut
	MethodPatch  = http.MethodPatch
	MethodDelete = http.MethodDelete
)

// QueryItem одна пара key=value строки запроса. Порядок элементов сохраняется.
type QueryItem struct {
	Key   string
	Value string
}

// Payload тело запроса вместе с его Content-Type.
// Оба значения получаются одним вызовом producer'а, поэтому multipart boundary
// в заголовке и в теле всегда совпадают.
type Payload struct {
	ContentType string
	Data        []byte
}

// PayloadFunc производит тело запроса. Вызывается заново для каждой попытки.
type PayloadFunc func() (*Payload, error)

// Endpoint декларативное описание одного REST вызова
type Endpoint interface {
	Path() string
	Method() string
	Query() []QueryItem
	// Headers возвращает заголовки эндпоинта; они применяются поверх заголовков клиента
	Headers() map[string]string
	// Payload возвращает тело запроса или nil, если тела нет
	Payload() (*Payload, error)
	// RequiresAuth сообщает, нужен ли bearer token
	RequiresAuth() bool
}

// EndpointOption настраивает эндпоинт при создании
type EndpointOption func(*endpoint)

type endpoint struct {
	headers map[string]string
	payload PayloadFunc
	method  string
	path    string
	query   []QueryItem
	auth    bool
}

// NewEndpoint создает неизменяемый Endpoint
func NewEndpoint(method, path string, opts ...EndpointOption) Endpoint {
	e := &endpoint{
		method:  method,
		path:    path,
		headers: map[string]string{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return *e
}

// WithQuery добавляет параметр строки запроса
func WithQuery(key, value string) EndpointOption {
	return func(e *endpoint) {
		e.query = append(e.query, QueryItem{Key: key, Value: value})
	}
}

// WithHeader задает заголовок эндпоинта. Имена регистронезависимы, побеждает последняя запись.
func WithHeader(name, value string) EndpointOption {
	return func(e *endpoint) {
		name = textproto.CanonicalMIMEHeaderKey(name)
		e.headers[name] = value
	}
}

// WithJSON задает JSON тело из типизированного значения
func WithJSON(v any) EndpointOption {
	return func(e *endpoint) {
		e.payload = jsonPayload(v)
	}
}

// WithMultipart задает multipart/form-data тело из одной части
func WithMultipart(field, filename, contentType string, data []byte) EndpointOption {
	return func(e *endpoint) {
		e.payload = multipartPayload(field, filename, contentType, data)
	}
}

// Authenticated помечает эндпоинт как требующий bearer token
func Authenticated() EndpointOption {
	return func(e *endpoint) {
		e.auth = true
	}
}

func (e endpoint) Path() string       { return e.path }
func (e endpoint) Method() string     { return e.method }
func (e endpoint) RequiresAuth() bool { return e.auth }

func (e endpoint) Query() []QueryItem {
	return slices.Clone(e.query)
}

func (e endpoint) Headers() map[string]string {
	return maps.Clone(e.headers)
}

func (e endpoint) Payload() (*Payload, error) {
	if e.payload == nil {
		return nil, nil
	}
	return e.payload()
}

func jsonPayload(v any) PayloadFunc {
	return func() (*Payload, error) {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		return &Payload{ContentType: "application/json", Data: data}, nil
	}
}

func multipartPayload(field, filename, contentType string, data []byte) PayloadFunc {
	data = bytes.Clone(data)

	return func() (*Payload, error) {
		// boundary генерируется один раз и используется и в теле, и в Content-Type
		boundary := uuid.NewString()

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		if err := w.SetBoundary(boundary); err != nil {
			return nil, fmt.Errorf("failed to set multipart boundary: %w", err)
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("failed to create multipart part: %w", err)
		}
		if _, err := part.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write multipart part: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("failed to close multipart writer: %w", err)
		}

		return &Payload{ContentType: w.FormDataContentType(), Data: buf.Bytes()}, nil
	}
}

// MergeHeaders накладывает заголовки эндпоинта поверх заголовков по умолчанию.
// Пустое значение не затирает заголовок по умолчанию.
func MergeHeaders(defaults http.Header, overrides map[string]string) http.Header {
	out := defaults.Clone()
	if out == nil {
		out = http.Header{}
	}
	for k, v := range overrides {
		if v == "" {
			continue
		}
		out.Set(k, v)
	}
	return out
}
