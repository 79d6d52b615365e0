package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	pkgapi "github.com/iudanet/chirp/pkg/api"
)

// Kind классифицирует ошибку сетевого слоя. Набор значений закрыт.
type Kind int

const (
	// KindUnknown возвращается KindOf для ошибок, не являющихся *Error
	KindUnknown Kind = iota
	// KindInvalidURL: не удалось собрать URL запроса
	KindInvalidURL
	// KindInvalidResponse: транспорт вернул пустой результат без ошибки
	KindInvalidResponse
	// KindHTTP: статус вне диапазонов 2xx/4xx/5xx
	KindHTTP
	// KindDecoding: тело успешного ответа не разобралось
	KindDecoding
	// KindServer: 5xx или отсутствие ответа. Единственный повторяемый вид
	KindServer
	// KindClient: 4xx кроме 401, с необязательным payload ошибки
	KindClient
	// KindUnauthorized: 401, сессия недействительна
	KindUnauthorized
	// KindNoData: успешный ответ без тела там, где тело ожидалось
	KindNoData
	// KindMaxRetriesExceeded: попытки по политике повторов исчерпаны
	KindMaxRetriesExceeded
	// KindNoToken: эндпоинт требует авторизации, а токена нет
	KindNoToken
	// KindCustom: ошибка с произвольным сообщением
	KindCustom
)

var kindNames = map[Kind]string{
	KindUnknown:            "unknown",
	KindInvalidURL:         "invalid_url",
	KindInvalidResponse:    "invalid_response",
	KindHTTP:               "http_error",
	KindDecoding:           "decoding_error",
	KindServer:             "server_error",
	KindClient:             "client_error",
	KindUnauthorized:       "unauthorized",
	KindNoData:             "no_data",
	KindMaxRetriesExceeded: "max_retries_exceeded",
	KindNoToken:            "no_token",
	KindCustom:             "custom",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error единственный тип ошибки, пересекающий границу Client
type Error struct {
	// Payload разобранное тело ошибки сервера (только KindClient, может быть nil)
	Payload *pkgapi.ErrorResponse
	// Cause исходная ошибка для errors.Is / errors.As
	Cause error
	// Message текст для KindCustom
	Message string
	Kind    Kind
	// StatusCode HTTP статус, если ответ был получен
	StatusCode int
}

// Сравниваемые через errors.Is значения
var (
	ErrInvalidURL         = &Error{Kind: KindInvalidURL}
	ErrInvalidResponse    = &Error{Kind: KindInvalidResponse}
	ErrServer             = &Error{Kind: KindServer}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized}
	ErrNoData             = &Error{Kind: KindNoData}
	ErrMaxRetriesExceeded = &Error{Kind: KindMaxRetriesExceeded}
	ErrNoToken            = &Error{Kind: KindNoToken}
)

// Error возвращает описание, пригодное для показа пользователю
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindInvalidURL:
		return "invalid URL"
	case KindInvalidResponse:
		return "invalid response"
	case KindHTTP:
		return fmt.Sprintf("HTTP error: %d", e.StatusCode)
	case KindDecoding:
		if e.Cause != nil {
			return fmt.Sprintf("failed to decode response: %v", e.Cause)
		}
		return "failed to decode response"
	case KindServer:
		return "server error"
	case KindClient:
		if e.Payload != nil && e.Payload.Message != "" {
			return e.Payload.Message
		}
		return "client error"
	case KindUnauthorized:
		return "unauthorized"
	case KindNoData:
		return "no data"
	case KindMaxRetriesExceeded:
		return "maximum retry attempts exceeded"
	case KindNoToken:
		return "access token not found"
	case KindCustom:
		return e.Message
	default:
		return "unknown error"
	}
}

// Unwrap возвращает исходную причину
func (e *Error) Unwrap() error { return e.Cause }

// Is сравнивает ошибки по Kind; у KindHTTP учитывается и статус, если он задан в target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

// Retryable сообщает, можно ли повторить запрос
func (e *Error) Retryable() bool {
	return e.Kind == KindServer
}

// KindOf возвращает Kind ошибки или KindUnknown
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsUnauthorized сообщает, что сессия больше не действительна и вызывающему нужно выйти
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}

// Custom создает ошибку с произвольным сообщением
func Custom(message string, cause error) *Error {
	return &Error{Kind: KindCustom, Message: message, Cause: cause}
}

// classify переводит результат обмена в тело ответа или ошибку
func classify(res *ExchangeResult) ([]byte, error) {
	code := res.StatusCode
	switch {
	case code >= 200 && code <= 299:
		return res.Body, nil
	case code == http.StatusUnauthorized:
		return nil, &Error{Kind: KindUnauthorized, StatusCode: code}
	case code >= 400 && code <= 499:
		return nil, &Error{Kind: KindClient, StatusCode: code, Payload: decodeErrorPayload(res.Body)}
	case code >= 500 && code <= 599:
		return nil, &Error{Kind: KindServer, StatusCode: code}
	default:
		return nil, &Error{Kind: KindHTTP, StatusCode: code}
	}
}

// decodeErrorPayload разбирает тело ошибки; при неудаче возвращает nil
func decodeErrorPayload(body []byte) *pkgapi.ErrorResponse {
	var payload pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	return &payload
}
