package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chirp/internal/models"
	pkgapi "github.com/iudanet/chirp/pkg/api"
)

func fastPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BackoffBase: time.Millisecond}
}

func TestExecute_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"_id":"t1","text":"hello","userId":"u1","username":"alice","likes":["u2"]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetryPolicy(fastPolicy()), WithTokenSource(StaticToken("tok")))

	tweet, err := Execute[models.Tweet](context.Background(), client, LikeTweet("t1"))
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, "t1", tweet.ID)
	assert.Equal(t, []string{"u2"}, tweet.Likes)
}

func TestExecute_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"not found","code":"404"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetryPolicy(fastPolicy()), WithTokenSource(StaticToken("tok")))

	_, err := Execute[models.Tweet](context.Background(), client, LikeTweet("t1"))
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindClient, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.NotNil(t, apiErr.Payload)
	assert.Equal(t, "not found", apiErr.Payload.Message)
	require.NotNil(t, apiErr.Payload.Code)
	assert.Equal(t, "404", *apiErr.Payload.Code)
}

func TestExecute_UnauthorizedNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetryPolicy(fastPolicy()), WithTokenSource(StaticToken("tok")))

	err := client.ExecuteVoid(context.Background(), FetchCurrentUser())
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestExecute_NotModifiedIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetryPolicy(fastPolicy()), WithTokenSource(StaticToken("tok")))

	_, err := Execute[[]models.Tweet](context.Background(), client, FetchTweets())
	assert.ErrorIs(t, err, &Error{Kind: KindHTTP, StatusCode: http.StatusNotModified})
}

func TestExecute_DecodingError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"_id": 42`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTokenSource(StaticToken("tok")))

	_, err := Execute[models.Tweet](context.Background(), client, LikeTweet("t1"))
	assert.Equal(t, KindDecoding, KindOf(err))
}

func TestExecute_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTokenSource(StaticToken("tok")))

	_, err := Execute[models.User](context.Background(), client, FetchCurrentUser())
	assert.ErrorIs(t, err, ErrNoData)

	// для ExecuteVoid пустое тело не ошибка
	assert.NoError(t, client.ExecuteVoid(context.Background(), FetchCurrentUser()))
}

func TestExecute_TransportFailureExhaustsRetries(t *testing.T) {
	transportErr := errors.New("connection refused")
	mock := &TransportMock{
		ExchangeFunc: func(ctx context.Context, req *http.Request) (*ExchangeResult, error) {
			return nil, transportErr
		},
	}

	var (
		mu     sync.Mutex
		delays []time.Duration
	)
	client := NewClient("https://api.example.com",
		WithTransport(mock),
		WithTokenSource(StaticToken("tok")),
		WithRetryPolicy(fastPolicy()),
		WithRetryObserver(func(attempt int, delay time.Duration) {
			mu.Lock()
			defer mu.Unlock()
			delays = append(delays, delay)
		}),
	)

	_, err := Execute[models.Tweet](context.Background(), client, LikeTweet("t1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.ErrorIs(t, err, transportErr)
	assert.Len(t, mock.ExchangeCalls(), 3)

	require.Len(t, delays, 2)
	assert.Equal(t, 2*time.Millisecond, delays[0])
	assert.Equal(t, 4*time.Millisecond, delays[1])
	assert.Greater(t, delays[1], delays[0])
}

func TestExecute_SingleAttemptPolicy(t *testing.T) {
	mock := &TransportMock{
		ExchangeFunc: func(ctx context.Context, req *http.Request) (*ExchangeResult, error) {
			return &ExchangeResult{StatusCode: http.StatusBadGateway}, nil
		},
	}
	client := NewClient("https://api.example.com",
		WithTransport(mock),
		WithRetryPolicy(RetryPolicy{MaxAttempts: 1}),
	)

	_, err := Execute[models.Tweet](context.Background(), client, Login(pkgapi.LoginRequest{}))
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.Len(t, mock.ExchangeCalls(), 1)
}

func TestExecute_NilResult(t *testing.T) {
	mock := &TransportMock{
		ExchangeFunc: func(ctx context.Context, req *http.Request) (*ExchangeResult, error) {
			return nil, nil
		},
	}
	client := NewClient("https://api.example.com", WithTransport(mock))

	err := client.ExecuteVoid(context.Background(), Login(pkgapi.LoginRequest{}))
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Len(t, mock.ExchangeCalls(), 1)
}

// rotatingToken выдает новый токен на каждый вызов
type rotatingToken struct {
	tokens []string
	n      int
}

func (r *rotatingToken) Token(context.Context) (string, bool) {
	tok := r.tokens[r.n%len(r.tokens)]
	r.n++
	return tok, true
}

func TestExecute_FreshTokenPerAttempt(t *testing.T) {
	var seen []string
	mock := &TransportMock{
		ExchangeFunc: func(ctx context.Context, req *http.Request) (*ExchangeResult, error) {
			seen = append(seen, req.Header.Get("Authorization"))
			if len(seen) < 2 {
				return &ExchangeResult{StatusCode: http.StatusServiceUnavailable}, nil
			}
			return &ExchangeResult{StatusCode: http.StatusOK, Body: []byte(`[]`)}, nil
		},
	}
	client := NewClient("https://api.example.com",
		WithTransport(mock),
		WithTokenSource(&rotatingToken{tokens: []string{"old", "new"}}),
		WithRetryPolicy(fastPolicy()),
	)

	tweets, err := Execute[[]models.Tweet](context.Background(), client, FetchTweets())
	require.NoError(t, err)
	assert.Empty(t, tweets)
	assert.Equal(t, []string{"Bearer old", "Bearer new"}, seen)
}

func TestExecute_NoToken(t *testing.T) {
	mock := &TransportMock{}
	client := NewClient("https://api.example.com", WithTransport(mock))

	_, err := Execute[[]models.Tweet](context.Background(), client, FetchTweets())
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Empty(t, mock.ExchangeCalls())
}

func TestExecute_InvalidURL(t *testing.T) {
	mock := &TransportMock{}

	for _, base := range []string{"", "not a url", "://missing-scheme"} {
		client := NewClient(base, WithTransport(mock))
		err := client.ExecuteVoid(context.Background(), Login(pkgapi.LoginRequest{}))
		assert.ErrorIs(t, err, ErrInvalidURL, base)
	}
	assert.Empty(t, mock.ExchangeCalls())
}

func TestExecute_RequestShape(t *testing.T) {
	var req *http.Request
	var body []byte
	mock := &TransportMock{
		ExchangeFunc: func(ctx context.Context, r *http.Request) (*ExchangeResult, error) {
			req = r
			body, _ = io.ReadAll(r.Body)
			return &ExchangeResult{StatusCode: http.StatusCreated, Body: []byte(`{}`)}, nil
		},
	}
	client := NewClient("https://api.example.com/api/",
		WithTransport(mock),
		WithTokenSource(StaticToken("tok")),
	)

	ep := NewEndpoint(MethodPost, "/tweets",
		Authenticated(),
		WithJSON(pkgapi.CreateTweetRequest{Text: "hi", UserID: "u1"}),
		WithQuery("z", "1"),
		WithQuery("a", "x y"),
		WithHeader("Accept", "text/plain"),
		WithHeader("User-Agent", ""),
	)
	require.NoError(t, client.ExecuteVoid(context.Background(), ep))

	require.NotNil(t, req)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://api.example.com/api/tweets?z=1&a=x+y", req.URL.String())
	assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
	assert.Equal(t, "text/plain", req.Header.Get("Accept"))
	assert.Equal(t, "chirp-client/1.0", req.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", req.Header.Get("Cache-Control"))
	assert.Equal(t, "no-cache", req.Header.Get("Pragma"))
	assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
	assert.JSONEq(t, `{"text":"hi","userId":"u1"}`, string(body))
}

func TestExecute_MultipartContentType(t *testing.T) {
	var contentType string
	mock := &TransportMock{
		ExchangeFunc: func(ctx context.Context, r *http.Request) (*ExchangeResult, error) {
			contentType = r.Header.Get("Content-Type")
			return &ExchangeResult{StatusCode: http.StatusOK}, nil
		},
	}
	client := NewClient("https://api.example.com", WithTransport(mock), WithTokenSource(StaticToken("tok")))

	require.NoError(t, client.ExecuteVoid(context.Background(), UploadBanner([]byte{1, 2, 3})))
	assert.Contains(t, contentType, "multipart/form-data; boundary=")
}

func TestExecute_ContextCanceled(t *testing.T) {
	mock := &TransportMock{
		ExchangeFunc: func(ctx context.Context, r *http.Request) (*ExchangeResult, error) {
			return &ExchangeResult{StatusCode: http.StatusInternalServerError}, nil
		},
	}
	client := NewClient("https://api.example.com",
		WithTransport(mock),
		WithRetryPolicy(RetryPolicy{MaxAttempts: 5, BackoffBase: time.Hour}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := client.ExecuteVoid(ctx, Login(pkgapi.LoginRequest{}))
	require.Error(t, err)
	assert.Equal(t, KindCustom, KindOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, mock.ExchangeCalls(), 1)
}

func TestExecute_ConcurrentCallsIndependent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"_id":"`+r.URL.Path[len("/users/"):]+`","username":"u","name":"n","email":"e"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTokenSource(StaticToken("tok")))

	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := Execute[models.User](context.Background(), client, FetchUserProfile(id))
			assert.NoError(t, err)
			assert.Equal(t, id, user.ID)
		}()
	}
	wg.Wait()
}
