package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chirp/internal/client/api"
	"github.com/iudanet/chirp/internal/client/session"
	"github.com/iudanet/chirp/internal/models"
	pkgapi "github.com/iudanet/chirp/pkg/api"
)

type staticIdentity struct {
	principal *session.Principal
}

func (s staticIdentity) Principal(context.Context) (*session.Principal, error) {
	if s.principal == nil {
		return nil, session.ErrNotAuthenticated
	}
	return s.principal, nil
}

func newTestService(t *testing.T, handler http.HandlerFunc, identity session.Identity) *NotificationService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, api.WithTokenSource(api.StaticToken("tok")))
	return NewNotificationService(client, identity, nil)
}

func TestNotificationService_FetchNotifications(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/u1", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"_id":"n1","notificationSenderId":{"_id":"u2","username":"bob"},"notificationReceiverId":"u1","notificationType":"like","postText":"hi","createdAt":"2024-03-01T10:00:00.000Z"},
			{"_id":"n2","notificationSenderId":{"_id":"u3","username":"carol"},"notificationReceiverId":"u1","notificationType":"follow","createdAt":"2024-03-02T10:00:00.500Z"}
		]`)
	}, staticIdentity{principal: &session.Principal{UserID: "u1"}})

	notifications, err := svc.FetchNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	// новые первыми
	assert.Equal(t, "n2", notifications[0].ID)
	assert.Equal(t, "carol", notifications[0].SenderUsername)
	assert.Equal(t, models.NotificationLike, notifications[1].Type)
}

func TestNotificationService_FetchWithoutSession(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, staticIdentity{})

	_, err := svc.FetchNotifications(context.Background())
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func TestNotificationService_FetchDecodingError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"_id":"n1","notificationType":"poke","createdAt":"2024-03-01T10:00:00Z"}]`)
	}, staticIdentity{principal: &session.Principal{UserID: "u1"}})

	_, err := svc.FetchNotifications(context.Background())
	assert.Equal(t, api.KindDecoding, api.KindOf(err))
}

func TestNotificationService_Create(t *testing.T) {
	received := make(chan pkgapi.CreateNotificationRequest, 1)
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notifications", r.URL.Path)
		var req pkgapi.CreateNotificationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		received <- req
		w.WriteHeader(http.StatusCreated)
	}, staticIdentity{principal: &session.Principal{UserID: "u2"}})

	text := "hello"
	err := svc.Create(context.Background(), pkgapi.CreateNotificationRequest{
		Username:               "bob",
		NotificationReceiverID: "u1",
		NotificationType:       models.NotificationLike,
		PostText:               &text,
	})
	require.NoError(t, err)

	got := <-received
	assert.Equal(t, "u1", got.NotificationReceiverID)
	assert.Equal(t, models.NotificationLike, got.NotificationType)
	require.NotNil(t, got.PostText)
	assert.Equal(t, "hello", *got.PostText)
}

func TestNotificationService_CreateRequiresReceiver(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, staticIdentity{principal: &session.Principal{UserID: "u2"}})

	assert.Error(t, svc.Create(context.Background(), pkgapi.CreateNotificationRequest{}))
}
