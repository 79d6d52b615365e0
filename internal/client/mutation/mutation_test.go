package mutation

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chirp/internal/client/api"
	"github.com/iudanet/chirp/internal/models"
)

const currentUser = "u1"

func newTweetController(t *testing.T, tweet models.Tweet, opts ...Option[models.Tweet]) (*Controller[models.Tweet], *MapCache[models.Tweet]) {
	t.Helper()
	cache := NewMapCache[models.Tweet]()
	require.NoError(t, cache.Store(context.Background(), tweet.ID, tweet))
	return NewController[models.Tweet](cache, opts...), cache
}

func like(id string, call func(ctx context.Context) (models.Tweet, error)) Mutation[models.Tweet] {
	return Mutation[models.Tweet]{
		ID:      id,
		Forward: models.AddLiker(currentUser),
		Inverse: models.RemoveLiker(currentUser),
		Call:    call,
	}
}

func unlike(id string, call func(ctx context.Context) (models.Tweet, error)) Mutation[models.Tweet] {
	return Mutation[models.Tweet]{
		ID:      id,
		Forward: models.RemoveLiker(currentUser),
		Inverse: models.AddLiker(currentUser),
		Call:    call,
	}
}

// blockingCall возвращает вызов, который ждет значения из канала
func blockingCall() (func(ctx context.Context) (models.Tweet, error), chan<- Result[models.Tweet]) {
	release := make(chan Result[models.Tweet], 1)
	return func(ctx context.Context) (models.Tweet, error) {
		select {
		case res := <-release:
			return res.Value, res.Err
		case <-ctx.Done():
			return models.Tweet{}, ctx.Err()
		}
	}, release
}

func TestController_LikeRollbackAfterRetriesExhausted(t *testing.T) {
	transport := &api.TransportMock{
		ExchangeFunc: func(ctx context.Context, req *http.Request) (*api.ExchangeResult, error) {
			return &api.ExchangeResult{StatusCode: http.StatusInternalServerError}, nil
		},
	}
	client := api.NewClient("https://api.example.com",
		api.WithTransport(transport),
		api.WithTokenSource(api.StaticToken("tok")),
		api.WithRetryPolicy(api.RetryPolicy{MaxAttempts: 3, BackoffBase: time.Millisecond}),
	)

	ctrl, cache := newTweetController(t, models.Tweet{ID: "t1", UserID: "owner"})

	gate := make(chan struct{})
	results, err := ctrl.Start(context.Background(), like("t1", func(ctx context.Context) (models.Tweet, error) {
		<-gate
		return api.Execute[models.Tweet](ctx, client, api.LikeTweet("t1"))
	}))
	require.NoError(t, err)

	// оптимистичное состояние видно сразу
	optimistic, err := cache.Load(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{currentUser}, optimistic.Likes)
	assert.True(t, ctrl.InFlight("t1"))

	close(gate)
	res := <-results

	assert.ErrorIs(t, res.Err, api.ErrMaxRetriesExceeded)
	assert.Len(t, transport.ExchangeCalls(), 3)

	final, err := ctrl.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Empty(t, final.Likes)
	assert.Equal(t, models.Tweet{ID: "t1", UserID: "owner"}, final)
	assert.False(t, ctrl.InFlight("t1"))
	assert.ErrorIs(t, ctrl.LastError("t1"), api.ErrMaxRetriesExceeded)
}

func TestController_SuccessReplacesWholesale(t *testing.T) {
	var (
		updatedID string
		updated   models.Tweet
	)
	ctrl, _ := newTweetController(t, models.Tweet{ID: "t1", UserID: "owner", Text: "old"},
		WithOnUpdated(func(id string, v models.Tweet) {
			updatedID = id
			updated = v
		}),
	)

	server := models.Tweet{ID: "t1", UserID: "owner", Text: "edited", Likes: []string{"u9", currentUser}}
	got, err := ctrl.Perform(context.Background(), like("t1", func(context.Context) (models.Tweet, error) {
		return server, nil
	}))
	require.NoError(t, err)
	assert.Equal(t, server, got)

	cached, err := ctrl.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, server, cached)
	assert.Equal(t, "t1", updatedID)
	assert.Equal(t, server, updated)
	assert.NoError(t, ctrl.LastError("t1"))
}

func TestController_RejectsOppositeWhileInFlight(t *testing.T) {
	ctrl, _ := newTweetController(t, models.Tweet{ID: "t1", UserID: "owner"})

	call, release := blockingCall()
	results, err := ctrl.Start(context.Background(), like("t1", call))
	require.NoError(t, err)

	var unlikeCalled bool
	_, err = ctrl.Start(context.Background(), unlike("t1", func(context.Context) (models.Tweet, error) {
		unlikeCalled = true
		return models.Tweet{}, nil
	}))
	assert.ErrorIs(t, err, ErrInFlight)

	_, err = ctrl.Start(context.Background(), like("t1", call))
	assert.ErrorIs(t, err, ErrInFlight)

	release <- Result[models.Tweet]{Value: models.Tweet{ID: "t1", UserID: "owner", Likes: []string{currentUser}}}
	res := <-results
	require.NoError(t, res.Err)
	assert.False(t, unlikeCalled)

	final, err := ctrl.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{currentUser}, final.Likes)
	assert.False(t, ctrl.InFlight("t1"))
}

func TestController_ConcurrentTaps(t *testing.T) {
	ctrl, _ := newTweetController(t, models.Tweet{ID: "t1", UserID: "owner"})

	call, release := blockingCall()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		started  []<-chan Result[models.Tweet]
		rejected int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch, err := ctrl.Start(context.Background(), like("t1", call))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				assert.ErrorIs(t, err, ErrInFlight)
				rejected++
				return
			}
			started = append(started, ch)
		}()
	}
	wg.Wait()

	require.Len(t, started, 1)
	assert.Equal(t, 19, rejected)

	release <- Result[models.Tweet]{Value: models.Tweet{ID: "t1", UserID: "owner", Likes: []string{currentUser}}}
	res := <-started[0]
	require.NoError(t, res.Err)
}

func TestController_IndependentEntities(t *testing.T) {
	ctrl, cache := newTweetController(t, models.Tweet{ID: "t1", UserID: "owner"})
	require.NoError(t, cache.Store(context.Background(), "t2", models.Tweet{ID: "t2", UserID: "owner"}))

	call1, release1 := blockingCall()
	call2, release2 := blockingCall()

	r1, err := ctrl.Start(context.Background(), like("t1", call1))
	require.NoError(t, err)
	r2, err := ctrl.Start(context.Background(), like("t2", call2))
	require.NoError(t, err)

	release1 <- Result[models.Tweet]{Err: api.ErrServer}
	release2 <- Result[models.Tweet]{Value: models.Tweet{ID: "t2", UserID: "owner", Likes: []string{currentUser}}}

	assert.Error(t, (<-r1).Err)
	assert.NoError(t, (<-r2).Err)

	t1, _ := ctrl.Get(context.Background(), "t1")
	t2, _ := ctrl.Get(context.Background(), "t2")
	assert.Empty(t, t1.Likes)
	assert.Equal(t, []string{currentUser}, t2.Likes)
}

func TestController_RollbackKeepsUnrelatedUpdates(t *testing.T) {
	var failed error
	ctrl, _ := newTweetController(t, models.Tweet{ID: "t1", UserID: "owner"},
		WithOnFailed(func(id string, v models.Tweet, err error) { failed = err }),
	)

	call, release := blockingCall()
	results, err := ctrl.Start(context.Background(), like("t1", call))
	require.NoError(t, err)

	// пока лайк в полете, лента обновилась: u2 тоже лайкнул
	require.NoError(t, ctrl.Refresh(context.Background(), "t1", models.Tweet{ID: "t1", UserID: "owner", Likes: []string{"u2"}}))

	refreshed, err := ctrl.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"u2", currentUser}, refreshed.Likes)

	clientErr := &api.Error{Kind: api.KindClient, StatusCode: http.StatusNotFound}
	release <- Result[models.Tweet]{Err: clientErr}
	res := <-results
	assert.ErrorIs(t, res.Err, clientErr)
	assert.Equal(t, []string{"u2"}, res.Value.Likes)

	final, err := ctrl.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, final.Likes)
	assert.ErrorIs(t, failed, clientErr)
}

func TestController_RefreshWithoutMutation(t *testing.T) {
	ctrl, _ := newTweetController(t, models.Tweet{ID: "t1", UserID: "owner"})

	server := models.Tweet{ID: "t1", UserID: "owner", Likes: []string{"u5"}}
	require.NoError(t, ctrl.Refresh(context.Background(), "t1", server))

	got, err := ctrl.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, server, got)
}

func TestController_CancelledCallerDoesNotCancelCall(t *testing.T) {
	ctrl, _ := newTweetController(t, models.Tweet{ID: "t1", UserID: "owner"})

	ctx, cancel := context.WithCancel(context.Background())
	call, release := blockingCall()

	done := make(chan error, 1)
	go func() {
		_, err := ctrl.Perform(ctx, like("t1", call))
		done <- err
	}()

	require.Eventually(t, func() bool { return ctrl.InFlight("t1") }, time.Second, time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	// вызывающий ушел, но запрос к серверу продолжается
	assert.True(t, ctrl.InFlight("t1"))

	confirmed := models.Tweet{ID: "t1", UserID: "owner", Likes: []string{currentUser}}
	release <- Result[models.Tweet]{Value: confirmed}
	ctrl.Wait()

	assert.False(t, ctrl.InFlight("t1"))
	assert.NoError(t, ctrl.LastError("t1"))
	final, err := ctrl.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, confirmed, final)

	// сущность не заблокирована навсегда
	_, err = ctrl.Perform(context.Background(), unlike("t1", func(context.Context) (models.Tweet, error) {
		return models.Tweet{ID: "t1", UserID: "owner"}, nil
	}))
	assert.NoError(t, err)
}

func TestController_CallTimeoutRollsBack(t *testing.T) {
	ctrl, _ := newTweetController(t, models.Tweet{ID: "t1", UserID: "owner"},
		WithCallTimeout[models.Tweet](10*time.Millisecond),
	)

	// сервер так и не ответил
	call, _ := blockingCall()
	_, err := ctrl.Perform(context.Background(), like("t1", call))
	require.ErrorIs(t, err, context.DeadlineExceeded)

	assert.False(t, ctrl.InFlight("t1"))
	final, err := ctrl.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Empty(t, final.Likes)
}

func TestController_PlanRollbackKeepsExistingState(t *testing.T) {
	failing := func(context.Context) (models.Tweet, error) { return models.Tweet{}, api.ErrServer }

	tests := []struct {
		plan    func(models.Tweet) (func(models.Tweet) models.Tweet, func(models.Tweet) models.Tweet)
		name    string
		initial []string
	}{
		{name: "like already liked", plan: models.LikePlan(currentUser), initial: []string{currentUser}},
		{name: "unlike never liked", plan: models.UnlikePlan(currentUser), initial: nil},
		{name: "like", plan: models.LikePlan(currentUser), initial: []string{"u2"}},
		{name: "unlike", plan: models.UnlikePlan(currentUser), initial: []string{"u2", currentUser, "u3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := models.Tweet{ID: "t1", UserID: "owner", Likes: tt.initial}
			ctrl, _ := newTweetController(t, initial)

			_, err := ctrl.Perform(context.Background(), Mutation[models.Tweet]{ID: "t1", Plan: tt.plan, Call: failing})
			require.ErrorIs(t, err, api.ErrServer)

			final, err := ctrl.Get(context.Background(), "t1")
			require.NoError(t, err)
			assert.Equal(t, initial, final)
		})
	}
}

func TestController_RefreshAll(t *testing.T) {
	ctx := context.Background()
	ctrl, cache := newTweetController(t, models.Tweet{ID: "t1", UserID: "owner"})
	require.NoError(t, cache.Store(ctx, "t2", models.Tweet{ID: "t2", UserID: "owner"}))
	require.NoError(t, cache.Store(ctx, "t3", models.Tweet{ID: "t3", UserID: "owner"}))

	key := func(tw models.Tweet) string { return tw.ID }
	var saved []models.Tweet
	save := func(_ context.Context, items []models.Tweet) error {
		saved = items
		return nil
	}

	since := ctrl.Version()

	// t1 подтвержден уже после того, как лента ушла с сервера
	_, err := ctrl.Perform(ctx, like("t1", func(context.Context) (models.Tweet, error) {
		return models.Tweet{ID: "t1", UserID: "owner", Likes: []string{currentUser}}, nil
	}))
	require.NoError(t, err)
	assert.Greater(t, ctrl.Version(), since)

	// t2 еще в полете
	call, release := blockingCall()
	results, err := ctrl.Start(ctx, like("t2", call))
	require.NoError(t, err)

	stale := []models.Tweet{
		{ID: "t1", UserID: "owner"},
		{ID: "t2", UserID: "owner", Likes: []string{"u7"}},
		{ID: "t3", UserID: "owner", Likes: []string{"u8"}},
	}
	got, err := ctrl.RefreshAll(ctx, since, stale, key, save)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	assert.Equal(t, []string{currentUser}, got[0].Likes)
	assert.Equal(t, []string{"u7", currentUser}, got[1].Likes)
	assert.Equal(t, []string{"u8"}, got[2].Likes)
	assert.Equal(t, []string{"u7"}, stale[1].Likes, "input must not be modified")

	// следующая лента запрошена после подтверждения и считается свежей
	got, err = ctrl.RefreshAll(ctx, ctrl.Version(), []models.Tweet{{ID: "t1", UserID: "owner"}}, key, save)
	require.NoError(t, err)
	assert.Empty(t, got[0].Likes)

	release <- Result[models.Tweet]{Value: models.Tweet{ID: "t2", UserID: "owner", Likes: []string{"u7", currentUser}}}
	require.NoError(t, (<-results).Err)
}

func TestController_RefreshAllSaveError(t *testing.T) {
	ctrl, _ := newTweetController(t, models.Tweet{ID: "t1"})

	saveErr := errors.New("disk full")
	_, err := ctrl.RefreshAll(context.Background(), 0, []models.Tweet{{ID: "t1"}},
		func(tw models.Tweet) string { return tw.ID },
		func(context.Context, []models.Tweet) error { return saveErr },
	)
	assert.ErrorIs(t, err, saveErr)
}

func TestController_StaleCompletionDiscarded(t *testing.T) {
	ctrl, _ := newTweetController(t, models.Tweet{ID: "t1", UserID: "owner"})

	oldCall, releaseOld := blockingCall()
	oldResults, err := ctrl.Start(context.Background(), like("t1", oldCall))
	require.NoError(t, err)

	ctrl.Forget("t1")
	assert.False(t, ctrl.InFlight("t1"))

	newCall, releaseNew := blockingCall()
	newResults, err := ctrl.Start(context.Background(), unlike("t1", newCall))
	require.NoError(t, err)

	// старый ответ приходит позже нового запуска и не должен ничего менять
	releaseOld <- Result[models.Tweet]{Err: errors.New("late failure")}
	<-oldResults
	assert.True(t, ctrl.InFlight("t1"))
	assert.NoError(t, ctrl.LastError("t1"))

	cached, err := ctrl.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Empty(t, cached.Likes)

	releaseNew <- Result[models.Tweet]{Value: models.Tweet{ID: "t1", UserID: "owner"}}
	require.NoError(t, (<-newResults).Err)
	assert.False(t, ctrl.InFlight("t1"))
}

func TestController_LoadFailure(t *testing.T) {
	ctrl := NewController[models.Tweet](NewMapCache[models.Tweet]())

	_, err := ctrl.Start(context.Background(), like("missing", func(context.Context) (models.Tweet, error) {
		return models.Tweet{}, nil
	}))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, ctrl.InFlight("missing"))
}

func TestController_IncompleteMutation(t *testing.T) {
	ctrl, _ := newTweetController(t, models.Tweet{ID: "t1"})

	_, err := ctrl.Start(context.Background(), Mutation[models.Tweet]{ID: "t1"})
	assert.Error(t, err)
	assert.False(t, ctrl.InFlight("t1"))
}
