package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_Delay(t *testing.T) {
	p := DefaultRetryPolicy()

	assert.Equal(t, time.Duration(0), p.Delay(1))
	assert.Equal(t, 2*time.Second, p.Delay(2))
	assert.Equal(t, 4*time.Second, p.Delay(3))
	assert.Equal(t, 8*time.Second, p.Delay(4))
}

func TestRetryPolicy_Validate(t *testing.T) {
	assert.NoError(t, DefaultRetryPolicy().Validate())
	assert.NoError(t, RetryPolicy{MaxAttempts: 1}.Validate())
	assert.Error(t, RetryPolicy{MaxAttempts: 0, BackoffBase: time.Second}.Validate())
	assert.Error(t, RetryPolicy{MaxAttempts: 3, BackoffBase: -time.Second}.Validate())
}

func TestRetryPolicy_Backoff(t *testing.T) {
	b := RetryPolicy{MaxAttempts: 4, BackoffBase: time.Millisecond}.Backoff()

	var delays []time.Duration
	for {
		d, stop := b.Next()
		if stop {
			break
		}
		delays = append(delays, d)
	}

	assert.Equal(t, []time.Duration{2 * time.Millisecond, 4 * time.Millisecond, 8 * time.Millisecond}, delays)
}

func TestRetryPolicy_BackoffSingleAttempt(t *testing.T) {
	b := RetryPolicy{MaxAttempts: 1, BackoffBase: time.Second}.Backoff()

	_, stop := b.Next()
	assert.True(t, stop)
}
