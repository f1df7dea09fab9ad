package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errDown = errors.New("nsqd down")

func failing(context.Context) error { return errDown }
func succeeding(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cb := newWithClock(Config{Name: "events", FailureThreshold: 3, Timeout: time.Minute, Interval: time.Minute}, func() time.Time { return now })

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(context.Background(), failing), errDown)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cb := newWithClock(Config{Name: "events", FailureThreshold: 1, Timeout: time.Minute}, func() time.Time { return now })

	assert.Error(t, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateOpen, cb.State())

	now = now.Add(61 * time.Second)
	assert.NoError(t, cb.Execute(context.Background(), succeeding))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cb := newWithClock(Config{Name: "events", FailureThreshold: 1, Timeout: time.Minute}, func() time.Time { return now })

	assert.Error(t, cb.Execute(context.Background(), failing))
	now = now.Add(61 * time.Second)

	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errDown)
	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), succeeding), ErrOpen)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := New(Config{Name: "events", FailureThreshold: 2, Timeout: time.Minute})

	assert.Error(t, cb.Execute(context.Background(), failing))
	assert.NoError(t, cb.Execute(context.Background(), succeeding))
	assert.Error(t, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateClosed, cb.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "OPEN", StateOpen.String())
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
	assert.Equal(t, "UNKNOWN", State(9).String())
}
