package escalation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTracker() (*Tracker, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	return NewTracker(DefaultPolicy(), clock.Now), clock
}

func TestTracker_FirstNotifyAllowsImmediateRetry(t *testing.T) {
	tr, _ := newTestTracker()

	assert.False(t, tr.RetryEnabled())

	tr.RecordNotify()
	assert.Equal(t, 1, tr.NotifyCount())
	assert.True(t, tr.RetryEnabled())
	assert.False(t, tr.CallEnabled())
}

func TestTracker_SecondNotifyCooldownIsExactly60s(t *testing.T) {
	tr, clock := newTestTracker()

	tr.RecordNotify()
	tr.RecordNotify()

	assert.False(t, tr.RetryEnabled())
	assert.Equal(t, 60*time.Second, tr.RetryRemaining())

	clock.Advance(59*time.Second + 999*time.Millisecond)
	assert.False(t, tr.RetryEnabled())

	clock.Advance(time.Millisecond)
	assert.True(t, tr.RetryEnabled())
	assert.False(t, tr.CallEnabled(), "call stays locked after the second notify")
}

func TestTracker_ThirdNotifyCooldownIsExactly180sThenCallUnlocks(t *testing.T) {
	tr, clock := newTestTracker()

	tr.RecordNotify()
	tr.RecordNotify()
	clock.Advance(60 * time.Second)
	tr.RecordNotify()

	assert.False(t, tr.RetryEnabled())
	assert.False(t, tr.CallEnabled())

	clock.Advance(179 * time.Second)
	assert.False(t, tr.RetryEnabled())
	assert.False(t, tr.CallEnabled())

	clock.Advance(time.Second)
	assert.True(t, tr.RetryEnabled())
	assert.True(t, tr.CallEnabled(), "fallback unlock without owner authorization")

	// a fourth notify restarts the cool-down and relocks the fallback
	tr.RecordNotify()
	assert.False(t, tr.CallEnabled())
	assert.Equal(t, 180*time.Second, tr.RetryRemaining())
}

func TestTracker_OwnerAuthorizationUnlocksImmediately(t *testing.T) {
	tr, _ := newTestTracker()

	tr.RecordNotify()
	tr.RecordNotify()
	assert.False(t, tr.CallEnabled())

	tr.ObserveStatus(true)
	assert.True(t, tr.CallEnabled())
	assert.False(t, tr.RetryEnabled(), "owner authorization does not skip the cool-down")

	tr.ObserveStatus(false)
	assert.False(t, tr.CallEnabled())
}

func TestTracker_FallbackSurvivesRevokedAuthorization(t *testing.T) {
	tr, clock := newTestTracker()

	for i := 0; i < 3; i++ {
		tr.RecordNotify()
	}
	clock.Advance(180 * time.Second)

	tr.ObserveStatus(true)
	tr.ObserveStatus(false)
	assert.True(t, tr.CallEnabled())
}

func TestTracker_SinceLastNotify(t *testing.T) {
	tr, clock := newTestTracker()
	assert.Zero(t, tr.SinceLastNotify())

	tr.RecordNotify()
	clock.Advance(45 * time.Second)
	assert.Equal(t, 45*time.Second, tr.SinceLastNotify())

	tr.RecordNotify()
	assert.Zero(t, tr.SinceLastNotify())
}
