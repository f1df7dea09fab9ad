package escalation

import (
	"sync"
	"time"
)

// Tracker is the requester-side view of one escalation cycle. It decides
// when the retry control and the call-back affordance are enabled.
type Tracker struct {
	mu              sync.Mutex
	policy          Policy
	now             func() time.Time
	count           int
	lastNotify      time.Time
	ownerAuthorized bool
}

// NewTracker creates a tracker; now defaults to time.Now
func NewTracker(policy Policy, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{policy: policy, now: now}
}

// RecordNotify registers a notify sent at the current time
func (t *Tracker) RecordNotify() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count++
	t.lastNotify = t.now()
}

// NotifyCount returns the notifies sent so far
func (t *Tracker) NotifyCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// RetryRemaining returns the cool-down left before the retry control re-activates
func (t *Tracker) RetryRemaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.policy.Remaining(t.count, t.lastNotify, t.now())
}

// SinceLastNotify returns the time elapsed since the latest notify
func (t *Tracker) SinceLastNotify() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.count == 0 {
		return 0
	}
	return t.now().Sub(t.lastNotify)
}

// RetryEnabled reports whether a re-notify is currently allowed
func (t *Tracker) RetryEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count > 0 && t.policy.Remaining(t.count, t.lastNotify, t.now()) == 0
}

// ObserveStatus records the latest owner call authorization seen by polling.
// A later false revokes an earlier true.
func (t *Tracker) ObserveStatus(allowCall bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ownerAuthorized = allowCall
}

// CallEnabled reports whether the call-back affordance is unlocked
func (t *Tracker) CallEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ownerAuthorized || t.policy.FallbackUnlocked(t.count, t.lastNotify, t.now())
}
