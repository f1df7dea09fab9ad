package escalation

import (
	"time"

	"github.com/piresc/movecar/internal/pkg/models"
)

// Policy holds the re-notify and call-back timing rules
type Policy struct {
	// RetryCooldown applies after the first retry (the 2nd notify)
	RetryCooldown time.Duration
	// EscalatedCooldown applies after the EscalateAfter-th notify and later
	EscalatedCooldown time.Duration
	// EscalateAfter is the notify count from which the call-back unlocks
	// once the cool-down has elapsed
	EscalateAfter int
	// NoLocationDelay is the artificial delivery delay when no location is sent
	NoLocationDelay time.Duration
	PollInterval    time.Duration
	MaxPolls        int
}

// DefaultPolicy returns the protocol timings
func DefaultPolicy() Policy {
	return Policy{
		RetryCooldown:     60 * time.Second,
		EscalatedCooldown: 180 * time.Second,
		EscalateAfter:     3,
		NoLocationDelay:   30 * time.Second,
		PollInterval:      3 * time.Second,
		MaxPolls:          100,
	}
}

// Cooldown returns the wait before another notify is allowed once count
// notifies have been sent.
func (p Policy) Cooldown(count int) time.Duration {
	switch {
	case count >= p.EscalateAfter:
		return p.EscalatedCooldown
	case count >= 2:
		return p.RetryCooldown
	default:
		return 0
	}
}

// DeliveryDelay returns the artificial delay applied before push delivery
func (p Policy) DeliveryDelay(hasLocation bool) time.Duration {
	if hasLocation {
		return 0
	}
	return p.NoLocationDelay
}

// Remaining returns how long until another notify is allowed
func (p Policy) Remaining(count int, lastNotify, now time.Time) time.Duration {
	if count <= 0 {
		return 0
	}
	remaining := lastNotify.Add(p.Cooldown(count)).Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FallbackUnlocked reports whether the call-back unlocks without owner consent
func (p Policy) FallbackUnlocked(count int, lastNotify, now time.Time) bool {
	return count >= p.EscalateAfter && p.Remaining(count, lastNotify, now) == 0
}

// Evaluate derives the escalation view of a notify ledger. A nil record
// means no notify in the current cycle.
func (p Policy) Evaluate(rec *models.EscalationRecord, now time.Time) models.EscalationView {
	if rec == nil {
		return models.EscalationView{}
	}
	last := time.UnixMilli(rec.LastNotifyAt)
	remaining := p.Remaining(rec.Count, last, now)
	return models.EscalationView{
		NotifyCount:       rec.Count,
		RetryAfterSeconds: ceilSeconds(remaining),
		CallUnlocked:      p.FallbackUnlocked(rec.Count, last, now),
	}
}

// Next returns the ledger after one more notify at now
func (p Policy) Next(rec *models.EscalationRecord, now time.Time) *models.EscalationRecord {
	count := 1
	if rec != nil {
		count = rec.Count + 1
	}
	return &models.EscalationRecord{Count: count, LastNotifyAt: now.UnixMilli()}
}

func ceilSeconds(d time.Duration) int {
	secs := int(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	return secs
}
