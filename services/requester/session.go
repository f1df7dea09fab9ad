package requester

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/piresc/movecar/internal/pkg/logger"
	"github.com/piresc/movecar/internal/pkg/models"
	"github.com/piresc/movecar/services/movecar/escalation"
)

// API is the part of the move-car API a session drives
type API interface {
	Notify(ctx context.Context, in NotifyInput) error
	CheckStatus(ctx context.Context, plate string) (*models.StatusView, error)
}

// Outcome summarizes a finished session
type Outcome struct {
	Confirmed     bool
	OwnerLocation *models.OwnerLocation
	CallUnlocked  bool
	Notifies      int
	Polls         int
}

// Session runs one requester-side escalation cycle: notify, poll the
// status, re-notify when the retry control allows it and stop once the
// owner confirms or the polling budget is spent.
type Session struct {
	api        API
	policy     escalation.Policy
	tracker    *escalation.Tracker
	out        io.Writer
	maxRetries int
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewSession creates a session. maxRetries bounds the re-notifies sent
// after the first one.
func NewSession(api API, policy escalation.Policy, out io.Writer, maxRetries int) *Session {
	return &Session{
		api:        api,
		policy:     policy,
		tracker:    escalation.NewTracker(policy, nil),
		out:        out,
		maxRetries: maxRetries,
		sleep:      sleepContext,
	}
}

// Run notifies the owner of in.Plate and follows the request until it is
// confirmed. Every notify asks for delayed delivery when no location is
// attached. Automatic re-notifies are at least RetryCooldown apart, the
// first one included.
func (s *Session) Run(ctx context.Context, in NotifyInput) (*Outcome, error) {
	outcome := &Outcome{}

	in.Delayed = s.policy.DeliveryDelay(in.Location.Complete()) > 0
	if err := s.notify(ctx, in, outcome); err != nil {
		return outcome, err
	}

	retries := 0
	for poll := 1; poll <= s.policy.MaxPolls; poll++ {
		if err := s.sleep(ctx, s.policy.PollInterval); err != nil {
			return outcome, err
		}
		outcome.Polls = poll

		view, err := s.api.CheckStatus(ctx, in.Plate)
		if err != nil {
			logger.Debug("Status poll failed", logger.Int("poll", poll), logger.Err(err))
			continue
		}

		s.tracker.ObserveStatus(view.AllowCall)
		s.reportCall(outcome)

		if view.Status == models.StatusConfirmed {
			outcome.Confirmed = true
			outcome.OwnerLocation = view.OwnerLocation
			fmt.Fprintln(s.out, "Owner confirmed, they are on the way.")
			if loc := view.OwnerLocation; loc != nil {
				fmt.Fprintf(s.out, "Owner location: %s\n", loc.AmapURL)
				fmt.Fprintf(s.out, "               %s\n", loc.AppleURL)
			}
			return outcome, nil
		}

		if retries >= s.maxRetries || !s.tracker.RetryEnabled() || s.tracker.SinceLastNotify() < s.policy.RetryCooldown {
			continue
		}

		if err := s.notify(ctx, in, outcome); err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
				fmt.Fprintf(s.out, "Server asks to wait %s before notifying again.\n", apiErr.RetryAfter)
				continue
			}
			return outcome, err
		}
		retries++
	}

	fmt.Fprintf(s.out, "No confirmation after %d polls.\n", outcome.Polls)
	return outcome, nil
}

func (s *Session) notify(ctx context.Context, in NotifyInput, outcome *Outcome) error {
	if err := s.api.Notify(ctx, in); err != nil {
		return err
	}
	s.tracker.RecordNotify()
	outcome.Notifies = s.tracker.NotifyCount()

	fmt.Fprintf(s.out, "Notify #%d delivered.\n", outcome.Notifies)
	if wait := s.policy.Cooldown(outcome.Notifies); wait > 0 {
		fmt.Fprintf(s.out, "Next retry available in %s.\n", wait)
	}
	return nil
}

// reportCall announces the call-back affordance once it unlocks and again
// if an owner revocation locks it.
func (s *Session) reportCall(outcome *Outcome) {
	enabled := s.tracker.CallEnabled()
	switch {
	case enabled && !outcome.CallUnlocked:
		fmt.Fprintln(s.out, "Calling the owner is now available.")
	case !enabled && outcome.CallUnlocked:
		fmt.Fprintln(s.out, "The owner withdrew the call permission.")
	}
	outcome.CallUnlocked = enabled
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
