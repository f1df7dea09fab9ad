package movecar

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidPlate is returned when the plate is missing or blank
	ErrInvalidPlate = errors.New("license plate is required")
	// ErrInvalidMessage is returned for messages exceeding the length limit
	ErrInvalidMessage = errors.New("message is malformed")
	// ErrInvalidLocation is returned for coordinates outside valid ranges
	ErrInvalidLocation = errors.New("location is malformed")
	// ErrCarNotFound is returned when the plate is not in the registry
	ErrCarNotFound = errors.New("car not found")
	// ErrLocationNotFound is returned when no requester location is stored
	ErrLocationNotFound = errors.New("location not found")
	// ErrDeliveryFailed is returned when the push endpoint fails
	ErrDeliveryFailed = errors.New("push delivery failed")
	// ErrCooldownActive is returned when a notify arrives inside the retry cool-down
	ErrCooldownActive = errors.New("retry cool-down active")
)

// ErrorKind groups errors by how they are reported to callers
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInput
	KindNotFound
	KindUpstreamDelivery
	KindCooldown
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "InputError"
	case KindNotFound:
		return "NotFoundError"
	case KindUpstreamDelivery:
		return "UpstreamDeliveryError"
	case KindCooldown:
		return "CooldownError"
	default:
		return "InternalError"
	}
}

// Kind classifies err. Unrecognized errors, including store failures, are internal.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrInvalidPlate), errors.Is(err, ErrInvalidMessage), errors.Is(err, ErrInvalidLocation):
		return KindInput
	case errors.Is(err, ErrCarNotFound), errors.Is(err, ErrLocationNotFound):
		return KindNotFound
	case errors.Is(err, ErrDeliveryFailed):
		return KindUpstreamDelivery
	case errors.Is(err, ErrCooldownActive):
		return KindCooldown
	default:
		return KindInternal
	}
}

// CooldownError reports how long a requester must wait before notifying again
type CooldownError struct {
	RetryAfter time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: retry after %s", ErrCooldownActive, e.RetryAfter)
}

// Unwrap lets errors.Is match ErrCooldownActive
func (e *CooldownError) Unwrap() error {
	return ErrCooldownActive
}

// RetryAfterSeconds rounds the remaining wait up to whole seconds
func (e *CooldownError) RetryAfterSeconds() int {
	secs := int(e.RetryAfter / time.Second)
	if e.RetryAfter%time.Second != 0 {
		secs++
	}
	return secs
}
