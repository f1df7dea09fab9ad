package movecar

import (
	"context"

	"github.com/piresc/movecar/internal/pkg/models"
)

// PushMessage is a rendered notification for one car owner
type PushMessage struct {
	Title      string
	Body       string
	ConfirmURL string
}

// PushGW delivers notifications to a car owner's device
type PushGW interface {
	Send(ctx context.Context, car models.CarConfig, msg PushMessage) error
}

// EventGW publishes domain events. Failures never affect the request outcome.
type EventGW interface {
	PublishNotifyRequested(ctx context.Context, event models.NotifyRequestedEvent) error
	PublishOwnerConfirmed(ctx context.Context, event models.OwnerConfirmedEvent) error
}
