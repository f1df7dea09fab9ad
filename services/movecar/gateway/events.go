package gateway

import (
	"context"

	"github.com/piresc/movecar/internal/pkg/circuitbreaker"
	"github.com/piresc/movecar/internal/pkg/constants"
	"github.com/piresc/movecar/internal/pkg/models"
)

// Publisher is satisfied by the NSQ producer
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// NSQEventGW publishes domain events to NSQ topics. Publishes go through
// a circuit breaker so an unreachable nsqd does not slow every request.
type NSQEventGW struct {
	publisher Publisher
	breaker   *circuitbreaker.CircuitBreaker
}

// NewNSQEventGW creates an event gateway over an NSQ publisher
func NewNSQEventGW(publisher Publisher, breaker *circuitbreaker.CircuitBreaker) *NSQEventGW {
	if breaker == nil {
		breaker = circuitbreaker.New(circuitbreaker.DefaultConfig("nsq-events"))
	}
	return &NSQEventGW{publisher: publisher, breaker: breaker}
}

// PublishNotifyRequested publishes to movecar.notify_requested
func (g *NSQEventGW) PublishNotifyRequested(ctx context.Context, event models.NotifyRequestedEvent) error {
	return g.publish(ctx, constants.TopicNotifyRequested, event)
}

// PublishOwnerConfirmed publishes to movecar.owner_confirmed
func (g *NSQEventGW) PublishOwnerConfirmed(ctx context.Context, event models.OwnerConfirmedEvent) error {
	return g.publish(ctx, constants.TopicOwnerConfirmed, event)
}

func (g *NSQEventGW) publish(ctx context.Context, topic string, event interface{}) error {
	return g.breaker.Execute(ctx, func(context.Context) error {
		return g.publisher.Publish(topic, event)
	})
}

// NoopEventGW drops events; used when no NSQ address is configured
type NoopEventGW struct{}

// PublishNotifyRequested does nothing
func (NoopEventGW) PublishNotifyRequested(context.Context, models.NotifyRequestedEvent) error {
	return nil
}

// PublishOwnerConfirmed does nothing
func (NoopEventGW) PublishOwnerConfirmed(context.Context, models.OwnerConfirmedEvent) error {
	return nil
}
