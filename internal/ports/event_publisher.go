package ports

import "context"

// Port: a boundary for emitting domain events after successful mutations.
// Downstream consumers (cache invalidators, sync jobs) subscribe out of band;
// the core never waits on them.
type EventPublisher interface {
	// Publish serializes payload and emits it under subject.
	Publish(ctx context.Context, subject string, payload any) error
}
