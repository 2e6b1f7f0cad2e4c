package pubsub

import "context"

// Listener is a pull-style wrapper around one subscription.
type Listener[T any] struct {
	ch <-chan Event[T]
}

// NewListener subscribes to broker for the lifetime of ctx.
func NewListener[T any](ctx context.Context, broker *Broker[T]) *Listener[T] {
	return &Listener[T]{ch: broker.Subscribe(ctx)}
}

// Next blocks until an event arrives. It returns false once ctx is done or
// the subscription has been closed.
func (l *Listener[T]) Next(ctx context.Context) (Event[T], bool) {
	select {
	case <-ctx.Done():
		return Event[T]{}, false
	case ev, ok := <-l.ch:
		return ev, ok
	}
}

// Drain returns the events already buffered without blocking.
func (l *Listener[T]) Drain() []Event[T] {
	var out []Event[T]
	for {
		select {
		case ev, ok := <-l.ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}
