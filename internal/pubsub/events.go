// Package pubsub provides a generic publish/subscribe event system.
package pubsub

import "time"

// Topic names the stream an event was published on.
type Topic string

// Event is a published payload stamped with its topic and publish time.
type Event[T any] struct {
	Topic     Topic
	Payload   T
	Timestamp time.Time
}
