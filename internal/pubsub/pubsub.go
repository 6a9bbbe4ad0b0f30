// Package pubsub carries in-process events, such as feature submissions,
// from the handlers to the activity recorder.
package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "feature.submission").
	Topic string
	// VisitorID identifies the browser session that caused the message, if any.
	VisitorID string
	// Payload contains the raw message data, usually JSON.
	Payload []byte
	// Metadata carries transport attributes such as the trace context.
	Metadata map[string]string
}

// Handler processes one message. Errors are logged, never redelivered.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages on the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages with the
	// handler in the background until ctx is canceled or the bus is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
