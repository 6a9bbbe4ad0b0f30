package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event names a topic whose payload is always a T.
type Event[T any] struct {
	name        string
	description string
}

// NewEvent defines a typed event.
func NewEvent[T any](name, description string) Event[T] {
	return Event[T]{name: name, description: description}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.name
}

// Description returns the human-readable description of the event.
func (e Event[T]) Description() string {
	return e.description
}

// Publish sends a typed event. The compiler ensures payload matches T.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], visitorID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("pubsub: encoding %s: %w", event.Name(), err)
	}
	return p.Publish(ctx, Message{
		Topic:     event.Name(),
		VisitorID: visitorID,
		Payload:   data,
	})
}

// Subscribe decodes every message on the event's topic into T before calling handler.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handler func(ctx context.Context, payload T) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("pubsub: decoding %s: %w", event.Name(), err)
		}
		return handler(ctx, payload)
	})
}
