package pubsub

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func messageAttributes(operation, topic string, msg *message.Message) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("messaging.system", "watermill"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.destination", topic),
		attribute.String("messaging.message_id", msg.UUID),
		attribute.String("visitor.id", msg.Metadata.Get(metaKeyVisitorID)),
		attribute.Int("messaging.message_payload_size_bytes", len(msg.Payload)),
	)
}

// TracingMiddleware wraps a watermill handler in a "pubsub.process.<topic>" span.
func TracingMiddleware(tracer trace.Tracer) func(message.HandlerFunc) message.HandlerFunc {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			ctx := msg.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			topic := msg.Metadata.Get(metaKeyTopic)

			spanCtx, span := tracer.Start(ctx, "pubsub.process."+topic, messageAttributes("process", topic, msg))
			defer span.End()
			msg.SetContext(spanCtx)

			produced, err := h(msg)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
			return produced, nil
		}
	}
}

// PublisherTracingMiddleware records a "pubsub.publish.<topic>" span per message.
type PublisherTracingMiddleware struct {
	publisher message.Publisher
	tracer    trace.Tracer
}

// NewPublisherTracingMiddleware wraps publisher with tracing.
func NewPublisherTracingMiddleware(publisher message.Publisher, tracer trace.Tracer) *PublisherTracingMiddleware {
	return &PublisherTracingMiddleware{
		publisher: publisher,
		tracer:    tracer,
	}
}

// Publish implements message.Publisher.
func (p *PublisherTracingMiddleware) Publish(topic string, messages ...*message.Message) error {
	spans := make([]trace.Span, 0, len(messages))
	for _, msg := range messages {
		ctx := msg.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		spanCtx, span := p.tracer.Start(ctx, "pubsub.publish."+topic, messageAttributes("publish", topic, msg))
		msg.SetContext(spanCtx)
		spans = append(spans, span)
	}

	err := p.publisher.Publish(topic, messages...)
	for _, span := range spans {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
	return err
}

// Close closes the underlying publisher.
func (p *PublisherTracingMiddleware) Close() error {
	return p.publisher.Close()
}
