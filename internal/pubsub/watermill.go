package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// WatermillBridge implements the Publisher and Subscriber interfaces using watermill's GoChannel.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	tracer trace.Tracer
	logger watermill.LoggerAdapter
}

const (
	// Metadata keys used to carry Message fields through watermill's message.
	metaKeyVisitorID = "visitor_id"
	metaKeyTopic     = "topic"
)

// NewWatermillBridge creates an in-memory bus without tracing.
func NewWatermillBridge() *WatermillBridge {
	return NewWatermillBridgeWithTracer(noop.NewTracerProvider().Tracer("resumio-pubsub"))
}

// NewWatermillBridgeWithTracer creates an in-memory bus whose publishes and
// deliveries are recorded as spans on tracer.
func NewWatermillBridgeWithTracer(tracer trace.Tracer) *WatermillBridge {
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		logger,
	)

	return &WatermillBridge{
		pub:    NewPublisherTracingMiddleware(goChannel, tracer),
		sub:    goChannel,
		tracer: tracer,
		logger: logger,
	}
}

func mapToWatermillMessage(ctx context.Context, msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wmMsg.SetContext(ctx)

	wmMsg.Metadata.Set(metaKeyVisitorID, msg.VisitorID)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}

	return wmMsg
}

func mapToPubSubMessage(wmMsg *message.Message) Message {
	metadata := make(map[string]string)
	for k, v := range wmMsg.Metadata {
		if k != metaKeyVisitorID && k != metaKeyTopic {
			metadata[k] = v
		}
	}

	return Message{
		Topic:     wmMsg.Metadata.Get(metaKeyTopic),
		VisitorID: wmMsg.Metadata.Get(metaKeyVisitorID),
		Payload:   wmMsg.Payload,
		Metadata:  metadata,
	}
}

// Publish implements the Publisher interface.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	return wb.pub.Publish(msg.Topic, mapToWatermillMessage(ctx, msg))
}

// Subscribe implements the Subscriber interface. It returns once the
// subscription is active; messages are handled on a background goroutine.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	process := TracingMiddleware(wb.tracer)(func(wmMsg *message.Message) ([]*message.Message, error) {
		return nil, handler(wmMsg.Context(), mapToPubSubMessage(wmMsg))
	})

	go func() {
		for wmMsg := range messages {
			if _, err := process(wmMsg); err != nil {
				// GoChannel redelivers nacked messages forever, so failures are logged and acked.
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
			}
			wmMsg.Ack()
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts down the bus and ends every subscription loop.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}
