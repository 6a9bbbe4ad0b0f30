// Package activity consumes submission events to log them and count them.
package activity

import (
	"context"
	"log/slog"

	"github.com/nfrund/resumio/internal/feature"
	"github.com/nfrund/resumio/internal/pubsub"
)

// Counter receives one increment per submission.
type Counter interface {
	CountSubmission(page, outcome string)
}

// Recorder logs and counts feature submissions.
type Recorder struct {
	logger  *slog.Logger
	counter Counter
}

// NewRecorder creates a Recorder. counter may be nil.
func NewRecorder(logger *slog.Logger, counter Counter) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{logger: logger.With("component", "activity"), counter: counter}
}

// Start subscribes to submission events until ctx is cancelled or the bus closes.
func (r *Recorder) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, feature.SubmissionCompleted, r.Handle)
}

// Handle processes a single submission event.
func (r *Recorder) Handle(ctx context.Context, ev feature.SubmissionEvent) error {
	level := slog.LevelInfo
	switch ev.Outcome {
	case feature.OutcomeFailure:
		level = slog.LevelWarn
	case feature.OutcomeStale, feature.OutcomeInvalid:
		level = slog.LevelDebug
	}
	r.logger.Log(ctx, level, "Feature submission",
		"page", ev.Page,
		"visitor", ev.Visitor,
		"seq", ev.Seq,
		"outcome", ev.Outcome,
		"duration_ms", ev.DurationMS,
		"error", ev.Error,
	)
	if r.counter != nil {
		r.counter.CountSubmission(ev.Page, ev.Outcome)
	}
	return nil
}
