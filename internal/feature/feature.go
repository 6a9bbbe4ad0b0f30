// Package feature runs a feature page's submission against the backend and
// records the outcome in the page's state store.
package feature

import (
	"context"
	"time"

	"github.com/nfrund/resumio/internal/middleware"
	"github.com/nfrund/resumio/internal/pagestate"
	"github.com/nfrund/resumio/internal/pubsub"
)

// Submission outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
	OutcomeStale   = "stale"
)

// SubmissionEvent is published for every submission.
type SubmissionEvent struct {
	Page       string `json:"page"`
	Visitor    string `json:"visitor"`
	Seq        uint64 `json:"seq"`
	Outcome    string `json:"outcome"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// SubmissionCompleted is the topic every Submitter publishes to.
var SubmissionCompleted = pubsub.NewEvent[SubmissionEvent]("feature.submission", "A feature page submission finished")

// Submitter ties a page's state store to its backend call.
type Submitter[T any] struct {
	Page  string
	Store *pagestate.Store[T]
	// Publisher is optional.
	Publisher pubsub.Publisher
	// FailureMessage is the only text users see when the call fails.
	FailureMessage string
	// ClearOnSubmit drops the previous result when a new submission starts.
	ClearOnSubmit bool
}

// Run performs call for visitor. It returns the visitor's state afterwards and
// whether this submission was still the latest one when it finished.
func (s *Submitter[T]) Run(ctx context.Context, visitor string, call func(context.Context) (T, error)) (pagestate.State[T], bool) {
	ticket := s.Store.Begin(visitor, s.ClearOnSubmit)
	start := time.Now()

	result, err := call(ctx)

	var (
		state   pagestate.State[T]
		current bool
		outcome = OutcomeSuccess
	)
	if err != nil {
		middleware.FromContext(ctx).Error("Backend call failed", "page", s.Page, "seq", ticket.Seq, "error", err)
		state, current = s.Store.Fail(ticket, s.FailureMessage)
		outcome = OutcomeFailure
	} else {
		state, current = s.Store.Complete(ticket, result)
	}
	if !current {
		outcome = OutcomeStale
	}

	event := SubmissionEvent{
		Page:       s.Page,
		Visitor:    visitor,
		Seq:        ticket.Seq,
		Outcome:    outcome,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if err != nil {
		event.Error = err.Error()
	}
	s.publish(ctx, event)
	return state, current
}

// Reject records a validation failure without calling the backend.
func (s *Submitter[T]) Reject(ctx context.Context, visitor, msg string) pagestate.State[T] {
	state := s.Store.Invalidate(visitor, msg)
	s.publish(ctx, SubmissionEvent{
		Page:    s.Page,
		Visitor: visitor,
		Seq:     state.Seq,
		Outcome: OutcomeInvalid,
		Error:   msg,
	})
	return state
}

func (s *Submitter[T]) publish(ctx context.Context, event SubmissionEvent) {
	if s.Publisher == nil {
		return
	}
	// A request that was cancelled still reports its outcome.
	if err := pubsub.Publish(context.WithoutCancel(ctx), s.Publisher, SubmissionCompleted, event.Visitor, event); err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish submission event", "page", s.Page, "error", err)
	}
}
