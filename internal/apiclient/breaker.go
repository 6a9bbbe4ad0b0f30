package apiclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerSettings configures the circuit breaker in front of the backend.
type BreakerSettings struct {
	Name string
	// MaxFailures is the number of consecutive failures that opens the breaker.
	MaxFailures uint32
	// Cooldown is how long the breaker stays open before probing again.
	Cooldown time.Duration
	// OnStateChange is called after every transition.
	OnStateChange func(from, to gobreaker.State)
}

// Breaker fails calls fast once the backend keeps failing. Client errors (4xx)
// and caller cancellations never count as failures.
type Breaker struct {
	cb *gobreaker.CircuitBreaker[any]
}

// NewBreaker creates a Breaker.
func NewBreaker(s BreakerSettings) *Breaker {
	if s.Name == "" {
		s.Name = "backend"
	}
	if s.MaxFailures == 0 {
		s.MaxFailures = 5
	}
	maxFailures := s.MaxFailures
	settings := gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsClientError(err) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Info("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			if s.OnStateChange != nil {
				s.OnStateChange(from, to)
			}
		},
	}
	return &Breaker{cb: gobreaker.NewCircuitBreaker[any](settings)}
}

// State returns the current breaker state.
func (b *Breaker) State() gobreaker.State {
	if b == nil {
		return gobreaker.StateClosed
	}
	return b.cb.State()
}

func (b *Breaker) execute(fn func() error) error {
	if b == nil {
		return fn()
	}
	_, err := b.cb.Execute(func() (any, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrBreakerOpen, err)
	}
	return err
}
