package predict

import (
	"context"

	"AIChatbot_Backend/internal/config"
	"AIChatbot_Backend/internal/logging"
	"AIChatbot_Backend/internal/metrics"

	"github.com/sony/gobreaker/v2"
)

// Breaker fails fast while a delegating provider keeps failing.
type Breaker[In, Out any] struct {
	cb   *gobreaker.CircuitBreaker[Out]
	next Provider[In, Out]
}

func NewBreaker[In, Out any](name string, cfg config.BreakerConfig, next Provider[In, Out]) *Breaker[In, Out] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	minRequests := cfg.MinRequests
	if minRequests == 0 {
		minRequests = 5
	}
	ratio := cfg.FailureRatio
	if ratio <= 0 {
		ratio = 0.6
	}

	cb := gobreaker.NewCircuitBreaker[Out](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= ratio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})
	return &Breaker[In, Out]{cb: cb, next: next}
}

func (b *Breaker[In, Out]) Predict(ctx context.Context, in In) (Out, error) {
	return b.cb.Execute(func() (Out, error) {
		return b.next.Predict(ctx, in)
	})
}

func (b *Breaker[In, Out]) State() gobreaker.State {
	return b.cb.State()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
