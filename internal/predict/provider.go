// Package predict implements the AI tool providers. Every tool has an
// in-process heuristic and/or a delegating provider that runs an external
// script; Fallback composes the two so callers always get either a validated
// result or an error, never partially trusted data.
package predict

import (
	"context"
	"errors"

	"AIChatbot_Backend/internal/logging"
	"AIChatbot_Backend/internal/metrics"

	"github.com/sony/gobreaker/v2"
)

var (
	ErrScriptNotFound = errors.New("prediction script not found")
	ErrScriptFailed   = errors.New("prediction script failed")
	ErrTimeout        = errors.New("prediction script timed out")
	ErrNoOutput       = errors.New("prediction script produced no JSON output")
	ErrModelFailure   = errors.New("model reported failure")
	ErrInvalidResult  = errors.New("invalid prediction result")
	ErrProviderFailed = errors.New("prediction unavailable")
)

type Provider[In, Out any] interface {
	Predict(ctx context.Context, in In) (Out, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f ProviderFunc[In, Out]) Predict(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

type Source string

const (
	SourceDelegated Source = "delegated"
	SourceFallback  Source = "fallback"
)

// Provenance labels where a result came from.
type Provenance struct {
	Model  string `json:"model" validate:"required"`
	Status string `json:"ml_model_status,omitempty"`
	Source Source `json:"source"`
	Reason string `json:"reason,omitempty"`
}

func (p Provenance) with(src Source, reason string) Provenance {
	p.Source = src
	p.Reason = reason
	return p
}

// Labeled results can be stamped with their source after the fact.
type Labeled[T any] interface {
	Labeled(src Source, reason string) T
}

// Fallback calls primary once and, on any failure, secondary once. Either
// may be nil: a nil primary is heuristic-only, a nil secondary has no fallback.
type Fallback[In any, Out Labeled[Out]] struct {
	tool      string
	primary   Provider[In, Out]
	secondary Provider[In, Out]
}

func NewFallback[In any, Out Labeled[Out]](tool string, primary, secondary Provider[In, Out]) *Fallback[In, Out] {
	return &Fallback[In, Out]{tool: tool, primary: primary, secondary: secondary}
}

func (f *Fallback[In, Out]) Predict(ctx context.Context, in In) (Out, error) {
	var zero Out

	reason := "ML model not configured"
	if f.primary != nil {
		out, err := f.primary.Predict(ctx, in)
		if err == nil {
			metrics.Predictions.WithLabelValues(f.tool, string(SourceDelegated)).Inc()
			return out.Labeled(SourceDelegated, ""), nil
		}
		reason = ReasonFor(err)
		logging.Warn().Err(err).Str("tool", f.tool).Msg("Fallback.Predict(): delegating provider failed")
	}

	if f.secondary == nil {
		metrics.Predictions.WithLabelValues(f.tool, "failed").Inc()
		return zero, ErrProviderFailed
	}

	out, err := f.secondary.Predict(ctx, in)
	if err != nil {
		metrics.Predictions.WithLabelValues(f.tool, "failed").Inc()
		logging.Error().Err(err).Str("tool", f.tool).Msg("Fallback.Predict(): heuristic failed")
		return zero, errors.Join(ErrProviderFailed, err)
	}
	metrics.Predictions.WithLabelValues(f.tool, string(SourceFallback)).Inc()
	return out.Labeled(SourceFallback, reason), nil
}

// ReasonFor renders a delegation failure as a short client-facing reason.
func ReasonFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidResult):
		return "ML model produced invalid results"
	case errors.Is(err, ErrModelFailure):
		return "ML model reported a failure"
	case errors.Is(err, ErrScriptNotFound):
		return "ML model not available"
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "ML model timed out"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "ML model temporarily disabled"
	case errors.Is(err, ErrNoOutput):
		return "ML model produced no output"
	default:
		return "ML model failed"
	}
}
