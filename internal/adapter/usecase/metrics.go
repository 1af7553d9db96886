package usecase

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"mesa-attribution/internal/core/attribution"
	"mesa-attribution/internal/core/domain"
)

// instruments groups the otel instruments of the use case. A nil
// *instruments records nothing.
type instruments struct {
	conversions    metric.Int64Counter
	journeyLength  metric.Int64Histogram
	duration       metric.Float64Histogram
	lookupFailures metric.Int64Counter
	fallbacks      metric.Int64Counter
}

func newInstruments(m metric.Meter) (*instruments, error) {
	var (
		in  instruments
		err error
	)
	if in.conversions, err = m.Int64Counter("attribution.conversions",
		metric.WithDescription("Attribution runs by model and outcome.")); err != nil {
		return nil, err
	}
	if in.journeyLength, err = m.Int64Histogram("attribution.journey.length",
		metric.WithDescription("Touchpoints per attributed conversion.")); err != nil {
		return nil, err
	}
	if in.duration, err = m.Float64Histogram("attribution.duration",
		metric.WithDescription("Time to attribute and persist one conversion."),
		metric.WithUnit("s")); err != nil {
		return nil, err
	}
	if in.lookupFailures, err = m.Int64Counter("attribution.lookup.failures",
		metric.WithDescription("Performance lookups replaced by zero defaults.")); err != nil {
		return nil, err
	}
	if in.fallbacks, err = m.Int64Counter("attribution.normalization.fallbacks",
		metric.WithDescription("Weight vectors recovered by uniform fallback.")); err != nil {
		return nil, err
	}
	return &in, nil
}

func (in *instruments) record(ctx context.Context, m attribution.Model, touchpoints int, elapsed time.Duration, err error) {
	if in == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("model", m.String()),
		attribute.String("outcome", outcome(err)),
	)
	in.conversions.Add(ctx, 1, attrs)
	in.duration.Record(ctx, elapsed.Seconds(), attrs)
	if err == nil {
		in.journeyLength.Record(ctx, int64(touchpoints), metric.WithAttributes(attribute.String("model", m.String())))
	}
}

func (in *instruments) lookupFailure(ctx context.Context, kind string) {
	if in == nil {
		return
	}
	in.lookupFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (in *instruments) degenerate(ctx context.Context, m attribution.Model) {
	if in == nil {
		return
	}
	in.fallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("model", m.String())))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrEmptyJourney):
		return "empty_journey"
	case errors.Is(err, domain.ErrUnknownModel):
		return "unknown_model"
	default:
		return "error"
	}
}
