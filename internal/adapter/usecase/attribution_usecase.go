package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mesa-attribution/internal/core/attribution"
	"mesa-attribution/internal/core/domain"
	"mesa-attribution/internal/core/port"
)

const instrumentationName = "mesa-attribution/usecase"

// AttributionUseCase orchestrates journey resolution, model evaluation and
// persistence. It implements port.AttributionUseCase.
type AttributionUseCase struct {
	repo   port.AttributionRepository
	logger *slog.Logger
	tracer trace.Tracer
	meters *instruments

	// lookupConcurrency bounds the performance lookups issued in parallel
	// for one conversion.
	lookupConcurrency int
	now               func() time.Time
}

// Option customises an AttributionUseCase.
type Option func(*AttributionUseCase)

// WithLookupConcurrency sets how many performance lookups may run at once
// for a single conversion. Values below one mean sequential lookups.
func WithLookupConcurrency(n int) Option {
	return func(u *AttributionUseCase) {
		if n < 1 {
			n = 1
		}
		u.lookupConcurrency = n
	}
}

// WithClock overrides the clock used to stamp results.
func WithClock(now func() time.Time) Option {
	return func(u *AttributionUseCase) { u.now = now }
}

// NewAttributionUseCase creates a new usecase with the provided repository
// and logger. Instruments are taken from the global otel providers.
func NewAttributionUseCase(repo port.AttributionRepository, logger *slog.Logger, opts ...Option) *AttributionUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	u := &AttributionUseCase{
		repo:              repo,
		logger:            logger,
		tracer:            otel.Tracer(instrumentationName),
		lookupConcurrency: 4,
		now:               time.Now,
	}
	for _, o := range opts {
		o(u)
	}
	meters, err := newInstruments(otel.Meter(instrumentationName))
	if err != nil {
		logger.Warn("metric instruments unavailable", slog.Any("error", err))
	}
	u.meters = meters
	return u
}

// Attribute computes attribution for one conversion and persists it in a
// single transaction: the conversion's attribution records are replaced,
// its model is recorded and campaign credit is accumulated. Nothing is
// written when any step fails.
func (u *AttributionUseCase) Attribute(ctx context.Context, conversionID int64, model string, opts attribution.Options) (*domain.AttributionResult, error) {
	m, err := attribution.ParseModel(model)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx, span := u.tracer.Start(ctx, "attribution.Attribute", trace.WithAttributes(
		attribute.Int64("conversion.id", conversionID),
		attribute.String("attribution.model", m.String()),
		attribute.String("attribution.run_id", runID),
	))
	defer span.End()

	start := time.Now()
	result, err := u.attribute(ctx, conversionID, m, opts)
	u.meters.record(ctx, m, len(resultTouchpoints(result)), time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		u.logger.Error("attribution failed",
			slog.String("run_id", runID),
			slog.Int64("conversion_id", conversionID),
			slog.String("model", m.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	u.logger.Info("conversion attributed",
		slog.String("run_id", runID),
		slog.Int64("conversion_id", conversionID),
		slog.String("model", m.String()),
		slog.Int("touchpoints", len(result.Touchpoints)),
		slog.Float64("total_weight", result.TotalWeight()),
	)
	return result, nil
}

func (u *AttributionUseCase) attribute(ctx context.Context, conversionID int64, m attribution.Model, opts attribution.Options) (*domain.AttributionResult, error) {
	conv, journey, err := u.prepare(ctx, conversionID, opts)
	if err != nil {
		return nil, err
	}
	result, err := u.evaluate(ctx, *conv, journey, m, u.withPerformance(ctx, m, *conv, journey, opts))
	if err != nil {
		return nil, err
	}

	credits := attribution.CampaignCredits(result, conv.OccurredAt)
	err = u.repo.InTx(ctx, func(w port.AttributionWriter) error {
		if err := w.ReplaceAttributionTouchpoints(ctx, conv.ID, result.Touchpoints); err != nil {
			return fmt.Errorf("replace touchpoints: %w", err)
		}
		if err := w.SetConversionAttributionModel(ctx, conv.ID, result.Model); err != nil {
			return fmt.Errorf("set conversion model: %w", err)
		}
		for _, c := range credits {
			if err := w.AccumulateCampaignCredit(ctx, c.CampaignID, c.Date, c.Conversions, c.AttributedValue); err != nil {
				return fmt.Errorf("accumulate credit for campaign %s: %w", c.CampaignID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persist attribution for conversion %d: %w", conv.ID, err)
	}
	return &result, nil
}

// Compute evaluates the model for one conversion without persisting the
// outcome.
func (u *AttributionUseCase) Compute(ctx context.Context, conversionID int64, model string, opts attribution.Options) (*domain.AttributionResult, error) {
	m, err := attribution.ParseModel(model)
	if err != nil {
		return nil, err
	}
	ctx, span := u.tracer.Start(ctx, "attribution.Compute", trace.WithAttributes(
		attribute.Int64("conversion.id", conversionID),
		attribute.String("attribution.model", m.String()),
	))
	defer span.End()

	conv, journey, err := u.prepare(ctx, conversionID, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	result, err := u.evaluate(ctx, *conv, journey, m, u.withPerformance(ctx, m, *conv, journey, opts))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AttributeBatch attributes each conversion in order. Failures are recorded
// on the item and do not abort the batch. An unknown model fails every item
// without touching storage.
func (u *AttributionUseCase) AttributeBatch(ctx context.Context, conversionIDs []int64, model string, opts attribution.Options) []port.BatchItem {
	items := make([]port.BatchItem, len(conversionIDs))
	for i, id := range conversionIDs {
		items[i].ConversionID = id
	}

	if _, err := attribution.ParseModel(model); err != nil {
		for i := range items {
			items[i].Err = err
		}
		return items
	}

	var failed int
	for i, id := range conversionIDs {
		if err := ctx.Err(); err != nil {
			items[i].Err = err
			failed++
			continue
		}
		res, err := u.Attribute(ctx, id, model, opts)
		if err != nil {
			items[i].Err = err
			failed++
			continue
		}
		items[i].Result = res
	}
	u.logger.Info("batch finished",
		slog.String("model", model),
		slog.Int("total", len(items)),
		slog.Int("failed", failed),
	)
	return items
}

// CompareModels evaluates every registered model against the same journey.
func (u *AttributionUseCase) CompareModels(ctx context.Context, conversionID int64, opts attribution.Options) ([]domain.AttributionResult, error) {
	conv, journey, err := u.prepare(ctx, conversionID, opts)
	if err != nil {
		return nil, err
	}
	opts = u.withPerformance(ctx, attribution.Algorithmic, *conv, journey, opts)
	out := make([]domain.AttributionResult, 0, len(attribution.Models))
	for _, m := range attribution.Models {
		result, err := u.evaluate(ctx, *conv, journey, m, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, result)
	}
	return out, nil
}

// CampaignCredits returns accumulated campaign credit rows for a period and
// their totals.
func (u *AttributionUseCase) CampaignCredits(ctx context.Context, req port.CreditsReq) (*port.CreditsResp, error) {
	if req.To.Before(req.From) {
		return nil, errors.New("invalid period: 'to' is before 'from'")
	}
	credits, err := u.repo.GetCampaignCredits(ctx, req)
	if err != nil {
		return nil, err
	}
	resp := &port.CreditsResp{Credits: credits, TotalValue: decimal.Zero}
	for _, c := range credits {
		resp.TotalConversions += c.Conversions
		resp.TotalValue = resp.TotalValue.Add(c.AttributedValue)
	}
	return resp, nil
}

// prepare loads the conversion and resolves its journey. An empty journey
// is an error: there is nothing to attribute.
func (u *AttributionUseCase) prepare(ctx context.Context, conversionID int64, opts attribution.Options) (*domain.Conversion, []domain.Touchpoint, error) {
	conv, err := u.repo.FetchConversion(ctx, conversionID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch conversion %d: %w", conversionID, err)
	}
	if conv == nil {
		return nil, nil, fmt.Errorf("%w: %d", domain.ErrNotFound, conversionID)
	}

	var candidates []domain.Touchpoint
	if conv.HasAny() {
		candidates, err = u.repo.FetchJourney(ctx, *conv, opts.Window())
		if err != nil {
			return nil, nil, fmt.Errorf("fetch journey for conversion %d: %w", conversionID, err)
		}
	}
	journey := attribution.ResolveJourney(*conv, candidates, opts.Window())
	if len(journey) == 0 {
		return nil, nil, fmt.Errorf("%w: conversion %d", domain.ErrEmptyJourney, conversionID)
	}
	return conv, journey, nil
}

func (u *AttributionUseCase) evaluate(ctx context.Context, conv domain.Conversion, journey []domain.Touchpoint, m attribution.Model, opts attribution.Options) (domain.AttributionResult, error) {
	weighted, degenerate, err := attribution.Apply(m, journey, conv, opts)
	if err != nil {
		return domain.AttributionResult{}, err
	}
	if degenerate {
		u.meters.degenerate(ctx, m)
		u.logger.Debug("uniform fallback applied",
			slog.Int64("conversion_id", conv.ID),
			slog.String("model", m.String()),
			slog.Any("error", domain.ErrDegenerateNormalization),
		)
	}
	return attribution.Assemble(conv, m, weighted, u.now()), nil
}

func (u *AttributionUseCase) withPerformance(ctx context.Context, m attribution.Model, conv domain.Conversion, journey []domain.Touchpoint, opts attribution.Options) attribution.Options {
	if m != attribution.Algorithmic {
		return opts
	}
	opts.Performance = u.prefetchPerformance(ctx, conv, journey)
	return opts
}

func resultTouchpoints(r *domain.AttributionResult) []domain.AttributedTouchpoint {
	if r == nil {
		return nil
	}
	return r.Touchpoints
}
