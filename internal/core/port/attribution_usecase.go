package port

import (
	"context"

	"github.com/shopspring/decimal"

	"mesa-attribution/internal/core/attribution"
	"mesa-attribution/internal/core/domain"
)

// AttributionUseCase defines the operations exposed by the attribution
// engine. This interface represents the primary port into the application
// domain.
type AttributionUseCase interface {
	// Attribute computes attribution for one conversion and persists it.
	// The first error is returned and nothing is persisted on failure.
	Attribute(ctx context.Context, conversionID int64, model string, opts attribution.Options) (*domain.AttributionResult, error)

	// Compute is Attribute without persistence.
	Compute(ctx context.Context, conversionID int64, model string, opts attribution.Options) (*domain.AttributionResult, error)

	// AttributeBatch attributes conversions one by one. A failing item does
	// not stop the batch. The result has one entry per id, in input order.
	AttributeBatch(ctx context.Context, conversionIDs []int64, model string, opts attribution.Options) []BatchItem

	// CompareModels computes every registered model for one conversion
	// without persisting anything.
	CompareModels(ctx context.Context, conversionID int64, opts attribution.Options) ([]domain.AttributionResult, error)

	// CampaignCredits returns accumulated campaign credit in a period.
	CampaignCredits(ctx context.Context, req CreditsReq) (*CreditsResp, error)
}

// BatchItem is the outcome for one conversion of a batch. Exactly one of
// Result and Err is set.
type BatchItem struct {
	ConversionID int64
	Result       *domain.AttributionResult
	Err          error
}

// CreditsResp contains per campaign and day credit rows plus totals.
type CreditsResp struct {
	Credits          []domain.CampaignCredit
	TotalConversions float64
	TotalValue       decimal.Decimal
}
