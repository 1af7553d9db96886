package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"mesa-attribution/internal/core/domain"
)

// AttributionReader is the read side of the storage collaborator.
type AttributionReader interface {
	// FetchConversion returns the conversion by id, or nil when it does not
	// exist.
	FetchConversion(ctx context.Context, id int64) (*domain.Conversion, error)
	// FetchJourney returns candidate touchpoints for the conversion inside
	// the lookback window. Implementations may over-fetch; the engine
	// applies the exact matching and ordering rules itself.
	FetchJourney(ctx context.Context, conv domain.Conversion, window time.Duration) ([]domain.Touchpoint, error)
	// FetchCampaignPerformance returns the trailing 30-day performance of a
	// campaign as of the given time, or nil when there is no history.
	FetchCampaignPerformance(ctx context.Context, campaignID string, asOf time.Time) (*domain.CampaignPerformance, error)
	// FetchChannelPerformance returns the trailing 30-day performance of an
	// acquisition channel, or nil when there is no history.
	FetchChannelPerformance(ctx context.Context, channel string, asOf time.Time) (*domain.ChannelPerformance, error)
	// GetCampaignCredits returns accumulated credits per campaign and day.
	GetCampaignCredits(ctx context.Context, req CreditsReq) ([]domain.CampaignCredit, error)
}

// AttributionWriter is the result sink.
type AttributionWriter interface {
	// ReplaceAttributionTouchpoints replaces every stored attribution record
	// of the conversion with tps.
	ReplaceAttributionTouchpoints(ctx context.Context, conversionID int64, tps []domain.AttributedTouchpoint) error
	// SetConversionAttributionModel records which model attributed the
	// conversion.
	SetConversionAttributionModel(ctx context.Context, conversionID int64, model string) error
	// AccumulateCampaignCredit adds to the campaign's credit for date. It
	// never overwrites.
	AccumulateCampaignCredit(ctx context.Context, campaignID string, date time.Time, conversions float64, value decimal.Decimal) error
}

// AttributionRepository defines the persistence layer for the attribution
// engine. It is an outbound port in hexagonal architecture.
type AttributionRepository interface {
	AttributionReader
	// InTx runs fn with a writer whose changes are committed only when fn
	// returns nil.
	InTx(ctx context.Context, fn func(w AttributionWriter) error) error
}

// CreditsReq filters the campaign credit report. CampaignID is optional.
type CreditsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *string
}
