package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttributedTouchpoint is a touchpoint together with the credit assigned to
// it for one conversion. It is always built as a new value; the source
// Touchpoint is never modified.
type AttributedTouchpoint struct {
	Touchpoint

	Weight         float64
	Position       int // 1-based rank in the journey
	TotalPositions int // journey length

	// Factors is only set by the algorithmic model.
	Factors *ScoreFactors
}

// ScoreFactors records the individual signals the composite scorer computed
// for a touchpoint.
type ScoreFactors struct {
	Recency                float64 `json:"recency"`
	CampaignConversionRate float64 `json:"campaign_conversion_rate"`
	CampaignROAS           float64 `json:"campaign_roas"`
	ChannelConversionRate  float64 `json:"channel_conversion_rate"`
	Position               float64 `json:"position"`
	Device                 float64 `json:"device"`
	Frequency              float64 `json:"frequency"`
	Composite              float64 `json:"composite"`
}

// AttributionResult is the unit of output handed to persistence and
// aggregation.
type AttributionResult struct {
	ConversionID int64
	Model        string
	Touchpoints  []AttributedTouchpoint
	TotalValue   decimal.Decimal
	Currency     string
	ComputedAt   time.Time
}

// TotalWeight returns the sum of all touchpoint weights.
func (r AttributionResult) TotalWeight() float64 {
	var sum float64
	for _, tp := range r.Touchpoints {
		sum += tp.Weight
	}
	return sum
}

// CampaignCredit is an additive increment (or an accumulated total) of
// fractional conversions and attributed value for one campaign and UTC day.
type CampaignCredit struct {
	CampaignID      string
	Date            time.Time
	Conversions     float64
	AttributedValue decimal.Decimal
}
