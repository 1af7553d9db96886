package domain

import "github.com/shopspring/decimal"

// CampaignPerformance is the trailing aggregate used by the composite
// scorer for a campaign. Zero values mean no history.
type CampaignPerformance struct {
	ConversionRate float64
	ROAS           float64
}

// ChannelPerformance is the trailing aggregate for an acquisition channel.
type ChannelPerformance struct {
	ConversionRate float64
}

// PerformanceSnapshot holds every performance lookup needed to score one
// journey, keyed by campaign id and channel. Missing keys read as zero.
type PerformanceSnapshot struct {
	Campaigns map[string]CampaignPerformance
	Channels  map[string]ChannelPerformance
}

// Campaign returns the performance for id, or the zero value.
func (s PerformanceSnapshot) Campaign(id string) CampaignPerformance {
	return s.Campaigns[id]
}

// Channel returns the performance for channel, or the zero value.
func (s PerformanceSnapshot) Channel(channel string) ChannelPerformance {
	return s.Channels[channel]
}

// NewCampaignPerformance derives scorer inputs from trailing aggregates:
// credited conversions per touchpoint and attributed value per unit of
// spend. It returns nil when the campaign has no traffic, credit or spend.
func NewCampaignPerformance(touches int64, conversions float64, value, spend decimal.Decimal) *CampaignPerformance {
	if touches == 0 && conversions == 0 && spend.IsZero() {
		return nil
	}
	var p CampaignPerformance
	if touches > 0 {
		p.ConversionRate = conversions / float64(touches)
	}
	if spend.IsPositive() {
		p.ROAS = value.Div(spend).InexactFloat64()
	}
	return &p
}

// NewChannelPerformance returns conversions per touchpoint for a channel, or
// nil when the channel saw no touchpoints.
func NewChannelPerformance(touches, conversions int64) *ChannelPerformance {
	if touches == 0 {
		return nil
	}
	return &ChannelPerformance{ConversionRate: float64(conversions) / float64(touches)}
}
