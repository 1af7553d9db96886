package attribution

import (
	"math"
	"strings"
	"time"

	"mesa-attribution/internal/core/domain"
)

const (
	recencyScaleHours = 168.0 // one week
	optimalGap        = 24 * time.Hour
	edgePositionBonus = 0.2
)

// TODO: calibrate device scores from per-device conversion rates.
var deviceScores = map[string]float64{
	"mobile":  0.8,
	"tablet":  0.7,
	"desktop": 0.6,
}

const defaultDeviceScore = 0.5

// ScoreWeights are the coefficients of the composite score. They are policy,
// not derived constants, and are loaded from configuration.
type ScoreWeights struct {
	Recency                float64
	CampaignConversionRate float64
	CampaignROAS           float64
	ChannelConversionRate  float64
	Position               float64
	Device                 float64
	Frequency              float64
}

// DefaultScoreWeights returns the stock coefficients. They sum to 1.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Recency:                0.30,
		CampaignConversionRate: 0.20,
		CampaignROAS:           0.15,
		ChannelConversionRate:  0.15,
		Position:               0.10,
		Device:                 0.05,
		Frequency:              0.05,
	}
}

// Sum returns the total of all coefficients.
func (w ScoreWeights) Sum() float64 {
	return w.Recency + w.CampaignConversionRate + w.CampaignROAS + w.ChannelConversionRate +
		w.Position + w.Device + w.Frequency
}

// IsZero reports whether no coefficient is set.
func (w ScoreWeights) IsZero() bool {
	return w == ScoreWeights{}
}

// Score computes the composite score factors for every touchpoint of the
// journey. Zero weights fall back to DefaultScoreWeights. Factors are
// scaled to roughly [0,1]; the frequency factor may go negative and is
// passed through unclamped.
func Score(journey []domain.Touchpoint, conv domain.Conversion, perf domain.PerformanceSnapshot, weights ScoreWeights, roasScale float64) []domain.ScoreFactors {
	if weights.IsZero() {
		weights = DefaultScoreWeights()
	}
	if roasScale <= 0 {
		roasScale = DefaultRoasScale
	}
	n := len(journey)
	frequency := FrequencyScore(journey)
	out := make([]domain.ScoreFactors, n)
	for i, tp := range journey {
		camp := perf.Campaign(tp.CampaignID)
		f := domain.ScoreFactors{
			Recency:                RecencyScore(conv.OccurredAt.Sub(tp.OccurredAt)),
			CampaignConversionRate: camp.ConversionRate,
			CampaignROAS:           math.Min(camp.ROAS/roasScale, 1),
			ChannelConversionRate:  perf.Channel(tp.Channel).ConversionRate,
			Device:                 DeviceScore(tp.DeviceType),
			Frequency:              frequency,
		}
		if i == 0 || i == n-1 {
			f.Position = edgePositionBonus
		}
		f.Composite = weights.Recency*f.Recency +
			weights.CampaignConversionRate*f.CampaignConversionRate +
			weights.CampaignROAS*f.CampaignROAS +
			weights.ChannelConversionRate*f.ChannelConversionRate +
			weights.Position*f.Position +
			weights.Device*f.Device +
			weights.Frequency*f.Frequency
		out[i] = f
	}
	return out
}

// RecencyScore decays exponentially with the hours between touchpoint and
// conversion: exp(-hours/168).
func RecencyScore(age time.Duration) float64 {
	return math.Exp(-age.Hours() / recencyScaleHours)
}

// DeviceScore looks up the static device table.
func DeviceScore(deviceType string) float64 {
	if s, ok := deviceScores[strings.ToLower(deviceType)]; ok {
		return s
	}
	return defaultDeviceScore
}

// FrequencyScore rewards journeys whose mean gap between consecutive
// touchpoints is close to one day: 1 - |avgGap - 24h| / 24h. Journeys with
// fewer than two touchpoints have no gap and score 0.
func FrequencyScore(journey []domain.Touchpoint) float64 {
	n := len(journey)
	if n < 2 {
		return 0
	}
	span := journey[n-1].OccurredAt.Sub(journey[0].OccurredAt)
	avgGap := float64(span) / float64(n-1)
	return 1 - math.Abs(avgGap-float64(optimalGap))/float64(optimalGap)
}
