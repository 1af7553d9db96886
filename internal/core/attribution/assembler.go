package attribution

import (
	"math"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"mesa-attribution/internal/core/domain"
)

// WeightTolerance is the allowed deviation of a normalized weight total
// from 1.
const WeightTolerance = 1e-9

// Assemble packages model output into an AttributionResult. It fills
// missing position metadata and re-normalizes weights whose total drifted
// from one. Custom output is passed through untouched: its total is
// user-defined.
func Assemble(conv domain.Conversion, model Model, weighted []domain.AttributedTouchpoint, now time.Time) domain.AttributionResult {
	tps := make([]domain.AttributedTouchpoint, len(weighted))
	copy(tps, weighted)

	for i := range tps {
		if tps[i].Position == 0 {
			tps[i].Position = i + 1
		}
		if tps[i].TotalPositions == 0 {
			tps[i].TotalPositions = len(tps)
		}
		if tps[i].Weight < 0 {
			tps[i].Weight = 0
		}
	}

	if model != Custom && len(tps) > 0 {
		var total float64
		for _, tp := range tps {
			total += tp.Weight
		}
		if math.Abs(total-1) > WeightTolerance {
			raw := make([]float64, len(tps))
			for i, tp := range tps {
				raw[i] = tp.Weight
			}
			weights, _ := normalize(raw)
			for i := range tps {
				tps[i].Weight = weights[i]
			}
		}
	}

	return domain.AttributionResult{
		ConversionID: conv.ID,
		Model:        model.String(),
		Touchpoints:  tps,
		TotalValue:   conv.Value,
		Currency:     conv.Currency,
		ComputedAt:   now.UTC(),
	}
}

// CampaignCredits derives the additive per-campaign increments for result.
// Credit is booked on the conversion's UTC day. Touchpoints without a
// campaign contribute nothing; several touchpoints of the same campaign are
// merged into one increment. The output is ordered by first appearance.
func CampaignCredits(result domain.AttributionResult, conversionTime time.Time) []domain.CampaignCredit {
	day := ConversionDay(conversionTime)
	var credits []domain.CampaignCredit
	for _, tp := range result.Touchpoints {
		if tp.CampaignID == "" || tp.Weight == 0 {
			continue
		}
		value := result.TotalValue.Mul(decimal.NewFromFloat(tp.Weight))
		idx := slices.IndexFunc(credits, func(c domain.CampaignCredit) bool {
			return c.CampaignID == tp.CampaignID
		})
		if idx < 0 {
			credits = append(credits, domain.CampaignCredit{
				CampaignID:      tp.CampaignID,
				Date:            day,
				Conversions:     tp.Weight,
				AttributedValue: value,
			})
			continue
		}
		credits[idx].Conversions += tp.Weight
		credits[idx].AttributedValue = credits[idx].AttributedValue.Add(value)
	}
	return credits
}

// ConversionDay truncates t to its UTC calendar day.
func ConversionDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
