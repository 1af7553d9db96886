package main

import (
	"time"

	"github.com/shopspring/decimal"

	"mesa-attribution/internal/core/domain"
	"mesa-attribution/internal/core/port"
)

type resultView struct {
	ConversionID int64            `json:"conversion_id"`
	Model        string           `json:"model"`
	TotalValue   decimal.Decimal  `json:"total_value"`
	Currency     string           `json:"currency"`
	ComputedAt   time.Time        `json:"computed_at"`
	Touchpoints  []touchpointView `json:"touchpoints"`
}

type touchpointView struct {
	TouchpointID   int64                `json:"touchpoint_id"`
	CampaignID     string               `json:"campaign_id,omitempty"`
	Channel        string               `json:"channel,omitempty"`
	OccurredAt     time.Time            `json:"occurred_at"`
	Position       int                  `json:"position"`
	TotalPositions int                  `json:"total_positions"`
	Weight         float64              `json:"weight"`
	Value          decimal.Decimal      `json:"value"`
	Factors        *domain.ScoreFactors `json:"factors,omitempty"`
}

type creditsView struct {
	Credits          []creditView    `json:"credits"`
	TotalConversions float64         `json:"total_conversions"`
	TotalValue       decimal.Decimal `json:"total_value"`
}

type creditView struct {
	CampaignID      string          `json:"campaign_id"`
	Date            string          `json:"date"`
	Conversions     float64         `json:"conversions"`
	AttributedValue decimal.Decimal `json:"attributed_value"`
}

type failure struct {
	ConversionID int64  `json:"conversion_id"`
	Error        string `json:"error"`
}

func newResultView(r *domain.AttributionResult) resultView {
	v := resultView{
		ConversionID: r.ConversionID,
		Model:        r.Model,
		TotalValue:   r.TotalValue,
		Currency:     r.Currency,
		ComputedAt:   r.ComputedAt,
		Touchpoints:  make([]touchpointView, 0, len(r.Touchpoints)),
	}
	for _, tp := range r.Touchpoints {
		v.Touchpoints = append(v.Touchpoints, touchpointView{
			TouchpointID:   tp.ID,
			CampaignID:     tp.CampaignID,
			Channel:        tp.Channel,
			OccurredAt:     tp.OccurredAt,
			Position:       tp.Position,
			TotalPositions: tp.TotalPositions,
			Weight:         tp.Weight,
			Value:          r.TotalValue.Mul(decimal.NewFromFloat(tp.Weight)).Round(2),
			Factors:        tp.Factors,
		})
	}
	return v
}

func newCreditsView(resp *port.CreditsResp) creditsView {
	v := creditsView{
		Credits:          make([]creditView, 0, len(resp.Credits)),
		TotalConversions: resp.TotalConversions,
		TotalValue:       resp.TotalValue.Round(2),
	}
	for _, c := range resp.Credits {
		v.Credits = append(v.Credits, creditView{
			CampaignID:      c.CampaignID,
			Date:            c.Date.Format(time.DateOnly),
			Conversions:     c.Conversions,
			AttributedValue: c.AttributedValue.Round(2),
		})
	}
	return v
}
