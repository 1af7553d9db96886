package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"mesa-attribution/internal/core/domain"
	"mesa-attribution/internal/core/port"
)

// performanceWindow is the trailing period campaign and channel performance
// is aggregated over.
const performanceWindow = 30 * 24 * time.Hour

// AttributionRepository implements port.AttributionRepository using pgxpool
// for PostgreSQL.
type AttributionRepository struct {
	pool *pgxpool.Pool
}

// NewAttributionRepository returns a new repository instance.
func NewAttributionRepository(pool *pgxpool.Pool) *AttributionRepository {
	return &AttributionRepository{pool: pool}
}

// FetchConversion returns a conversion by id.
func (r *AttributionRepository) FetchConversion(ctx context.Context, id int64) (*domain.Conversion, error) {
	var (
		c            domain.Conversion
		touchpointID *int64
		value        string
		model        *string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, touchpoint_id, value::text, currency, occurred_at,
       ip_address, session_id, click_id, browser_id, attribution_model
FROM conversions WHERE id = $1`, id).
		Scan(&c.ID, &touchpointID, &value, &c.Currency, &c.OccurredAt,
			&c.IPAddress, &c.SessionID, &c.ClickID, &c.BrowserID, &model)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if c.Value, err = decimal.NewFromString(value); err != nil {
		return nil, fmt.Errorf("conversion %d value: %w", id, err)
	}
	if touchpointID != nil {
		c.TouchpointID = *touchpointID
	}
	if model != nil {
		c.AttributionModel = *model
	}
	c.OccurredAt = c.OccurredAt.UTC()
	return &c, nil
}

// FetchJourney returns touchpoints inside the window that share any identity
// key with the conversion. Empty keys never match.
func (r *AttributionRepository) FetchJourney(ctx context.Context, conv domain.Conversion, window time.Duration) ([]domain.Touchpoint, error) {
	query := `
        SELECT id, campaign_id, ad_set_id, ad_id, occurred_at, channel, medium,
               utm_campaign, device_type, ip_address, session_id, click_id, browser_id
        FROM touchpoints
        WHERE occurred_at BETWEEN $1 AND $2
          AND (   ($3::text <> '' AND ip_address = $3)
               OR ($4::text <> '' AND session_id = $4)
               OR ($5::text <> '' AND click_id = $5)
               OR ($6::text <> '' AND browser_id = $6))
        ORDER BY occurred_at, id`
	rows, err := r.pool.Query(ctx, query,
		conv.OccurredAt.Add(-window), conv.OccurredAt,
		conv.IPAddress, conv.SessionID, conv.ClickID, conv.BrowserID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Touchpoint, error) {
		var tp domain.Touchpoint
		err := row.Scan(&tp.ID, &tp.CampaignID, &tp.AdSetID, &tp.AdID, &tp.OccurredAt,
			&tp.Channel, &tp.Medium, &tp.UTMCampaign, &tp.DeviceType,
			&tp.IPAddress, &tp.SessionID, &tp.ClickID, &tp.BrowserID)
		tp.OccurredAt = tp.OccurredAt.UTC()
		return tp, err
	})
}

// FetchCampaignPerformance aggregates the 30 days before asOf. Conversion
// rate is credited conversions per touchpoint; ROAS is attributed value
// per unit of spend. Credit and spend are summed over whole days before the
// day of asOf, so a rerun does not see the credit booked by the last run.
func (r *AttributionRepository) FetchCampaignPerformance(ctx context.Context, campaignID string, asOf time.Time) (*domain.CampaignPerformance, error) {
	from := asOf.Add(-performanceWindow)
	var (
		clicks      int64
		conversions float64
		value       string
		spend       string
	)
	err := r.pool.QueryRow(ctx, `
        SELECT
            (SELECT count(*) FROM touchpoints
              WHERE campaign_id = $1 AND occurred_at >= $2::timestamptz AND occurred_at < $3::timestamptz),
            (SELECT COALESCE(sum(conversions), 0) FROM campaign_credits
              WHERE campaign_id = $1 AND date >= $2::timestamptz::date AND date < $3::timestamptz::date),
            (SELECT COALESCE(sum(attributed_value), 0)::text FROM campaign_credits
              WHERE campaign_id = $1 AND date >= $2::timestamptz::date AND date < $3::timestamptz::date),
            (SELECT COALESCE(sum(spend), 0)::text FROM campaign_spend
              WHERE campaign_id = $1 AND date >= $2::timestamptz::date AND date < $3::timestamptz::date)`,
		campaignID, from, asOf).Scan(&clicks, &conversions, &value, &spend)
	if err != nil {
		return nil, err
	}
	v, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("campaign %s value: %w", campaignID, err)
	}
	s, err := decimal.NewFromString(spend)
	if err != nil {
		return nil, fmt.Errorf("campaign %s spend: %w", campaignID, err)
	}
	return domain.NewCampaignPerformance(clicks, conversions, v, s), nil
}

// FetchChannelPerformance returns conversions triggered from the channel per
// touchpoint recorded on it over the 30 days before asOf.
func (r *AttributionRepository) FetchChannelPerformance(ctx context.Context, channel string, asOf time.Time) (*domain.ChannelPerformance, error) {
	from := asOf.Add(-performanceWindow)
	var touches, conversions int64
	err := r.pool.QueryRow(ctx, `
        SELECT
            (SELECT count(*) FROM touchpoints
              WHERE channel = $1 AND occurred_at >= $2 AND occurred_at < $3),
            (SELECT count(*) FROM conversions c
               JOIN touchpoints t ON t.id = c.touchpoint_id
              WHERE t.channel = $1 AND c.occurred_at >= $2 AND c.occurred_at < $3)`,
		channel, from, asOf).Scan(&touches, &conversions)
	if err != nil {
		return nil, err
	}
	return domain.NewChannelPerformance(touches, conversions), nil
}

// GetCampaignCredits returns accumulated credits ordered by day and campaign.
func (r *AttributionRepository) GetCampaignCredits(ctx context.Context, req port.CreditsReq) ([]domain.CampaignCredit, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`SELECT campaign_id, date, conversions, attributed_value::text
FROM campaign_credits
WHERE date >= $1::timestamptz::date AND date <= $2::timestamptz::date %s
ORDER BY date, campaign_id`, whereCampaign)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignCredit, error) {
		var (
			c     domain.CampaignCredit
			value string
		)
		if err := row.Scan(&c.CampaignID, &c.Date, &c.Conversions, &value); err != nil {
			return c, err
		}
		v, err := decimal.NewFromString(value)
		if err != nil {
			return c, fmt.Errorf("credit value for %s: %w", c.CampaignID, err)
		}
		c.AttributedValue = v
		c.Date = c.Date.UTC()
		return c, nil
	})
}

// InTx runs fn inside a serializable transaction. The transaction commits
// only when fn returns nil.
func (r *AttributionRepository) InTx(ctx context.Context, fn func(w port.AttributionWriter) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	if err = fn(&txWriter{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// txWriter implements port.AttributionWriter on an open transaction.
type txWriter struct {
	tx pgx.Tx
}

func (w *txWriter) ReplaceAttributionTouchpoints(ctx context.Context, conversionID int64, tps []domain.AttributedTouchpoint) error {
	if _, err := w.tx.Exec(ctx, `DELETE FROM attribution_touchpoints WHERE conversion_id = $1`, conversionID); err != nil {
		return err
	}
	if len(tps) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, tp := range tps {
		var factors []byte
		if tp.Factors != nil {
			raw, err := json.Marshal(tp.Factors)
			if err != nil {
				return fmt.Errorf("encode factors for touchpoint %d: %w", tp.ID, err)
			}
			factors = raw
		}
		batch.Queue(`INSERT INTO attribution_touchpoints
(id, conversion_id, touchpoint_id, campaign_id, weight, position, total_positions, factors)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), conversionID, tp.ID, tp.CampaignID, tp.Weight, tp.Position, tp.TotalPositions, factors)
	}
	return w.tx.SendBatch(ctx, batch).Close()
}

func (w *txWriter) SetConversionAttributionModel(ctx context.Context, conversionID int64, model string) error {
	tag, err := w.tx.Exec(ctx, `UPDATE conversions SET attribution_model = $1 WHERE id = $2`, model, conversionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: conversion %d", domain.ErrNotFound, conversionID)
	}
	return nil
}

func (w *txWriter) AccumulateCampaignCredit(ctx context.Context, campaignID string, date time.Time, conversions float64, value decimal.Decimal) error {
	_, err := w.tx.Exec(ctx, `INSERT INTO campaign_credits (campaign_id, date, conversions, attributed_value, updated_at)
VALUES ($1, $2::timestamptz::date, $3, $4::numeric, now())
ON CONFLICT (campaign_id, date) DO UPDATE
SET conversions = campaign_credits.conversions + EXCLUDED.conversions,
    attributed_value = campaign_credits.attributed_value + EXCLUDED.attributed_value,
    updated_at = now()`,
		campaignID, date.UTC(), conversions, value.String())
	return err
}
