package db

import (
	"context"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-attribution/internal/demo"
)

// Seed inserts a generated demo dataset and returns the ids of the inserted
// conversions. Everything is written in one transaction.
func Seed(ctx context.Context, db *pgxpool.Pool, visitors int) (ids []int64, err error) {
	ds := demo.Generate(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now(), visitors)

	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, s := range ds.Spend {
		_, err = tx.Exec(ctx, `INSERT INTO campaign_spend (campaign_id, date, spend)
VALUES ($1, $2::timestamptz::date, $3::numeric) ON CONFLICT DO NOTHING`, s.CampaignID, s.Date, s.Amount.String())
		if err != nil {
			return nil, err
		}
	}

	for _, v := range ds.Visitors {
		var lastID int64
		for _, tp := range v.Touchpoints {
			err = tx.QueryRow(ctx, `INSERT INTO touchpoints
(campaign_id, ad_set_id, ad_id, occurred_at, channel, medium, utm_campaign, device_type,
 ip_address, session_id, click_id, browser_id)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING id`,
				tp.CampaignID, tp.AdSetID, tp.AdID, tp.OccurredAt, tp.Channel, tp.Medium,
				tp.UTMCampaign, tp.DeviceType, tp.IPAddress, tp.SessionID, tp.ClickID, tp.BrowserID,
			).Scan(&lastID)
			if err != nil {
				return nil, err
			}
		}
		if v.Conversion == nil {
			continue
		}
		c := v.Conversion
		var id int64
		err = tx.QueryRow(ctx, `INSERT INTO conversions
(touchpoint_id, value, currency, occurred_at, ip_address, session_id, click_id, browser_id)
VALUES ($1, $2::numeric, $3, $4, $5, $6, $7, $8) RETURNING id`,
			lastID, c.Value.String(), c.Currency, c.OccurredAt, c.IPAddress, c.SessionID, c.ClickID, c.BrowserID,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}
