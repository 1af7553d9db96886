// Package demo generates a synthetic advertising dataset for local runs:
// five campaigns with a month of spend and visitors whose journeys span up
// to three weeks.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-attribution/internal/core/domain"
)

const campaigns = 5

var (
	channels = []string{"facebook", "instagram", "google", "newsletter"}
	mediums  = []string{"cpc", "paid_social", "email"}
	devices  = []string{"mobile", "desktop", "tablet"}
)

// Spend is one day of campaign cost.
type Spend struct {
	CampaignID string
	Date       time.Time
	Amount     decimal.Decimal
}

// Visitor is a journey and its optional conversion. The conversion was
// triggered by the last touchpoint; loaders set TouchpointID once ids are
// known.
type Visitor struct {
	Touchpoints []domain.Touchpoint
	Conversion  *domain.Conversion
}

// Dataset is everything Generate produces.
type Dataset struct {
	Spend    []Spend
	Visitors []Visitor
}

// Generate builds a dataset ending at now. Visitors get between one and six
// touchpoints; roughly half of them convert shortly after their last one.
func Generate(r *rand.Rand, now time.Time, visitors int) Dataset {
	now = now.UTC()
	var ds Dataset
	for c := 1; c <= campaigns; c++ {
		for d := 0; d < 30; d++ {
			ds.Spend = append(ds.Spend, Spend{
				CampaignID: campaignID(c),
				Date:       now.AddDate(0, 0, -d).Truncate(24 * time.Hour),
				Amount:     decimal.NewFromInt(int64(50 + r.Intn(150))),
			})
		}
	}

	for v := 0; v < visitors; v++ {
		id := domain.Identity{
			IPAddress: fmt.Sprintf("10.%d.%d.%d", r.Intn(256), r.Intn(256), 1+r.Intn(254)),
			BrowserID: "fb.1." + uuid.NewString(),
		}
		device := devices[r.Intn(len(devices))]
		at := now.Add(-time.Duration(1+r.Intn(21*24)) * time.Hour)

		var visitor Visitor
		for s, steps := 0, 1+r.Intn(6); s < steps && !at.After(now); s++ {
			id.ClickID = uuid.NewString()
			id.SessionID = uuid.NewString()
			c := 1 + r.Intn(campaigns)
			visitor.Touchpoints = append(visitor.Touchpoints, domain.Touchpoint{
				CampaignID:  campaignID(c),
				AdSetID:     fmt.Sprintf("set-%d-%d", c, 1+r.Intn(3)),
				AdID:        fmt.Sprintf("ad-%d-%d", c, 1+r.Intn(10)),
				OccurredAt:  at,
				Channel:     channels[r.Intn(len(channels))],
				Medium:      mediums[r.Intn(len(mediums))],
				UTMCampaign: fmt.Sprintf("campaign_%d", c),
				DeviceType:  device,
				Identity:    id,
			})
			at = at.Add(time.Duration(2+r.Intn(46)) * time.Hour)
		}

		if r.Intn(2) == 1 {
			last := visitor.Touchpoints[len(visitor.Touchpoints)-1]
			convAt := last.OccurredAt.Add(time.Duration(1+r.Intn(60)) * time.Minute)
			if convAt.After(now) {
				convAt = now
			}
			visitor.Conversion = &domain.Conversion{
				Value:      decimal.NewFromInt(int64(500 + r.Intn(20000))).Shift(-2),
				Currency:   "USD",
				OccurredAt: convAt,
				Identity:   last.Identity,
			}
		}
		ds.Visitors = append(ds.Visitors, visitor)
	}
	return ds
}

func campaignID(n int) string {
	return fmt.Sprintf("cmp-%d", n)
}
