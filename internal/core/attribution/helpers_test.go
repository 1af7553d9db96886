package attribution

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"mesa-attribution/internal/core/domain"
)

var convTime = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func conversion() domain.Conversion {
	return domain.Conversion{
		ID:         42,
		Value:      decimal.NewFromInt(100),
		Currency:   "USD",
		OccurredAt: convTime,
		Identity:   domain.Identity{IPAddress: "10.0.0.1", BrowserID: "fb.1.abc"},
	}
}

// journeyAt builds an ordered journey whose touchpoints happened the given
// number of hours before the conversion.
func journeyAt(hoursBefore ...float64) []domain.Touchpoint {
	out := make([]domain.Touchpoint, len(hoursBefore))
	for i, h := range hoursBefore {
		out[i] = domain.Touchpoint{
			ID:         int64(i + 1),
			CampaignID: "cmp-1",
			Channel:    "facebook",
			DeviceType: "mobile",
			OccurredAt: convTime.Add(-time.Duration(h * float64(time.Hour))),
			Identity:   domain.Identity{IPAddress: "10.0.0.1"},
		}
	}
	return out
}

func weightsOf(tps []domain.AttributedTouchpoint) []float64 {
	out := make([]float64, len(tps))
	for i, tp := range tps {
		out[i] = tp.Weight
	}
	return out
}

func sum(ws []float64) float64 {
	var s float64
	for _, w := range ws {
		s += w
	}
	return s
}

func assertWeights(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d weights %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("weight[%d] = %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}
