package attribution

import (
	"math"
	"testing"
	"time"

	"mesa-attribution/internal/core/domain"
)

func TestRecencyScore(t *testing.T) {
	if got := RecencyScore(0); got != 1 {
		t.Fatalf("age 0: got %v", got)
	}
	if got := RecencyScore(168 * time.Hour); math.Abs(got-math.Exp(-1)) > 1e-12 {
		t.Fatalf("one week: got %v", got)
	}
}

func TestDeviceScore(t *testing.T) {
	cases := map[string]float64{"mobile": 0.8, "Tablet": 0.7, "desktop": 0.6, "tv": 0.5, "": 0.5}
	for device, want := range cases {
		if got := DeviceScore(device); got != want {
			t.Errorf("DeviceScore(%q) = %v, want %v", device, got, want)
		}
	}
}

func TestFrequencyScore(t *testing.T) {
	if got := FrequencyScore(journeyAt(1)); got != 0 {
		t.Fatalf("single touchpoint: got %v", got)
	}
	if got := FrequencyScore(journeyAt(48, 24, 0)); math.Abs(got-1) > 1e-12 {
		t.Fatalf("daily gaps: got %v", got)
	}
	if got := FrequencyScore(journeyAt(12, 0)); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("12h gap: got %v", got)
	}
	if got := FrequencyScore(journeyAt(96, 0)); got >= 0 {
		t.Fatalf("4 day gap should score negative, got %v", got)
	}
}

func TestScore_Composite(t *testing.T) {
	perf := domain.PerformanceSnapshot{
		Campaigns: map[string]domain.CampaignPerformance{"cmp-1": {ConversionRate: 0.2, ROAS: 10}},
		Channels:  map[string]domain.ChannelPerformance{"facebook": {ConversionRate: 0.1}},
	}
	factors := Score(journeyAt(0), conversion(), perf, ScoreWeights{}, 0)
	if len(factors) != 1 {
		t.Fatalf("got %d factors", len(factors))
	}
	f := factors[0]
	if f.CampaignROAS != 1 {
		t.Fatalf("roas must be capped at 1, got %v", f.CampaignROAS)
	}
	if f.Position != edgePositionBonus {
		t.Fatalf("single touchpoint is an edge, got position %v", f.Position)
	}
	w := DefaultScoreWeights()
	want := w.Recency*1 + w.CampaignConversionRate*0.2 + w.CampaignROAS*1 +
		w.ChannelConversionRate*0.1 + w.Position*edgePositionBonus + w.Device*0.8
	if math.Abs(f.Composite-want) > 1e-12 {
		t.Fatalf("composite = %v, want %v", f.Composite, want)
	}
}

func TestScore_MissingPerformanceIsZero(t *testing.T) {
	factors := Score(journeyAt(3, 2, 1), conversion(), domain.PerformanceSnapshot{}, DefaultScoreWeights(), DefaultRoasScale)
	for i, f := range factors {
		if f.CampaignConversionRate != 0 || f.CampaignROAS != 0 || f.ChannelConversionRate != 0 {
			t.Fatalf("touchpoint %d: expected zero performance factors, got %+v", i, f)
		}
	}
	if factors[1].Position != 0 {
		t.Fatalf("middle touchpoint should get no position bonus")
	}
}

func TestDefaultScoreWeightsSumToOne(t *testing.T) {
	if got := DefaultScoreWeights().Sum(); math.Abs(got-1) > 1e-12 {
		t.Fatalf("default weights sum to %v", got)
	}
}
