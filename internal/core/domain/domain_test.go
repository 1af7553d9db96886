package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIdentitySharesAny(t *testing.T) {
	cases := []struct {
		name string
		a, b Identity
		want bool
	}{
		{"same ip", Identity{IPAddress: "1.1.1.1"}, Identity{IPAddress: "1.1.1.1", SessionID: "x"}, true},
		{"click id", Identity{ClickID: "c"}, Identity{ClickID: "c"}, true},
		{"browser id", Identity{BrowserID: "b"}, Identity{BrowserID: "b"}, true},
		{"session id", Identity{SessionID: "s"}, Identity{SessionID: "s"}, true},
		{"empty keys never match", Identity{}, Identity{}, false},
		{"different keys", Identity{IPAddress: "1.1.1.1"}, Identity{IPAddress: "2.2.2.2", ClickID: "c"}, false},
	}
	for _, c := range cases {
		if got := c.a.SharesAny(c.b); got != c.want {
			t.Errorf("%s: SharesAny = %v, want %v", c.name, got, c.want)
		}
	}
	if (Identity{}).HasAny() || !(Identity{BrowserID: "b"}).HasAny() {
		t.Error("HasAny mismatch")
	}
}

func TestNewCampaignPerformance(t *testing.T) {
	if p := NewCampaignPerformance(0, 0, decimal.Zero, decimal.Zero); p != nil {
		t.Fatalf("no history should be nil, got %+v", p)
	}
	p := NewCampaignPerformance(10, 2, decimal.NewFromInt(300), decimal.NewFromInt(100))
	if p.ConversionRate != 0.2 || p.ROAS != 3 {
		t.Fatalf("unexpected performance %+v", p)
	}
	p = NewCampaignPerformance(5, 0, decimal.Zero, decimal.Zero)
	if p == nil || p.ROAS != 0 {
		t.Fatalf("zero spend must give zero ROAS, got %+v", p)
	}
}

func TestNewChannelPerformance(t *testing.T) {
	if NewChannelPerformance(0, 3) != nil {
		t.Fatal("no touches should be nil")
	}
	if p := NewChannelPerformance(4, 1); p.ConversionRate != 0.25 {
		t.Fatalf("conversion rate = %v", p.ConversionRate)
	}
}

func TestSnapshotMissingKeys(t *testing.T) {
	var s PerformanceSnapshot
	if s.Campaign("x") != (CampaignPerformance{}) || s.Channel("y") != (ChannelPerformance{}) {
		t.Fatal("missing keys must read as zero")
	}
}

func TestTotalWeight(t *testing.T) {
	r := AttributionResult{Touchpoints: []AttributedTouchpoint{{Weight: 0.25}, {Weight: 0.5}}}
	if r.TotalWeight() != 0.75 {
		t.Fatalf("total = %v", r.TotalWeight())
	}
}
