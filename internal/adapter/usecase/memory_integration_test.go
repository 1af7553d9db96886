package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"mesa-attribution/internal/adapter/memory"
	"mesa-attribution/internal/core/attribution"
	"mesa-attribution/internal/core/domain"
	"mesa-attribution/internal/core/port"
)

func seedStore(t *testing.T) (*memory.Store, int64) {
	t.Helper()
	s := memory.New()
	for _, tp := range testJourney() {
		s.AddTouchpoint(tp)
	}
	id := s.AddConversion(*testConversion())
	return s, id
}

// TestReattributeReplacesRecords runs the same conversion twice with
// different models: records are replaced, credit is added each run.
func TestReattributeReplacesRecords(t *testing.T) {
	store, id := seedStore(t)
	svc := newTestUseCase(store)
	ctx := context.Background()

	if _, err := svc.Attribute(ctx, id, "linear", attribution.DefaultOptions()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if got := len(store.Records(id)); got != 2 {
		t.Fatalf("after linear: %d records", got)
	}

	if _, err := svc.Attribute(ctx, id, "last_click", attribution.DefaultOptions()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	records := store.Records(id)
	if len(records) != 1 || records[0].ID != 2 || records[0].Weight != 1 {
		t.Fatalf("after last_click: %+v", records)
	}
	conv, _ := store.FetchConversion(ctx, id)
	if conv.AttributionModel != "last_click" {
		t.Fatalf("model = %q", conv.AttributionModel)
	}

	resp, err := svc.CampaignCredits(ctx, port.CreditsReq{From: convAt, To: convAt})
	if err != nil {
		t.Fatalf("CampaignCredits: %v", err)
	}
	if resp.TotalConversions != 2 || !resp.TotalValue.Equal(decimal.NewFromInt(240)) {
		t.Fatalf("credit should accumulate across runs: %v %s", resp.TotalConversions, resp.TotalValue)
	}
}

func TestAlgorithmicAgainstStoredHistory(t *testing.T) {
	store, id := seedStore(t)
	store.AddSpend("cmp-2", convAt.Add(-24*time.Hour), decimal.NewFromInt(10))
	other := store.AddConversion(domain.Conversion{TouchpointID: 2, OccurredAt: convAt.Add(-time.Hour), Value: decimal.NewFromInt(5)})
	if other == id {
		t.Fatal("ids must differ")
	}

	res, err := newTestUseCase(store).Attribute(context.Background(), id, "algorithmic", attribution.DefaultOptions())
	if err != nil {
		t.Fatalf("Attribute: %v", err)
	}
	if got := res.TotalWeight(); got < 1-attribution.WeightTolerance || got > 1+attribution.WeightTolerance {
		t.Fatalf("total weight %v", got)
	}
	if f := res.Touchpoints[1].Factors; f == nil || f.ChannelConversionRate != 1 {
		t.Fatalf("google converted once from one touch: %+v", f)
	}
	if len(store.Records(id)) != 2 {
		t.Fatal("records not stored")
	}
}

func TestReattributeSameModelIsIdempotent(t *testing.T) {
	store, id := seedStore(t)
	svc := newTestUseCase(store)
	ctx := context.Background()

	first, err := svc.Attribute(ctx, id, "time_decay", attribution.DefaultOptions())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := svc.Attribute(ctx, id, "time_decay", attribution.DefaultOptions())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	records := store.Records(id)
	if len(records) != len(first.Touchpoints) {
		t.Fatalf("records duplicated: %d", len(records))
	}
	for i := range records {
		if first.Touchpoints[i].Weight != second.Touchpoints[i].Weight || records[i].Weight != second.Touchpoints[i].Weight {
			t.Fatalf("touchpoint %d differs between runs", i)
		}
	}
}

// TestReattributeAlgorithmicIsIdempotent reruns the algorithmic model on a
// campaign with several touches: the credit booked by the first run must
// not feed back into the campaign conversion rate of the second.
func TestReattributeAlgorithmicIsIdempotent(t *testing.T) {
	store, id := seedStore(t)
	store.AddTouchpoint(domain.Touchpoint{
		CampaignID: "cmp-1",
		Channel:    "facebook",
		DeviceType: "desktop",
		OccurredAt: convAt.Add(-5 * time.Hour),
		Identity:   domain.Identity{IPAddress: "10.9.9.9"},
	})
	svc := newTestUseCase(store)
	ctx := context.Background()

	first, err := svc.Attribute(ctx, id, "algorithmic", attribution.DefaultOptions())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := svc.Attribute(ctx, id, "algorithmic", attribution.DefaultOptions())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(first.Touchpoints) != len(second.Touchpoints) {
		t.Fatalf("touchpoint count changed: %d vs %d", len(first.Touchpoints), len(second.Touchpoints))
	}
	for i := range first.Touchpoints {
		a, b := first.Touchpoints[i], second.Touchpoints[i]
		if a.Weight != b.Weight {
			t.Fatalf("touchpoint %d: weight %v then %v", a.ID, a.Weight, b.Weight)
		}
		if *a.Factors != *b.Factors {
			t.Fatalf("touchpoint %d: factors %+v then %+v", a.ID, *a.Factors, *b.Factors)
		}
	}
}
