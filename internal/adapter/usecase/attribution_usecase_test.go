package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"mesa-attribution/internal/core/attribution"
	"mesa-attribution/internal/core/domain"
	"mesa-attribution/internal/core/port"
	"mesa-attribution/internal/core/port/mocks"
)

var convAt = time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUseCase(repo port.AttributionRepository) *AttributionUseCase {
	return NewAttributionUseCase(repo, discardLogger(),
		WithClock(func() time.Time { return convAt.Add(time.Hour) }))
}

func testConversion() *domain.Conversion {
	return &domain.Conversion{
		ID:         7,
		Value:      decimal.NewFromInt(120),
		Currency:   "USD",
		OccurredAt: convAt,
		Identity:   domain.Identity{IPAddress: "10.1.1.1"},
	}
}

func testJourney() []domain.Touchpoint {
	return []domain.Touchpoint{
		{ID: 1, CampaignID: "cmp-1", Channel: "facebook", DeviceType: "mobile", OccurredAt: convAt.Add(-48 * time.Hour), Identity: domain.Identity{IPAddress: "10.1.1.1"}},
		{ID: 2, CampaignID: "cmp-2", Channel: "google", DeviceType: "desktop", OccurredAt: convAt.Add(-2 * time.Hour), Identity: domain.Identity{IPAddress: "10.1.1.1"}},
	}
}

func decimalEq(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

// TestAttributeUnknownModel ensures an unknown model fails before any I/O.
func TestAttributeUnknownModel(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	svc := newTestUseCase(repo)

	_, err := svc.Attribute(context.Background(), 7, "shapley", attribution.DefaultOptions())
	if !errors.Is(err, domain.ErrUnknownModel) {
		t.Fatalf("expected ErrUnknownModel, got %v", err)
	}
}

func TestAttributeConversionNotFound(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	repo.EXPECT().FetchConversion(mock.Anything, int64(7)).Return(nil, nil)

	_, err := newTestUseCase(repo).Attribute(context.Background(), 7, "linear", attribution.DefaultOptions())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAttributeEmptyJourney(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	repo.EXPECT().FetchConversion(mock.Anything, int64(7)).Return(testConversion(), nil)
	repo.EXPECT().FetchJourney(mock.Anything, mock.Anything, attribution.DefaultLookbackWindow).Return(nil, nil)

	_, err := newTestUseCase(repo).Attribute(context.Background(), 7, "linear", attribution.DefaultOptions())
	if !errors.Is(err, domain.ErrEmptyJourney) {
		t.Fatalf("expected ErrEmptyJourney, got %v", err)
	}
}

// TestAttributeWithoutIdentity ensures a conversion without identity keys
// never queries touchpoints.
func TestAttributeWithoutIdentity(t *testing.T) {
	conv := testConversion()
	conv.Identity = domain.Identity{}
	repo := mocks.NewMockAttributionRepository(t)
	repo.EXPECT().FetchConversion(mock.Anything, int64(7)).Return(conv, nil)

	_, err := newTestUseCase(repo).Attribute(context.Background(), 7, "linear", attribution.DefaultOptions())
	if !errors.Is(err, domain.ErrEmptyJourney) {
		t.Fatalf("expected ErrEmptyJourney, got %v", err)
	}
}

// TestAttributePersists checks every write happens inside one transaction.
func TestAttributePersists(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	writer := mocks.NewMockAttributionWriter(t)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().FetchConversion(mock.Anything, int64(7)).Return(testConversion(), nil)
	repo.EXPECT().FetchJourney(mock.Anything, mock.Anything, mock.Anything).Return(testJourney(), nil)
	repo.EXPECT().InTx(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(port.AttributionWriter) error) error {
			return fn(writer)
		})

	writer.EXPECT().
		ReplaceAttributionTouchpoints(mock.Anything, int64(7), mock.MatchedBy(func(tps []domain.AttributedTouchpoint) bool {
			return len(tps) == 2 && tps[0].Weight == 0.5 && tps[1].Weight == 0.5
		})).
		Return(nil)
	writer.EXPECT().SetConversionAttributionModel(mock.Anything, int64(7), "linear").Return(nil)
	writer.EXPECT().AccumulateCampaignCredit(mock.Anything, "cmp-1", day, 0.5, decimalEq(decimal.NewFromInt(60))).Return(nil)
	writer.EXPECT().AccumulateCampaignCredit(mock.Anything, "cmp-2", day, 0.5, decimalEq(decimal.NewFromInt(60))).Return(nil)

	res, err := newTestUseCase(repo).Attribute(context.Background(), 7, "linear", attribution.DefaultOptions())
	if err != nil {
		t.Fatalf("Attribute error: %v", err)
	}
	if res.Model != "linear" || len(res.Touchpoints) != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !res.ComputedAt.Equal(convAt.Add(time.Hour)) {
		t.Fatalf("computed at %v", res.ComputedAt)
	}
}

func TestAttributePersistFailure(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	writer := mocks.NewMockAttributionWriter(t)
	boom := errors.New("serialization failure")

	repo.EXPECT().FetchConversion(mock.Anything, int64(7)).Return(testConversion(), nil)
	repo.EXPECT().FetchJourney(mock.Anything, mock.Anything, mock.Anything).Return(testJourney(), nil)
	repo.EXPECT().InTx(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(port.AttributionWriter) error) error {
			return fn(writer)
		})
	writer.EXPECT().ReplaceAttributionTouchpoints(mock.Anything, int64(7), mock.Anything).Return(nil)
	writer.EXPECT().SetConversionAttributionModel(mock.Anything, int64(7), "last_click").Return(boom)

	res, err := newTestUseCase(repo).Attribute(context.Background(), 7, "last_click", attribution.DefaultOptions())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result on failure")
	}
}

// TestAlgorithmicLookupFailure ensures a failed performance lookup degrades
// to zero performance instead of failing the conversion.
func TestAlgorithmicLookupFailure(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	repo.EXPECT().FetchConversion(mock.Anything, int64(7)).Return(testConversion(), nil)
	repo.EXPECT().FetchJourney(mock.Anything, mock.Anything, mock.Anything).Return(testJourney(), nil)
	repo.EXPECT().FetchCampaignPerformance(mock.Anything, "cmp-1", convAt).Return(nil, errors.New("timeout"))
	repo.EXPECT().FetchCampaignPerformance(mock.Anything, "cmp-2", convAt).
		Return(&domain.CampaignPerformance{ConversionRate: 0.3, ROAS: 2}, nil)
	repo.EXPECT().FetchChannelPerformance(mock.Anything, "facebook", convAt).Return(nil, nil)
	repo.EXPECT().FetchChannelPerformance(mock.Anything, "google", convAt).
		Return(&domain.ChannelPerformance{ConversionRate: 0.1}, nil)

	svc := NewAttributionUseCase(repo, discardLogger(), WithLookupConcurrency(2))
	res, err := svc.Compute(context.Background(), 7, "algorithmic", attribution.DefaultOptions())
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	first, second := res.Touchpoints[0].Factors, res.Touchpoints[1].Factors
	if first == nil || second == nil {
		t.Fatal("algorithmic result must carry factors")
	}
	if first.CampaignConversionRate != 0 || first.CampaignROAS != 0 || first.ChannelConversionRate != 0 {
		t.Fatalf("failed lookups must read as zero, got %+v", first)
	}
	if second.CampaignConversionRate != 0.3 || second.CampaignROAS != 0.4 || second.ChannelConversionRate != 0.1 {
		t.Fatalf("unexpected factors %+v", second)
	}
}

// TestComputeDoesNotPersist relies on the mock failing on an unexpected InTx.
func TestComputeDoesNotPersist(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	repo.EXPECT().FetchConversion(mock.Anything, int64(7)).Return(testConversion(), nil)
	repo.EXPECT().FetchJourney(mock.Anything, mock.Anything, mock.Anything).Return(testJourney(), nil)

	res, err := newTestUseCase(repo).Compute(context.Background(), 7, "position_based", attribution.DefaultOptions())
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if res.TotalWeight() != 1 {
		t.Fatalf("total weight %v", res.TotalWeight())
	}
}

func TestAttributeBatchUnknownModel(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	items := newTestUseCase(repo).AttributeBatch(context.Background(), []int64{1, 2, 3}, "nope", attribution.DefaultOptions())
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	for i, it := range items {
		if it.ConversionID != int64(i+1) || !errors.Is(it.Err, domain.ErrUnknownModel) || it.Result != nil {
			t.Fatalf("item %d: %+v", i, it)
		}
	}
}

func TestAttributeBatchIsolatesFailures(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	repo.EXPECT().FetchConversion(mock.Anything, int64(1)).Return(testConversion(), nil)
	repo.EXPECT().FetchConversion(mock.Anything, int64(2)).Return(nil, errors.New("connection reset"))
	repo.EXPECT().FetchConversion(mock.Anything, int64(3)).Return(nil, nil)
	repo.EXPECT().FetchJourney(mock.Anything, mock.Anything, mock.Anything).Return(testJourney(), nil)
	repo.EXPECT().InTx(mock.Anything, mock.Anything).Return(nil)

	items := newTestUseCase(repo).AttributeBatch(context.Background(), []int64{1, 2, 3}, "first_click", attribution.DefaultOptions())
	if items[0].Err != nil || items[0].Result == nil {
		t.Fatalf("item 1 should succeed: %+v", items[0])
	}
	if items[1].Err == nil || items[1].Result != nil {
		t.Fatalf("item 2 should fail: %+v", items[1])
	}
	if !errors.Is(items[2].Err, domain.ErrNotFound) {
		t.Fatalf("item 3 should be not found: %+v", items[2])
	}
}

func TestAttributeBatchCancelled(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := newTestUseCase(repo).AttributeBatch(ctx, []int64{1, 2}, "linear", attribution.DefaultOptions())
	for _, it := range items {
		if !errors.Is(it.Err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", it.Err)
		}
	}
}

func TestCompareModels(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	repo.EXPECT().FetchConversion(mock.Anything, int64(7)).Return(testConversion(), nil)
	repo.EXPECT().FetchJourney(mock.Anything, mock.Anything, mock.Anything).Return(testJourney(), nil)
	repo.EXPECT().FetchCampaignPerformance(mock.Anything, mock.Anything, convAt).Return(nil, nil)
	repo.EXPECT().FetchChannelPerformance(mock.Anything, mock.Anything, convAt).Return(nil, nil)

	results, err := newTestUseCase(repo).CompareModels(context.Background(), 7, attribution.DefaultOptions())
	if err != nil {
		t.Fatalf("CompareModels error: %v", err)
	}
	if len(results) != len(attribution.Models) {
		t.Fatalf("got %d results", len(results))
	}
	for i, m := range attribution.Models {
		if results[i].Model != m.String() {
			t.Fatalf("result %d is %s, want %s", i, results[i].Model, m)
		}
	}
}

func TestCampaignCredits(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	from, to := convAt.AddDate(0, 0, -7), convAt
	repo.EXPECT().GetCampaignCredits(mock.Anything, port.CreditsReq{From: from, To: to}).Return([]domain.CampaignCredit{
		{CampaignID: "cmp-1", Date: from, Conversions: 0.5, AttributedValue: decimal.RequireFromString("10.25")},
		{CampaignID: "cmp-2", Date: to, Conversions: 1.25, AttributedValue: decimal.RequireFromString("4.75")},
	}, nil)

	svc := newTestUseCase(repo)
	resp, err := svc.CampaignCredits(context.Background(), port.CreditsReq{From: from, To: to})
	if err != nil {
		t.Fatalf("CampaignCredits error: %v", err)
	}
	if resp.TotalConversions != 1.75 || !resp.TotalValue.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("unexpected totals: %v %s", resp.TotalConversions, resp.TotalValue)
	}

	if _, err := svc.CampaignCredits(context.Background(), port.CreditsReq{From: to, To: from}); err == nil {
		t.Fatal("expected error for inverted period")
	}
}
