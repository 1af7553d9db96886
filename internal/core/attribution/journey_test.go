package attribution

import (
	"testing"
	"time"

	"mesa-attribution/internal/core/domain"
)

func TestResolveJourney(t *testing.T) {
	conv := conversion()
	window := 30 * 24 * time.Hour
	at := func(d time.Duration) time.Time { return conv.OccurredAt.Add(-d) }

	candidates := []domain.Touchpoint{
		{ID: 1, OccurredAt: at(2 * time.Hour), Identity: domain.Identity{IPAddress: "10.0.0.1"}},
		{ID: 2, OccurredAt: at(window), Identity: domain.Identity{BrowserID: "fb.1.abc"}},
		{ID: 3, OccurredAt: at(window + time.Second), Identity: domain.Identity{IPAddress: "10.0.0.1"}},
		{ID: 4, OccurredAt: at(-time.Second), Identity: domain.Identity{IPAddress: "10.0.0.1"}},
		{ID: 5, OccurredAt: at(time.Hour), Identity: domain.Identity{IPAddress: "10.0.0.2", SessionID: "s"}},
		{ID: 6, OccurredAt: at(0), Identity: domain.Identity{IPAddress: "10.0.0.1"}},
		{ID: 7, OccurredAt: at(5 * time.Hour), Identity: domain.Identity{ClickID: "", BrowserID: ""}},
	}

	got := ResolveJourney(conv, candidates, window)
	want := []int64{2, 1, 6}
	if len(got) != len(want) {
		t.Fatalf("got %d touchpoints, want %d: %+v", len(got), len(want), got)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got id %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestResolveJourney_NoIdentity(t *testing.T) {
	conv := conversion()
	conv.Identity = domain.Identity{}
	candidates := journeyAt(1)
	if got := ResolveJourney(conv, candidates, time.Hour*24); len(got) != 0 {
		t.Fatalf("expected empty journey, got %d", len(got))
	}
}

func TestResolveJourney_StableOnTies(t *testing.T) {
	conv := conversion()
	same := conv.OccurredAt.Add(-time.Hour)
	candidates := []domain.Touchpoint{
		{ID: 9, OccurredAt: same, Identity: conv.Identity},
		{ID: 3, OccurredAt: same, Identity: conv.Identity},
		{ID: 5, OccurredAt: same.Add(-time.Minute), Identity: conv.Identity},
	}
	got := ResolveJourney(conv, candidates, 0)
	if got[0].ID != 5 || got[1].ID != 9 || got[2].ID != 3 {
		t.Fatalf("unexpected order: %d %d %d", got[0].ID, got[1].ID, got[2].ID)
	}
}
