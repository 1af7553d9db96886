package attribution

import (
	"slices"
	"time"

	"mesa-attribution/internal/core/domain"
)

// ResolveJourney keeps the candidates that belong to the conversion's
// visitor and orders them by time.
//
// A candidate belongs when it happened inside [conv-window, conv] (both
// ends inclusive) and shares any identity key with the conversion. The OR
// across keys favours recall: visitors behind one network address are
// merged into a single journey. A conversion without identity keys has an
// empty journey. Ties on timestamp keep candidate order.
func ResolveJourney(conv domain.Conversion, candidates []domain.Touchpoint, window time.Duration) []domain.Touchpoint {
	if !conv.HasAny() {
		return []domain.Touchpoint{}
	}
	if window <= 0 {
		window = DefaultLookbackWindow
	}
	from := conv.OccurredAt.Add(-window)

	journey := make([]domain.Touchpoint, 0, len(candidates))
	for _, tp := range candidates {
		if tp.OccurredAt.Before(from) || tp.OccurredAt.After(conv.OccurredAt) {
			continue
		}
		if !conv.SharesAny(tp.Identity) {
			continue
		}
		journey = append(journey, tp)
	}
	slices.SortStableFunc(journey, func(a, b domain.Touchpoint) int {
		return a.OccurredAt.Compare(b.OccurredAt)
	})
	return journey
}
