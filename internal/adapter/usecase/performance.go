package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"mesa-attribution/internal/core/domain"
)

// prefetchPerformance looks up campaign and channel performance for every
// distinct campaign and channel in the journey. Lookups are anchored at the
// conversion time so repeated runs see the same history. A failed or empty
// lookup yields zero performance; it is logged and never returned.
func (u *AttributionUseCase) prefetchPerformance(ctx context.Context, conv domain.Conversion, journey []domain.Touchpoint) domain.PerformanceSnapshot {
	var campaigns, channels []string
	seenCampaign := make(map[string]bool)
	seenChannel := make(map[string]bool)
	for _, tp := range journey {
		if tp.CampaignID != "" && !seenCampaign[tp.CampaignID] {
			seenCampaign[tp.CampaignID] = true
			campaigns = append(campaigns, tp.CampaignID)
		}
		if tp.Channel != "" && !seenChannel[tp.Channel] {
			seenChannel[tp.Channel] = true
			channels = append(channels, tp.Channel)
		}
	}

	campaignPerf := make([]domain.CampaignPerformance, len(campaigns))
	channelPerf := make([]domain.ChannelPerformance, len(channels))

	var g errgroup.Group
	g.SetLimit(u.lookupConcurrency)
	for i, id := range campaigns {
		g.Go(func() error {
			perf, err := u.repo.FetchCampaignPerformance(ctx, id, conv.OccurredAt)
			if err != nil {
				u.lookupFailed(ctx, conv.ID, "campaign", id, err)
				return nil
			}
			if perf != nil {
				campaignPerf[i] = *perf
			}
			return nil
		})
	}
	for i, ch := range channels {
		g.Go(func() error {
			perf, err := u.repo.FetchChannelPerformance(ctx, ch, conv.OccurredAt)
			if err != nil {
				u.lookupFailed(ctx, conv.ID, "channel", ch, err)
				return nil
			}
			if perf != nil {
				channelPerf[i] = *perf
			}
			return nil
		})
	}
	_ = g.Wait()

	snap := domain.PerformanceSnapshot{
		Campaigns: make(map[string]domain.CampaignPerformance, len(campaigns)),
		Channels:  make(map[string]domain.ChannelPerformance, len(channels)),
	}
	for i, id := range campaigns {
		snap.Campaigns[id] = campaignPerf[i]
	}
	for i, ch := range channels {
		snap.Channels[ch] = channelPerf[i]
	}
	return snap
}

func (u *AttributionUseCase) lookupFailed(ctx context.Context, conversionID int64, kind, key string, err error) {
	u.meters.lookupFailure(ctx, kind)
	u.logger.Warn("performance lookup failed, using zero default",
		slog.Int64("conversion_id", conversionID),
		slog.String("kind", kind),
		slog.String("key", key),
		slog.Any("error", fmt.Errorf("%w: %w", domain.ErrLookupFailure, err)),
	)
}
