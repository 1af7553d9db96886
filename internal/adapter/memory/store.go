// Package memory implements port.AttributionRepository in process memory.
// It backs the demo mode of the CLI and the use case tests that need a real
// storage round trip.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"mesa-attribution/internal/core/attribution"
	"mesa-attribution/internal/core/domain"
	"mesa-attribution/internal/core/port"
	"mesa-attribution/internal/demo"
)

const performanceWindow = 30 * 24 * time.Hour

type dayKey struct {
	campaignID string
	date       time.Time
}

type credit struct {
	conversions float64
	value       decimal.Decimal
}

// Store is a RWMutex guarded implementation of port.AttributionRepository.
// Writes made through InTx become visible only when the callback succeeds.
type Store struct {
	mu          sync.RWMutex
	touchpoints []domain.Touchpoint
	conversions map[int64]domain.Conversion
	records     map[int64][]domain.AttributedTouchpoint
	credits     map[dayKey]credit
	spend       map[dayKey]decimal.Decimal

	lastTouchpointID int64
	lastConversionID int64
}

// New returns an empty store.
func New() *Store {
	return &Store{
		conversions: make(map[int64]domain.Conversion),
		records:     make(map[int64][]domain.AttributedTouchpoint),
		credits:     make(map[dayKey]credit),
		spend:       make(map[dayKey]decimal.Decimal),
	}
}

// AddTouchpoint stores tp under a fresh id and returns it.
func (s *Store) AddTouchpoint(tp domain.Touchpoint) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouchpointID++
	tp.ID = s.lastTouchpointID
	tp.OccurredAt = tp.OccurredAt.UTC()
	s.touchpoints = append(s.touchpoints, tp)
	return tp.ID
}

// AddConversion stores c under a fresh id and returns it.
func (s *Store) AddConversion(c domain.Conversion) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastConversionID++
	c.ID = s.lastConversionID
	c.OccurredAt = c.OccurredAt.UTC()
	s.conversions[c.ID] = c
	return c.ID
}

// AddSpend adds amount to the campaign's spend for the UTC day of date.
func (s *Store) AddSpend(campaignID string, date time.Time, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := dayKey{campaignID, day(date)}
	s.spend[k] = s.spend[k].Add(amount)
}

// Load inserts a generated dataset and returns the new conversion ids.
func (s *Store) Load(ds demo.Dataset) []int64 {
	for _, sp := range ds.Spend {
		s.AddSpend(sp.CampaignID, sp.Date, sp.Amount)
	}
	var ids []int64
	for _, v := range ds.Visitors {
		var last int64
		for _, tp := range v.Touchpoints {
			last = s.AddTouchpoint(tp)
		}
		if v.Conversion == nil {
			continue
		}
		c := *v.Conversion
		c.TouchpointID = last
		ids = append(ids, s.AddConversion(c))
	}
	return ids
}

// Records returns the stored attribution records of a conversion.
func (s *Store) Records(conversionID int64) []domain.AttributedTouchpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records[conversionID])
}

func (s *Store) FetchConversion(_ context.Context, id int64) (*domain.Conversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversions[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) FetchJourney(_ context.Context, conv domain.Conversion, window time.Duration) ([]domain.Touchpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	from := conv.OccurredAt.Add(-window)
	var out []domain.Touchpoint
	for _, tp := range s.touchpoints {
		if tp.OccurredAt.Before(from) || tp.OccurredAt.After(conv.OccurredAt) {
			continue
		}
		if conv.SharesAny(tp.Identity) {
			out = append(out, tp)
		}
	}
	return out, nil
}

func (s *Store) FetchCampaignPerformance(_ context.Context, campaignID string, asOf time.Time) (*domain.CampaignPerformance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	from := asOf.Add(-performanceWindow)

	var touches int64
	for _, tp := range s.touchpoints {
		if tp.CampaignID == campaignID && !tp.OccurredAt.Before(from) && tp.OccurredAt.Before(asOf) {
			touches++
		}
	}
	// Credit booked on the conversion's own day is excluded so that
	// re-attributing a conversion never reads back its previous run.
	first, last := day(from), day(asOf).AddDate(0, 0, -1)
	var conversions float64
	value, spend := decimal.Zero, decimal.Zero
	for k, c := range s.credits {
		if k.campaignID == campaignID && inDays(k.date, first, last) {
			conversions += c.conversions
			value = value.Add(c.value)
		}
	}
	for k, amount := range s.spend {
		if k.campaignID == campaignID && inDays(k.date, first, last) {
			spend = spend.Add(amount)
		}
	}
	return domain.NewCampaignPerformance(touches, conversions, value, spend), nil
}

func (s *Store) FetchChannelPerformance(_ context.Context, channel string, asOf time.Time) (*domain.ChannelPerformance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	from := asOf.Add(-performanceWindow)
	inWindow := func(t time.Time) bool { return !t.Before(from) && t.Before(asOf) }

	var touches, conversions int64
	channelOf := make(map[int64]string, len(s.touchpoints))
	for _, tp := range s.touchpoints {
		channelOf[tp.ID] = tp.Channel
		if tp.Channel == channel && inWindow(tp.OccurredAt) {
			touches++
		}
	}
	for _, c := range s.conversions {
		if c.TouchpointID != 0 && channelOf[c.TouchpointID] == channel && inWindow(c.OccurredAt) {
			conversions++
		}
	}
	return domain.NewChannelPerformance(touches, conversions), nil
}

func (s *Store) GetCampaignCredits(_ context.Context, req port.CreditsReq) ([]domain.CampaignCredit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	first, last := day(req.From), day(req.To)
	var out []domain.CampaignCredit
	for k, c := range s.credits {
		if !inDays(k.date, first, last) {
			continue
		}
		if req.CampaignID != nil && *req.CampaignID != k.campaignID {
			continue
		}
		out = append(out, domain.CampaignCredit{
			CampaignID:      k.campaignID,
			Date:            k.date,
			Conversions:     c.conversions,
			AttributedValue: c.value,
		})
	}
	slices.SortFunc(out, func(a, b domain.CampaignCredit) int {
		if n := a.Date.Compare(b.Date); n != 0 {
			return n
		}
		return cmp.Compare(a.CampaignID, b.CampaignID)
	})
	return out, nil
}

// InTx holds the write lock for the duration of fn. Changes are staged and
// applied only when fn returns nil.
func (s *Store) InTx(_ context.Context, fn func(w port.AttributionWriter) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := &stagedWriter{store: s, records: map[int64][]domain.AttributedTouchpoint{}, models: map[int64]string{}, credits: map[dayKey]credit{}}
	if err := fn(w); err != nil {
		return err
	}
	for id, tps := range w.records {
		s.records[id] = tps
	}
	for id, model := range w.models {
		c := s.conversions[id]
		c.AttributionModel = model
		s.conversions[id] = c
	}
	for k, c := range w.credits {
		cur, ok := s.credits[k]
		if !ok {
			cur.value = decimal.Zero
		}
		cur.conversions += c.conversions
		cur.value = cur.value.Add(c.value)
		s.credits[k] = cur
	}
	return nil
}

// stagedWriter collects writes for InTx. It runs under the store's write
// lock and must not call locking Store methods.
type stagedWriter struct {
	store   *Store
	records map[int64][]domain.AttributedTouchpoint
	models  map[int64]string
	credits map[dayKey]credit
}

func (w *stagedWriter) ReplaceAttributionTouchpoints(_ context.Context, conversionID int64, tps []domain.AttributedTouchpoint) error {
	if _, ok := w.store.conversions[conversionID]; !ok {
		return fmt.Errorf("%w: conversion %d", domain.ErrNotFound, conversionID)
	}
	w.records[conversionID] = slices.Clone(tps)
	return nil
}

func (w *stagedWriter) SetConversionAttributionModel(_ context.Context, conversionID int64, model string) error {
	if _, ok := w.store.conversions[conversionID]; !ok {
		return fmt.Errorf("%w: conversion %d", domain.ErrNotFound, conversionID)
	}
	w.models[conversionID] = model
	return nil
}

func (w *stagedWriter) AccumulateCampaignCredit(_ context.Context, campaignID string, date time.Time, conversions float64, value decimal.Decimal) error {
	k := dayKey{campaignID, day(date)}
	c, ok := w.credits[k]
	if !ok {
		c.value = decimal.Zero
	}
	c.conversions += conversions
	c.value = c.value.Add(value)
	w.credits[k] = c
	return nil
}

func day(t time.Time) time.Time {
	return attribution.ConversionDay(t)
}

func inDays(d, first, last time.Time) bool {
	return !d.Before(first) && !d.After(last)
}
