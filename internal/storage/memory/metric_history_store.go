package memory

import (
	"context"
	"sort"
	"sync"

	"airdrop-scout/internal/domain"
	"airdrop-scout/internal/storage"
)

// MetricHistoryStore is an in-memory implementation of storage.MetricHistoryStore.
type MetricHistoryStore struct {
	mu     sync.RWMutex
	points []*domain.MetricPoint
}

// NewMetricHistoryStore creates a new in-memory metric history store.
func NewMetricHistoryStore() *MetricHistoryStore {
	return &MetricHistoryStore{}
}

// InsertBulk appends metric snapshots. Empty batches are a no-op.
func (s *MetricHistoryStore) InsertBulk(_ context.Context, points []*domain.MetricPoint) error {
	if len(points) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range points {
		if p == nil || p.Address == "" {
			return storage.ErrInvalidInput
		}
	}
	for _, p := range points {
		pCopy := *p
		s.points = append(s.points, &pCopy)
	}
	return nil
}

// GetByAddress retrieves snapshots for an address on one chain, oldest first.
func (s *MetricHistoryStore) GetByAddress(_ context.Context, chain, address string) ([]*domain.MetricPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.MetricPoint
	for _, p := range s.points {
		if p.Chain == chain && p.Address == address {
			pCopy := *p
			out = append(out, &pCopy)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ObservedAt < out[j].ObservedAt
	})

	return out, nil
}

// Verify interface compliance at compile time.
var _ storage.MetricHistoryStore = (*MetricHistoryStore)(nil)
