package memory

import (
	"context"
	"sort"
	"sync"

	"airdrop-scout/internal/domain"
	"airdrop-scout/internal/storage"
)

// ScanStore is an in-memory implementation of storage.ScanStore.
type ScanStore struct {
	mu      sync.RWMutex
	scans   map[string]*domain.ScanRecord // keyed by scan_id
	results map[string]*domain.ScanResult // keyed by result_id
}

// NewScanStore creates a new in-memory scan store.
func NewScanStore() *ScanStore {
	return &ScanStore{
		scans:   make(map[string]*domain.ScanRecord),
		results: make(map[string]*domain.ScanResult),
	}
}

// InsertScan adds a scan run. Returns ErrDuplicateKey if scan_id exists.
func (s *ScanStore) InsertScan(_ context.Context, rec *domain.ScanRecord) error {
	if rec == nil || rec.ScanID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.scans[rec.ScanID]; exists {
		return storage.ErrDuplicateKey
	}

	// Store a copy to prevent external mutation
	recCopy := *rec
	s.scans[rec.ScanID] = &recCopy
	return nil
}

// InsertResults adds per-address rows. Fails the entire batch on any duplicate.
func (s *ScanStore) InsertResults(_ context.Context, results []*domain.ScanResult) error {
	if len(results) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(results))
	for _, r := range results {
		if r == nil || r.ResultID == "" {
			return storage.ErrInvalidInput
		}
		if _, dup := seen[r.ResultID]; dup {
			return storage.ErrDuplicateKey
		}
		if _, exists := s.results[r.ResultID]; exists {
			return storage.ErrDuplicateKey
		}
		seen[r.ResultID] = struct{}{}
	}

	for _, r := range results {
		resCopy := *r
		s.results[r.ResultID] = &resCopy
	}
	return nil
}

// GetScan retrieves a scan run. Returns ErrNotFound if not exists.
func (s *ScanStore) GetScan(_ context.Context, scanID string) (*domain.ScanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.scans[scanID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	recCopy := *rec
	return &recCopy, nil
}

// GetResultsByScan retrieves a scan's rows ordered by input position.
func (s *ScanStore) GetResultsByScan(_ context.Context, scanID string) ([]*domain.ScanResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.ScanResult
	for _, r := range s.results {
		if r.ScanID == scanID {
			resCopy := *r
			out = append(out, &resCopy)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Seq < out[j].Seq
	})

	return out, nil
}

// GetResultsByAddress retrieves every stored row for an address across scans.
func (s *ScanStore) GetResultsByAddress(_ context.Context, address string) ([]*domain.ScanResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.ScanResult
	for _, r := range s.results {
		if r.Address == address {
			resCopy := *r
			out = append(out, &resCopy)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ScanID != out[j].ScanID {
			return out[i].ScanID < out[j].ScanID
		}
		return out[i].Seq < out[j].Seq
	})

	return out, nil
}

// Verify interface compliance at compile time.
var _ storage.ScanStore = (*ScanStore)(nil)
