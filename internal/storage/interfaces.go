package storage

import (
	"context"

	"airdrop-scout/internal/domain"
)

// ScanStore provides access to scan run storage.
type ScanStore interface {
	// InsertScan adds a scan run. Returns ErrDuplicateKey if scan_id exists.
	InsertScan(ctx context.Context, s *domain.ScanRecord) error

	// InsertResults adds the per-address rows of a scan.
	// Fails the entire batch on any duplicate result_id.
	InsertResults(ctx context.Context, results []*domain.ScanResult) error

	// GetScan retrieves a scan run. Returns ErrNotFound if not exists.
	GetScan(ctx context.Context, scanID string) (*domain.ScanRecord, error)

	// GetResultsByScan retrieves a scan's rows ordered by input position.
	GetResultsByScan(ctx context.Context, scanID string) ([]*domain.ScanResult, error)

	// GetResultsByAddress retrieves every stored row for an address across scans.
	GetResultsByAddress(ctx context.Context, address string) ([]*domain.ScanResult, error)
}

// MetricHistoryStore provides access to per-address metric snapshots.
type MetricHistoryStore interface {
	// InsertBulk appends metric snapshots. Empty batches are a no-op.
	InsertBulk(ctx context.Context, points []*domain.MetricPoint) error

	// GetByAddress retrieves snapshots for an address on one chain,
	// ordered by observed_at ASC.
	GetByAddress(ctx context.Context, chain, address string) ([]*domain.MetricPoint, error)
}
