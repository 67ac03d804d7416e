package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"airdrop-scout/internal/domain"
	"airdrop-scout/internal/storage"
)

// ScanStore implements storage.ScanStore using PostgreSQL.
type ScanStore struct {
	pool *Pool
}

// NewScanStore creates a new ScanStore.
func NewScanStore(pool *Pool) *ScanStore {
	return &ScanStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ScanStore = (*ScanStore)(nil)

// InsertScan adds a scan run. Returns ErrDuplicateKey if scan_id exists.
func (s *ScanStore) InsertScan(ctx context.Context, rec *domain.ScanRecord) error {
	if rec == nil || rec.ScanID == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO scans (
			scan_id, chain, started_at,
			min_balance, min_tx_count, min_unique_contracts, min_active_days,
			address_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.pool.Exec(ctx, query,
		rec.ScanID,
		rec.Chain,
		rec.StartedAt,
		rec.Thresholds.MinBalance,
		rec.Thresholds.MinTxCount,
		rec.Thresholds.MinUniqueContracts,
		rec.Thresholds.MinActiveDays,
		rec.AddressCount,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}

// InsertResults adds per-address rows in a single transaction.
// Fails the entire batch on any duplicate result_id.
func (s *ScanStore) InsertResults(ctx context.Context, results []*domain.ScanResult) error {
	if len(results) == 0 {
		return nil
	}
	for _, r := range results {
		if r == nil || r.ResultID == "" {
			return storage.ErrInvalidInput
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO scan_results (
			result_id, scan_id, seq, address,
			balance, tx_count, unique_contracts, active_days,
			eligible, error
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for _, r := range results {
		_, err := tx.Exec(ctx, query,
			r.ResultID,
			r.ScanID,
			r.Seq,
			r.Address,
			r.Balance,
			r.TxCount,
			r.UniqueContracts,
			r.ActiveDays,
			r.Eligible,
			r.Error,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert scan result: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit results: %w", err)
	}
	return nil
}

// GetScan retrieves a scan run. Returns ErrNotFound if not exists.
func (s *ScanStore) GetScan(ctx context.Context, scanID string) (*domain.ScanRecord, error) {
	query := `
		SELECT scan_id, chain, started_at,
			min_balance, min_tx_count, min_unique_contracts, min_active_days,
			address_count
		FROM scans
		WHERE scan_id = $1
	`

	row := s.pool.QueryRow(ctx, query, scanID)

	var rec domain.ScanRecord
	err := row.Scan(
		&rec.ScanID,
		&rec.Chain,
		&rec.StartedAt,
		&rec.Thresholds.MinBalance,
		&rec.Thresholds.MinTxCount,
		&rec.Thresholds.MinUniqueContracts,
		&rec.Thresholds.MinActiveDays,
		&rec.AddressCount,
	)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get scan by id: %w", err)
	}
	return &rec, nil
}

// GetResultsByScan retrieves a scan's rows ordered by input position.
func (s *ScanStore) GetResultsByScan(ctx context.Context, scanID string) ([]*domain.ScanResult, error) {
	query := `
		SELECT result_id, scan_id, seq, address,
			balance, tx_count, unique_contracts, active_days,
			eligible, error
		FROM scan_results
		WHERE scan_id = $1
		ORDER BY seq ASC
	`

	rows, err := s.pool.Query(ctx, query, scanID)
	if err != nil {
		return nil, fmt.Errorf("get results by scan: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// GetResultsByAddress retrieves every stored row for an address across scans.
func (s *ScanStore) GetResultsByAddress(ctx context.Context, address string) ([]*domain.ScanResult, error) {
	query := `
		SELECT r.result_id, r.scan_id, r.seq, r.address,
			r.balance, r.tx_count, r.unique_contracts, r.active_days,
			r.eligible, r.error
		FROM scan_results r
		JOIN scans s ON s.scan_id = r.scan_id
		WHERE r.address = $1
		ORDER BY s.started_at ASC, r.seq ASC
	`

	rows, err := s.pool.Query(ctx, query, address)
	if err != nil {
		return nil, fmt.Errorf("get results by address: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// scanResults scans multiple rows into a slice of ScanResult.
func scanResults(rows pgx.Rows) ([]*domain.ScanResult, error) {
	var results []*domain.ScanResult

	for rows.Next() {
		var r domain.ScanResult
		err := rows.Scan(
			&r.ResultID,
			&r.ScanID,
			&r.Seq,
			&r.Address,
			&r.Balance,
			&r.TxCount,
			&r.UniqueContracts,
			&r.ActiveDays,
			&r.Eligible,
			&r.Error,
		)
		if err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		results = append(results, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate result rows: %w", err)
	}

	return results, nil
}
