package clickhouse

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"airdrop-scout/internal/domain"
	"airdrop-scout/internal/storage"
)

// MetricHistoryStore implements storage.MetricHistoryStore using ClickHouse.
type MetricHistoryStore struct {
	conn *Conn
}

// NewMetricHistoryStore creates a new MetricHistoryStore.
func NewMetricHistoryStore(conn *Conn) *MetricHistoryStore {
	return &MetricHistoryStore{conn: conn}
}

// Compile-time interface check.
var _ storage.MetricHistoryStore = (*MetricHistoryStore)(nil)

// InsertBulk adds one metric snapshot per address for a scan.
func (s *MetricHistoryStore) InsertBulk(ctx context.Context, points []*domain.MetricPoint) error {
	if len(points) == 0 {
		return nil
	}
	for _, p := range points {
		if p == nil || p.ScanID == "" || p.Address == "" {
			return storage.ErrInvalidInput
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO metric_history (
			scan_id, chain, address, observed_at,
			balance, tx_count, unique_contracts, active_days, eligible
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, p := range points {
		err = batch.Append(
			p.ScanID, p.Chain, p.Address, p.ObservedAt,
			p.Balance, p.TxCount, p.UniqueContracts, p.ActiveDays, p.Eligible,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByAddress retrieves an address's snapshots on a chain, ordered by
// observation time ASC.
func (s *MetricHistoryStore) GetByAddress(ctx context.Context, chain, address string) ([]*domain.MetricPoint, error) {
	query := `
		SELECT scan_id, chain, address, observed_at,
			balance, tx_count, unique_contracts, active_days, eligible
		FROM metric_history
		WHERE chain = ? AND address = ?
		ORDER BY observed_at ASC
	`

	rows, err := s.conn.Query(ctx, query, chain, address)
	if err != nil {
		return nil, fmt.Errorf("query by address: %w", err)
	}
	defer rows.Close()

	return scanMetricPoints(rows)
}

// scanMetricPoints scans multiple rows.
func scanMetricPoints(rows driver.Rows) ([]*domain.MetricPoint, error) {
	var points []*domain.MetricPoint

	for rows.Next() {
		var p domain.MetricPoint
		err := rows.Scan(
			&p.ScanID, &p.Chain, &p.Address, &p.ObservedAt,
			&p.Balance, &p.TxCount, &p.UniqueContracts, &p.ActiveDays, &p.Eligible,
		)
		if err != nil {
			return nil, fmt.Errorf("scan metric history row: %w", err)
		}
		points = append(points, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate metric history rows: %w", err)
	}

	return points, nil
}
