package domain

// ScanRecord is a persisted scan run.
// Corresponds to the scans table in PostgreSQL.
type ScanRecord struct {
	ScanID       string // PRIMARY KEY, deterministic hash
	Chain        string
	StartedAt    int64 // unix seconds
	Thresholds   Thresholds
	AddressCount int
}

// ScanResult is one persisted per-address row of a scan.
// Corresponds to the scan_results table in PostgreSQL.
type ScanResult struct {
	ResultID        string // PRIMARY KEY, deterministic hash
	ScanID          string
	Seq             int // 0-based input order within the scan
	Address         string
	Balance         float64
	TxCount         int
	UniqueContracts int
	ActiveDays      int
	Eligible        bool
	Error           string
}

// MetricPoint is one per-address snapshot of derived metrics, recorded per
// scan so repeated runs build a history. Corresponds to the metric_history
// table in ClickHouse.
type MetricPoint struct {
	ScanID          string
	Chain           string
	Address         string
	ObservedAt      int64 // unix seconds
	Balance         float64
	TxCount         int64
	UniqueContracts int64
	ActiveDays      int64
	Eligible        bool
}
