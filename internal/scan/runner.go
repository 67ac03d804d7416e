package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"airdrop-scout/internal/domain"
	"airdrop-scout/internal/eligibility"
	"airdrop-scout/internal/idhash"
	"airdrop-scout/internal/logging"
	"airdrop-scout/internal/storage"
)

// DefaultPace is the delay between consecutive address queries, to stay
// under free-tier explorer rate limits.
const DefaultPace = 300 * time.Millisecond

// ExplorerClient fetches per-address data from a block explorer.
type ExplorerClient interface {
	Balance(ctx context.Context, address string) (float64, error)
	Transactions(ctx context.Context, address string) ([]domain.Transaction, error)
}

// Runner walks a batch of addresses sequentially, scores each one, and
// assembles the scan report. Per-address fetch failures become error
// records; the batch keeps going.
type Runner struct {
	client  ExplorerClient
	chain   domain.Chain
	th      domain.Thresholds
	pace    time.Duration
	log     *slog.Logger
	scans   storage.ScanStore
	history storage.MetricHistoryStore
	now     func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithPace sets the delay between address queries. Zero disables pacing.
func WithPace(d time.Duration) Option {
	return func(r *Runner) {
		r.pace = d
	}
}

// WithScanStore enables persistence of scan runs and their results.
func WithScanStore(s storage.ScanStore) Option {
	return func(r *Runner) {
		r.scans = s
	}
}

// WithMetricHistory enables persistence of per-address metric snapshots.
func WithMetricHistory(s storage.MetricHistoryStore) Option {
	return func(r *Runner) {
		r.history = s
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// NewRunner creates a Runner for one chain and one threshold set.
func NewRunner(client ExplorerClient, chain domain.Chain, th domain.Thresholds, opts ...Option) *Runner {
	r := &Runner{
		client: client,
		chain:  chain,
		th:     th,
		pace:   DefaultPace,
		log:    logging.Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run scans the given addresses in order and returns the report.
// Results preserve input order. The context aborts the whole batch.
func (r *Runner) Run(ctx context.Context, addresses []string) (*domain.ScanReport, error) {
	if len(addresses) == 0 {
		return nil, fmt.Errorf("no addresses to scan")
	}

	startedAt := r.now()
	scanID := idhash.ScanID(r.chain.ID, startedAt.Unix(), addresses)

	r.log.Info("scan started",
		"scan_id", scanID,
		"chain", r.chain.ID,
		"addresses", len(addresses),
	)

	report := &domain.ScanReport{
		Chain:       r.chain.ID,
		Results:     make([]domain.AddressReport, 0, len(addresses)),
		ScanID:      scanID,
		Thresholds:  r.th,
		GeneratedAt: startedAt,
	}

	for i, addr := range addresses {
		if i > 0 && r.pace > 0 {
			if err := r.wait(ctx); err != nil {
				return nil, err
			}
		}

		rec, err := r.scoreAddress(ctx, addr)
		if err != nil {
			// Context errors abort the batch; anything else becomes
			// an error record and the batch continues.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			r.log.Warn("address scan failed", "address", addr, "error", err)
			rec = domain.AddressReport{Address: addr, Error: err.Error()}
		}
		report.Results = append(report.Results, rec)
	}

	r.persist(ctx, report)

	r.log.Info("scan finished",
		"scan_id", scanID,
		"eligible", countEligible(report.Results),
		"errors", countErrors(report.Results),
	)

	return report, nil
}

// wait sleeps for the pacing interval or until the context is cancelled.
func (r *Runner) wait(ctx context.Context) error {
	timer := time.NewTimer(r.pace)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// scoreAddress fetches balance and transactions for one address and scores it.
func (r *Runner) scoreAddress(ctx context.Context, addr string) (domain.AddressReport, error) {
	balance, err := r.client.Balance(ctx, addr)
	if err != nil {
		return domain.AddressReport{}, fmt.Errorf("balance query: %w", err)
	}

	txs, err := r.client.Transactions(ctx, addr)
	if err != nil {
		return domain.AddressReport{}, fmt.Errorf("transaction query: %w", err)
	}

	return eligibility.Score(addr, balance, txs, r.th), nil
}

// persist writes the scan and its results to the configured stores.
// Store failures are logged, not fatal: the report already exists in memory.
func (r *Runner) persist(ctx context.Context, report *domain.ScanReport) {
	if r.scans != nil {
		rec := &domain.ScanRecord{
			ScanID:       report.ScanID,
			Chain:        report.Chain,
			StartedAt:    report.GeneratedAt.Unix(),
			Thresholds:   report.Thresholds,
			AddressCount: len(report.Results),
		}
		if err := r.scans.InsertScan(ctx, rec); err != nil {
			r.log.Warn("persist scan failed", "scan_id", report.ScanID, "error", err)
		} else {
			results := make([]*domain.ScanResult, 0, len(report.Results))
			for i, res := range report.Results {
				results = append(results, &domain.ScanResult{
					ResultID:        idhash.ResultID(report.ScanID, res.Address),
					ScanID:          report.ScanID,
					Seq:             i,
					Address:         res.Address,
					Balance:         res.Balance,
					TxCount:         res.TxCount,
					UniqueContracts: res.UniqueContracts,
					ActiveDays:      res.ActiveDays,
					Eligible:        res.Eligible,
					Error:           res.Error,
				})
			}
			if err := r.scans.InsertResults(ctx, results); err != nil {
				r.log.Warn("persist results failed", "scan_id", report.ScanID, "error", err)
			}
		}
	}

	if r.history != nil {
		// Error records carry no metrics and are excluded from history.
		var points []*domain.MetricPoint
		for _, res := range report.Results {
			if res.Error != "" {
				continue
			}
			points = append(points, &domain.MetricPoint{
				ScanID:          report.ScanID,
				Chain:           report.Chain,
				Address:         res.Address,
				ObservedAt:      report.GeneratedAt.Unix(),
				Balance:         res.Balance,
				TxCount:         int64(res.TxCount),
				UniqueContracts: int64(res.UniqueContracts),
				ActiveDays:      int64(res.ActiveDays),
				Eligible:        res.Eligible,
			})
		}
		if err := r.history.InsertBulk(ctx, points); err != nil {
			r.log.Warn("persist metric history failed", "scan_id", report.ScanID, "error", err)
		}
	}
}

func countEligible(results []domain.AddressReport) int {
	n := 0
	for _, r := range results {
		if r.Eligible {
			n++
		}
	}
	return n
}

func countErrors(results []domain.AddressReport) int {
	n := 0
	for _, r := range results {
		if r.Error != "" {
			n++
		}
	}
	return n
}
