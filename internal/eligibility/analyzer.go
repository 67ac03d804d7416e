package eligibility

import (
	"strconv"
	"strings"

	"airdrop-scout/internal/domain"
)

const secondsPerDay = 86400

// Metrics are the derived counters over one address's transaction history.
type Metrics struct {
	TxCount         int
	UniqueContracts int
	ActiveDays      int
}

// Analyze computes derived metrics from a raw transaction history.
// The history is trusted to be in chronological order and is not re-sorted.
// Analyze never fails: unparsable timestamps degrade ActiveDays to 0.
func Analyze(txs []domain.Transaction) Metrics {
	m := Metrics{TxCount: len(txs)}
	if len(txs) == 0 {
		return m
	}

	contracts := make(map[string]struct{})
	for _, tx := range txs {
		var to string
		if tx.To != nil {
			to = strings.ToLower(*tx.To)
		}
		// Contract interaction heuristic: call data beyond the bare "0x" marker.
		if strings.HasPrefix(to, "0x") && tx.Input != nil && len(*tx.Input) > 2 {
			contracts[to] = struct{}{}
		}
	}
	m.UniqueContracts = len(contracts)

	first, errFirst := strconv.ParseInt(txs[0].TimeStamp, 10, 64)
	last, errLast := strconv.ParseInt(txs[len(txs)-1].TimeStamp, 10, 64)
	if errFirst == nil && errLast == nil {
		days := int((last - first) / secondsPerDay)
		if days < 1 {
			days = 1
		}
		m.ActiveDays = days
	}

	return m
}

// Score evaluates an address against thresholds: the verdict is the AND of
// the four minimum checks. Pure function over its inputs.
func Score(address string, balance float64, txs []domain.Transaction, th domain.Thresholds) domain.AddressReport {
	m := Analyze(txs)
	return domain.AddressReport{
		Address:         address,
		Balance:         balance,
		TxCount:         m.TxCount,
		UniqueContracts: m.UniqueContracts,
		ActiveDays:      m.ActiveDays,
		Eligible: balance >= th.MinBalance &&
			m.TxCount >= th.MinTxCount &&
			m.UniqueContracts >= th.MinUniqueContracts &&
			m.ActiveDays >= th.MinActiveDays,
	}
}
