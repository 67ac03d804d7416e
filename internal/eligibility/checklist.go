package eligibility

import (
	"fmt"

	"airdrop-scout/internal/domain"
)

// CriterionResult records pass/fail for one eligibility criterion.
type CriterionResult struct {
	Name      string
	Threshold string
	Actual    string
	Pass      bool
}

// Checklist expands a scored report into named per-criterion rows for the
// renderers. The report's Eligible verdict is the AND of the Pass values.
func Checklist(r domain.AddressReport, th domain.Thresholds) []CriterionResult {
	return []CriterionResult{
		{
			Name:      "Native balance",
			Threshold: fmt.Sprintf(">= %g", th.MinBalance),
			Actual:    fmt.Sprintf("%.6f", r.Balance),
			Pass:      r.Balance >= th.MinBalance,
		},
		{
			Name:      "Transaction count",
			Threshold: fmt.Sprintf(">= %d", th.MinTxCount),
			Actual:    fmt.Sprintf("%d", r.TxCount),
			Pass:      r.TxCount >= th.MinTxCount,
		},
		{
			Name:      "Unique contracts",
			Threshold: fmt.Sprintf(">= %d", th.MinUniqueContracts),
			Actual:    fmt.Sprintf("%d", r.UniqueContracts),
			Pass:      r.UniqueContracts >= th.MinUniqueContracts,
		},
		{
			Name:      "Active-day span",
			Threshold: fmt.Sprintf(">= %d", th.MinActiveDays),
			Actual:    fmt.Sprintf("%d", r.ActiveDays),
			Pass:      r.ActiveDays >= th.MinActiveDays,
		},
	}
}
