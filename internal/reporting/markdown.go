package reporting

import (
	"fmt"
	"strings"
	"time"

	"airdrop-scout/internal/domain"
	"airdrop-scout/internal/eligibility"
)

// RenderMarkdown renders the report as Markdown with a per-address
// criteria breakdown.
func RenderMarkdown(r *domain.ScanReport) string {
	var sb strings.Builder

	eligible := 0
	failed := 0
	for _, res := range r.Results {
		if res.Eligible {
			eligible++
		}
		if res.Error != "" {
			failed++
		}
	}

	sb.WriteString("# Airdrop Eligibility Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.UTC().Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Chain: %s | Addresses: %d | Eligible: %d | Errors: %d\n\n",
		r.Chain, len(r.Results), eligible, failed))

	sb.WriteString("## Thresholds\n\n")
	sb.WriteString("| Criterion | Minimum |\n")
	sb.WriteString("|-----------|---------|\n")
	sb.WriteString(fmt.Sprintf("| Native balance | %g |\n", r.Thresholds.MinBalance))
	sb.WriteString(fmt.Sprintf("| Transaction count | %d |\n", r.Thresholds.MinTxCount))
	sb.WriteString(fmt.Sprintf("| Unique contracts | %d |\n", r.Thresholds.MinUniqueContracts))
	sb.WriteString(fmt.Sprintf("| Active-day span | %d |\n", r.Thresholds.MinActiveDays))
	sb.WriteString("\n")

	sb.WriteString("## Results\n\n")
	if len(r.Results) > 0 {
		sb.WriteString("| Address | Balance | Tx | Contracts | Active Days | Eligible |\n")
		sb.WriteString("|---------|---------|----|-----------|-------------|----------|\n")
		for _, res := range r.Results {
			if res.Error != "" {
				sb.WriteString(fmt.Sprintf("| %s | - | - | - | - | ERR: %s |\n",
					res.Address, res.Error))
				continue
			}
			verdict := "NO"
			if res.Eligible {
				verdict = "YES"
			}
			sb.WriteString(fmt.Sprintf("| %s | %.6f | %d | %d | %d | %s |\n",
				res.Address, res.Balance, res.TxCount, res.UniqueContracts,
				res.ActiveDays, verdict))
		}
	} else {
		sb.WriteString("No results.\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Criteria\n\n")
	for _, res := range r.Results {
		if res.Error != "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("### %s\n\n", res.Address))
		sb.WriteString("| Criterion | Threshold | Actual | Status |\n")
		sb.WriteString("|-----------|-----------|--------|--------|\n")
		for _, check := range eligibility.Checklist(res, r.Thresholds) {
			status := "FAIL"
			if check.Pass {
				status = "PASS"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				check.Name, check.Threshold, check.Actual, status))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
