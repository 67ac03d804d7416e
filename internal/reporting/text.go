package reporting

import (
	"fmt"
	"strings"
	"time"

	"airdrop-scout/internal/domain"
)

// RenderText renders the report as the plain run log printed to stdout.
func RenderText(r *domain.ScanReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# AirDrop Eligibility Scout — %s\n",
		r.GeneratedAt.UTC().Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("# chain=%s thresholds: balance>=%g, tx>=%d, contracts>=%d, days>=%d\n",
		r.Chain,
		r.Thresholds.MinBalance,
		r.Thresholds.MinTxCount,
		r.Thresholds.MinUniqueContracts,
		r.Thresholds.MinActiveDays,
	))

	for _, res := range r.Results {
		if res.Error != "" {
			sb.WriteString(fmt.Sprintf("ERR %s :: %s\n", res.Address, res.Error))
			continue
		}
		flag := "❌"
		if res.Eligible {
			flag = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s %s  bal=%.6f  tx=%d  uniq=%d  days=%d\n",
			flag, res.Address, res.Balance, res.TxCount, res.UniqueContracts, res.ActiveDays))
	}

	return sb.String()
}
