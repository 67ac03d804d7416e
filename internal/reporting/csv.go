package reporting

import (
	"fmt"
	"strings"

	"airdrop-scout/internal/domain"
)

// RenderCSV renders per-address results as a CSV string.
func RenderCSV(r *domain.ScanReport) string {
	var sb strings.Builder

	sb.WriteString("address,balance,tx_count,contracts,active_days,eligible,error\n")

	for _, res := range r.Results {
		sb.WriteString(fmt.Sprintf("%s,%.6f,%d,%d,%d,%t,%s\n",
			res.Address,
			res.Balance,
			res.TxCount,
			res.UniqueContracts,
			res.ActiveDays,
			res.Eligible,
			csvField(res.Error),
		))
	}

	return sb.String()
}

// csvField quotes a value when it would break the row.
func csvField(v string) string {
	if strings.ContainsAny(v, ",\"\n") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}
