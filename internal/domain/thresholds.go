package domain

// Thresholds are the four minimums an address must meet to be flagged
// eligible. All caller-supplied; the analyzer enforces no defaults of its own.
type Thresholds struct {
	MinBalance         float64 `json:"minBalance"`
	MinTxCount         int     `json:"minTx"`
	MinUniqueContracts int     `json:"minContracts"`
	MinActiveDays      int     `json:"minDays"`
}

// DefaultThresholds returns the CLI defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinBalance:         0.05,
		MinTxCount:         5,
		MinUniqueContracts: 3,
		MinActiveDays:      7,
	}
}
