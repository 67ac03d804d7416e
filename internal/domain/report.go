package domain

import "time"

// AddressReport is the scored outcome for a single address. Error is set on
// per-address fetch failures; such records always carry Eligible=false.
type AddressReport struct {
	Address         string  `json:"address"`
	Balance         float64 `json:"balance"`
	TxCount         int     `json:"tx_count"`
	UniqueContracts int     `json:"contracts"`
	ActiveDays      int     `json:"active_days"`
	Eligible        bool    `json:"eligible"`
	Error           string  `json:"error,omitempty"`
}

// ScanReport is the outcome of one batch run. Only Chain and Results go into
// the persisted JSON artifact; the rest is run metadata for renderers and
// stores.
type ScanReport struct {
	Chain       string          `json:"chain"`
	Results     []AddressReport `json:"results"`
	ScanID      string          `json:"-"`
	Thresholds  Thresholds      `json:"-"`
	GeneratedAt time.Time       `json:"-"`
}
