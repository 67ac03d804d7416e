package config

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"airdrop-scout/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Profile is an optional JSON file carrying threshold defaults and pacing.
// Flags override any value set here.
type Profile struct {
	MinBalance         *float64 `json:"minBalance"`
	MinTxCount         *int     `json:"minTx"`
	MinUniqueContracts *int     `json:"minContracts"`
	MinActiveDays      *int     `json:"minDays"`
	PaceMs             *int     `json:"paceMs"`
}

// LoadProfile reads a threshold profile from a JSON file.
func LoadProfile(path string) (*Profile, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(file, &p); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &p, nil
}

// Apply overlays the profile's set values on top of the given thresholds.
func (p *Profile) Apply(th domain.Thresholds) domain.Thresholds {
	if p.MinBalance != nil {
		th.MinBalance = *p.MinBalance
	}
	if p.MinTxCount != nil {
		th.MinTxCount = *p.MinTxCount
	}
	if p.MinUniqueContracts != nil {
		th.MinUniqueContracts = *p.MinUniqueContracts
	}
	if p.MinActiveDays != nil {
		th.MinActiveDays = *p.MinActiveDays
	}
	return th
}
