package reporting

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"airdrop-scout/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON persists the report artifact, a {chain, results} document.
func WriteJSON(path string, r *domain.ScanReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}
