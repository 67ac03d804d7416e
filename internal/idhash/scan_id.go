package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// ScanID computes a deterministic scan identifier.
// Formula: SHA256(chain|startedAt|addr1,addr2,...)
// Returns hex-encoded hash (64 characters).
func ScanID(chain string, startedAt int64, addresses []string) string {
	data := fmt.Sprintf("%s|%d|%s", chain, startedAt, strings.Join(addresses, ","))
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// ResultID ties one address's result row to its scan.
// Formula: SHA256(scanID|address)
func ResultID(scanID, address string) string {
	hash := sha256.Sum256([]byte(scanID + "|" + address))
	return hex.EncodeToString(hash[:])
}
