package addrbook

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrNoValidAddresses is returned when no input survives validation.
// The CLI treats this as fatal before any fetch.
var ErrNoValidAddresses = errors.New("no valid EVM addresses provided")

var addressRe = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// Load resolves each input as either a file of addresses (one per line) or a
// literal address. Matches are lower-cased and deduped preserving first-seen
// order; non-matching lines are dropped silently. EIP-55 checksums are not
// verified: mixed-case input is folded to lower case, a known limitation of
// this heuristic tool.
func Load(inputs []string) ([]string, error) {
	var raw []string
	for _, in := range inputs {
		if info, err := os.Stat(in); err == nil && !info.IsDir() {
			lines, err := readLines(in)
			if err != nil {
				return nil, fmt.Errorf("read address file %s: %w", in, err)
			}
			raw = append(raw, lines...)
			continue
		}
		raw = append(raw, in)
	}

	seen := make(map[string]struct{})
	var out []string
	for _, a := range raw {
		a = strings.TrimSpace(a)
		if !addressRe.MatchString(a) {
			continue
		}
		a = "0x" + strings.ToLower(a[2:])
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}

	if len(out) == 0 {
		return nil, ErrNoValidAddresses
	}
	return out, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
