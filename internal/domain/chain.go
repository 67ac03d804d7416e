package domain

import "sort"

// Chain describes one Etherscan-compatible explorer endpoint.
type Chain struct {
	ID       string // CLI identifier ("eth", "arb", "opt")
	Name     string
	APIBase  string
	KeyEnv   string // environment variable holding the explorer API key
	Symbol   string
	Decimals int
}

// chains is the registry of supported explorers. Public endpoints work without
// an API key, subject to the explorer's rate limits.
var chains = map[string]Chain{
	"eth": {
		ID:       "eth",
		Name:     "Ethereum",
		APIBase:  "https://api.etherscan.io/api",
		KeyEnv:   "ETHERSCAN_API_KEY",
		Symbol:   "ETH",
		Decimals: 18,
	},
	"arb": {
		ID:       "arb",
		Name:     "Arbitrum One",
		APIBase:  "https://api.arbiscan.io/api",
		KeyEnv:   "ARBISCAN_API_KEY",
		Symbol:   "ETH",
		Decimals: 18,
	},
	"opt": {
		ID:       "opt",
		Name:     "Optimism",
		APIBase:  "https://api-optimistic.etherscan.io/api",
		KeyEnv:   "OPTSCAN_API_KEY",
		Symbol:   "ETH",
		Decimals: 18,
	},
}

// ChainByID looks up a chain by its CLI identifier.
func ChainByID(id string) (Chain, bool) {
	c, ok := chains[id]
	return c, ok
}

// ChainIDs returns the supported chain identifiers in sorted order.
func ChainIDs() []string {
	ids := make([]string, 0, len(chains))
	for id := range chains {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
