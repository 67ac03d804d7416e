package explorer

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"

	"airdrop-scout/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultTimeout bounds a single explorer request.
const DefaultTimeout = 20 * time.Second

// Client queries one Etherscan-compatible explorer for account data.
// Calls are single-shot: there is no retry or back-off, callers pace
// themselves between requests.
type Client struct {
	chain  domain.Chain
	base   string
	apiKey string
	client *http.Client
}

// Option configures Client.
type Option func(*Client)

// WithAPIKey attaches an explorer API key to every request.
// An empty key leaves requests keyless (public endpoint).
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithBaseURL overrides the chain's API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.base = u
	}
}

// NewClient creates an explorer client for the given chain.
func NewClient(chain domain.Chain, opts ...Option) *Client {
	c := &Client{
		chain:  chain,
		base:   chain.APIBase,
		client: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// accountResponse is the generic Etherscan response envelope. Result is a
// decimal string for balance queries and an array for list queries.
type accountResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Result  jsoniter.RawMessage `json:"result"`
}

// get performs one account-module request and returns the raw body.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	params.Set("module", "account")
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// Balance returns the address's native balance converted from the chain's
// smallest unit to its display unit.
func (c *Client) Balance(ctx context.Context, address string) (float64, error) {
	params := url.Values{}
	params.Set("action", "balance")
	params.Set("address", address)
	params.Set("tag", "latest")

	body, err := c.get(ctx, params)
	if err != nil {
		return 0, err
	}

	var envelope accountResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return 0, fmt.Errorf("decode balance response: %w", err)
	}

	var raw string
	if err := json.Unmarshal(envelope.Result, &raw); err != nil {
		return 0, fmt.Errorf("decode balance result: %w", err)
	}

	wei, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return 0, fmt.Errorf("balance result %q is not an integer", raw)
	}

	return toUnit(wei, c.chain.Decimals), nil
}

// Transactions returns the address's transaction list in explorer order
// (oldest first). A non-OK explorer status or an unparsable list yields an
// empty slice, not an error: no-data and error statuses share the same
// envelope shape and the scan treats both as an empty history.
func (c *Client) Transactions(ctx context.Context, address string) ([]domain.Transaction, error) {
	params := url.Values{}
	params.Set("action", "txlist")
	params.Set("address", address)
	params.Set("startblock", "0")
	params.Set("endblock", "99999999")
	params.Set("sort", "asc")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var envelope accountResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode txlist response: %w", err)
	}
	if envelope.Status != "1" {
		return nil, nil
	}

	var txs []domain.Transaction
	if err := json.Unmarshal(envelope.Result, &txs); err != nil {
		return nil, nil
	}
	return txs, nil
}

// toUnit converts from the chain's smallest unit using its decimals.
func toUnit(wei *big.Int, decimals int) float64 {
	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	out, _ := new(big.Float).Quo(
		new(big.Float).SetInt(wei),
		new(big.Float).SetInt(div),
	).Float64()
	return out
}
