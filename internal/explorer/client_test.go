package explorer

import (
	"context"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"airdrop-scout/internal/domain"
)

func testChain() domain.Chain {
	return domain.Chain{
		ID:       "eth",
		Name:     "Ethereum",
		APIBase:  "https://api.etherscan.io/api",
		KeyEnv:   "ETHERSCAN_API_KEY",
		Symbol:   "ETH",
		Decimals: 18,
	}
}

func TestClient_Balance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("module") != "account" || q.Get("action") != "balance" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Get("address") != "0xabc" {
			t.Errorf("expected address 0xabc, got %s", q.Get("address"))
		}
		if q.Get("tag") != "latest" {
			t.Errorf("expected tag latest, got %s", q.Get("tag"))
		}

		resp := map[string]interface{}{
			"status":  "1",
			"message": "OK",
			"result":  "1500000000000000000", // 1.5 ETH in wei
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(testChain(), WithBaseURL(server.URL))

	bal, err := client.Balance(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if bal != 1.5 {
		t.Errorf("expected balance 1.5, got %f", bal)
	}
}

func TestClient_Balance_APIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("apikey"); got != "secret" {
			t.Errorf("expected apikey secret, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "1", "message": "OK", "result": "0",
		})
	}))
	defer server.Close()

	client := NewClient(testChain(), WithBaseURL(server.URL), WithAPIKey("secret"))

	if _, err := client.Balance(context.Background(), "0xabc"); err != nil {
		t.Fatalf("Balance: %v", err)
	}
}

func TestClient_Balance_NonNumericResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "0",
			"message": "NOTOK",
			"result":  "Max rate limit reached",
		})
	}))
	defer server.Close()

	client := NewClient(testChain(), WithBaseURL(server.URL))

	if _, err := client.Balance(context.Background(), "0xabc"); err == nil {
		t.Fatal("expected error for non-numeric balance result")
	}
}

func TestClient_Balance_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testChain(), WithBaseURL(server.URL))

	if _, err := client.Balance(context.Background(), "0xabc"); err == nil {
		t.Fatal("expected error for HTTP 500")
	}
}

func TestClient_Transactions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "txlist" {
			t.Errorf("expected action txlist, got %s", q.Get("action"))
		}
		if q.Get("sort") != "asc" {
			t.Errorf("expected sort asc, got %s", q.Get("sort"))
		}
		if q.Get("startblock") != "0" || q.Get("endblock") != "99999999" {
			t.Errorf("unexpected block range: %s..%s", q.Get("startblock"), q.Get("endblock"))
		}

		resp := map[string]interface{}{
			"status":  "1",
			"message": "OK",
			"result": []map[string]string{
				{"to": "0xAAA0000000000000000000000000000000000001", "input": "0x1234", "timeStamp": "1000"},
				{"to": "", "input": "0x", "timeStamp": "2000"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(testChain(), WithBaseURL(server.URL))

	txs, err := client.Transactions(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].To == nil || *txs[0].To != "0xAAA0000000000000000000000000000000000001" {
		t.Errorf("unexpected first destination: %v", txs[0].To)
	}
	if txs[0].TimeStamp != "1000" {
		t.Errorf("expected timestamp 1000, got %s", txs[0].TimeStamp)
	}
	// Empty string stays distinguishable from absent.
	if txs[1].To == nil || *txs[1].To != "" {
		t.Errorf("expected empty-string destination, got %v", txs[1].To)
	}
}

func TestClient_Transactions_NoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "0",
			"message": "No transactions found",
			"result":  []interface{}{},
		})
	}))
	defer server.Close()

	client := NewClient(testChain(), WithBaseURL(server.URL))

	txs, err := client.Transactions(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("expected empty list on no-data status, got %d", len(txs))
	}
}

func TestClient_Transactions_MalformedResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "1",
			"message": "OK",
			"result":  "unexpected string payload",
		})
	}))
	defer server.Close()

	client := NewClient(testChain(), WithBaseURL(server.URL))

	txs, err := client.Transactions(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("expected empty list on unparsable result, got %d", len(txs))
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "1", "message": "OK", "result": "0",
		})
	}))
	defer server.Close()

	client := NewClient(testChain(), WithBaseURL(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Balance(ctx, "0xabc"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestToUnit(t *testing.T) {
	cases := []struct {
		wei      string
		decimals int
		want     float64
	}{
		{"0", 18, 0},
		{"1000000000000000000", 18, 1},
		{"50000000000000000", 18, 0.05},
		{"123450000", 8, 1.2345},
	}

	for _, tc := range cases {
		b, ok := new(big.Int).SetString(tc.wei, 10)
		if !ok {
			t.Fatalf("bad test input %s", tc.wei)
		}
		if got := toUnit(b, tc.decimals); got != tc.want {
			t.Errorf("toUnit(%s, %d) = %f, want %f", tc.wei, tc.decimals, got, tc.want)
		}
	}
}
