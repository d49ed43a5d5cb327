package etherscan

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/solaudit/solaudit/internal/domain"
)

const defaultBaseURL = "https://api.etherscan.io/v2/api"

// Client implements domain.SourceFetcher against the Etherscan contract
// source API.
type Client struct {
	baseURL string
	apiKey  string
	chainID int
	http    *http.Client
}

// New creates a Client from the etherscan section of the scan config.
func New(cfg domain.EtherscanConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	chain := cfg.ChainID
	if chain == 0 {
		chain = 1 // mainnet
	}
	return &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		chainID: chain,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// apiResponse mirrors the getsourcecode envelope. Result is a list even for
// a single contract.
type apiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  []struct {
		SourceCode   string `json:"SourceCode"`
		ContractName string `json:"ContractName"`
		ABI          string `json:"ABI"`
	} `json:"result"`
}

// FetchSource downloads the verified source of a contract by address.
// Unverified contracts are an error: there is nothing to scan.
func (c *Client) FetchSource(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("empty contract address")
	}

	q := url.Values{}
	q.Set("chainid", strconv.Itoa(c.chainID))
	q.Set("module", "contract")
	q.Set("action", "getsourcecode")
	q.Set("address", address)
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}

	resp, err := c.http.Get(c.baseURL + "?" + q.Encode())
	if err != nil {
		return "", fmt.Errorf("fetching contract source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("etherscan returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", fmt.Errorf("reading etherscan response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parsing etherscan response: %w", err)
	}

	if parsed.Status != "1" || len(parsed.Result) == 0 {
		return "", fmt.Errorf("etherscan lookup failed for %s: %s", address, parsed.Message)
	}

	source := normalizeSource(parsed.Result[0].SourceCode)
	if source == "" {
		return "", fmt.Errorf("contract %s has no verified source", address)
	}
	return source, nil
}

// normalizeSource unwraps the double-brace JSON envelope Etherscan uses for
// multi-file submissions and concatenates the files; single-file sources
// pass through untouched.
func normalizeSource(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{{") {
		return raw
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "{"), "}")
	var envelope struct {
		Sources map[string]struct {
			Content string `json:"content"`
		} `json:"sources"`
	}
	if err := json.Unmarshal([]byte(inner), &envelope); err != nil {
		return raw
	}

	names := make([]string, 0, len(envelope.Sources))
	for name := range envelope.Sources {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "// File: %s\n%s\n", name, envelope.Sources[name].Content)
	}
	return b.String()
}
