// =====================================
// File: internal/price/client.go
// =====================================
package price

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	apiKeyHeader   = "X-MBX-APIKEY"
	fetchTimeout   = 10 * time.Second
	probeTimeout   = 3 * time.Second
	quoteCurrency  = "USDT"
	probeSymbol    = "ETH"
	tickerEndpoint = "/ticker/24hr"
)

// tickerResponse mirrors the 24h ticker payload. Every numeric field arrives
// as a decimal string from an untrusted endpoint and is parsed defensively.
type tickerResponse struct {
	LastPrice          string `json:"lastPrice"`
	PriceChange        string `json:"priceChange"`
	PriceChangePercent string `json:"priceChangePercent"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	Volume             string `json:"volume"`
	QuoteVolume        string `json:"quoteVolume"`
}

// TickerClient fetches 24h ticker statistics for one symbol at a time.
type TickerClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewTickerClient creates a ticker client for the given REST base URL.
func NewTickerClient(baseURL, apiKey string, logger *zap.Logger) *TickerClient {
	return &TickerClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: fetchTimeout},
		logger:     logger.Named("ticker_client"),
	}
}

// pairFor maps a token symbol to the exchange pair queried for it.
func pairFor(symbol string) string {
	if symbol == quoteCurrency {
		// The quote currency itself has no SELF/SELF pair; price it off USDC.
		return "USDC" + quoteCurrency
	}
	return symbol + quoteCurrency
}

// FetchTicker retrieves and validates the 24h ticker for a symbol. Any
// transport error, non-2xx status, or payload whose price does not parse to a
// finite positive number is returned as an error; callers decide the fallback.
func (c *TickerClient) FetchTicker(ctx context.Context, symbol string) (Record, error) {
	endpoint := fmt.Sprintf("%s%s?symbol=%s", c.baseURL, tickerEndpoint, url.QueryEscape(pairFor(symbol)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Record{}, fmt.Errorf("build ticker request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Record{}, fmt.Errorf("ticker request for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Record{}, fmt.Errorf("ticker request for %s: status %d", symbol, resp.StatusCode)
	}

	var payload tickerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Record{}, fmt.Errorf("decode ticker for %s: %w", symbol, err)
	}

	last, err := strconv.ParseFloat(payload.LastPrice, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid lastPrice %q for %s: %w", payload.LastPrice, symbol, err)
	}
	if math.IsNaN(last) || math.IsInf(last, 0) || last <= 0 {
		return Record{}, fmt.Errorf("non-positive lastPrice %v for %s", last, symbol)
	}

	rec := Record{
		Symbol:           symbol,
		Price:            last,
		Change24h:        parseFloatOrZero(payload.PriceChange),
		ChangePercent24h: parseFloatOrZero(payload.PriceChangePercent),
		High24h:          parseFloatOrZero(payload.HighPrice),
		Low24h:           parseFloatOrZero(payload.LowPrice),
		Volume24h:        parseFloatOrZero(payload.Volume),
		UpdatedAt:        time.Now(),
		Source:           SourceLive,
	}
	return rec, nil
}

// Probe performs a lightweight reachability check with a short timeout.
func (c *TickerClient) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	_, err := c.FetchTicker(probeCtx, probeSymbol)
	if err != nil {
		c.logger.Debug("Connectivity probe failed", zap.Error(err))
		return false
	}
	return true
}

// parseFloatOrZero parses a secondary display field. These fields are
// cosmetic; a malformed value degrades to 0 rather than failing the record.
func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
