// =====================================
// File: internal/bridge/client.go
// =====================================
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const (
	requestTimeout = 10 * time.Second
	statusMaxTries = 4
)

type feeResponse struct {
	FeePercent       string `json:"feePercent"`
	MinFee           string `json:"minFee"`
	EstimatedSeconds int64  `json:"estimatedSeconds"`
}

type transferResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	FromChain int64  `json:"fromChain"`
	ToChain   int64  `json:"toChain"`
	Symbol    string `json:"symbol"`
	Amount    string `json:"amount"`
	TxHash    string `json:"txHash"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Client talks to the bridge indexer REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a bridge indexer client.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger.Named("bridge_client"),
	}
}

// FeeQuote asks the indexer for the fee to bridge amount of symbol between
// two chains. Every failure path (transport, status, shape) yields the
// fallback constant estimate instead of an error.
func (c *Client) FeeQuote(ctx context.Context, fromChainID, toChainID int64, symbol, amount string) FeeEstimate {
	endpoint := fmt.Sprintf("%s/v1/fee?fromChain=%d&toChain=%d&symbol=%s&amount=%s",
		c.baseURL, fromChainID, toChainID, url.QueryEscape(symbol), url.QueryEscape(amount))

	var payload feeResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		c.logger.Warn("Bridge fee quote failed, using fallback constants",
			zap.Int64("from_chain", fromChainID),
			zap.Int64("to_chain", toChainID),
			zap.Error(err))
		return FallbackFeeEstimate(fromChainID, toChainID, symbol)
	}

	feePercent, err1 := strconv.ParseFloat(payload.FeePercent, 64)
	minFee, err2 := strconv.ParseFloat(payload.MinFee, 64)
	if err1 != nil || err2 != nil ||
		math.IsNaN(feePercent) || feePercent < 0 || minFee < 0 {
		c.logger.Warn("Bridge fee quote returned unusable payload, using fallback constants",
			zap.String("fee_percent", payload.FeePercent),
			zap.String("min_fee", payload.MinFee))
		return FallbackFeeEstimate(fromChainID, toChainID, symbol)
	}

	eta := time.Duration(payload.EstimatedSeconds) * time.Second
	if eta <= 0 {
		eta = fallbackETA
	}

	return FeeEstimate{
		FromChainID:  fromChainID,
		ToChainID:    toChainID,
		Symbol:       symbol,
		FeePercent:   feePercent,
		MinFee:       minFee,
		EstimatedETA: eta,
	}
}

// TransferStatus polls the indexer for a transfer, retrying transient
// failures with exponential backoff. An unknown transfer id is permanent.
func (c *Client) TransferStatus(ctx context.Context, transferID string) (TransferStatus, error) {
	endpoint := fmt.Sprintf("%s/v1/transfer/%s", c.baseURL, url.PathEscape(transferID))

	operation := func() (TransferStatus, error) {
		var payload transferResponse
		if err := c.getJSONStatus(ctx, endpoint, &payload); err != nil {
			return TransferStatus{}, err
		}
		return TransferStatus{
			ID:          payload.ID,
			State:       parseState(payload.Status),
			FromChainID: payload.FromChain,
			ToChainID:   payload.ToChain,
			Symbol:      payload.Symbol,
			Amount:      payload.Amount,
			TxHash:      payload.TxHash,
			UpdatedAt:   time.Unix(payload.UpdatedAt, 0),
		}, nil
	}

	status, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(statusMaxTries))
	if err != nil {
		return TransferStatus{ID: transferID, State: StateUnknown}, fmt.Errorf("transfer status for %s: %w", transferID, err)
	}
	return status, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bridge request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("bridge request: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode bridge response: %w", err)
	}
	return nil
}

// getJSONStatus is getJSON with 404 marked permanent so backoff stops early.
func (c *Client) getJSONStatus(ctx context.Context, endpoint string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("build request: %w", err))
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bridge request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return backoff.Permanent(fmt.Errorf("transfer not found"))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("bridge request: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode bridge response: %w", err)
	}
	return nil
}

func parseState(s string) TransferState {
	switch TransferState(s) {
	case StatePending, StateRelaying, StateCompleted, StateFailed:
		return TransferState(s)
	default:
		return StateUnknown
	}
}
