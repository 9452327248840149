// =====================================
// File: internal/bridge/types.go
// =====================================
// Package bridge queries an external cross-chain bridge indexer for fee
// quotes and transfer status. The indexer is an untrusted collaborator:
// responses are optimistically parsed and any shape mismatch degrades to
// fallback constants.
package bridge

import "time"

// TransferState is the lifecycle state reported by the indexer.
type TransferState string

const (
	StatePending   TransferState = "pending"
	StateRelaying  TransferState = "relaying"
	StateCompleted TransferState = "completed"
	StateFailed    TransferState = "failed"
	StateUnknown   TransferState = "unknown"
)

// FeeEstimate is a bridge fee quote for moving an asset between chains.
type FeeEstimate struct {
	FromChainID  int64
	ToChainID    int64
	Symbol       string
	FeePercent   float64
	MinFee       float64
	EstimatedETA time.Duration
	// Fallback marks an estimate synthesized from constants because the
	// indexer was unreachable or returned an unusable payload.
	Fallback bool
}

// TransferStatus describes one in-flight or settled cross-chain transfer.
type TransferStatus struct {
	ID          string
	State       TransferState
	FromChainID int64
	ToChainID   int64
	Symbol      string
	Amount      string
	TxHash      string
	UpdatedAt   time.Time
}

// Fallback fee constants used when the indexer cannot be consulted.
const (
	fallbackFeePercent = 0.5
	fallbackMinFee     = 1.0
	fallbackETA        = 15 * time.Minute
)

// FallbackFeeEstimate builds the constant-based estimate for a route.
func FallbackFeeEstimate(fromChainID, toChainID int64, symbol string) FeeEstimate {
	return FeeEstimate{
		FromChainID:  fromChainID,
		ToChainID:    toChainID,
		Symbol:       symbol,
		FeePercent:   fallbackFeePercent,
		MinFee:       fallbackMinFee,
		EstimatedETA: fallbackETA,
		Fallback:     true,
	}
}
