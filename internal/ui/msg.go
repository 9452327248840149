// internal/ui/msg.go
package ui

import (
	"github.com/altwatt/dexboard/internal/bridge"
	"github.com/altwatt/dexboard/internal/price"
	"github.com/altwatt/dexboard/internal/quote"
)

// PricesRefreshedMsg carries one completed price refresh cycle.
type PricesRefreshedMsg struct {
	Records map[string]price.Record
}

// QuoteMsg carries a recomputed swap quote.
type QuoteMsg struct {
	Quote quote.SwapQuote
}

// ConnectivityMsg reports the ticker endpoint reachability probe.
type ConnectivityMsg struct {
	Online bool
}

// NetworkSwitchedMsg reports a completed (or failed) chain switch.
type NetworkSwitchedMsg struct {
	ChainID int64
	Err     error
}

// BridgeFeeMsg carries a bridge fee estimate for the bridge screen.
type BridgeFeeMsg struct {
	Estimate bridge.FeeEstimate
}

// TransferStatusMsg carries a bridge transfer lookup result.
type TransferStatusMsg struct {
	Status bridge.TransferStatus
	Err    error
}

// SlowTickMsg drives the periodic connectivity probe.
type SlowTickMsg struct{}

// FastTickMsg drives the 5s active-pair refresh and position drift.
type FastTickMsg struct{}
