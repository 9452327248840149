// internal/ui/services.go
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/altwatt/dexboard/internal/bridge"
	"github.com/altwatt/dexboard/internal/config"
	"github.com/altwatt/dexboard/internal/events"
	"github.com/altwatt/dexboard/internal/market"
	"github.com/altwatt/dexboard/internal/price"
	"github.com/altwatt/dexboard/internal/quote"
	"github.com/altwatt/dexboard/internal/registry"
	"github.com/altwatt/dexboard/internal/ui/state"
	"github.com/altwatt/dexboard/internal/walletconn"
)

// Services bundles the constructor-injected service objects the dashboard
// renders from. Nothing here is a package global.
type Services struct {
	Cfg       *config.Config
	Logger    *zap.Logger
	Registry  *registry.Registry
	Engine    *quote.Engine
	Prices    *price.Cache
	Pools     *market.PoolBook
	Positions *market.PositionBook
	Bridge    *bridge.Client
	Wallet    walletconn.Provider
	Bus       *events.Bus
	State     *state.Cache
	Feed      *price.Feed
}

// refreshPricesCmd refreshes all symbols for the active chain on demand
// (startup of a freshly switched chain); the periodic cycle is driven by the
// price feed. Failures are absorbed inside the cache, so the message always
// carries renderable records. The state cache picks the batch up off the bus.
func (s *Services) refreshPricesCmd(symbols []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		records := s.Prices.RefreshMany(ctx, symbols)
		_ = s.Bus.Publish(events.NewPriceUpdated(records))
		return PricesRefreshedMsg{Records: records}
	}
}

// quoteCmd recomputes the swap quote for the current form state.
func (s *Services) quoteCmd(chainKey, fromSym, toSym, amount string, slippageBps int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		q := s.Engine.Quote(ctx, chainKey, fromSym, toSym, amount, quote.WithSlippageBps(slippageBps))
		if !q.IsZero() {
			_ = s.Bus.Publish(events.NewQuoteComputed(q))
		}
		return QuoteMsg{Quote: q}
	}
}

// connectivityCmd probes the ticker endpoint for the status header.
func (s *Services) connectivityCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		online := s.Prices.TestConnectivity(ctx)
		s.State.SetOnline(online)
		return ConnectivityMsg{Online: online}
	}
}

// switchNetworkCmd asks the wallet provider to activate a chain, adding it
// first when the wallet does not know it. Errors surface as a transient
// notice, never a blocking failure.
func (s *Services) switchNetworkCmd(chainID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if s.Wallet == nil {
			_ = s.Bus.Publish(events.NewNetworkSwitched(chainID))
			return NetworkSwitchedMsg{ChainID: chainID}
		}

		err := s.Wallet.SwitchChain(ctx, chainID)
		if err != nil {
			if network := s.Registry.GetNetwork(chainID); network != nil {
				if addErr := s.Wallet.AddChain(ctx, *network); addErr == nil {
					err = s.Wallet.SwitchChain(ctx, chainID)
				}
			}
		}
		if err == nil {
			_ = s.Bus.Publish(events.NewNetworkSwitched(chainID))
		}
		return NetworkSwitchedMsg{ChainID: chainID, Err: err}
	}
}

// bridgeFeeCmd fetches a bridge fee estimate; fallback constants arrive on
// any indexer failure.
func (s *Services) bridgeFeeCmd(fromChainID, toChainID int64, symbol, amount string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return BridgeFeeMsg{Estimate: s.Bridge.FeeQuote(ctx, fromChainID, toChainID, symbol, amount)}
	}
}

// transferStatusCmd looks up a bridge transfer by id. Successful lookups are
// published so subscribers see the status change.
func (s *Services) transferStatusCmd(transferID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		status, err := s.Bridge.TransferStatus(ctx, transferID)
		if err == nil {
			_ = s.Bus.Publish(events.NewTransferUpdated(status))
		}
		return TransferStatusMsg{Status: status, Err: err}
	}
}

func slowTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return SlowTickMsg{} })
}

func fastTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return FastTickMsg{} })
}
