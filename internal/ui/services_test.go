// internal/ui/services_test.go
package ui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/altwatt/dexboard/internal/config"
	"github.com/altwatt/dexboard/internal/events"
	"github.com/altwatt/dexboard/internal/market"
	"github.com/altwatt/dexboard/internal/price"
	"github.com/altwatt/dexboard/internal/quote"
	"github.com/altwatt/dexboard/internal/registry"
	"github.com/altwatt/dexboard/internal/ui/state"
)

// stubFetcher serves every symbol at a fixed live price.
type stubFetcher struct{}

func (stubFetcher) FetchTicker(_ context.Context, symbol string) (price.Record, error) {
	return price.Record{Symbol: symbol, Price: 42, UpdatedAt: time.Now(), Source: price.SourceLive}, nil
}

func (stubFetcher) Probe(context.Context) bool { return true }

func testServices(t *testing.T) *Services {
	t.Helper()
	logger := zaptest.NewLogger(t)
	reg := registry.New(nil, logger)
	pools := market.NewPoolBook()

	bus := events.NewBus(logger, 16)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = bus.Shutdown(ctx)
	})

	return &Services{
		Cfg:       &config.Config{DefaultChainID: 2330},
		Logger:    logger,
		Registry:  reg,
		Engine:    quote.NewEngine(reg, pools, logger),
		Prices:    price.NewCache(stubFetcher{}, price.DefaultTTL, logger),
		Pools:     pools,
		Positions: market.NewPositionBook(),
		Bus:       bus,
		State:     state.NewCache(logger),
	}
}

func TestRefreshPricesReachesWiredStateCache(t *testing.T) {
	svcs := testServices(t)
	svcs.State.Wire(svcs.Bus)

	msg := svcs.refreshPricesCmd([]string{"ALT", "WATT"})()
	refreshed, ok := msg.(PricesRefreshedMsg)
	assert.True(t, ok)
	assert.Len(t, refreshed.Records, 2)

	// Delivery rides the bus, so the snapshot fills in shortly after.
	assert.Eventually(t, func() bool {
		rec, ok := svcs.State.Record("ALT")
		return ok && rec.Price == 42
	}, time.Second, 5*time.Millisecond)
}

func TestQuoteReachesWiredStateCache(t *testing.T) {
	svcs := testServices(t)
	svcs.State.Wire(svcs.Bus)

	msg := svcs.quoteCmd("2330", "ALT", "WATT", "100", 50)()
	quoted, ok := msg.(QuoteMsg)
	assert.True(t, ok)
	assert.Equal(t, "150.000000", quoted.Quote.ToAmount)

	assert.Eventually(t, func() bool {
		return svcs.State.Quote().ToAmount == "150.000000"
	}, time.Second, 5*time.Millisecond)
}
