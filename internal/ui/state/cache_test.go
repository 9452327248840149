// internal/ui/state/cache_test.go
package state

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/altwatt/dexboard/internal/events"
	"github.com/altwatt/dexboard/internal/price"
	"github.com/altwatt/dexboard/internal/quote"
)

func TestSetRecordsMerges(t *testing.T) {
	c := NewCache(zaptest.NewLogger(t))

	c.SetRecords(map[string]price.Record{
		"ALT": {Symbol: "ALT", Price: 0.000173},
		"ETH": {Symbol: "ETH", Price: 3200},
	})
	c.SetRecords(map[string]price.Record{
		"ETH": {Symbol: "ETH", Price: 3300},
	})

	eth, ok := c.Record("ETH")
	assert.True(t, ok)
	assert.Equal(t, 3300.0, eth.Price)

	// Symbols absent from the second batch survive the merge.
	alt, ok := c.Record("ALT")
	assert.True(t, ok)
	assert.Equal(t, 0.000173, alt.Price)

	assert.False(t, c.LastUpdated().IsZero())
}

func TestRecordsReturnsCopy(t *testing.T) {
	c := NewCache(zaptest.NewLogger(t))
	c.SetRecords(map[string]price.Record{"ALT": {Symbol: "ALT", Price: 1}})

	snapshot := c.Records()
	snapshot["ALT"] = price.Record{Symbol: "ALT", Price: 999}

	original, _ := c.Record("ALT")
	assert.Equal(t, 1.0, original.Price)
}

func TestQuoteAndOnline(t *testing.T) {
	c := NewCache(zaptest.NewLogger(t))

	assert.Empty(t, c.Quote().ToAmount)
	c.SetQuote(quote.SwapQuote{ToAmount: "150.000000", Mode: quote.ModeFallback})
	assert.Equal(t, "150.000000", c.Quote().ToAmount)

	assert.False(t, c.Online())
	c.SetOnline(true)
	assert.True(t, c.Online())
}

func TestWireSnapshotsBusEvents(t *testing.T) {
	logger := zaptest.NewLogger(t)
	bus := events.NewBus(logger, 16)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = bus.Shutdown(ctx)
	})

	c := NewCache(logger)
	c.Wire(bus)

	require.NoError(t, bus.PublishSync(context.Background(), events.NewPriceUpdated(map[string]price.Record{
		"ALT": {Symbol: "ALT", Price: 0.000173},
	})))
	rec, ok := c.Record("ALT")
	require.True(t, ok, "price batches published on the bus land in the snapshot")
	assert.Equal(t, 0.000173, rec.Price)

	require.NoError(t, bus.PublishSync(context.Background(),
		events.NewQuoteComputed(quote.SwapQuote{ToAmount: "150.000000", Mode: quote.ModeFallback})))
	assert.Equal(t, "150.000000", c.Quote().ToAmount)
}
