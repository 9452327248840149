// internal/ui/state/cache.go
package state

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/altwatt/dexboard/internal/events"
	"github.com/altwatt/dexboard/internal/price"
	"github.com/altwatt/dexboard/internal/quote"
)

// Cache is the thread-safe snapshot the view layer renders from. Values are
// replaced wholesale; readers always get copies.
type Cache struct {
	mu      sync.RWMutex
	records map[string]price.Record
	quote   quote.SwapQuote
	online  bool
	updated time.Time
	logger  *zap.Logger
}

// NewCache creates an empty UI state cache.
func NewCache(logger *zap.Logger) *Cache {
	return &Cache{
		records: make(map[string]price.Record),
		logger:  logger.Named("ui_state"),
	}
}

// Wire subscribes the cache to the bus events it snapshots. Price batches and
// computed quotes then flow in through the bus instead of direct setter calls.
// The subscriptions stay attached for the life of the bus.
func (c *Cache) Wire(bus *events.Bus) []events.Subscription {
	return []events.Subscription{
		bus.SubscribeFunc(events.TypePriceUpdated, func(_ context.Context, e events.Event) error {
			if evt, ok := e.(events.PriceUpdated); ok {
				c.SetRecords(evt.Records)
			}
			return nil
		}),
		bus.SubscribeFunc(events.TypeQuoteComputed, func(_ context.Context, e events.Event) error {
			if evt, ok := e.(events.QuoteComputed); ok {
				c.SetQuote(evt.Quote)
			}
			return nil
		}),
	}
}

// SetRecords merges a refresh batch into the snapshot.
func (c *Cache) SetRecords(records map[string]price.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for symbol, rec := range records {
		c.records[symbol] = rec
	}
	c.updated = time.Now()
}

// Record returns the snapshot entry for one symbol.
func (c *Cache) Record(symbol string) (price.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.records[symbol]
	return rec, ok
}

// Records returns a copy of all snapshot entries.
func (c *Cache) Records() map[string]price.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]price.Record, len(c.records))
	for symbol, rec := range c.records {
		out[symbol] = rec
	}
	return out
}

// SetQuote stores the latest computed swap quote.
func (c *Cache) SetQuote(q quote.SwapQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quote = q
}

// Quote returns the latest computed swap quote.
func (c *Cache) Quote() quote.SwapQuote {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.quote
}

// SetOnline stores the last connectivity probe result.
func (c *Cache) SetOnline(online bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.online = online
}

// Online returns the last connectivity probe result.
func (c *Cache) Online() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.online
}

// LastUpdated returns when the snapshot last changed.
func (c *Cache) LastUpdated() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updated
}
