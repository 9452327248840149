// =====================================
// File: internal/price/feed.go
// =====================================
package price

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// UpdateCallback receives the refreshed records after each feed cycle.
type UpdateCallback func(records map[string]Record)

// Feed periodically refreshes a symbol set and hands the results to a
// callback. The symbol set can be swapped while the feed runs (network
// switches). Teardown is a timer-clear: Stop prevents further cycles but does
// not cancel a fetch already in flight.
type Feed struct {
	mu       sync.Mutex
	cache    *Cache
	symbols  []string
	interval time.Duration
	callback UpdateCallback
	logger   *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewFeed creates a feed for the given symbols and interval.
func NewFeed(cache *Cache, symbols []string, interval time.Duration, logger *zap.Logger, callback UpdateCallback) *Feed {
	ctx, cancel := context.WithCancel(context.Background())
	return &Feed{
		cache:    cache,
		symbols:  symbols,
		interval: interval,
		callback: callback,
		logger:   logger.Named("price_feed"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SetSymbols replaces the symbol set refreshed on subsequent cycles.
func (f *Feed) SetSymbols(symbols []string) {
	f.mu.Lock()
	f.symbols = append([]string(nil), symbols...)
	f.mu.Unlock()
}

func (f *Feed) currentSymbols() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.symbols...)
}

// Start runs the feed loop until Stop is called. The first refresh happens
// immediately. Start blocks; run it on its own goroutine.
func (f *Feed) Start() {
	f.logger.Info("Starting price feed",
		zap.Strings("symbols", f.currentSymbols()),
		zap.Duration("interval", f.interval))

	f.refresh()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f.refresh()
		case <-f.ctx.Done():
			f.logger.Debug("Price feed stopped")
			return
		}
	}
}

// Stop halts scheduling of further refreshes.
func (f *Feed) Stop() {
	if f.cancel != nil {
		f.cancel()
	}
}

func (f *Feed) refresh() {
	ctx, cancel := context.WithTimeout(f.ctx, fetchTimeout+time.Second)
	defer cancel()

	records := f.cache.RefreshMany(ctx, f.currentSymbols())
	if f.callback != nil {
		f.callback(records)
	}
}
