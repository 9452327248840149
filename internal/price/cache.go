// =====================================
// File: internal/price/cache.go
// =====================================
package price

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultTTL is the freshness window after which a record is considered stale.
const DefaultTTL = 30 * time.Second

// refreshConcurrency bounds RefreshMany fan-out.
const refreshConcurrency = 5

// Fetcher is the live price source behind the cache.
type Fetcher interface {
	FetchTicker(ctx context.Context, symbol string) (Record, error)
	Probe(ctx context.Context) bool
}

// Cache is a per-symbol, TTL-bounded price cache. Reads are synchronous and
// never block; refreshes go to the network and convert every failure into a
// fallback record so callers always have something renderable. Records are
// stored without expiry and only ever replaced, never deleted; staleness is
// derived lazily from each record's UpdatedAt.
type Cache struct {
	fetcher Fetcher
	store   *gocache.Cache
	ttl     time.Duration
	logger  *zap.Logger
}

// NewCache creates a price cache. A non-positive ttl selects DefaultTTL.
func NewCache(fetcher Fetcher, ttl time.Duration, logger *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		fetcher: fetcher,
		store:   gocache.New(gocache.NoExpiration, 0),
		ttl:     ttl,
		logger:  logger.Named("price_cache"),
	}
}

// TTL returns the cache freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// GetPrice returns the cached record for a symbol, possibly stale or
// fallback-sourced. A symbol never seen before is seeded from the fallback
// table so the caller always receives a positive price.
func (c *Cache) GetPrice(symbol string) Record {
	if v, ok := c.store.Get(symbol); ok {
		return v.(Record)
	}
	rec := FallbackRecord(symbol)
	c.store.Set(symbol, rec, gocache.NoExpiration)
	return rec
}

// IsStale reports whether the cached record for a symbol is missing or older
// than the TTL.
func (c *Cache) IsStale(symbol string) bool {
	v, ok := c.store.Get(symbol)
	if !ok {
		return true
	}
	return v.(Record).Age() >= c.ttl
}

// RefreshPrice fetches a live record for a symbol and stores it. On failure
// an existing record is kept while it is no older than one extra TTL window;
// beyond that a fallback record is installed. The returned record is whatever
// the cache holds afterwards, never an error.
func (c *Cache) RefreshPrice(ctx context.Context, symbol string) Record {
	rec, err := c.fetcher.FetchTicker(ctx, symbol)
	if err == nil {
		c.store.Set(symbol, rec, gocache.NoExpiration)
		c.logger.Debug("Price refreshed",
			zap.String("symbol", symbol),
			zap.Float64("price", rec.Price))
		return rec
	}

	c.logger.Warn("Price fetch failed",
		zap.String("symbol", symbol),
		zap.Error(err))

	if v, ok := c.store.Get(symbol); ok {
		prev := v.(Record)
		if prev.Age() < 2*c.ttl {
			return prev
		}
	}

	fb := FallbackRecord(symbol)
	c.store.Set(symbol, fb, gocache.NoExpiration)
	return fb
}

// RefreshMany refreshes a set of symbols concurrently. Each symbol settles
// independently: one symbol's API failure never blocks or invalidates
// another's result.
func (c *Cache) RefreshMany(ctx context.Context, symbols []string) map[string]Record {
	results := make(map[string]Record, len(symbols))
	recs := make([]Record, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)
	for i, symbol := range symbols {
		g.Go(func() error {
			recs[i] = c.RefreshPrice(gctx, symbol)
			return nil
		})
	}
	// RefreshPrice never returns an error, so Wait cannot fail.
	_ = g.Wait()

	for i, symbol := range symbols {
		results[symbol] = recs[i]
	}
	return results
}

// TestConnectivity probes the live endpoint without touching cached records.
func (c *Cache) TestConnectivity(ctx context.Context) bool {
	return c.fetcher.Probe(ctx)
}
