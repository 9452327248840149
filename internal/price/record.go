// =====================================
// File: internal/price/record.go
// =====================================
// Package price maintains a TTL-bounded per-symbol cache of spot prices
// sourced from an external ticker API, with deterministic fallback values.
package price

import "time"

// Source tags where a record's value came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Record is one cached price observation. Records are immutable value
// objects: the cache only ever replaces them wholesale. Price is always > 0.
type Record struct {
	Symbol           string    `json:"symbol"`
	Price            float64   `json:"price"`
	Change24h        float64   `json:"change_24h"`
	ChangePercent24h float64   `json:"change_percent_24h"`
	High24h          float64   `json:"high_24h"`
	Low24h           float64   `json:"low_24h"`
	Volume24h        float64   `json:"volume_24h"`
	UpdatedAt        time.Time `json:"updated_at"`
	Source           Source    `json:"source"`
}

// Age returns how long ago the record was written.
func (r Record) Age() time.Duration {
	return time.Since(r.UpdatedAt)
}

// fallbackPrices is the static table substituted when live data is
// unavailable. Values are deliberate product constants; ALT in particular is
// pinned at 0.000173 and referenced by display code and tests.
var fallbackPrices = map[string]float64{
	"ALT":   0.000173,
	"wALT":  0.000173,
	"WATT":  0.00026,
	"ETH":   3200.0,
	"WETH":  3200.0,
	"BNB":   590.0,
	"WBNB":  590.0,
	"POL":   0.42,
	"WPOL":  0.42,
	"USDT":  1.0,
	"USDC":  1.0,
	"BUSD":  1.0,
	"ETHO":  0.0011,
	"WETHO": 0.0011,
}

// defaultFallbackPrice covers symbols absent from the table so GetPrice can
// always return a renderable, positive price.
const defaultFallbackPrice = 0.000001

// FallbackRecord builds a fallback-sourced record for a symbol.
func FallbackRecord(symbol string) Record {
	p, ok := fallbackPrices[symbol]
	if !ok {
		p = defaultFallbackPrice
	}
	return Record{
		Symbol:    symbol,
		Price:     p,
		UpdatedAt: time.Now(),
		Source:    SourceFallback,
	}
}
