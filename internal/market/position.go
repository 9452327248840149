// =====================================
// File: internal/market/position.go
// =====================================
package market

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// PositionSide marks a perpetual position direction.
type PositionSide string

const (
	SideLong  PositionSide = "long"
	SideShort PositionSide = "short"
)

// PositionRecord describes one perpetual position shown on the dashboard.
type PositionRecord struct {
	ID               string       `json:"id"`
	Symbol           string       `json:"symbol"`
	Side             PositionSide `json:"side"`
	Size             float64      `json:"size"`
	EntryPrice       float64      `json:"entry_price"`
	MarkPrice        float64      `json:"mark_price"`
	Leverage         float64      `json:"leverage"`
	LiquidationPrice float64      `json:"liquidation_price"`
	UnrealizedPnL    float64      `json:"unrealized_pnl"`
	OpenedAt         time.Time    `json:"opened_at"`
}

// PositionBook generates and tracks the demo perpetual positions. Mark prices
// drift deterministically from a fixed seed so screens render stable content
// across runs.
type PositionBook struct {
	mu        sync.RWMutex
	positions []PositionRecord
	rng       *rand.Rand
}

// NewPositionBook seeds the book with the demo position set.
func NewPositionBook() *PositionBook {
	b := &PositionBook{rng: rand.New(rand.NewSource(2330))}
	b.positions = b.demoPositions()
	return b
}

// Positions returns a copy of the current position set.
func (b *PositionBook) Positions() []PositionRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]PositionRecord, len(b.positions))
	copy(out, b.positions)
	return out
}

// Tick drifts every mark price by a small bounded step and recomputes
// unrealized PnL. Called from the UI refresh loop.
func (b *PositionBook) Tick() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.positions {
		p := &b.positions[i]
		drift := 1 + (b.rng.Float64()-0.5)*0.004
		p.MarkPrice *= drift
		p.UnrealizedPnL = pnl(*p)
	}
}

func pnl(p PositionRecord) float64 {
	diff := p.MarkPrice - p.EntryPrice
	if p.Side == SideShort {
		diff = -diff
	}
	return diff * p.Size
}

func (b *PositionBook) demoPositions() []PositionRecord {
	base := []struct {
		symbol   string
		side     PositionSide
		size     float64
		entry    float64
		leverage float64
	}{
		{"ETH", SideLong, 2.5, 3150.0, 5},
		{"BNB", SideShort, 40.0, 612.0, 3},
		{"ALT", SideLong, 500000.0, 0.000165, 2},
	}

	now := time.Now()
	out := make([]PositionRecord, 0, len(base))
	for i, s := range base {
		mark := s.entry * (1 + (b.rng.Float64()-0.5)*0.02)
		liq := s.entry * (1 - 0.9/s.leverage)
		if s.side == SideShort {
			liq = s.entry * (1 + 0.9/s.leverage)
		}
		p := PositionRecord{
			ID:               fmt.Sprintf("pos-%d", i+1),
			Symbol:           s.symbol,
			Side:             s.side,
			Size:             s.size,
			EntryPrice:       s.entry,
			MarkPrice:        mark,
			Leverage:         s.leverage,
			LiquidationPrice: liq,
			OpenedAt:         now.Add(-time.Duration(i+1) * time.Hour),
		}
		p.UnrealizedPnL = pnl(p)
		out = append(out, p)
	}
	return out
}
