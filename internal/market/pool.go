// =====================================
// File: internal/market/pool.go
// =====================================
// Package market carries the explicit, tagged records behind the pools and
// positions screens. The records replace loosely-shaped objects with fixed
// fields; icons are opaque identifier strings resolved by the view layer.
package market

import (
	"context"
	"math/big"
	"strings"
	"sync"

	"github.com/altwatt/dexboard/internal/quote"
	"github.com/altwatt/dexboard/internal/registry"
)

// PoolDescriptor describes one liquidity pool. Reserves are raw token units.
type PoolDescriptor struct {
	ChainID  int64    `json:"chain_id"`
	Address  string   `json:"address"`
	TokenA   string   `json:"token_a"`
	TokenB   string   `json:"token_b"`
	ReserveA *big.Int `json:"reserve_a"`
	ReserveB *big.Int `json:"reserve_b"`
	FeeBps   int      `json:"fee_bps"`
	TVLUSD   float64  `json:"tvl_usd"`
	APR      float64  `json:"apr"`
	IconID   string   `json:"icon_id"`
}

// PoolBook holds the pool set shown on the dashboard and doubles as the quote
// engine's reserve source. Pools key off token contract addresses, so pairs
// involving a chain's native coin never match and take the fixed-rate path.
type PoolBook struct {
	mu    sync.RWMutex
	pools []PoolDescriptor
}

// NewPoolBook creates a book seeded with the demo pool set.
func NewPoolBook() *PoolBook {
	return &PoolBook{pools: demoPools()}
}

// Pools returns a copy of the current pool set.
func (b *PoolBook) Pools() []PoolDescriptor {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]PoolDescriptor, len(b.pools))
	copy(out, b.pools)
	return out
}

// PoolsForChain filters the book by chain.
func (b *PoolBook) PoolsForChain(chainID int64) []PoolDescriptor {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []PoolDescriptor
	for _, p := range b.pools {
		if p.ChainID == chainID {
			out = append(out, p)
		}
	}
	return out
}

// Reserves implements quote.ReserveSource. It reports ok=false when no pool
// tracks the pair, which routes the quote to the fallback rate table.
func (b *PoolBook) Reserves(_ context.Context, chainID int64, from, to registry.TokenDescriptor) (quote.PairReserves, bool, error) {
	if from.Address == "" || to.Address == "" {
		return quote.PairReserves{}, false, nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, p := range b.pools {
		if p.ChainID != chainID {
			continue
		}
		if strings.EqualFold(p.TokenA, from.Address) && strings.EqualFold(p.TokenB, to.Address) {
			return quote.PairReserves{ReserveIn: p.ReserveA, ReserveOut: p.ReserveB}, true, nil
		}
		if strings.EqualFold(p.TokenB, from.Address) && strings.EqualFold(p.TokenA, to.Address) {
			return quote.PairReserves{ReserveIn: p.ReserveB, ReserveOut: p.ReserveA}, true, nil
		}
	}
	return quote.PairReserves{}, false, nil
}

// eth converts a whole-token count into raw 18-decimal units.
func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

// demoPools is the fixed pool set shown until live pool indexing lands.
func demoPools() []PoolDescriptor {
	return []PoolDescriptor{
		{
			ChainID:  2330,
			Address:  "0x9a2b1cD87f5A5dE1b3f6A4c8E2d9b7C4f1E0aB35",
			TokenA:   "0x48721ADeFE5b97101722c0866c2AffCE797C32b6", // wALT
			TokenB:   "0x6645143e49B3a15d8F205658903a55E520444698", // WATT
			ReserveA: eth(4_000_000),
			ReserveB: eth(6_000_000),
			FeeBps:   30,
			TVLUSD:   2490.0,
			APR:      14.2,
			IconID:   "alt-watt",
		},
		{
			ChainID:  2330,
			Address:  "0x5fB7E3a19Dd44C2aE0b1B8c7F6a2D3e4C5b6A701",
			TokenA:   "0x48721ADeFE5b97101722c0866c2AffCE797C32b6", // wALT
			TokenB:   "0x332730a4F6E03D9C55829435f10360E13cfA41Ff", // USDT
			ReserveA: eth(11_500_000),
			ReserveB: new(big.Int).Mul(big.NewInt(1_990), big.NewInt(1_000_000)), // 6 decimals
			FeeBps:   30,
			TVLUSD:   3980.0,
			APR:      9.8,
			IconID:   "alt-usdt",
		},
		{
			ChainID:  1,
			Address:  "0x0d4a11d5EEaaC28EC3F61d100daF4d40471f1852",
			TokenA:   "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", // WETH
			TokenB:   "0xdAC17F958D2ee523a2206206994597C13D831ec7", // USDT
			ReserveA: eth(18_200),
			ReserveB: new(big.Int).Mul(big.NewInt(58_240_000), big.NewInt(1_000_000)),
			FeeBps:   30,
			TVLUSD:   116_480_000.0,
			APR:      4.1,
			IconID:   "eth-usdt",
		},
		{
			ChainID:  56,
			Address:  "0x16b9a82891338f9bA80E2D6970FddA79D1eb0daE",
			TokenA:   "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c", // WBNB
			TokenB:   "0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56", // BUSD
			ReserveA: eth(52_000),
			ReserveB: eth(30_680_000),
			FeeBps:   25,
			TVLUSD:   61_360_000.0,
			APR:      6.7,
			IconID:   "bnb-busd",
		},
	}
}
