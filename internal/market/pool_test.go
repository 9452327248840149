// =====================================
// File: internal/market/pool_test.go
// =====================================
package market

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altwatt/dexboard/internal/registry"
)

func token(symbol, address string, chainID int64) registry.TokenDescriptor {
	return registry.TokenDescriptor{Symbol: symbol, Decimals: 18, Address: address, ChainID: chainID}
}

func TestReservesMatchesByAddress(t *testing.T) {
	b := NewPoolBook()
	walt := token("wALT", "0x48721ADeFE5b97101722c0866c2AffCE797C32b6", 2330)
	watt := token("WATT", "0x6645143e49B3a15d8F205658903a55E520444698", 2330)

	pair, ok, err := b.Reserves(context.Background(), 2330, walt, watt)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Positive(t, pair.ReserveIn.Sign())
	assert.Positive(t, pair.ReserveOut.Sign())
}

func TestReservesOrientation(t *testing.T) {
	b := NewPoolBook()
	walt := token("wALT", "0x48721ADeFE5b97101722c0866c2AffCE797C32b6", 2330)
	watt := token("WATT", "0x6645143e49B3a15d8F205658903a55E520444698", 2330)

	forward, ok, err := b.Reserves(context.Background(), 2330, walt, watt)
	require.NoError(t, err)
	require.True(t, ok)

	reverse, ok, err := b.Reserves(context.Background(), 2330, watt, walt)
	require.NoError(t, err)
	require.True(t, ok)

	// The same pool viewed from both sides swaps reserve roles.
	assert.Zero(t, forward.ReserveIn.Cmp(reverse.ReserveOut))
	assert.Zero(t, forward.ReserveOut.Cmp(reverse.ReserveIn))
}

func TestReservesNativeCoinNeverMatches(t *testing.T) {
	b := NewPoolBook()
	alt := token("ALT", "", 2330)
	watt := token("WATT", "0x6645143e49B3a15d8F205658903a55E520444698", 2330)

	_, ok, err := b.Reserves(context.Background(), 2330, alt, watt)
	require.NoError(t, err)
	assert.False(t, ok, "native pairs route to the fixed-rate table")
}

func TestReservesWrongChain(t *testing.T) {
	b := NewPoolBook()
	walt := token("wALT", "0x48721ADeFE5b97101722c0866c2AffCE797C32b6", 2330)
	watt := token("WATT", "0x6645143e49B3a15d8F205658903a55E520444698", 2330)

	_, ok, err := b.Reserves(context.Background(), 1, walt, watt)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPoolsForChain(t *testing.T) {
	b := NewPoolBook()

	for _, p := range b.PoolsForChain(2330) {
		assert.Equal(t, int64(2330), p.ChainID)
	}
	assert.NotEmpty(t, b.PoolsForChain(2330))
	assert.Empty(t, b.PoolsForChain(999999))
}

func TestPositionTickRecomputesPnL(t *testing.T) {
	b := NewPositionBook()
	before := b.Positions()
	require.NotEmpty(t, before)

	b.Tick()
	after := b.Positions()

	changed := false
	for i := range after {
		if after[i].MarkPrice != before[i].MarkPrice {
			changed = true
		}
		diff := after[i].MarkPrice - after[i].EntryPrice
		if after[i].Side == SideShort {
			diff = -diff
		}
		assert.InDelta(t, diff*after[i].Size, after[i].UnrealizedPnL, 1e-6)
	}
	assert.True(t, changed, "tick must drift at least one mark price")
}
