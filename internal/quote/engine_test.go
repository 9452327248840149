// internal/quote/engine_test.go
package quote

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/altwatt/dexboard/internal/registry"
)

// fakeReserves is a scripted ReserveSource.
type fakeReserves struct {
	pair PairReserves
	ok   bool
	err  error
}

func (f *fakeReserves) Reserves(context.Context, int64, registry.TokenDescriptor, registry.TokenDescriptor) (PairReserves, bool, error) {
	return f.pair, f.ok, f.err
}

func newTestEngine(t *testing.T, reserves ReserveSource) *Engine {
	reg := registry.New(nil, zaptest.NewLogger(t))
	return NewEngine(reg, reserves, zaptest.NewLogger(t))
}

func TestQuoteFallbackAltToWatt(t *testing.T) {
	e := newTestEngine(t, nil)

	q := e.Quote(context.Background(), "2330", "ALT", "WATT", "100")
	assert.Equal(t, ModeFallback, q.Mode)
	assert.Equal(t, "150.000000", q.ToAmount)
	assert.InDelta(t, 1.5, q.ImpliedRate, 1e-9)
	assert.Equal(t, "ALT", q.FromToken.Symbol)
	assert.Equal(t, "WATT", q.ToToken.Symbol)
}

func TestQuoteFallbackIsAsymmetric(t *testing.T) {
	e := newTestEngine(t, nil)

	forward := e.Quote(context.Background(), "2330", "ALT", "WATT", "100")
	reverse := e.Quote(context.Background(), "2330", "WATT", "ALT", "100")

	assert.Equal(t, "150.000000", forward.ToAmount)
	assert.Equal(t, "66.700000", reverse.ToAmount)
	// 1.5 * 0.667 != 1; the table is taken as-is.
	assert.NotEqual(t, 1.0, forward.ImpliedRate*reverse.ImpliedRate)
}

func TestQuoteInvalidAmount(t *testing.T) {
	e := newTestEngine(t, nil)

	for _, amount := range []string{"", "abc", "0", "-5"} {
		q := e.Quote(context.Background(), "2330", "ALT", "WATT", amount)
		assert.Equal(t, ModeNone, q.Mode, "amount %q must yield an empty quote", amount)
		assert.True(t, q.IsZero())
		assert.Empty(t, q.ToAmount)
		// The pair still resolves; only the amount is rejected.
		assert.Equal(t, "ALT", q.FromToken.Symbol)
	}
}

func TestQuoteUnresolvedSymbol(t *testing.T) {
	e := newTestEngine(t, nil)

	q := e.Quote(context.Background(), "2330", "NOPE", "WATT", "100")
	assert.Equal(t, ModeNone, q.Mode)
	assert.Empty(t, q.FromToken.Symbol)

	q = e.Quote(context.Background(), "999999", "ALT", "WATT", "100")
	assert.Equal(t, ModeNone, q.Mode)
}

func TestQuoteUnknownPairNoRate(t *testing.T) {
	e := newTestEngine(t, nil)

	// Both symbols resolve on Ethereum but WETH->USDC has no table entry.
	q := e.Quote(context.Background(), "1", "WETH", "USDC", "1")
	assert.Equal(t, ModeNone, q.Mode)
}

func TestQuoteReserveMode(t *testing.T) {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	reserveIn := new(big.Int).Mul(big.NewInt(4_000_000), scale)
	reserveOut := new(big.Int).Mul(big.NewInt(6_000_000), scale)
	src := &fakeReserves{pair: PairReserves{ReserveIn: reserveIn, ReserveOut: reserveOut}, ok: true}

	e := newTestEngine(t, src)
	q := e.Quote(context.Background(), "2330", "wALT", "WATT", "100")
	require.Equal(t, ModeReserve, q.Mode)

	rawIn := new(big.Int).Mul(big.NewInt(100), scale)
	expected := decimal.NewFromBigInt(ConstantProductOut(rawIn, reserveIn, reserveOut), -18)
	assert.Equal(t, expected.StringFixed(6), q.ToAmount)
	assert.InDelta(t, 1.5, q.ImpliedRate, 0.01, "near-spot trade tracks the reserve ratio")
}

func TestQuoteReserveErrorDegradesToFallback(t *testing.T) {
	src := &fakeReserves{err: errors.New("rpc down")}

	e := newTestEngine(t, src)
	q := e.Quote(context.Background(), "2330", "ALT", "WATT", "100")
	assert.Equal(t, ModeFallback, q.Mode)
	assert.Equal(t, "150.000000", q.ToAmount)
}

func TestQuoteOptions(t *testing.T) {
	e := newTestEngine(t, nil)

	q := e.Quote(context.Background(), "2330", "ALT", "WATT", "1")
	assert.Equal(t, 50, q.SlippageBps)

	q = e.Quote(context.Background(), "2330", "ALT", "WATT", "1", WithSlippageBps(100))
	assert.Equal(t, 100, q.SlippageBps)
}

func TestFallbackRate(t *testing.T) {
	assert.Equal(t, 1.5, FallbackRate("ALT", "WATT"))
	assert.Equal(t, 0.667, FallbackRate("WATT", "ALT"))
	assert.Equal(t, 1.0, FallbackRate("ALT", "ALT"))
	assert.Zero(t, FallbackRate("ALT", "NOPE"))
	assert.Zero(t, FallbackRate("NOPE", "ALT"))
}
