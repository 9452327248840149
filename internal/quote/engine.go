// =====================================
// File: internal/quote/engine.go
// =====================================
// Package quote computes swap output amounts for a token pair, preferring
// live pool reserves and falling back to a fixed per-pair rate table.
package quote

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/altwatt/dexboard/internal/registry"
)

// Mode identifies which pricing source produced a quote.
type Mode string

const (
	// ModeReserve means the constant-product formula was applied to pool reserves.
	ModeReserve Mode = "reserve"
	// ModeFallback means the static rate table was used.
	ModeFallback Mode = "fallback"
	// ModeNone marks an empty quote (bad input or unknown pair).
	ModeNone Mode = "none"
)

// displayPrecision is the fixed number of decimal places shown for output amounts.
const displayPrecision = 6

// SwapQuote is the derived result of a quote computation. Slippage and
// deadline are display metadata for a later execution step; the engine never
// enforces them.
type SwapQuote struct {
	FromToken   registry.TokenDescriptor
	ToToken     registry.TokenDescriptor
	FromAmount  string
	ToAmount    string
	ImpliedRate float64
	Mode        Mode
	SlippageBps int
	Deadline    time.Duration
}

// IsZero reports whether the quote carries no output amount.
func (q SwapQuote) IsZero() bool {
	return q.Mode == ModeNone
}

// Option adjusts quote metadata.
type Option func(*SwapQuote)

// WithSlippageBps attaches a slippage tolerance in basis points.
func WithSlippageBps(bps int) Option {
	return func(q *SwapQuote) { q.SlippageBps = bps }
}

// WithDeadline attaches a transaction deadline window.
func WithDeadline(d time.Duration) Option {
	return func(q *SwapQuote) { q.Deadline = d }
}

// Engine computes swap quotes against a registry's token sets. The reserve
// source is optional; without one every pair takes the fixed-rate path.
type Engine struct {
	registry *registry.Registry
	reserves ReserveSource
	logger   *zap.Logger
}

// NewEngine creates a quote engine. reserves may be nil.
func NewEngine(reg *registry.Registry, reserves ReserveSource, logger *zap.Logger) *Engine {
	return &Engine{
		registry: reg,
		reserves: reserves,
		logger:   logger.Named("quote_engine"),
	}
}

// Quote computes the output amount for swapping amountStr of fromSymbol into
// toSymbol on the given chain. Invalid input never produces an error: an
// unparsable or non-positive amount, or a symbol that does not resolve on the
// chain, yields an empty quote.
func (e *Engine) Quote(ctx context.Context, chainKey, fromSymbol, toSymbol, amountStr string, opts ...Option) SwapQuote {
	q := SwapQuote{
		FromAmount:  amountStr,
		Mode:        ModeNone,
		SlippageBps: 50,
		Deadline:    20 * time.Minute,
	}
	for _, opt := range opts {
		opt(&q)
	}

	from, okFrom := e.registry.FindToken(chainKey, fromSymbol)
	to, okTo := e.registry.FindToken(chainKey, toSymbol)
	if !okFrom || !okTo {
		e.logger.Debug("Unresolved token pair",
			zap.String("chain", chainKey),
			zap.String("from", fromSymbol),
			zap.String("to", toSymbol))
		return q
	}
	q.FromToken = from
	q.ToToken = to

	amount, err := decimal.NewFromString(amountStr)
	if err != nil || amount.Sign() <= 0 {
		return q
	}

	if out, ok := e.reserveQuote(ctx, from, to, amount); ok {
		e.fill(&q, amount, out, ModeReserve)
		return q
	}

	rate := FallbackRate(from.Symbol, to.Symbol)
	if rate <= 0 {
		return q
	}
	out := amount.Mul(decimal.NewFromFloat(rate))
	e.fill(&q, amount, out, ModeFallback)
	return q
}

// reserveQuote attempts the constant-product path. Any reserve lookup failure
// degrades silently to the fallback path.
func (e *Engine) reserveQuote(ctx context.Context, from, to registry.TokenDescriptor, amount decimal.Decimal) (decimal.Decimal, bool) {
	if e.reserves == nil {
		return decimal.Zero, false
	}

	pair, ok, err := e.reserves.Reserves(ctx, from.ChainID, from, to)
	if err != nil {
		e.logger.Warn("Reserve lookup failed, using fallback rate",
			zap.String("from", from.Symbol),
			zap.String("to", to.Symbol),
			zap.Error(err))
		return decimal.Zero, false
	}
	if !ok {
		return decimal.Zero, false
	}

	// Scale the display amount to raw units, run the integer formula, then
	// scale the result back for display.
	rawIn := amount.Shift(int32(from.Decimals)).Truncate(0).BigInt()
	rawOut := ConstantProductOut(rawIn, pair.ReserveIn, pair.ReserveOut)
	if rawOut.Sign() <= 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromBigInt(rawOut, -int32(to.Decimals)), true
}

func (e *Engine) fill(q *SwapQuote, in, out decimal.Decimal, mode Mode) {
	q.ToAmount = out.StringFixed(displayPrecision)
	q.Mode = mode
	rate, _ := out.Div(in).Float64()
	q.ImpliedRate = rate
}
