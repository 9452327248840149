// =====================================
// File: internal/quote/constant_product.go
// =====================================
package quote

import "math/big"

// Fee constants for the constant-product formula: a 0.3% swap fee expressed as
// the 997/1000 multiplier pair used on-chain.
const (
	feeNumerator   = 997
	feeDenominator = 1000
)

// ConstantProductOut computes the exact output amount for a constant-product
// pool with a 0.3% fee:
//
//	out = floor(in*997*reserveOut / (reserveIn*1000 + in*997))
//
// All arithmetic is integer on raw (undecimaled) token units, matching the
// on-chain computation bit for bit. Returns 0 for non-positive inputs or
// empty reserves.
func ConstantProductOut(amountIn, reserveIn, reserveOut *big.Int) *big.Int {
	zero := new(big.Int)
	if amountIn == nil || reserveIn == nil || reserveOut == nil {
		return zero
	}
	if amountIn.Sign() <= 0 || reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return zero
	}

	inWithFee := new(big.Int).Mul(amountIn, big.NewInt(feeNumerator))
	numerator := new(big.Int).Mul(inWithFee, reserveOut)
	denominator := new(big.Int).Mul(reserveIn, big.NewInt(feeDenominator))
	denominator.Add(denominator, inWithFee)

	return numerator.Div(numerator, denominator)
}
