// =====================================
// File: internal/quote/rates.go
// =====================================
package quote

// fallbackRates is the hand-maintained per-pair multiplier table used when no
// pool reserves are available. The table is intentionally NOT symmetric:
// rate(A,B)*rate(B,A) need not equal 1 (e.g. ALT/WATT below). These are the
// literal product-approved values; do not "correct" them.
var fallbackRates = map[string]map[string]float64{
	"ALT": {
		"WATT": 1.5,
		"wALT": 1.0,
		"USDT": 0.000173,
		"ETH":  0.000000052,
	},
	"WATT": {
		"ALT":  0.667,
		"USDT": 0.00026,
	},
	"wALT": {
		"ALT":  1.0,
		"WATT": 1.5,
	},
	"ETH": {
		"USDT": 3200.0,
		"USDC": 3200.0,
		"WETH": 1.0,
		"ALT":  19230000.0,
	},
	"WETH": {
		"ETH":  1.0,
		"USDT": 3200.0,
	},
	"BNB": {
		"USDT": 590.0,
		"BUSD": 590.0,
		"WBNB": 1.0,
	},
	"WBNB": {
		"BNB": 1.0,
	},
	"POL": {
		"USDC": 0.42,
		"WPOL": 1.0,
	},
	"WPOL": {
		"POL": 1.0,
	},
	"USDT": {
		"ALT":  5780.0,
		"WATT": 3846.0,
		"ETH":  0.0003125,
		"USDC": 1.0,
	},
	"USDC": {
		"USDT": 1.0,
		"ETH":  0.0003125,
	},
	"ETHO": {
		"WETHO": 1.0,
		"USDT":  0.0011,
	},
	"WETHO": {
		"ETHO": 1.0,
	},
}

// FallbackRate returns the fixed multiplier for a pair, or 0 when the pair is
// not in the table. A symbol quoted against itself is always 1.
func FallbackRate(fromSymbol, toSymbol string) float64 {
	if fromSymbol == toSymbol {
		return 1
	}
	if row, ok := fallbackRates[fromSymbol]; ok {
		return row[toSymbol]
	}
	return 0
}
