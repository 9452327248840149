// =====================================
// File: internal/registry/token.go
// =====================================
package registry

// TokenDescriptor describes one tradable token on a chain. An empty Address
// marks the chain's native coin. Symbol is the UI lookup key and is unique
// within a chain's default set.
type TokenDescriptor struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
	Address  string `json:"address,omitempty"`
	ChainID  int64  `json:"chain_id"`
	IconID   string `json:"icon_id"`
}

// IsNative reports whether the descriptor is the chain's gas coin.
func (t TokenDescriptor) IsNative() bool {
	return t.Address == ""
}

// defaultTokens maps chain id to that chain's built-in token set.
func defaultTokens() map[int64][]TokenDescriptor {
	return map[int64][]TokenDescriptor{
		2330: {
			{Symbol: "ALT", Name: "Altcoin", Decimals: 18, ChainID: 2330, IconID: "alt"},
			{Symbol: "wALT", Name: "Wrapped Altcoin", Decimals: 18, Address: "0x48721ADeFE5b97101722c0866c2AffCE797C32b6", ChainID: 2330, IconID: "alt"},
			{Symbol: "WATT", Name: "WATT Token", Decimals: 18, Address: "0x6645143e49B3a15d8F205658903a55E520444698", ChainID: 2330, IconID: "watt"},
			{Symbol: "USDT", Name: "Tether USD", Decimals: 6, Address: "0x332730a4F6E03D9C55829435f10360E13cfA41Ff", ChainID: 2330, IconID: "usdt"},
		},
		1: {
			{Symbol: "ETH", Name: "Ether", Decimals: 18, ChainID: 1, IconID: "eth"},
			{Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18, Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", ChainID: 1, IconID: "eth"},
			{Symbol: "USDT", Name: "Tether USD", Decimals: 6, Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7", ChainID: 1, IconID: "usdt"},
			{Symbol: "USDC", Name: "USD Coin", Decimals: 6, Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", ChainID: 1, IconID: "usdc"},
		},
		56: {
			{Symbol: "BNB", Name: "BNB", Decimals: 18, ChainID: 56, IconID: "bnb"},
			{Symbol: "WBNB", Name: "Wrapped BNB", Decimals: 18, Address: "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c", ChainID: 56, IconID: "bnb"},
			{Symbol: "BUSD", Name: "Binance USD", Decimals: 18, Address: "0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56", ChainID: 56, IconID: "busd"},
		},
		137: {
			{Symbol: "POL", Name: "POL", Decimals: 18, ChainID: 137, IconID: "pol"},
			{Symbol: "WPOL", Name: "Wrapped POL", Decimals: 18, Address: "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270", ChainID: 137, IconID: "pol"},
			{Symbol: "USDC", Name: "USD Coin", Decimals: 6, Address: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174", ChainID: 137, IconID: "usdc"},
		},
		10001: {
			{Symbol: "ETHO", Name: "Etho", Decimals: 18, ChainID: 10001, IconID: "etho"},
			{Symbol: "WETHO", Name: "Wrapped Etho", Decimals: 18, Address: "0xA72c7a93d7CD947Db5b38Cea9eC22f9Bbd15e5Df", ChainID: 10001, IconID: "etho"},
		},
	}
}
