// =====================================
// File: internal/registry/network.go
// =====================================
// Package registry holds the static multi-chain network and token tables and
// the per-chain custom token overlay.
package registry

// NativeCurrency describes the coin a chain uses for gas.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// ContractSet lists the well-known contract addresses deployed on a chain.
// Addresses are opaque strings; the dashboard never interprets them.
type ContractSet struct {
	WrappedNative    string `json:"wrapped_native"`
	Factory          string `json:"factory"`
	Router           string `json:"router"`
	Multicall        string `json:"multicall"`
	TokenMultisender string `json:"token_multisender"`
}

// NetworkDescriptor is the static description of one supported chain.
// Descriptors are loaded once at startup and never mutated.
type NetworkDescriptor struct {
	ChainID        int64          `json:"chain_id"`
	Name           string         `json:"name"`
	RPCURL         string         `json:"rpc_url"`
	ExplorerURL    string         `json:"explorer_url"`
	NativeCurrency NativeCurrency `json:"native_currency"`
	Contracts      ContractSet    `json:"contracts"`
	IconID         string         `json:"icon_id"`
}

// defaultNetworks is the authoritative chain table. Order matters: ListNetworks
// returns chains in this order.
func defaultNetworks() []NetworkDescriptor {
	return []NetworkDescriptor{
		{
			ChainID:        2330,
			Name:           "Altcoinchain",
			RPCURL:         "https://rpc0.altcoinchain.org/rpc",
			ExplorerURL:    "https://alt-exp.outsidethebox.top",
			NativeCurrency: NativeCurrency{Name: "Altcoin", Symbol: "ALT", Decimals: 18},
			Contracts: ContractSet{
				WrappedNative:    "0x48721ADeFE5b97101722c0866c2AffCE797C32b6",
				Factory:          "0x347aAc6D939f98854110Ff48dC5B7beB52D86445",
				Router:           "0xae535e436b2a05cBc1fE6ACb0a61f687df176E2c",
				Multicall:        "0x8c5CbBA3767F88f39c4Ad37f72Bd28f6Ad31FC27",
				TokenMultisender: "0x55dB74B0D66bdeD9c08918f8f9594775Db1A846e",
			},
			IconID: "alt",
		},
		{
			ChainID:        1,
			Name:           "Ethereum",
			RPCURL:         "https://eth.llamarpc.com",
			ExplorerURL:    "https://etherscan.io",
			NativeCurrency: NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18},
			Contracts: ContractSet{
				WrappedNative:    "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
				Factory:          "0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f",
				Router:           "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D",
				Multicall:        "0xeefBa1e63905eF1D7ACbA5a8513c70307C1cE441",
				TokenMultisender: "0x88888888b4f61c624e2fe2e4d3b2a0c0ce7a9a2d",
			},
			IconID: "eth",
		},
		{
			ChainID:        56,
			Name:           "BNB Smart Chain",
			RPCURL:         "https://bsc-dataseed.binance.org",
			ExplorerURL:    "https://bscscan.com",
			NativeCurrency: NativeCurrency{Name: "BNB", Symbol: "BNB", Decimals: 18},
			Contracts: ContractSet{
				WrappedNative:    "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c",
				Factory:          "0xcA143Ce32Fe78f1f7019d7d551a6402fC5350c73",
				Router:           "0x10ED43C718714eb63d5aA57B78B54704E256024E",
				Multicall:        "0x41263cBA59EB80dC200F3E2544eda4ed6A90E76C",
				TokenMultisender: "0x2c6d1ee5a2f78e4e0e1cb2a41b963f0ca5e0cfca",
			},
			IconID: "bnb",
		},
		{
			ChainID:        137,
			Name:           "Polygon",
			RPCURL:         "https://polygon-rpc.com",
			ExplorerURL:    "https://polygonscan.com",
			NativeCurrency: NativeCurrency{Name: "POL", Symbol: "POL", Decimals: 18},
			Contracts: ContractSet{
				WrappedNative:    "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270",
				Factory:          "0x5757371414417b8C6CAad45bAeF941aBc7d3Ab32",
				Router:           "0xa5E0829CaCEd8fFDD4De3c43696c57F7D7A678ff",
				Multicall:        "0x11ce4B23bD875D7F5C6a31084f55fDe1e9A87507",
				TokenMultisender: "0x4e3b11c0f8e62d8e63b1b9e1a0c4ae1f1d8bb1ab",
			},
			IconID: "pol",
		},
		{
			ChainID:        10001,
			Name:           "ETHO Protocol",
			RPCURL:         "https://rpc.ethoprotocol.com",
			ExplorerURL:    "https://explorer.ethoprotocol.com",
			NativeCurrency: NativeCurrency{Name: "Etho", Symbol: "ETHO", Decimals: 18},
			Contracts: ContractSet{
				WrappedNative:    "0xA72c7a93d7CD947Db5b38Cea9eC22f9Bbd15e5Df",
				Factory:          "0x0c3b7B4b6A31796D1b4AA5cb9C09c2Fff2B0A7EA",
				Router:           "0xB2F8e147d6a2570b19d1731401DDD5A4F62e2C33",
				Multicall:        "0x7bC2C5a8Fb0dB2E5b6f4b5eDbD7f4d9cC75a2aB1",
				TokenMultisender: "0x1aE514fA34c1aE70d2ab0D92E9c9E99a89cB8bE4",
			},
			IconID: "etho",
		},
	}
}
