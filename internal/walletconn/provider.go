// =====================================
// File: internal/walletconn/provider.go
// =====================================
// Package walletconn wraps an injected wallet provider's JSON-RPC surface.
// The provider is an external capability: this package never implements any
// wallet cryptography, it only shuttles requests and opaque intents through.
package walletconn

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/altwatt/dexboard/internal/registry"
)

// TxIntent is an opaque transaction-intent object handed to the provider for
// signing and submission. Fields follow the eth_sendTransaction shape; the
// dashboard never inspects them beyond serialization.
type TxIntent map[string]interface{}

// Provider is the wallet capability surface the dashboard consumes.
type Provider interface {
	RequestAccounts(ctx context.Context) ([]string, error)
	Accounts(ctx context.Context) ([]string, error)
	ChainID(ctx context.Context) (int64, error)
	Balance(ctx context.Context, address string) (*big.Int, error)
	SwitchChain(ctx context.Context, chainID int64) error
	AddChain(ctx context.Context, network registry.NetworkDescriptor) error
	SendTransaction(ctx context.Context, intent TxIntent) (string, error)
}

// hexToChainID parses an 0x-prefixed hex chain id.
func hexToChainID(s string) (int64, error) {
	cleaned := strings.TrimPrefix(s, "0x")
	id, ok := new(big.Int).SetString(cleaned, 16)
	if !ok {
		return 0, fmt.Errorf("invalid hex chain id %q", s)
	}
	return id.Int64(), nil
}

// chainIDToHex renders a chain id the way wallet_switchEthereumChain expects.
func chainIDToHex(id int64) string {
	return fmt.Sprintf("0x%x", id)
}

// hexToBig parses an 0x-prefixed hex quantity (balances).
func hexToBig(s string) (*big.Int, error) {
	cleaned := strings.TrimPrefix(s, "0x")
	if cleaned == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(cleaned, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex quantity %q", s)
	}
	return v, nil
}
