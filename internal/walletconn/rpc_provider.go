// =====================================
// File: internal/walletconn/rpc_provider.go
// =====================================
package walletconn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/altwatt/dexboard/internal/registry"
)

const rpcTimeout = 15 * time.Second

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// RPCProvider implements Provider against a wallet bridge speaking JSON-RPC
// 2.0 over HTTP. Call failures are returned as-is; callers convert them into
// transient notices, never blocking failures.
type RPCProvider struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
	nextID     uint64
}

// NewRPCProvider creates a provider client for the given endpoint.
func NewRPCProvider(endpoint string, logger *zap.Logger) *RPCProvider {
	return &RPCProvider{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: rpcTimeout},
		logger:     logger.Named("wallet_provider"),
	}
}

func (p *RPCProvider) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	payload := rpcRequest{
		JSONRPC: "2.0",
		ID:      atomic.AddUint64(&p.nextID, 1),
		Method:  method,
		Params:  params,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if decoded.Error != nil {
		return fmt.Errorf("%s: %w", method, decoded.Error)
	}
	if result != nil {
		if err := json.Unmarshal(decoded.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}
	return nil
}

// RequestAccounts prompts the wallet for account access.
func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.call(ctx, "eth_requestAccounts", []interface{}{}, &accounts); err != nil {
		return nil, err
	}
	p.logger.Info("Wallet connected", zap.Int("accounts", len(accounts)))
	return accounts, nil
}

// Accounts returns already-authorized accounts without prompting.
func (p *RPCProvider) Accounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.call(ctx, "eth_accounts", []interface{}{}, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ChainID returns the provider's active chain.
func (p *RPCProvider) ChainID(ctx context.Context) (int64, error) {
	var hexID string
	if err := p.call(ctx, "eth_chainId", []interface{}{}, &hexID); err != nil {
		return 0, err
	}
	return hexToChainID(hexID)
}

// Balance returns the native-coin balance of an address in raw units.
func (p *RPCProvider) Balance(ctx context.Context, address string) (*big.Int, error) {
	var hexBalance string
	if err := p.call(ctx, "eth_getBalance", []interface{}{address, "latest"}, &hexBalance); err != nil {
		return nil, err
	}
	return hexToBig(hexBalance)
}

// SwitchChain asks the wallet to activate a chain it already knows.
func (p *RPCProvider) SwitchChain(ctx context.Context, chainID int64) error {
	params := []interface{}{map[string]string{"chainId": chainIDToHex(chainID)}}
	if err := p.call(ctx, "wallet_switchEthereumChain", params, nil); err != nil {
		return err
	}
	p.logger.Info("Switched chain", zap.Int64("chain_id", chainID))
	return nil
}

// AddChain registers a network with the wallet from its registry descriptor.
func (p *RPCProvider) AddChain(ctx context.Context, network registry.NetworkDescriptor) error {
	params := []interface{}{map[string]interface{}{
		"chainId":   chainIDToHex(network.ChainID),
		"chainName": network.Name,
		"rpcUrls":   []string{network.RPCURL},
		"nativeCurrency": map[string]interface{}{
			"name":     network.NativeCurrency.Name,
			"symbol":   network.NativeCurrency.Symbol,
			"decimals": network.NativeCurrency.Decimals,
		},
		"blockExplorerUrls": []string{network.ExplorerURL},
	}}
	return p.call(ctx, "wallet_addEthereumChain", params, nil)
}

// SendTransaction submits an opaque intent and returns the transaction hash.
func (p *RPCProvider) SendTransaction(ctx context.Context, intent TxIntent) (string, error) {
	var txHash string
	if err := p.call(ctx, "eth_sendTransaction", []interface{}{intent}, &txHash); err != nil {
		return "", err
	}
	p.logger.Info("Transaction submitted", zap.String("tx_hash", txHash))
	return txHash, nil
}
