// =====================================
// File: internal/registry/registry.go
// =====================================
package registry

import (
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry is the in-memory map from chain id to NetworkDescriptor plus the
// user-added token overlay per chain. One instance is constructed at startup
// and shared by the quote engine and the UI; there are no package globals.
type Registry struct {
	mu       sync.RWMutex
	order    []int64
	networks map[int64]NetworkDescriptor
	defaults map[int64][]TokenDescriptor
	overlay  map[int64][]TokenDescriptor
	store    *Store
	logger   *zap.Logger
}

// New builds a Registry from the static tables and loads any persisted custom
// token overlay. A nil store disables persistence (overlay stays in memory).
func New(store *Store, logger *zap.Logger) *Registry {
	r := &Registry{
		networks: make(map[int64]NetworkDescriptor),
		defaults: defaultTokens(),
		overlay:  make(map[int64][]TokenDescriptor),
		store:    store,
		logger:   logger.Named("registry"),
	}
	for _, n := range defaultNetworks() {
		r.order = append(r.order, n.ChainID)
		r.networks[n.ChainID] = n
	}

	if store != nil {
		overlay, err := store.LoadCustomTokens()
		if err != nil {
			// Persistence is best-effort: a corrupt or missing file never
			// blocks startup.
			r.logger.Warn("Failed to load custom token overlay", zap.Error(err))
		} else if overlay != nil {
			r.overlay = overlay
		}
	}

	return r
}

// GetNetwork returns the descriptor for a chain id, or nil when unknown.
func (r *Registry) GetNetwork(chainID int64) *NetworkDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.networks[chainID]
	if !ok {
		return nil
	}
	return &n
}

// ListNetworks returns all supported chains in static table order. The order
// is stable across calls.
func (r *Registry) ListNetworks() []NetworkDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]NetworkDescriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.networks[id])
	}
	return out
}

// ResolveChain maps a chain key (numeric id or native currency symbol) to a
// chain id. Returns false for unknown keys.
func (r *Registry) ResolveChain(key string) (int64, bool) {
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		r.mu.RLock()
		_, ok := r.networks[id]
		r.mu.RUnlock()
		return id, ok
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if strings.EqualFold(r.networks[id].NativeCurrency.Symbol, key) {
			return id, true
		}
	}
	return 0, false
}

// GetTokens returns the default token set followed by the custom overlay for
// the chain. Symbols duplicated between defaults and overlay are NOT
// de-duplicated; callers see both entries, matching long-standing behavior.
func (r *Registry) GetTokens(chainKey string) []TokenDescriptor {
	id, ok := r.ResolveChain(chainKey)
	if !ok {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	defaults := r.defaults[id]
	overlay := r.overlay[id]
	out := make([]TokenDescriptor, 0, len(defaults)+len(overlay))
	out = append(out, defaults...)
	out = append(out, overlay...)
	return out
}

// FindToken resolves a symbol to a token descriptor on the given chain.
// Defaults win over overlay entries when symbols collide.
func (r *Registry) FindToken(chainKey, symbol string) (TokenDescriptor, bool) {
	for _, t := range r.GetTokens(chainKey) {
		if strings.EqualFold(t.Symbol, symbol) {
			return t, true
		}
	}
	return TokenDescriptor{}, false
}

// AddCustomToken appends a token to the chain's overlay. It returns false when
// a token with the same address (case-insensitive) or the same symbol already
// exists in the overlay. The overlay is persisted immediately; storage errors
// are logged, never propagated; in-memory state stays authoritative.
func (r *Registry) AddCustomToken(chainKey string, token TokenDescriptor) bool {
	id, ok := r.ResolveChain(chainKey)
	if !ok {
		return false
	}

	r.mu.Lock()
	for _, existing := range r.overlay[id] {
		if strings.EqualFold(existing.Address, token.Address) ||
			strings.EqualFold(existing.Symbol, token.Symbol) {
			r.mu.Unlock()
			r.logger.Debug("Rejected duplicate custom token",
				zap.String("symbol", token.Symbol),
				zap.String("address", token.Address))
			return false
		}
	}
	token.ChainID = id
	r.overlay[id] = append(r.overlay[id], token)
	snapshot := r.snapshotOverlayLocked()
	r.mu.Unlock()

	r.persist(snapshot)
	r.logger.Info("Custom token added",
		zap.Int64("chain_id", id),
		zap.String("symbol", token.Symbol))
	return true
}

// RemoveCustomToken deletes an overlay entry by address. Returns false when no
// overlay token with that address exists. Default tokens cannot be removed.
func (r *Registry) RemoveCustomToken(chainKey, address string) bool {
	id, ok := r.ResolveChain(chainKey)
	if !ok {
		return false
	}

	r.mu.Lock()
	tokens := r.overlay[id]
	idx := -1
	for i, t := range tokens {
		if strings.EqualFold(t.Address, address) {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return false
	}
	r.overlay[id] = append(tokens[:idx], tokens[idx+1:]...)
	snapshot := r.snapshotOverlayLocked()
	r.mu.Unlock()

	r.persist(snapshot)
	r.logger.Info("Custom token removed",
		zap.Int64("chain_id", id),
		zap.String("address", address))
	return true
}

// CustomTokens returns a copy of the overlay for one chain.
func (r *Registry) CustomTokens(chainKey string) []TokenDescriptor {
	id, ok := r.ResolveChain(chainKey)
	if !ok {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]TokenDescriptor, len(r.overlay[id]))
	copy(out, r.overlay[id])
	return out
}

func (r *Registry) snapshotOverlayLocked() map[int64][]TokenDescriptor {
	snapshot := make(map[int64][]TokenDescriptor, len(r.overlay))
	for id, tokens := range r.overlay {
		cp := make([]TokenDescriptor, len(tokens))
		copy(cp, tokens)
		snapshot[id] = cp
	}
	return snapshot
}

func (r *Registry) persist(snapshot map[int64][]TokenDescriptor) {
	if r.store == nil {
		return
	}
	if err := r.store.SaveCustomTokens(snapshot); err != nil {
		r.logger.Error("Failed to persist custom token overlay", zap.Error(err))
	}
}
