// =====================================
// File: internal/quote/reserves.go
// =====================================
package quote

import (
	"context"
	"math/big"

	"github.com/altwatt/dexboard/internal/registry"
)

// PairReserves holds both sides of a pool, in raw token units ordered to match
// the requested pair direction.
type PairReserves struct {
	ReserveIn  *big.Int
	ReserveOut *big.Int
}

// ReserveSource supplies pool reserves for a token pair. Reserves returns
// ok=false when the source does not track the pair; an error means the lookup
// was attempted and failed, in which case the engine degrades to the
// fixed-rate path instead of surfacing the failure.
type ReserveSource interface {
	Reserves(ctx context.Context, chainID int64, from, to registry.TokenDescriptor) (PairReserves, bool, error)
}
