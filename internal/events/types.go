// internal/events/types.go
package events

import (
	"context"
	"time"

	"github.com/altwatt/dexboard/internal/bridge"
	"github.com/altwatt/dexboard/internal/price"
	"github.com/altwatt/dexboard/internal/quote"
)

// EventType identifies a category of dashboard event.
type EventType string

const (
	TypePriceUpdated    EventType = "price.updated"
	TypeQuoteComputed   EventType = "quote.computed"
	TypeNetworkSwitched EventType = "network.switched"
	TypeTransferUpdated EventType = "transfer.updated"
)

// Event is a value published on the bus.
type Event interface {
	Type() EventType
	OccurredAt() time.Time
}

type base struct {
	at time.Time
}

func newBase() base { return base{at: time.Now()} }

func (b base) OccurredAt() time.Time { return b.at }

// PriceUpdated carries a batch of refreshed price records.
type PriceUpdated struct {
	base
	Records map[string]price.Record
}

// NewPriceUpdated wraps a refresh result in an event.
func NewPriceUpdated(records map[string]price.Record) PriceUpdated {
	return PriceUpdated{base: newBase(), Records: records}
}

func (PriceUpdated) Type() EventType { return TypePriceUpdated }

// QuoteComputed carries a freshly computed swap quote.
type QuoteComputed struct {
	base
	Quote quote.SwapQuote
}

// NewQuoteComputed wraps a quote in an event.
func NewQuoteComputed(q quote.SwapQuote) QuoteComputed {
	return QuoteComputed{base: newBase(), Quote: q}
}

func (QuoteComputed) Type() EventType { return TypeQuoteComputed }

// NetworkSwitched signals the active chain changed.
type NetworkSwitched struct {
	base
	ChainID int64
}

// NewNetworkSwitched wraps a chain switch in an event.
func NewNetworkSwitched(chainID int64) NetworkSwitched {
	return NetworkSwitched{base: newBase(), ChainID: chainID}
}

func (NetworkSwitched) Type() EventType { return TypeNetworkSwitched }

// TransferUpdated carries a bridge transfer status change.
type TransferUpdated struct {
	base
	Status bridge.TransferStatus
}

// NewTransferUpdated wraps a transfer status in an event.
func NewTransferUpdated(status bridge.TransferStatus) TransferUpdated {
	return TransferUpdated{base: newBase(), Status: status}
}

func (TransferUpdated) Type() EventType { return TypeTransferUpdated }

// Handler processes a published event.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, event Event) error

// Handle calls the wrapped function.
func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Subscription is a handle for detaching a registered handler.
type Subscription interface {
	Unsubscribe()
}
