package state

import (
	"context"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// Receipts tracks settled micropayments and keeps itself current by
// listening for payment-completed events.
type Receipts struct {
	*Collection[subchain.X402Receipt]

	unsubscribe func()
}

// NewReceipts creates a receipts store. When bus is non-nil the store
// subscribes to it and quietly refetches on each payment event, without
// flipping the loading flag. Close releases the subscription.
func NewReceipts(client subchain.X402ReceiptsClient, authenticated func() bool, bus subchain.PaymentEventBus) *Receipts {
	r := &Receipts{
		Collection: NewCollection(client.List, authenticated, func(receipt subchain.X402Receipt) int64 {
			return receipt.ID
		}),
	}

	if bus != nil {
		r.unsubscribe = bus.Subscribe(func(subchain.PaymentCompleted) {
			// Event-driven refresh; an error here surfaces on the next
			// explicit refetch.
			_ = r.refetch(context.Background(), nil, true)
		})
	}

	return r
}

// Close removes the event bus subscription. Safe to call when no bus was
// configured.
func (r *Receipts) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
