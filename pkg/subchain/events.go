package subchain

import (
	"sync"
)

// PaymentCompleted is broadcast when a micropayment settles. Consumers such
// as the receipts store use it to refresh out-of-band instead of polling.
type PaymentCompleted struct {
	ReceiptID int64  `json:"receipt_id,omitempty"`
	Path      string `json:"path,omitempty"`
	Amount    string `json:"amount,omitempty"`
	Currency  string `json:"currency,omitempty"`
	TxHash    string `json:"tx_hash,omitempty"`
}

// PaymentEventBus distributes payment-completed events. Implementations must
// be safe for concurrent use.
type PaymentEventBus interface {
	// Publish broadcasts an event to all current subscribers.
	Publish(event PaymentCompleted)

	// Subscribe registers a handler and returns a function that removes it.
	Subscribe(handler func(PaymentCompleted)) (unsubscribe func())
}

// LocalPaymentEvents is the in-process PaymentEventBus. Handlers run
// synchronously on the publishing goroutine.
type LocalPaymentEvents struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(PaymentCompleted)
}

// NewLocalPaymentEvents creates an in-process event bus.
func NewLocalPaymentEvents() *LocalPaymentEvents {
	return &LocalPaymentEvents{
		handlers: make(map[int]func(PaymentCompleted)),
	}
}

// Publish implements PaymentEventBus.Publish.
func (b *LocalPaymentEvents) Publish(event PaymentCompleted) {
	b.mu.Lock()

	handlers := make([]func(PaymentCompleted), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}

	b.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// Subscribe implements PaymentEventBus.Subscribe.
func (b *LocalPaymentEvents) Subscribe(handler func(PaymentCompleted)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		delete(b.handlers, id)
	}
}
