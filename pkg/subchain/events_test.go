package subchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

func TestLocalPaymentEvents(t *testing.T) {
	t.Parallel()

	t.Run("delivers to every subscriber", func(t *testing.T) {
		t.Parallel()

		bus := subchain.NewLocalPaymentEvents()

		var first, second []subchain.PaymentCompleted

		bus.Subscribe(func(event subchain.PaymentCompleted) { first = append(first, event) })
		bus.Subscribe(func(event subchain.PaymentCompleted) { second = append(second, event) })

		bus.Publish(subchain.PaymentCompleted{ReceiptID: 1, Amount: "0.05"})

		assert.Len(t, first, 1)
		assert.Len(t, second, 1)
		assert.Equal(t, "0.05", first[0].Amount)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		t.Parallel()

		bus := subchain.NewLocalPaymentEvents()

		var events []subchain.PaymentCompleted

		unsubscribe := bus.Subscribe(func(event subchain.PaymentCompleted) { events = append(events, event) })

		bus.Publish(subchain.PaymentCompleted{ReceiptID: 1})
		unsubscribe()
		bus.Publish(subchain.PaymentCompleted{ReceiptID: 2})

		assert.Len(t, events, 1)
	})

	t.Run("unsubscribe is idempotent", func(t *testing.T) {
		t.Parallel()

		bus := subchain.NewLocalPaymentEvents()

		unsubscribe := bus.Subscribe(func(subchain.PaymentCompleted) {})
		unsubscribe()
		unsubscribe()

		bus.Publish(subchain.PaymentCompleted{})
	})

	t.Run("publish with no subscribers", func(t *testing.T) {
		t.Parallel()

		bus := subchain.NewLocalPaymentEvents()
		bus.Publish(subchain.PaymentCompleted{ReceiptID: 1})
	})
}

func TestX402Receipt_ExpectedReceiver(t *testing.T) {
	t.Parallel()

	receipt := &subchain.X402Receipt{Metadata: map[string]interface{}{"expected_receiver": "WALLET"}}

	receiver, ok := receipt.ExpectedReceiver()
	assert.True(t, ok)
	assert.Equal(t, "WALLET", receiver)

	_, ok = (&subchain.X402Receipt{}).ExpectedReceiver()
	assert.False(t, ok)

	_, ok = (&subchain.X402Receipt{Metadata: map[string]interface{}{"expected_receiver": 7}}).ExpectedReceiver()
	assert.False(t, ok)
}
