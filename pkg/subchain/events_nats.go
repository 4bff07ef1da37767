package subchain

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// DefaultPaymentSubject is the NATS subject for payment-completed events.
const DefaultPaymentSubject = "subchain.x402.payment.completed"

// NATSEventConfig configures the NATS-backed event bus.
type NATSEventConfig struct {
	// URL is the NATS server URL, e.g. nats://localhost:4222.
	URL string

	// Subject overrides DefaultPaymentSubject when set.
	Subject string

	// Name is an optional connection name for server-side observability.
	Name string
}

// NATSPaymentEvents bridges payment-completed events over NATS so multiple
// dashboard processes observe settlements from any of them.
type NATSPaymentEvents struct {
	conn    *nats.Conn
	subject string
	local   *LocalPaymentEvents
	sub     *nats.Subscription
}

// NewNATSPaymentEvents connects to NATS and starts relaying events.
func NewNATSPaymentEvents(config *NATSEventConfig) (*NATSPaymentEvents, error) {
	if config == nil || config.URL == "" {
		return nil, fmt.Errorf("%w: NATS URL", ErrConfigRequired)
	}

	subject := config.Subject
	if subject == "" {
		subject = DefaultPaymentSubject
	}

	opts := []nats.Option{}
	if config.Name != "" {
		opts = append(opts, nats.Name(config.Name))
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	bus := &NATSPaymentEvents{
		conn:    conn,
		subject: subject,
		local:   NewLocalPaymentEvents(),
	}

	sub, err := conn.Subscribe(subject, func(msg *nats.Msg) {
		var event PaymentCompleted
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			return
		}

		bus.local.Publish(event)
	})
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("subscribing to %s: %w", subject, err)
	}

	bus.sub = sub

	return bus, nil
}

// Publish implements PaymentEventBus.Publish. The event is delivered to
// local subscribers via the NATS round trip so every process, including the
// publisher, observes the same stream.
func (b *NATSPaymentEvents) Publish(event PaymentCompleted) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	_ = b.conn.Publish(b.subject, data)
}

// Subscribe implements PaymentEventBus.Subscribe.
func (b *NATSPaymentEvents) Subscribe(handler func(PaymentCompleted)) func() {
	return b.local.Subscribe(handler)
}

// Close tears down the subscription and connection.
func (b *NATSPaymentEvents) Close() error {
	if b.sub != nil {
		if err := b.sub.Unsubscribe(); err != nil {
			b.conn.Close()

			return fmt.Errorf("unsubscribing: %w", err)
		}
	}

	b.conn.Close()

	return nil
}
