package state

import (
	"context"
	"sync"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// CurrentSubscription tracks the subscriber's single active agreement.
type CurrentSubscription struct {
	mu sync.Mutex

	client   subchain.SubscriptionsClient
	current  *subchain.Subscription
	loading  bool
	mutating bool
	err      error
}

// NewCurrentSubscription creates a store over the given subscriptions client.
func NewCurrentSubscription(client subchain.SubscriptionsClient) *CurrentSubscription {
	return &CurrentSubscription{client: client}
}

// Load fetches the subscriber's subscriptions and keeps the first one. A
// subscriber without a subscription loads successfully with nothing current.
func (s *CurrentSubscription) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	resp, err := s.client.List(ctx, nil)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = err

		return err
	}

	s.err = nil
	if len(resp.Results) > 0 {
		s.current = &resp.Results[0]
	} else {
		s.current = nil
	}

	return nil
}

// Subscribe creates a subscription and makes it current. The wallet address
// is validated client-side before any request is issued.
func (s *CurrentSubscription) Subscribe(ctx context.Context, request *subchain.SubscriptionCreateRequest) (*subchain.Subscription, error) {
	if request == nil || request.WalletAddress == "" {
		return nil, subchain.ErrWalletAddressRequired
	}

	s.setMutating(true)
	defer s.setMutating(false)

	sub, err := s.client.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	s.setCurrent(sub)

	return sub, nil
}

// Cancel cancels the current subscription at the period end.
func (s *CurrentSubscription) Cancel(ctx context.Context) (*subchain.Subscription, error) {
	return s.action(ctx, s.client.Cancel)
}

// Reactivate resumes a subscription that was set to cancel.
func (s *CurrentSubscription) Reactivate(ctx context.Context) (*subchain.Subscription, error) {
	return s.action(ctx, s.client.Resume)
}

func (s *CurrentSubscription) action(ctx context.Context, do func(context.Context, int64) (*subchain.Subscription, error)) (*subchain.Subscription, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current == nil {
		return nil, subchain.ErrNoSubscriptionLoaded
	}

	s.setMutating(true)
	defer s.setMutating(false)

	sub, err := do(ctx, current.ID)
	if err != nil {
		return nil, err
	}

	s.setCurrent(sub)

	return sub, nil
}

// Current returns the loaded subscription, or nil when none exists.
func (s *CurrentSubscription) Current() *subchain.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	sub := *s.current

	return &sub
}

// Loading reports whether a load is in flight.
func (s *CurrentSubscription) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// Mutating reports whether a subscribe, cancel, or reactivate is in flight.
func (s *CurrentSubscription) Mutating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutating
}

// Err returns the error from the most recent load, or nil.
func (s *CurrentSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *CurrentSubscription) setCurrent(sub *subchain.Subscription) {
	s.mu.Lock()
	s.current = sub
	s.mu.Unlock()
}

func (s *CurrentSubscription) setMutating(v bool) {
	s.mu.Lock()
	s.mutating = v
	s.mu.Unlock()
}
