package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subchain-io/subchain-go/pkg/subchain"
	"github.com/subchain-io/subchain-go/pkg/subchain/state"
)

// stubSubscriptionsClient implements subchain.SubscriptionsClient over a
// fixed slice of subscriptions.
type stubSubscriptionsClient struct {
	subscriptions []subchain.Subscription
	listErr       error
	createErr     error
}

func (c *stubSubscriptionsClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Subscription], error) {
	if c.listErr != nil {
		return nil, c.listErr
	}

	return &subchain.ListResponse[subchain.Subscription]{
		Count:   len(c.subscriptions),
		Results: c.subscriptions,
	}, nil
}

func (c *stubSubscriptionsClient) Get(ctx context.Context, id int64) (*subchain.Subscription, error) {
	return c.withStatus(id, "")
}

func (c *stubSubscriptionsClient) Create(ctx context.Context, request *subchain.SubscriptionCreateRequest) (*subchain.Subscription, error) {
	if c.createErr != nil {
		return nil, c.createErr
	}

	sub := subchain.Subscription{
		Resource:      subchain.Resource{ID: int64(len(c.subscriptions) + 1)},
		PlanID:        request.PlanID,
		WalletAddress: request.WalletAddress,
		Status:        "pending",
	}
	c.subscriptions = append(c.subscriptions, sub)

	return &sub, nil
}

func (c *stubSubscriptionsClient) Update(ctx context.Context, id int64, request *subchain.SubscriptionUpdateRequest) (*subchain.Subscription, error) {
	return c.withStatus(id, "")
}

func (c *stubSubscriptionsClient) Cancel(ctx context.Context, id int64) (*subchain.Subscription, error) {
	return c.withStatus(id, "cancelled")
}

func (c *stubSubscriptionsClient) Resume(ctx context.Context, id int64) (*subchain.Subscription, error) {
	return c.withStatus(id, "active")
}

func (c *stubSubscriptionsClient) Activate(ctx context.Context, id int64) (*subchain.Subscription, error) {
	return c.withStatus(id, "active")
}

func (c *stubSubscriptionsClient) withStatus(id int64, status string) (*subchain.Subscription, error) {
	for _, sub := range c.subscriptions {
		if sub.ID == id {
			if status != "" {
				sub.Status = status
			}

			return &sub, nil
		}
	}

	return nil, &subchain.APIError{Status: 404, Message: "subscription not found"}
}

func TestCurrentSubscription_Load(t *testing.T) {
	t.Parallel()

	t.Run("keeps the first subscription", func(t *testing.T) {
		t.Parallel()

		client := &stubSubscriptionsClient{subscriptions: []subchain.Subscription{
			{Resource: subchain.Resource{ID: 7}, Status: "active"},
			{Resource: subchain.Resource{ID: 8}, Status: "expired"},
		}}
		store := state.NewCurrentSubscription(client)

		require.NoError(t, store.Load(context.Background()))

		current := store.Current()
		require.NotNil(t, current)
		assert.Equal(t, int64(7), current.ID)
	})

	t.Run("no subscription is not an error", func(t *testing.T) {
		t.Parallel()

		store := state.NewCurrentSubscription(&stubSubscriptionsClient{})

		require.NoError(t, store.Load(context.Background()))
		assert.Nil(t, store.Current())
		assert.NoError(t, store.Err())
	})

	t.Run("list failure is recorded", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		store := state.NewCurrentSubscription(&stubSubscriptionsClient{listErr: boom})

		require.ErrorIs(t, store.Load(context.Background()), boom)
		assert.ErrorIs(t, store.Err(), boom)
		assert.False(t, store.Loading())
	})
}

func TestCurrentSubscription_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("requires a wallet address", func(t *testing.T) {
		t.Parallel()

		client := &stubSubscriptionsClient{}
		store := state.NewCurrentSubscription(client)

		_, err := store.Subscribe(context.Background(), &subchain.SubscriptionCreateRequest{PlanID: 1})
		assert.ErrorIs(t, err, subchain.ErrWalletAddressRequired)

		_, err = store.Subscribe(context.Background(), nil)
		assert.ErrorIs(t, err, subchain.ErrWalletAddressRequired)

		assert.Empty(t, client.subscriptions)
	})

	t.Run("created subscription becomes current", func(t *testing.T) {
		t.Parallel()

		store := state.NewCurrentSubscription(&stubSubscriptionsClient{})

		sub, err := store.Subscribe(context.Background(), &subchain.SubscriptionCreateRequest{
			PlanID:        1,
			WalletAddress: "ALGO7XAMPLE",
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", sub.Status)

		current := store.Current()
		require.NotNil(t, current)
		assert.Equal(t, sub.ID, current.ID)
	})
}

func TestCurrentSubscription_Actions(t *testing.T) {
	t.Parallel()

	t.Run("cancel without a loaded subscription", func(t *testing.T) {
		t.Parallel()

		store := state.NewCurrentSubscription(&stubSubscriptionsClient{})

		_, err := store.Cancel(context.Background())
		assert.ErrorIs(t, err, subchain.ErrNoSubscriptionLoaded)
	})

	t.Run("cancel then reactivate updates current", func(t *testing.T) {
		t.Parallel()

		client := &stubSubscriptionsClient{subscriptions: []subchain.Subscription{
			{Resource: subchain.Resource{ID: 7}, Status: "active"},
		}}
		store := state.NewCurrentSubscription(client)
		require.NoError(t, store.Load(context.Background()))

		cancelled, err := store.Cancel(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "cancelled", cancelled.Status)
		assert.Equal(t, "cancelled", store.Current().Status)

		resumed, err := store.Reactivate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "active", resumed.Status)
		assert.Equal(t, "active", store.Current().Status)
	})
}
