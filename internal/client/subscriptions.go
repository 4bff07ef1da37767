package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// SubscriptionsClient implements subchain.SubscriptionsClient.
type SubscriptionsClient struct {
	httpClient *http.Client
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(httpClient *http.Client) *SubscriptionsClient {
	return &SubscriptionsClient{httpClient: httpClient}
}

// List implements subchain.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Subscription], error) {
	resp, err := c.httpClient.Get(ctx, "/api/subscriptions/subscriptions/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	return decodeList[subchain.Subscription](resp)
}

// Get implements subchain.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, id int64) (*subchain.Subscription, error) {
	path := fmt.Sprintf("/api/subscriptions/subscriptions/%d/", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	return decode[subchain.Subscription](resp)
}

// Create implements subchain.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, request *subchain.SubscriptionCreateRequest) (*subchain.Subscription, error) {
	resp, err := c.httpClient.Post(ctx, "/api/subscriptions/subscriptions/", request)
	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	return decode[subchain.Subscription](resp)
}

// Update implements subchain.SubscriptionsClient.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, id int64, request *subchain.SubscriptionUpdateRequest) (*subchain.Subscription, error) {
	path := fmt.Sprintf("/api/subscriptions/subscriptions/%d/", id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	return decode[subchain.Subscription](resp)
}

// Cancel implements subchain.SubscriptionsClient.Cancel.
func (c *SubscriptionsClient) Cancel(ctx context.Context, id int64) (*subchain.Subscription, error) {
	return c.action(ctx, id, "cancel")
}

// Resume implements subchain.SubscriptionsClient.Resume.
func (c *SubscriptionsClient) Resume(ctx context.Context, id int64) (*subchain.Subscription, error) {
	return c.action(ctx, id, "resume")
}

// Activate implements subchain.SubscriptionsClient.Activate.
func (c *SubscriptionsClient) Activate(ctx context.Context, id int64) (*subchain.Subscription, error) {
	return c.action(ctx, id, "activate")
}

func (c *SubscriptionsClient) action(ctx context.Context, id int64, name string) (*subchain.Subscription, error) {
	path := fmt.Sprintf("/api/subscriptions/subscriptions/%d/%s/", id, name)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s subscription: %w", name, err)
	}

	return decode[subchain.Subscription](resp)
}
