package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// X402CreditSubscriptionsClient implements subchain.X402CreditSubscriptionsClient.
type X402CreditSubscriptionsClient struct {
	httpClient *http.Client
}

// NewX402CreditSubscriptionsClient creates a new credit subscriptions client.
func NewX402CreditSubscriptionsClient(httpClient *http.Client) *X402CreditSubscriptionsClient {
	return &X402CreditSubscriptionsClient{httpClient: httpClient}
}

// List implements subchain.X402CreditSubscriptionsClient.List. Filters
// support plan and consumer.
func (c *X402CreditSubscriptionsClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.X402CreditSubscription], error) {
	resp, err := c.httpClient.Get(ctx, "/api/x402/credit-subscriptions/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing credit subscriptions: %w", err)
	}

	return decodeList[subchain.X402CreditSubscription](resp)
}

// Get implements subchain.X402CreditSubscriptionsClient.Get.
func (c *X402CreditSubscriptionsClient) Get(ctx context.Context, id int64) (*subchain.X402CreditSubscription, error) {
	path := fmt.Sprintf("/api/x402/credit-subscriptions/%d/", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting credit subscription: %w", err)
	}

	return decode[subchain.X402CreditSubscription](resp)
}

// Create implements subchain.X402CreditSubscriptionsClient.Create.
func (c *X402CreditSubscriptionsClient) Create(ctx context.Context, request *subchain.X402CreditSubscriptionCreateRequest) (*subchain.X402CreditSubscription, error) {
	resp, err := c.httpClient.Post(ctx, "/api/x402/credit-subscriptions/", request)
	if err != nil {
		return nil, fmt.Errorf("creating credit subscription: %w", err)
	}

	return decode[subchain.X402CreditSubscription](resp)
}

// Consume implements subchain.X402CreditSubscriptionsClient.Consume.
func (c *X402CreditSubscriptionsClient) Consume(ctx context.Context, id int64, request *subchain.X402ConsumeRequest) (*subchain.X402CreditSubscription, error) {
	path := fmt.Sprintf("/api/x402/credit-subscriptions/%d/consume/", id)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("consuming credits: %w", err)
	}

	return decode[subchain.X402CreditSubscription](resp)
}

// ListUsage implements subchain.X402CreditSubscriptionsClient.ListUsage.
func (c *X402CreditSubscriptionsClient) ListUsage(ctx context.Context, id int64, params *subchain.ListParams) (*subchain.ListResponse[subchain.X402CreditUsageEntry], error) {
	path := fmt.Sprintf("/api/x402/credit-subscriptions/%d/usage/", id)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing credit usage: %w", err)
	}

	return decodeList[subchain.X402CreditUsageEntry](resp)
}
