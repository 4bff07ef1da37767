package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// X402PricingRulesClient implements subchain.X402PricingRulesClient.
type X402PricingRulesClient struct {
	httpClient *http.Client
}

// NewX402PricingRulesClient creates a new pricing rules client.
func NewX402PricingRulesClient(httpClient *http.Client) *X402PricingRulesClient {
	return &X402PricingRulesClient{httpClient: httpClient}
}

// List implements subchain.X402PricingRulesClient.List. Filters support
// status, path, and method.
func (c *X402PricingRulesClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.X402PricingRule], error) {
	resp, err := c.httpClient.Get(ctx, "/api/x402/pricing-rules/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing pricing rules: %w", err)
	}

	return decodeList[subchain.X402PricingRule](resp)
}

// Create implements subchain.X402PricingRulesClient.Create.
func (c *X402PricingRulesClient) Create(ctx context.Context, request *subchain.X402PricingRuleCreateRequest) (*subchain.X402PricingRule, error) {
	resp, err := c.httpClient.Post(ctx, "/api/x402/pricing-rules/", request)
	if err != nil {
		return nil, fmt.Errorf("creating pricing rule: %w", err)
	}

	return decode[subchain.X402PricingRule](resp)
}

// Update implements subchain.X402PricingRulesClient.Update.
func (c *X402PricingRulesClient) Update(ctx context.Context, id int64, request *subchain.X402PricingRuleUpdateRequest) (*subchain.X402PricingRule, error) {
	path := fmt.Sprintf("/api/x402/pricing-rules/%d/", id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating pricing rule: %w", err)
	}

	return decode[subchain.X402PricingRule](resp)
}

// Delete implements subchain.X402PricingRulesClient.Delete.
func (c *X402PricingRulesClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/x402/pricing-rules/%d/", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting pricing rule: %w", err)
	}

	return nil
}
