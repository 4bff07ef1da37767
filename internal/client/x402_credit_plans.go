package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// X402CreditPlansClient implements subchain.X402CreditPlansClient.
type X402CreditPlansClient struct {
	httpClient *http.Client
}

// NewX402CreditPlansClient creates a new credit plans client.
func NewX402CreditPlansClient(httpClient *http.Client) *X402CreditPlansClient {
	return &X402CreditPlansClient{httpClient: httpClient}
}

// List implements subchain.X402CreditPlansClient.List.
func (c *X402CreditPlansClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.X402CreditPlan], error) {
	resp, err := c.httpClient.Get(ctx, "/api/x402/credit-plans/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing credit plans: %w", err)
	}

	return decodeList[subchain.X402CreditPlan](resp)
}

// Create implements subchain.X402CreditPlansClient.Create.
func (c *X402CreditPlansClient) Create(ctx context.Context, request *subchain.X402CreditPlanCreateRequest) (*subchain.X402CreditPlan, error) {
	resp, err := c.httpClient.Post(ctx, "/api/x402/credit-plans/", request)
	if err != nil {
		return nil, fmt.Errorf("creating credit plan: %w", err)
	}

	return decode[subchain.X402CreditPlan](resp)
}

// Update implements subchain.X402CreditPlansClient.Update.
func (c *X402CreditPlansClient) Update(ctx context.Context, id int64, request *subchain.X402CreditPlanUpdateRequest) (*subchain.X402CreditPlan, error) {
	path := fmt.Sprintf("/api/x402/credit-plans/%d/", id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating credit plan: %w", err)
	}

	return decode[subchain.X402CreditPlan](resp)
}

// Delete implements subchain.X402CreditPlansClient.Delete.
func (c *X402CreditPlansClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/x402/credit-plans/%d/", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting credit plan: %w", err)
	}

	return nil
}
