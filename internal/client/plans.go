package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// PlansClient implements subchain.PlansClient.
type PlansClient struct {
	httpClient *http.Client
}

// NewPlansClient creates a new plans client.
func NewPlansClient(httpClient *http.Client) *PlansClient {
	return &PlansClient{httpClient: httpClient}
}

// List implements subchain.PlansClient.List.
func (c *PlansClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Plan], error) {
	resp, err := c.httpClient.Get(ctx, "/api/subscriptions/plans/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}

	return decodeList[subchain.Plan](resp)
}

// Get implements subchain.PlansClient.Get.
func (c *PlansClient) Get(ctx context.Context, id int64) (*subchain.Plan, error) {
	path := fmt.Sprintf("/api/subscriptions/plans/%d/", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting plan: %w", err)
	}

	return decode[subchain.Plan](resp)
}

// Create implements subchain.PlansClient.Create.
func (c *PlansClient) Create(ctx context.Context, request *subchain.PlanCreateRequest) (*subchain.Plan, error) {
	resp, err := c.httpClient.Post(ctx, "/api/subscriptions/plans/", request)
	if err != nil {
		return nil, fmt.Errorf("creating plan: %w", err)
	}

	return decode[subchain.Plan](resp)
}

// Update implements subchain.PlansClient.Update.
func (c *PlansClient) Update(ctx context.Context, id int64, request *subchain.PlanUpdateRequest) (*subchain.Plan, error) {
	path := fmt.Sprintf("/api/subscriptions/plans/%d/", id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating plan: %w", err)
	}

	return decode[subchain.Plan](resp)
}

// Delete implements subchain.PlansClient.Delete.
func (c *PlansClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/subscriptions/plans/%d/", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}

	return nil
}
