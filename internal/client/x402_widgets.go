package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// X402WidgetsClient implements subchain.X402WidgetsClient.
type X402WidgetsClient struct {
	httpClient *http.Client
}

// NewX402WidgetsClient creates a new widgets client.
func NewX402WidgetsClient(httpClient *http.Client) *X402WidgetsClient {
	return &X402WidgetsClient{httpClient: httpClient}
}

// List implements subchain.X402WidgetsClient.List.
func (c *X402WidgetsClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.X402Widget], error) {
	resp, err := c.httpClient.Get(ctx, "/api/x402/widgets/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing widgets: %w", err)
	}

	return decodeList[subchain.X402Widget](resp)
}

// Create implements subchain.X402WidgetsClient.Create.
func (c *X402WidgetsClient) Create(ctx context.Context, request *subchain.X402WidgetCreateRequest) (*subchain.X402Widget, error) {
	resp, err := c.httpClient.Post(ctx, "/api/x402/widgets/", request)
	if err != nil {
		return nil, fmt.Errorf("creating widget: %w", err)
	}

	return decode[subchain.X402Widget](resp)
}

// Update implements subchain.X402WidgetsClient.Update.
func (c *X402WidgetsClient) Update(ctx context.Context, id int64, request *subchain.X402WidgetUpdateRequest) (*subchain.X402Widget, error) {
	path := fmt.Sprintf("/api/x402/widgets/%d/", id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating widget: %w", err)
	}

	return decode[subchain.X402Widget](resp)
}

// Delete implements subchain.X402WidgetsClient.Delete.
func (c *X402WidgetsClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/x402/widgets/%d/", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting widget: %w", err)
	}

	return nil
}
