package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// IntegrationsClient implements subchain.IntegrationsClient.
type IntegrationsClient struct {
	httpClient *http.Client
}

// NewIntegrationsClient creates a new integrations client.
func NewIntegrationsClient(httpClient *http.Client) *IntegrationsClient {
	return &IntegrationsClient{httpClient: httpClient}
}

// List implements subchain.IntegrationsClient.List.
func (c *IntegrationsClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Integration], error) {
	resp, err := c.httpClient.Get(ctx, "/api/integrations/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing integrations: %w", err)
	}

	return decodeList[subchain.Integration](resp)
}

// Create implements subchain.IntegrationsClient.Create.
func (c *IntegrationsClient) Create(ctx context.Context, request *subchain.IntegrationCreateRequest) (*subchain.Integration, error) {
	resp, err := c.httpClient.Post(ctx, "/api/integrations/", request)
	if err != nil {
		return nil, fmt.Errorf("creating integration: %w", err)
	}

	return decode[subchain.Integration](resp)
}

// Update implements subchain.IntegrationsClient.Update.
func (c *IntegrationsClient) Update(ctx context.Context, id int64, request *subchain.IntegrationUpdateRequest) (*subchain.Integration, error) {
	path := fmt.Sprintf("/api/integrations/%d/", id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating integration: %w", err)
	}

	return decode[subchain.Integration](resp)
}

// Delete implements subchain.IntegrationsClient.Delete.
func (c *IntegrationsClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/integrations/%d/", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting integration: %w", err)
	}

	return nil
}
