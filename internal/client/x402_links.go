package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// X402LinksClient implements subchain.X402LinksClient.
type X402LinksClient struct {
	httpClient *http.Client
}

// NewX402LinksClient creates a new payment links client.
func NewX402LinksClient(httpClient *http.Client) *X402LinksClient {
	return &X402LinksClient{httpClient: httpClient}
}

// List implements subchain.X402LinksClient.List.
func (c *X402LinksClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.X402Link], error) {
	resp, err := c.httpClient.Get(ctx, "/api/x402/links/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing payment links: %w", err)
	}

	return decodeList[subchain.X402Link](resp)
}

// Create implements subchain.X402LinksClient.Create.
func (c *X402LinksClient) Create(ctx context.Context, request *subchain.X402LinkCreateRequest) (*subchain.X402Link, error) {
	resp, err := c.httpClient.Post(ctx, "/api/x402/links/", request)
	if err != nil {
		return nil, fmt.Errorf("creating payment link: %w", err)
	}

	return decode[subchain.X402Link](resp)
}

// Update implements subchain.X402LinksClient.Update.
func (c *X402LinksClient) Update(ctx context.Context, id int64, request *subchain.X402LinkUpdateRequest) (*subchain.X402Link, error) {
	path := fmt.Sprintf("/api/x402/links/%d/", id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating payment link: %w", err)
	}

	return decode[subchain.X402Link](resp)
}

// Delete implements subchain.X402LinksClient.Delete.
func (c *X402LinksClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/x402/links/%d/", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting payment link: %w", err)
	}

	return nil
}
