package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// X402ReceiptsClient implements subchain.X402ReceiptsClient.
type X402ReceiptsClient struct {
	httpClient *http.Client
}

// NewX402ReceiptsClient creates a new receipts client.
func NewX402ReceiptsClient(httpClient *http.Client) *X402ReceiptsClient {
	return &X402ReceiptsClient{httpClient: httpClient}
}

// List implements subchain.X402ReceiptsClient.List.
func (c *X402ReceiptsClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.X402Receipt], error) {
	resp, err := c.httpClient.Get(ctx, "/api/x402/receipts/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}

	return decodeList[subchain.X402Receipt](resp)
}
