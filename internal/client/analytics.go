package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// AnalyticsClient implements subchain.AnalyticsClient.
type AnalyticsClient struct {
	httpClient *http.Client
}

// NewAnalyticsClient creates a new analytics client.
func NewAnalyticsClient(httpClient *http.Client) *AnalyticsClient {
	return &AnalyticsClient{httpClient: httpClient}
}

// Log implements subchain.AnalyticsClient.Log.
func (c *AnalyticsClient) Log(ctx context.Context, request *subchain.AnalyticsLogRequest) error {
	_, err := c.httpClient.Post(ctx, "/api/analytics/logs/", request)
	if err != nil {
		return fmt.Errorf("logging analytics event: %w", err)
	}

	return nil
}

// ListLogs implements subchain.AnalyticsClient.ListLogs.
func (c *AnalyticsClient) ListLogs(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.AnalyticsEvent], error) {
	resp, err := c.httpClient.Get(ctx, "/api/analytics/logs/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing analytics logs: %w", err)
	}

	return decodeList[subchain.AnalyticsEvent](resp)
}
