package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// PaymentsClient implements subchain.PaymentsClient.
type PaymentsClient struct {
	httpClient *http.Client
}

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(httpClient *http.Client) *PaymentsClient {
	return &PaymentsClient{httpClient: httpClient}
}

// List implements subchain.PaymentsClient.List.
func (c *PaymentsClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Payment], error) {
	resp, err := c.httpClient.Get(ctx, "/api/payments/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	return decodeList[subchain.Payment](resp)
}

// Get implements subchain.PaymentsClient.Get.
func (c *PaymentsClient) Get(ctx context.Context, id int64) (*subchain.Payment, error) {
	path := fmt.Sprintf("/api/payments/%d/", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return decode[subchain.Payment](resp)
}

// Create implements subchain.PaymentsClient.Create.
func (c *PaymentsClient) Create(ctx context.Context, request *subchain.PaymentCreateRequest) (*subchain.Payment, error) {
	resp, err := c.httpClient.Post(ctx, "/api/payments/", request)
	if err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}

	return decode[subchain.Payment](resp)
}

// ConfirmWebhook implements subchain.PaymentsClient.ConfirmWebhook.
func (c *PaymentsClient) ConfirmWebhook(ctx context.Context, request *subchain.WebhookConfirmRequest) error {
	_, err := c.httpClient.Post(ctx, "/api/payments/webhook/algo-confirm/", request)
	if err != nil {
		return fmt.Errorf("confirming payment webhook: %w", err)
	}

	return nil
}

// QRCodeURL implements subchain.PaymentsClient.QRCodeURL.
func (c *PaymentsClient) QRCodeURL(amount, currency string) string {
	query := url.Values{}
	query.Set("amount", amount)
	query.Set("currency", currency)

	return c.httpClient.BuildURL("/api/payments/qr/", query)
}
