package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// InvoicesClient implements subchain.InvoicesClient.
type InvoicesClient struct {
	httpClient *http.Client
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(httpClient *http.Client) *InvoicesClient {
	return &InvoicesClient{httpClient: httpClient}
}

// List implements subchain.InvoicesClient.List.
func (c *InvoicesClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Invoice], error) {
	resp, err := c.httpClient.Get(ctx, "/api/subscriptions/invoices/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	return decodeList[subchain.Invoice](resp)
}

// Get implements subchain.InvoicesClient.Get.
func (c *InvoicesClient) Get(ctx context.Context, id int64) (*subchain.Invoice, error) {
	path := fmt.Sprintf("/api/subscriptions/invoices/%d/", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return decode[subchain.Invoice](resp)
}

// Create implements subchain.InvoicesClient.Create.
func (c *InvoicesClient) Create(ctx context.Context, request *subchain.InvoiceCreateRequest) (*subchain.Invoice, error) {
	resp, err := c.httpClient.Post(ctx, "/api/subscriptions/invoices/", request)
	if err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	return decode[subchain.Invoice](resp)
}

// Update implements subchain.InvoicesClient.Update.
func (c *InvoicesClient) Update(ctx context.Context, id int64, request *subchain.InvoiceUpdateRequest) (*subchain.Invoice, error) {
	path := fmt.Sprintf("/api/subscriptions/invoices/%d/", id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	return decode[subchain.Invoice](resp)
}

// Delete implements subchain.InvoicesClient.Delete.
func (c *InvoicesClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/subscriptions/invoices/%d/", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

// Pay implements subchain.InvoicesClient.Pay.
func (c *InvoicesClient) Pay(ctx context.Context, id int64, request *subchain.InvoicePayRequest) (*subchain.Invoice, error) {
	path := fmt.Sprintf("/api/subscriptions/invoices/%d/pay/", id)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("paying invoice: %w", err)
	}

	return decode[subchain.Invoice](resp)
}
