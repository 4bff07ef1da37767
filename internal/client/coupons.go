package client

import (
	"context"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// CouponsClient implements subchain.CouponsClient.
type CouponsClient struct {
	httpClient *http.Client
}

// NewCouponsClient creates a new coupons client.
func NewCouponsClient(httpClient *http.Client) *CouponsClient {
	return &CouponsClient{httpClient: httpClient}
}

// List implements subchain.CouponsClient.List.
func (c *CouponsClient) List(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Coupon], error) {
	resp, err := c.httpClient.Get(ctx, "/api/subscriptions/coupons/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing coupons: %w", err)
	}

	return decodeList[subchain.Coupon](resp)
}

// Create implements subchain.CouponsClient.Create.
func (c *CouponsClient) Create(ctx context.Context, request *subchain.CouponCreateRequest) (*subchain.Coupon, error) {
	resp, err := c.httpClient.Post(ctx, "/api/subscriptions/coupons/", request)
	if err != nil {
		return nil, fmt.Errorf("creating coupon: %w", err)
	}

	return decode[subchain.Coupon](resp)
}

// Update implements subchain.CouponsClient.Update.
func (c *CouponsClient) Update(ctx context.Context, id int64, request *subchain.CouponUpdateRequest) (*subchain.Coupon, error) {
	path := fmt.Sprintf("/api/subscriptions/coupons/%d/", id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating coupon: %w", err)
	}

	return decode[subchain.Coupon](resp)
}

// Delete implements subchain.CouponsClient.Delete.
func (c *CouponsClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/subscriptions/coupons/%d/", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting coupon: %w", err)
	}

	return nil
}
