package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// CurrencyClient implements subchain.CurrencyClient.
type CurrencyClient struct {
	httpClient *http.Client
}

// NewCurrencyClient creates a new currency client.
func NewCurrencyClient(httpClient *http.Client) *CurrencyClient {
	return &CurrencyClient{httpClient: httpClient}
}

// ListCurrencies implements subchain.CurrencyClient.ListCurrencies.
func (c *CurrencyClient) ListCurrencies(ctx context.Context) (*subchain.ListResponse[subchain.Currency], error) {
	resp, err := c.httpClient.Get(ctx, "/api/currency/currencies/", nil)
	if err != nil {
		return nil, fmt.Errorf("listing currencies: %w", err)
	}

	return decodeList[subchain.Currency](resp)
}

// ListExchangeRates implements subchain.CurrencyClient.ListExchangeRates.
func (c *CurrencyClient) ListExchangeRates(ctx context.Context) (*subchain.ListResponse[subchain.ExchangeRate], error) {
	resp, err := c.httpClient.Get(ctx, "/api/currency/exchange-rates/", nil)
	if err != nil {
		return nil, fmt.Errorf("listing exchange rates: %w", err)
	}

	return decodeList[subchain.ExchangeRate](resp)
}

// Convert implements subchain.CurrencyClient.Convert.
func (c *CurrencyClient) Convert(ctx context.Context, from, to, amount string) (*subchain.Conversion, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)
	query.Set("amount", amount)

	resp, err := c.httpClient.Get(ctx, "/api/currency/convert/", query)
	if err != nil {
		return nil, fmt.Errorf("converting currency: %w", err)
	}

	return decode[subchain.Conversion](resp)
}
