package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/subchain-io/subchain-go/internal/auth"
	"github.com/subchain-io/subchain-go/internal/http"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// Client implements the subchain.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager *auth.SessionTokenManager
	baseURL      string
	logger       subchain.Logger

	// Resource clients
	plans                   subchain.PlansClient
	subscriptions           subchain.SubscriptionsClient
	coupons                 subchain.CouponsClient
	invoices                subchain.InvoicesClient
	payments                subchain.PaymentsClient
	currency                subchain.CurrencyClient
	notifications           subchain.NotificationsClient
	analytics               subchain.AnalyticsClient
	integrations            subchain.IntegrationsClient
	x402PricingRules        subchain.X402PricingRulesClient
	x402Receipts            subchain.X402ReceiptsClient
	x402Links               subchain.X402LinksClient
	x402Widgets             subchain.X402WidgetsClient
	x402CreditPlans         subchain.X402CreditPlansClient
	x402CreditSubscriptions subchain.X402CreditSubscriptionsClient
}

// New creates a new SubChain API client.
func New(config *subchain.Config) (*Client, error) {
	if config == nil {
		return nil, subchain.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, subchain.ErrBaseURLRequired
	}

	tokenManager := auth.NewSessionTokenManager(config.BaseURL, config.TokenStore)
	if config.AccessToken != "" || config.RefreshToken != "" {
		tokenManager.SetTokens(config.AccessToken, config.RefreshToken)
	}

	httpClient := http.NewClient(config.BaseURL, tokenManager, httpOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      httpClient.BaseURL(),
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *subchain.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.plans = NewPlansClient(c.httpClient)
	c.subscriptions = NewSubscriptionsClient(c.httpClient)
	c.coupons = NewCouponsClient(c.httpClient)
	c.invoices = NewInvoicesClient(c.httpClient)
	c.payments = NewPaymentsClient(c.httpClient)
	c.currency = NewCurrencyClient(c.httpClient)
	c.notifications = NewNotificationsClient(c.httpClient)
	c.analytics = NewAnalyticsClient(c.httpClient)
	c.integrations = NewIntegrationsClient(c.httpClient)
	c.x402PricingRules = NewX402PricingRulesClient(c.httpClient)
	c.x402Receipts = NewX402ReceiptsClient(c.httpClient)
	c.x402Links = NewX402LinksClient(c.httpClient)
	c.x402Widgets = NewX402WidgetsClient(c.httpClient)
	c.x402CreditPlans = NewX402CreditPlansClient(c.httpClient)
	c.x402CreditSubscriptions = NewX402CreditSubscriptionsClient(c.httpClient)
}

// TokenManager exposes the session token manager, mainly for the CLI.
func (c *Client) TokenManager() *auth.SessionTokenManager {
	return c.tokenManager
}

// Login implements subchain.AuthClient.Login.
func (c *Client) Login(ctx context.Context, request *subchain.LoginRequest) (*subchain.AuthResponse, error) {
	resp, err := c.httpClient.PostNoAuth(ctx, "/api/auth/login/", request)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	authResp, err := decode[subchain.AuthResponse](resp)
	if err != nil {
		return nil, err
	}

	c.tokenManager.SetTokens(authResp.AccessToken, authResp.RefreshToken)

	return authResp, nil
}

// Register implements subchain.AuthClient.Register.
func (c *Client) Register(ctx context.Context, request *subchain.RegisterRequest) (*subchain.AuthResponse, error) {
	resp, err := c.httpClient.PostNoAuth(ctx, "/api/auth/register/", request)
	if err != nil {
		return nil, fmt.Errorf("registering: %w", err)
	}

	authResp, err := decode[subchain.AuthResponse](resp)
	if err != nil {
		return nil, err
	}

	c.tokenManager.SetTokens(authResp.AccessToken, authResp.RefreshToken)

	return authResp, nil
}

// Logout implements subchain.AuthClient.Logout. Local tokens are always
// cleared; the server-side invalidation is best-effort.
func (c *Client) Logout(ctx context.Context) error {
	tokens := c.tokenManager.Tokens()
	if tokens.RefreshToken != "" {
		_, _ = c.httpClient.Post(ctx, "/api/auth/logout/", map[string]string{
			"refresh": tokens.RefreshToken,
		})
	}

	c.tokenManager.ClearTokens()

	return nil
}

// IsAuthenticated implements subchain.AuthClient.IsAuthenticated.
func (c *Client) IsAuthenticated() bool {
	return c.tokenManager.Tokens().AccessToken != ""
}

// GetProfile implements subchain.AuthClient.GetProfile.
func (c *Client) GetProfile(ctx context.Context) (*subchain.User, error) {
	resp, err := c.httpClient.Get(ctx, "/api/auth/profile/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return decode[subchain.User](resp)
}

// UpdateProfile implements subchain.AuthClient.UpdateProfile.
func (c *Client) UpdateProfile(ctx context.Context, request *subchain.ProfileUpdateRequest) (*subchain.User, error) {
	resp, err := c.httpClient.Patch(ctx, "/api/auth/profile/", request)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	return decode[subchain.User](resp)
}

// GetSettings implements subchain.AuthClient.GetSettings.
func (c *Client) GetSettings(ctx context.Context) (*subchain.Settings, error) {
	resp, err := c.httpClient.Get(ctx, "/api/auth/settings/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return decode[subchain.Settings](resp)
}

// UpdateSettings implements subchain.AuthClient.UpdateSettings.
func (c *Client) UpdateSettings(ctx context.Context, request *subchain.SettingsUpdateRequest) (*subchain.Settings, error) {
	resp, err := c.httpClient.Patch(ctx, "/api/auth/settings/", request)
	if err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}

	return decode[subchain.Settings](resp)
}

// ListActivity implements subchain.AuthClient.ListActivity.
func (c *Client) ListActivity(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.ActivityEntry], error) {
	resp, err := c.httpClient.Get(ctx, "/api/auth/activity/", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}

	return decodeList[subchain.ActivityEntry](resp)
}

// Resource client accessors

// Plans implements subchain.BillingClients.Plans.
func (c *Client) Plans() subchain.PlansClient {
	return c.plans
}

// Subscriptions implements subchain.BillingClients.Subscriptions.
func (c *Client) Subscriptions() subchain.SubscriptionsClient {
	return c.subscriptions
}

// Coupons implements subchain.BillingClients.Coupons.
func (c *Client) Coupons() subchain.CouponsClient {
	return c.coupons
}

// Invoices implements subchain.BillingClients.Invoices.
func (c *Client) Invoices() subchain.InvoicesClient {
	return c.invoices
}

// Payments implements subchain.PaymentClients.Payments.
func (c *Client) Payments() subchain.PaymentsClient {
	return c.payments
}

// Currency implements subchain.PaymentClients.Currency.
func (c *Client) Currency() subchain.CurrencyClient {
	return c.currency
}

// Notifications implements subchain.EngagementClients.Notifications.
func (c *Client) Notifications() subchain.NotificationsClient {
	return c.notifications
}

// Analytics implements subchain.EngagementClients.Analytics.
func (c *Client) Analytics() subchain.AnalyticsClient {
	return c.analytics
}

// Integrations implements subchain.EngagementClients.Integrations.
func (c *Client) Integrations() subchain.IntegrationsClient {
	return c.integrations
}

// X402PricingRules implements subchain.X402Clients.X402PricingRules.
func (c *Client) X402PricingRules() subchain.X402PricingRulesClient {
	return c.x402PricingRules
}

// X402Receipts implements subchain.X402Clients.X402Receipts.
func (c *Client) X402Receipts() subchain.X402ReceiptsClient {
	return c.x402Receipts
}

// X402Links implements subchain.X402Clients.X402Links.
func (c *Client) X402Links() subchain.X402LinksClient {
	return c.x402Links
}

// X402Widgets implements subchain.X402Clients.X402Widgets.
func (c *Client) X402Widgets() subchain.X402WidgetsClient {
	return c.x402Widgets
}

// X402CreditPlans implements subchain.X402Clients.X402CreditPlans.
func (c *Client) X402CreditPlans() subchain.X402CreditPlansClient {
	return c.x402CreditPlans
}

// X402CreditSubscriptions implements subchain.X402Clients.X402CreditSubscriptions.
func (c *Client) X402CreditSubscriptions() subchain.X402CreditSubscriptionsClient {
	return c.x402CreditSubscriptions
}

// decode unmarshals a response body into T. An empty body (204/205 or an
// unparseable success) yields a zero value rather than an error.
func decode[T any](resp *http.Response) (*T, error) {
	var value T

	if len(resp.Body) == 0 {
		return &value, nil
	}

	if err := json.Unmarshal(resp.Body, &value); err != nil {
		// Parse failure on a success response is treated as an empty body.
		return &value, nil
	}

	return &value, nil
}

// decodeList unmarshals a list body, normalizing bare arrays into the
// paginated envelope: count defaults to the array length and next/previous
// to nil.
func decodeList[T any](resp *http.Response) (*subchain.ListResponse[T], error) {
	body := bytes.TrimSpace(resp.Body)

	if len(body) == 0 {
		return &subchain.ListResponse[T]{Results: []T{}}, nil
	}

	if body[0] == '[' {
		var results []T
		if err := json.Unmarshal(body, &results); err != nil {
			return nil, fmt.Errorf("parsing list response: %w", err)
		}

		return &subchain.ListResponse[T]{
			Count:   len(results),
			Results: results,
		}, nil
	}

	var list subchain.ListResponse[T]
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	if list.Results == nil {
		list.Results = []T{}
	}

	return &list, nil
}
