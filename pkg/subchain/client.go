package subchain

import (
	"context"
	"time"
)

// AuthClient covers session lifecycle and account endpoints.
type AuthClient interface {
	// Login exchanges credentials for a session. Both returned tokens are
	// persisted to the configured token store.
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)

	// Register creates an account and opens a session.
	Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error)

	// Logout best-effort invalidates the refresh token server-side and
	// always clears local tokens, even when the server call fails.
	Logout(ctx context.Context) error

	GetProfile(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, request *ProfileUpdateRequest) (*User, error)
	GetSettings(ctx context.Context) (*Settings, error)
	UpdateSettings(ctx context.Context, request *SettingsUpdateRequest) (*Settings, error)
	ListActivity(ctx context.Context, params *ListParams) (*ListResponse[ActivityEntry], error)

	// IsAuthenticated reports whether the client currently holds an access
	// token. It does not validate the token against the server.
	IsAuthenticated() bool
}

// PlansClient manages subscription plans.
type PlansClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[Plan], error)
	Get(ctx context.Context, id int64) (*Plan, error)
	Create(ctx context.Context, request *PlanCreateRequest) (*Plan, error)
	Update(ctx context.Context, id int64, request *PlanUpdateRequest) (*Plan, error)
	Delete(ctx context.Context, id int64) error
}

// SubscriptionsClient manages subscriber agreements.
type SubscriptionsClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[Subscription], error)
	Get(ctx context.Context, id int64) (*Subscription, error)
	Create(ctx context.Context, request *SubscriptionCreateRequest) (*Subscription, error)
	Update(ctx context.Context, id int64, request *SubscriptionUpdateRequest) (*Subscription, error)
	Cancel(ctx context.Context, id int64) (*Subscription, error)
	Resume(ctx context.Context, id int64) (*Subscription, error)
	Activate(ctx context.Context, id int64) (*Subscription, error)
}

// CouponsClient manages discount codes.
type CouponsClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[Coupon], error)
	Create(ctx context.Context, request *CouponCreateRequest) (*Coupon, error)
	Update(ctx context.Context, id int64, request *CouponUpdateRequest) (*Coupon, error)
	Delete(ctx context.Context, id int64) error
}

// InvoicesClient manages invoices.
type InvoicesClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[Invoice], error)
	Get(ctx context.Context, id int64) (*Invoice, error)
	Create(ctx context.Context, request *InvoiceCreateRequest) (*Invoice, error)
	Update(ctx context.Context, id int64, request *InvoiceUpdateRequest) (*Invoice, error)
	Delete(ctx context.Context, id int64) error
	Pay(ctx context.Context, id int64, request *InvoicePayRequest) (*Invoice, error)
}

// PaymentsClient manages on-chain payments.
type PaymentsClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[Payment], error)
	Get(ctx context.Context, id int64) (*Payment, error)
	Create(ctx context.Context, request *PaymentCreateRequest) (*Payment, error)
	ConfirmWebhook(ctx context.Context, request *WebhookConfirmRequest) error

	// QRCodeURL builds the payment QR code image URL for the given amount and
	// currency. No request is issued.
	QRCodeURL(amount, currency string) string
}

// CurrencyClient exposes currency metadata and conversion.
type CurrencyClient interface {
	ListCurrencies(ctx context.Context) (*ListResponse[Currency], error)
	ListExchangeRates(ctx context.Context) (*ListResponse[ExchangeRate], error)
	Convert(ctx context.Context, from, to, amount string) (*Conversion, error)
}

// NotificationsClient manages the merchant notification feed.
type NotificationsClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[Notification], error)
	MarkRead(ctx context.Context, id int64) (*Notification, error)
	Delete(ctx context.Context, id int64) error

	// MarkAllRead uses the bulk endpoint when the deployment has one and
	// falls back to per-notification updates when it responds 404.
	MarkAllRead(ctx context.Context, unreadIDs []int64) error

	Send(ctx context.Context, request *SendNotificationRequest) error
}

// AnalyticsClient records and lists analytics events.
type AnalyticsClient interface {
	Log(ctx context.Context, request *AnalyticsLogRequest) error
	ListLogs(ctx context.Context, params *ListParams) (*ListResponse[AnalyticsEvent], error)
}

// IntegrationsClient manages third-party integrations.
type IntegrationsClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[Integration], error)
	Create(ctx context.Context, request *IntegrationCreateRequest) (*Integration, error)
	Update(ctx context.Context, id int64, request *IntegrationUpdateRequest) (*Integration, error)
	Delete(ctx context.Context, id int64) error
}

// X402PricingRulesClient manages pay-per-call pricing rules.
type X402PricingRulesClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[X402PricingRule], error)
	Create(ctx context.Context, request *X402PricingRuleCreateRequest) (*X402PricingRule, error)
	Update(ctx context.Context, id int64, request *X402PricingRuleUpdateRequest) (*X402PricingRule, error)
	Delete(ctx context.Context, id int64) error
}

// X402ReceiptsClient lists settled micropayments.
type X402ReceiptsClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[X402Receipt], error)
}

// X402LinksClient manages payment links.
type X402LinksClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[X402Link], error)
	Create(ctx context.Context, request *X402LinkCreateRequest) (*X402Link, error)
	Update(ctx context.Context, id int64, request *X402LinkUpdateRequest) (*X402Link, error)
	Delete(ctx context.Context, id int64) error
}

// X402WidgetsClient manages paywall widgets.
type X402WidgetsClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[X402Widget], error)
	Create(ctx context.Context, request *X402WidgetCreateRequest) (*X402Widget, error)
	Update(ctx context.Context, id int64, request *X402WidgetUpdateRequest) (*X402Widget, error)
	Delete(ctx context.Context, id int64) error
}

// X402CreditPlansClient manages prepaid credit bundles.
type X402CreditPlansClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[X402CreditPlan], error)
	Create(ctx context.Context, request *X402CreditPlanCreateRequest) (*X402CreditPlan, error)
	Update(ctx context.Context, id int64, request *X402CreditPlanUpdateRequest) (*X402CreditPlan, error)
	Delete(ctx context.Context, id int64) error
}

// X402CreditSubscriptionsClient manages consumer credit balances.
type X402CreditSubscriptionsClient interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[X402CreditSubscription], error)
	Get(ctx context.Context, id int64) (*X402CreditSubscription, error)
	Create(ctx context.Context, request *X402CreditSubscriptionCreateRequest) (*X402CreditSubscription, error)
	Consume(ctx context.Context, id int64, request *X402ConsumeRequest) (*X402CreditSubscription, error)
	ListUsage(ctx context.Context, id int64, params *ListParams) (*ListResponse[X402CreditUsageEntry], error)
}

// BillingClients groups the core billing resources.
type BillingClients interface {
	Plans() PlansClient
	Subscriptions() SubscriptionsClient
	Coupons() CouponsClient
	Invoices() InvoicesClient
}

// PaymentClients groups settlement and currency resources.
type PaymentClients interface {
	Payments() PaymentsClient
	Currency() CurrencyClient
}

// EngagementClients groups notification, analytics, and integration resources.
type EngagementClients interface {
	Notifications() NotificationsClient
	Analytics() AnalyticsClient
	Integrations() IntegrationsClient
}

// X402Clients groups the micropayment console resources.
type X402Clients interface {
	X402PricingRules() X402PricingRulesClient
	X402Receipts() X402ReceiptsClient
	X402Links() X402LinksClient
	X402Widgets() X402WidgetsClient
	X402CreditPlans() X402CreditPlansClient
	X402CreditSubscriptions() X402CreditSubscriptionsClient
}

// Client is the full SubChain API surface.
type Client interface {
	AuthClient
	BillingClients
	PaymentClients
	EngagementClients
	X402Clients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// TokenStore persists the session token pair between processes. The file
// store used by the CLI keeps the pair under the subchain_access_token and
// subchain_refresh_token keys; other implementations may use any durable
// medium.
type TokenStore interface {
	Load() (*TokenPair, error)
	Save(pair *TokenPair) error
	Clear() error
}

// Config represents client configuration.
//
// # Session hydration
//
// When TokenStore is set, the client hydrates the session from it during
// construction and writes every token change (login, refresh, logout) back.
// Without a store the session starts empty and lives only in memory.
//
// # Base URL
//
// BaseURL is required. The CLI resolves it from SUBCHAIN_API_URL, falling
// back to http://localhost:8000 for local development.
type Config struct {
	// BaseURL is the SubChain API origin, e.g. https://api.subchain.example.
	BaseURL string

	// AccessToken seeds the session with an existing access token.
	AccessToken string

	// RefreshToken seeds the session with an existing refresh token.
	RefreshToken string

	// TokenStore persists the session across processes. Optional.
	TokenStore TokenStore

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout bounds each request. Zero means the transport default.
	HTTPTimeout time.Duration

	// RetryMax caps transport-level retries for transient failures (5xx,
	// 429, connection errors). The 401 refresh-and-retry path is separate
	// and always happens at most once.
	RetryMax int

	// RetryWaitMin is the minimum backoff between transport retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between transport retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP logging when a Logger is provided.
	Debug bool

	// Logger receives structured log events. Optional.
	Logger Logger
}
