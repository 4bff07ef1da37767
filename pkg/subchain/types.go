package subchain

import (
	"time"
)

// Resource is the base structure shared by API resources.
type Resource struct {
	ID        int64     `json:"id"         yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// ListResponse is the paginated envelope returned by list endpoints.
//
// Some deployments return a bare JSON array instead of the envelope; the
// client normalizes both shapes, so Count is always set (defaulting to
// len(Results)) and Next/Previous are nil when the server paginates nothing.
type ListResponse[T any] struct {
	Count    int     `json:"count"    yaml:"count"`
	Next     *string `json:"next"     yaml:"next"`
	Previous *string `json:"previous" yaml:"previous"`
	Results  []T     `json:"results"  yaml:"results"`
}

// TokenPair holds the access/refresh token pair identifying a session.
type TokenPair struct {
	AccessToken  string `json:"access"  yaml:"access"`
	RefreshToken string `json:"refresh" yaml:"refresh"`
}

// User represents the authenticated merchant account.
type User struct {
	Resource

	Email         string `json:"email"                    yaml:"email"`
	Username      string `json:"username"                 yaml:"username"`
	FirstName     string `json:"first_name,omitempty"     yaml:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"      yaml:"last_name,omitempty"`
	CompanyName   string `json:"company_name,omitempty"   yaml:"company_name,omitempty"`
	WalletAddress string `json:"wallet_address,omitempty" yaml:"wallet_address,omitempty"`
}

// LoginRequest is the payload for POST /api/auth/login/.
type LoginRequest struct {
	Email    string `json:"email"    yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// RegisterRequest is the payload for POST /api/auth/register/.
type RegisterRequest struct {
	Email       string `json:"email"                  yaml:"email"`
	Username    string `json:"username"               yaml:"username"`
	Password    string `json:"password"               yaml:"password"`
	CompanyName string `json:"company_name,omitempty" yaml:"company_name,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	TokenPair

	User *User `json:"user,omitempty" yaml:"user,omitempty"`
}

// ProfileUpdateRequest patches the merchant profile.
type ProfileUpdateRequest struct {
	FirstName     *string `json:"first_name,omitempty"     yaml:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"      yaml:"last_name,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"   yaml:"company_name,omitempty"`
	WalletAddress *string `json:"wallet_address,omitempty" yaml:"wallet_address,omitempty"`
}

// Settings represents merchant account settings.
type Settings struct {
	EmailNotifications   bool   `json:"email_notifications"   yaml:"email_notifications"`
	WebhookURL           string `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty"`
	DefaultCurrency      string `json:"default_currency"      yaml:"default_currency"`
	InvoiceDueDays       int    `json:"invoice_due_days"      yaml:"invoice_due_days"`
	AutoCollectInvoices  bool   `json:"auto_collect_invoices" yaml:"auto_collect_invoices"`
	LowBalanceThreshold  string `json:"low_balance_threshold,omitempty" yaml:"low_balance_threshold,omitempty"`
}

// SettingsUpdateRequest patches merchant account settings.
type SettingsUpdateRequest struct {
	EmailNotifications  *bool   `json:"email_notifications,omitempty"   yaml:"email_notifications,omitempty"`
	WebhookURL          *string `json:"webhook_url,omitempty"           yaml:"webhook_url,omitempty"`
	DefaultCurrency     *string `json:"default_currency,omitempty"      yaml:"default_currency,omitempty"`
	InvoiceDueDays      *int    `json:"invoice_due_days,omitempty"      yaml:"invoice_due_days,omitempty"`
	AutoCollectInvoices *bool   `json:"auto_collect_invoices,omitempty" yaml:"auto_collect_invoices,omitempty"`
}

// ActivityEntry is one row of the account activity feed.
type ActivityEntry struct {
	Resource

	Action    string `json:"action"               yaml:"action"`
	IPAddress string `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// Plan represents a subscription plan offered by the merchant.
type Plan struct {
	Resource

	Name            string `json:"name"                  yaml:"name"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	Amount          string `json:"amount"                yaml:"amount"`
	Currency        string `json:"currency"              yaml:"currency"`
	Interval        string `json:"interval"              yaml:"interval"`
	TrialDays       int    `json:"trial_days"            yaml:"trial_days"`
	IsActive        bool   `json:"is_active"             yaml:"is_active"`
	SubscriberCount int    `json:"subscriber_count"      yaml:"subscriber_count"`
}

// PlanCreateRequest creates a plan.
type PlanCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Amount      string `json:"amount"                yaml:"amount"`
	Currency    string `json:"currency"              yaml:"currency"`
	Interval    string `json:"interval"              yaml:"interval"`
	TrialDays   int    `json:"trial_days,omitempty"  yaml:"trial_days,omitempty"`
}

// PlanUpdateRequest patches a plan.
type PlanUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Amount      *string `json:"amount,omitempty"      yaml:"amount,omitempty"`
	TrialDays   *int    `json:"trial_days,omitempty"  yaml:"trial_days,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"   yaml:"is_active,omitempty"`
}

// Subscription statuses reported by the API.
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusTrialing = "trialing"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
)

// Subscription represents a subscriber's recurring billing agreement.
type Subscription struct {
	Resource

	Plan               *Plan      `json:"plan,omitempty"          yaml:"plan,omitempty"`
	PlanID             int64      `json:"plan_id"                 yaml:"plan_id"`
	SubscriberEmail    string     `json:"subscriber_email"        yaml:"subscriber_email"`
	WalletAddress      string     `json:"wallet_address"          yaml:"wallet_address"`
	Status             string     `json:"status"                  yaml:"status"`
	CurrentPeriodStart *time.Time `json:"current_period_start,omitempty" yaml:"current_period_start,omitempty"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end,omitempty"   yaml:"current_period_end,omitempty"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"    yaml:"cancel_at_period_end"`
	CanceledAt         *time.Time `json:"canceled_at,omitempty"   yaml:"canceled_at,omitempty"`
}

// SubscriptionCreateRequest creates a subscription.
type SubscriptionCreateRequest struct {
	PlanID          int64  `json:"plan_id"          yaml:"plan_id"`
	SubscriberEmail string `json:"subscriber_email" yaml:"subscriber_email"`
	WalletAddress   string `json:"wallet_address"   yaml:"wallet_address"`
	CouponCode      string `json:"coupon_code,omitempty" yaml:"coupon_code,omitempty"`
}

// SubscriptionUpdateRequest patches a subscription.
type SubscriptionUpdateRequest struct {
	PlanID            *int64 `json:"plan_id,omitempty"              yaml:"plan_id,omitempty"`
	CancelAtPeriodEnd *bool  `json:"cancel_at_period_end,omitempty" yaml:"cancel_at_period_end,omitempty"`
}

// Coupon represents a discount code.
type Coupon struct {
	Resource

	Code           string     `json:"code"                     yaml:"code"`
	DiscountType   string     `json:"discount_type"            yaml:"discount_type"`
	DiscountValue  string     `json:"discount_value"           yaml:"discount_value"`
	MaxRedemptions int        `json:"max_redemptions"          yaml:"max_redemptions"`
	TimesRedeemed  int        `json:"times_redeemed"           yaml:"times_redeemed"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"     yaml:"expires_at,omitempty"`
	IsActive       bool       `json:"is_active"                yaml:"is_active"`
}

// CouponCreateRequest creates a coupon.
type CouponCreateRequest struct {
	Code           string     `json:"code"                      yaml:"code"`
	DiscountType   string     `json:"discount_type"             yaml:"discount_type"`
	DiscountValue  string     `json:"discount_value"            yaml:"discount_value"`
	MaxRedemptions int        `json:"max_redemptions,omitempty" yaml:"max_redemptions,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"      yaml:"expires_at,omitempty"`
}

// CouponUpdateRequest patches a coupon.
type CouponUpdateRequest struct {
	DiscountValue  *string    `json:"discount_value,omitempty"  yaml:"discount_value,omitempty"`
	MaxRedemptions *int       `json:"max_redemptions,omitempty" yaml:"max_redemptions,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"      yaml:"expires_at,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"       yaml:"is_active,omitempty"`
}

// Invoice statuses reported by the API.
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusOpen  = "open"
	InvoiceStatusPaid  = "paid"
	InvoiceStatusVoid  = "void"
)

// Invoice represents a billing invoice.
type Invoice struct {
	Resource

	Number         string     `json:"number"              yaml:"number"`
	SubscriptionID int64      `json:"subscription_id"     yaml:"subscription_id"`
	AmountDue      string     `json:"amount_due"          yaml:"amount_due"`
	AmountPaid     string     `json:"amount_paid"         yaml:"amount_paid"`
	Currency       string     `json:"currency"            yaml:"currency"`
	Status         string     `json:"status"              yaml:"status"`
	DueDate        *time.Time `json:"due_date,omitempty"  yaml:"due_date,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"   yaml:"paid_at,omitempty"`
}

// InvoiceCreateRequest creates an invoice.
type InvoiceCreateRequest struct {
	SubscriptionID int64      `json:"subscription_id"     yaml:"subscription_id"`
	AmountDue      string     `json:"amount_due"          yaml:"amount_due"`
	Currency       string     `json:"currency"            yaml:"currency"`
	DueDate        *time.Time `json:"due_date,omitempty"  yaml:"due_date,omitempty"`
}

// InvoiceUpdateRequest patches an invoice.
type InvoiceUpdateRequest struct {
	AmountDue *string    `json:"amount_due,omitempty" yaml:"amount_due,omitempty"`
	Status    *string    `json:"status,omitempty"     yaml:"status,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"   yaml:"due_date,omitempty"`
}

// InvoicePayRequest records a payment against an invoice.
type InvoicePayRequest struct {
	TxHash  string `json:"tx_hash"           yaml:"tx_hash"`
	Network string `json:"network,omitempty" yaml:"network,omitempty"`
}

// Payment represents an on-chain payment transaction.
type Payment struct {
	Resource

	InvoiceID   int64                  `json:"invoice_id,omitempty"   yaml:"invoice_id,omitempty"`
	Amount      string                 `json:"amount"                 yaml:"amount"`
	Currency    string                 `json:"currency"               yaml:"currency"`
	TxHash      string                 `json:"tx_hash,omitempty"      yaml:"tx_hash,omitempty"`
	Network     string                 `json:"network,omitempty"      yaml:"network,omitempty"`
	Status      string                 `json:"status"                 yaml:"status"`
	ConfirmedAt *time.Time             `json:"confirmed_at,omitempty" yaml:"confirmed_at,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"     yaml:"metadata,omitempty"`
}

// PaymentCreateRequest records a payment.
type PaymentCreateRequest struct {
	InvoiceID int64  `json:"invoice_id,omitempty" yaml:"invoice_id,omitempty"`
	Amount    string `json:"amount"               yaml:"amount"`
	Currency  string `json:"currency"             yaml:"currency"`
	TxHash    string `json:"tx_hash,omitempty"    yaml:"tx_hash,omitempty"`
	Network   string `json:"network,omitempty"    yaml:"network,omitempty"`
}

// WebhookConfirmRequest is the payload for the Algorand confirmation webhook.
type WebhookConfirmRequest struct {
	TxHash string `json:"tx_hash" yaml:"tx_hash"`
	Round  int64  `json:"round"   yaml:"round"`
}

// Currency describes a supported fiat or crypto currency.
type Currency struct {
	Code     string `json:"code"      yaml:"code"`
	Name     string `json:"name"      yaml:"name"`
	Symbol   string `json:"symbol"    yaml:"symbol"`
	Decimals int    `json:"decimals"  yaml:"decimals"`
	IsCrypto bool   `json:"is_crypto" yaml:"is_crypto"`
}

// ExchangeRate is one quoted rate between two currencies.
type ExchangeRate struct {
	Base      string    `json:"base"       yaml:"base"`
	Quote     string    `json:"quote"      yaml:"quote"`
	Rate      string    `json:"rate"       yaml:"rate"`
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// Conversion is the result of a currency conversion.
type Conversion struct {
	From      string `json:"from"      yaml:"from"`
	To        string `json:"to"        yaml:"to"`
	Amount    string `json:"amount"    yaml:"amount"`
	Converted string `json:"converted" yaml:"converted"`
	Rate      string `json:"rate"      yaml:"rate"`
}

// Notification is one entry in the merchant notification feed.
type Notification struct {
	Resource

	Title   string `json:"title"   yaml:"title"`
	Message string `json:"message" yaml:"message"`
	Level   string `json:"level"   yaml:"level"`
	IsRead  bool   `json:"is_read" yaml:"is_read"`
}

// NotificationUpdateRequest patches a notification.
type NotificationUpdateRequest struct {
	IsRead *bool `json:"is_read,omitempty" yaml:"is_read,omitempty"`
}

// SendNotificationRequest pushes a notification to a subscriber.
type SendNotificationRequest struct {
	Email   string `json:"email"   yaml:"email"`
	Title   string `json:"title"   yaml:"title"`
	Message string `json:"message" yaml:"message"`
	Level   string `json:"level,omitempty" yaml:"level,omitempty"`
}

// AnalyticsEvent is a client-reported analytics log entry.
type AnalyticsEvent struct {
	Resource

	Event      string                 `json:"event"                yaml:"event"`
	Properties map[string]interface{} `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// AnalyticsLogRequest records an analytics event.
type AnalyticsLogRequest struct {
	Event      string                 `json:"event"                yaml:"event"`
	Properties map[string]interface{} `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Integration represents a configured third-party integration.
type Integration struct {
	Resource

	Provider string                 `json:"provider"         yaml:"provider"`
	Name     string                 `json:"name"             yaml:"name"`
	Config   map[string]interface{} `json:"config,omitempty" yaml:"config,omitempty"`
	IsActive bool                   `json:"is_active"        yaml:"is_active"`
}

// IntegrationCreateRequest creates an integration.
type IntegrationCreateRequest struct {
	Provider string                 `json:"provider"         yaml:"provider"`
	Name     string                 `json:"name"             yaml:"name"`
	Config   map[string]interface{} `json:"config,omitempty" yaml:"config,omitempty"`
}

// IntegrationUpdateRequest patches an integration.
type IntegrationUpdateRequest struct {
	Name     *string                `json:"name,omitempty"      yaml:"name,omitempty"`
	Config   map[string]interface{} `json:"config,omitempty"    yaml:"config,omitempty"`
	IsActive *bool                  `json:"is_active,omitempty" yaml:"is_active,omitempty"`
}

// X402PricingRule prices one path/method pair for pay-per-call access.
type X402PricingRule struct {
	Resource

	Path        string `json:"path"                  yaml:"path"`
	Method      string `json:"method"                yaml:"method"`
	Price       string `json:"price"                 yaml:"price"`
	Currency    string `json:"currency"              yaml:"currency"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	IsActive    bool   `json:"is_active"             yaml:"is_active"`
}

// X402PricingRuleCreateRequest creates a pricing rule.
type X402PricingRuleCreateRequest struct {
	Path        string `json:"path"                  yaml:"path"`
	Method      string `json:"method"                yaml:"method"`
	Price       string `json:"price"                 yaml:"price"`
	Currency    string `json:"currency"              yaml:"currency"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// X402PricingRuleUpdateRequest patches a pricing rule.
type X402PricingRuleUpdateRequest struct {
	Price       *string `json:"price,omitempty"       yaml:"price,omitempty"`
	Currency    *string `json:"currency,omitempty"    yaml:"currency,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"   yaml:"is_active,omitempty"`
}

// X402Receipt records one settled micropayment.
//
// Metadata is a server-defined payload bag; the only key the dashboard
// branches on is "expected_receiver".
type X402Receipt struct {
	Resource

	RuleID   int64                  `json:"rule_id,omitempty"  yaml:"rule_id,omitempty"`
	Path     string                 `json:"path"               yaml:"path"`
	Method   string                 `json:"method"             yaml:"method"`
	Amount   string                 `json:"amount"             yaml:"amount"`
	Currency string                 `json:"currency"           yaml:"currency"`
	Payer    string                 `json:"payer"              yaml:"payer"`
	TxHash   string                 `json:"tx_hash,omitempty"  yaml:"tx_hash,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ExpectedReceiver returns the expected_receiver metadata field, if present.
func (r *X402Receipt) ExpectedReceiver() (string, bool) {
	v, ok := r.Metadata["expected_receiver"].(string)

	return v, ok
}

// X402Link is a shareable pay-per-access link.
type X402Link struct {
	Resource

	Slug     string `json:"slug"           yaml:"slug"`
	Title    string `json:"title"          yaml:"title"`
	URL      string `json:"url"            yaml:"url"`
	Price    string `json:"price"          yaml:"price"`
	Currency string `json:"currency"       yaml:"currency"`
	Hits     int    `json:"hits"           yaml:"hits"`
	IsActive bool   `json:"is_active"      yaml:"is_active"`
}

// X402LinkCreateRequest creates a payment link.
type X402LinkCreateRequest struct {
	Title    string `json:"title"    yaml:"title"`
	URL      string `json:"url"      yaml:"url"`
	Price    string `json:"price"    yaml:"price"`
	Currency string `json:"currency" yaml:"currency"`
}

// X402LinkUpdateRequest patches a payment link.
type X402LinkUpdateRequest struct {
	Title    *string `json:"title,omitempty"     yaml:"title,omitempty"`
	Price    *string `json:"price,omitempty"     yaml:"price,omitempty"`
	IsActive *bool   `json:"is_active,omitempty" yaml:"is_active,omitempty"`
}

// X402Widget is an embeddable paywall widget.
type X402Widget struct {
	Resource

	Name      string `json:"name"       yaml:"name"`
	EmbedCode string `json:"embed_code" yaml:"embed_code"`
	Price     string `json:"price"      yaml:"price"`
	Currency  string `json:"currency"   yaml:"currency"`
	IsActive  bool   `json:"is_active"  yaml:"is_active"`
}

// X402WidgetCreateRequest creates a widget.
type X402WidgetCreateRequest struct {
	Name     string `json:"name"     yaml:"name"`
	Price    string `json:"price"    yaml:"price"`
	Currency string `json:"currency" yaml:"currency"`
}

// X402WidgetUpdateRequest patches a widget.
type X402WidgetUpdateRequest struct {
	Name     *string `json:"name,omitempty"      yaml:"name,omitempty"`
	Price    *string `json:"price,omitempty"     yaml:"price,omitempty"`
	IsActive *bool   `json:"is_active,omitempty" yaml:"is_active,omitempty"`
}

// X402CreditPlan is a prepaid credit bundle.
type X402CreditPlan struct {
	Resource

	Name     string `json:"name"      yaml:"name"`
	Credits  int64  `json:"credits"   yaml:"credits"`
	Price    string `json:"price"     yaml:"price"`
	Currency string `json:"currency"  yaml:"currency"`
	IsActive bool   `json:"is_active" yaml:"is_active"`
}

// X402CreditPlanCreateRequest creates a credit plan.
type X402CreditPlanCreateRequest struct {
	Name     string `json:"name"     yaml:"name"`
	Credits  int64  `json:"credits"  yaml:"credits"`
	Price    string `json:"price"    yaml:"price"`
	Currency string `json:"currency" yaml:"currency"`
}

// X402CreditPlanUpdateRequest patches a credit plan.
type X402CreditPlanUpdateRequest struct {
	Name     *string `json:"name,omitempty"      yaml:"name,omitempty"`
	Credits  *int64  `json:"credits,omitempty"   yaml:"credits,omitempty"`
	Price    *string `json:"price,omitempty"     yaml:"price,omitempty"`
	IsActive *bool   `json:"is_active,omitempty" yaml:"is_active,omitempty"`
}

// X402CreditSubscription tracks a consumer's prepaid credit balance.
type X402CreditSubscription struct {
	Resource

	PlanID           int64  `json:"plan_id"           yaml:"plan_id"`
	Consumer         string `json:"consumer"          yaml:"consumer"`
	CreditsRemaining int64  `json:"credits_remaining" yaml:"credits_remaining"`
	Status           string `json:"status"            yaml:"status"`
}

// X402CreditSubscriptionCreateRequest enrolls a consumer in a credit plan.
type X402CreditSubscriptionCreateRequest struct {
	PlanID   int64  `json:"plan_id"  yaml:"plan_id"`
	Consumer string `json:"consumer" yaml:"consumer"`
}

// X402ConsumeRequest debits credits from a credit subscription.
type X402ConsumeRequest struct {
	Credits int64  `json:"credits"        yaml:"credits"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
}

// X402CreditUsageEntry records one credit debit.
type X402CreditUsageEntry struct {
	Resource

	SubscriptionID int64  `json:"subscription_id" yaml:"subscription_id"`
	CreditsUsed    int64  `json:"credits_used"    yaml:"credits_used"`
	Path           string `json:"path,omitempty"  yaml:"path,omitempty"`
}
