package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// TokenManager supplies bearer tokens and performs the one-shot refresh.
type TokenManager interface {
	// GetToken returns the current access token, or "" when none is held.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken obtains a new access token using the refresh token. On
	// failure the manager clears all token state before returning.
	RefreshToken(ctx context.Context) error

	// CanRefresh reports whether a refresh token is held.
	CanRefresh() bool
}

// Logger interface for HTTP request/response logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string

	// Body is JSON-encoded when non-nil and RawBody is empty.
	Body interface{}

	// RawBody is sent verbatim with ContentType; Content-Type is omitted
	// entirely when ContentType is empty (multipart bodies set their own
	// boundary header via Headers).
	RawBody     []byte
	ContentType string

	// SkipAuth suppresses the Authorization header and the 401 refresh
	// path. Used by login, register, and the refresh call itself.
	SkipAuth bool
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

const defaultUserAgent = "subchain-go"

// Client is the HTTP transport for the SubChain API.
type Client struct {
	baseURL      string
	tokenManager TokenManager
	retryClient  *retryablehttp.Client
	userAgent    string
	logger       Logger
	debug        bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables transport-level retries for transient failures
// (5xx, 429, connection errors). Client errors are never retried here; the
// 401 refresh path is separate.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds each request attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new transport. tokenManager may be nil for a client
// that only hits public endpoints.
func NewClient(baseURL string, tokenManager TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		retryClient:  retryClient,
		userAgent:    defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BuildURL joins the base URL, path, and query parameters.
func (c *Client) BuildURL(path string, query url.Values) string {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	return fullURL
}

// Do executes a request. HTTP-level failures are returned as *subchain.
// APIError values alongside the response; network-level failures yield a
// status-0 APIError and a nil response. Do never panics on either.
//
// On 401, when auth was not skipped and a refresh token is held, exactly one
// refresh is attempted; success retries the original request once with the
// new token, failure surfaces the original 401 with token state cleared by
// the manager.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.execute(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !req.SkipAuth &&
		c.tokenManager != nil && c.tokenManager.CanRefresh() {
		refreshErr := c.tokenManager.RefreshToken(ctx)
		if refreshErr != nil {
			return resp, subchain.NewAPIError(resp.StatusCode, resp.Body)
		}

		retried, err := c.execute(ctx, req)
		if err != nil {
			return nil, err
		}

		return c.normalize(retried)
	}

	return c.normalize(resp)
}

// execute performs one attempt (plus any configured transient retries).
func (c *Client) execute(ctx context.Context, req *Request) (*Response, error) {
	body, contentType, err := c.encodeBody(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	fullURL := c.BuildURL(req.Path, req.Query)

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if !req.SkipAuth && c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err == nil && token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return nil, subchain.NewNetworkError(err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, subchain.NewNetworkError(err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// normalize maps a raw response to the uniform success/error contract:
// 204/205 succeed with no body, other 2xx succeed with their body, and
// everything else becomes an APIError with the message extracted from the
// detail/message/error fields.
func (c *Client) normalize(resp *Response) (*Response, error) {
	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusResetContent:
		resp.Body = nil

		return resp, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return resp, nil
	default:
		return resp, subchain.NewAPIError(resp.StatusCode, resp.Body)
	}
}

func (c *Client) encodeBody(req *Request) (interface{}, string, error) {
	if len(req.RawBody) > 0 {
		return req.RawBody, req.ContentType, nil
	}

	if req.Body == nil {
		return nil, "", nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", err
	}

	return data, "application/json", nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostNoAuth performs an unauthenticated POST. Used for login, register, and
// token refresh, which must not carry a stale bearer token.
func (c *Client) PostNoAuth(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body, SkipAuth: true})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
