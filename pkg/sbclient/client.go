// Package sbclient provides the main entry point for creating SubChain API clients
package sbclient

import (
	"os"
	"strings"

	"github.com/subchain-io/subchain-go/internal/client"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// EnvAPIURL is the environment variable holding the API base URL.
const EnvAPIURL = "SUBCHAIN_API_URL"

// DefaultBaseURL is used when no base URL is configured anywhere.
const DefaultBaseURL = "http://localhost:8000"

// New creates a new SubChain API client.
func New(config *subchain.Config) (subchain.Client, error) {
	if config == nil {
		return nil, subchain.ErrConfigRequired
	}

	if config.BaseURL == "" {
		config.BaseURL = ResolveBaseURL()
	}

	config.BaseURL = normalizeBaseURL(config.BaseURL)

	return client.New(config)
}

// NewWithEndpoint creates a client for a base URL with no session.
func NewWithEndpoint(baseURL string) (subchain.Client, error) {
	return New(&subchain.Config{BaseURL: baseURL})
}

// NewWithTokens creates a client seeded with an existing session.
func NewWithTokens(baseURL, accessToken, refreshToken string) (subchain.Client, error) {
	return New(&subchain.Config{
		BaseURL:      baseURL,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// NewWithStore creates a client that hydrates and persists its session
// through the given token store.
func NewWithStore(baseURL string, store subchain.TokenStore) (subchain.Client, error) {
	return New(&subchain.Config{BaseURL: baseURL, TokenStore: store})
}

// ResolveBaseURL returns the base URL from SUBCHAIN_API_URL, falling back to
// the local development default.
func ResolveBaseURL() string {
	if v := os.Getenv(EnvAPIURL); v != "" {
		return v
	}

	return DefaultBaseURL
}

// normalizeBaseURL trims a trailing slash and defaults the scheme to https
// when none is present.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
