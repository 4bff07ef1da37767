package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// RefreshPath is the unauthenticated token refresh endpoint.
const RefreshPath = "/api/auth/token/refresh/"

const refreshHTTPTimeout = 10 * time.Second

// SessionTokenManager owns the access/refresh token pair for one client.
// All token mutation happens behind its mutex, so concurrent 401s coalesce
// into a single refresh call instead of racing duplicate refreshes.
type SessionTokenManager struct {
	mutex   sync.Mutex
	access  string
	refresh string

	// generation is bumped on every token change; callers observe it before
	// blocking on the mutex so a refresh that raced another refresh can tell
	// the work is already done.
	generation atomic.Uint64

	refreshURL string
	store      subchain.TokenStore
	httpClient *http.Client
}

// NewSessionTokenManager creates a token manager. When store is non-nil the
// session is hydrated from it immediately; a store read failure leaves the
// session empty rather than failing construction.
func NewSessionTokenManager(baseURL string, store subchain.TokenStore) *SessionTokenManager {
	m := &SessionTokenManager{
		refreshURL: baseURL + RefreshPath,
		store:      store,
		httpClient: &http.Client{Timeout: refreshHTTPTimeout},
	}

	if store != nil {
		if pair, err := store.Load(); err == nil && pair != nil {
			m.access = pair.AccessToken
			m.refresh = pair.RefreshToken
		}
	}

	return m
}

// GetToken returns the current access token, or "" when unauthenticated.
func (m *SessionTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.access, nil
}

// CanRefresh reports whether a refresh token is held.
func (m *SessionTokenManager) CanRefresh() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.refresh != ""
}

// SetTokens replaces both tokens and persists them.
func (m *SessionTokenManager) SetTokens(access, refresh string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.access = access
	m.refresh = refresh
	m.generation.Add(1)
	m.persistLocked()
}

// ClearTokens wipes both tokens from memory and the store.
func (m *SessionTokenManager) ClearTokens() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.clearLocked()
}

// Tokens returns a snapshot of the current pair.
func (m *SessionTokenManager) Tokens() subchain.TokenPair {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return subchain.TokenPair{AccessToken: m.access, RefreshToken: m.refresh}
}

// RefreshToken exchanges the refresh token for a new access token. The
// refresh call is unauthenticated. Any failure (no refresh token excepted)
// clears all token state so the caller lands in a logged-out state instead
// of looping. Callers that raced a concurrent refresh observe its result
// without issuing a second call.
func (m *SessionTokenManager) RefreshToken(ctx context.Context) error {
	observed := m.generation.Load()

	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.refreshLocked(ctx, observed)
}

// RefreshIfStale refreshes proactively when the access token's exp claim is
// within the given window. A missing or unparseable claim is treated as
// stale.
func (m *SessionTokenManager) RefreshIfStale(ctx context.Context, within time.Duration) error {
	observed := m.generation.Load()

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.access == "" || m.refresh == "" {
		return nil
	}

	expiry, ok := tokenExpiry(m.access)
	if ok && time.Now().Add(within).Before(expiry) {
		return nil
	}

	return m.refreshLocked(ctx, observed)
}

func (m *SessionTokenManager) refreshLocked(ctx context.Context, observedGeneration uint64) error {
	if m.refresh == "" {
		return subchain.ErrNoRefreshToken
	}

	// A concurrent caller already refreshed while we waited for the lock.
	if m.generation.Load() != observedGeneration {
		return nil
	}

	payload, err := json.Marshal(map[string]string{"refresh": m.refresh})
	if err != nil {
		return fmt.Errorf("encoding refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.refreshURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating refresh request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.clearLocked()

		return fmt.Errorf("%w: %w", subchain.ErrRefreshFailed, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		m.clearLocked()

		return fmt.Errorf("%w: reading response: %w", subchain.ErrRefreshFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		m.clearLocked()

		return fmt.Errorf("%w: status %d", subchain.ErrRefreshFailed, resp.StatusCode)
	}

	var parsed struct {
		Access string `json:"access"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Access == "" {
		m.clearLocked()

		return fmt.Errorf("%w: response missing access token", subchain.ErrRefreshFailed)
	}

	// The refresh token is rotated only by login; it stays as-is here.
	m.access = parsed.Access
	m.generation.Add(1)
	m.persistLocked()

	return nil
}

func (m *SessionTokenManager) clearLocked() {
	m.access = ""
	m.refresh = ""
	m.generation.Add(1)

	if m.store != nil {
		_ = m.store.Clear()
	}
}

func (m *SessionTokenManager) persistLocked() {
	if m.store == nil {
		return
	}

	_ = m.store.Save(&subchain.TokenPair{AccessToken: m.access, RefreshToken: m.refresh})
}

// tokenExpiry extracts the exp claim without verifying the signature; the
// server is the authority, this is only a hint for proactive refresh.
func tokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
