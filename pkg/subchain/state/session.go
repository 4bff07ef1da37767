package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// Session tracks the authenticated user. Load validates a hydrated session
// against the server; a session whose tokens no longer resolve to a profile
// is cleared rather than left half-open.
type Session struct {
	mu sync.Mutex

	client  subchain.AuthClient
	user    *subchain.User
	loading bool
	err     error
}

// NewSession creates a session store over the given auth client.
func NewSession(client subchain.AuthClient) *Session {
	return &Session{client: client}
}

// Load validates any hydrated session by fetching the profile. Without
// tokens it is a no-op. A failed fetch logs the session out so stale tokens
// do not linger.
func (s *Session) Load(ctx context.Context) error {
	if !s.client.IsAuthenticated() {
		return nil
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	user, err := s.client.GetProfile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.user = nil
		s.err = err
		_ = s.client.Logout(ctx)

		return fmt.Errorf("validating session: %w", err)
	}

	s.user = user
	s.err = nil

	return nil
}

// Login opens a session and records the returned user.
func (s *Session) Login(ctx context.Context, email, password string) (*subchain.User, error) {
	resp, err := s.client.Login(ctx, &subchain.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	s.setUser(resp.User)

	return resp.User, nil
}

// Register creates an account, opens a session, and records the user.
func (s *Session) Register(ctx context.Context, request *subchain.RegisterRequest) (*subchain.User, error) {
	resp, err := s.client.Register(ctx, request)
	if err != nil {
		return nil, err
	}

	s.setUser(resp.User)

	return resp.User, nil
}

// Logout closes the session and forgets the user. It never fails: local
// state is cleared even when server-side invalidation does not go through.
func (s *Session) Logout(ctx context.Context) {
	_ = s.client.Logout(ctx)
	s.setUser(nil)
}

// RefreshProfile refetches the profile for the current session.
func (s *Session) RefreshProfile(ctx context.Context) (*subchain.User, error) {
	if !s.client.IsAuthenticated() {
		return nil, subchain.ErrNotAuthenticated
	}

	user, err := s.client.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	s.setUser(user)

	return user, nil
}

// UpdateProfile patches the profile and records the result.
func (s *Session) UpdateProfile(ctx context.Context, request *subchain.ProfileUpdateRequest) (*subchain.User, error) {
	user, err := s.client.UpdateProfile(ctx, request)
	if err != nil {
		return nil, err
	}

	s.setUser(user)

	return user, nil
}

// IsAuthenticated reports whether the underlying client holds a session.
func (s *Session) IsAuthenticated() bool {
	return s.client.IsAuthenticated()
}

// User returns the most recently recorded user, or nil before Load.
func (s *Session) User() *subchain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	user := *s.user

	return &user
}

// Loading reports whether a session validation is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// Err returns the error from the most recent validation, or nil.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *Session) setUser(user *subchain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.err = nil
}
