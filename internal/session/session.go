package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/RachaudKeyes/jobly-frontend/internal/types"
)

// Backend is the slice of the API client the session depends on. The
// concrete implementation is api.Client; tests substitute fakes.
type Backend interface {
	Login(ctx context.Context, req types.LoginRequest) (string, error)
	Signup(ctx context.Context, req types.SignupRequest) (string, error)
	GetCurrentUser(ctx context.Context, username string) (*types.User, error)
	SaveProfile(ctx context.Context, username string, patch types.ProfileUpdate) (*types.User, string, error)
	ApplyToJob(ctx context.Context, username string, jobID int) error
}

// Session is the single source of truth for who is logged in and what
// they have applied to. The token is mirrored to a TokenStore so a new
// process restores the session; identity is always derived from the token
// and never stored independently.
type Session struct {
	mu       sync.Mutex
	backend  Backend
	store    TokenStore
	token    string
	identity *Identity
	user     *types.User
	applied  map[int]struct{}
	pending  map[int]struct{}
}

// New creates a logged-out Session persisting its token to store. Call
// SetBackend before any operation that reaches the network, and Restore
// to pick up a previously persisted token.
func New(store TokenStore) *Session {
	return &Session{
		store:   store,
		applied: make(map[int]struct{}),
		pending: make(map[int]struct{}),
	}
}

// SetBackend attaches the API client. Split from New because the client
// itself needs the session as its token source.
func (s *Session) SetBackend(b Backend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backend = b
}

// Token returns the current session token, or "" when logged out. This
// implements api.TokenSource.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Identity returns the decoded identity, or nil when logged out.
func (s *Session) Identity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// User returns the most recently fetched profile, or nil.
func (s *Session) User() *types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// HasAppliedToJob reports whether jobID is in the applied-job set.
func (s *Session) HasAppliedToJob(jobID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.applied[jobID]
	return ok
}

// Restore loads a persisted token and, when one exists, re-derives the
// identity and refreshes the profile. A token that fails to decode is
// discarded from the store. A failed profile fetch leaves the session
// logged in with empty applied state; reads are never critical.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.store.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	identity, err := DecodeIdentity(token)
	if err != nil {
		_ = s.store.Clear()
		return fmt.Errorf("discarding unreadable persisted token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.identity = identity
	s.mu.Unlock()

	s.refreshUser(ctx)
	return nil
}

// Login authenticates, commits the issued token, and refreshes the
// profile. Failures propagate unchanged as the normalized message
// sequence from the API layer.
func (s *Session) Login(ctx context.Context, req types.LoginRequest) error {
	token, err := s.backend.Login(ctx, req)
	if err != nil {
		return err
	}
	if err := s.commitToken(token); err != nil {
		return err
	}
	s.refreshUser(ctx)
	return nil
}

// Signup registers a new account and starts a session, mirroring Login's
// post-condition.
func (s *Session) Signup(ctx context.Context, req types.SignupRequest) error {
	token, err := s.backend.Signup(ctx, req)
	if err != nil {
		return err
	}
	if err := s.commitToken(token); err != nil {
		return err
	}
	s.refreshUser(ctx)
	return nil
}

// SaveProfile applies a partial profile edit for the logged-in user. When
// the server rotates the token, the new token is committed before the
// call returns so subsequent requests use it.
func (s *Session) SaveProfile(ctx context.Context, patch types.ProfileUpdate) (*types.User, error) {
	identity := s.Identity()
	if identity == nil {
		return nil, fmt.Errorf("not logged in")
	}

	user, rotated, err := s.backend.SaveProfile(ctx, identity.Username, patch)
	if err != nil {
		return nil, err
	}

	if rotated != "" {
		if err := s.commitToken(rotated); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}

// ApplyToJob records an application for jobID. The call is idempotent: a
// job already applied to, or with an apply still in flight, returns
// immediately without a network call. The membership and in-flight checks
// happen synchronously before dispatch, so at most one request per job id
// is ever outstanding. The applied set is only updated after the server
// accepts the application; a failed call leaves HasAppliedToJob false.
func (s *Session) ApplyToJob(ctx context.Context, jobID int) error {
	s.mu.Lock()
	if s.identity == nil {
		s.mu.Unlock()
		return fmt.Errorf("not logged in")
	}
	if _, ok := s.applied[jobID]; ok {
		s.mu.Unlock()
		return nil
	}
	if _, ok := s.pending[jobID]; ok {
		s.mu.Unlock()
		return nil
	}
	s.pending[jobID] = struct{}{}
	username := s.identity.Username
	s.mu.Unlock()

	err := s.backend.ApplyToJob(ctx, username, jobID)

	s.mu.Lock()
	delete(s.pending, jobID)
	if err == nil {
		s.applied[jobID] = struct{}{}
	}
	s.mu.Unlock()
	return err
}

// Logout clears the token, identity, profile, and applied-job state, and
// removes the persisted token.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.user = nil
	s.applied = make(map[int]struct{})
	s.pending = make(map[int]struct{})
	s.mu.Unlock()
	return s.store.Clear()
}

// commitToken persists the token, then swaps it in and re-derives the
// identity. The store write happens first; a session that cannot persist
// its token would silently log out on the next run.
func (s *Session) commitToken(token string) error {
	identity, err := DecodeIdentity(token)
	if err != nil {
		return fmt.Errorf("server issued an unreadable token: %w", err)
	}
	if err := s.store.Save(token); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.identity = identity
	s.mu.Unlock()
	return nil
}

// refreshUser fetches the current profile and merges the server-known
// applied-job ids into the local set. Merging rather than replacing keeps
// optimistic applies from the current session that the server response
// may not reflect yet. Fetch failures degrade to "no profile" by design
// of the accessor.
func (s *Session) refreshUser(ctx context.Context) {
	identity := s.Identity()
	if identity == nil {
		return
	}

	user, err := s.backend.GetCurrentUser(ctx, identity.Username)
	if err != nil || user == nil {
		return
	}

	s.mu.Lock()
	s.user = user
	for _, jobID := range user.Applications {
		s.applied[jobID] = struct{}{}
	}
	s.mu.Unlock()
}
