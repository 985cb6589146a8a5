// Package session holds the client-side authentication state: the bearer
// token, the resolved user profile, and the loading phase the route guards
// key off. It is the single writer of the API client's authorization header
// and of the persisted credential entry, so the three can never drift apart.
package session

import (
	"context"
	"sync"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/errors"
	"github.com/prideconnect/prideconnect/internal/log"
)

// State is an immutable snapshot of the session.
//
// Invariant: User != nil implies Token != "". A user is never considered
// authenticated without a credential.
type State struct {
	Token   string
	User    *api.User
	Loading bool
}

// Authenticated reports whether a user profile has been resolved.
func (s State) Authenticated() bool {
	return s.User != nil
}

// Store is the single source of truth for "who is logged in".
//
// One Store exists per process. It mutates only through Initialize, Login,
// Register, Logout, UpdateProfile, and AdoptExternalToken; pages and guards
// read snapshots via State and Subscribe and never touch the token directly.
//
// Every token change bumps an internal generation counter. An in-flight
// profile resolution captures the generation it was started for and discards
// its result if the generation moved on, so a logout always wins the race
// against a stale resolution response.
type Store struct {
	client  *api.Client
	storage TokenStorage
	logger  *log.Logger

	mu         sync.Mutex
	token      string
	user       *api.User
	loading    bool
	generation uint64

	subs    map[uint64]chan State
	nextSub uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store with injected transport and persistence. The store
// starts in the loading phase; call Initialize to settle it.
func New(client *api.Client, storage TokenStorage, opts ...Option) *Store {
	s := &Store{
		client:  client,
		storage: storage,
		loading: true,
		subs:    make(map[uint64]chan State),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = log.DefaultLogger()
	}

	return s
}

// Client returns the API client whose authorization header this store
// manages. Screens use it for everything that is not an auth operation.
func (s *Store) Client() *api.Client {
	return s.client
}

// State returns a snapshot of the current session.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Subscribe registers an observer of session changes. The returned channel is
// primed with the current state and receives a snapshot after every mutation,
// for the lifetime of the subscription. The cancel func must be called when
// the observer unmounts.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++

	ch := make(chan State, 16)
	ch <- s.stateLocked()
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}

	return ch, cancel
}

// Initialize reads the persisted token and, when present, resolves it into a
// user profile. The loading phase ends when the resolution settles, whether
// it succeeded or not. A failed resolution forces a logout and is not
// surfaced: the user never observed themselves as logged in.
func (s *Store) Initialize(ctx context.Context) {
	token, err := s.storage.Load()
	if err != nil {
		s.logger.WithError(err).Warn("credential load failed, starting logged out")
	}

	if token == "" {
		s.mu.Lock()
		s.loading = false
		s.broadcastLocked()
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.token = token
	s.loading = true
	s.client.SetToken(token)
	s.broadcastLocked()
	s.mu.Unlock()

	if _, err := s.resolveProfile(ctx, gen); err != nil {
		s.logger.WithError(err).Debug("initial profile resolution failed, session cleared")
	}
}

// resolveProfile exchanges the current token for a profile. The result is
// applied only if gen still matches the store's generation; otherwise a later
// operation (typically Logout) superseded this resolution and the response is
// discarded. Any failure is fail-closed: an unresolvable token is invalid.
func (s *Store) resolveProfile(ctx context.Context, gen uint64) (*api.User, error) {
	user, err := s.client.CurrentUser(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		s.logger.Debug("discarding stale profile resolution")
		if err != nil {
			return nil, err
		}
		return nil, errors.New(errors.ErrCodeSessionConflict, "session changed during resolution")
	}

	if err != nil {
		s.logoutLocked()
		s.loading = false
		s.broadcastLocked()
		return nil, err
	}

	s.user = user
	s.loading = false
	s.broadcastLocked()
	return user, nil
}

// Login authenticates with email and password. On success the new token is
// persisted, attached to the API client, and token and user are set in one
// step. On failure the error propagates and no state changes.
func (s *Store) Login(ctx context.Context, email, password string) (*api.User, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.applyCredentials(resp.Token, &resp.User); err != nil {
		return nil, err
	}

	return &resp.User, nil
}

// Register creates a new account. On success it behaves exactly like Login.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) (*api.User, error) {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.applyCredentials(resp.Token, &resp.User); err != nil {
		return nil, err
	}

	return &resp.User, nil
}

// Logout clears the token, the resolved user, the persisted credential entry,
// and the API client's authorization header in one step. It is idempotent and
// never fails; a storage error is logged and the in-memory session is cleared
// regardless.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logoutLocked()
	s.loading = false
	s.broadcastLocked()
}

// UpdateProfile sends a partial profile update. On success the server's copy
// replaces the local user; nothing is merged client-side. A logout that lands
// while the update is in flight wins: the response is returned to the caller
// but not applied to the session.
func (s *Store) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.User, error) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return nil, errors.New(errors.ErrCodeTokenMissing, "not logged in")
	}
	gen := s.generation
	s.mu.Unlock()

	user, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		s.logger.Debug("discarding stale profile update result")
		return user, nil
	}

	s.user = user
	s.broadcastLocked()
	return user, nil
}

// AdoptExternalToken installs a token obtained outside the normal login flow
// (the SSO callback) and resolves it with the same semantics as
// initialization: the profile is fetched fresh, and any failure clears the
// session. This replaces the raw token setter the SSO page would otherwise
// need.
func (s *Store) AdoptExternalToken(ctx context.Context, token string) (*api.User, error) {
	if token == "" {
		return nil, errors.NewValidationError("empty token")
	}

	if err := s.storage.Save(token); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.token = token
	s.user = nil
	s.loading = true
	s.client.SetToken(token)
	s.broadcastLocked()
	s.mu.Unlock()

	return s.resolveProfile(ctx, gen)
}

// applyCredentials persists and installs a fresh token/user pair. The
// persisted entry is written first so a crash between the two steps leaves a
// resolvable token rather than an orphaned in-memory session.
func (s *Store) applyCredentials(token string, user *api.User) error {
	if err := s.storage.Save(token); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.token = token
	s.user = user
	s.loading = false
	s.client.SetToken(token)
	s.broadcastLocked()
	return nil
}

// logoutLocked clears credential state. Callers hold s.mu.
func (s *Store) logoutLocked() {
	s.generation++

	if err := s.storage.Clear(); err != nil {
		s.logger.WithError(err).Warn("credential clear failed")
	}

	s.client.SetToken("")
	s.token = ""
	s.user = nil
}

func (s *Store) stateLocked() State {
	return State{
		Token:   s.token,
		User:    s.user,
		Loading: s.loading,
	}
}

// broadcastLocked fans the current state out to all subscribers. A slow
// subscriber loses intermediate snapshots, never the latest one.
func (s *Store) broadcastLocked() {
	st := s.stateLocked()
	for _, ch := range s.subs {
		select {
		case ch <- st:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}
