package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Store is the single source of truth for "is authenticated". It is
// constructor-injected wherever identity is needed; there is no package
// global. All updates flow through SetToken/SetUser/Logout, and observers
// are notified after every change.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *models.Me

	repo      Repository
	observers []func()
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Init loads the persisted session at startup. A missing or partially
// readable session starts the store logged out rather than failing.
func (s *Store) Init(ctx context.Context) error {
	token, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("loading session token: %w", err)
	}

	var user *models.Me
	raw, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("loading cached profile: %w", err)
	}
	if len(raw) > 0 {
		var me models.Me
		if err := json.Unmarshal(raw, &me); err == nil {
			user = &me
		}
	}

	s.mu.Lock()
	s.token = string(token)
	s.user = user
	s.mu.Unlock()
	return nil
}

// Subscribe registers fn to run after every session change. Used by the CLI
// to redraw its prompt and by anything caching identity-derived state.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()
	for _, fn := range observers {
		fn()
	}
}

// Token returns the current bearer token, or "" when logged out. Safe to
// use as an api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached profile snapshot, or nil when none is cached.
func (s *Store) User() *models.Me {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated is the synchronous route-guard check: token presence only.
// Callers wanting certainty must revalidate with a who-am-I fetch.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// SetToken persists and publishes a new token. An empty token clears the
// stored one.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if token == "" {
		if err := s.repo.Delete(ctx, keyToken); err != nil {
			return err
		}
	} else {
		if err := s.repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.notify()
	return nil
}

// SetUser caches the fetched profile in memory and durable storage, so the
// next start can render identity without an immediate refetch.
func (s *Store) SetUser(ctx context.Context, user *models.Me) error {
	if user == nil {
		if err := s.repo.Delete(ctx, keyUser); err != nil {
			return err
		}
	} else {
		raw, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("encoding profile: %w", err)
		}
		if err := s.repo.Set(ctx, keyUser, raw); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.notify()
	return nil
}

// Logout wipes the token and cached profile from memory and durable
// storage. It is the only teardown path; the 401/403 interceptor and the
// explicit logout command both end up here.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.notify()
	return nil
}

// TokenExpiry reports the expiry of the current token, when it is a JWT
// carrying an exp claim. The token is decoded without verification: the
// backend is the authority, the client only uses this to warn about
// sessions that are about to end.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
