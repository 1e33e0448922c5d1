// Package session holds the client's authentication state: at most one
// authenticated user, a loading flag, and the last auth error. All
// transitions go through the store so observers (the router guard, UI)
// see a consistent sequence of snapshots.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/lockboxapp/lockbox/internal/client/gateway"
	"github.com/lockboxapp/lockbox/internal/client/models"
)

// AuthGateway performs the single login-or-register round trip.
type AuthGateway interface {
	Authenticate(ctx context.Context, profile models.Profile) (*gateway.Session, error)
}

// Snapshot is an immutable copy of the session state at one point in time.
type Snapshot struct {
	User    *models.User
	Loading bool
	Err     string
}

// Authenticated reports whether a user is present.
func (s Snapshot) Authenticated() bool { return s.User != nil }

// Store is the session state container. The zero state is anonymous:
// no user, not loading, no error.
//
// Transitions are applied atomically; when two auth calls race, whichever
// response commits last wins. The store does not queue, dedupe, or cancel
// in-flight calls.
type Store struct {
	gw AuthGateway

	mu      sync.Mutex
	user    *models.User
	loading bool
	err     string
	subs    []func(Snapshot)
}

// New builds a Store in the anonymous state.
func New(gw AuthGateway) *Store {
	return &Store{gw: gw}
}

// Subscribe registers fn to run after every committed transition. The
// callback receives the post-transition snapshot.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	var user *models.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return Snapshot{User: user, Loading: s.loading, Err: s.err}
}

// commit applies mutate under the lock and notifies subscribers with the
// resulting snapshot.
func (s *Store) commit(mutate func()) {
	s.mu.Lock()
	mutate()
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// SubmitCredentials attempts a login with the given email and password.
//
// Blank input fails locally: the error is returned to the caller but not
// committed to the store, and nothing reaches the network. Otherwise the
// store enters the authenticating state, performs the gateway call, and
// commits either the returned user (error cleared) or the failure message.
func (s *Store) SubmitCredentials(ctx context.Context, email, password string) error {
	return s.SubmitProfile(ctx, models.Profile{Email: email, Password: password})
}

// SubmitProfile is the registration-shaped variant of SubmitCredentials.
// The server decides login vs. registration; the store treats both the same.
func (s *Store) SubmitProfile(ctx context.Context, profile models.Profile) error {
	if strings.TrimSpace(profile.Email) == "" || strings.TrimSpace(profile.Password) == "" {
		return gateway.NewError(gateway.KindValidation, gateway.MsgEmailPasswordRequired)
	}

	s.commit(func() {
		s.loading = true
		s.err = ""
	})

	sess, err := s.gw.Authenticate(ctx, profile)
	if err != nil {
		s.commit(func() {
			s.loading = false
			s.err = err.Error()
		})
		return err
	}

	s.commit(func() {
		s.loading = false
		s.err = ""
		u := sess.User
		s.user = &u
	})
	return nil
}

// Logout clears the user and error. It is a no-op when no user is present.
func (s *Store) Logout() {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.commit(func() {
		s.user = nil
		s.err = ""
	})
}

// ClearError clears the error field without touching user or loading.
// Idempotent, callable in any state.
func (s *Store) ClearError() {
	s.commit(func() { s.err = "" })
}
