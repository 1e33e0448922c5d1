// Package vault holds the ordered credential list of the current session
// plus the selected entry for the detail view. Ordering is the display
// invariant: newest entries sit at the head of the list.
package vault

import (
	"context"
	"sync"

	"github.com/lockboxapp/lockbox/internal/client/models"
)

// Gateway performs the vault CRUD round trips.
type Gateway interface {
	FetchAll(ctx context.Context) ([]models.CredentialEntry, error)
	Add(ctx context.Context, entry models.CredentialEntry) (*models.CredentialEntry, error)
	Update(ctx context.Context, entry models.CredentialEntry) (*models.CredentialEntry, error)
	Delete(ctx context.Context, id string) error
}

// Snapshot is a copy of the vault state at one point in time.
type Snapshot struct {
	Entries   []models.CredentialEntry
	Current   *models.CredentialEntry
	IsFetched bool
	Loading   bool
	Err       string
}

// Store manages the in-memory credential list. Same commit discipline as
// the session store: transitions under a lock, observers notified after.
type Store struct {
	gw Gateway

	mu        sync.Mutex
	entries   []models.CredentialEntry
	current   *models.CredentialEntry
	isFetched bool
	loading   bool
	err       string
	subs      []func(Snapshot)
}

// New builds an empty, unfetched Store.
func New(gw Gateway) *Store {
	return &Store{gw: gw}
}

// Subscribe registers fn to run after every committed transition.
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
	entries := make([]models.CredentialEntry, len(s.entries))
	copy(entries, s.entries)
	var current *models.CredentialEntry
	if s.current != nil {
		c := *s.current
		current = &c
	}
	return Snapshot{
		Entries:   entries,
		Current:   current,
		IsFetched: s.isFetched,
		Loading:   s.loading,
		Err:       s.err,
	}
}

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

func (s *Store) begin() {
	s.commit(func() {
		s.loading = true
		s.err = ""
	})
}

func (s *Store) fail(err error) {
	s.commit(func() {
		s.loading = false
		s.err = err.Error()
	})
}

// FetchAll replaces the whole list with the server's view. isFetched
// latches true after the first successful fetch and never resets for the
// lifetime of the session.
func (s *Store) FetchAll(ctx context.Context) error {
	s.begin()

	entries, err := s.gw.FetchAll(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.commit(func() {
		s.loading = false
		s.entries = entries
		s.isFetched = true
	})
	return nil
}

// Add creates the entry remotely and, on success, prepends the server echo
// to the head of the list.
func (s *Store) Add(ctx context.Context, entry models.CredentialEntry) error {
	s.begin()

	created, err := s.gw.Add(ctx, entry)
	if err != nil {
		s.fail(err)
		return err
	}

	s.commit(func() {
		s.loading = false
		s.entries = append([]models.CredentialEntry{*created}, s.entries...)
	})
	return nil
}

// Update replaces the matching entry in place, preserving its position.
// When no entry matches the id, the result is silently dropped from the
// list, but the current selection is still refreshed if its id matches.
func (s *Store) Update(ctx context.Context, entry models.CredentialEntry) error {
	s.begin()

	updated, err := s.gw.Update(ctx, entry)
	if err != nil {
		s.fail(err)
		return err
	}

	s.commit(func() {
		s.loading = false
		for i := range s.entries {
			if s.entries[i].ID == updated.ID {
				s.entries[i] = *updated
				break
			}
		}
		if s.current != nil && s.current.ID == updated.ID {
			c := *updated
			s.current = &c
		}
	})
	return nil
}

// Delete removes the entry with the given id and clears the current
// selection if it held that id.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.begin()

	if err := s.gw.Delete(ctx, id); err != nil {
		s.fail(err)
		return err
	}

	s.commit(func() {
		s.loading = false
		kept := s.entries[:0]
		for _, e := range s.entries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		s.entries = kept
		if s.current != nil && s.current.ID == id {
			s.current = nil
		}
	})
	return nil
}

// SetCurrent selects an entry for the detail/edit view. Local only, no
// network effect.
func (s *Store) SetCurrent(entry models.CredentialEntry) {
	s.commit(func() {
		e := entry
		s.current = &e
	})
}

// ClearError clears the error field. Idempotent.
func (s *Store) ClearError() {
	s.commit(func() { s.err = "" })
}
