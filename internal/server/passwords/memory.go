package passwords

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lockboxapp/lockbox/internal/common"
)

// MemoryRepository keeps entries in a map. Used for tests and for running
// the server without a database.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]Entry)}
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			entry := e
			out = append(out, &entry)
		}
	}
	// newest first, matching the client's display invariant
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, entry *Entry) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = uuid.NewString()
	r.entries[entry.ID] = *entry
	e := *entry
	return &e, nil
}

func (r *MemoryRepository) Update(ctx context.Context, entry *Entry) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.entries[entry.ID]
	if !ok || stored.UserID != entry.UserID {
		return nil, common.ErrorNotFound
	}
	// creation time survives replacement
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = stored.CreatedAt
	}
	r.entries[entry.ID] = *entry
	e := *entry
	return &e, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.entries[id]
	if !ok || stored.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.entries, id)
	return nil
}
