package passwords

import (
	"context"
)

// Repository stores vault entries. All operations are scoped to the owning
// user's id; an id that exists but belongs to someone else behaves exactly
// like an id that does not exist.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*Entry, error)
	Create(ctx context.Context, entry *Entry) (*Entry, error)
	Update(ctx context.Context, entry *Entry) (*Entry, error)
	Delete(ctx context.Context, userID, id string) error
}
