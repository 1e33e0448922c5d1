package passwords

import (
	"context"
	"strings"
	"time"

	"github.com/lockboxapp/lockbox/internal/common"
)

const defaultType = "login"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the user's entries, newest first. Callers always get a
// non-nil slice.
func (s *Service) List(ctx context.Context, userID string) ([]*Entry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*Entry{}
	}
	return entries, nil
}

// Create validates the required fields and stores the entry under the
// user's scope. The server assigns the authoritative id; whatever id the
// client generated is discarded.
func (s *Service) Create(ctx context.Context, userID string, entry *Entry) (*Entry, error) {
	if strings.TrimSpace(entry.Title) == "" ||
		strings.TrimSpace(entry.Username) == "" ||
		strings.TrimSpace(entry.Password) == "" {
		return nil, common.ErrorValidation
	}

	if entry.Type == "" {
		entry.Type = defaultType
	}
	now := time.Now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now
	entry.UserID = userID

	return s.repo.Create(ctx, entry)
}

// Update replaces the entry with the given id, refreshing its updated
// timestamp. Unknown ids (including other users' ids) yield
// common.ErrorNotFound.
func (s *Service) Update(ctx context.Context, userID, id string, entry *Entry) (*Entry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, common.ErrorValidation
	}

	entry.ID = id
	entry.UserID = userID
	if entry.Type == "" {
		entry.Type = defaultType
	}
	entry.UpdatedAt = time.Now()

	return s.repo.Update(ctx, entry)
}

// Delete removes the entry with the given id from the user's vault.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(id) == "" {
		return common.ErrorValidation
	}
	return s.repo.Delete(ctx, userID, id)
}
