package passwords

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lockboxapp/lockbox/internal/common"
)

func newService() *Service {
	return NewService(NewMemoryRepository())
}

func mustCreate(t *testing.T, s *Service, userID, title string, createdAt time.Time) *Entry {
	t.Helper()
	created, err := s.Create(context.Background(), userID, &Entry{
		Title: title, Username: "u", Password: "p", CreatedAt: createdAt,
	})
	require.NoError(t, err)
	return created
}

func TestCreate_AssignsServerIDAndDefaults(t *testing.T) {
	s := newService()

	created, err := s.Create(context.Background(), "u1", &Entry{
		ID: "client-generated", Title: "GitHub", Username: "dev", Password: "pw",
	})
	require.NoError(t, err)
	require.NotEqual(t, "client-generated", created.ID)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "login", created.Type)
	require.Equal(t, "u1", created.UserID)
	require.False(t, created.UpdatedAt.IsZero())
}

func TestCreate_RequiredFields(t *testing.T) {
	s := newService()

	for _, e := range []*Entry{
		{Username: "u", Password: "p"},
		{Title: "t", Password: "p"},
		{Title: "t", Username: "u"},
		{Title: " ", Username: "u", Password: "p"},
	} {
		_, err := s.Create(context.Background(), "u1", e)
		require.ErrorIs(t, err, common.ErrorValidation)
	}
}

func TestList_NewestFirstAndScoped(t *testing.T) {
	s := newService()
	base := time.Now()

	mustCreate(t, s, "u1", "oldest", base.Add(-2*time.Hour))
	mustCreate(t, s, "u1", "middle", base.Add(-time.Hour))
	mustCreate(t, s, "u1", "newest", base)
	mustCreate(t, s, "other", "foreign", base)

	entries, err := s.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "newest", entries[0].Title)
	require.Equal(t, "middle", entries[1].Title)
	require.Equal(t, "oldest", entries[2].Title)
}

func TestList_EmptyVaultIsNotNil(t *testing.T) {
	s := newService()

	entries, err := s.List(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func TestUpdate(t *testing.T) {
	s := newService()
	created := mustCreate(t, s, "u1", "GitHub", time.Now())

	updated, err := s.Update(context.Background(), "u1", created.ID, &Entry{
		Title: "GitHub v2", Username: "dev", Password: "newpw",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "GitHub v2", updated.Title)

	_, err = s.Update(context.Background(), "u1", "missing", &Entry{Title: "x", Username: "u", Password: "p"})
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Update(context.Background(), "u1", " ", &Entry{})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestUpdate_OtherUsersEntryLooksMissing(t *testing.T) {
	s := newService()
	created := mustCreate(t, s, "owner", "Secret", time.Now())

	_, err := s.Update(context.Background(), "intruder", created.ID, &Entry{
		Title: "x", Username: "u", Password: "p",
	})
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.ErrorIs(t, s.Delete(context.Background(), "intruder", created.ID), common.ErrorNotFound)

	// still intact for the owner
	entries, err := s.List(context.Background(), "owner")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestDelete(t *testing.T) {
	s := newService()
	created := mustCreate(t, s, "u1", "GitHub", time.Now())

	require.NoError(t, s.Delete(context.Background(), "u1", created.ID))
	require.ErrorIs(t, s.Delete(context.Background(), "u1", created.ID), common.ErrorNotFound)
	require.ErrorIs(t, s.Delete(context.Background(), "u1", ""), common.ErrorValidation)
}
