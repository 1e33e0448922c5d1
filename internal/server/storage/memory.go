package storage

import (
	"context"
	"database/sql"

	"github.com/lockboxapp/lockbox/internal/server/passwords"
	"github.com/lockboxapp/lockbox/internal/server/users"
)

// InMemoryRepositoryManager keeps everything in process memory. Used when
// no database DSN is configured, and by tests.
type InMemoryRepositoryManager struct {
	users     users.Repository
	passwords passwords.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) Close() error {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Passwords() passwords.Repository {
	return m.passwords
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		users:     users.NewMemoryRepository(),
		passwords: passwords.NewMemoryRepository(),
	}
}
