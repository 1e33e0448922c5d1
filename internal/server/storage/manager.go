// Package storage selects and wires a storage backend for the server.
// A RepositoryManager owns the repositories of every resource plus the
// schema migrations for backends that need them.
package storage

import (
	"context"
	"database/sql"

	"github.com/lockboxapp/lockbox/internal/server/passwords"
	"github.com/lockboxapp/lockbox/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Passwords() passwords.Repository
}
