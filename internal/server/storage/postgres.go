package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/lockboxapp/lockbox/internal/server/migrations"
	"github.com/lockboxapp/lockbox/internal/server/passwords"
	"github.com/lockboxapp/lockbox/internal/server/users"
)

// PostgresRepositoryManager backs every repository with a shared
// PostgreSQL connection pool.
type PostgresRepositoryManager struct {
	db        *sql.DB
	users     users.Repository
	passwords passwords.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Passwords() passwords.Repository {
	return m.passwords
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	users, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	passwords, err := passwords.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("password repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:        db,
		users:     users,
		passwords: passwords,
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
