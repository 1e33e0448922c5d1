package passwords

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lockboxapp/lockbox/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Entry, error) {
	query :=
		`SELECT id, user_id, title, username, password, type, icon, created_at, updated_at
		 FROM passwords
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	out := make([]*Entry, 0)
	for rows.Next() {
		e := &Entry{}
		var icon sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Username, &e.Password, &e.Type, &icon, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		e.Icon = icon.String
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, entry *Entry) (*Entry, error) {
	query :=
		`INSERT INTO passwords (user_id, title, username, password, type, icon, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Title, entry.Username, entry.Password,
		entry.Type, entry.Icon, entry.CreatedAt, entry.UpdatedAt).Scan(&entry.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return entry, nil
}

func (r *PostgresRepository) Update(ctx context.Context, entry *Entry) (*Entry, error) {
	query :=
		`UPDATE passwords
		 SET title = $3, username = $4, password = $5, type = $6, icon = $7, updated_at = $8
		 WHERE id = $1 AND user_id = $2
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.Title, entry.Username, entry.Password,
		entry.Type, entry.Icon, entry.UpdatedAt).Scan(&entry.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return entry, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM passwords WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
