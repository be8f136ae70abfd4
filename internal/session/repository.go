package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

// Repository persists login sessions across gateway restarts.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	token      TEXT NOT NULL,
	user_id    INTEGER NOT NULL,
	user_name  TEXT NOT NULL,
	user_email TEXT NOT NULL,
	role       TEXT NOT NULL,
	created_at TEXT NOT NULL,
	expires_at TEXT NOT NULL
)`

// OpenDB opens (and if needed initializes) the session database file.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db failed: %w", err)
	}

	// The sqlite driver serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent logins.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session schema failed: %w", err)
	}

	return db, nil
}

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a Repository backed by the given database.
func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, s *Session) error {
	query, args, err := squirrel.Insert("sessions").
		Columns("id", "token", "user_id", "user_name", "user_email", "role", "created_at", "expires_at").
		Values(
			s.ID, s.Token,
			s.User.ID, s.User.Name, s.User.Email,
			s.Role,
			s.CreatedAt.UTC().Format(time.RFC3339),
			s.ExpiresAt.UTC().Format(time.RFC3339),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create session query failed: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create session failed: %w", err)
	}
	return nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id string) (*Session, error) {
	query, args, err := squirrel.Select(
		"id", "token", "user_id", "user_name", "user_email", "role", "created_at", "expires_at",
	).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get session query failed: %w", err)
	}

	var s Session
	var createdAt, expiresAt string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&s.ID, &s.Token,
		&s.User.ID, &s.User.Name, &s.User.Email,
		&s.Role, &createdAt, &expiresAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session failed: %w", err)
	}

	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parse session created_at failed: %w", err)
	}
	if s.ExpiresAt, err = time.Parse(time.RFC3339, expiresAt); err != nil {
		return nil, fmt.Errorf("parse session expires_at failed: %w", err)
	}

	return &s, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.Delete("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete session query failed: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session failed: %w", err)
	}
	return nil
}

func (r *sqliteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := squirrel.Delete("sessions").
		Where(squirrel.Lt{"expires_at": now.UTC().Format(time.RFC3339)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge sessions query failed: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purge sessions failed: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge sessions rows affected failed: %w", err)
	}
	return n, nil
}
