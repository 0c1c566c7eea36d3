package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Mking11/reque3sted/internal/logging"
	"github.com/Mking11/reque3sted/internal/types"
)

// LocalStore implements UserStore on top of a local SQLite database.
// It is the durable alternative to MemoryStore for CLI use, where each
// invocation is a fresh process.
type LocalStore struct {
	db     *sql.DB
	dbPath string
}

// NewLocalStore opens (creating if necessary) the SQLite database at
// the given path and ensures the schema exists.
func NewLocalStore(path string) (*LocalStore, error) {
	timer := logging.StartTimer(logging.CategoryStore, "NewLocalStore")
	defer timer.Stop()

	logging.Store("Initializing LocalStore at path: %s", path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite synchronous=NORMAL: %v", err)
	}

	s := &LocalStore{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	logging.Store("LocalStore ready")
	return s, nil
}

// initialize creates the users table.
func (s *LocalStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		name TEXT,
		age INTEGER,
		gender TEXT,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *LocalStore) Close() error {
	logging.Store("Closing LocalStore database connection")
	return s.db.Close()
}

// Insert creates or overwrites the record for u.ID.
func (s *LocalStore) Insert(ctx context.Context, u types.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, age, gender, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			gender = excluded.gender,
			updated_at = CURRENT_TIMESTAMP`,
		u.ID, u.Name, u.Age, u.Gender)
	if err != nil {
		return fmt.Errorf("failed to insert user %d: %w", u.ID, err)
	}
	logging.StoreDebug("sqlite: inserted user %d", u.ID)
	return nil
}

// Update overwrites the record for u.ID if it exists; a missing ID
// affects zero rows and is not an error.
func (s *LocalStore) Update(ctx context.Context, u types.User) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET name = ?, age = ?, gender = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		u.Name, u.Age, u.Gender, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", u.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil {
		logging.StoreDebug("sqlite: updated user %d (rows=%d)", u.ID, n)
	}
	return nil
}

// Delete removes the record for u.ID if present.
func (s *LocalStore) Delete(ctx context.Context, u types.User) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", u.ID); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", u.ID, err)
	}
	logging.StoreDebug("sqlite: deleted user %d", u.ID)
	return nil
}

// GetByID returns the record for id, or (nil, nil) if absent.
func (s *LocalStore) GetByID(ctx context.Context, id int64) (*types.User, error) {
	var u types.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, age, gender FROM users WHERE id = ?", id).
		Scan(&u.ID, &u.Name, &u.Age, &u.Gender)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	return &u, nil
}
