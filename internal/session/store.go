// Package session holds the one piece of durable client state: the bearer
// token, kept in a small SQLite database so it survives process restarts.
// It also derives the numeric user id from the token payload, which some
// list endpoints expect as a query parameter.
package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// TokenKey is the fixed storage key the bearer token lives under.
const TokenKey = "token"

// ErrNoToken is returned when no token has been stored yet.
var ErrNoToken = errors.New("no token stored")

type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the session database at path and applies
// pending migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create session directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping session database: %w", err)
	}

	if err := RunMigrations(path); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Token returns the stored bearer token, or ErrNoToken when absent.
func (s *Store) Token() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = ?`, TokenKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return token, nil
}

// SetToken stores the bearer token, replacing any previous one.
func (s *Store) SetToken(token string) error {
	_, err := s.db.Exec(`
		INSERT INTO session (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		TokenKey, token)
	if err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// ClearToken removes the stored token. Clearing an absent token is not an
// error.
func (s *Store) ClearToken() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE key = ?`, TokenKey)
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// UserID derives the numeric user id from the currently stored token.
// It reports false when no token is stored or the token does not decode.
func (s *Store) UserID() (int64, bool) {
	token, err := s.Token()
	if err != nil {
		return 0, false
	}
	return UserIDFromToken(token)
}
