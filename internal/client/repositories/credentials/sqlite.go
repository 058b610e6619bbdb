package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bookhubb/bookhub/internal/dbx"
)

type SQLiteStore struct {
	db  dbx.DBTX
	key string
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore stores the credential in the credentials table under key.
func NewSQLiteStore(db dbx.DBTX, key string) *SQLiteStore {
	return &SQLiteStore{db: db, key: key}
}

func (s *SQLiteStore) Read(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE name = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential[%s]: %w", s.key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Write(ctx context.Context, credential string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.key, credential)
	if err != nil {
		return fmt.Errorf("failed to write credential[%s]: %w", s.key, err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE name = ?`, s.key)
	if err != nil {
		return fmt.Errorf("failed to clear credential[%s]: %w", s.key, err)
	}
	return nil
}
