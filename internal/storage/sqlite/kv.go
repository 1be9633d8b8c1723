package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/GustavoCaso/spendwise/internal/storage"
)

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	row := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixNano())
	return err
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	return err
}

var _ storage.KV = (*Storage)(nil)
