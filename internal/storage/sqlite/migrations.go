package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type migration struct {
	name string
	up   func(ctx context.Context, tx *sql.Tx) error
}

var migrations = []migration{
	{
		name: "Create kv table",
		up: func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS kv
				(
				 key TEXT PRIMARY KEY,
				 value BLOB NOT NULL,
				 updated_at INTEGER NOT NULL
				) STRICT;`)
			return err
		},
	},
}

func createMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_migrations (
					version INTEGER PRIMARY KEY,
					applied_at INTEGER NOT NULL
			)
	`)
	return err
}

func (s *Storage) ApplyMigrations(ctx context.Context) error {
	if err := createMigrationsTable(ctx, s.db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion := 0
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for i, m := range migrations {
		migrationVersion := i + 1
		if migrationVersion <= currentVersion {
			continue
		}

		s.logger.Info("Applying migration",
			"version", migrationVersion,
			"name", m.name)

		if err := s.applyMigration(ctx, migrationVersion, m); err != nil {
			return err
		}

		s.logger.Info("Migration applied successfully", "version", migrationVersion)
	}

	return nil
}

func (s *Storage) applyMigration(ctx context.Context, version int, m migration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for migration %d: %w", version, err)
	}

	if err = m.up(ctx, tx); err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			return rErr
		}
		return fmt.Errorf("migration %d failed: %w", version, err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
		version, time.Now().Unix(),
	)
	if err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			return rErr
		}
		return fmt.Errorf("failed to record migration %d: %w", version, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", version, err)
	}

	return nil
}

// SchemaVersion returns the highest applied migration.
func (s *Storage) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}
