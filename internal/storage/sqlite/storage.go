package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/GustavoCaso/spendwise/internal/config"
	"github.com/GustavoCaso/spendwise/internal/logger"
)

// Storage is a key-value slot store backed by a single SQLite table.
type Storage struct {
	db     *sql.DB
	logger *logger.Logger
}

func New(ctx context.Context, dbConfig config.DBConfig, l *logger.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbConfig.Source)
	if err != nil {
		return nil, err
	}

	if dbConfig.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dbConfig.MaxOpenConns)
	}

	if dbConfig.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)
	}

	pragmas := []struct {
		name  string
		value any
		set   bool
	}{
		{"journal_mode", dbConfig.JournalMode, dbConfig.JournalMode != ""},
		{"synchronous", dbConfig.Synchronous, dbConfig.Synchronous != ""},
		{"busy_timeout", dbConfig.BusyTimeout, dbConfig.BusyTimeout > 0},
	}

	for _, p := range pragmas {
		if !p.set {
			continue
		}
		if _, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA %s = %v", p.name, p.value)); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set %s: %w", p.name, err)
		}
	}

	s := &Storage{db: db, logger: l.WithComponent("sqlite")}

	if err = s.ApplyMigrations(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
