package testutil

import (
	"context"
	"testing"

	"github.com/GustavoCaso/spendwise/internal/config"
	"github.com/GustavoCaso/spendwise/internal/logger"
	"github.com/GustavoCaso/spendwise/internal/storage/sqlite"
)

// SetupTestStorage returns a migrated in-memory SQLite slot store that is
// closed when the test ends.
func SetupTestStorage(t *testing.T, l *logger.Logger) *sqlite.Storage {
	t.Helper()

	s, err := sqlite.New(context.Background(), config.DBConfig{Source: ":memory:", MaxOpenConns: 1}, l)
	if err != nil {
		t.Fatalf("Failed to open test storage: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close test storage: %v", err)
		}
	})

	return s
}
