package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GustavoCaso/spendwise/internal/expense"
	"github.com/GustavoCaso/spendwise/internal/logger"
)

const (
	ExpensesKey      = "expense_tracker_expenses"
	ExportHistoryKey = "spendwise_export_history"
)

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return "record not found"
	}
	return fmt.Sprintf("record %s not found", e.ID)
}

// ErrKeyNotFound is returned by KV implementations when a key has no value.
var ErrKeyNotFound = errors.New("key not found")

// KV is a durable slot keyed by name holding opaque bytes.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Persister loads and saves the whole expense collection.
type Persister interface {
	Load(ctx context.Context) []expense.Expense
	Save(ctx context.Context, expenses []expense.Expense) error
}

// JSONSlot stores a JSON encoded value of type T under a fixed key.
// Load is fail-open: a missing, unreadable or malformed value yields the
// zero slice and is only logged.
type JSONSlot[T any] struct {
	kv     KV
	key    string
	logger *logger.Logger
}

func NewJSONSlot[T any](kv KV, key string, l *logger.Logger) *JSONSlot[T] {
	return &JSONSlot[T]{kv: kv, key: key, logger: l}
}

func (s *JSONSlot[T]) Load(ctx context.Context) []T {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Warn("Unable to read storage slot", "key", s.key, "error", err.Error())
		}
		return []T{}
	}

	var values []T
	if err = json.Unmarshal(raw, &values); err != nil {
		s.logger.Warn("Discarding malformed storage slot", "key", s.key, "error", err.Error())
		return []T{}
	}
	if values == nil {
		return []T{}
	}

	return values
}

func (s *JSONSlot[T]) Save(ctx context.Context, values []T) error {
	if values == nil {
		values = []T{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.key, err)
	}
	if err = s.kv.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.key, err)
	}
	return nil
}

func (s *JSONSlot[T]) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", s.key, err)
	}
	return nil
}

// NewExpensePersister returns the persister for the expense collection.
func NewExpensePersister(kv KV, l *logger.Logger) Persister {
	return NewJSONSlot[expense.Expense](kv, ExpensesKey, l)
}
