// Package store owns the canonical, newest-first expense collection and
// persists it after every mutation.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GustavoCaso/spendwise/internal/expense"
	"github.com/GustavoCaso/spendwise/internal/logger"
	"github.com/GustavoCaso/spendwise/internal/storage"
)

type Listener func(expenses []expense.Expense)

type Store struct {
	mu        sync.Mutex
	expenses  []expense.Expense
	persister storage.Persister
	logger    *logger.Logger
	listeners []Listener
	now       func() time.Time
	newID     func() string
}

type Option func(*Store)

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// New loads the persisted collection and returns a store ready for use.
// Load failures leave the store empty.
func New(ctx context.Context, persister storage.Persister, l *logger.Logger, opts ...Option) *Store {
	s := &Store{
		persister: persister,
		logger:    l.WithComponent("store"),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.expenses = persister.Load(ctx)
	s.logger.Debug("Loaded expenses", "count", len(s.expenses))

	return s
}

// Subscribe registers fn to be called with the latest collection after
// each mutation. fn runs while the store is locked and must not call back
// into it.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
}

// Add inserts a new expense at the head of the collection. The form is
// expected to be validated already; only an amount that cannot be parsed
// is rejected.
func (s *Store) Add(ctx context.Context, data expense.FormData) (expense.Expense, error) {
	amount, err := expense.ParseAmount(data.Amount)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("unable to add expense: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ex := expense.Expense{
		ID:          s.newID(),
		Date:        data.Date,
		Amount:      amount.InexactFloat64(),
		Category:    data.Category,
		Description: strings.TrimSpace(data.Description),
		CreatedAt:   s.now().UTC().Format(time.RFC3339Nano),
	}

	s.expenses = append([]expense.Expense{ex}, s.expenses...)
	s.changed(ctx, "add", ex.ID)

	return ex, nil
}

// Update replaces the editable fields of the expense with the given id,
// keeping its id, creation time and position.
func (s *Store) Update(ctx context.Context, id string, data expense.FormData) error {
	amount, err := expense.ParseAmount(data.Amount)
	if err != nil {
		return fmt.Errorf("unable to update expense: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return &storage.NotFoundError{ID: id}
	}

	updated := make([]expense.Expense, len(s.expenses))
	copy(updated, s.expenses)
	updated[i].Date = data.Date
	updated[i].Amount = amount.InexactFloat64()
	updated[i].Category = data.Category
	updated[i].Description = strings.TrimSpace(data.Description)
	s.expenses = updated

	s.changed(ctx, "update", id)

	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return &storage.NotFoundError{ID: id}
	}

	updated := make([]expense.Expense, 0, len(s.expenses)-1)
	updated = append(updated, s.expenses[:i]...)
	updated = append(updated, s.expenses[i+1:]...)
	s.expenses = updated

	s.changed(ctx, "delete", id)

	return nil
}

// List returns a copy of the collection, newest first.
func (s *Store) List() []expense.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Get returns the expense with the given id.
func (s *Store) Get(id string) (expense.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return expense.Expense{}, &storage.NotFoundError{ID: id}
	}
	return s.expenses[i], nil
}

func (s *Store) indexOf(id string) int {
	for i, ex := range s.expenses {
		if ex.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []expense.Expense {
	out := make([]expense.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// changed persists and notifies. Must be called with mu held.
// Persistence errors never undo the in-memory change.
func (s *Store) changed(ctx context.Context, op, id string) {
	if err := s.persister.Save(ctx, s.expenses); err != nil {
		s.logger.Error("Failed to persist expenses", "op", op, "id", id, "error", err.Error())
	} else {
		s.logger.Debug("Persisted expenses", "op", op, "id", id, "count", len(s.expenses))
	}

	for _, fn := range s.listeners {
		fn(s.snapshot())
	}
}
