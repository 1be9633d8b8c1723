package export

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GustavoCaso/spendwise/internal/logger"
	"github.com/GustavoCaso/spendwise/internal/storage"
	"github.com/GustavoCaso/spendwise/internal/util"
)

// HistoryLimit is the number of records kept; older ones are evicted.
const HistoryLimit = 50

const recordTokenLength = 5

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusPending   Status = "pending"
)

type Record struct {
	ID           string      `json:"id"`
	Template     string      `json:"template"`
	Format       Format      `json:"format"`
	Destination  Destination `json:"destination"`
	Status       Status      `json:"status"`
	Timestamp    time.Time   `json:"timestamp"`
	FileSize     string      `json:"fileSize"`
	ExpenseCount int         `json:"expenseCount"`
	ShareLink    string      `json:"shareLink,omitempty"`
}

// History is the newest-first log of export attempts.
type History struct {
	mu      sync.Mutex
	records []Record
	slot    *storage.JSONSlot[Record]
	logger  *logger.Logger
	now     func() time.Time
}

func NewHistory(ctx context.Context, kv storage.KV, l *logger.Logger) *History {
	log := l.WithComponent("export_history")
	h := &History{
		slot:   storage.NewJSONSlot[Record](kv, storage.ExportHistoryKey, log),
		logger: log,
		now:    time.Now,
	}
	h.records = h.slot.Load(ctx)
	return h
}

// Add stamps r with an id and timestamp and prepends it. A persistence
// failure is logged; the record stays in memory.
func (h *History) Add(ctx context.Context, r Record) Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	r.ID = fmt.Sprintf("exp_%d_%s", now.UnixMilli(), util.RandomToken(recordTokenLength))
	r.Timestamp = now

	records := make([]Record, 0, min(len(h.records)+1, HistoryLimit))
	records = append(records, r)
	records = append(records, h.records...)
	if len(records) > HistoryLimit {
		records = records[:HistoryLimit]
	}
	h.records = records

	if err := h.slot.Save(ctx, h.records); err != nil {
		h.logger.Error("Failed to persist export history", "id", r.ID, "error", err)
	}

	return r
}

func (h *History) List() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

func (h *History) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.slot.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear export history: %w", err)
	}
	h.records = nil
	return nil
}
