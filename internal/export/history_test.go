package export

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/GustavoCaso/spendwise/internal/storage"
	"github.com/GustavoCaso/spendwise/internal/testutil"
)

var recordID = regexp.MustCompile(`^exp_\d+_[0-9a-z]{5}$`)

func TestHistoryAdd(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 21, 9, 0, 0, 0, time.UTC)

	h := NewHistory(ctx, storage.NewMemoryKV(), testutil.TestLogger(t))
	h.now = func() time.Time { return now }

	r := h.Add(ctx, Record{Template: "tax-report", Format: CSV, Destination: Local, Status: StatusCompleted, ExpenseCount: 3})

	if !recordID.MatchString(r.ID) {
		t.Errorf("ID = %q, want exp_<millis>_<token>", r.ID)
	}
	if !strings.HasPrefix(r.ID, "exp_1711011600000_") {
		t.Errorf("ID = %q, want millisecond timestamp prefix", r.ID)
	}
	if !r.Timestamp.Equal(now) {
		t.Errorf("Timestamp = %v, want %v", r.Timestamp, now)
	}

	list := h.List()
	if len(list) != 1 || list[0] != r {
		t.Errorf("List() = %+v, want [%+v]", list, r)
	}
}

func TestHistoryCap(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, storage.NewMemoryKV(), testutil.TestLogger(t))

	var first, last Record
	for i := 0; i < HistoryLimit+1; i++ {
		r := h.Add(ctx, Record{Format: CSV, Destination: Local, Status: StatusCompleted, ExpenseCount: i})
		if i == 0 {
			first = r
		}
		last = r
	}

	list := h.List()
	if len(list) != HistoryLimit {
		t.Fatalf("List() length = %d, want %d", len(list), HistoryLimit)
	}
	if list[0] != last {
		t.Errorf("List()[0] = %+v, want newest %+v", list[0], last)
	}
	for _, r := range list {
		if r.ID == first.ID {
			t.Errorf("oldest record %s was not evicted", first.ID)
		}
	}
	if got := list[HistoryLimit-1].ExpenseCount; got != 1 {
		t.Errorf("oldest kept record count = %d, want 1", got)
	}
}

func TestHistoryPersists(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	l := testutil.TestLogger(t)

	h := NewHistory(ctx, kv, l)
	want := h.Add(ctx, Record{Template: "monthly-summary", Format: PDF, Destination: Email, Status: StatusCompleted, FileSize: "1.0 KB", ShareLink: "https://spendwise.app/share/abc"})

	reloaded := NewHistory(ctx, kv, l).List()
	if len(reloaded) != 1 {
		t.Fatalf("reloaded length = %d, want 1", len(reloaded))
	}
	got := reloaded[0]
	if got.ID != want.ID || got.ShareLink != want.ShareLink || !got.Timestamp.Equal(want.Timestamp) {
		t.Errorf("reloaded = %+v, want %+v", got, want)
	}
}

func TestHistoryPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	kv.PutErr = errors.New("disk full")
	l, buf := testutil.BufferLogger(t)

	h := NewHistory(ctx, kv, l)
	h.Add(ctx, Record{Format: CSV, Destination: Local, Status: StatusCompleted})

	if len(h.List()) != 1 {
		t.Errorf("List() length = %d, want 1 after failed save", len(h.List()))
	}
	if !strings.Contains(buf.String(), "Failed to persist export history") {
		t.Errorf("log = %q, want persistence failure entry", buf.String())
	}
}

func TestHistoryClear(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	l := testutil.TestLogger(t)

	h := NewHistory(ctx, kv, l)
	h.Add(ctx, Record{Format: CSV})
	h.Add(ctx, Record{Format: JSON})

	if err := h.Clear(ctx); err != nil {
		t.Fatalf("Clear() unexpected error: %v", err)
	}
	if got := len(h.List()); got != 0 {
		t.Errorf("List() length = %d, want 0", got)
	}
	if got := len(NewHistory(ctx, kv, l).List()); got != 0 {
		t.Errorf("reloaded length = %d, want 0", got)
	}
}

func TestShareLink(t *testing.T) {
	link := ShareLink()
	if !regexp.MustCompile(`^https://spendwise\.app/share/[0-9a-z]{12}$`).MatchString(link) {
		t.Errorf("ShareLink() = %q", link)
	}
	if ShareLink() == link {
		t.Errorf("ShareLink() returned the same link twice")
	}
}
