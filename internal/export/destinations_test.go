package export

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestParseDestination(t *testing.T) {
	for _, d := range Destinations() {
		got, err := ParseDestination(string(d))
		if err != nil || got != d {
			t.Errorf("ParseDestination(%q) = %q, %v", d, got, err)
		}
	}
	if _, err := ParseDestination("ftp"); !errors.Is(err, ErrUnknownDestination) {
		t.Errorf("ParseDestination(ftp) error = %v, want ErrUnknownDestination", err)
	}
}

func TestConnections(t *testing.T) {
	ctx := context.Background()
	c := NewConnections(time.Millisecond)

	if !c.Connected(Local) || !c.Connected(Email) {
		t.Errorf("local and email should always be available")
	}
	if c.Connected(Dropbox) {
		t.Errorf("Connected(dropbox) = true before Connect")
	}

	if err := c.Connect(ctx, Dropbox); err != nil {
		t.Fatalf("Connect(dropbox) unexpected error: %v", err)
	}
	if !c.Connected(Dropbox) {
		t.Errorf("Connected(dropbox) = false after Connect")
	}

	c.Disconnect(Dropbox)
	if c.Connected(Dropbox) {
		t.Errorf("Connected(dropbox) = true after Disconnect")
	}
}

func TestConnectCancelled(t *testing.T) {
	c := NewConnections(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Connect(ctx, GoogleSheets)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Connect() error = %v, want context.Canceled", err)
	}
	if c.Connected(GoogleSheets) {
		t.Errorf("Connected(google-sheets) = true after cancelled connect")
	}
}

func TestLookupTemplate(t *testing.T) {
	ids := []string{"monthly-summary", "tax-report", "category-analysis", "business-expense", "travel-summary"}
	for _, id := range ids {
		if _, ok := LookupTemplate(id); !ok {
			t.Errorf("LookupTemplate(%q) not found", id)
		}
	}
	if _, ok := LookupTemplate("nope"); ok {
		t.Errorf("LookupTemplate(nope) found")
	}
	if got := TemplateName("tax-report"); got != "Tax Report" {
		t.Errorf("TemplateName(tax-report) = %q, want %q", got, "Tax Report")
	}
	if got := TemplateName(CustomTemplate); got != CustomTemplate {
		t.Errorf("TemplateName(custom) = %q, want %q", got, CustomTemplate)
	}
	if len(Templates()) != len(ids) {
		t.Errorf("Templates() length = %d, want %d", len(Templates()), len(ids))
	}
}

func TestNextRun(t *testing.T) {
	from := time.Date(2024, time.January, 31, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		freq   Frequency
		want   time.Time
		repeat bool
	}{
		{Daily, time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC), true},
		{Weekly, time.Date(2024, time.February, 7, 8, 0, 0, 0, time.UTC), true},
		{Monthly, time.Date(2024, time.March, 2, 8, 0, 0, 0, time.UTC), true},
		{Once, time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := tt.freq.NextRun(from)
		if ok != tt.repeat || !got.Equal(tt.want) {
			t.Errorf("%s.NextRun() = %v, %v, want %v, %v", tt.freq, got, ok, tt.want, tt.repeat)
		}
	}

	if _, err := ParseFrequency("hourly"); err == nil {
		t.Errorf("ParseFrequency(hourly) error = nil")
	}
}
