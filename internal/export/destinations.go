package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

type Destination string

const (
	Email        Destination = "email"
	GoogleSheets Destination = "google-sheets"
	Dropbox      Destination = "dropbox"
	OneDrive     Destination = "onedrive"
	Local        Destination = "local"
)

var (
	ErrUnknownDestination = errors.New("unknown destination")
	ErrNotConnected       = errors.New("destination not connected")
)

func Destinations() []Destination {
	return []Destination{Email, GoogleSheets, Dropbox, OneDrive, Local}
}

func ParseDestination(s string) (Destination, error) {
	d := Destination(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Email, GoogleSheets, Dropbox, OneDrive, Local:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDestination, s)
}

// ParseDestinations parses a comma separated list such as "local,email".
func ParseDestinations(s string) ([]Destination, error) {
	var out []Destination
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseDestination(part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (d Destination) Name() string {
	switch d {
	case Email:
		return "Email"
	case GoogleSheets:
		return "Google Sheets"
	case Dropbox:
		return "Dropbox"
	case OneDrive:
		return "OneDrive"
	case Local:
		return "Download"
	}
	return string(d)
}

// RequiresConnection reports whether the destination is a cloud service
// that must be connected before use.
func (d Destination) RequiresConnection() bool {
	switch d {
	case GoogleSheets, Dropbox, OneDrive:
		return true
	case Email, Local:
		return false
	}
	return false
}

// Connections tracks which simulated cloud services are connected.
type Connections struct {
	mu        sync.Mutex
	connected map[Destination]bool
	latency   time.Duration
}

func NewConnections(latency time.Duration) *Connections {
	return &Connections{
		connected: make(map[Destination]bool),
		latency:   latency,
	}
}

// Connect simulates the OAuth round trip. It blocks for the configured
// latency or until ctx is done.
func (c *Connections) Connect(ctx context.Context, d Destination) error {
	if _, err := ParseDestination(string(d)); err != nil {
		return err
	}
	if !d.RequiresConnection() {
		return nil
	}

	timer := time.NewTimer(c.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("connect %s: %w", d, ctx.Err())
	case <-timer.C:
	}

	c.mu.Lock()
	c.connected[d] = true
	c.mu.Unlock()
	return nil
}

func (c *Connections) Disconnect(d Destination) {
	c.mu.Lock()
	delete(c.connected, d)
	c.mu.Unlock()
}

func (c *Connections) Connected(d Destination) bool {
	if !d.RequiresConnection() {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected[d]
}

// Template is a predefined export layout. Only its id is recorded.
type Template struct {
	ID          string
	Name        string
	Description string
	Fields      []string
}

const CustomTemplate = "custom"

var templates = []Template{
	{
		ID:          "monthly-summary",
		Name:        "Monthly Summary",
		Description: "Overview of monthly expenses by category",
		Fields:      []string{"date", "category", "amount", "description"},
	},
	{
		ID:          "tax-report",
		Name:        "Tax Report",
		Description: "Deductible expenses for tax filing",
		Fields:      []string{"date", "category", "amount", "description"},
	},
	{
		ID:          "category-analysis",
		Name:        "Category Analysis",
		Description: "Spending patterns per category",
		Fields:      []string{"category", "amount"},
	},
	{
		ID:          "business-expense",
		Name:        "Business Expense",
		Description: "Reimbursable business expenses",
		Fields:      []string{"date", "amount", "description"},
	},
	{
		ID:          "travel-summary",
		Name:        "Travel Summary",
		Description: "Transportation and travel costs",
		Fields:      []string{"date", "category", "amount", "description"},
	},
}

func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// TemplateName returns the display name for id, or id itself when it is
// not a predefined template.
func TemplateName(id string) string {
	if t, ok := LookupTemplate(id); ok {
		return t.Name
	}
	return id
}

func LookupTemplate(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

type Frequency string

const (
	Once    Frequency = "once"
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case Once, Daily, Weekly, Monthly:
		return f, nil
	}
	return "", fmt.Errorf("unknown schedule frequency %q", s)
}

// NextRun returns the next run after from. Once schedules never repeat.
func (f Frequency) NextRun(from time.Time) (time.Time, bool) {
	switch f {
	case Daily:
		return from.AddDate(0, 0, 1), true
	case Weekly:
		return from.AddDate(0, 0, 7), true
	case Monthly:
		return from.AddDate(0, 1, 0), true
	case Once:
		return time.Time{}, false
	}
	return time.Time{}, false
}
