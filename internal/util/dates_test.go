package util

import (
	"testing"
	"time"
)

func TestGetMonthDates(t *testing.T) {
	tests := []struct {
		name          string
		month         int
		year          int
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "January 2024",
			month:         1,
			year:          2024,
			expectedStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.January, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:          "February 2024 (leap year)",
			month:         2,
			year:          2024,
			expectedStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:          "December 2023",
			month:         12,
			year:          2023,
			expectedStart: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2023, time.December, 31, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := GetMonthDates(tt.month, tt.year, time.UTC)

			if !start.Equal(tt.expectedStart) {
				t.Errorf("GetMonthDates() start = %v, want %v", start, tt.expectedStart)
			}
			if !end.Equal(tt.expectedEnd) {
				t.Errorf("GetMonthDates() end = %v, want %v", end, tt.expectedEnd)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		now       time.Time
		wantFirst string
		wantLast  string
	}{
		{time.Date(2024, time.February, 10, 8, 0, 0, 0, time.UTC), "2024-02-01", "2024-02-29"},
		{time.Date(2023, time.February, 28, 23, 0, 0, 0, time.UTC), "2023-02-01", "2023-02-28"},
		{time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC), "2024-12-01", "2024-12-31"},
	}

	for _, tt := range tests {
		first, last := MonthBounds(tt.now)
		if first != tt.wantFirst || last != tt.wantLast {
			t.Errorf("MonthBounds(%v) = %v, %v, want %v, %v", tt.now, first, last, tt.wantFirst, tt.wantLast)
		}
	}
}

func TestHumanDate(t *testing.T) {
	if got := HumanDate("2024-01-15"); got != "Jan 15, 2024" {
		t.Errorf("HumanDate() = %v, want Jan 15, 2024", got)
	}
	if got := HumanDate("not a date"); got != "not a date" {
		t.Errorf("HumanDate() = %v, want input unchanged", got)
	}
}
