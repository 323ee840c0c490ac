package format

import (
	"testing"
	"time"
)

func TestQuantity(t *testing.T) {
	tests := []struct {
		name     string
		qty      float64
		expected string
	}{
		{name: "Whole quantity renders bare integer", qty: 40.0, expected: "40"},
		{name: "Fractional quantity keeps decimals", qty: 40.5, expected: "40.5"},
		{name: "Zero", qty: 0.0, expected: "0"},
		{name: "Small fraction", qty: 0.25, expected: "0.25"},
		{name: "Large whole quantity", qty: 1234.0, expected: "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantity(tt.qty); got != tt.expected {
				t.Errorf("Quantity(%v) = %q, expected %q", tt.qty, got, tt.expected)
			}
		})
	}
}

func TestNoteDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "Single-digit month and day are not padded",
			date:     time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC),
			expected: "3/7/26",
		},
		{
			name:     "Double-digit month and day",
			date:     time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			expected: "12/31/25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoteDate(tt.date); got != tt.expected {
				t.Errorf("NoteDate(%v) = %q, expected %q", tt.date, got, tt.expected)
			}
		})
	}
}
