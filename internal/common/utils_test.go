// Package common provides utility functions used across the Flowlift CLI.
package common

import (
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercase passthrough", "onboarding", "onboarding"},
		{"Uppercase folded", "Customer Onboarding", "customer-onboarding"},
		{"Special characters stripped", "Sync (v2)!", "sync-v2"},
		{"Underscores kept", "lead_sync", "lead_sync"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeName(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"Short string unchanged", "hello", 10, "hello"},
		{"Exact length unchanged", "hello", 5, "hello"},
		{"Long string cut with ellipsis", "hello world", 8, "hello..."},
		{"Tiny max", "hello", 2, "he"},
		{"Zero max", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.max)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name     string
		fallback string
		values   []string
		expected string
	}{
		{"First value wins", "N/A", []string{"a", "b"}, "a"},
		{"Skips empty values", "N/A", []string{"", "b"}, "b"},
		{"Fallback on all empty", "N/A", []string{"", ""}, "N/A"},
		{"Fallback on no values", "Unknown", nil, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FirstNonEmpty(tt.fallback, tt.values...)
			if result != tt.expected {
				t.Errorf("FirstNonEmpty(%q, %v) = %q, want %q", tt.fallback, tt.values, result, tt.expected)
			}
		})
	}
}

func TestJoinOrNone(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected string
	}{
		{"Empty list", nil, "none"},
		{"Single item", []string{"slack"}, "slack"},
		{"Multiple items", []string{"slack", "hubspot"}, "slack, hubspot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := JoinOrNone(tt.items)
			if result != tt.expected {
				t.Errorf("JoinOrNone(%v) = %q, want %q", tt.items, result, tt.expected)
			}
		})
	}
}
