package models

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	valid := []struct {
		name string
		raw  string
	}{
		{"rfc3339", "2025-06-05T14:30:00Z"},
		{"rfc3339_nano", "2025-06-05T14:30:00.123456789Z"},
		{"no_timezone", "2025-06-05T14:30:00"},
		{"date_only", "2025-06-05"},
	}
	for _, tc := range valid {
		t.Run(tc.name, func(t *testing.T) {
			ts, ok := ParseDate(tc.raw)
			if !ok {
				t.Fatalf("ParseDate(%q) failed", tc.raw)
			}
			if ts.Year() != 2025 || ts.Month() != time.June || ts.Day() != 5 {
				t.Errorf("ParseDate(%q) = %v, want June 5 2025", tc.raw, ts)
			}
		})
	}

	invalid := []string{"", "June 5th", "05/06/2025", "2025-13-45", "tomorrow"}
	for _, raw := range invalid {
		if _, ok := ParseDate(raw); ok {
			t.Errorf("ParseDate(%q) unexpectedly succeeded", raw)
		}
	}
}

func TestTransactionTypeValid(t *testing.T) {
	if !TransactionTypeExpense.Valid() || !TransactionTypeIncome.Valid() {
		t.Error("built-in types must be valid")
	}
	for _, raw := range []string{"", "expense", "INCOME", "Transfer"} {
		if TransactionType(raw).Valid() {
			t.Errorf("type %q unexpectedly valid", raw)
		}
	}
}
